// models/defaults.go - Hardcoded default portfolio content
package models

// DefaultPortfolio returns the content a fresh install boots with. Every
// sub-field is populated so the root is never zero-valued.
func DefaultPortfolio() PortfolioData {
	return PortfolioData{
		Hero: HeroContent{
			Greeting:     "Hi, my name is",
			Name:         "Noor Latif",
			Title:        "Full-Stack Developer",
			Availability: "Available for freelance work",
			Bio:          "I build fast, accessible web applications from database to pixel.",
			Image:        "/static/img/hero.jpg",
		},
		About: AboutContent{
			Bio: "Developer with a soft spot for clean APIs and boring, reliable infrastructure.",
			Services: []Service{
				{ID: "svc-web", Icon: IconGlobe, Title: "Web Development", Color: "hsl(217 91% 60%)"},
				{ID: "svc-api", Icon: IconServer, Title: "API Design", Color: "hsl(160 84% 39%)"},
				{ID: "svc-ui", Icon: IconLayout, Title: "UI Engineering", Color: "hsl(38 92% 50%)"},
			},
			Stats: []Stat{
				{ID: "stat-years", Value: "6+", Label: "Years of experience"},
				{ID: "stat-projects", Value: "40+", Label: "Projects shipped"},
				{ID: "stat-clients", Value: "25+", Label: "Happy clients"},
			},
			Image: "/static/img/about.jpg",
		},
		Skills: []SkillCategory{
			{
				Title: "Backend",
				Skills: []Skill{
					{Name: "Go", Icon: IconTerminal},
					{Name: "SQLite", Icon: IconDatabase},
					{Name: "PostgreSQL", Icon: IconDatabase},
				},
			},
			{
				Title: "Frontend",
				Skills: []Skill{
					{Name: "TypeScript", Icon: IconFileCode},
					{Name: "React", Icon: IconCode},
					{Name: "CSS", Icon: IconPalette},
				},
			},
		},
		Experience: []Experience{
			{
				ID:          "exp-default-1",
				Role:        "Senior Developer",
				Company:     "Freelance",
				Period:      "2022 - Present",
				Description: "Full-stack delivery for small businesses: dashboards, storefronts, integrations.",
			},
		},
		Education: []Education{
			{
				ID:          "edu-default-1",
				Institution: "KTH Royal Institute of Technology",
				Degree:      "BSc Computer Science",
				Period:      "2016 - 2019",
				Description: "Focus on distributed systems and human-computer interaction.",
			},
		},
		Projects: []Project{
			{
				ID:          "proj-default-1",
				Title:       "FullDash",
				Description: "A freelance project dashboard with revenue splits and Stripe webhooks.",
				Image:       "/static/img/projects/fulldash.png",
				Tags:        []string{"Go", "SQLite", "HTMX"},
				GitHub:      "https://github.com/noor-latif/fulldash",
				AIHint:      "dashboard kanban board",
			},
		},
		Theme: ThemeSettings{
			Colors: ThemeColors{
				Background: "222 47% 11%",
				Foreground: "210 40% 98%",
				Primary:    "217 91% 60%",
				Accent:     "160 84% 39%",
			},
			HeroBackground: HeroBackground{
				Type: "gradient",
				From: "222 47% 11%",
				To:   "217 33% 17%",
			},
			BackgroundPattern: "none",
			GradientText:      true,
			ResumeURL:         "/static/resume.pdf",
		},
		Settings: AppSettings{
			ThemeMode: "dark",
			Layout:    "classic",
			UIStyle:   "glass",
		},
	}
}
