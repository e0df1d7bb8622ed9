// models/portfolio.go - Data models for FolioCMS
package models

import "time"

// HeroContent is the landing section. Singleton, replaced wholesale on save.
type HeroContent struct {
	Greeting        string `json:"greeting"`
	Name            string `json:"name"`
	Title           string `json:"title"`
	Availability    string `json:"availability"`
	Bio             string `json:"bio"`
	Image           string `json:"image"`
	NameFont        string `json:"name_font,omitempty"`
	BackgroundVideo string `json:"background_video,omitempty"`
}

// Service is one offering listed in the about section
type Service struct {
	ID    string `json:"id"`
	Icon  Icon   `json:"icon"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// Stat is one headline number in the about section
type Stat struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// AboutContent is the about section. Singleton, replaced wholesale on save.
type AboutContent struct {
	Bio      string    `json:"bio"`
	Services []Service `json:"services"`
	Stats    []Stat    `json:"stats"`
	Image    string    `json:"image"`
}

// Experience is one entry in the work history, most recent first
type Experience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Education is one entry in the education history, most recent first
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Project is one showcased project, oldest first
type Project struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Tags          []string `json:"tags"`
	GitHub        string   `json:"github"`
	Live          string   `json:"live"`
	AIHint        string   `json:"ai_hint"`
	CoverVideoURL string   `json:"cover_video_url,omitempty"`
}

// Skill is one named technology with its display icon
type Skill struct {
	Name string `json:"name"`
	Icon Icon   `json:"icon"`
}

// SkillCategory groups skills under a heading. Positional identity only;
// the whole skills list is replaced on save.
type SkillCategory struct {
	Title  string  `json:"title"`
	Skills []Skill `json:"skills"`
}

// ContactSubmission is one message from the public contact form.
// Append-only; never deleted.
type ContactSubmission struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ThemeColors holds the four site colors as HSL triple strings, e.g. "222 47% 11%"
type ThemeColors struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
}

// HeroBackground configures the hero gradient/effect layer
type HeroBackground struct {
	Type      string    `json:"type"` // gradient, aurora, mesh, none
	From      string    `json:"from"`
	To        string    `json:"to"`
	Sizes     []string  `json:"sizes,omitempty"`
	Opacities []float64 `json:"opacities,omitempty"`
}

// ThemeSettings is the visual theme. Sub-areas are merged piecewise.
type ThemeSettings struct {
	Colors            ThemeColors    `json:"colors"`
	HeroBackground    HeroBackground `json:"hero_background"`
	BackgroundPattern string         `json:"background_pattern"`
	GradientText      bool           `json:"gradient_text"`
	ResumeURL         string         `json:"resume_url"`
}

// AppSettings selects the display mode and the active presets
type AppSettings struct {
	ThemeMode string `json:"theme_mode"` // dark, light, system
	Layout    string `json:"layout"`     // layout preset name
	UIStyle   string `json:"ui_style"`   // UI style preset name
}

// PortfolioData is the root content record. It is never nil after boot;
// every sub-field has a default (see DefaultPortfolio).
type PortfolioData struct {
	Hero       HeroContent     `json:"hero"`
	About      AboutContent    `json:"about"`
	Skills     []SkillCategory `json:"skills"`
	Experience []Experience    `json:"experience"`
	Education  []Education     `json:"education"`
	Projects   []Project       `json:"projects"`
	Theme      ThemeSettings   `json:"theme"`
	Settings   AppSettings     `json:"settings"`
}
