// state/clone.go - Deep-copy helpers so snapshots never alias live state
package state

import "github.com/noor-latif/foliocms/internal/models"

func cloneData(d models.PortfolioData) models.PortfolioData {
	out := d
	out.About = cloneAbout(d.About)
	out.Skills = cloneSkills(d.Skills)
	out.Experience = append([]models.Experience(nil), d.Experience...)
	out.Education = append([]models.Education(nil), d.Education...)
	out.Projects = make([]models.Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Tags = cloneStrings(p.Tags)
		out.Projects[i] = p
	}
	out.Theme.HeroBackground = cloneHeroBackground(d.Theme.HeroBackground)
	return out
}

func cloneAbout(a models.AboutContent) models.AboutContent {
	out := a
	out.Services = append([]models.Service(nil), a.Services...)
	out.Stats = append([]models.Stat(nil), a.Stats...)
	return out
}

func cloneSkills(cats []models.SkillCategory) []models.SkillCategory {
	if cats == nil {
		return nil
	}
	out := make([]models.SkillCategory, len(cats))
	for i, cat := range cats {
		cat.Skills = append([]models.Skill(nil), cat.Skills...)
		out[i] = cat
	}
	return out
}

func cloneHeroBackground(bg models.HeroBackground) models.HeroBackground {
	out := bg
	out.Sizes = cloneStrings(bg.Sizes)
	out.Opacities = append([]float64(nil), bg.Opacities...)
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
