// state/content.go - Content mutation operations
package state

import "github.com/noor-latif/foliocms/internal/models"

// UpdateHero replaces the hero section wholesale
func (c *Container) UpdateHero(hero models.HeroContent) {
	c.mu.Lock()
	c.data.Hero = hero
	c.mu.Unlock()
	c.notify()
}

// UpdateAbout replaces the about section wholesale
func (c *Container) UpdateAbout(about models.AboutContent) {
	c.mu.Lock()
	c.data.About = cloneAbout(about)
	c.mu.Unlock()
	c.notify()
}

// UpdateSkills replaces the whole skills list
func (c *Container) UpdateSkills(categories []models.SkillCategory) {
	c.mu.Lock()
	c.data.Skills = cloneSkills(categories)
	c.mu.Unlock()
	c.notify()
}

// AddExperience assigns a fresh ID and prepends (most recent first)
func (c *Container) AddExperience(exp models.Experience) models.Experience {
	c.mu.Lock()
	exp.ID = c.nextID()
	c.data.Experience = append([]models.Experience{exp}, c.data.Experience...)
	c.mu.Unlock()
	c.notify()
	return exp
}

// UpdateExperience replaces the entry with a matching ID.
// No match is a silent no-op.
func (c *Container) UpdateExperience(exp models.Experience) {
	c.mu.Lock()
	for i := range c.data.Experience {
		if c.data.Experience[i].ID == exp.ID {
			c.data.Experience[i] = exp
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

// DeleteExperience removes the entry with the given ID. Idempotent.
func (c *Container) DeleteExperience(id string) {
	c.mu.Lock()
	for i := range c.data.Experience {
		if c.data.Experience[i].ID == id {
			c.data.Experience = append(c.data.Experience[:i], c.data.Experience[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

// AddEducation assigns a fresh ID and prepends (most recent first)
func (c *Container) AddEducation(edu models.Education) models.Education {
	c.mu.Lock()
	edu.ID = c.nextID()
	c.data.Education = append([]models.Education{edu}, c.data.Education...)
	c.mu.Unlock()
	c.notify()
	return edu
}

// UpdateEducation replaces the entry with a matching ID.
// No match is a silent no-op.
func (c *Container) UpdateEducation(edu models.Education) {
	c.mu.Lock()
	for i := range c.data.Education {
		if c.data.Education[i].ID == edu.ID {
			c.data.Education[i] = edu
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

// DeleteEducation removes the entry with the given ID. Idempotent.
func (c *Container) DeleteEducation(id string) {
	c.mu.Lock()
	for i := range c.data.Education {
		if c.data.Education[i].ID == id {
			c.data.Education = append(c.data.Education[:i], c.data.Education[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

// AddProject assigns a fresh ID and appends (oldest first)
func (c *Container) AddProject(p models.Project) models.Project {
	c.mu.Lock()
	p.ID = c.nextID()
	p.Tags = cloneStrings(p.Tags)
	c.data.Projects = append(c.data.Projects, p)
	c.mu.Unlock()
	c.notify()
	return p
}

// UpdateProject replaces the entry with a matching ID.
// No match is a silent no-op.
func (c *Container) UpdateProject(p models.Project) {
	c.mu.Lock()
	for i := range c.data.Projects {
		if c.data.Projects[i].ID == p.ID {
			p.Tags = cloneStrings(p.Tags)
			c.data.Projects[i] = p
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

// DeleteProject removes the entry with the given ID. Idempotent.
func (c *Container) DeleteProject(id string) {
	c.mu.Lock()
	for i := range c.data.Projects {
		if c.data.Projects[i].ID == id {
			c.data.Projects = append(c.data.Projects[:i], c.data.Projects[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}
