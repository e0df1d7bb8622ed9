// store/content.go - Content snapshot persistence
package store

import (
	"encoding/json"
	"fmt"

	"github.com/noor-latif/foliocms/internal/models"
)

// Section names, one row each in the content table
const (
	sectionHero       = "hero"
	sectionAbout      = "about"
	sectionSkills     = "skills"
	sectionExperience = "experience"
	sectionEducation  = "education"
	sectionProjects   = "projects"
	sectionTheme      = "theme"
	sectionSettings   = "settings"
)

// SaveSnapshot upserts every section of the snapshot in one transaction
func (db *DB) SaveSnapshot(data models.PortfolioData) error {
	sections := map[string]interface{}{
		sectionHero:       data.Hero,
		sectionAbout:      data.About,
		sectionSkills:     data.Skills,
		sectionExperience: data.Experience,
		sectionEducation:  data.Education,
		sectionProjects:   data.Projects,
		sectionTheme:      data.Theme,
		sectionSettings:   data.Settings,
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for name, value := range sections {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", name, err)
		}
		if _, err := tx.Exec(qContentUpsert, name, string(raw)); err != nil {
			return fmt.Errorf("upsert %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// LoadSnapshot reads all persisted sections into a PortfolioData. Missing
// sections keep their default value; ok is false when nothing is persisted.
func (db *DB) LoadSnapshot() (models.PortfolioData, bool, error) {
	data := models.DefaultPortfolio()

	rows, err := db.Query(qContentAll)
	if err != nil {
		return data, false, err
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		var section, raw string
		if err := rows.Scan(&section, &raw); err != nil {
			return data, false, err
		}
		if err := unmarshalSection(&data, section, raw); err != nil {
			return data, false, err
		}
		found = true
	}

	return data, found, rows.Err()
}

func unmarshalSection(data *models.PortfolioData, section, raw string) error {
	var dest interface{}
	switch section {
	case sectionHero:
		dest = &data.Hero
	case sectionAbout:
		dest = &data.About
	case sectionSkills:
		dest = &data.Skills
	case sectionExperience:
		dest = &data.Experience
	case sectionEducation:
		dest = &data.Education
	case sectionProjects:
		dest = &data.Projects
	case sectionTheme:
		dest = &data.Theme
	case sectionSettings:
		dest = &data.Settings
	default:
		// Unknown sections from newer versions are ignored
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("unmarshal %s: %w", section, err)
	}
	return nil
}
