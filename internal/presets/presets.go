// presets/presets.go - Static preset catalogs (palettes, layouts, UI styles)
package presets

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/noor-latif/foliocms/internal/models"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

// Palette is a named color bundle selectable as a unit
type Palette struct {
	Name   string             `yaml:"name" json:"name"`
	Label  string             `yaml:"label" json:"label"`
	Colors models.ThemeColors `yaml:"colors" json:"colors"`
}

// Layout is a named section arrangement for the public site
type Layout struct {
	Name        string   `yaml:"name" json:"name"`
	Label       string   `yaml:"label" json:"label"`
	Description string   `yaml:"description" json:"description"`
	Sections    []string `yaml:"sections" json:"sections"`
}

// UIStyle is a named bundle of surface styling values
type UIStyle struct {
	Name        string `yaml:"name" json:"name"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"description"`
	Radius      string `yaml:"radius" json:"radius"`
	Blur        bool   `yaml:"blur" json:"blur"`
	Borders     bool   `yaml:"borders" json:"borders"`
}

// Catalog holds the three preset tables. Pure data, loaded once at boot.
type Catalog struct {
	Palettes []Palette `json:"palettes"`
	Layouts  []Layout  `json:"layouts"`
	UIStyles []UIStyle `json:"ui_styles"`
}

// Load parses the embedded catalog files
func Load() (*Catalog, error) {
	c := &Catalog{}
	if err := parse("catalog/palettes.yaml", &c.Palettes); err != nil {
		return nil, err
	}
	if err := parse("catalog/layouts.yaml", &c.Layouts); err != nil {
		return nil, err
	}
	if err := parse("catalog/uistyles.yaml", &c.UIStyles); err != nil {
		return nil, err
	}
	return c, nil
}

func parse(path string, dest interface{}) error {
	raw, err := catalogFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// PaletteByName returns the named palette, or nil if absent
func (c *Catalog) PaletteByName(name string) *Palette {
	for i := range c.Palettes {
		if c.Palettes[i].Name == name {
			return &c.Palettes[i]
		}
	}
	return nil
}

// LayoutByName returns the named layout, or nil if absent
func (c *Catalog) LayoutByName(name string) *Layout {
	for i := range c.Layouts {
		if c.Layouts[i].Name == name {
			return &c.Layouts[i]
		}
	}
	return nil
}

// UIStyleByName returns the named UI style, or nil if absent
func (c *Catalog) UIStyleByName(name string) *UIStyle {
	for i := range c.UIStyles {
		if c.UIStyles[i].Name == name {
			return &c.UIStyles[i]
		}
	}
	return nil
}
