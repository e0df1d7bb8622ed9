// state/theme.go - Theme and settings merge operations
package state

import "github.com/noor-latif/foliocms/internal/models"

// ThemePatch is a shallow-merge update for ThemeSettings: only non-nil
// fields overwrite, siblings stay untouched.
type ThemePatch struct {
	Colors            *models.ThemeColors    `json:"colors"`
	HeroBackground    *models.HeroBackground `json:"hero_background"`
	BackgroundPattern *string                `json:"background_pattern"`
	GradientText      *bool                  `json:"gradient_text"`
	ResumeURL         *string                `json:"resume_url"`
}

// SettingsPatch is a shallow-merge update for AppSettings
type SettingsPatch struct {
	ThemeMode *string `json:"theme_mode"`
	Layout    *string `json:"layout"`
	UIStyle   *string `json:"ui_style"`
}

// UpdateColorTheme replaces the four site colors
func (c *Container) UpdateColorTheme(colors models.ThemeColors) {
	c.mu.Lock()
	c.data.Theme.Colors = colors
	c.mu.Unlock()
	c.notify()
}

// UpdateHeroBackground replaces the hero background configuration
func (c *Container) UpdateHeroBackground(bg models.HeroBackground) {
	c.mu.Lock()
	c.data.Theme.HeroBackground = cloneHeroBackground(bg)
	c.mu.Unlock()
	c.notify()
}

// UpdateThemeSettings shallow-merges the patch into the theme
func (c *Container) UpdateThemeSettings(patch ThemePatch) {
	c.mu.Lock()
	if patch.Colors != nil {
		c.data.Theme.Colors = *patch.Colors
	}
	if patch.HeroBackground != nil {
		c.data.Theme.HeroBackground = cloneHeroBackground(*patch.HeroBackground)
	}
	if patch.BackgroundPattern != nil {
		c.data.Theme.BackgroundPattern = *patch.BackgroundPattern
	}
	if patch.GradientText != nil {
		c.data.Theme.GradientText = *patch.GradientText
	}
	if patch.ResumeURL != nil {
		c.data.Theme.ResumeURL = *patch.ResumeURL
	}
	c.mu.Unlock()
	c.notify()
}

// UpdateAppSettings shallow-merges the patch into the app settings
func (c *Container) UpdateAppSettings(patch SettingsPatch) {
	c.mu.Lock()
	if patch.ThemeMode != nil {
		c.data.Settings.ThemeMode = *patch.ThemeMode
	}
	if patch.Layout != nil {
		c.data.Settings.Layout = *patch.Layout
	}
	if patch.UIStyle != nil {
		c.data.Settings.UIStyle = *patch.UIStyle
	}
	c.mu.Unlock()
	c.notify()
}
