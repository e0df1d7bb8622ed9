package presets

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hslTriple = regexp.MustCompile(`^\d{1,3} \d{1,3}% \d{1,3}%$`)

func TestLoadCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Palettes)
	assert.NotEmpty(t, c.Layouts)
	assert.NotEmpty(t, c.UIStyles)
}

func TestPalettesAreWellFormed(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, p := range c.Palettes {
		require.NotEmpty(t, p.Name)
		require.False(t, seen[p.Name], "duplicate palette %s", p.Name)
		seen[p.Name] = true

		for field, value := range map[string]string{
			"background": p.Colors.Background,
			"foreground": p.Colors.Foreground,
			"primary":    p.Colors.Primary,
			"accent":     p.Colors.Accent,
		} {
			assert.Regexp(t, hslTriple, value, "palette %s %s", p.Name, field)
		}
	}
}

func TestLayoutsCoverDefault(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	classic := c.LayoutByName("classic")
	require.NotNil(t, classic)
	assert.Contains(t, classic.Sections, "hero")
	assert.Contains(t, classic.Sections, "contact")
}

func TestLookupsReturnNilForUnknown(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Nil(t, c.PaletteByName("nope"))
	assert.Nil(t, c.LayoutByName("nope"))
	assert.Nil(t, c.UIStyleByName("nope"))
}
