package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, theme.Primary)
	assert.NotEmpty(t, theme.Error)
	assert.NotEmpty(t, theme.Warning)
	assert.NotEmpty(t, theme.Success)
}

func TestNewStyles(t *testing.T) {
	theme := DefaultTheme()

	s := NewStyles(theme)

	require.NotNil(t, s)
	assert.Equal(t, theme, s.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.NotNil(t, s.Theme())
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	require.NotNil(t, s)
	assert.NotNil(t, s.Theme())
}

func TestStyles_TierBadges(t *testing.T) {
	s := DefaultStyles()

	// Each tier badge renders its text
	assert.Contains(t, s.TierHigh.Render("high"), "high")
	assert.Contains(t, s.TierMedium.Render("medium"), "medium")
	assert.Contains(t, s.TierLow.Render("low"), "low")
	assert.Contains(t, s.TierManual.Render("manual"), "manual")
}
