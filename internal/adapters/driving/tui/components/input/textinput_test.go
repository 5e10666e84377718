package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/styles"
)

func TestNewLabelledInput(t *testing.T) {
	s := styles.DefaultStyles()

	in := NewLabelledInput(s, "Value", "enter a value")

	require.NotNil(t, in)
	assert.Equal(t, "Value", in.Label())
	assert.Empty(t, in.Value())
	assert.True(t, in.Focused())
}

func TestNewLabelledInput_NilStyles(t *testing.T) {
	in := NewLabelledInput(nil, "File", "")

	require.NotNil(t, in)
	assert.Equal(t, "File", in.Label())
}

func TestLabelledInput_Init(t *testing.T) {
	in := NewLabelledInput(nil, "Value", "")

	cmd := in.Init()

	assert.NotNil(t, cmd)
}

func TestLabelledInput_Update_Typing(t *testing.T) {
	in := NewLabelledInput(nil, "Value", "")

	for _, r := range "3.6" {
		in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "3.6", in.Value())
}

func TestLabelledInput_SetValue(t *testing.T) {
	in := NewLabelledInput(nil, "Value", "")

	in.SetValue("4500")

	assert.Equal(t, "4500", in.Value())
}

func TestLabelledInput_SetLabel(t *testing.T) {
	in := NewLabelledInput(nil, "Value", "")

	in.SetLabel("Nominal Capacity")

	assert.Equal(t, "Nominal Capacity", in.Label())
}

func TestLabelledInput_View(t *testing.T) {
	in := NewLabelledInput(nil, "Ask", "")
	in.SetValue("What is the capacity?")

	out := in.View()

	assert.Contains(t, out, "Ask")
	assert.Contains(t, out, "What is the capacity?")
}

func TestLabelledInput_Reset(t *testing.T) {
	in := NewLabelledInput(nil, "Value", "")
	in.SetValue("stale")

	in.Reset()

	assert.Empty(t, in.Value())
}

func TestLabelledInput_SetWidth(t *testing.T) {
	in := NewLabelledInput(nil, "Value", "")

	in.SetWidth(120)
	assert.Equal(t, 120, in.Width())

	// Narrow widths clamp the inner input, not the component width
	in.SetWidth(10)
	assert.Equal(t, 10, in.Width())
}

func TestLabelledInput_FocusBlur(t *testing.T) {
	in := NewLabelledInput(nil, "Value", "")

	in.Blur()
	assert.False(t, in.Focused())

	in.Focus()
	assert.True(t, in.Focused())
}
