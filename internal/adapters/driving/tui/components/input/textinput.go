// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/styles"
)

// LabelledInput wraps a bubbles textinput with a styled label.
// It backs the upload path prompt, field value editor, list filter,
// and chat question box.
type LabelledInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewLabelledInput creates a new labelled input component.
func NewLabelledInput(s *styles.Styles, label, placeholder string) *LabelledInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &LabelledInput{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// Init initialises the input.
func (l *LabelledInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (l *LabelledInput) Update(msg tea.Msg) (*LabelledInput, tea.Cmd) {
	var cmd tea.Cmd
	l.textinput, cmd = l.textinput.Update(msg)
	return l, cmd
}

// View renders the input.
func (l *LabelledInput) View() string {
	label := l.styles.Title.Render(l.label + ": ")
	input := l.styles.InputField.Render(l.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (l *LabelledInput) Value() string {
	return l.textinput.Value()
}

// SetValue sets the input value.
func (l *LabelledInput) SetValue(value string) {
	l.textinput.SetValue(value)
	l.textinput.CursorEnd()
}

// Label returns the input label.
func (l *LabelledInput) Label() string {
	return l.label
}

// SetLabel sets the input label.
func (l *LabelledInput) SetLabel(label string) {
	l.label = label
}

// Focus sets focus on the input.
func (l *LabelledInput) Focus() tea.Cmd {
	return l.textinput.Focus()
}

// Blur removes focus from the input.
func (l *LabelledInput) Blur() {
	l.textinput.Blur()
}

// Focused returns whether the input is focused.
func (l *LabelledInput) Focused() bool {
	return l.textinput.Focused()
}

// SetWidth sets the width of the input.
func (l *LabelledInput) SetWidth(width int) {
	l.width = width
	// Account for label and padding
	inputWidth := width - len(l.label) - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	l.textinput.Width = inputWidth
}

// Width returns the current width.
func (l *LabelledInput) Width() int {
	return l.width
}

// Reset clears the input.
func (l *LabelledInput) Reset() {
	l.textinput.Reset()
}
