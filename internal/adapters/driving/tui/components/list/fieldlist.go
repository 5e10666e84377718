// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/styles"
	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
)

// FieldList displays a document's fields in a navigable list.
type FieldList struct {
	fields   []domain.Field
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewFieldList creates a new field list component.
func NewFieldList(s *styles.Styles) *FieldList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &FieldList{
		fields:   nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the field list.
func (f *FieldList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (f *FieldList) Update(msg tea.Msg) (*FieldList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			f.MoveUp()
		case tea.KeyDown:
			f.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			f.MoveUp()
		case "j":
			f.MoveDown()
		}
	}
	return f, nil
}

// View renders the field list.
func (f *FieldList) View() string {
	if len(f.fields) == 0 {
		return f.styles.Muted.Render("No fields")
	}

	lines := make([]string, 0, len(f.fields)+2)

	header := f.styles.Subtitle.Render(fmt.Sprintf("Fields (%d)", len(f.fields)))
	lines = append(lines, header, "")

	// Each field takes one line
	visibleCount := f.height - 4
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if f.selected >= visibleCount {
		start = f.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(f.fields) {
		end = len(f.fields)
	}

	for i := start; i < end; i++ {
		lines = append(lines, f.renderField(i, &f.fields[i]))
	}

	if len(f.fields) > visibleCount {
		lines = append(lines, "", f.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			start+1, end, len(f.fields))))
	}

	return strings.Join(lines, "\n")
}

// renderField formats a single field with its tier badge.
func (f *FieldList) renderField(index int, field *domain.Field) string {
	indicator := "  "
	if index == f.selected {
		indicator = "> "
	}

	label := field.Label
	if label == "" {
		label = field.TypeID
	}

	maxLabelLen := f.width / 3
	if maxLabelLen < 12 {
		maxLabelLen = 12
	}
	if len(label) > maxLabelLen {
		label = label[:maxLabelLen-3] + "..."
	}

	value := field.Value
	if strings.TrimSpace(value) == "" {
		value = "(empty)"
	}
	maxValueLen := f.width / 3
	if maxValueLen < 10 {
		maxValueLen = 10
	}
	if len(value) > maxValueLen {
		value = value[:maxValueLen-3] + "..."
	}

	badge := f.renderBadge(field)

	if index == f.selected {
		return f.styles.Selected.Render(fmt.Sprintf("%s%-*s  %-*s", indicator, maxLabelLen, label, maxValueLen, value)) +
			" " + badge
	}

	return f.styles.Normal.Render(indicator) +
		f.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxLabelLen, label)) +
		f.styles.Normal.Render(fmt.Sprintf("%-*s ", maxValueLen, value)) +
		badge
}

// renderBadge renders the tier badge and confidence for a field.
func (f *FieldList) renderBadge(field *domain.Field) string {
	tier := field.Tier()
	badge := f.tierStyle(tier).Render(tier.String())
	if field.Confidence != nil {
		badge += f.styles.Muted.Render(fmt.Sprintf(" %.0f", *field.Confidence))
	}
	if field.RequiresReview {
		badge += " " + f.styles.Warning.Render("[review]")
	}
	return badge
}

// tierStyle maps a tier to its badge style.
func (f *FieldList) tierStyle(tier domain.Tier) lipgloss.Style {
	switch tier {
	case domain.TierHigh:
		return f.styles.TierHigh
	case domain.TierMedium:
		return f.styles.TierMedium
	case domain.TierLow:
		return f.styles.TierLow
	case domain.TierUnset:
		return f.styles.TierManual
	default:
		return f.styles.Normal
	}
}

// SetFields updates the field list, clamping the selection so edits and
// removals keep a valid cursor.
func (f *FieldList) SetFields(fields []domain.Field) {
	f.fields = fields
	if f.selected >= len(fields) {
		f.selected = len(fields) - 1
	}
	if f.selected < 0 {
		f.selected = 0
	}
}

// Fields returns the current fields.
func (f *FieldList) Fields() []domain.Field {
	return f.fields
}

// Selected returns the index of the selected field.
func (f *FieldList) Selected() int {
	return f.selected
}

// SetSelected sets the selected index.
func (f *FieldList) SetSelected(index int) {
	if index >= 0 && index < len(f.fields) {
		f.selected = index
	}
}

// SelectedField returns the currently selected field, or nil if none.
func (f *FieldList) SelectedField() *domain.Field {
	if len(f.fields) == 0 || f.selected < 0 || f.selected >= len(f.fields) {
		return nil
	}
	return &f.fields[f.selected]
}

// MoveUp moves selection up.
func (f *FieldList) MoveUp() {
	if f.selected > 0 {
		f.selected--
	}
}

// MoveDown moves selection down.
func (f *FieldList) MoveDown() {
	if f.selected < len(f.fields)-1 {
		f.selected++
	}
}

// SetDimensions sets the component dimensions.
func (f *FieldList) SetDimensions(width, height int) {
	f.width = width
	f.height = height
}

// Width returns the current width.
func (f *FieldList) Width() int {
	return f.width
}

// Height returns the current height.
func (f *FieldList) Height() int {
	return f.height
}

// Count returns the number of fields.
func (f *FieldList) Count() int {
	return len(f.fields)
}

// IsEmpty returns whether the list is empty.
func (f *FieldList) IsEmpty() bool {
	return len(f.fields) == 0
}
