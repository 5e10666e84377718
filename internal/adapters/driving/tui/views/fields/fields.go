// Package fields provides the field review view for the TUI.
// It is the main surface of the reviewer: extracted values, confidence
// tiers, inline editing, and access to page-level evidence.
package fields

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/components/input"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/components/list"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/components/status"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/keymap"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/messages"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/styles"
	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
)

// Mode identifies the interaction mode of the fields view.
type Mode int

const (
	// ModeList is plain list navigation.
	ModeList Mode = iota
	// ModeEditing captures a new value for the selected field.
	ModeEditing
	// ModeAdding picks a catalog type for a new field.
	ModeAdding
	// ModeFiltering captures a search query.
	ModeFiltering
)

// View is the field review view for the active document.
type View struct {
	styles  *styles.Styles
	session driving.SessionService

	fieldList   *list.FieldList
	valueInput  *input.LabelledInput
	filterInput *input.LabelledInput
	statusbar   *status.Bar

	mode           Mode
	editingFieldID string
	filter         string
	tierFilter     *domain.Tier
	pickerSelected int
	width          int
	height         int
	ready          bool
}

// NewView creates a new fields view.
func NewView(s *styles.Styles, session driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:      s,
		session:     session,
		fieldList:   list.NewFieldList(s),
		valueInput:  input.NewLabelledInput(s, "Value", ""),
		filterInput: input.NewLabelledInput(s, "Filter", "label, value, or id"),
		statusbar:   status.NewBar(s, keymap.DefaultKeyMap()),
	}
}

// Init initialises the view and snapshots the active field set.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh re-reads the visible field set from the session, applying the
// current text and tier filters.
func (v *View) Refresh() {
	if v.session == nil {
		return
	}

	fields := v.session.Fields()
	if v.filter != "" {
		fields = v.session.SearchFields(v.filter)
	}
	if v.tierFilter != nil {
		filtered := make([]domain.Field, 0, len(fields))
		for _, f := range fields {
			if f.Tier() == *v.tierFilter {
				filtered = append(filtered, f)
			}
		}
		fields = filtered
	}
	v.fieldList.SetFields(fields)
	v.statusbar.SetState(status.StateFields)
	v.statusbar.SetFieldCount(len(fields))
}

// Update handles messages for the fields view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.fieldList.SetDimensions(msg.Width, msg.Height-8)
		v.valueInput.SetWidth(msg.Width - 4)
		v.filterInput.SetWidth(msg.Width - 4)
		v.statusbar.SetWidth(msg.Width)
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case ModeEditing:
			return v.handleEditingKeyMsg(msg)
		case ModeAdding:
			return v.handleAddingKeyMsg(msg)
		case ModeFiltering:
			return v.handleFilteringKeyMsg(msg)
		case ModeList:
			return v.handleListKeyMsg(msg)
		}
	}

	return v, nil
}

// handleListKeyMsg handles key presses in list mode.
func (v *View) handleListKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "down", "j":
		v.fieldList, _ = v.fieldList.Update(msg)

	case "e", "enter":
		if field := v.fieldList.SelectedField(); field != nil {
			v.mode = ModeEditing
			v.editingFieldID = field.ID
			v.valueInput.SetLabel(field.Label)
			v.valueInput.SetValue(field.Value)
			return v, v.valueInput.Focus()
		}

	case "a":
		if v.session != nil && v.session.ActiveDocument() != nil {
			v.mode = ModeAdding
			v.pickerSelected = 0
		}

	case "d":
		if field := v.fieldList.SelectedField(); field != nil {
			v.session.RemoveField(field.ID)
			v.Refresh()
		}

	case "/":
		v.mode = ModeFiltering
		v.filterInput.SetValue(v.filter)
		return v, v.filterInput.Focus()

	case "t":
		v.cycleTierFilter()
		v.Refresh()

	case "v":
		if field := v.fieldList.SelectedField(); field != nil {
			doc := v.session.ActiveDocument()
			if doc != nil {
				id, label, value := field.ID, field.Label, field.Value
				docID := doc.ID
				return v, func() tea.Msg {
					return messages.EvidenceRequested{
						DocumentID: docID,
						FieldID:    id,
						FieldLabel: label,
						FieldValue: value,
					}
				}
			}
		}

	case "r":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewReview}
		}

	case "esc":
		if v.filter != "" || v.tierFilter != nil {
			v.filter = ""
			v.tierFilter = nil
			v.Refresh()
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// handleEditingKeyMsg handles key presses while editing a value.
func (v *View) handleEditingKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.session.UpdateField(v.editingFieldID, v.valueInput.Value())
		v.mode = ModeList
		v.editingFieldID = ""
		v.Refresh()
		return v, nil
	case "esc":
		v.mode = ModeList
		v.editingFieldID = ""
		return v, nil
	}

	var cmd tea.Cmd
	v.valueInput, cmd = v.valueInput.Update(msg)
	return v, cmd
}

// handleAddingKeyMsg handles key presses in the catalog picker.
func (v *View) handleAddingKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	types := v.catalogTypes()

	switch msg.String() {
	case "up", "k":
		if v.pickerSelected > 0 {
			v.pickerSelected--
		}
	case "down", "j":
		if v.pickerSelected < len(types)-1 {
			v.pickerSelected++
		}
	case "enter":
		if v.pickerSelected < len(types) {
			id := v.session.AddField(types[v.pickerSelected].ID)
			v.mode = ModeList
			v.Refresh()
			// Move the cursor to the appended field
			if id != "" {
				v.fieldList.SetSelected(v.fieldList.Count() - 1)
			}
		}
	case "esc":
		v.mode = ModeList
	}

	return v, nil
}

// handleFilteringKeyMsg handles key presses while typing a filter.
func (v *View) handleFilteringKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.filter = strings.TrimSpace(v.filterInput.Value())
		v.mode = ModeList
		v.Refresh()
		return v, nil
	case "esc":
		v.mode = ModeList
		return v, nil
	}

	var cmd tea.Cmd
	v.filterInput, cmd = v.filterInput.Update(msg)
	return v, cmd
}

// cycleTierFilter advances the tier filter: all, high, medium, low, manual.
func (v *View) cycleTierFilter() {
	order := []domain.Tier{domain.TierHigh, domain.TierMedium, domain.TierLow, domain.TierUnset}

	if v.tierFilter == nil {
		t := order[0]
		v.tierFilter = &t
		return
	}
	for i, t := range order {
		if *v.tierFilter == t {
			if i == len(order)-1 {
				v.tierFilter = nil
			} else {
				next := order[i+1]
				v.tierFilter = &next
			}
			return
		}
	}
	v.tierFilter = nil
}

// catalogTypes returns the catalog entries for the add picker.
func (v *View) catalogTypes() []domain.FieldType {
	if v.session == nil || v.session.Catalog() == nil {
		return nil
	}
	return v.session.Catalog().Types()
}

// View renders the fields view.
func (v *View) View() string {
	var b strings.Builder

	docName := "(no document)"
	if v.session != nil {
		if doc := v.session.ActiveDocument(); doc != nil {
			docName = doc.Name
		}
	}
	b.WriteString(v.styles.Title.Render("Fields - " + docName))
	b.WriteString("\n\n")

	if v.session == nil || v.session.ActiveDocument() == nil {
		b.WriteString(v.styles.Muted.Render("No active document. Upload one first."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	switch v.mode {
	case ModeEditing:
		b.WriteString(v.valueInput.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] save  [esc] cancel"))
		return b.String()

	case ModeAdding:
		b.WriteString(v.renderPicker())
		return b.String()

	case ModeFiltering:
		b.WriteString(v.filterInput.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] apply  [esc] cancel"))
		return b.String()

	case ModeList:
		// Fall through to the list rendering below.
	}

	if filterLine := v.renderFilterLine(); filterLine != "" {
		b.WriteString(filterLine)
		b.WriteString("\n\n")
	}

	b.WriteString(v.fieldList.View())
	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())
	b.WriteString("\n")
	b.WriteString(v.statusbar.View())

	return b.String()
}

// renderFilterLine describes the active filters, empty when none.
func (v *View) renderFilterLine() string {
	var parts []string
	if v.filter != "" {
		parts = append(parts, fmt.Sprintf("filter: %q", v.filter))
	}
	if v.tierFilter != nil {
		parts = append(parts, "tier: "+v.tierFilter.String())
	}
	if len(parts) == 0 {
		return ""
	}
	return v.styles.Warning.Render(strings.Join(parts, "  ") + "  (esc clears)")
}

// renderPicker renders the catalog type picker.
func (v *View) renderPicker() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Add field"))
	b.WriteString("\n\n")

	for i, t := range v.catalogTypes() {
		indicator := "  "
		label := t.Label
		if t.Unit != "" {
			label += " (" + t.Unit + ")"
		}
		if i == v.pickerSelected {
			indicator = "> "
			b.WriteString(v.styles.Selected.Render(indicator + label))
		} else {
			b.WriteString(v.styles.Normal.Render(indicator + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] add  [esc] cancel"))

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render(
		"[e] edit  [a] add  [d] delete  [/] filter  [t] tier  [v] evidence  [r] review  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.fieldList.SetDimensions(width, height-8)
	v.valueInput.SetWidth(width - 4)
	v.filterInput.SetWidth(width - 4)
	v.statusbar.SetWidth(width)
}

// Mode returns the current interaction mode.
func (v *View) Mode() Mode {
	return v.mode
}

// Fields returns the currently visible fields.
func (v *View) Fields() []domain.Field {
	return v.fieldList.Fields()
}

// SelectedField returns the currently selected field, or nil if none.
func (v *View) SelectedField() *domain.Field {
	return v.fieldList.SelectedField()
}

// Filter returns the active text filter.
func (v *View) Filter() string {
	return v.filter
}

// TierFilter returns the active tier filter, nil when showing all tiers.
func (v *View) TierFilter() *domain.Tier {
	return v.tierFilter
}
