// Package evidence provides the evidence detail view for the TUI.
// It resolves a field's citation and shows where on the page the value
// was found.
package evidence

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/messages"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/styles"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
)

// View shows resolved evidence for a single field.
type View struct {
	styles   *styles.Styles
	evidence driving.EvidenceService

	ctx        context.Context
	fieldLabel string
	fieldValue string
	highlight  *driving.Highlight
	loading    bool
	err        error
	width      int
	height     int
	ready      bool
}

// NewView creates a new evidence view.
func NewView(s *styles.Styles, evidence driving.EvidenceService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		evidence: evidence,
		ctx:      context.Background(),
	}
}

// WithContext sets the context used for evidence resolution.
func (v *View) WithContext(ctx context.Context) {
	v.ctx = ctx
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetRequest starts resolving evidence for the requested field.
func (v *View) SetRequest(req messages.EvidenceRequested) tea.Cmd {
	v.fieldLabel = req.FieldLabel
	v.fieldValue = req.FieldValue
	v.highlight = nil
	v.err = nil
	v.loading = true
	return v.loadEvidence(req.DocumentID, req.FieldID)
}

// loadEvidence returns a command that resolves the field's citation.
func (v *View) loadEvidence(documentID, fieldID string) tea.Cmd {
	return func() tea.Msg {
		if v.evidence == nil {
			return messages.EvidenceLoaded{
				FieldID: fieldID,
				Err:     fmt.Errorf("evidence service not available"),
			}
		}

		hl, err := v.evidence.Highlight(v.ctx, documentID, fieldID)
		return messages.EvidenceLoaded{FieldID: fieldID, Highlight: hl, Err: err}
	}
}

// Update handles messages for the evidence view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewFields}
			}
		}
		return v, nil

	case messages.EvidenceLoaded:
		v.loading = false
		v.highlight = msg.Highlight
		v.err = msg.Err
		return v, nil

	case messages.ErrorOccurred:
		v.loading = false
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// View renders the evidence view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Evidence"))
	b.WriteString("\n\n")

	if v.fieldLabel != "" {
		value := v.fieldValue
		if strings.TrimSpace(value) == "" {
			value = "(empty)"
		}
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%s = %s", v.fieldLabel, value)))
		b.WriteString("\n\n")
	}

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Resolving citation..."))

	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))

	case v.highlight == nil:
		b.WriteString(v.styles.Muted.Render("No evidence recorded for this field."))

	default:
		b.WriteString(v.renderHighlight())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[esc] back to fields"))

	return b.String()
}

// renderHighlight formats the resolved citation.
func (v *View) renderHighlight() string {
	var b strings.Builder

	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Page:    %d", v.highlight.PageNumber)))
	b.WriteString("\n")

	if v.highlight.TextSnippet != "" {
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Matched: %q", v.highlight.TextSnippet)))
		b.WriteString("\n")
	}
	if v.highlight.Reason != "" {
		b.WriteString(v.styles.Normal.Render("Reason:  " + v.highlight.Reason))
		b.WriteString("\n")
	}

	if v.highlight.Overlay != nil {
		o := v.highlight.Overlay
		b.WriteString(v.styles.Success.Render(fmt.Sprintf(
			"Region:  %.1f%% from left, %.1f%% from top, %.1f%% x %.1f%%",
			o.Left, o.Top, o.Width, o.Height)))
		b.WriteString("\n")
	} else {
		b.WriteString(v.styles.Muted.Render("Region:  not yet resolvable (page size unknown)"))
		b.WriteString("\n")
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Highlight returns the resolved highlight, nil when none.
func (v *View) Highlight() *driving.Highlight {
	return v.highlight
}

// Loading returns whether resolution is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
