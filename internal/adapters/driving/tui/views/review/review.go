// Package review provides the submission gate view for the TUI.
// It classifies the active document's fields and decides whether
// submission needs an explicit override.
package review

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/messages"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/styles"
	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
)

// View is the submission gate view.
type View struct {
	styles  *styles.Styles
	session driving.SessionService
	review  driving.ReviewService

	report     domain.ReviewReport
	confirming bool
	submitted  bool
	width      int
	height     int
	ready      bool
}

// NewView creates a new review view.
func NewView(s *styles.Styles, session driving.SessionService, review driving.ReviewService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		session: session,
		review:  review,
	}
}

// Init initialises the view and evaluates the active field set.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh re-evaluates the active document's fields.
func (v *View) Refresh() {
	v.confirming = false
	v.submitted = false
	if v.session == nil || v.review == nil {
		v.report = domain.ReviewReport{CanSubmitDirectly: true}
		return
	}
	v.report = v.review.Evaluate(v.session.Fields())
}

// Update handles messages for the review view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "s":
		if v.submitted || len(v.report.Blocking) > 0 {
			return v, nil
		}
		if v.report.CanSubmitDirectly {
			v.submitted = true
			return v, nil
		}
		// Cautionary issues need an explicit override
		v.confirming = true
		return v, nil

	case "o":
		if v.confirming {
			v.confirming = false
			v.submitted = true
		}
		return v, nil

	case "esc":
		if v.confirming {
			v.confirming = false
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewFields}
		}
	}

	return v, nil
}

// View renders the review view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Review"))
	b.WriteString("\n\n")

	if v.session == nil || v.session.ActiveDocument() == nil {
		b.WriteString(v.styles.Muted.Render("No active document."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	if v.submitted {
		b.WriteString(v.styles.Success.Render("Submitted."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back to fields"))
		return b.String()
	}

	if len(v.report.Blocking) > 0 {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Blocking (%d): fields without a value", len(v.report.Blocking))))
		b.WriteString("\n")
		for _, f := range v.report.Blocking {
			b.WriteString(v.styles.Normal.Render("  " + f.Label))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(v.report.Cautionary) > 0 {
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Cautionary (%d): low-confidence values", len(v.report.Cautionary))))
		b.WriteString("\n")
		for _, f := range v.report.Cautionary {
			line := fmt.Sprintf("  %s = %s", f.Label, f.Value)
			if f.Confidence != nil {
				line += fmt.Sprintf(" (%.0f)", *f.Confidence)
			}
			b.WriteString(v.styles.Normal.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case v.confirming:
		b.WriteString(v.styles.Warning.Render("Submit despite low-confidence values?"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[o] submit anyway  [esc] cancel"))

	case len(v.report.Blocking) > 0:
		b.WriteString(v.styles.Error.Render("Not ready: fill the blocking fields first."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back to fields"))

	case v.report.CanSubmitDirectly:
		b.WriteString(v.styles.Success.Render("Ready: all fields filled with high confidence."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[s] submit  [esc] back"))

	default:
		b.WriteString(v.styles.Warning.Render("Ready with warnings."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[s] submit  [esc] back"))
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Report returns the current review report.
func (v *View) Report() domain.ReviewReport {
	return v.report
}

// Confirming returns whether the override prompt is showing.
func (v *View) Confirming() bool {
	return v.confirming
}

// Submitted returns whether the field set has been submitted.
func (v *View) Submitted() bool {
	return v.submitted
}
