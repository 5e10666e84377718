// Package upload provides the document upload view for the TUI.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/components/input"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/messages"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/styles"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
)

// View is the document upload view. It prompts for a file path, runs
// ingestion, and reports the outcome.
type View struct {
	styles    *styles.Styles
	ingest    driving.IngestService
	pathInput *input.LabelledInput

	ctx       context.Context
	uploading bool
	err       error
	width     int
	height    int
	ready     bool
}

// NewView creates a new upload view.
func NewView(s *styles.Styles, ingest driving.IngestService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:    s,
		ingest:    ingest,
		pathInput: input.NewLabelledInput(s, "File", "path/to/datasheet.pdf"),
		ctx:       context.Background(),
	}
}

// WithContext sets the context used for ingestion requests.
func (v *View) WithContext(ctx context.Context) {
	v.ctx = ctx
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.pathInput.Init()
}

// Reset clears the view for a fresh upload.
func (v *View) Reset() {
	v.pathInput.Reset()
	v.uploading = false
	v.err = nil
}

// Update handles messages for the upload view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.pathInput.SetWidth(msg.Width - 4)
		return v, nil

	case tea.KeyMsg:
		if v.uploading {
			// Ignore input while extraction is in flight
			return v, nil
		}
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(v.pathInput.Value())
			if path == "" {
				return v, nil
			}
			v.uploading = true
			v.err = nil
			return v, v.ingestFile(path)
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		var cmd tea.Cmd
		v.pathInput, cmd = v.pathInput.Update(msg)
		return v, cmd

	case messages.DocumentIngested:
		v.uploading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.pathInput.Reset()
		}
		return v, nil

	case messages.ErrorOccurred:
		v.uploading = false
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	v.pathInput, cmd = v.pathInput.Update(msg)
	return v, cmd
}

// ingestFile returns a command that uploads and extracts the file.
func (v *View) ingestFile(path string) tea.Cmd {
	return func() tea.Msg {
		if v.ingest == nil {
			return messages.DocumentIngested{Err: fmt.Errorf("ingest service not available")}
		}

		f, err := os.Open(path)
		if err != nil {
			return messages.DocumentIngested{Err: fmt.Errorf("opening %s: %w", path, err)}
		}
		defer f.Close()

		doc, err := v.ingest.Ingest(v.ctx, filepath.Base(path), f)
		return messages.DocumentIngested{Document: doc, Err: err}
	}
}

// View renders the upload view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Upload Document"))
	b.WriteString("\n\n")

	b.WriteString(v.pathInput.View())
	b.WriteString("\n\n")

	if v.uploading {
		b.WriteString(v.styles.Muted.Render("Extracting specifications..."))
		b.WriteString("\n\n")
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[enter] upload  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.pathInput.SetWidth(width - 4)
}

// Uploading returns whether an upload is in flight.
func (v *View) Uploading() bool {
	return v.uploading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// PathValue returns the current path input value.
func (v *View) PathValue() string {
	return v.pathInput.Value()
}
