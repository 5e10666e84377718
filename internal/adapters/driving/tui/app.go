package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/messages"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/styles"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/views/chat"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/views/documents"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/views/evidence"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/views/fields"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/views/menu"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/views/review"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/views/upload"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// uploadView is the document upload view component.
	uploadView *upload.View

	// documentsView is the session document list view component.
	documentsView *documents.View

	// fieldsView is the field review view component.
	fieldsView *fields.View

	// evidenceView is the evidence detail view component.
	evidenceView *evidence.View

	// reviewView is the submission gate view component.
	reviewView *review.View

	// chatView is the document Q&A view component.
	chatView *chat.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		menuView:      menu.NewView(s),
		uploadView:    upload.NewView(s, ports.Ingest),
		documentsView: documents.NewView(s, ports.Session),
		fieldsView:    fields.NewView(s, ports.Session),
		evidenceView:  evidence.NewView(s, ports.Evidence),
		reviewView:    review.NewView(s, ports.Session, ports.Review),
		chatView:      chat.NewView(s, ports.Session, ports.Chat),
		currentView:   messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.uploadView.WithContext(ctx)
	a.evidenceView.WithContext(ctx)
	a.chatView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("cellspec - Specification Review"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.uploadView.SetDimensions(msg.Width, msg.Height)
		a.documentsView.SetDimensions(msg.Width, msg.Height)
		a.fieldsView.SetDimensions(msg.Width, msg.Height)
		a.evidenceView.SetDimensions(msg.Width, msg.Height)
		a.reviewView.SetDimensions(msg.Width, msg.Height)
		a.chatView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewUpload:
			a.uploadView, cmd = a.uploadView.Update(msg)
			return a, cmd

		case messages.ViewDocuments:
			a.documentsView, cmd = a.documentsView.Update(msg)
			return a, cmd

		case messages.ViewFields:
			a.fieldsView, cmd = a.fieldsView.Update(msg)
			return a, cmd

		case messages.ViewEvidence:
			a.evidenceView, cmd = a.evidenceView.Update(msg)
			return a, cmd

		case messages.ViewReview:
			a.reviewView, cmd = a.reviewView.Update(msg)
			return a, cmd

		case messages.ViewChat:
			a.chatView, cmd = a.chatView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewUpload:
			a.uploadView.Reset()
			return a, a.uploadView.Init()
		case messages.ViewDocuments:
			return a, a.documentsView.Init()
		case messages.ViewFields:
			return a, a.fieldsView.Init()
		case messages.ViewReview:
			return a, a.reviewView.Init()
		case messages.ViewChat:
			return a, a.chatView.Init()
		case messages.ViewMenu, messages.ViewHelp, messages.ViewEvidence:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.DocumentIngested:
		// Clear the upload view's in-flight state first
		a.uploadView, cmd = a.uploadView.Update(msg)
		if msg.Err != nil || msg.Document == nil {
			a.err = msg.Err
			return a, cmd
		}
		// The new document becomes active; jump straight to its fields
		a.ports.Session.AddDocument(msg.Document)
		a.currentView = messages.ViewFields
		return a, tea.Batch(cmd, a.fieldsView.Init())

	case messages.DocumentSelected:
		a.ports.Session.SelectDocument(msg.ID)
		a.currentView = messages.ViewFields
		return a, a.fieldsView.Init()

	case messages.EvidenceRequested:
		a.currentView = messages.ViewEvidence
		return a, a.evidenceView.SetRequest(msg)

	case messages.EvidenceLoaded:
		a.evidenceView, cmd = a.evidenceView.Update(msg)
		return a, cmd

	case messages.ChatAnswered:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewUpload:
			a.uploadView, cmd = a.uploadView.Update(msg)
		case messages.ViewEvidence:
			a.evidenceView, cmd = a.evidenceView.Update(msg)
		case messages.ViewChat:
			a.chatView, cmd = a.chatView.Update(msg)
		case messages.ViewMenu, messages.ViewDocuments, messages.ViewFields,
			messages.ViewReview, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewUpload:
		a.uploadView, cmd = a.uploadView.Update(msg)
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewFields:
		a.fieldsView, cmd = a.fieldsView.Update(msg)
	case messages.ViewEvidence:
		a.evidenceView, cmd = a.evidenceView.Update(msg)
	case messages.ViewReview:
		a.reviewView, cmd = a.reviewView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewUpload:
		return a.uploadView.View()
	case messages.ViewDocuments:
		return a.documentsView.View()
	case messages.ViewFields:
		return a.fieldsView.View()
	case messages.ViewEvidence:
		return a.evidenceView.View()
	case messages.ViewReview:
		return a.reviewView.View()
	case messages.ViewChat:
		return a.chatView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back / Cancel
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Fields:
  j/k, ↑/↓    Navigate fields
  e, enter    Edit value
  a           Add field from catalog
  d           Delete field
  /           Filter by text
  t           Cycle tier filter
  v           Show evidence
  r           Open review gate

Review:
  s           Submit
  o           Submit despite warnings

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.fieldsView.SetDimensions(width, height)
}
