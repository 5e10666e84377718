package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/messages"
	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
	"github.com/voltaic-labs/cellspec-cli/internal/core/services"
)

func conf(v float64) *float64 { return &v }

// stubEvidence returns a fixed highlight for any field.
type stubEvidence struct {
	highlight *driving.Highlight
}

func (s *stubEvidence) Highlight(_ context.Context, _, _ string) (*driving.Highlight, error) {
	return s.highlight, nil
}

// stubChat answers every question with a fixed string.
type stubChat struct{}

func (s *stubChat) Ask(_ context.Context, _, _ string) (string, error) {
	return "It is 10 Ah.", nil
}

func newTestPorts() *Ports {
	return &Ports{
		Session:  services.NewSession(domain.DefaultCatalog()),
		Ingest:   services.NewIngestService(nil, nil),
		Review:   services.NewReviewService(),
		Evidence: &stubEvidence{},
		Chat:     &stubChat{},
	}
}

func extractedDocument() *domain.Document {
	return &domain.Document{
		Name:     "cell.pdf",
		RemoteID: "file-abc",
		Fields: []domain.Field{
			{ID: "f1", Label: "Nominal Capacity", Value: "10", Confidence: conf(92)},
			{ID: "f2", Label: "Cell Chemistry", Value: ""},
		},
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := newTestPorts()
	ports.Session = nil

	app, err := NewApp(ports)

	assert.ErrorIs(t, err, ErrMissingSessionService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_GlobalQuit(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)

	app.Update(messages.ViewChanged{View: messages.ViewUpload})

	assert.Equal(t, messages.ViewUpload, app.CurrentView())
}

func TestApp_Update_DocumentIngested(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewUpload})

	app.Update(messages.DocumentIngested{Document: extractedDocument()})

	// The new document joins the session, becomes active, and the app
	// jumps to its fields
	assert.Equal(t, messages.ViewFields, app.CurrentView())
	require.NotNil(t, ports.Session.ActiveDocument())
	assert.Equal(t, "cell.pdf", ports.Session.ActiveDocument().Name)
	assert.Contains(t, app.View(), "Nominal Capacity")
}

func TestApp_Update_DocumentIngested_Error(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewUpload})

	app.Update(messages.DocumentIngested{Err: domain.ErrExtractionFailed})

	assert.Equal(t, messages.ViewUpload, app.CurrentView())
	assert.ErrorIs(t, app.Err(), domain.ErrExtractionFailed)
}

func TestApp_Update_DocumentSelected(t *testing.T) {
	ports := newTestPorts()
	first := ports.Session.AddDocument(extractedDocument())
	second := ports.Session.AddDocument(&domain.Document{Name: "pack.pdf"})
	require.Equal(t, second, ports.Session.ActiveDocument().ID)

	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	app.Update(messages.DocumentSelected{ID: first})

	assert.Equal(t, messages.ViewFields, app.CurrentView())
	assert.Equal(t, first, ports.Session.ActiveDocument().ID)
}

func TestApp_Update_EvidenceRequested(t *testing.T) {
	ports := newTestPorts()
	ports.Evidence = &stubEvidence{highlight: &driving.Highlight{PageNumber: 3}}
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)

	_, cmd := app.Update(messages.EvidenceRequested{
		DocumentID: "doc-1",
		FieldID:    "f1",
		FieldLabel: "Nominal Capacity",
		FieldValue: "10",
	})

	assert.Equal(t, messages.ViewEvidence, app.CurrentView())
	require.NotNil(t, cmd)

	app.Update(cmd())
	assert.Contains(t, app.View(), "Page:    3")
}

func TestApp_Update_QuitMessage(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_View_Menu(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)

	assert.Contains(t, app.View(), "CellSpec")
}

func TestApp_View_Help(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	out := app.View()

	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "Edit value")

	// Esc returns to the menu
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_MenuNavigationToUpload(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.SetDimensions(80, 24)

	// First menu entry is Upload Document
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewUpload, app.CurrentView())
}
