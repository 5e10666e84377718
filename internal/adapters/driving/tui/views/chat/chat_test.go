package chat

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/messages"
	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/services"
)

// stubChat answers every question with a fixed string.
type stubChat struct {
	answer string
	err    error

	lastDocumentID string
	lastMessage    string
}

func (s *stubChat) Ask(_ context.Context, documentID, message string) (string, error) {
	s.lastDocumentID = documentID
	s.lastMessage = message
	return s.answer, s.err
}

func newTestView(t *testing.T, chat *stubChat) (*View, string) {
	t.Helper()
	session := services.NewSession(domain.DefaultCatalog())
	docID := session.AddDocument(&domain.Document{Name: "cell.pdf", RemoteID: "file-abc"})
	view := NewView(nil, session, chat)
	view.SetDimensions(80, 24)
	return view, docID
}

func typeString(v *View, s string) *View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func TestView_AskFlow(t *testing.T) {
	stub := &stubChat{answer: "It is 10 Ah."}
	view, docID := newTestView(t, stub)

	view = typeString(view, "What is the capacity?")
	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.True(t, view.Waiting())
	require.Len(t, view.Exchanges(), 1)
	assert.Equal(t, "What is the capacity?", view.Exchanges()[0].Question)

	answered, ok := cmd().(messages.ChatAnswered)
	require.True(t, ok)
	require.NoError(t, answered.Err)
	assert.Equal(t, docID, stub.lastDocumentID)
	assert.Equal(t, "What is the capacity?", stub.lastMessage)

	view, _ = view.Update(answered)
	assert.False(t, view.Waiting())
	assert.Equal(t, "It is 10 Ah.", view.Exchanges()[0].Answer)
	assert.Contains(t, view.View(), "It is 10 Ah.")
}

func TestView_AskFlow_Error(t *testing.T) {
	stub := &stubChat{err: domain.ErrChatUnavailable}
	view, _ := newTestView(t, stub)

	view = typeString(view, "Anything?")
	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view, _ = view.Update(cmd())

	assert.False(t, view.Waiting())
	assert.ErrorIs(t, view.Err(), domain.ErrChatUnavailable)
	// The unanswered question is dropped from the transcript
	assert.Empty(t, view.Exchanges())
}

func TestView_EmptyQuestionIsIgnored(t *testing.T) {
	view, _ := newTestView(t, &stubChat{})

	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, view.Waiting())
}

func TestView_NoActiveDocument(t *testing.T) {
	session := services.NewSession(domain.DefaultCatalog())
	view := NewView(nil, session, &stubChat{})
	view.SetDimensions(80, 24)

	view = typeString(view, "Anything?")
	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	require.Error(t, view.Err())
	assert.Contains(t, view.View(), "No active document")
}

func TestView_NoService(t *testing.T) {
	session := services.NewSession(domain.DefaultCatalog())
	session.AddDocument(&domain.Document{Name: "cell.pdf"})
	view := NewView(nil, session, nil)
	view.SetDimensions(80, 24)

	view = typeString(view, "Anything?")
	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.True(t, view.Waiting())
	answered, ok := cmd().(messages.ChatAnswered)
	require.True(t, ok)
	assert.Error(t, answered.Err)
}

func TestView_IgnoresKeysWhileWaiting(t *testing.T) {
	view, _ := newTestView(t, &stubChat{})
	view.waiting = true

	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, view.Waiting())
}

func TestView_Update_EscReturnsToMenu(t *testing.T) {
	view, _ := newTestView(t, &stubChat{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}
