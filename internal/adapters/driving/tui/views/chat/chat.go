// Package chat provides the document Q&A view for the TUI.
package chat

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/components/input"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/messages"
	"github.com/voltaic-labs/cellspec-cli/internal/adapters/driving/tui/styles"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driving"
)

// Exchange is one question and its answer.
type Exchange struct {
	Question string
	Answer   string
}

// View is the document Q&A view. Questions go to the extraction backend
// with the active document's remote id.
type View struct {
	styles  *styles.Styles
	session driving.SessionService
	chat    driving.ChatService

	questionInput *input.LabelledInput
	ctx           context.Context
	exchanges     []Exchange
	waiting       bool
	err           error
	width         int
	height        int
	ready         bool
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, session driving.SessionService, chat driving.ChatService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:        s,
		session:       session,
		chat:          chat,
		questionInput: input.NewLabelledInput(s, "Ask", "What is the nominal capacity?"),
		ctx:           context.Background(),
	}
}

// WithContext sets the context used for chat requests.
func (v *View) WithContext(ctx context.Context) {
	v.ctx = ctx
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.questionInput.Init()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.questionInput.SetWidth(msg.Width - 4)
		return v, nil

	case tea.KeyMsg:
		if v.waiting {
			return v, nil
		}
		switch msg.String() {
		case "enter":
			question := strings.TrimSpace(v.questionInput.Value())
			if question == "" {
				return v, nil
			}
			doc := v.activeDocument()
			if doc == nil {
				v.err = fmt.Errorf("no active document")
				return v, nil
			}
			v.waiting = true
			v.err = nil
			v.exchanges = append(v.exchanges, Exchange{Question: question})
			v.questionInput.Reset()
			return v, v.ask(doc.ID, question)
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		var cmd tea.Cmd
		v.questionInput, cmd = v.questionInput.Update(msg)
		return v, cmd

	case messages.ChatAnswered:
		v.waiting = false
		if msg.Err != nil {
			v.err = msg.Err
			// Drop the unanswered question
			if len(v.exchanges) > 0 && v.exchanges[len(v.exchanges)-1].Answer == "" {
				v.exchanges = v.exchanges[:len(v.exchanges)-1]
			}
		} else if len(v.exchanges) > 0 {
			v.exchanges[len(v.exchanges)-1].Answer = msg.Answer
		}
		return v, nil

	case messages.ErrorOccurred:
		v.waiting = false
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	v.questionInput, cmd = v.questionInput.Update(msg)
	return v, cmd
}

// ask returns a command that sends the question to the backend.
func (v *View) ask(documentID, question string) tea.Cmd {
	return func() tea.Msg {
		if v.chat == nil {
			return messages.ChatAnswered{Err: fmt.Errorf("chat service not available")}
		}

		answer, err := v.chat.Ask(v.ctx, documentID, question)
		return messages.ChatAnswered{Answer: answer, Err: err}
	}
}

// activeDocument returns the session's active document, nil when none.
func (v *View) activeDocument() *docRef {
	if v.session == nil {
		return nil
	}
	doc := v.session.ActiveDocument()
	if doc == nil {
		return nil
	}
	return &docRef{ID: doc.ID, Name: doc.Name}
}

// docRef carries the identity of the active document.
type docRef struct {
	ID   string
	Name string
}

// View renders the chat view.
func (v *View) View() string {
	var b strings.Builder

	title := "Chat"
	if doc := v.activeDocument(); doc != nil {
		title += " - " + doc.Name
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.activeDocument() == nil {
		b.WriteString(v.styles.Muted.Render("No active document. Upload one first."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	for _, ex := range v.exchanges {
		b.WriteString(v.styles.Subtitle.Render("You: "))
		b.WriteString(v.styles.Normal.Render(ex.Question))
		b.WriteString("\n")
		if ex.Answer != "" {
			b.WriteString(v.styles.Normal.Render(ex.Answer))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if v.waiting {
		b.WriteString(v.styles.Muted.Render("Waiting for answer..."))
		b.WriteString("\n\n")
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	b.WriteString(v.questionInput.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] ask  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.questionInput.SetWidth(width - 4)
}

// Exchanges returns the conversation so far.
func (v *View) Exchanges() []Exchange {
	return v.exchanges
}

// Waiting returns whether an answer is pending.
func (v *View) Waiting() bool {
	return v.waiting
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
