// Package tui is the interactive terminal front-end for the complaint
// assistant, rendering the session transcript above an input box.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grievance-labs/complaintbot/internal/chat"
)

const welcome = "Welcome to the complaint assistant. Ask a question, type `file` to file a complaint, or `fetch <id>` to look one up."

// Model is the Bubble Tea model for the chat front-end.
type Model struct {
	controller *chat.Controller
	session    *chat.Session
	input      textinput.Model
	viewport   viewport.Model
	ready      bool
}

// New creates a new TUI model around the given controller.
func New(controller *chat.Controller) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a message and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		controller: controller,
		session:    chat.NewSession(),
		input:      ti,
		viewport:   vp,
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		vh := msg.Height - th - ih - 2
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			if strings.EqualFold(text, "exit") {
				return m, tea.Quit
			}
			m.controller.Handle(context.Background(), m.session, text)
			m.input.SetValue("")
			m.viewport.SetContent(m.renderTranscript())
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the transcript and the input box.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Complaint Assistant")
	transcript := transcriptStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	return header + "\n" + transcript + "\n" + input
}

func (m Model) renderTranscript() string {
	if len(m.session.History) == 0 {
		return welcome
	}
	var b strings.Builder
	for i, turn := range m.session.History {
		if i > 0 {
			b.WriteString("\n")
		}
		switch turn.Role {
		case "user":
			b.WriteString(userStyle.Render("You: ") + turn.Text)
		default:
			b.WriteString(botStyle.Render("Bot: ") + turn.Text)
		}
	}
	return b.String()
}

var (
	transcriptStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
