// Package tui is the terminal chat front-end.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/chatbot"
)

const banner = `
  ____      _                 ____        _
 / ___|   _| |__   ___ _ __  | __ )  ___ | |_
| |  | | | | '_ \ / _ \ '__| |  _ \ / _ \| __|
| |__| |_| | |_) |  __/ |    | |_) | (_) | |_
 \____\__, |_.__/ \___|_|    |____/ \___/ \__|
      |___/`

const helpText = `Ask me about passwords, phishing, privacy or safe browsing.
Manage tasks: "add task ...", "list tasks", "complete task 1", "delete task 1".
Take the quiz: "start quiz", then answer with the option number.
Local commands: /history, /activity, /help, /quit.`

const askPlaceholder = "Ask me about cybersecurity..."

// Engine is the part of chatbot.Engine the terminal UI drives.
type Engine interface {
	ProcessInput(text string) string
	SaveUserName(name string) string
	UserName() string
	ConversationHistory() []string
	ActivityLog() []string
	EndSession()
}

// Styles for the TUI
type Styles struct {
	Prompt  lipgloss.Style
	User    lipgloss.Style
	Bot     lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Dim     lipgloss.Style
	Banner  lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		User:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Bot:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Banner:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	}
}

// Model is the bubbletea model of the chat screen.
type Model struct {
	engine   Engine
	textarea textarea.Model
	styles   *Styles

	askingName bool
	output     []string

	// Exit confirmation
	ctrlCPressed bool
	ctrlCTime    time.Time
	now          func() time.Time
}

// NewModel returns the chat model. When userName is valid it is saved
// right away and the name prompt is skipped.
func NewModel(engine Engine, userName string) Model {
	ta := textarea.New()
	ta.Placeholder = "What's your name?"
	ta.Focus()
	ta.CharLimit = 500
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ta.KeyMap.InsertNewline.SetEnabled(false)

	m := Model{
		engine:     engine,
		textarea:   ta,
		styles:     NewStyles(),
		askingName: true,
		now:        time.Now,
	}
	m.addOutput(m.styles.Banner.Render(banner))
	m.addOutput("Welcome to the Cybersecurity Awareness Chatbot!")

	switch {
	case chatbot.IsValidName(userName):
		m.greet(userName)
	case engine.UserName() != "":
		m.addOutput(m.styles.Bot.Render(fmt.Sprintf("Welcome back, %s!", engine.UserName())))
		m.addOutput(m.styles.Dim.Render(helpText))
		m.askingName = false
		m.textarea.Placeholder = askPlaceholder
	default:
		m.addOutput(m.styles.Bot.Render("Before we start, what's your name?"))
	}
	return m
}

// Run starts the terminal UI and blocks until the user quits.
func Run(engine Engine, userName string) error {
	p := tea.NewProgram(NewModel(engine, userName))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tea.Println(strings.Join(m.output, "\n")))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width < 20 {
			width = 20
		}
		m.textarea.SetWidth(width)
		return m, nil

	case tea.KeyMsg:
		if msg.Type != tea.KeyCtrlC {
			m.ctrlCPressed = false
		}

		switch msg.Type {
		case tea.KeyCtrlC:
			// Double Ctrl+C to quit
			if m.ctrlCPressed && m.now().Sub(m.ctrlCTime) < 2*time.Second {
				m.engine.EndSession()
				return m, tea.Quit
			}
			m.ctrlCPressed = true
			m.ctrlCTime = m.now()
			return m, m.print(m.styles.Warning.Render("Press Ctrl+C again to exit"))

		case tea.KeyEnter:
			text := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if text == "" {
				return m, nil
			}
			return m.submit(text)
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.styles.Prompt.Render(">") + " " + m.textarea.View() + "\n" +
		m.styles.Dim.Render("enter to send · /help · ctrl+c twice to exit")
}

func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	start := len(m.output)

	if m.askingName {
		if !chatbot.IsValidName(text) {
			m.addOutput(m.styles.Error.Render(chatbot.InvalidName))
			return m, m.flush(start)
		}
		m.greet(text)
		return m, m.flush(start)
	}

	switch strings.ToLower(text) {
	case "/quit", "/exit":
		m.engine.EndSession()
		m.addOutput(m.styles.Bot.Render("Stay safe online. Goodbye!"))
		return m, tea.Sequence(m.flush(start), tea.Quit)
	case "/help":
		m.addOutput(m.styles.Dim.Render(helpText))
	case "/history":
		history := m.engine.ConversationHistory()
		if len(history) == 0 {
			m.addOutput(m.styles.Dim.Render("No conversation yet."))
		} else {
			m.addOutput(m.styles.Dim.Render(strings.Join(history, "\n")))
		}
	case "/activity":
		m.addOutput(m.styles.Dim.Render("Recent activity log:\n" + strings.Join(m.engine.ActivityLog(), "\n")))
	default:
		m.addOutput(m.styles.User.Render("You: ") + text)
		m.addOutput(m.styles.Bot.Render("Bot: ") + m.engine.ProcessInput(text))
	}
	return m, m.flush(start)
}

func (m *Model) greet(name string) {
	m.addOutput(m.styles.Bot.Render(m.engine.SaveUserName(name)))
	m.addOutput(m.styles.Dim.Render(helpText))
	m.askingName = false
	m.textarea.Placeholder = askPlaceholder
}

func (m *Model) addOutput(line string) {
	m.output = append(m.output, line)
}

// flush prints the lines added since start above the input.
func (m *Model) flush(start int) tea.Cmd {
	return tea.Println(strings.Join(m.output[start:], "\n"))
}

func (m *Model) print(line string) tea.Cmd {
	start := len(m.output)
	m.addOutput(line)
	return m.flush(start)
}
