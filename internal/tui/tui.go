// Package tui is an interactive terminal front end: type a hand and the
// advice columns update on every keystroke.
package tui

import (
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/flopguide/advice"
	"github.com/lox/flopguide/internal/clip"
	"github.com/lox/flopguide/internal/render"
	"github.com/lox/flopguide/poker"
)

// chromeHeight is the number of lines used by the title, input and status bar.
const chromeHeight = 6

// Model is the Bubble Tea model for the advice browser
type Model struct {
	logger   *log.Logger
	renderer *render.Renderer
	rng      *rand.Rand
	copier   clip.Copier

	input   textinput.Model
	results viewport.Model

	hand   poker.Hand
	bundle advice.Bundle
	valid  bool
	status string

	width    int
	height   int
	quitting bool
}

// New creates the model. initial may be empty.
func New(logger *log.Logger, renderer *render.Renderer, rng *rand.Rand, copier clip.Copier, initial string) *Model {
	ti := textinput.New()
	ti.Placeholder = "Js9s, 7c7d, AhKd..."
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 20
	ti.Prompt = "hand> "
	ti.PromptStyle = PromptStyle
	ti.TextStyle = InputTextStyle
	ti.SetValue(initial)

	m := &Model{
		logger:   logger.WithPrefix("tui"),
		renderer: renderer,
		rng:      rng,
		copier:   copier,
		input:    ti,
		results:  viewport.New(80, 20),
	}
	m.refresh()
	return m
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.Width = msg.Width
		m.results.Height = max(1, msg.Height-chromeHeight)
		m.renderer.SetWidth(msg.Width)
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+r":
			m.input.SetValue(poker.RandomHand(m.rng))
			m.input.CursorEnd()
			m.status = ""
			m.refresh()
			return m, nil
		case "ctrl+y":
			m.copyAdvice()
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.status = ""
		m.refresh()
	}
	return m, cmd
}

// refresh re-parses the input and re-renders the results pane.
func (m *Model) refresh() {
	hand, err := poker.ParseHand(m.input.Value())
	if err != nil {
		m.valid = false
		m.results.SetContent(m.renderer.HowTo())
		return
	}

	m.hand = hand
	m.bundle = advice.Generate(hand)
	m.valid = true
	m.logger.Debug("Advising hand", "hand", hand.String(), "label", hand.Label())
	m.results.SetContent(m.renderer.Bundle(hand, m.bundle))
	m.results.GotoTop()
}

func (m *Model) copyAdvice() {
	if !m.valid {
		m.status = WarningStyle.Render("Nothing to copy yet")
		return
	}
	if clip.Copy(m.logger, m.copier, m.bundle.Text(m.hand)) {
		m.status = SuccessStyle.Render("Copied " + m.hand.Label())
	} else {
		m.status = WarningStyle.Render("Clipboard unavailable")
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("♠ ♥ Flop Guide ♦ ♣"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.results.View())
	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(m.status)
		sb.WriteString("  ")
	}
	sb.WriteString(HelpStyle.Render("ctrl+r random · ctrl+y copy · ↑/↓ scroll · esc quit"))
	return sb.String()
}

// Hand returns the current hand and whether the input holds a valid one.
func (m *Model) Hand() (poker.Hand, bool) {
	return m.hand, m.valid
}

// Status returns the status line text.
func (m *Model) Status() string {
	return m.status
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
