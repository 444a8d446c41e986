// Package tui is a terminal demo of the controlled-input contract: the
// text field never owns the text, it forwards every change to the input
// session and renders back whatever the engine emits, cursor at end.
package tui

import (
	"fmt"
	"strings"

	"currency-mask/internal/mask"
	"currency-mask/internal/session"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the TUI model for one currency field.
type Model struct {
	input textinput.Model
	sess  *session.Session
	mode  mask.Mode

	fopts mask.FormatOptions
	vopts mask.ValidateOptions

	lastText string
	quitting bool
}

// NewModel creates a field model bound to a fresh session.
func NewModel(fopts mask.FormatOptions, vopts mask.ValidateOptions, mode mask.Mode) (Model, error) {
	sess, err := session.New(nil, fopts, vopts, mode)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "0"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 32

	return Model{
		input: ti,
		sess:  sess,
		mode:  mode,
		fopts: fopts,
		vopts: vopts,
	}, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			// Toggle display mode and recompute once.
			if m.mode == mask.ModeCurrency {
				m.mode = mask.ModeRaw
			} else {
				m.mode = mask.ModeCurrency
			}
			state, err := m.sess.Reconfigure(m.fopts, m.vopts, m.mode)
			if err == nil {
				m.syncField(state)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Controlled input: any change the widget produced goes through the
	// session, and the session's text is what ends up displayed.
	if m.input.Value() != m.lastText {
		m.syncField(m.sess.SetText(m.input.Value()))
	}
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.sess.State()

	var s strings.Builder
	s.WriteString(titleStyle.Render("currency-mask"))
	s.WriteString("\n")
	s.WriteString(fieldStyle.Render(m.input.View()))
	s.WriteString("\n\n")

	s.WriteString(labelStyle.Render("mode   "))
	s.WriteString(m.mode.String())
	s.WriteString("\n")

	s.WriteString(labelStyle.Render("value  "))
	if state.Value != nil {
		s.WriteString(valueStyle.Render(fmt.Sprintf("%v", *state.Value)))
	} else {
		s.WriteString(labelStyle.Render("<empty>"))
	}
	s.WriteString("\n")

	s.WriteString(labelStyle.Render("digits "))
	s.WriteString(state.Digits)
	s.WriteString("\n")

	if state.Err != "" {
		s.WriteString(errorStyle.Render(state.Err))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("Tab: toggle mode • Esc: quit"))
	s.WriteString("\n")

	return lipgloss.NewStyle().Padding(1, 2).Render(s.String())
}

// syncField writes the engine's text back into the widget, cursor at end.
func (m *Model) syncField(state mask.State) {
	m.input.SetValue(state.Text)
	m.input.CursorEnd()
	m.lastText = state.Text
}
