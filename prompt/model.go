// Package prompt asks the user for input on the terminal. Invalid answers are
// reported under the input and the prompt stays open until a valid answer,
// Ctrl+C or Esc.
package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Check validates a submitted answer. A non-nil error keeps the prompt open.
type Check func(answer string) error

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4db6ac"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

type Model struct {
	question  string
	input     textinput.Model
	check     Check
	err       error
	done      bool
	cancelled bool
}

// NewModel builds a single question prompt. initial pre-fills the input.
func NewModel(question, placeholder, initial string, check Check) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = 0
	ti.Width = 60
	ti.SetValue(initial)
	ti.Focus()

	return Model{question: question, input: ti, check: check}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The answer is frozen once accepted: keys already queued belong to the next question.
	if m.done || m.cancelled {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if err := m.check(m.input.Value()); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.question))
	b.WriteString("\n")

	switch {
	case m.done:
		b.WriteString(answerStyle.Render(m.input.Value()))
		b.WriteString("\n")
		return b.String()
	case m.cancelled:
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(hintStyle.Render("enter to confirm · ctrl+c to quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) Value() string {
	return m.input.Value()
}

func (m Model) Err() error {
	return m.err
}

func (m Model) Done() bool {
	return m.done
}

func (m Model) Cancelled() bool {
	return m.cancelled
}
