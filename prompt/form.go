package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Step builds the next question from the answers given so far.
type Step func(answers []string) Model

// Form asks a sequence of questions inside a single program, so typeahead
// meant for a later question is never consumed by an earlier one.
type Form struct {
	steps     []Step
	answers   []string
	answered  []string
	current   Model
	done      bool
	cancelled bool
}

func NewForm(steps ...Step) Form {
	f := Form{steps: steps}
	if len(steps) > 0 {
		f.current = steps[0](nil)
	} else {
		f.done = true
	}
	return f
}

func (f Form) Init() tea.Cmd {
	if f.done {
		return tea.Quit
	}
	return f.current.Init()
}

func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if f.done || f.cancelled {
		return f, nil
	}

	next, cmd := f.current.Update(msg)
	f.current = next.(Model)

	switch {
	case f.current.Cancelled():
		f.cancelled = true
		return f, tea.Quit
	case f.current.Done():
		f.answers = append(f.answers, f.current.Value())
		f.answered = append(f.answered, f.current.View())
		if len(f.answers) == len(f.steps) {
			f.done = true
			return f, tea.Quit
		}
		f.current = f.steps[len(f.answers)](f.answers)
		return f, f.current.Init()
	}
	return f, cmd
}

func (f Form) View() string {
	var b strings.Builder
	for _, v := range f.answered {
		b.WriteString(v)
	}
	if !f.done {
		b.WriteString(f.current.View())
	}
	return b.String()
}

// Answers returns one answer per completed step, in order.
func (f Form) Answers() []string {
	return f.answers
}

func (f Form) Current() Model {
	return f.current
}

func (f Form) Cancelled() bool {
	return f.cancelled
}
