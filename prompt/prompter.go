package prompt

import (
	"context"
	goerrors "errors"
	"fmt"
	"group-maker/errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Prompter runs prompts and spinners against the given terminal streams.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Ask blocks until the answer passes check. It returns errors.ErrUserCancelled
// on Ctrl+C, Esc, or when ctx is cancelled.
func (p *Prompter) Ask(ctx context.Context, question, placeholder, initial string, check Check) (string, error) {
	answers, err := p.AskAll(ctx, func([]string) Model {
		return NewModel(question, placeholder, initial, check)
	})
	if err != nil {
		return "", err
	}
	return answers[0], nil
}

// AskAll runs every step in one program and returns one answer per step.
func (p *Prompter) AskAll(ctx context.Context, steps ...Step) ([]string, error) {
	if len(steps) == 0 {
		return nil, nil
	}
	final, err := p.run(ctx, NewForm(steps...))
	if err != nil {
		return nil, err
	}
	f := final.(Form)
	if f.Cancelled() {
		return nil, errors.ErrUserCancelled
	}
	return f.Answers(), nil
}

// Spin shows label next to a spinner for d. A zero duration does nothing.
func (p *Prompter) Spin(ctx context.Context, label string, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	final, err := p.run(ctx, newSpinnerModel(label, d))
	if err != nil {
		return err
	}
	if final.(spinnerModel).cancelled {
		return errors.ErrUserCancelled
	}
	return nil
}

func (p *Prompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := program.Run()
	switch {
	case err == nil:
		return final, nil
	case ctx.Err() != nil, goerrors.Is(err, tea.ErrProgramKilled), goerrors.Is(err, tea.ErrInterrupted):
		return nil, errors.ErrUserCancelled
	default:
		return nil, fmt.Errorf("%w: terminal: %v", errors.ErrUnexpected, err)
	}
}

type spinDoneMsg struct{}

type spinnerModel struct {
	spinner   spinner.Model
	label     string
	duration  time.Duration
	cancelled bool
	done      bool
}

func newSpinnerModel(label string, d time.Duration) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd54f"))
	return spinnerModel{spinner: s, label: label, duration: d}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.Tick(m.duration, func(time.Time) tea.Msg {
		return spinDoneMsg{}
	}))
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			return m, tea.Quit
		}
	case spinDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return m.spinner.View() + " " + m.label + "\n"
}
