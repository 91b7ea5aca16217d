package prompt

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func twoQuestions() Form {
	return NewForm(
		func([]string) Model {
			return NewModel("Names?", "", "", atLeastTwo)
		},
		func(answers []string) Model {
			return NewModel(fmt.Sprintf("Groups for %s?", answers[0]), "", "", notEmpty)
		},
	)
}

func TestForm_TypeaheadGoesToNextQuestion(t *testing.T) {
	req := require.New(t)
	var m tea.Model = twoQuestions()

	m = typeText(m, "A, B, C, D")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	req.NotNil(cmd)
	req.NotEqual(tea.QuitMsg{}, cmd())
	req.Equal([]string{"A, B, C, D"}, m.(Form).Answers())
	req.Contains(m.View(), "Groups for A, B, C, D?")

	m = typeText(m, "2")
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	form := m.(Form)
	req.Equal(tea.QuitMsg{}, cmd())
	req.Equal([]string{"A, B, C, D", "2"}, form.Answers())
	req.False(form.Cancelled())

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})
	req.Nil(cmd)
	req.Equal([]string{"A, B, C, D", "2"}, m.(Form).Answers())
}

func TestForm_InvalidAnswerStaysOnQuestion(t *testing.T) {
	var m tea.Model = twoQuestions()

	m = typeText(m, "Alice")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	form := m.(Form)
	require.Nil(t, cmd)
	require.Empty(t, form.Answers())
	require.Error(t, form.Current().Err())
}

func TestForm_CancelOnSecondQuestion(t *testing.T) {
	var m tea.Model = twoQuestions()

	m = typeText(m, "A, B")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.True(t, m.(Form).Cancelled())
	require.Equal(t, tea.QuitMsg{}, cmd())
}
