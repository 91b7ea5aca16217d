package render

import (
	"fmt"
	"group-maker/domain"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

const boxesPerRow = 3

var palette = []lipgloss.Color{
	lipgloss.Color("#e57373"),
	lipgloss.Color("#4db6ac"),
	lipgloss.Color("#ffd54f"),
	lipgloss.Color("#8BC34A"),
	lipgloss.Color("#2196F3"),
	lipgloss.Color("#ff8a65"),
}

// BoxRenderer draws every group in its own rounded, coloured box, three per row.
type BoxRenderer struct {
	width   int
	colours bool
}

func NewBoxRenderer(width int, colours bool) *BoxRenderer {
	return &BoxRenderer{width: width, colours: colours}
}

func (b *BoxRenderer) Render(w io.Writer, groups domain.GroupSet) error {
	r := lipgloss.NewRenderer(w)

	boxes := make([]string, len(groups))
	for i, group := range groups {
		boxes[i] = b.box(r, i, group)
	}

	rows := lo.Map(lo.Chunk(boxes, boxesPerRow), func(row []string, _ int) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, row...)
	})

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
	return err
}

func (b *BoxRenderer) box(r *lipgloss.Renderer, i int, group domain.Group) string {
	title := r.NewStyle().Bold(true)
	frame := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MarginRight(1).
		Width(b.width)

	if b.colours {
		c := palette[i%len(palette)]
		title = title.Foreground(c)
		frame = frame.BorderForeground(c)
	}

	lines := append([]string{title.Render(groupTitle(i))}, group...)
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
