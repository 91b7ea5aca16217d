//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=../mocks/mock_renderer.go -package=mocks
package render

import (
	"fmt"
	"group-maker/domain"
	"group-maker/errors"
	"group-maker/internal"
	"io"
)

// Renderer displays a GroupSet. Implementations must not reorder names inside a group.
type Renderer interface {
	Render(w io.Writer, groups domain.GroupSet) error
}

// New returns the renderer matching the configured style.
func New(style string, boxWidth int, colours bool) (Renderer, error) {
	switch style {
	case internal.StyleBox, "":
		return NewBoxRenderer(boxWidth, colours), nil
	case internal.StyleTable:
		return NewTableRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownRenderStyle, style)
	}
}

func groupTitle(i int) string {
	return fmt.Sprintf("Group %d", i+1)
}
