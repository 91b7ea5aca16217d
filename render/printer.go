package render

import (
	"fmt"
	"group-maker/domain"
	"io"

	"github.com/gookit/color"
)

const banner = `
  ___                         __  __      _
 / __|_ _ ___ _  _ _ __  ___ |  \/  |__ _| |_____ _ _
| (_ | '_/ _ \ || | '_ \|___|| |\/| / _' | / / -_) '_|
 \___|_| \___/\_,_| .__/     |_|  |_\__,_|_\_\___|_|
                  |_|
`

// Printer writes the banner and the one-line status messages around the prompts.
type Printer struct {
	w       io.Writer
	colours bool
}

func NewPrinter(w io.Writer, colours bool) *Printer {
	return &Printer{w: w, colours: colours}
}

func (p *Printer) Banner() {
	p.println(color.New(color.FgCyan, color.OpBold), banner)
}

func (p *Printer) Info(msg string) {
	p.println(color.New(color.FgGray), msg)
}

func (p *Printer) Success(msg string) {
	p.println(color.New(color.FgGreen, color.OpBold), "✔ "+msg)
}

func (p *Printer) Error(msg string) {
	p.println(color.New(color.FgRed, color.OpBold), "✘ "+msg)
}

func (p *Printer) Goodbye() {
	p.println(color.New(color.FgYellow), "Goodbye!")
}

// Summary prints the totals below the rendered groups.
func (p *Printer) Summary(groups domain.GroupSet) {
	p.Info(fmt.Sprintf("%d names in %d groups", groups.Total(), len(groups)))
}

func (p *Printer) println(style color.Style, msg string) {
	if p.colours {
		msg = style.Render(msg)
	}
	_, _ = fmt.Fprintln(p.w, msg)
}
