package demo

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// tagColors maps narration tags to ANSI colors.
var tagColors = map[string]string{
	"attack":  "#f87171",
	"alarm":   "#fb923c",
	"down":    "#9ca3af",
	"idle":    "#a3e635",
	"patrol":  "#818cf8",
	"reload":  "#facc15",
	"retreat": "#c084fc",
}

// Printer narrates the guard's actions, one line per action.
type Printer struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewPrinter writes to w. Colors are disabled when color is false or w is not a terminal.
func NewPrinter(w io.Writer, color bool) *Printer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Printer{out: termenv.NewOutput(w, opts...)}
}

// Say prints "[tag] name msg".
func (p *Printer) Say(tag, name, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	label := p.out.String("[" + tag + "]")
	if c, ok := tagColors[tag]; ok {
		label = label.Foreground(p.out.Color(c)).Bold()
	}
	fmt.Fprintf(p.out, "%s %s %s\n", label, name, msg)
}
