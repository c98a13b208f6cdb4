package report

import (
	"fmt"
	"io"
)

// Palette holds the ANSI escape sequences used by the console sink.
// Styling is configuration at the output boundary; the sweep policy
// never sees it.
type Palette struct {
	Reset  string
	Yellow string
	Red    string
	Green  string
}

// DefaultPalette returns the bright ANSI colors used on interactive terminals.
func DefaultPalette() Palette {
	return Palette{
		Reset:  "\033[0m",
		Yellow: "\033[33;1m",
		Red:    "\033[31;1m",
		Green:  "\033[32;1m",
	}
}

// NoColorPalette returns a palette that renders everything unstyled.
func NoColorPalette() Palette {
	return Palette{}
}

// Console renders observations for a human operator watching a terminal.
// Errors go to errOut, everything else to out.
type Console struct {
	out     io.Writer
	errOut  io.Writer
	palette Palette
}

func NewConsole(out, errOut io.Writer, palette Palette) *Console {
	return &Console{out: out, errOut: errOut, palette: palette}
}

func (c *Console) Record(e Event) {
	p := c.palette
	switch e.Action {
	case ActionDryRun:
		fmt.Fprintf(c.out, "%sRemoving (dry-run):%s %s\n", p.Yellow, p.Reset, e.Path)
	case ActionRemove:
		fmt.Fprintf(c.out, "%sRemoving:%s %s\n", p.Red, p.Reset, e.Path)
	case ActionSkip:
		fmt.Fprintf(c.out, "%sSkipping:%s %s\n", p.Green, p.Reset, e.Path)
	case ActionError:
		fmt.Fprintf(c.errOut, "%sError:%s %v\n", p.Red, p.Reset, e.Err)
	}
}
