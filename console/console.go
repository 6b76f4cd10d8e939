package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/bstree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for printing.
type Config struct {
	LineWidth int            // target width of a line in en
	Gap       int            // number of blanks between elements of a level
	Context   *uax11.Context // context for measuring label widths
}

// Printer outputs trees level by level. The zero value is not usable; create
// printers with NewPrinter.
type Printer struct {
	palette []*color.Color
	config  *Config
}

var setupGraphemes sync.Once

// NewPrinter creates a printer with a color palette and a configuration.
//
// Level d of a tree is printed with color palette[d % len(palette)].
// If palette is nil, a default palette is used. If config is nil, a
// configuration is derived from the current terminal (see ConfigFromTerminal).
// The printer keeps a copy of config; defaults are filled in on the copy.
func NewPrinter(palette []*color.Color, config *Config) *Printer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &Printer{palette: palette}
	if len(p.palette) == 0 {
		p.palette = makeDefaultPalette()
	}
	if config == nil {
		p.config = ConfigFromTerminal()
		p.config.Context = uax11.ContextFromEnvironment()
	} else {
		c := *config
		p.config = &c
	}
	if p.config.Context == nil {
		p.config.Context = uax11.LatinContext
	}
	if p.config.Gap <= 0 {
		p.config.Gap = 2
	}
	return p
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgRed, color.Bold),
		color.New(color.FgBlue),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
		color.New(color.FgYellow),
	}
}

// Width returns the width of s in en, i.e. in fixed width positions.
//
// ASCII characters count 1 en each. uax11 measures the remaining runs of
// non-ASCII text only, as it treats ASCII digits as emoji components of
// width 2.
func (p *Printer) Width(s string) int {
	width := 0
	for len(s) > 0 {
		i := 0
		for i < len(s) && s[i] < utf8.RuneSelf {
			i++
		}
		width, s = width+i, s[i:]
		j := 0
		for j < len(s) && s[j] >= utf8.RuneSelf {
			j++
		}
		if j > 0 {
			width += uax11.StringWidth(grapheme.StringFromString(s[:j]), p.config.Context)
			s = s[j:]
		}
	}
	return width
}

// PrintLevels writes levels of labels to w, one line per level. Lines
// narrower than the configured line width are centered.
func (p *Printer) PrintLevels(levels [][]string, w io.Writer) error {
	bw := bufio.NewWriter(w)
	gap := strings.Repeat(" ", p.config.Gap)
	for depth, level := range levels {
		width := p.config.Gap * (len(level) - 1)
		for _, label := range level {
			width += p.Width(label)
		}
		if indent := (p.config.LineWidth - width) / 2; indent > 0 {
			bw.WriteString(strings.Repeat(" ", indent))
		}
		c := p.palette[depth%len(p.palette)]
		for i, label := range level {
			if i > 0 {
				bw.WriteString(gap)
			}
			c.Fprint(bw, label)
		}
		bw.WriteByte('\n')
		tracer().Debugf("console: level %d has width %d en", depth, width)
	}
	return bw.Flush()
}

// Fprint writes the levels of tree to w, using printer p. Elements are
// formatted with their default format (%v).
// For an empty tree nothing is written.
func Fprint[T any](p *Printer, tree *bstree.Tree[T], w io.Writer) error {
	var levels [][]string
	for level := range tree.Levels() {
		labels := make([]string, len(level))
		for i, x := range level {
			labels[i] = fmt.Sprint(x)
		}
		levels = append(levels, labels)
	}
	return p.PrintLevels(levels, w)
}

// Print outputs the levels of a tree to stdout, with a configuration
// derived from the terminal.
func Print[T any](tree *bstree.Tree[T]) error {
	return Fprint(NewPrinter(nil, nil), tree, os.Stdout)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 80}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w
		}
	}
	tracer().Infof("console: setting line width to %d en", config.LineWidth)
	return config
}
