package formatter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/avl"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for printing trees.
type Config struct {
	LineWidth int            // maximum line length in fixed width ‘en’s
	Indent    int            // indentation per tree level
	Colors    bool           // color nodes by balance factor
	Context   *uax11.Context // context for measuring the width of labels
}

// Palette maps absolute balance factors to colors. Index 0 is used for
// perfectly balanced nodes, index 1 for nodes leaning to one side, and the
// last entry for anything else (which indicates a broken tree).
type Palette [3]*color.Color

// DefaultPalette is the palette used if config.Colors is set.
var DefaultPalette = Palette{
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgRed, color.Bold),
}

var setupGraphemes sync.Once

// Output prints a tree to out, one node per line.
//
// Neither of the arguments may be nil. However, it is safe to have config.Context
// set to nil. In this case, uax11.LatinContext is used.
func Output[E any](tree *avl.Tree[E], out io.Writer, config *Config) error {
	if tree == nil || out == nil || config == nil {
		return errors.New("illegal argument: nil")
	} else if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	indent := config.Indent
	if indent <= 0 {
		indent = 4
	}
	var err error
	var walk func(n *avl.Node[E], depth int)
	walk = func(n *avl.Node[E], depth int) {
		if n == nil || err != nil {
			return
		}
		walk(n.Right(), depth+1)
		if err != nil {
			return
		}
		margin := strings.Repeat(" ", depth*indent)
		annotation := fmt.Sprintf(" [h=%d b=%d]", n.Height(), n.Balance())
		avail := config.LineWidth - len(margin) - len(annotation)
		label := truncate(fmt.Sprint(n.Value()), avail, config.Context)
		T().Debugf("node %q at depth %d", label, depth)
		if _, err = io.WriteString(out, margin); err != nil {
			return
		}
		if config.Colors {
			bf := n.Balance()
			if bf < 0 {
				bf = -bf
			}
			_, err = DefaultPalette[min(bf, len(DefaultPalette)-1)].Fprint(out, label)
		} else {
			_, err = io.WriteString(out, label)
		}
		if err != nil {
			return
		}
		if _, err = io.WriteString(out, annotation+"\n"); err != nil {
			return
		}
		walk(n.Left(), depth+1)
	}
	walk(tree.Root(), 0)
	if err != nil {
		T().Errorf("tree output: %v", err)
	}
	return err
}

// Print outputs a tree to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print[E any](tree *avl.Tree[E], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
		config.Colors = true
	}
	return Output(tree, os.Stdout, config)
}

// truncate shortens s to at most width fixed-width positions, marking the
// cut with an ellipsis. A non-positive width leaves s unchanged.
func truncate(s string, width int, context *uax11.Context) string {
	if width <= 0 || uax11.StringWidth(grapheme.StringFromString(s), context) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := uax11.StringWidth(grapheme.StringFromString(string(r)), context)
		if w+rw > width-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	b.WriteString("…")
	return b.String()
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{Indent: 4}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			config.LineWidth = 65
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 65
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
