package inspect

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/spatial/rtree"
	"golang.org/x/term"
)

// ConsoleConfig configures PrintOutline.
type ConsoleConfig struct {
	LineWidth   int          // lines are cut to this width; 0 means no limit
	Indent      string       // indentation per tree level, default is two spaces
	LeafEntries int          // number of entries listed per leaf, default is 4
	NoColor     bool         // suppress color escape sequences
	Inner       *color.Color // color for internal nodes
	Leaf        *color.Color // color for leaf nodes
	Entry       *color.Color // color for leaf entries
}

// ConfigFromTerminal is a simple helper for creating a ConsoleConfig.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets ConsoleConfig.LineWidth accordingly.
func ConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{LineWidth: 80}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 40 {
			config.LineWidth = w - 2
		}
	} else {
		config.NoColor = true
	}
	tracer().Debugf("inspect: setting line width to %d", config.LineWidth)
	return config
}

func (c *ConsoleConfig) withDefaults() *ConsoleConfig {
	cfg := ConsoleConfig{}
	if c != nil {
		cfg = *c
	}
	if cfg.Indent == "" {
		cfg.Indent = "  "
	}
	if cfg.LeafEntries <= 0 {
		cfg.LeafEntries = 4
	}
	if cfg.Inner == nil {
		cfg.Inner = color.New(color.FgBlue, color.Bold)
	}
	if cfg.Leaf == nil {
		cfg.Leaf = color.New(color.FgGreen)
	}
	if cfg.Entry == nil {
		cfg.Entry = color.New(color.FgHiBlack)
	}
	if cfg.NoColor {
		for _, col := range []*color.Color{cfg.Inner, cfg.Leaf, cfg.Entry} {
			col.DisableColor()
		}
	}
	return &cfg
}

// PrintOutline writes an indented outline of the tree to w, one line per node
// and leaf entry. If config is nil, ConfigFromTerminal is used.
//
// Colors are shared *color.Color values; with NoColor set, the colors given
// in config are disabled permanently.
func PrintOutline[T comparable](tree *rtree.Tree[T], w io.Writer, config *ConsoleConfig) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	cfg := config.withDefaults()
	return tree.Walk(func(v rtree.NodeView[T]) error {
		indent := strings.Repeat(cfg.Indent, v.Depth)
		if !v.Leaf {
			line := fmt.Sprintf("%s● %v (%d children)", indent, v.Envelope, v.Size)
			return printLine(w, cfg.Inner, cut(line, cfg.LineWidth))
		}
		line := fmt.Sprintf("%s■ %v (%d entries)", indent, v.Envelope, v.Size)
		if err := printLine(w, cfg.Leaf, cut(line, cfg.LineWidth)); err != nil {
			return err
		}
		indent += cfg.Indent
		for i, e := range v.Entries {
			if i == cfg.LeafEntries {
				line = fmt.Sprintf("%s… %d more", indent, len(v.Entries)-i)
				return printLine(w, cfg.Entry, cut(line, cfg.LineWidth))
			}
			line = fmt.Sprintf("%s%v %v", indent, e.Item, e.Box)
			if err := printLine(w, cfg.Entry, cut(line, cfg.LineWidth)); err != nil {
				return err
			}
		}
		return nil
	})
}

func printLine(w io.Writer, c *color.Color, s string) error {
	if _, err := c.Fprint(w, s); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// cut shortens s to at most width runes, marking the cut with an ellipsis.
func cut(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-1]) + "…"
}
