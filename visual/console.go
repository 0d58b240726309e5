package visual

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/containers"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette holds the colors used for console output. A nil color prints
// uncolored.
type Palette struct {
	Inner     *color.Color
	Leaf      *color.Color
	Highlight *color.Color
	Edge      *color.Color
}

// DefaultPalette returns the palette used if a Config does not name one.
func DefaultPalette() *Palette {
	return &Palette{
		Inner:     color.New(color.FgBlue),
		Leaf:      color.New(color.FgGreen),
		Highlight: color.New(color.FgRed, color.Bold),
		Edge:      color.New(color.Faint),
	}
}

// Config configures console output.
type Config struct {
	// LineWidth is the target line length in fixed-width positions.
	LineWidth int
	// Palette colors the output; nil selects DefaultPalette.
	Palette *Palette
	// Context determines display widths of labels; nil selects uax11.LatinContext.
	Context *uax11.Context
}

const (
	defaultLineWidth = 65
	minLineWidth     = 10
)

// normalized returns a copy of cfg with defaults filled in. A LineWidth of 0
// selects the default width.
func (cfg *Config) normalized() *Config {
	var out Config
	if cfg != nil {
		out = *cfg
	}
	if out.LineWidth == 0 {
		out.LineWidth = defaultLineWidth
	} else if out.LineWidth < minLineWidth {
		out.LineWidth = minLineWidth
	}
	if out.Palette == nil {
		out.Palette = DefaultPalette()
	}
	if out.Context == nil {
		out.Context = uax11.LatinContext
	}
	return &out
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets Config.LineWidth accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(1) {
		w, _, err := term.GetSize(1)
		if err != nil {
			config.LineWidth = defaultLineWidth
		} else if w > 30 {
			config.LineWidth = w - 5
		} else {
			config.LineWidth = max(w, minLineWidth)
		}
	} else {
		config.LineWidth = defaultLineWidth
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().P("visual", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// Print outputs a tree sideways, one node per line, root first. Left
// children are marked with ‘<’, right children with ‘>’:
//
//	10
//	├─< 5
//	│   └─> 7
//	└─> 15
//
// Labels too long for cfg.LineWidth are truncated. If cfg is nil,
// defaults are used.
func Print(s Shaper, w io.Writer, cfg *Config) error {
	if s == nil || w == nil {
		return fmt.Errorf("%w: Print needs a shape and a writer", containers.ErrIllegalArguments)
	}
	cfg = cfg.normalized()
	nodes := s.Shape()
	if len(nodes) == 0 {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	ids := index(nodes)
	p := printer{w: w, cfg: cfg, ids: ids}
	p.node(nodes[0], "", "")
	return p.err
}

type printer struct {
	w   io.Writer
	cfg *Config
	ids map[int]Node
	err error
}

func (p *printer) node(n Node, indent, connector string) {
	if p.err != nil {
		return
	}
	avail := p.cfg.LineWidth - displayWidth(indent+connector, p.cfg.Context)
	label := truncate(n.Label, avail, p.cfg.Context)
	p.write(p.cfg.Palette.Edge, indent+connector)
	c := p.cfg.Palette.Inner
	if n.Highlight {
		c = p.cfg.Palette.Highlight
	} else if n.IsLeaf() {
		c = p.cfg.Palette.Leaf
	}
	p.write(c, label)
	p.write(nil, "\n")
	var children []Node
	var marks []string
	for i, id := range [2]int{n.Left, n.Right} {
		if id == 0 {
			continue
		}
		child, ok := p.ids[id]
		if !ok {
			p.err = fmt.Errorf("%w: dangling child %d", containers.ErrIllegalArguments, id)
			return
		}
		children = append(children, child)
		marks = append(marks, [2]string{"< ", "> "}[i])
	}
	if connector != "" {
		if strings.HasPrefix(connector, "└") {
			indent += "    "
		} else {
			indent += "│   "
		}
	}
	for i, child := range children {
		branch := "├─"
		if i == len(children)-1 {
			branch = "└─"
		}
		p.node(child, indent, branch+marks[i])
	}
}

func (p *printer) write(c *color.Color, s string) {
	if p.err != nil || s == "" {
		return
	}
	if c == nil {
		_, p.err = io.WriteString(p.w, s)
		return
	}
	_, p.err = c.Fprint(p.w, s)
}

// PrintSequence outputs labels as a chain
//
//	a → b → c → nil
//
// wrapping lines at cfg.LineWidth. A wrapped line ends with the arrow, the
// next line starts with the following label. If cfg is nil, defaults are used.
func PrintSequence(labels []string, w io.Writer, cfg *Config) error {
	if w == nil {
		return fmt.Errorf("%w: PrintSequence needs a writer", containers.ErrIllegalArguments)
	}
	cfg = cfg.normalized()
	p := printer{w: w, cfg: cfg}
	const arrow, tail = " → ", " →"
	arrowWidth := displayWidth(arrow, cfg.Context)
	tailWidth := displayWidth(tail, cfg.Context)
	labels = append(slices.Clip(labels), "nil")
	spaceleft := cfg.LineWidth
	for i, label := range labels {
		label = truncate(label, cfg.LineWidth-arrowWidth, cfg.Context)
		width := displayWidth(label, cfg.Context)
		need := width
		if i < len(labels)-1 { // leave room to end the line with an arrow
			need += tailWidth
		}
		if i > 0 {
			if arrowWidth+need > spaceleft {
				p.write(cfg.Palette.Edge, tail)
				p.write(nil, "\n")
				spaceleft = cfg.LineWidth
			} else {
				p.write(cfg.Palette.Edge, arrow)
				spaceleft -= arrowWidth
			}
		}
		c := cfg.Palette.Inner
		if i == len(labels)-1 {
			c = cfg.Palette.Edge
		}
		p.write(c, label)
		spaceleft -= width
	}
	p.write(nil, "\n")
	return p.err
}

var setupGraphemes sync.Once

// displayWidth returns the number of fixed-width positions s occupies.
func displayWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens s to at most width positions, marking truncation with ‘…’.
func truncate(s string, width int, context *uax11.Context) string {
	if displayWidth(s, context) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		t := string(runes[:n]) + "…"
		if displayWidth(t, context) <= width {
			return t
		}
	}
	return "…"
}
