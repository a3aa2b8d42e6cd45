package format

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Console is a format for outputting sequences to a console with a fixed
// width font. Elements are right-aligned in columns and wrapped to lines by
// the driver; elements of the marked range are colored.
type Console struct {
	highlight *color.Color
	colwidth  int
}

// NewConsole creates a new console format. highlight is the color for
// elements within the marked range; if nil, bold red is used.
func NewConsole(highlight *color.Color) *Console {
	c := &Console{
		highlight: color.New(color.FgRed, color.Bold),
	}
	if highlight != nil {
		c.highlight = highlight
	}
	return c
}

// Preamble remembers the column width of the layout.
// (Part of interface Format)
func (c *Console) Preamble(layout Layout, w io.Writer) {
	c.colwidth = layout.ColWidth
}

// Element outputs an element, padded to the column width. Colors are applied
// to the text only, not to the padding.
// (Part of interface Format)
func (c *Console) Element(text string, width int, mark Mark, w io.Writer) {
	if pad := c.colwidth - width; pad > 0 {
		io.WriteString(w, strings.Repeat(" ", pad))
	}
	if mark&Inside != 0 {
		c.highlight.Fprint(w, text)
		return
	}
	io.WriteString(w, text)
}

// Separator outputs a single space between columns.
// (Part of interface Format)
func (c *Console) Separator(w io.Writer) { io.WriteString(w, " ") }

// Newline ends a line of columns.
// (Part of interface Format)
func (c *Console) Newline(w io.Writer) { io.WriteString(w, "\n") }

// Postamble terminates the last line.
// (Part of interface Format)
func (c *Console) Postamble(w io.Writer) { io.WriteString(w, "\n") }
