package format

import "io"

// Plain is a plain text format. The marked range is put in parentheses:
//
//	[-2 1 -3 (4 -1 2 1) -5 4]
type Plain struct{}

// Preamble opens the sequence.
func (Plain) Preamble(_ Layout, w io.Writer) { io.WriteString(w, "[") }

// Element outputs a single element.
func (Plain) Element(text string, _ int, mark Mark, w io.Writer) {
	if mark&First != 0 {
		io.WriteString(w, "(")
	}
	io.WriteString(w, text)
	if mark&Last != 0 {
		io.WriteString(w, ")")
	}
}

// Separator outputs a space.
func (Plain) Separator(w io.Writer) { io.WriteString(w, " ") }

// Newline outputs a newline.
func (Plain) Newline(w io.Writer) { io.WriteString(w, "\n") }

// Postamble closes the sequence.
func (Plain) Postamble(w io.Writer) { io.WriteString(w, "]") }
