package format

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/npillmayer/kadane"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Mark tells a Format how an element relates to the marked range.
type Mark uint8

// Flags for Mark. First and Last are set only together with Inside.
const (
	Outside Mark = 0
	Inside  Mark = 1 << iota
	First
	Last
)

// Layout is computed by the formatting driver before any element is output.
type Layout struct {
	ColWidth int // largest display width of an element, in fixed width ‘en’s
	PerLine  int // number of elements per output line, 0 for unlimited
}

// Format is an interface for output formats of sequences.
type Format interface {
	Preamble(layout Layout, w io.Writer)
	Element(text string, width int, mark Mark, w io.Writer)
	Separator(w io.Writer)
	Newline(w io.Writer)
	Postamble(w io.Writer)
}

// Config configures the formatting driver.
type Config struct {
	LineWidth int            // target line width in ‘en’s, 0 for no wrapping
	Context   *uax11.Context // context for measuring display widths
}

var setupGraphemes sync.Once

// Print outputs values to w in format f, marking the elements in range r.
// An empty range marks nothing. If config is nil, no wrapping is done and
// display widths are measured in a Latin context.
func Print[E any](f Format, w io.Writer, values []E, r kadane.Range, config *Config) error {
	if f == nil || w == nil {
		return kadane.ErrIllegalArguments
	}
	if r.End > len(values) || r.Start < 0 {
		return fmt.Errorf("format: range %v out of bounds for %d elements: %w",
			r, len(values), kadane.ErrIllegalArguments)
	}
	if config == nil {
		config = &Config{}
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	texts := make([]string, len(values))
	widths := make([]int, len(values))
	layout := Layout{}
	for i, v := range values {
		texts[i] = fmt.Sprint(v)
		widths[i] = displayWidth(texts[i], config.Context)
		layout.ColWidth = max(layout.ColWidth, widths[i])
	}
	if config.LineWidth > 0 {
		layout.PerLine = max(1, (config.LineWidth+1)/(layout.ColWidth+1))
	}
	tracer().Debugf("format: %d elements, layout %+v", len(values), layout)
	sw := &stickyWriter{w: w}
	f.Preamble(layout, sw)
	for i, text := range texts {
		if i > 0 {
			if layout.PerLine > 0 && i%layout.PerLine == 0 {
				f.Newline(sw)
			} else {
				f.Separator(sw)
			}
		}
		f.Element(text, widths[i], markAt(i, r), sw)
	}
	f.Postamble(sw)
	return sw.err
}

// displayWidth measures the width of text in fixed width ‘en’s. Printable
// ASCII is always narrow; everything else is measured grapheme by grapheme.
func displayWidth(text string, context *uax11.Context) int {
	ascii := true
	for i := 0; i < len(text); i++ {
		if text[i] < 0x20 || text[i] >= 0x7f {
			ascii = false
			break
		}
	}
	if ascii {
		return len(text)
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(text), context)
}

func markAt(i int, r kadane.Range) Mark {
	if !r.Contains(i) {
		return Outside
	}
	m := Inside
	if i == r.Start {
		m |= First
	}
	if i == r.End-1 {
		m |= Last
	}
	return m
}

// stickyWriter remembers the first write error and discards all output
// after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (sw *stickyWriter) Write(p []byte) (int, error) {
	if sw.err != nil {
		return 0, sw.err
	}
	n, err := sw.w.Write(p)
	sw.err = err
	return n, err
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w - 1
		}
	} else {
		config.LineWidth = 65
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
