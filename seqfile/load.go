package seqfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/kadane"
)

var (
	// ErrNotRegular signals that a sequence file is not a regular file.
	ErrNotRegular = errors.New("seqfile: file is not a regular file")
	// ErrSyntax signals a token which is not a valid number.
	ErrSyntax = errors.New("seqfile: invalid number")
)

// Some constants for fragment size defaults, counted in values.
const (
	smallFrag   = 64
	defaultFrag = 512
	largeFrag   = 4096
	maxFrag     = 65536
)

// maxLineLength limits the length of a single input line in bytes. Sequences
// are often written to a single line.
const maxLineLength = 256 << 20

// ParseFunc converts a single token of input into a sequence element.
type ParseFunc[T kadane.Number] func(token string) (T, error)

// ParseInt parses decimal 64-bit integers.
func ParseInt(token string) (int64, error) {
	return strconv.ParseInt(token, 10, 64)
}

// ParseFloat parses 64-bit floating point numbers.
func ParseFloat(token string) (float64, error) {
	return strconv.ParseFloat(token, 64)
}

// Sequence is a numeric sequence loaded from text. It is read-only after
// loading.
type Sequence[T kadane.Number] struct {
	values    []T
	fragments []kadane.Range
	summary   kadane.Summary[T]
}

// Len returns the number of elements.
func (seq *Sequence[T]) Len() int {
	return len(seq.values)
}

// Values returns all elements as a flat slice. Clients must not modify it.
func (seq *Sequence[T]) Values() []T {
	return seq.values
}

// Fragments returns the ranges of the fragments the sequence is organized in.
func (seq *Sequence[T]) Fragments() []kadane.Range {
	return seq.fragments
}

// Fragment returns the elements of fragment i.
func (seq *Sequence[T]) Fragment(i int) []T {
	return kadane.Slice(seq.values, seq.fragments[i])
}

// Summary returns the combined summary of all fragments.
func (seq *Sequence[T]) Summary() kadane.Summary[T] {
	return seq.summary
}

// Read reads numbers from r and collects them into a sequence. fragSize is
// the number of values per fragment; a value <= 0 selects a default, values
// above 65536 are clamped.
//
// Syntax errors name the line and the 0-based position of the offending
// token within the sequence.
func Read[T kadane.Number](r io.Reader, fragSize int, parse ParseFunc[T]) (*Sequence[T], error) {
	if r == nil || parse == nil {
		return nil, kadane.ErrIllegalArguments
	}
	fragSize = normalizeFragSize(fragSize)
	seq := &Sequence[T]{}
	var m kadane.Monoid[T]
	start := 0
	closeFragment := func() {
		if start == len(seq.values) {
			return
		}
		frag := kadane.Range{Start: start, End: len(seq.values)}
		seq.fragments = append(seq.fragments, frag)
		seq.summary = m.Add(seq.summary, kadane.Summarize(kadane.Slice(seq.values, frag)))
		start = frag.End
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, token := range strings.Fields(line) {
			v, err := parse(token)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, token %d: %w", ErrSyntax, lineno, len(seq.values), err)
			}
			seq.values = append(seq.values, v)
			if len(seq.values)-start == fragSize {
				closeFragment()
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seqfile: error reading input: %w", err)
	}
	closeFragment()
	tracer().Debugf("seqfile: read %d values in %d fragments", len(seq.values), len(seq.fragments))
	return seq, nil
}

// Load reads a file, which must be a text file of numbers, and loads it as a
// sequence. A fragSize <= 0 lets Load choose a fragment size from the size
// of the file.
func Load[T kadane.Number](name string, fragSize int, parse ParseFunc[T]) (*Sequence[T], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if fragSize <= 0 {
		fragSize = fragSizeFor(fi.Size())
	}
	tracer().Infof("seqfile: loading %s (%d bytes), fragment size %d", name, fi.Size(), fragSize)
	return Read(file, fragSize, parse)
}

func normalizeFragSize(n int) int {
	switch {
	case n <= 0:
		return defaultFrag
	case n > maxFrag:
		return maxFrag
	}
	return n
}

// fragSizeFor guesses a fragment size from the byte size of an input file.
func fragSizeFor(size int64) int {
	switch {
	case size < 1024:
		return smallFrag
	case size < 1048576:
		return defaultFrag
	default:
		return largeFrag
	}
}
