package kadane

// Summary is a metric value for a fragment of a sequence. Summaries of
// adjacent fragments combine to the summary of their concatenation, which
// lets clients find the maximum subarray of a sequence held in separately
// materialized fragments.
//
// Positions in a summary are relative to the start of its (leftmost)
// fragment. The zero value is the summary of an empty fragment.
//
// For integer elements, the maximum reported by a combined summary is the
// same sum and range that MaxRange reports for the concatenated sequence.
// For floating point elements additions are grouped differently, so results
// may differ by rounding.
type Summary[T Number] struct {
	Len         int   // number of elements in the fragment
	Total       T     // sum of all elements
	Prefix      T     // largest sum of a non-empty prefix
	PrefixEnd   int   // shortest prefix attaining Prefix is [0, PrefixEnd)
	Suffix      T     // largest sum of a non-empty suffix
	SuffixStart int   // longest suffix attaining Suffix is [SuffixStart, Len)
	Max         T     // largest sum of a non-empty subarray
	MaxRange    Range // first subarray attaining Max
}

// Summarize creates the summary of a fragment.
func Summarize[T Number](values []T) Summary[T] {
	if len(values) == 0 {
		return Summary[T]{}
	}
	s := Summary[T]{Len: len(values)}
	s.Max, s.MaxRange, _ = MaxRange(values)
	var sum T
	for i, v := range values {
		sum += v
		if i == 0 || sum > s.Prefix {
			s.Prefix, s.PrefixEnd = sum, i+1
		}
	}
	s.Total = sum
	sum = 0
	for i := len(values) - 1; i >= 0; i-- {
		sum += values[i]
		if i == len(values)-1 || sum >= s.Suffix {
			s.Suffix, s.SuffixStart = sum, i
		}
	}
	return s
}

// Best returns the maximum subarray sum of the summarized fragment and its
// range, or false if the fragment is empty.
func (s Summary[T]) Best() (T, Range, bool) {
	if s.Len == 0 {
		var zero T
		return zero, Range{}, false
	}
	return s.Max, s.MaxRange, true
}

// Monoid aggregates summaries of adjacent fragments.
//
// For summaries s, t, u of exact arithmetic, Add is associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero is the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
type Monoid[T Number] struct{}

// Zero returns the summary of the empty fragment.
func (Monoid[T]) Zero() Summary[T] { return Summary[T]{} }

// Add combines the summary of a fragment with the summary of the fragment
// immediately following it.
func (Monoid[T]) Add(left, right Summary[T]) Summary[T] {
	if left.Len == 0 {
		return right
	}
	if right.Len == 0 {
		return left
	}
	s := Summary[T]{
		Len:   left.Len + right.Len,
		Total: left.Total + right.Total,
	}
	// prefixes: on ties prefer the shorter one, which lies in left
	s.Prefix, s.PrefixEnd = left.Prefix, left.PrefixEnd
	if p := left.Total + right.Prefix; p > left.Prefix {
		s.Prefix, s.PrefixEnd = p, left.Len+right.PrefixEnd
	}
	// suffixes: on ties prefer the longer one, which starts in left
	s.Suffix, s.SuffixStart = left.Suffix+right.Total, left.SuffixStart
	if right.Suffix > s.Suffix {
		s.Suffix, s.SuffixStart = right.Suffix, left.Len+right.SuffixStart
	}
	// maximum: candidates are ordered by sum, then by end, then by start
	s.Max, s.MaxRange = left.Max, left.MaxRange
	cross := left.Suffix + right.Prefix
	crossRange := Range{Start: left.SuffixStart, End: left.Len + right.PrefixEnd}
	rightRange := right.MaxRange.Shift(left.Len)
	if right.Max > cross || (right.Max == cross && rightRange.End < crossRange.End) {
		cross, crossRange = right.Max, rightRange
	}
	if cross > s.Max {
		s.Max, s.MaxRange = cross, crossRange
	}
	return s
}

// Fold combines the summaries of consecutive fragments, left to right.
func Fold[T Number](summaries ...Summary[T]) Summary[T] {
	var m Monoid[T]
	acc := m.Zero()
	for _, s := range summaries {
		acc = m.Add(acc, s)
	}
	return acc
}
