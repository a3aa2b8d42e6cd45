package seqfile

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/kadane"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoad(t *testing.T) {
	saved := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New(t)
	defer func() { gtrace.CoreTracer = saved }()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq, err := Load[int64]("testdata/sample.txt", 2, ParseInt)
	if err != nil {
		t.Fatal(err.Error())
	}
	if seq.Len() != 9 {
		t.Fatalf("expected 9 values, have %d: %v", seq.Len(), seq.Values())
	}
	if len(seq.Fragments()) != 5 {
		t.Errorf("expected 5 fragments of size <= 2, have %v", seq.Fragments())
	}
	if f := seq.Fragment(4); len(f) != 1 || f[0] != 4 {
		t.Errorf("expected last fragment to be [4], is %v", f)
	}
	sum, r, ok := seq.Summary().Best()
	if !ok || sum != 6 || r != (kadane.Range{Start: 3, End: 7}) {
		t.Errorf("expected 6 @ [3,7), have %d @ %v", sum, r)
	}
}

func TestLoadDefaultFragments(t *testing.T) {
	seq, err := Load[float64]("testdata/sample.txt", 0, ParseFloat)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(seq.Fragments()) != 1 {
		t.Errorf("expected a single fragment for a small file, have %v", seq.Fragments())
	}
	sum, ok := kadane.MaxSum(seq.Values())
	if !ok || sum != 6.0 {
		t.Errorf("expected 6.0, have %v", sum)
	}
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load[int64]("testdata/broken.txt", 0, ParseInt)
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, have %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected error to name line 2, is %q", err.Error())
	}
	if !strings.Contains(err.Error(), "token 4") {
		t.Errorf("expected error to name token 4, is %q", err.Error())
	}
}

func TestReadLongLine(t *testing.T) {
	line := strings.Repeat("-1 2 ", 20000) + "\n" // 100000 bytes
	seq, err := Read[int64](strings.NewReader(line), 0, ParseInt)
	if err != nil {
		t.Fatal(err.Error())
	}
	if seq.Len() != 40000 {
		t.Fatalf("expected 40000 values, have %d", seq.Len())
	}
	sum, r, ok := seq.Summary().Best()
	if !ok || sum != 20001 || r != (kadane.Range{Start: 1, End: 40000}) {
		t.Errorf("expected 20001 @ [1,40000), have %d @ %v", sum, r)
	}
}

func TestLoadNotRegular(t *testing.T) {
	_, err := Load[int64](os.TempDir(), 0, ParseInt)
	if !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for a directory, have %v", err)
	}
	_, err = Load[int64]("testdata/does-not-exist.txt", 0, ParseInt)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, have %v", err)
	}
}

func TestReadEmpty(t *testing.T) {
	seq, err := Read[int64](strings.NewReader("  # nothing here\n\n"), 0, ParseInt)
	if err != nil {
		t.Fatal(err.Error())
	}
	if seq.Len() != 0 || len(seq.Fragments()) != 0 {
		t.Errorf("expected empty sequence, have %v", seq.Values())
	}
	if _, _, ok := seq.Summary().Best(); ok {
		t.Errorf("expected no maximum for empty sequence")
	}
}

func TestReadIllegalArguments(t *testing.T) {
	if _, err := Read[int64](strings.NewReader("1"), 0, nil); err != kadane.ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments for nil parser, have %v", err)
	}
}

func TestFragmentSizeIsClamped(t *testing.T) {
	for n, want := range map[int]int{-1: defaultFrag, 0: defaultFrag, 7: 7, maxFrag: maxFrag, maxFrag + 1: maxFrag, 1 << 30: maxFrag} {
		if have := normalizeFragSize(n); have != want {
			t.Errorf("fragment size %d: expected %d, have %d", n, want, have)
		}
	}
	values := strings.Repeat("1 ", maxFrag+10)
	seq, err := Read[int64](strings.NewReader(values), 1<<20, ParseInt)
	if err != nil {
		t.Fatal(err.Error())
	}
	if frags := seq.Fragments(); len(frags) != 2 || frags[0].Len() != maxFrag {
		t.Errorf("expected fragments of at most %d values, have %v", maxFrag, frags)
	}
}

func TestFragSizeFor(t *testing.T) {
	if fragSizeFor(10) != smallFrag || fragSizeFor(10000) != defaultFrag || fragSizeFor(1<<24) != largeFrag {
		t.Errorf("unexpected fragment size defaults")
	}
}
