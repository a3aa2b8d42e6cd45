package bench

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoSamples signals a sample document without any samples.
	ErrNoSamples = errors.New("bench: no samples")
	// ErrNotIntegral signals a non-integral value in an integer sample.
	ErrNotIntegral = errors.New("bench: value of integer sample is not integral")
	// ErrNotExact signals a value of an integer sample which float64 cannot
	// represent exactly.
	ErrNotExact = errors.New("bench: value of integer sample is out of exact range")
)

// maxExact is the largest magnitude up to which float64 holds every integer.
const maxExact = 1 << 53

// Sample is a named, fixed input sequence. Integer samples are run with
// int64 elements, all others with float64 elements. Values of integer samples
// must lie within ±2^53, as YAML input is decoded to float64 first.
type Sample struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values"`
	Ints   bool      `yaml:"ints"`
}

type sampleDocument struct {
	Samples []Sample `yaml:"samples"`
}

// DefaultSamples returns the built-in samples.
func DefaultSamples() []Sample {
	classic := []float64{-2, 1, -3, 4, -1, 2, 1, -5, 4}
	return []Sample{
		{Name: "classic", Values: classic, Ints: true},
		{Name: "classic-float", Values: classic},
		{Name: "ties", Values: []float64{-1, 2, -1, 2, -1}, Ints: true},
		{Name: "all-negative", Values: []float64{-8, -3, -6, -2, -5, -4}, Ints: true},
	}
}

// LoadSamples reads samples from a YAML document.
func LoadSamples(r io.Reader) ([]Sample, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc sampleDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSamples
		}
		return nil, fmt.Errorf("bench: cannot decode samples: %w", err)
	}
	if len(doc.Samples) == 0 {
		return nil, ErrNoSamples
	}
	for i := range doc.Samples {
		if doc.Samples[i].Name == "" {
			doc.Samples[i].Name = fmt.Sprintf("sample-%d", i+1)
		}
		if err := doc.Samples[i].check(); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("bench: loaded %d samples", len(doc.Samples))
	return doc.Samples, nil
}

func (s Sample) check() error {
	if !s.Ints {
		return nil
	}
	for _, v := range s.Values {
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: sample %q, value %v", ErrNotIntegral, s.Name, v)
		}
		if math.Abs(v) > maxExact {
			return fmt.Errorf("%w: sample %q, value %v", ErrNotExact, s.Name, v)
		}
	}
	return nil
}

func (s Sample) ints() []int64 {
	ints := make([]int64, len(s.Values))
	for i, v := range s.Values {
		ints[i] = int64(v)
	}
	return ints
}
