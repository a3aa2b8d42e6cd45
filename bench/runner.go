package bench

import (
	"context"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/kadane"
)

// DefaultRounds is the number of rounds per sample if none is configured.
const DefaultRounds = 10000

// Result is the outcome of running a sample. For integer samples IntSum holds
// the exact sum and Sum its float64 approximation.
type Result struct {
	Sample  string
	Len     int
	Rounds  int
	Ints    bool
	IntSum  int64
	Sum     float64
	Range   kadane.Range
	OK      bool // false for an empty sample
	Elapsed time.Duration
}

// PerRound returns the average time of a round, i.e. of one call to each of
// MaxSum and MaxRange.
func (r Result) PerRound() time.Duration {
	if r.Rounds == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Rounds)
}

// Runner runs samples and broadcasts the results.
type Runner struct {
	Rounds int
	cast   *caster.Caster
}

// NewRunner creates a runner. rounds <= 0 selects DefaultRounds.
func NewRunner(rounds int) *Runner {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	return &Runner{
		Rounds: rounds,
		cast:   caster.New(nil), // we will broadcast results as samples are done
	}
}

// subscriberBuffer is the number of results buffered for a subscriber, both
// within the caster and in the forwarding channel.
const subscriberBuffer = 16

// Subscribe returns a channel on which the runner publishes results. Publishing
// never waits for subscribers: a subscriber which falls behind by more than
// its buffer misses results. The channel is closed when ctx is done or the
// runner is closed.
func (rn *Runner) Subscribe(ctx context.Context) <-chan Result {
	out := make(chan Result, subscriberBuffer)
	if rn.cast == nil {
		close(out)
		return out
	}
	sub, ok := rn.cast.Sub(ctx, subscriberBuffer)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done(): // the caster drops sub on its next publish
				return
			case m, ok := <-sub:
				if !ok {
					return
				}
				r, ok := m.(Result)
				if !ok {
					continue
				}
				select {
				case out <- r:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// Close stops broadcasting and closes all subscriptions.
func (rn *Runner) Close() {
	if rn.cast != nil {
		rn.cast.Close()
	}
}

// Run runs every sample for the configured number of rounds. It stops early
// if ctx is done, returning the results collected so far together with the
// context's error.
func (rn *Runner) Run(ctx context.Context, samples []Sample) ([]Result, error) {
	rounds := rn.Rounds
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	results := make([]Result, 0, len(samples))
	for _, s := range samples {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		var r Result
		if s.Ints {
			var sum int64
			r, sum = run(s.ints(), rounds)
			r.Ints, r.IntSum = true, sum
		} else {
			r, _ = run(s.Values, rounds)
		}
		r.Sample = s.Name
		tracer().Debugf("bench: %s: sum=%v range=%v ok=%v in %v", r.Sample, r.Sum, r.Range, r.OK, r.Elapsed)
		results = append(results, r)
		if rn.cast != nil {
			rn.cast.TryPub(r)
		}
	}
	return results, nil
}

// sink keeps the compiler from optimizing away the benchmarked calls.
var sink float64

func run[T kadane.Number](values []T, rounds int) (Result, T) {
	r := Result{Len: len(values), Rounds: rounds}
	var sum T
	start := time.Now()
	for i := 0; i < rounds; i++ {
		sum, _ = kadane.MaxSum(values)
		sink += float64(sum)
		sum, r.Range, r.OK = kadane.MaxRange(values)
	}
	r.Elapsed = time.Since(start)
	r.Sum = float64(sum)
	return r, sum
}
