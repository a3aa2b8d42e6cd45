/*
Package bench runs the maximum subarray operations repeatedly on fixed sample
inputs to measure their throughput.

Samples are either built in or read from a YAML document:

	samples:
	  - name: classic
	    ints: true
	    values: [-2, 1, -3, 4, -1, 2, 1, -5, 4]

Results are returned from Runner.Run and are in addition broadcast to all
subscribers of the runner while the run is in progress.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package bench

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the global core-tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
