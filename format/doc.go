/*
Package format renders numeric sequences, marking their maximum subarray.

A formatting driver (Print) walks a sequence and calls a Format for every
element, telling it whether the element lies within the marked range. Formats
are provided for plain text, for consoles with a fixed width font and for
simple HTML.

	sum, r, _ := kadane.MaxRange(values)
	err := format.Print(format.NewConsole(nil), os.Stdout, values, r, nil)

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package format

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the global core-tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
