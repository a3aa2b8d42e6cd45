/*
Package seqfile provides API helpers to load numeric sequences from text.

Input consists of numbers separated by white space. Everything from a '#'
to the end of a line is a comment. The numbers are collected into a single,
fully materialized sequence, which is organized in fragments. Every fragment
is summarized while loading, so the maximum subarray of the whole sequence is
available as soon as loading has finished.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package seqfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the global core-tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
