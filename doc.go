/*
Package kadane finds maximum-sum contiguous subarrays of numeric sequences.

Maximum Subarray

Given a finite sequence of ordered, additive values, the maximum subarray is
the non-empty run of consecutive elements with the largest sum. A single
element is a valid subarray, therefore a sequence of negative numbers yields
its largest element, never the sum of an empty subarray.

The package uses Kadane's recurrence: scanning left to right, it tracks the
best sum of a subarray ending at the current position, restarting the run
whenever the current element alone beats the extended run.

	sum, ok := kadane.MaxSum([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4})      // 6, true
	sum, r, ok := kadane.MaxRange([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4}) // 6, [3,7), true

Both operations run in O(n) time with O(1) auxiliary space and never modify
their input. Empty input is an expected case and is reported by a false
result flag, not by an error.

Ties

Among several subarrays with equal maximum sum, the result is the one reached
first during the scan: the subarray with the smallest end position, and among
those the one starting earliest.

Overflow

Arithmetic is that of the element type. Integer sums wrap around on overflow
and float sums may become ±Inf or NaN. This is not detected.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package kadane

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// KadaneError is an error type for the kadane module
type KadaneError string

func (e KadaneError) Error() string {
	return string(e)
}

// ErrEmptyInput signals that a maximum subarray has been requested for an
// empty sequence. Core operations report this case with a boolean flag;
// the error is meant for layers which communicate through errors.
const ErrEmptyInput = KadaneError("empty input sequence")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = KadaneError("illegal arguments")
