// Copyright 2026 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rundiff

import (
	"errors"
	"iter"

	"znkr.io/rundiff/internal/scan"
)

// ErrLengthMismatch is returned by [TryRuns] and [TryRunsFunc] if the two
// inputs don't have the same length. Both inputs describe the same fixed-size
// buffer, so a length mismatch is always a programming error; it is reported
// before any element is compared and before the visitor is called.
var ErrLengthMismatch = errors.New("rundiff: inputs have different lengths")

// errStop aborts a scan that is driven by an iterator whose consumer stopped
// early. It must never escape to users.
var errStop = errors.New("rundiff: stop")

// TryRuns compares x and y element-wise and calls visit once per maximal run
// of differing elements, in ascending position order. pos is the position of
// the first element of the run and run is y[pos:pos+len(run)].
//
// If visit returns a non-nil error, the scan stops immediately, no further
// runs are reported, and the error is returned verbatim. After a full scan,
// TryRuns returns nil. If x and y have different lengths, TryRuns returns
// [ErrLengthMismatch] without comparing any elements.
//
// The run slice aliases y and has its capacity clipped to the run. It is only
// valid during the visit call; visitors that retain it must copy it first.
//
// Identical inputs produce no calls. TryRuns never mutates x or y and the
// scan itself never allocates, so it is safe to use from concurrent
// goroutines on independent inputs.
func TryRuns[T comparable](x, y []T, visit func(pos int, run []T) error) error {
	if len(x) != len(y) {
		return ErrLengthMismatch
	}
	return scan.Runs(x, y, visit)
}

// Runs compares x and y element-wise and calls visit once per maximal run of
// differing elements, in ascending position order. pos is the position of the
// first element of the run and run is y[pos:pos+len(run)].
//
// Runs is [TryRuns] with a visitor that cannot fail. Like there, the run
// slice aliases y and is only valid during the visit call, identical inputs
// produce no calls, and neither input is mutated. Runs panics if x and y have
// different lengths.
func Runs[T comparable](x, y []T, visit func(pos int, run []T)) {
	err := TryRuns(x, y, func(pos int, run []T) error {
		visit(pos, run)
		return nil
	})
	if err != nil {
		panic(err) // only possible for mismatched lengths
	}
}

// TryRunsFunc is like [TryRuns], but compares elements with eq instead of ==.
// This supports element types that are not comparable or that need a custom
// equivalence. eq must be reflexive, symmetric, and total over the elements
// of x and y.
//
// Note that this function has generally worse performance than [TryRuns].
func TryRunsFunc[T any](x, y []T, eq func(a, b T) bool, visit func(pos int, run []T) error) error {
	if len(x) != len(y) {
		return ErrLengthMismatch
	}
	return scan.RunsFunc(x, y, eq, visit)
}

// RunsFunc is like [Runs], but compares elements with eq instead of ==. It
// panics if x and y have different lengths.
//
// Note that this function has generally worse performance than [Runs].
func RunsFunc[T any](x, y []T, eq func(a, b T) bool, visit func(pos int, run []T)) {
	err := TryRunsFunc(x, y, eq, func(pos int, run []T) error {
		visit(pos, run)
		return nil
	})
	if err != nil {
		panic(err) // only possible for mismatched lengths
	}
}

// All returns an iterator over the maximal runs of differing elements between
// x and y, in ascending position order, yielding the position of the first
// element of each run and the run as a subslice of y.
//
// Breaking out of the loop stops the scan immediately, equivalent to the
// visitor of [TryRuns] returning an error. The yielded slice is only valid
// during that iteration step. All panics if x and y have different lengths.
func All[T comparable](x, y []T) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		err := TryRuns(x, y, func(pos int, run []T) error {
			if !yield(pos, run) {
				return errStop
			}
			return nil
		})
		if err != nil && err != errStop {
			panic(err) // only possible for mismatched lengths
		}
	}
}

// AllFunc is like [All], but compares elements with eq instead of ==.
//
// Note that this function has generally worse performance than [All].
func AllFunc[T any](x, y []T, eq func(a, b T) bool) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		err := TryRunsFunc(x, y, eq, func(pos int, run []T) error {
			if !yield(pos, run) {
				return errStop
			}
			return nil
		})
		if err != nil && err != errStop {
			panic(err) // only possible for mismatched lengths
		}
	}
}
