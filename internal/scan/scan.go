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

// Package scan implements the core run-detection traversal. It walks two
// equal-length slices in lockstep and partitions the index range into
// alternating matching and differing runs, reporting each differing run to a
// visitor. The exported API for users is provided by the rundiff package.
package scan

// Runs scans x and y in a single pass and calls visit once per maximal run of
// differing elements, in ascending position order. The run slice is y[pos:end]
// with its capacity clipped to the run, so the visitor cannot reach past the
// run even by reslicing.
//
// If visit returns a non-nil error, the scan stops immediately and the error
// is returned. Precondition: len(x) == len(y); callers check this before
// calling.
func Runs[T comparable](x, y []T, visit func(pos int, run []T) error) error {
	start := -1 // start of the current differing run, or -1 inside a matching run
	for i := range x {
		switch same := x[i] == y[i]; {
		case start < 0 && !same:
			start = i
		case start >= 0 && same:
			if err := visit(start, y[start:i:i]); err != nil {
				return err
			}
			start = -1
		}
	}
	// A differing run that reaches the end of the inputs has no matching
	// element to terminate it, flush it here.
	if start >= 0 {
		return visit(start, y[start:len(y):len(y)])
	}
	return nil
}

// RunsFunc is like [Runs], but compares elements with eq instead of ==.
//
// Note that this function has generally worse performance than [Runs] because
// every comparison is an indirect call.
func RunsFunc[T any](x, y []T, eq func(a, b T) bool, visit func(pos int, run []T) error) error {
	start := -1
	for i := range x {
		switch same := eq(x[i], y[i]); {
		case start < 0 && !same:
			start = i
		case start >= 0 && same:
			if err := visit(start, y[start:i:i]); err != nil {
				return err
			}
			start = -1
		}
	}
	if start >= 0 {
		return visit(start, y[start:len(y):len(y)])
	}
	return nil
}
