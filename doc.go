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

// Package rundiff reports the contiguous runs of differing elements between
// two equal-length slices, for example two snapshots of a fixed-size buffer.
//
// The main functions are [Runs], which calls a visitor once per maximal run
// of differing elements, and [TryRuns], which additionally lets the visitor
// abort the scan by returning an error. [All] provides the same runs as an
// iterator. Unlike a general diff, no alignment is computed: element i of one
// input is only ever compared to element i of the other. This makes the
// result a minimal in-place delta, which is useful to build patch messages
// for fixed-size structures or to find which regions of a memory-mapped
// buffer changed between two snapshots.
//
// Performance: a single pass over the inputs, O(n) time and O(1) space. The
// scan itself never allocates; the only per-run cost is the visitor call with
// a subslice of the second input.
//
// Note: For diffing sequences of different lengths or for edit-script diffs,
// please see [znkr.io/diff].
//
// [znkr.io/diff]: https://pkg.go.dev/znkr.io/diff
package rundiff
