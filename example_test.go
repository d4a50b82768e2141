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

package rundiff_test

import (
	"fmt"

	"znkr.io/rundiff"
)

// Report every region that changed between two snapshots of a small buffer.
func ExampleRuns() {
	prev := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	next := []byte{0, 0, 1, 2, 0, 0, 0, 3, 4, 5}

	rundiff.Runs(prev, next, func(pos int, run []byte) {
		fmt.Printf("%d: %v\n", pos, run)
	})
	// Output:
	// 2: [1 2]
	// 7: [3 4 5]
}

// Build a patch message from the changed regions, aborting if the patch would
// grow beyond a fixed budget.
func ExampleTryRuns() {
	prev := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	next := []byte{9, 9, 0, 0, 9, 9, 9, 0, 9, 9}

	const budget = 8
	var patch []byte
	err := rundiff.TryRuns(prev, next, func(pos int, run []byte) error {
		if len(patch)+len(run)+1 > budget {
			return fmt.Errorf("patch exceeds %d bytes", budget)
		}
		patch = append(patch, byte(pos))
		patch = append(patch, run...)
		return nil
	})
	fmt.Println(patch, err)
	// Output:
	// [0 9 9 4 9 9 9] patch exceeds 8 bytes
}

// Iterate over the changed regions with a for-range loop.
func ExampleAll() {
	prev := []int{1, 2, 3, 4, 5}
	next := []int{1, 2, 9, 9, 5}

	for pos, run := range rundiff.All(prev, next) {
		fmt.Printf("%d: %v\n", pos, run)
	}
	// Output:
	// 2: [9 9]
}
