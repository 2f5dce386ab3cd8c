// Copyright 2025 go-highway Authors
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

package hwy

// TailCount returns how many trailing elements of a sequence of the given
// size do not fill a complete block of lanes.
func TailCount(size, lanes int) int {
	if lanes <= 1 {
		return 0
	}
	return size % lanes
}

// ProcessWithTail is a helper for processing arrays in fixed-width blocks
// that handles both full vectors and the tail (remainder).
//
// It calls:
//   - fullFn(offset) for each full block of lanes, in ascending order
//   - tailFn(offset, count) once for the tail if size is not a multiple of lanes
//
// A lane count of 1 or less routes every element through tailFn, which is
// how the scalar path is expressed.
//
// Example:
//
//	hwy.ProcessWithTail(len(data), 16,
//	    func(offset int) {
//	        v := hwy.LoadN(data[offset:], 16)
//	        hwy.Store(hwy.Add(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            output[i] = data[i] + data[i]
//	        }
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	if size <= 0 {
		return
	}
	if lanes <= 1 {
		tailFn(0, size)
		return
	}

	// Process full vectors
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	// Process tail if any
	if remaining := size % lanes; remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}
