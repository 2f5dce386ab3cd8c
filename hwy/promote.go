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

// PromoteU8ToU32 widens uint8 to uint32 (zero-extended).
func PromoteU8ToU32(v Vec[uint8]) Vec[uint32] {
	result := ZeroN[uint32](len(v.data))
	PromoteU8ToU32Into(result, v)
	return result
}

// PromoteU8ToU32Into zero-extends the lanes of v into dst.
func PromoteU8ToU32Into(dst Vec[uint32], v Vec[uint8]) {
	n := min(len(dst.data), len(v.data))
	for i := range n {
		dst.data[i] = uint32(v.data[i])
	}
}

// LoadU8AsU32Into loads up to dst.NumLanes() bytes from src and zero-extends
// them into dst. Lanes beyond len(src) are zeroed.
func LoadU8AsU32Into(dst Vec[uint32], src []uint8) {
	n := min(len(dst.data), len(src))
	for i := range n {
		dst.data[i] = uint32(src[i])
	}
	clear(dst.data[n:])
}

// TruncateU32ToU8 narrows uint32 to uint8 (truncating, not saturating).
// Only the lower 8 bits are kept.
func TruncateU32ToU8(v Vec[uint32]) Vec[uint8] {
	result := ZeroN[uint8](len(v.data))
	TruncateU32ToU8Into(result, v)
	return result
}

// TruncateU32ToU8Into keeps the lower 8 bits of each lane of v in dst.
func TruncateU32ToU8Into(dst Vec[uint8], v Vec[uint32]) {
	n := min(len(dst.data), len(v.data))
	for i := range n {
		dst.data[i] = uint8(v.data[i])
	}
}
