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

// Package hwy provides portable fixed-width vector operations with runtime
// CPU detection.
//
// Unlike a register-bound SIMD API, the lane count of a vector is chosen by
// the caller: the same generic routine can run with 8, 16, 32 or 64 lanes,
// which makes lane width a configuration value instead of a code fork.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-pixelway/hwy"
//
//	lanes := hwy.Lanes16.Lanes()
//	a := hwy.LoadN(data1, lanes)
//	b := hwy.LoadN(data2, lanes)
//	sum := hwy.Add(a, b)
//	hwy.Store(sum, output)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle holding a fixed number of lanes.
//
// Vec instances should not be created directly; use LoadN, SetN or ZeroN.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lanes of the vector. The slice aliases the vector, so it
// is only valid until the next write to v.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}
