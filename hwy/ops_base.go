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

// This file provides pure Go implementations of the vector operations. Each
// operation works lane by lane with no cross-lane dependency, so the compiler
// is free to vectorize the loops. The value-returning forms allocate a new
// vector; the *Into forms write into a caller-owned destination so hot loops
// can keep a fixed set of registers.

// LoadN creates a vector of n lanes by loading data from a slice.
// Lanes beyond len(src) are zero.
func LoadN[T Lanes](src []T, n int) Vec[T] {
	data := make([]T, n)
	copy(data, src)
	return Vec[T]{data: data}
}

// LoadInto fills dst with the first dst.NumLanes() elements of src.
// Lanes beyond len(src) are zeroed.
func LoadInto[T Lanes](dst Vec[T], src []T) {
	n := copy(dst.data, src)
	clear(dst.data[n:])
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// SetN creates a vector of n lanes all set to the same value.
func SetN[T Lanes](value T, n int) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// ZeroN creates a vector of n lanes all set to zero.
func ZeroN[T Lanes](n int) Vec[T] {
	return Vec[T]{data: make([]T, n)}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	out := ZeroN[T](min(len(a.data), len(b.data)))
	AddInto(out, a, b)
	return out
}

// AddInto stores a + b in dst.
func AddInto[T Lanes](dst, a, b Vec[T]) {
	n := min(len(dst.data), len(a.data), len(b.data))
	for i := range n {
		dst.data[i] = a.data[i] + b.data[i]
	}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	out := ZeroN[T](min(len(a.data), len(b.data)))
	SubInto(out, a, b)
	return out
}

// SubInto stores a - b in dst.
func SubInto[T Lanes](dst, a, b Vec[T]) {
	n := min(len(dst.data), len(a.data), len(b.data))
	for i := range n {
		dst.data[i] = a.data[i] - b.data[i]
	}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	out := ZeroN[T](min(len(a.data), len(b.data)))
	MulInto(out, a, b)
	return out
}

// MulInto stores a * b in dst.
func MulInto[T Lanes](dst, a, b Vec[T]) {
	n := min(len(dst.data), len(a.data), len(b.data))
	for i := range n {
		dst.data[i] = a.data[i] * b.data[i]
	}
}

// MulAddInto stores a*b + c in dst.
func MulAddInto[T Lanes](dst, a, b, c Vec[T]) {
	n := min(len(dst.data), len(a.data), len(b.data), len(c.data))
	for i := range n {
		dst.data[i] = a.data[i]*b.data[i] + c.data[i]
	}
}

// Div performs element-wise integer division, truncating toward zero.
// A zero divisor lane yields zero instead of panicking.
func Div[T Integers](a, b Vec[T]) Vec[T] {
	out := ZeroN[T](min(len(a.data), len(b.data)))
	DivInto(out, a, b)
	return out
}

// DivInto stores a / b in dst (see Div).
func DivInto[T Integers](dst, a, b Vec[T]) {
	n := min(len(dst.data), len(a.data), len(b.data))
	for i := range n {
		if b.data[i] == 0 {
			dst.data[i] = 0
			continue
		}
		dst.data[i] = a.data[i] / b.data[i]
	}
}

// Max performs element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = max(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// Equal reports whether both vectors have the same lanes.
func Equal[T Lanes](a, b Vec[T]) bool {
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
