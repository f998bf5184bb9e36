// Package ml - Tensor-Formen
// Dieses Modul definiert Shape (geordnete Dimensionsgroessen) und
// Hilfsfunktionen fuer Elementanzahl und Achsen-Einfuegung.
package ml

import "fmt"

// Shape holds the dimension sizes of a tensor, outermost first. An empty
// shape is a scalar.
type Shape []int

// NumElements returns the product of all dimensions, 1 for a scalar.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Rank is the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Valid reports whether no dimension is negative.
func (s Shape) Valid() bool {
	for _, d := range s {
		if d < 0 {
			return false
		}
	}
	return true
}

// Equal checks if two shapes are identical.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// Insert returns a copy of s with a new dimension of the given size at
// axis. axis may equal Rank to append.
func (s Shape) Insert(axis, size int) Shape {
	out := make(Shape, 0, len(s)+1)
	out = append(out, s[:axis]...)
	out = append(out, size)
	return append(out, s[axis:]...)
}

// Remove returns a copy of s without the dimension at axis.
func (s Shape) Remove(axis int) Shape {
	out := make(Shape, 0, len(s)-1)
	out = append(out, s[:axis]...)
	return append(out, s[axis+1:]...)
}

// Strides returns row-major element strides (last axis fastest).
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	stride := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= s[i]
	}
	return strides
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}
