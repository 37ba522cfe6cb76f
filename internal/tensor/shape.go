package tensor

import (
	"fmt"
	"strings"
)

// Shape describes tensor dimensions. The solver works with 1-D vectors
// and 2-D row-major matrices; a Shape of {1} is the scalar convention
// used for reduced loss values.
type Shape []int

// Validate checks that every dimension is positive and the rank is 1 or 2.
func (s Shape) Validate() error {
	if len(s) == 0 || len(s) > 2 {
		return fmt.Errorf("shape %v: rank must be 1 or 2", s)
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("shape %v: dimension %d must be positive", s, i)
		}
	}
	return nil
}

// NumElements returns the total element count.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal reports whether two shapes have identical dimensions.
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

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Rows returns the leading dimension (1 for 1-D shapes).
func (s Shape) Rows() int {
	if len(s) == 2 {
		return s[0]
	}
	return 1
}

// Cols returns the trailing dimension.
func (s Shape) Cols() int {
	return s[len(s)-1]
}

// String renders the shape as [d0, d1, ...].
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprintf("%d", dim)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
