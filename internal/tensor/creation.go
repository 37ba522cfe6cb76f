package tensor

// Zeros creates a zero-filled tensor bound to the given backend.
func Zeros(shape Shape, b Backend) *Tensor {
	t := newDense(shape)
	t.backend = b
	return t
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, b Backend) *Tensor {
	return Full(shape, 1.0, b)
}

// Full creates a tensor filled with the given value.
func Full(shape Shape, value float64, b Backend) *Tensor {
	t := newDense(shape)
	for i := range t.data {
		t.data[i] = value
	}
	t.backend = b
	return t
}

// Scalar creates a one-element tensor holding value.
func Scalar(value float64, b Backend) *Tensor {
	return Full(Shape{1}, value, b)
}

// FromSlice creates a tensor from data, panicking on shape mismatch.
// Convenience wrapper over New for literals in construction code and
// tests where the shape is known correct.
func FromSlice(data []float64, shape Shape, b Backend) *Tensor {
	t, err := New(data, shape, b)
	if err != nil {
		panic(err)
	}
	return t
}

// FromColumn creates an [N, 1] column tensor from a coordinate slice.
// This is the layout every network input uses.
func FromColumn(values []float64, b Backend) *Tensor {
	return FromSlice(values, Shape{len(values), 1}, b)
}

// Column reads an [N, 1] (or 1-D) tensor back into a plain slice.
func Column(t *Tensor) []float64 {
	out := make([]float64, t.NumElements())
	copy(out, t.data)
	return out
}
