package matrix

import "math/rand"

// Zeros creates a rows×cols matrix filled with zeros.
func Zeros(rows, cols int, k Kernels) (*Matrix, error) {
	if k == nil {
		return nil, constructionErrorf("matrix: nil kernel strategy")
	}
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Matrix{dense: d, kern: k}, nil
}

// Ones creates a rows×cols matrix filled with ones.
func Ones(rows, cols int, k Kernels) (*Matrix, error) {
	return Full(rows, cols, 1, k)
}

// Full creates a rows×cols matrix filled with value.
func Full(rows, cols int, value float64, k Kernels) (*Matrix, error) {
	m, err := Zeros(rows, cols, k)
	if err != nil {
		return nil, err
	}
	for i := range m.dense.data {
		m.dense.data[i] = value
	}
	return m, nil
}

// Eye creates an n×n identity matrix.
func Eye(n int, k Kernels) (*Matrix, error) {
	m, err := Zeros(n, n, k)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.dense.Set(i, i, 1)
	}
	return m, nil
}

// Rand creates a rows×cols matrix with values uniformly distributed in [0, 1).
// Uses math/rand; appropriate for benchmarking and demonstration inputs.
func Rand(rows, cols int, k Kernels) (*Matrix, error) {
	m, err := Zeros(rows, cols, k)
	if err != nil {
		return nil, err
	}
	for i := range m.dense.data {
		m.dense.data[i] = rand.Float64() //nolint:gosec // benchmark inputs, not crypto
	}
	return m, nil
}
