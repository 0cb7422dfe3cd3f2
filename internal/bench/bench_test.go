package bench

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matlite-ml/matlite/internal/backend/generic"
)

func TestRunGenericOnly(t *testing.T) {
	runner := New(generic.New(), nil, Config{Sizes: []int{4, 8}, Iterations: 2})

	results, err := runner.Run()
	require.NoError(t, err)
	require.Len(t, results, 2*len(ops))

	for _, r := range results {
		assert.Greater(t, r.Generic, time.Duration(0))
		assert.Zero(t, r.Accelerated)
		assert.Zero(t, r.Speedup)
	}
}

func TestRunComparison(t *testing.T) {
	// Comparing generic against itself exercises the comparison plumbing
	// without requiring the native kernels.
	runner := New(generic.New(), generic.New(), Config{Sizes: []int{4}, Iterations: 2})

	results, err := runner.Run()
	require.NoError(t, err)

	for _, r := range results {
		assert.Greater(t, r.Accelerated, time.Duration(0))
		assert.Greater(t, r.Speedup, 0.0)
	}
}

func TestWriteReport(t *testing.T) {
	runner := New(generic.New(), nil, Config{Sizes: []int{4}, Iterations: 1})
	results, err := runner.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, results))

	out := buf.String()
	assert.Contains(t, out, "generic")
	for _, op := range []string{"+", "-", "*", "@", "**"} {
		assert.Contains(t, out, op)
	}
	assert.NotContains(t, out, "native")
}

func TestMeasureAlloc(t *testing.T) {
	n := MeasureAlloc(func() {
		_ = make([]float64, 1<<16)
	})
	assert.Greater(t, n, uint64(0))
}
