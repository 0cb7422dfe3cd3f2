package generic_test

import (
	"fmt"
	"testing"

	"github.com/matlite-ml/matlite/internal/backend/generic"
	"github.com/matlite-ml/matlite/internal/matrix"
)

func BenchmarkElementwise(b *testing.B) {
	g := generic.New()

	for _, n := range []int{16, 64, 256} {
		a, _ := matrix.Rand(n, n, g)
		c, _ := matrix.Rand(n, n, g)

		b.Run(fmt.Sprintf("Add/%dx%d", n, n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = g.Add(a.Raw(), c.Raw())
			}
		})

		row, _ := matrix.Rand(1, n, g)
		b.Run(fmt.Sprintf("AddBroadcast/%dx%d", n, n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = g.Add(a.Raw(), row.Raw())
			}
		})
	}
}

func BenchmarkMatMul(b *testing.B) {
	g := generic.New()

	for _, n := range []int{16, 64, 128} {
		a, _ := matrix.Rand(n, n, g)
		c, _ := matrix.Rand(n, n, g)

		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = g.MatMul(a.Raw(), c.Raw())
			}
		})
	}
}
