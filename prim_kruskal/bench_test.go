package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/dronepath/metric"
	"github.com/katalvlaran/dronepath/prim_kruskal"
)

// BenchmarkKruskal measures Kruskal on 300 random points (≈45k candidate edges).
func BenchmarkKruskal(b *testing.B) {
	m := metric.NewMatrix(randomPointSet(42, 300, 1000)) // pre‐build metric once
	all := prim_kruskal.All(m.Len())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(m, all)
	}
}

// BenchmarkPrim measures Prim on the same 300 random points.
func BenchmarkPrim(b *testing.B) {
	m := metric.NewMatrix(randomPointSet(42, 300, 1000))
	all := prim_kruskal.All(m.Len())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(m, all)
	}
}

// BenchmarkPrimWeight measures the allocation-free path used by branch-and-bound.
func BenchmarkPrimWeight(b *testing.B) {
	m := metric.NewMatrix(randomPointSet(42, 300, 1000))
	all := prim_kruskal.All(m.Len())
	ws := prim_kruskal.NewWorkspace(len(all))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.PrimWeight(m, all, ws)
	}
}
