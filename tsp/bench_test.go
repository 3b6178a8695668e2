package tsp_test

import (
	"testing"

	"github.com/katalvlaran/dronepath/metric"
	"github.com/katalvlaran/dronepath/tsp"
)

func BenchmarkApprox_1000(b *testing.B) {
	m := metric.NewMatrix(randomPointSet(1, 1000, 1000))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Approx(m)
	}
}

func BenchmarkBranchAndBound_12(b *testing.B) {
	m := metric.NewMatrix(randomPointSet(2, 12, 100))
	opts := tsp.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.BranchAndBound(m, opts)
	}
}

func BenchmarkBranchAndBound_Constrained12(b *testing.B) {
	m := metric.NewConstrained(randomPointSet(2, 12, 100))
	opts := tsp.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.BranchAndBound(m, opts)
	}
}

func BenchmarkHeldKarp_12(b *testing.B) {
	m := metric.NewMatrix(randomPointSet(2, 12, 100))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.HeldKarp(m)
	}
}
