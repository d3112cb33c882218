package jsd_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/jsdiv/jsd"
)

// benchmarkDivergence runs the kernel on deterministic (n,d) batches.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkDivergence(b *testing.B, n, d int, logProb bool) {
	p := make([][]float64, n)
	q := make([][]float64, n)
	for i := 0; i < n; i++ {
		p[i] = make([]float64, d)
		q[i] = make([]float64, d)
		for j := 0; j < d; j++ {
			// Predictable positive weights; normalized by the kernel.
			p[i][j] = 1 + math.Sin(float64(i*d+j))*0.5
			q[i][j] = 1 + math.Cos(float64(i*d+j))*0.5
		}
	}
	if logProb {
		// Switch the same data into valid log-probability rows.
		for i := 0; i < n; i++ {
			var ps, qs float64
			for j := 0; j < d; j++ {
				ps += p[i][j]
				qs += q[i][j]
			}
			for j := 0; j < d; j++ {
				p[i][j] = math.Log(p[i][j] / ps)
				q[i][j] = math.Log(q[i][j] / qs)
			}
		}
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := jsd.Divergence(p, q, logProb); err != nil {
			b.Fatalf("Divergence failed: %v", err)
		}
	}
}

// BenchmarkDivergence_SmallBatch benchmarks 64 samples × 10 categories.
func BenchmarkDivergence_SmallBatch(b *testing.B) {
	benchmarkDivergence(b, 64, 10, false)
}

// BenchmarkDivergence_WideBatch benchmarks 64 samples × 1000 categories.
func BenchmarkDivergence_WideBatch(b *testing.B) {
	benchmarkDivergence(b, 64, 1000, false)
}

// BenchmarkDivergence_TallBatch benchmarks 4096 samples × 10 categories.
func BenchmarkDivergence_TallBatch(b *testing.B) {
	benchmarkDivergence(b, 4096, 10, false)
}

// BenchmarkDivergence_LogProb benchmarks the log-probability input mode,
// which skips normalization but pays for exponentiation.
func BenchmarkDivergence_LogProb(b *testing.B) {
	benchmarkDivergence(b, 64, 1000, true)
}
