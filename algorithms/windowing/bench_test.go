package windowing

import (
	"testing"
)

// 4096 is the largest precomputed length and the size most short-time
// transforms request.
const benchLength = 4096

var (
	benchWindow []float64
	benchSum    float64
)

func BenchmarkGetHannWindow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		window, err := GetHannWindow(benchLength)
		if err != nil {
			b.Fatal(err)
		}
		benchWindow = window
	}
}

func BenchmarkCalculateHannWindow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		window, err := CalculateHannWindow(benchLength)
		if err != nil {
			b.Fatal(err)
		}
		benchWindow = window
	}
}

func BenchmarkGetHannWindowSumSquares(b *testing.B) {
	window, err := GetHannWindow(benchLength)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSum = GetHannWindowSumSquares(window)
	}
}

func BenchmarkSumOfSquares(b *testing.B) {
	window, err := GetHannWindow(benchLength)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSum = SumOfSquares(window)
	}
}
