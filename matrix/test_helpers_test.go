// Package matrix_test: shared helpers for tests and benchmarks,
// deterministic random fills included.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/natrix/matrix"
)

// randDense builds an r×c float64 matrix with deterministic pseudo-random
// contents in [-1, 1).
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.New(r, c, data)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// randDenseInt64 builds an r×c int64 matrix with deterministic contents.
func randDenseInt64(tb testing.TB, r, c int, seed int64) *matrix.Dense[int64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]int64, r*c)
	for i := range data {
		data[i] = rng.Int63n(2001) - 1000 // [-1000, 1000]
	}
	m, err := matrix.New(r, c, data)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// onesVec returns an all-ones float64 vector of length n.
func onesVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}
