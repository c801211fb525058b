package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NewVecFrom copies x into a new vector of length N, panicking on a length mismatch
func NewVecFrom(N int, x []float64) (V *mat.VecDense) {
	if len(x) != N {
		panic(fmt.Errorf("vector length mismatch: have %d, want %d", len(x), N))
	}
	d := make([]float64, N)
	copy(d, x)
	return mat.NewVecDense(N, d)
}

func VecGetF64(v mat.Vector) (r []float64) {
	r = make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		r[i] = v.AtVec(i)
	}
	return
}

// VecCopy returns a copy of v that shares no storage with it
func VecCopy(v mat.Vector) (r *mat.VecDense) {
	return mat.VecDenseCopyOf(v)
}

func VecIsNan(v mat.Vector) bool {
	for i := 0; i < v.Len(); i++ {
		if math.IsNaN(v.AtVec(i)) {
			return true
		}
	}
	return false
}
