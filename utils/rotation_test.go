package utils

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/stretchr/testify/assert"
)

func TestSlopeRotation(t *testing.T) {
	{ // Round trip reproduces the original vector, 2D and 3D, with extra dof
		for _, dd := range [][2]int{{2, 2}, {2, 3}, {3, 3}, {3, 4}} {
			dim, dof := dd[0], dd[1]
			for _, angle := range []float64{0, math.Pi / 6, -0.3, math.Pi / 2} {
				R := NewSlopeRotation(angle, dim, dof)
				x := make([]float64, dof)
				for i := range x {
					x[i] = float64(i+1) * 1.5
				}
				V := mat.NewVecDense(dof, append([]float64{}, x...))
				RotateToSlope(R, V)
				RotateFromSlope(R, V)
				assert.True(t, floats.EqualApprox(x, V.RawVector().Data, 1e-12))
			}
		}
	}
	{ // A vector along the slope normal maps onto the local vertical axis
		angle := math.Pi / 6
		R := NewSlopeRotation(angle, 2, 2)
		normal := mat.NewVecDense(2, []float64{-math.Sin(angle), math.Cos(angle)})
		RotateToSlope(R, normal)
		assert.InDelta(t, 0., normal.AtVec(0), 1e-14)
		assert.InDelta(t, 1., normal.AtVec(1), 1e-14)
	}
	{ // Rotation is orthonormal
		R := NewSlopeRotation(0.7, 3, 3)
		var RtR mat.Dense
		RtR.Mul(R.T(), R)
		assert.True(t, mat.EqualApprox(&RtR, eye(3), 1e-14))
	}
	assert.Panics(t, func() { NewSlopeRotation(0.1, 1, 1) })
	assert.Panics(t, func() { NewSlopeRotation(0.1, 3, 2) })
}

func eye(n int) *mat.Dense {
	I := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		I.Set(i, i, 1)
	}
	return I
}
