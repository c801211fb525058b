package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

/*
NewSlopeRotation returns the dof x dof rotation R taking a global vector into the frame of a
boundary sloped at angle (radians) in the plane of axis 0 and the vertical axis dim-1:

	local  = R  * global
	global = Rt * local

Components beyond the slope plane, including any dof past dim, pass through unchanged.
In the local frame the boundary normal lies along axis dim-1.
*/
func NewSlopeRotation(angle float64, dim, dof int) (R *mat.Dense) {
	if dim < 2 || dof < dim {
		panic(fmt.Errorf("slope rotation needs 2 <= dim <= dof, have dim = %d, dof = %d", dim, dof))
	}
	var (
		c, s = math.Cos(angle), math.Sin(angle)
		n    = dim - 1
	)
	R = mat.NewDense(dof, dof, nil)
	for i := 0; i < dof; i++ {
		R.Set(i, i, 1)
	}
	R.Set(0, 0, c)
	R.Set(0, n, s)
	R.Set(n, 0, -s)
	R.Set(n, n, c)
	return
}

// RotateToSlope overwrites V with its components in the slope frame
func RotateToSlope(R mat.Matrix, V *mat.VecDense) {
	var tmp mat.VecDense
	tmp.MulVec(R, V)
	V.CopyVec(&tmp)
}

// RotateFromSlope overwrites V (slope frame) with its global components
func RotateFromSlope(R mat.Matrix, V *mat.VecDense) {
	var tmp mat.VecDense
	tmp.MulVec(R.T(), V)
	V.CopyVec(&tmp)
}
