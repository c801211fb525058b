package mpm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gompm/utils"
)

// FrictionConstraint limits motion along the spatial axis Direction. Sign (-1 or 1) points
// from the node into the boundary: acceleration with that sign is resisted.
type FrictionConstraint struct {
	Direction int
	Sign      int
}

// FrictionSlopeConstraint is a FrictionConstraint on a boundary inclined at Angle (radians);
// the normal is the vertical axis of the slope frame, see utils.NewSlopeRotation.
type FrictionSlopeConstraint struct {
	Angle float64
	Sign  int
}

// StoreGeneralConstraint fixes motion along direction (0 <= direction < dof)
func (n *Node) StoreGeneralConstraint(direction int) {
	if direction < 0 || direction >= n.dof {
		panic(fmt.Errorf("node %d: general constraint direction %d out of range [0,%d)", n.ID, direction, n.dof))
	}
	n.genConstraints = append(n.genConstraints, direction)
}

// StoreFrictionConstraint adds a frictional boundary with the given spatial normal direction and sign
func (n *Node) StoreFrictionConstraint(normDirection, signNormDirection int) {
	if normDirection < 0 || normDirection >= n.Dim() {
		panic(fmt.Errorf("node %d: friction constraint direction %d out of range [0,%d)", n.ID, normDirection, n.Dim()))
	}
	n.checkSign(signNormDirection)
	n.fricConstraints = append(n.fricConstraints, FrictionConstraint{normDirection, signNormDirection})
}

// StoreGeneralConstraintSlopeBn fixes motion normal to a boundary sloped at slopeAngle
func (n *Node) StoreGeneralConstraintSlopeBn(slopeAngle float64) {
	n.checkSlope(slopeAngle)
	n.genConstraintsSlope = append(n.genConstraintsSlope, slopeAngle)
}

// StoreFrictionConstraintSlopeBn adds a frictional boundary sloped at slopeAngle
func (n *Node) StoreFrictionConstraintSlopeBn(slopeAngle float64, signNormDirection int) {
	n.checkSlope(slopeAngle)
	n.checkSign(signNormDirection)
	n.fricConstraintsSlope = append(n.fricConstraintsSlope, FrictionSlopeConstraint{slopeAngle, signNormDirection})
}

func (n *Node) checkSign(sign int) {
	if sign != -1 && sign != 1 {
		panic(fmt.Errorf("node %d: constraint sign must be -1 or 1, have %d", n.ID, sign))
	}
}

func (n *Node) checkSlope(angle float64) {
	if n.Dim() < 2 {
		panic(fmt.Errorf("node %d: sloped constraints need at least 2 dimensions", n.ID))
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		panic(fmt.Errorf("node %d: invalid slope angle %v", n.ID, angle))
	}
}

func (n *Node) GeneralConstraints() []int { return append([]int{}, n.genConstraints...) }
func (n *Node) FrictionConstraints() []FrictionConstraint {
	return append([]FrictionConstraint{}, n.fricConstraints...)
}
func (n *Node) GeneralConstraintsSlope() []float64 { return append([]float64{}, n.genConstraintsSlope...) }
func (n *Node) FrictionConstraintsSlope() []FrictionSlopeConstraint {
	return append([]FrictionSlopeConstraint{}, n.fricConstraintsSlope...)
}

// applyGeneralConstraints zeroes V (velocity or acceleration) along each constrained axis
func (n *Node) applyGeneralConstraints(V *mat.VecDense) {
	for _, dir := range n.genConstraints {
		V.SetVec(dir, 0)
	}
}

// applyGeneralConstraintsSlope zeroes the normal component of V in each slope frame
func (n *Node) applyGeneralConstraintsSlope(V *mat.VecDense) {
	normal := n.Dim() - 1
	for _, angle := range n.genConstraintsSlope {
		R := utils.NewSlopeRotation(angle, n.Dim(), n.dof)
		utils.RotateToSlope(R, V)
		V.SetVec(normal, 0)
		utils.RotateFromSlope(R, V)
	}
}

func (n *Node) applyFrictionConstraints(dt, miu float64) {
	for _, fc := range n.fricConstraints {
		n.limitByFriction(n.accelerationSoil, n.velocitySoil, fc.Direction, fc.Sign, dt, miu)
	}
}

func (n *Node) applyFrictionConstraintsSlope(dt, miu float64) {
	var (
		normal = n.Dim() - 1
		aL, vL mat.VecDense
	)
	for _, fc := range n.fricConstraintsSlope {
		R := utils.NewSlopeRotation(fc.Angle, n.Dim(), n.dof)
		aL.CloneFromVec(n.accelerationSoil)
		vL.CloneFromVec(n.velocitySoil)
		utils.RotateToSlope(R, &aL)
		utils.RotateToSlope(R, &vL)
		n.limitByFriction(&aL, &vL, normal, fc.Sign, dt, miu)
		utils.RotateFromSlope(R, &aL)
		n.accelerationSoil.CopyVec(&aL)
	}
}

// applyFrictionVelocity removes the normal velocity pointing into each frictional boundary
func (n *Node) applyFrictionVelocity(V *mat.VecDense) {
	for _, fc := range n.fricConstraints {
		if V.AtVec(fc.Direction)*float64(fc.Sign) > 0 {
			V.SetVec(fc.Direction, 0)
		}
	}
}

func (n *Node) applyFrictionVelocitySlope(V *mat.VecDense) {
	var (
		normal = n.Dim() - 1
		vL     mat.VecDense
	)
	for _, fc := range n.fricConstraintsSlope {
		R := utils.NewSlopeRotation(fc.Angle, n.Dim(), n.dof)
		vL.CloneFromVec(V)
		utils.RotateToSlope(R, &vL)
		if vL.AtVec(normal)*float64(fc.Sign) <= 0 {
			continue
		}
		vL.SetVec(normal, 0)
		utils.RotateFromSlope(R, &vL)
		V.CopyVec(&vL)
	}
}

/*
limitByFriction applies a Coulomb contact along normal direction dir to acceleration a, given
the velocity v at the start of the step, both expressed in the boundary frame.

When a points into the boundary (a[dir]*sign > 0) the normal component is removed and its
magnitude bounds the tangential deceleration by miu*|a[dir]|. A tangential motion the bound
can stop within dt sticks; otherwise the bound is subtracted against the predicted motion.
Acceleration away from the boundary is left free.
*/
func (n *Node) limitByFriction(a, v *mat.VecDense, dir, sign int, dt, miu float64) {
	an := a.AtVec(dir)
	if an*float64(sign) <= 0 {
		return
	}
	a.SetVec(dir, 0)
	limit := miu * math.Abs(an)
	for t := 0; t < n.Dim(); t++ {
		if t == dir {
			continue
		}
		vt := v.AtVec(t) + a.AtVec(t)*dt
		if math.Abs(vt) <= limit*dt {
			a.SetVec(t, -v.AtVec(t)/dt)
		} else {
			a.SetVec(t, a.AtVec(t)-utils.Sign(vt)*limit)
		}
	}
}
