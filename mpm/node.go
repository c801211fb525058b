package mpm

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gompm/utils"
)

/*
Node is a background grid node. Each step it accumulates the mass, momentum and forces
projected from the particles, derives velocity and acceleration from them and enforces its
boundary constraints.

Velocity and acceleration are dof sized and persist between steps until recomputed;
dof may exceed the spatial dimension for mixed formulations, in which case only the
first Dim() components are spatial.
*/
type Node struct {
	ID    int
	Coord []float64
	dof   int

	massSoil         float64
	momentumSoil     *mat.VecDense
	extForceSoil     *mat.VecDense
	presForceSoil    *mat.VecDense
	intForceSoil     *mat.VecDense
	velocitySoil     *mat.VecDense
	accelerationSoil *mat.VecDense

	genConstraints       []int                     // directions
	fricConstraints      []FrictionConstraint      // normal direction and sign
	genConstraintsSlope  []float64                 // slope angles
	fricConstraintsSlope []FrictionSlopeConstraint // slope angle and sign

	elements []int // ids of elements sharing this node
	nodes    []int // ids of connected nodes
}

func NewNode(id int, coord []float64, dof int) (n *Node, err error) {
	if id < 0 {
		err = fmt.Errorf("%w: node %d", ErrInvalidID, id)
		return
	}
	if len(coord) < 1 || len(coord) > 3 || dof < len(coord) {
		err = fmt.Errorf("%w: node %d has dim = %d, dof = %d", ErrDimension, id, len(coord), dof)
		return
	}
	n = &Node{
		ID:               id,
		Coord:            append([]float64{}, coord...),
		dof:              dof,
		momentumSoil:     mat.NewVecDense(dof, nil),
		extForceSoil:     mat.NewVecDense(dof, nil),
		presForceSoil:    mat.NewVecDense(dof, nil),
		intForceSoil:     mat.NewVecDense(dof, nil),
		velocitySoil:     mat.NewVecDense(dof, nil),
		accelerationSoil: mat.NewVecDense(dof, nil),
	}
	return
}

func (n *Node) Dim() int { return len(n.Coord) }
func (n *Node) Dof() int { return n.dof }

// Initialise zeroes the per-step accumulators; velocity, acceleration and constraints are kept
func (n *Node) Initialise() {
	n.massSoil = 0
	n.momentumSoil.Zero()
	n.extForceSoil.Zero()
	n.presForceSoil.Zero()
	n.intForceSoil.Zero()
}

// AssignSoilMass adds the nodal mass contribution of a particle
func (n *Node) AssignSoilMass(nMass float64) { n.massSoil += nMass }

// AssignSoilMomentum adds the nodal momentum contribution of a particle
func (n *Node) AssignSoilMomentum(nMomentum mat.Vector) {
	n.momentumSoil.AddVec(n.momentumSoil, nMomentum)
}

// AssignExternalForce adds the nodal body/external force contribution of a particle
func (n *Node) AssignExternalForce(nExtForce mat.Vector) {
	n.extForceSoil.AddVec(n.extForceSoil, nExtForce)
}

func (n *Node) AssignPressureForce(nPresForce mat.Vector) {
	n.presForceSoil.AddVec(n.presForceSoil, nPresForce)
}

// AssignInternalForce subtracts the divergence-of-stress contribution of a particle
func (n *Node) AssignInternalForce(nIntForce mat.Vector) {
	n.intForceSoil.SubVec(n.intForceSoil, nIntForce)
}

// anchored nodes carry no mass and are held at rest
func (n *Node) anchored() bool {
	return n.massSoil <= utils.MASSTOL
}

func (n *Node) holdAtRest() {
	n.velocitySoil.Zero()
	n.accelerationSoil.Zero()
}

// ComputeSoilVelocity sets velocity = momentum / mass and applies the axis aligned general constraints
func (n *Node) ComputeSoilVelocity() {
	n.computeVelocity(false)
}

// ComputeSoilVelocityMixedMesh also applies the sloped general constraints
func (n *Node) ComputeSoilVelocityMixedMesh() {
	n.computeVelocity(true)
}

func (n *Node) computeVelocity(mixed bool) {
	if n.anchored() {
		n.holdAtRest()
		return
	}
	n.velocitySoil.ScaleVec(1/n.massSoil, n.momentumSoil)
	n.applyGeneralConstraints(n.velocitySoil)
	if mixed {
		n.applyGeneralConstraintsSlope(n.velocitySoil)
	}
}

/*
ComputeSoilAccelerationAndVelocity derives the nodal acceleration from the accumulated forces
with local damping miu, limits it with the frictional and then the general constraints, and
integrates velocity = momentum / mass + acceleration * dt, constraining it again. A frictional
boundary removes any velocity component pointing into it.
General constraints are applied last, so they take precedence over a frictional constraint
along the same direction.
*/
func (n *Node) ComputeSoilAccelerationAndVelocity(dt, miu float64) {
	n.computeKinematics(dt, miu, false)
}

// ComputeSoilAccelerationAndVelocityMixedMesh is ComputeSoilAccelerationAndVelocity for meshes with sloped boundaries
func (n *Node) ComputeSoilAccelerationAndVelocityMixedMesh(dt, miu float64) {
	n.computeKinematics(dt, miu, true)
}

func (n *Node) computeKinematics(dt, miu float64, mixed bool) {
	if !(dt > 0) {
		panic(fmt.Errorf("node %d: time step must be positive, have %v", n.ID, dt))
	}
	if n.anchored() {
		n.holdAtRest()
		return
	}
	// velocity seed from the projected momentum
	n.velocitySoil.ScaleVec(1/n.massSoil, n.momentumSoil)

	var (
		a = n.accelerationSoil
		f float64
	)
	for i := 0; i < n.dof; i++ {
		f = n.extForceSoil.AtVec(i) + n.intForceSoil.AtVec(i) + n.presForceSoil.AtVec(i)
		a.SetVec(i, (f-miu*math.Abs(f)*utils.Sign(f))/n.massSoil)
	}

	n.applyFrictionConstraints(dt, miu)
	if mixed {
		n.applyFrictionConstraintsSlope(dt, miu)
	}
	n.applyGeneralConstraints(a)
	if mixed {
		n.applyGeneralConstraintsSlope(a)
	}

	n.velocitySoil.AddScaledVec(n.velocitySoil, dt, a)
	n.applyFrictionVelocity(n.velocitySoil)
	if mixed {
		n.applyFrictionVelocitySlope(n.velocitySoil)
	}
	n.applyGeneralConstraints(n.velocitySoil)
	if mixed {
		n.applyGeneralConstraintsSlope(n.velocitySoil)
	}
}

// UpdateNodalVelocity overwrites the velocity; constraints are not reapplied
func (n *Node) UpdateNodalVelocity(velocity mat.Vector) {
	n.velocitySoil.CopyVec(velocity)
}

func (n *Node) SoilVelocity() *mat.VecDense     { return utils.VecCopy(n.velocitySoil) }
func (n *Node) SoilAcceleration() *mat.VecDense { return utils.VecCopy(n.accelerationSoil) }
func (n *Node) LumpedMass() float64             { return n.massSoil }
func (n *Node) Momentum() *mat.VecDense         { return utils.VecCopy(n.momentumSoil) }
func (n *Node) PressureForce() *mat.VecDense    { return utils.VecCopy(n.presForceSoil) }
func (n *Node) ExternalForce() *mat.VecDense    { return utils.VecCopy(n.extForceSoil) }
func (n *Node) InternalForce() *mat.VecDense    { return utils.VecCopy(n.intForceSoil) }

// AddElement records an element containing this node
func (n *Node) AddElement(elementID int) { n.elements = insertSorted(n.elements, elementID) }
func (n *Node) Elements() []int          { return append([]int{}, n.elements...) }

// AddNode records a connected node
func (n *Node) AddNode(nodeID int) { n.nodes = insertSorted(n.nodes, nodeID) }
func (n *Node) Nodes() []int       { return append([]int{}, n.nodes...) }

func (n *Node) String() string {
	return fmt.Sprintf("%d, mass= %g, intForce= %v", n.ID, n.massSoil, utils.VecGetF64(n.intForceSoil))
}

func insertSorted(ids []int, id int) []int {
	i := sort.SearchInts(ids, id)
	if i < len(ids) && ids[i] == id {
		return ids
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}
