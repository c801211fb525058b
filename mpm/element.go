package mpm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gompm/utils"
)

// Element is a background cell. Its node connectivity and geometry are fixed at mesh build
// time; the ids of the particles inside it are rebuilt every step.
type Element struct {
	ID        int
	Shape     utils.ElementType
	nodeIDs   []int
	particles []int
	center    []float64 // coordinates of the center
	lengths   []float64 // extent along each axis
}

func NewElement(id int, shape utils.ElementType, nodeIDs []int) (e *Element, err error) {
	if id < 0 {
		err = fmt.Errorf("%w: element %d", ErrInvalidID, id)
		return
	}
	if shape.GetNumNodes() == 0 {
		err = fmt.Errorf("%w: element %d has shape %s", ErrUnknownShape, id, shape)
		return
	}
	if len(nodeIDs) != shape.GetNumNodes() {
		err = fmt.Errorf("%w: element %d of shape %s needs %d nodes, have %d",
			ErrDimension, id, shape, shape.GetNumNodes(), len(nodeIDs))
		return
	}
	seen := make(map[int]bool, len(nodeIDs))
	for _, nid := range nodeIDs {
		if seen[nid] {
			err = fmt.Errorf("%w: element %d lists node %d twice", ErrDuplicateID, id, nid)
			return
		}
		seen[nid] = true
	}
	e = &Element{
		ID:      id,
		Shape:   shape,
		nodeIDs: append([]int{}, nodeIDs...),
	}
	return
}

// Initialise clears the particle list ahead of the classification pass
func (e *Element) Initialise() { e.particles = e.particles[:0] }

// AddParticle records a particle located inside the element
func (e *Element) AddParticle(particleID int) { e.particles = append(e.particles, particleID) }

func (e *Element) Particles() []int  { return append([]int{}, e.particles...) }
func (e *Element) NumParticles() int { return len(e.particles) }

func (e *Element) Nodes() []int     { return append([]int{}, e.nodeIDs...) }
func (e *Element) Node(ind int) int { return e.nodeIDs[ind] }

// NodeLocation returns the local index of the node, or -1 when it is not part of the element
func (e *Element) NodeLocation(nodeID int) int {
	for i, nid := range e.nodeIDs {
		if nid == nodeID {
			return i
		}
	}
	return -1
}

func (e *Element) IsNodeIncluded(nodeID int) bool { return e.NodeLocation(nodeID) >= 0 }

/*
ComputeCtrCoordAndLength sets the center to the mean of the node coordinates and the length
along each axis to the spread of the node coordinates on that axis. The lengths are the cell
sizes only for axis aligned shapes.
*/
func (e *Element) ComputeCtrCoordAndLength(nl NodeLookup) (err error) {
	var (
		nn  = len(e.nodeIDs)
		dim int
		X   [][]float64 // per axis node coordinates
	)
	for i, nid := range e.nodeIDs {
		node, ok := nl.Node(nid)
		if !ok {
			return fmt.Errorf("%w: element %d refers to node %d", ErrNodeNotFound, e.ID, nid)
		}
		if i == 0 {
			dim = node.Dim()
			X = make([][]float64, dim)
			for d := range X {
				X[d] = make([]float64, nn)
			}
		}
		if node.Dim() != dim {
			return fmt.Errorf("%w: element %d mixes %d and %d dimensional nodes", ErrDimension, e.ID, dim, node.Dim())
		}
		for d := 0; d < dim; d++ {
			X[d][i] = node.Coord[d]
		}
	}
	e.center = make([]float64, dim)
	e.lengths = make([]float64, dim)
	for d := 0; d < dim; d++ {
		e.center[d] = floats.Sum(X[d]) / float64(nn)
		e.lengths[d] = floats.Max(X[d]) - floats.Min(X[d])
	}
	return
}

// Center returns the center coordinates, nil before ComputeCtrCoordAndLength
func (e *Element) Center() []float64 {
	if e.center == nil {
		return nil
	}
	return append([]float64{}, e.center...)
}

// Lengths returns the per axis lengths, nil before ComputeCtrCoordAndLength
func (e *Element) Lengths() []float64 {
	if e.lengths == nil {
		return nil
	}
	return append([]float64{}, e.lengths...)
}

func (e *Element) String() string {
	return fmt.Sprintf("element %d (%s), nodes = %v, center = %v, particles = %d",
		e.ID, e.Shape, e.nodeIDs, e.center, len(e.particles))
}
