package mpm

import (
	"fmt"
	"math"
)

// NodeLookup resolves node ids
type NodeLookup interface {
	Node(id int) (*Node, bool)
}

/*
Projector is the particle side of a time step, supplied by the caller:

	Classify        - add each particle to the element that contains it
	Project         - assign the weighted particle mass, momentum and forces to the nodes
	UpdateParticles - interpolate nodal kinematics back, update particle stress and position
*/
type Projector interface {
	Classify(m *Mesh) error
	Project(m *Mesh) error
	UpdateParticles(m *Mesh) error
}

// MaxIDGap bounds how far past the current node or element storage a new id may lie
const MaxIDGap = 1 << 16

// Mesh owns the nodes and elements, indexed by id. Cross references between them are ids.
// Ids are expected to be dense, since storage grows to the largest id.
type Mesh struct {
	Dim, Dof int
	nodes    []*Node
	elements []*Element
}

func NewMesh(dim, dof int) (m *Mesh, err error) {
	if dim < 1 || dim > 3 || dof < dim {
		err = fmt.Errorf("%w: dim = %d, dof = %d", ErrDimension, dim, dof)
		return
	}
	return &Mesh{Dim: dim, Dof: dof}, nil
}

func (m *Mesh) AddNode(n *Node) error {
	if n.ID < 0 || n.ID > len(m.nodes)+MaxIDGap {
		return fmt.Errorf("%w: node %d with %d node slots", ErrInvalidID, n.ID, len(m.nodes))
	}
	if n.Dim() != m.Dim || n.Dof() != m.Dof {
		return fmt.Errorf("%w: node %d has dim = %d, dof = %d, mesh has dim = %d, dof = %d",
			ErrDimension, n.ID, n.Dim(), n.Dof(), m.Dim, m.Dof)
	}
	if _, exists := m.Node(n.ID); exists {
		return fmt.Errorf("%w: node %d", ErrDuplicateID, n.ID)
	}
	m.nodes = grow(m.nodes, n.ID)
	m.nodes[n.ID] = n
	return nil
}

func (m *Mesh) AddElement(e *Element) error {
	if e.ID < 0 || e.ID > len(m.elements)+MaxIDGap {
		return fmt.Errorf("%w: element %d with %d element slots", ErrInvalidID, e.ID, len(m.elements))
	}
	if e.Shape.GetDimension() != m.Dim {
		return fmt.Errorf("%w: element %d of shape %s in a %d dimensional mesh", ErrDimension, e.ID, e.Shape, m.Dim)
	}
	if _, exists := m.Element(e.ID); exists {
		return fmt.Errorf("%w: element %d", ErrDuplicateID, e.ID)
	}
	for _, nid := range e.nodeIDs {
		if _, ok := m.Node(nid); !ok {
			return fmt.Errorf("%w: element %d refers to node %d", ErrNodeNotFound, e.ID, nid)
		}
	}
	m.elements = grow(m.elements, e.ID)
	m.elements[e.ID] = e
	return nil
}

func (m *Mesh) Node(id int) (n *Node, ok bool) {
	if id < 0 || id >= len(m.nodes) || m.nodes[id] == nil {
		return nil, false
	}
	return m.nodes[id], true
}

func (m *Mesh) Element(id int) (e *Element, ok bool) {
	if id < 0 || id >= len(m.elements) || m.elements[id] == nil {
		return nil, false
	}
	return m.elements[id], true
}

// Nodes returns the registered nodes in id order
func (m *Mesh) Nodes() (nodes []*Node) {
	for _, n := range m.nodes {
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	return
}

// Elements returns the registered elements in id order
func (m *Mesh) Elements() (elements []*Element) {
	for _, e := range m.elements {
		if e != nil {
			elements = append(elements, e)
		}
	}
	return
}

// Connect records the node to element and node to node references and computes element geometry
func (m *Mesh) Connect() error {
	for _, e := range m.Elements() {
		for _, nid := range e.nodeIDs {
			n, _ := m.Node(nid)
			n.AddElement(e.ID)
			for _, other := range e.nodeIDs {
				if other != nid {
					n.AddNode(other)
				}
			}
		}
		if err := e.ComputeCtrCoordAndLength(m); err != nil {
			return err
		}
	}
	return nil
}

/*
Step advances the mesh side of one explicit time step:

	element particle lists cleared, p.Classify
	node accumulators reset, p.Project
	nodal acceleration and velocity with constraints (sloped variants when mixed)
	p.UpdateParticles
*/
func (m *Mesh) Step(p Projector, dt, miu float64, mixed bool) (err error) {
	if !(dt > 0) || math.IsInf(dt, 0) || !(miu >= 0 && miu <= 1) {
		return fmt.Errorf("%w: dt = %v, miu = %v", ErrTimeStep, dt, miu)
	}
	elements, nodes := m.Elements(), m.Nodes()
	for _, e := range elements {
		e.Initialise()
	}
	if err = p.Classify(m); err != nil {
		return fmt.Errorf("classify: %w", err)
	}
	for _, n := range nodes {
		n.Initialise()
	}
	if err = p.Project(m); err != nil {
		return fmt.Errorf("project: %w", err)
	}
	for _, n := range nodes {
		if mixed {
			n.ComputeSoilAccelerationAndVelocityMixedMesh(dt, miu)
		} else {
			n.ComputeSoilAccelerationAndVelocity(dt, miu)
		}
	}
	if err = p.UpdateParticles(m); err != nil {
		return fmt.Errorf("update particles: %w", err)
	}
	return
}

func grow[T any](s []*T, id int) []*T {
	if id < len(s) {
		return s
	}
	bigger := make([]*T, id+1)
	copy(bigger, s)
	return bigger
}
