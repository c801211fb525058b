package mpm

import "errors"

var (
	// ErrDimension indicates coordinates or dof inconsistent with the mesh.
	ErrDimension = errors.New("mpm: dimension mismatch")

	// ErrUnknownShape indicates an element shape with no node count.
	ErrUnknownShape = errors.New("mpm: unknown element shape")

	// ErrNodeNotFound indicates an element refers to a node the mesh does not hold.
	ErrNodeNotFound = errors.New("mpm: node not found")

	// ErrDuplicateID indicates an id already registered in the mesh.
	ErrDuplicateID = errors.New("mpm: duplicate id")

	// ErrInvalidID indicates a negative id.
	ErrInvalidID = errors.New("mpm: invalid id")

	// ErrTimeStep indicates a non-positive or non-finite time step or damping factor.
	ErrTimeStep = errors.New("mpm: invalid time step parameters")
)
