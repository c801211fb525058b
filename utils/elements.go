package utils

// ElementType represents the background cell shapes supported by the mesh
type ElementType int

const (
	Unknown ElementType = iota
	// 1D elements
	Line
	// 2D elements
	Triangle
	Quad
	// 3D elements
	Tet
	Hex
)

var elementNames = []string{"Unknown", "Line", "Triangle", "Quad", "Tet", "Hex"}

// String representation of element types
func (e ElementType) String() string {
	if int(e) >= 0 && int(e) < len(elementNames) {
		return elementNames[e]
	}
	return "Invalid"
}

// GetDimension returns the spatial dimension of the element
func (e ElementType) GetDimension() int {
	switch e {
	case Line:
		return 1
	case Triangle, Quad:
		return 2
	case Tet, Hex:
		return 3
	default:
		return -1
	}
}

// GetNumNodes returns the number of nodes for each element type
func (e ElementType) GetNumNodes() int {
	switch e {
	case Line:
		return 2
	case Triangle:
		return 3
	case Quad:
		return 4
	case Tet:
		return 4
	case Hex:
		return 8
	default:
		return 0
	}
}
