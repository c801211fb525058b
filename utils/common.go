package utils

const (
	// MASSTOL is the nodal mass at or below which a node is treated as anchored
	MASSTOL = 1.e-15
	// STRAINRATETOL is the smallest admissible strain rate cutoff
	STRAINRATETOL = 1.e-15
)
