package material

import (
	"gonum.org/v1/gonum/mat"
)

// MaterialPoint is a minimal particle carrying only what the stress update reads and writes
type MaterialPoint struct {
	VelGrad    *mat.Dense
	StrainRate float64
}

func NewMaterialPoint(velGrad []float64) *MaterialPoint {
	L := mat.NewDense(3, 3, nil)
	if velGrad != nil {
		L = mat.NewDense(3, 3, append([]float64{}, velGrad...))
	}
	return &MaterialPoint{VelGrad: L}
}

func (mp *MaterialPoint) VelocityGradient() mat.Matrix { return mp.VelGrad }
func (mp *MaterialPoint) SetStrainRate(rate float64)   { mp.StrainRate = rate }

// Points is a ParticleLookup over an id keyed map; points without a velocity gradient are not found
type Points map[int]*MaterialPoint

func (ps Points) Particle(id int) (Particle, bool) {
	mp, ok := ps[id]
	if !ok || mp == nil || mp.VelGrad == nil {
		return nil, false
	}
	return mp, true
}
