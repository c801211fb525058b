package material

import (
	"fmt"
	"math"

	"github.com/notargets/gompm/utils"
)

// Params holds the constants of a viscoplastic material, fixed for the whole simulation
type Params struct {
	E       float64 `json:"E"`       // Young's modulus
	Nu      float64 `json:"Nu"`      // Poisson ratio, -1 < Nu < 0.5
	Density float64 `json:"Density"` // mass density
	Tau0    float64 `json:"Tau0"`    // yield stress
	Mu      float64 `json:"Mu"`      // dynamic viscosity
	// Strain rates at or below the cutoff produce no viscous stress. The 2D and 3D
	// stress paths carry separate cutoffs; both are clamped to at least 1e-15.
	StrainRateCutoff2D float64 `json:"StrainRateCutoff2D"`
	StrainRateCutoff3D float64 `json:"StrainRateCutoff3D"`
}

// Validate checks every parameter against its admissible range
func (p Params) Validate() (err error) {
	check := func(name string, val float64, ok bool) {
		if err != nil {
			return
		}
		if math.IsNaN(val) || math.IsInf(val, 0) || !ok {
			err = fmt.Errorf("%w: %s = %v", ErrInvalidParameter, name, val)
		}
	}
	check("E", p.E, p.E > 0)
	check("Nu", p.Nu, p.Nu > -1 && p.Nu < 0.5)
	check("Density", p.Density, p.Density >= 0)
	check("Tau0", p.Tau0, p.Tau0 >= 0)
	check("Mu", p.Mu, p.Mu >= 0)
	check("StrainRateCutoff2D", p.StrainRateCutoff2D, p.StrainRateCutoff2D >= 0)
	check("StrainRateCutoff3D", p.StrainRateCutoff3D, p.StrainRateCutoff3D >= 0)
	return
}

// BulkModulus returns K = E / (3 (1 - 2 nu))
func (p Params) BulkModulus() float64 {
	return p.E / (3 * (1 - 2*p.Nu))
}

// ShearModulus returns G = E / (2 (1 + nu))
func (p Params) ShearModulus() float64 {
	return p.E / (2 * (1 + p.Nu))
}

func (p Params) cutoffs() (cut2D, cut3D float64) {
	return math.Max(p.StrainRateCutoff2D, utils.STRAINRATETOL), math.Max(p.StrainRateCutoff3D, utils.STRAINRATETOL)
}
