package material

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// NSIG is the number of Voigt stress components: xx, yy, zz, xy, yz, xz
const NSIG = 6

// Particle is the view of a material point the stress update needs
type Particle interface {
	VelocityGradient() mat.Matrix // 3x3 local velocity gradient
	SetStrainRate(rate float64)   // receives the strain rate invariant sqrt(I2)
}

// ParticleLookup resolves particle ids, owned by the particle cloud
type ParticleLookup interface {
	Particle(id int) (Particle, bool)
}

// Model is a constitutive law updating Voigt stress from a strain increment
type Model interface {
	GetPrms() Params
	Density() float64
	ElasticityTensor(De *mat.Dense)
	ComputeStress(dstrain mat.Vector, stress *mat.VecDense, particles ParticleLookup, pid int) (pNew float64, err error)
	ComputeStress3D(dstrain mat.Vector, stress *mat.VecDense, particles ParticleLookup, pid int) (pNew float64, err error)
}

// allocators holds all available models
var allocators = map[string]func(prms Params) (Model, error){}

// New allocates the named model with the given parameters
func New(name string, prms Params) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q, available models are %v", ErrUnknownModel, name, Names())
	}
	return allocator(prms)
}

// Names returns the registered model names in sorted order
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
