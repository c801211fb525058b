package material

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gompm/utils"
)

/*
Bingham implements an elasto-viscoplastic Bingham fluid.

Below yield, when half the squared norm of the deviatoric shear stress Tau is strictly less
than Tau0^2, the stress is incremented with the linear elastic stiffness. At or above yield the
stress is replaced by the viscous state: Tau plus the updated pressure on the normal components
and the rate dependent factor times the velocity gradient on the shear components.
With Tau0 = 0 the model is Newtonian.
*/
type Bingham struct {
	Prms         Params
	K, G         float64    // bulk and shear moduli
	De           *mat.Dense // elastic stiffness [NSIG][NSIG]
	cut2D, cut3D float64
}

// add model to factory
func init() {
	allocators["bingham"] = func(prms Params) (Model, error) { return NewBingham(prms) }
	allocators["newtonian"] = func(prms Params) (Model, error) {
		prms.Tau0 = 0
		return NewBingham(prms)
	}
}

func NewBingham(prms Params) (o *Bingham, err error) {
	if err = prms.Validate(); err != nil {
		return
	}
	o = &Bingham{
		Prms: prms,
		K:    prms.BulkModulus(),
		G:    prms.ShearModulus(),
		De:   mat.NewDense(NSIG, NSIG, nil),
	}
	o.cut2D, o.cut3D = prms.cutoffs()
	o.ElasticityTensor(o.De)
	return
}

func (o *Bingham) GetPrms() Params { return o.Prms }
func (o *Bingham) Density() float64 { return o.Prms.Density }

// ElasticityTensor fills De with the isotropic stiffness in Voigt form
func (o *Bingham) ElasticityTensor(De *mat.Dense) {
	if r, c := De.Dims(); r != NSIG || c != NSIG {
		panic(fmt.Errorf("elasticity tensor must be %dx%d, have %dx%d", NSIG, NSIG, r, c))
	}
	var (
		a1 = o.K + 4*o.G/3
		a2 = o.K - 2*o.G/3
	)
	De.Zero()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				De.Set(i, j, a1)
			} else {
				De.Set(i, j, a2)
			}
		}
		De.Set(i+3, i+3, o.G)
	}
}

// ComputeStress updates stress for a plane problem; only the in-plane velocity gradient contributes
func (o *Bingham) ComputeStress(dstrain mat.Vector, stress *mat.VecDense, particles ParticleLookup, pid int) (pNew float64, err error) {
	return o.update(true, dstrain, stress, particles, pid)
}

// ComputeStress3D updates stress using the full velocity gradient
func (o *Bingham) ComputeStress3D(dstrain mat.Vector, stress *mat.VecDense, particles ParticleLookup, pid int) (pNew float64, err error) {
	return o.update(false, dstrain, stress, particles, pid)
}

/*
Flow returns the viscous state for velocity gradient L

	rate   = sqrt(I2), I2 = 1/2 L_ij L_ij over the in-plane (planar) or all components
	factor = Tau0/rate + 2 Mu when rate exceeds the cutoff, otherwise 0
	tau    = factor * diag(L), with tau[2] = 0 when planar
*/
func (o *Bingham) Flow(L mat.Matrix, planar bool) (rate, factor float64, tau [3]float64) {
	var (
		n      = 3
		cutoff = o.cut3D
		I2     float64
	)
	if planar {
		n, cutoff = 2, o.cut2D
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			I2 += utils.POW(L.At(i, j), 2)
		}
	}
	rate = math.Sqrt(0.5 * I2)
	if rate > cutoff {
		factor = o.Prms.Tau0/rate + 2*o.Prms.Mu
	}
	for i := 0; i < n; i++ {
		tau[i] = factor * L.At(i, i)
	}
	return
}

// IsElastic reports whether tau lies strictly inside the yield surface
func (o *Bingham) IsElastic(tau [3]float64) bool {
	return 0.5*utils.SumSquares(tau[:]...) < utils.POW(o.Prms.Tau0, 2)
}

func (o *Bingham) update(planar bool, dstrain mat.Vector, stress *mat.VecDense, particles ParticleLookup, pid int) (pNew float64, err error) {
	if dstrain.Len() != NSIG || stress.Len() != NSIG {
		err = fmt.Errorf("%w: strain increment %d and stress %d, want %d", ErrDimension, dstrain.Len(), stress.Len(), NSIG)
		return
	}
	p, ok := particles.Particle(pid)
	if !ok {
		err = fmt.Errorf("%w: id %d", ErrParticleNotFound, pid)
		return
	}
	L := p.VelocityGradient()
	if r, c := L.Dims(); r != 3 || c != 3 {
		err = fmt.Errorf("%w: velocity gradient of particle %d is %dx%d, want 3x3", ErrDimension, pid, r, c)
		return
	}

	// pressure is used only on the viscous branch
	pOld := (stress.AtVec(0) + stress.AtVec(1) + stress.AtVec(2)) / 3
	dp := o.K * (dstrain.AtVec(0) + dstrain.AtVec(1) + dstrain.AtVec(2))
	pNew = pOld + dp

	rate, factor, tau := o.Flow(L, planar)
	p.SetStrainRate(rate)

	if o.IsElastic(tau) {
		var dsig mat.VecDense
		dsig.MulVec(o.De, dstrain)
		stress.AddVec(stress, &dsig)
		return
	}

	if planar {
		stress.SetVec(0, tau[0]+pNew)
		stress.SetVec(1, tau[1]+pNew)
		stress.SetVec(2, 0)
		stress.SetVec(3, factor*L.At(0, 1))
		stress.SetVec(4, 0)
		stress.SetVec(5, 0)
		return
	}
	stress.SetVec(0, tau[0]+pNew)
	stress.SetVec(1, tau[1]+pNew)
	stress.SetVec(2, tau[2]+pNew)
	stress.SetVec(3, factor*L.At(0, 1))
	stress.SetVec(4, factor*L.At(1, 2))
	stress.SetVec(5, factor*L.At(0, 2))
	return
}
