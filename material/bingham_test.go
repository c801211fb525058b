package material

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gompm/utils"
)

func newTestBingham(t *testing.T, prms Params) *Bingham {
	o, err := NewBingham(prms)
	require.NoError(t, err)
	return o
}

func TestElasticityTensor(t *testing.T) {
	{ // Symmetric and positive semi-definite over the admissible range
		for _, E := range []float64{1, 2.5e3, 1e6, 2e11} {
			for _, nu := range []float64{-0.99, -0.5, 0, 0.2, 0.3, 0.45, 0.499} {
				o := newTestBingham(t, Params{E: E, Nu: nu})
				De := mat.NewDense(NSIG, NSIG, nil)
				o.ElasticityTensor(De)
				require.True(t, mat.EqualApprox(De, De.T(), 1e-12*E))
				var eig mat.EigenSym
				require.True(t, eig.Factorize(mat.NewSymDense(NSIG, De.RawMatrix().Data), false))
				for _, lambda := range eig.Values(nil) {
					assert.GreaterOrEqual(t, lambda, -1e-9*E)
				}
			}
		}
	}
	{ // Entries
		o := newTestBingham(t, Params{E: 1e6, Nu: 0.3})
		K, G := 1e6/(3*(1-0.6)), 1e6/(2*1.3)
		assert.InDelta(t, K, o.K, 1e-9)
		assert.InDelta(t, G, o.G, 1e-9)
		De := mat.NewDense(NSIG, NSIG, nil)
		De.Set(5, 0, 99) // overwritten
		o.ElasticityTensor(De)
		assert.InDelta(t, K+4*G/3, De.At(0, 0), 1e-6)
		assert.InDelta(t, K-2*G/3, De.At(1, 2), 1e-6)
		assert.InDelta(t, G, De.At(4, 4), 1e-9)
		assert.Equal(t, 0., De.At(5, 0))
		assert.Equal(t, 0., De.At(3, 4))
		assert.True(t, mat.Equal(De, o.De))
	}
	assert.Panics(t, func() {
		o := newTestBingham(t, Params{E: 1, Nu: 0.3})
		o.ElasticityTensor(mat.NewDense(3, 3, nil))
	})
}

func TestParamsValidation(t *testing.T) {
	bad := []Params{
		{E: 1e6, Nu: 0.5},
		{E: 1e6, Nu: -1},
		{E: 1e6, Nu: 0.7},
		{E: 0, Nu: 0.3},
		{E: math.NaN(), Nu: 0.3},
		{E: 1e6, Nu: 0.3, Tau0: -1},
		{E: 1e6, Nu: 0.3, Mu: -1},
		{E: 1e6, Nu: 0.3, Density: -1},
		{E: 1e6, Nu: 0.3, StrainRateCutoff2D: -1e-3},
		{E: 1e6, Nu: 0.3, StrainRateCutoff3D: math.Inf(1)},
	}
	for _, prms := range bad {
		_, err := NewBingham(prms)
		assert.ErrorIs(t, err, ErrInvalidParameter, "%+v", prms)
	}
	_, err := NewBingham(Params{E: 1e6, Nu: 0.3, Density: 1800, Tau0: 10, Mu: 1})
	assert.NoError(t, err)
}

func TestComputeStressZeroRate(t *testing.T) {
	o := newTestBingham(t, Params{E: 1e6, Nu: 0.3, Tau0: 10, Mu: 1})
	pts := Points{7: NewMaterialPoint(nil)}
	pts[7].StrainRate = -1

	rate, factor, tau := o.Flow(pts[7].VelGrad, true)
	assert.Equal(t, 0., rate)
	assert.Equal(t, 0., factor)
	assert.Equal(t, [3]float64{}, tau)

	dstrain := mat.NewVecDense(NSIG, []float64{1e-4, -2e-4, 0, 3e-4, 0, 0})
	stress := mat.NewVecDense(NSIG, []float64{1, 2, 3, 4, 5, 6})
	var expected mat.VecDense
	expected.MulVec(o.De, dstrain)
	expected.AddVec(&expected, mat.NewVecDense(NSIG, []float64{1, 2, 3, 4, 5, 6}))

	p, err := o.ComputeStress(dstrain, stress, pts, 7)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(&expected, stress, 1e-9))
	assert.Equal(t, 0., pts[7].StrainRate)
	assert.InDelta(t, 2+o.K*(-1e-4), p, 1e-9)
}

func TestComputeStressYieldBoundary(t *testing.T) {
	// Tau0 = 1, diag(L) = (1, -1): the shear term L01 moves the state just inside the yield surface
	o := newTestBingham(t, Params{E: 1e6, Nu: 0.3, Tau0: 1, Mu: 1e-6})
	initial := []float64{100, 100, 100, 100, 100, 100}
	zero := mat.NewVecDense(NSIG, nil)
	{ // just below yield: elastic, zero increment leaves stress untouched
		pts := Points{0: NewMaterialPoint([]float64{1, 0.01, 0, 0, -1, 0, 0, 0, 0})}
		_, _, tau := o.Flow(pts[0].VelGrad, true)
		half := 0.5 * utils.SumSquares(tau[:]...)
		assert.Less(t, half, 1.)
		assert.Greater(t, half, 1-1e-4)
		stress := mat.NewVecDense(NSIG, append([]float64{}, initial...))
		_, err := o.ComputeStress(zero, stress, pts, 0)
		require.NoError(t, err)
		assert.Equal(t, initial, stress.RawVector().Data)
	}
	{ // just above yield: viscous, stress is overwritten rather than incremented
		pts := Points{0: NewMaterialPoint([]float64{1, 0, 0, 0, -1, 0, 0, 0, 0})}
		_, factor, tau := o.Flow(pts[0].VelGrad, true)
		half := 0.5 * utils.SumSquares(tau[:]...)
		assert.Greater(t, half, 1.)
		assert.Less(t, half, 1+1e-4)
		stress := mat.NewVecDense(NSIG, append([]float64{}, initial...))
		p, err := o.ComputeStress(zero, stress, pts, 0)
		require.NoError(t, err)
		assert.Equal(t, 100., p)
		assert.True(t, floats.EqualApprox(
			[]float64{factor + 100, -factor + 100, 0, 0, 0, 0},
			stress.RawVector().Data, 1e-12))
		assert.InDelta(t, 1., pts[0].StrainRate, 1e-15)
	}
}

func TestComputeStressNewtonianShear(t *testing.T) {
	model, err := New("newtonian", Params{E: 1e6, Nu: 0.3, Tau0: 50, Mu: 1})
	require.NoError(t, err)
	assert.Equal(t, 0., model.GetPrms().Tau0)
	pts := Points{3: NewMaterialPoint([]float64{0, 2, 0, 0, 0, 0, 0, 0, 0})}
	stress := mat.NewVecDense(NSIG, nil)
	// I2 = 2, factor = 0/sqrt(2) + 2 mu = 2; Tau = 0 is not strictly below Tau0^2 = 0
	p, err := model.ComputeStress(mat.NewVecDense(NSIG, nil), stress, pts, 3)
	require.NoError(t, err)
	assert.Equal(t, 0., p)
	assert.True(t, floats.EqualApprox([]float64{0, 0, 0, 4, 0, 0}, stress.RawVector().Data, 1e-12))
	assert.InDelta(t, math.Sqrt(2), pts[3].StrainRate, 1e-14)
}

func TestComputeStress3D(t *testing.T) {
	o := newTestBingham(t, Params{E: 1e6, Nu: 0.25, Tau0: 0.5, Mu: 2})
	L := []float64{
		1, 2, 3,
		0, -2, 4,
		5, 0, 1,
	}
	pts := Points{1: NewMaterialPoint(L)}
	stress := mat.NewVecDense(NSIG, []float64{3, 6, 9, 1, 1, 1})
	dstrain := mat.NewVecDense(NSIG, []float64{1e-6, 1e-6, 1e-6, 0, 0, 0})
	p, err := o.ComputeStress3D(dstrain, stress, pts, 1)
	require.NoError(t, err)

	rate := math.Sqrt(0.5 * utils.SumSquares(L...))
	factor := 0.5/rate + 4
	pNew := 6 + o.K*3e-6
	assert.InDelta(t, pNew, p, 1e-9)
	assert.InDelta(t, rate, pts[1].StrainRate, 1e-14)
	assert.True(t, floats.EqualApprox([]float64{
		factor*1 + pNew, factor*(-2) + pNew, factor*1 + pNew,
		factor * 2, factor * 4, factor * 3,
	}, stress.RawVector().Data, 1e-9))
}

func TestComputeStressCutoffs(t *testing.T) {
	// The plane path only sees the in-plane gradient and uses its own cutoff
	o := newTestBingham(t, Params{E: 1e6, Nu: 0.3, Tau0: 1, Mu: 1, StrainRateCutoff2D: 1e-3})
	L := mat.NewDense(3, 3, []float64{
		1e-4, 0, 0,
		0, 0, 0,
		0, 0, 7,
	})
	rate, factor, _ := o.Flow(L, true)
	assert.InDelta(t, 1e-4/math.Sqrt(2), rate, 1e-18)
	assert.Equal(t, 0., factor)
	L.Set(2, 2, 0)
	rate, factor, tau := o.Flow(L, false)
	assert.InDelta(t, 1e-4/math.Sqrt(2), rate, 1e-18)
	assert.InDelta(t, 1/rate+2, factor, 1e-9)
	assert.Equal(t, 0., tau[2])
	{ // Default cutoffs clamp at 1e-15
		o2 := newTestBingham(t, Params{E: 1e6, Nu: 0.3})
		assert.Equal(t, utils.STRAINRATETOL, o2.cut2D)
		assert.Equal(t, utils.STRAINRATETOL, o2.cut3D)
	}
}

func TestComputeStressErrors(t *testing.T) {
	o := newTestBingham(t, Params{E: 1e6, Nu: 0.3, Tau0: 1, Mu: 1})
	stress := mat.NewVecDense(NSIG, nil)
	_, err := o.ComputeStress(mat.NewVecDense(NSIG, nil), stress, Points{}, 4)
	assert.ErrorIs(t, err, ErrParticleNotFound)
	_, err = o.ComputeStress3D(mat.NewVecDense(NSIG, nil), stress, Points{0: &MaterialPoint{}}, 0)
	assert.ErrorIs(t, err, ErrParticleNotFound)
	_, err = o.ComputeStress3D(mat.NewVecDense(3, nil), stress, Points{0: NewMaterialPoint(nil)}, 0)
	assert.ErrorIs(t, err, ErrDimension)
	pts := Points{0: &MaterialPoint{VelGrad: mat.NewDense(2, 2, nil)}}
	_, err = o.ComputeStress(mat.NewVecDense(NSIG, nil), stress, pts, 0)
	assert.ErrorIs(t, err, ErrDimension)
}

func TestFactory(t *testing.T) {
	assert.Equal(t, []string{"bingham", "newtonian"}, Names())
	_, err := New("cam-clay", Params{E: 1, Nu: 0.2})
	assert.ErrorIs(t, err, ErrUnknownModel)
	_, err = New("bingham", Params{E: 1, Nu: 0.5})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	m, err := New("bingham", Params{E: 1, Nu: 0.2, Tau0: 3, Density: 1800})
	require.NoError(t, err)
	assert.Equal(t, 3., m.GetPrms().Tau0)
	assert.Equal(t, 1800., m.Density())
	m, err = New("newtonian", Params{E: 1, Nu: 0.2, Tau0: 3})
	require.NoError(t, err)
	assert.Equal(t, 0., m.GetPrms().Tau0)
}
