package MG1D

import (
	"github.com/notargets/gomg/utils"
)

// Prolongate maps a coarse grid field of length m+1 onto the next finer
// grid of length 2m+1 using linear interpolation. Even fine points take the
// coincident coarse value, odd fine points the average of their two coarse
// neighbors. Boundary values are copied through unchanged.
func Prolongate(coarse utils.Vector) (fine utils.Vector, err error) {
	var (
		m = coarse.Len() - 1
	)
	if m < 1 {
		err = ErrInvalidGridSize
		return
	}
	fine = utils.NewVector(2*m + 1)
	var (
		cD = coarse.RawVector().Data
		fD = fine.RawVector().Data
	)
	for j := 0; j < m; j++ {
		fD[2*j] = cD[j]
		fD[2*j+1] = 0.5 * (cD[j] + cD[j+1])
	}
	fD[2*m] = cD[m]
	return
}

// Restrict maps a fine grid field of length 2m+1 onto the next coarser grid
// of length m+1. Interior coarse points use full weighting, boundary points
// are copied exactly.
func Restrict(fine utils.Vector) (coarse utils.Vector, err error) {
	var (
		nf = fine.Len() - 1
	)
	if nf < 2 || nf%2 != 0 {
		err = ErrInvalidGridSize
		return
	}
	m := nf / 2
	coarse = utils.NewVector(m + 1)
	var (
		fD = fine.RawVector().Data
		cD = coarse.RawVector().Data
	)
	for j := 1; j < m; j++ {
		cD[j] = 0.25 * (fD[2*j-1] + 2*fD[2*j] + fD[2*j+1])
	}
	cD[0] = fD[0]
	cD[m] = fD[nf]
	return
}

// Smooth runs k damped Jacobi sweeps of the discrete Poisson operator on a
// copy of phi, using source F and mesh spacing h. Each sweep computes the
// Jacobi trial value at every interior point from the previous sweep's
// values, then blends it with weight w. Boundary values are never updated.
func Smooth(phi, F utils.Vector, h float64, k int, w float64) (out utils.Vector, err error) {
	if phi.Len() != F.Len() {
		err = ErrDimensionMismatch
		return
	}
	var (
		n  = phi.Len() - 1
		h2 = h * h
		fD = F.RawVector().Data
	)
	out = phi.Copy()
	if n < 2 || k <= 0 {
		return
	}
	var (
		oD  = out.RawVector().Data
		old = make([]float64, n+1)
	)
	for iter := 0; iter < k; iter++ {
		copy(old, oD)
		for j := 1; j < n; j++ {
			trial := 0.5 * (old[j-1] + old[j+1] + h2*fD[j])
			oD[j] = (1.-w)*old[j] + w*trial
		}
	}
	return
}

// Residual returns h²F - A·phi where A is the [-1 2 -1] difference stencil,
// evaluated at interior points. The boundary entries are zero: boundary
// values are exact by construction and carry no defect.
func Residual(phi, F utils.Vector, h float64) (res utils.Vector, err error) {
	if phi.Len() != F.Len() {
		err = ErrDimensionMismatch
		return
	}
	var (
		n  = phi.Len() - 1
		h2 = h * h
		pD = phi.RawVector().Data
		fD = F.RawVector().Data
	)
	res = utils.NewVector(n + 1)
	rD := res.RawVector().Data
	for j := 1; j < n; j++ {
		rD[j] = h2*fD[j] - (-pD[j-1] + 2*pD[j] - pD[j+1])
	}
	return
}
