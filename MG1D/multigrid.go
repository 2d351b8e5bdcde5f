package MG1D

import (
	"errors"

	"github.com/notargets/gomg/utils"
)

var (
	ErrInvalidGridSize   = errors.New("grid interval count is not a power of two >= 2")
	ErrDimensionMismatch = errors.New("field and source term lengths differ")
)

// MinPoints is the terminal grid length: two boundary points plus one
// interior unknown. Recursion stops here, smoothing alone solves the
// single-unknown system.
const MinPoints = 3

type Settings struct {
	DampingWeight   float64 // Jacobi under-relaxation weight
	SweepsPerSmooth int     // Jacobi sweeps per smoothing call
	FMGAscents      int     // V-cycles applied at each level on the FMG ascent
	Tolerance       float64 // optional residual stopping rule, 0 disables it
	MaxExtraCycles  int     // bound on tolerance-driven V-cycles after FMG
}

// DefaultSettings returns the standard parameters: weight 2/3 maximizes
// high-frequency damping for the 1-D stencil, 50 sweeps per smoothing call,
// 5 V-cycles per ascending level.
func DefaultSettings() *Settings {
	return &Settings{
		DampingWeight:   2. / 3.,
		SweepsPerSmooth: 50,
		FMGAscents:      5,
		Tolerance:       0,
		MaxExtraCycles:  20,
	}
}

type Multigrid struct {
	N               int     // finest grid interval count, a power of two
	H               float64 // finest mesh spacing
	BCLeft, BCRight float64 // Dirichlet values at index 0 and N
	Settings
}

// NewMultigrid validates the grid and returns a solver for the 1-D Dirichlet
// Poisson problem on n intervals of spacing h. Settings may be nil for the
// defaults.
func NewMultigrid(n int, h, bcLeft, bcRight float64, sp *Settings) (mg *Multigrid, err error) {
	if n < 2 || !utils.IsPowerOfTwo(n) {
		err = ErrInvalidGridSize
		return
	}
	if sp == nil {
		sp = DefaultSettings()
	}
	mg = &Multigrid{
		N:        n,
		H:        h,
		BCLeft:   bcLeft,
		BCRight:  bcRight,
		Settings: *sp,
	}
	return
}

// VCycle performs one multigrid V-cycle at spacing h, correcting the
// approximate solution phi against source F. The input phi is not modified.
//
// Pre-smoothing damps high-frequency error on this level, then the smooth
// remainder is transferred to the coarse grid where it reappears as
// high-frequency content relative to the doubled spacing. The recursion
// bottoms out at MinPoints, where smoothing alone resolves the single
// interior unknown.
func (mg *Multigrid) VCycle(phi, F utils.Vector, h float64) (phi1 utils.Vector, err error) {
	if phi.Len() != F.Len() {
		err = ErrDimensionMismatch
		return
	}
	if phi1, err = Smooth(phi, F, h, mg.SweepsPerSmooth, mg.DampingWeight); err != nil {
		return
	}
	if phi1.Len() > MinPoints {
		// Coarse grid correction: solve A e = residual on the 2h grid.
		var (
			res, F2, eCoarse, eFine utils.Vector
		)
		if res, err = Residual(phi1, F, h); err != nil {
			return
		}
		if F2, err = Restrict(res); err != nil {
			return
		}
		F2.Scale(1. / (h * h))
		zero := utils.NewVector(F2.Len())
		if eCoarse, err = mg.VCycle(zero, F2, 2*h); err != nil {
			return
		}
		if eFine, err = Prolongate(eCoarse); err != nil {
			return
		}
		phi1.Add(eFine)
	}
	// Post-smoothing against the original source term.
	phi1, err = Smooth(phi1, F, h, mg.SweepsPerSmooth, mg.DampingWeight)
	return
}

// Solve runs full multigrid for source term F on the finest grid and returns
// the solution field. The source is restricted down to the terminal grid,
// the terminal field is initialized from the boundary pair, and the solution
// is carried back up: at each level the coarse solution seeds the finer grid
// through prolongation and FMGAscents V-cycles refine it before the next
// ascent. The work is O(n) total across all levels.
//
// When Tolerance is non-zero, additional V-cycles run on the finest grid
// until the residual max-norm drops below it, up to MaxExtraCycles.
func (mg *Multigrid) Solve(F utils.Vector) (phi utils.Vector, err error) {
	if F.Len() != mg.N+1 {
		err = ErrDimensionMismatch
		return
	}
	if phi, err = mg.fullMultigrid(F, mg.H); err != nil {
		return
	}
	if mg.Tolerance > 0 {
		var res utils.Vector
		for cycle := 0; cycle < mg.MaxExtraCycles; cycle++ {
			if res, err = Residual(phi, F, mg.H); err != nil {
				return
			}
			if res.MaxAbs() < mg.Tolerance {
				break
			}
			if phi, err = mg.VCycle(phi, F, mg.H); err != nil {
				return
			}
		}
	}
	return
}

func (mg *Multigrid) fullMultigrid(F utils.Vector, h float64) (phi utils.Vector, err error) {
	if F.Len() <= MinPoints {
		phi = utils.NewVector(F.Len())
		pD := phi.RawVector().Data
		pD[0] = mg.BCLeft
		pD[len(pD)-1] = mg.BCRight
	} else {
		var (
			F2, phiCoarse utils.Vector
		)
		if F2, err = Restrict(F); err != nil {
			return
		}
		if phiCoarse, err = mg.fullMultigrid(F2, 2*h); err != nil {
			return
		}
		if phi, err = Prolongate(phiCoarse); err != nil {
			return
		}
	}
	for cycle := 0; cycle < mg.FMGAscents; cycle++ {
		if phi, err = mg.VCycle(phi, F, h); err != nil {
			return
		}
	}
	return
}
