package Poisson1D

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gomg/MG1D"
	"github.com/notargets/gomg/utils"
)

// Poisson solves the 1-D Laplace equation with Dirichlet boundary values on
// [0,1] by full multigrid and compares the result against the exact linear
// solution a + (b-a)x.
type Poisson struct {
	// Input parameters
	BCLeft, BCRight float64
	MG              *MG1D.Multigrid
	X               utils.Vector // grid coordinates
	F               utils.Vector // source term, zero for the Laplace problem
	Phi             utils.Vector // solution field, valid after Solve
	PlotOnce        sync.Once
	chart           *chart2d.Chart2D
	colorMap        *utils2.ColorMap
}

// ErrorRow is one line of the solution report.
type ErrorRow struct {
	Index            int
	X, Approx, Exact float64
	PercentError     float64
}

func NewPoisson(n int, bcLeft, bcRight float64, sp *MG1D.Settings) (c *Poisson, err error) {
	var (
		h  = 1. / float64(n)
		mg *MG1D.Multigrid
	)
	if mg, err = MG1D.NewMultigrid(n, h, bcLeft, bcRight, sp); err != nil {
		return
	}
	c = &Poisson{
		BCLeft:  bcLeft,
		BCRight: bcRight,
		MG:      mg,
		X:       utils.NewVectorLinspace(0, 1, n+1),
		F:       utils.NewVector(n + 1),
	}
	return
}

func (c *Poisson) Solve() (err error) {
	c.Phi, err = c.MG.Solve(c.F)
	return
}

// Exact returns the closed form solution of the discrete Laplace equation
// with linear boundary data, evaluated on the grid.
func (c *Poisson) Exact() utils.Vector {
	var (
		a = c.BCLeft
		b = c.BCRight
	)
	return c.X.Copy().Scale(b - a).AddScalar(a)
}

// ErrorTable reports the solution pointwise against the exact solution.
// Solve must have been called first.
func (c *Poisson) ErrorTable() (rows []ErrorRow) {
	var (
		xD = c.X.RawVector().Data
		pD = c.Phi.RawVector().Data
		eD = c.Exact().RawVector().Data
	)
	rows = make([]ErrorRow, len(xD))
	for i := range xD {
		var pct float64
		switch {
		case eD[i] != 0:
			pct = 100. * math.Abs(pD[i]-eD[i]) / math.Abs(eD[i])
		default:
			pct = 100. * math.Abs(pD[i]-eD[i])
		}
		rows[i] = ErrorRow{
			Index:        i,
			X:            xD[i],
			Approx:       pD[i],
			Exact:        eD[i],
			PercentError: pct,
		}
	}
	return
}

// MaxError and RMSError measure the solution against the exact solution.
func (c *Poisson) MaxError() float64 {
	return floats.Distance(c.Phi.RawVector().Data, c.Exact().RawVector().Data, math.Inf(1))
}

func (c *Poisson) RMSError() float64 {
	diff := c.Phi.Copy().Subtract(c.Exact())
	return floats.Norm(diff.RawVector().Data, 2) / math.Sqrt(float64(diff.Len()))
}

func (c *Poisson) Run(showGraph bool, graphDelay ...time.Duration) {
	if err := c.Solve(); err != nil {
		panic(err)
	}
	fmt.Printf("%5s %10s %12s %12s %12s\n", "i", "x", "approx", "exact", "%err")
	for _, row := range c.ErrorTable() {
		fmt.Printf("%5d %10.6f %12.8f %12.8f %12.3e\n",
			row.Index, row.X, row.Approx, row.Exact, row.PercentError)
	}
	fmt.Printf("max_err = %8.3e, rms_err = %8.3e\n", c.MaxError(), c.RMSError())
	c.Plot(showGraph, graphDelay)
}

// WriteCSV appends one convergence study record in the format read by
// tools/convOrder: title, npts, max error, rms error.
func (c *Poisson) WriteCSV(w io.Writer, title string) error {
	cw := csv.NewWriter(w)
	rec := []string{
		title,
		strconv.Itoa(c.MG.N),
		strconv.FormatFloat(c.MaxError(), 'e', 8, 64),
		strconv.FormatFloat(c.RMSError(), 'e', 8, 64),
	}
	if err := cw.Write(rec); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func (c *Poisson) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		pMin = float32(math.Min(c.BCLeft, c.BCRight))
		pMax = float32(math.Max(c.BCLeft, c.BCRight))
	)
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		c.chart = chart2d.NewChart2D(1280, 1024, float32(c.X.Min()), float32(c.X.Max()), pMin, pMax)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})

	if err := c.chart.AddSeries("Phi", c.X.RawVector().Data, c.Phi.RawVector().Data,
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if err := c.chart.AddSeries("Exact", c.X.RawVector().Data, c.Exact().RawVector().Data,
		chart2d.NoGlyph, chart2d.Dashed, c.colorMap.GetRGB(0.5)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
