package utils

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) Vector {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		data = dataO[0]
	} else {
		data = make([]float64, n)
	}
	return Vector{
		V: mat.NewVecDense(n, data),
	}
}

func NewVectorConst(n int, val float64) Vector {
	var (
		data = make([]float64, n)
	)
	for i := range data {
		data[i] = val
	}
	return NewVector(n, data)
}

// NewVectorLinspace returns n equispaced values spanning [x0,x1] inclusive.
func NewVectorLinspace(x0, x1 float64, n int) Vector {
	var (
		data = make([]float64, n)
		dx   = (x1 - x0) / float64(n-1)
	)
	for i := range data {
		data[i] = x0 + float64(i)*dx
	}
	data[n-1] = x1
	return NewVector(n, data)
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) Copy() Vector {
	return Vector{
		V: mat.VecDenseCopyOf(v.V),
	}
}

// Chainable (extended) methods
func (v Vector) Set(val float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) Subtract(a Vector) Vector { v.V.SubVec(v.V, a.V); return v }

func (v Vector) Add(a Vector) Vector { v.V.AddVec(v.V, a.V); return v }

func (v Vector) AddScalar(a float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	v.V.ScaleVec(a, v.V)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Min() (min float64) {
	var (
		data = v.V.RawVector().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) MaxAbs() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	for _, val := range data {
		if math.Abs(val) > max {
			max = math.Abs(val)
		}
	}
	return
}
