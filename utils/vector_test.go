package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	N := 3
	v1 := NewVector(N).Set(1)
	require.Equal(t, 1., v1.V.RawVector().Data[N-1])
	v1.Set(2)
	require.Equal(t, 2., v1.V.RawVector().Data[N-1])

	// Copy is independent of the original
	v2 := v1.Copy()
	v2.Set(5)
	assert.Equal(t, 2., v1.AtVec(0))
	assert.Equal(t, 5., v2.AtVec(0))

	// Chained arithmetic
	v3 := NewVector(3, []float64{1, 2, 3}).Scale(2).AddScalar(-1)
	assert.Equal(t, []float64{1, 3, 5}, v3.RawVector().Data)
	v3.Subtract(NewVectorConst(3, 1))
	assert.Equal(t, []float64{0, 2, 4}, v3.RawVector().Data)
	v3.Add(NewVector(3, []float64{1, 1, 1}))
	assert.Equal(t, []float64{1, 3, 5}, v3.RawVector().Data)

	v4 := NewVector(3, []float64{-4, 0, 3})
	assert.Equal(t, -4., v4.Min())
	assert.Equal(t, 3., v4.Max())
	assert.Equal(t, 4., v4.MaxAbs())

	v5 := NewVector(2, []float64{4, 9}).Apply(math.Sqrt)
	assert.Equal(t, []float64{2, 3}, v5.RawVector().Data)
}

func TestVectorLinspace(t *testing.T) {
	v := NewVectorLinspace(0, 1, 5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, v.RawVector().Data)
	// Endpoints are exact regardless of rounding in the interior step
	w := NewVectorLinspace(1, 0, 17)
	assert.Equal(t, 1., w.AtVec(0))
	assert.Equal(t, 0., w.AtVec(16))
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024} {
		assert.True(t, IsPowerOfTwo(n))
	}
	for _, n := range []int{0, -2, 3, 6, 100} {
		assert.False(t, IsPowerOfTwo(n))
	}
}
