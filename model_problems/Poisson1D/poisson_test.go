package Poisson1D

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomg/MG1D"
)

func TestPoisson(t *testing.T) {
	// Default scenario: n=16, boundaries (1,0), zero source. The exact
	// solution is the straight line from 1 to 0 and the error column must
	// be zero at every grid index.
	{
		c, err := NewPoisson(16, 1, 0, nil)
		require.NoError(t, err)
		require.NoError(t, c.Solve())
		rows := c.ErrorTable()
		assert.Equal(t, 17, len(rows))
		for _, row := range rows {
			assert.Less(t, row.PercentError, 1.e-3)
		}
		assert.Equal(t, 1., c.Phi.AtVec(0))
		assert.Equal(t, 0., c.Phi.AtVec(16))
		assert.Less(t, c.MaxError(), 1.e-6)
	}
	// Minimal non-trivial grid
	{
		c, err := NewPoisson(4, 1, 0, nil)
		require.NoError(t, err)
		require.NoError(t, c.Solve())
		for _, row := range c.ErrorTable() {
			assert.Less(t, row.PercentError, 1.e-3)
		}
	}
	// Invalid interval counts are rejected before any computation
	{
		for _, n := range []int{0, 3, 10} {
			_, err := NewPoisson(n, 1, 0, nil)
			assert.ErrorIs(t, err, MG1D.ErrInvalidGridSize)
		}
	}
}

func TestPoissonErrorReduction(t *testing.T) {
	// More work per level must not increase the error
	var last = 1.e10
	for _, sweeps := range []int{5, 20, 50} {
		sp := MG1D.DefaultSettings()
		sp.SweepsPerSmooth = sweeps
		c, err := NewPoisson(32, 1, 0, sp)
		require.NoError(t, err)
		require.NoError(t, c.Solve())
		e := c.MaxError()
		assert.LessOrEqual(t, e, last+1.e-12)
		last = e
	}
}

func TestPoissonCSV(t *testing.T) {
	c, err := NewPoisson(16, 1, 0, nil)
	require.NoError(t, err)
	require.NoError(t, c.Solve())

	var buf bytes.Buffer
	require.NoError(t, c.WriteCSV(&buf, "laplace"))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, 1, len(records))
	require.Equal(t, 4, len(records[0]))
	assert.Equal(t, "laplace", records[0][0])
	assert.Equal(t, "16", records[0][1])
	maxErr, err := strconv.ParseFloat(records[0][2], 64)
	require.NoError(t, err)
	assert.Less(t, maxErr, 1.e-6)
}
