package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
Title: "Laplace BVP"
NIntervals: 64
BCLeft: 1.0
BCRight: 0.0
DampingWeight: 0.6666666666666666
SweepsPerSmooth: 50
FMGAscents: 5
Tolerance: 1.0e-8
MaxExtraCycles: 10
Graph: true
`)
	ip := &InputParameters1D{}
	require.NoError(t, ip.Parse(data))
	assert.Equal(t, "Laplace BVP", ip.Title)
	assert.Equal(t, 64, ip.NIntervals)
	assert.Equal(t, 1., ip.BCLeft)
	assert.Equal(t, 0., ip.BCRight)
	assert.Equal(t, 2./3., ip.DampingWeight)
	assert.Equal(t, 50, ip.SweepsPerSmooth)
	assert.Equal(t, 5, ip.FMGAscents)
	assert.Equal(t, 1.e-8, ip.Tolerance)
	assert.Equal(t, 10, ip.MaxExtraCycles)
	assert.True(t, ip.Graph)
}
