package ais

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPCS(t *testing.T) {
	t.Run("northbound", func(t *testing.T) {
		p := NewPCS(50, -1, 0, 10)
		assert.True(t, p.HasPosition)
		assert.True(t, p.HasCog)
		assert.InDelta(t, 10.0/60, p.NS(), 1e-12)
		assert.InDelta(t, 0, p.ES(), 1e-12)
	})

	t.Run("eastbound stretches longitude rate by latitude", func(t *testing.T) {
		p := NewPCS(60, -1, 90, 10)
		assert.InDelta(t, 0, p.NS(), 1e-12)
		// cos(60 deg) is one half, so a knot eastward covers two minutes of
		// longitude per minute of arc run.
		assert.InDelta(t, 10.0/60/math.Cos(rad(60)), p.ES(), 1e-9)
		assert.InDelta(t, 2*10.0/60, p.ES(), 1e-9)
	})

	t.Run("southern hemisphere keeps the stretch positive", func(t *testing.T) {
		north := NewPCS(60, -1, 90, 10)
		south := NewPCS(-60, -1, 90, 10)
		assert.InDelta(t, north.ES(), south.ES(), 1e-12)
	})

	t.Run("westbound easting rate is negative", func(t *testing.T) {
		p := NewPCS(50, -1, 270, 10)
		assert.Negative(t, p.ES())
	})

	t.Run("rates are finite for ordinary inputs", func(t *testing.T) {
		p := NewPCS(89, 0, 123.4, 30)
		assert.False(t, math.IsInf(p.NS(), 0) || math.IsNaN(p.NS()))
		assert.False(t, math.IsInf(p.ES(), 0) || math.IsNaN(p.ES()))
	})
}

func TestPCSAt(t *testing.T) {
	p := NewPCS(50, -1, 0, 12)

	lon, lat, ok := p.At(0)
	require.True(t, ok)
	assert.InDelta(t, -1, lon, 1e-12)
	assert.InDelta(t, 50, lat, 1e-12)

	lon, lat, ok = p.At(0.5)
	require.True(t, ok)
	assert.InDelta(t, -1, lon, 1e-12)
	assert.InDelta(t, 50.1, lat, 1e-9, "twelve knots north covers a tenth of a degree in half an hour")

	_, _, ok = PCS{}.At(1)
	assert.False(t, ok)
}
