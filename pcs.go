package ais

import "math"

// PCS is a position, course and speed sample for the own vessel or an
// observed target. The northing and easting rates are derived once at
// construction so that repeated closest-approach evaluations against the same
// sample cost only arithmetic.
type PCS struct {
	Lat float64 // degrees, positive north
	Lon float64 // degrees, positive east
	Cog float64 // course over ground, degrees true
	Sog float64 // speed over ground, knots

	HasPosition bool
	HasCog      bool

	// Degrees-per-hour motion components. es carries the 1/cos(lat)
	// stretch so that position extrapolation is linear in lon/lat space.
	ns float64
	es float64
}

// NewPCS builds a fully populated sample and caches its motion components.
func NewPCS(lat, lon, cog, sog float64) PCS {
	p := PCS{
		Lat: lat, Lon: lon, Cog: cog, Sog: sog,
		HasPosition: true,
		HasCog:      true,
	}
	p.ns = sog / 60 * math.Cos(rad(cog))
	p.es = sog / 60 * math.Sin(rad(cog)) / math.Abs(math.Cos(rad(lat)))
	return p
}

// NS is the northing rate in degrees of latitude per hour.
func (p PCS) NS() float64 { return p.ns }

// ES is the easting rate in degrees of longitude per hour.
func (p PCS) ES() float64 { return p.es }

// At extrapolates the position t hours ahead along the cached motion vector.
func (p PCS) At(t float64) (lon, lat float64, ok bool) {
	if !p.HasPosition {
		return 0, 0, false
	}
	return p.Lon + p.es*t, p.Lat + p.ns*t, true
}
