package ais

import "math"

// EarthRadiusNM is the earth radius in nautical miles.
const EarthRadiusNM = 3440

func rad(x float64) float64 { return x * math.Pi / 180 }
func deg(x float64) float64 { return x * 180 / math.Pi }

// Range is the equirectangular distance in nautical miles between two
// positions given in degrees. Adequate at the separations AIS targets are
// tracked over; no attempt at great-circle accuracy.
func Range(aLat, aLon, bLat, bLon float64) float64 {
	x := (rad(bLon) - rad(aLon)) * math.Cos((rad(aLat)+rad(bLat))/2)
	y := rad(bLat) - rad(aLat)
	return EarthRadiusNM * math.Hypot(x, y)
}

// Bearing is the initial bearing from a to b in degrees, 0-360 from true
// north.
func Bearing(aLat, aLon, bLat, bLon float64) float64 {
	dLambda := rad(bLon - aLon)
	y := math.Sin(dLambda) * math.Cos(rad(bLat))
	x := math.Cos(rad(aLat))*math.Sin(rad(bLat)) - math.Sin(rad(aLat))*math.Cos(rad(bLat))*math.Cos(dLambda)
	return math.Mod(360+deg(math.Atan2(y, x)), 360)
}

// TCPA is the time to closest point of approach in hours under linear motion.
// Zero relative velocity reports 0: the vessels are as close now as they will
// ever be. Diverging tracks give a negative time. Absent when our course or
// either position is unknown.
func TCPA(us, them PCS) (float64, bool) {
	if !us.HasCog || !us.HasPosition || !them.HasPosition {
		return 0, false
	}
	dvE := us.es - them.es
	dvN := us.ns - them.ns
	dv2 := dvE*dvE + dvN*dvN
	if dv2 == 0 {
		return 0, true
	}
	return -((us.Lon-them.Lon)*dvE + (us.Lat-them.Lat)*dvN) / dv2, true
}

// Distance is the separation in nautical miles after both vessels have run t
// hours along their tracks. Absent when our course or either position is
// unknown.
func Distance(us, them PCS, t float64) (float64, bool) {
	if !us.HasCog {
		return 0, false
	}
	usLon, usLat, ok := us.At(t)
	if !ok {
		return 0, false
	}
	themLon, themLat, ok := them.At(t)
	if !ok {
		return 0, false
	}
	return math.Hypot(usLon-themLon, usLat-themLat) * 60, true
}

// CPA is the distance at the closest point of approach.
func CPA(us, them PCS) (float64, bool) {
	t, ok := TCPA(us, them)
	if !ok {
		return 0, false
	}
	return Distance(us, them, t)
}
