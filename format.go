package ais

import (
	"fmt"
	"math"
)

// DMS formats a coordinate given in minutes of arc as whole degrees and
// decimal minutes with one decimal, e.g. 3459.6 minutes north renders as
// "57°39.6N". pos and neg are the hemisphere suffixes; a value equal to
// notAvailable renders as "n/a".
func DMS(v float64, pos, neg string, notAvailable float64) string {
	return DMSPrecision(v, pos, neg, notAvailable, 1)
}

// DMSPrecision is DMS with the number of minute decimals under caller control.
func DMSPrecision(v float64, pos, neg string, notAvailable float64, decimals int) string {
	if v == notAvailable {
		return "n/a"
	}
	suffix := pos
	if v < 0 {
		suffix = neg
		v = -v
	}
	d := math.Floor(v / 60)
	m := v - d*60
	return fmt.Sprintf("%.0f°%.*f%s", d, decimals, m, suffix)
}
