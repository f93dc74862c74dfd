package format

import (
	"fmt"
	"math"
)

// Duration converts seconds to "M:SS" or "H:MM:SS" display format. Fractions
// of a second are kept to one decimal.
func Duration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "0:00"
	}
	s := int(seconds)
	frac := seconds - float64(s)
	h := s / 3600
	m := (s % 3600) / 60
	sec := s % 60

	secs := fmt.Sprintf("%02d", sec)
	if frac >= 0.05 {
		secs = fmt.Sprintf("%04.1f", float64(sec)+frac)
	}
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%s", h, m, secs)
	}
	return fmt.Sprintf("%d:%s", m, secs)
}
