package services

import (
	"house-engine/internal/domain"
	"math"
)

// PolarLatitudeLimit is the largest absolute latitude at which the quadrant
// division is used. Beyond it houses fall back to whole sign.
const PolarLatitudeLimit = 66.0

// ResolveHouseSystem returns the system that will actually be used for a
// request at the given latitude.
func ResolveHouseSystem(requested domain.HouseSystemKind, latitude float64) domain.HouseSystemKind {
	if requested == domain.HousePlacidus && math.Abs(latitude) <= PolarLatitudeLimit {
		return domain.HousePlacidus
	}
	return domain.HouseWholeSign
}

// HouseCuspsFor divides the ecliptic into twelve houses and reports the
// system actually used.
//
// Placidus requests are served by quadrant trisection: each quadrant between
// the angles is split into three equal arcs. At |latitude| > 66° the request
// silently falls back to whole sign; callers must surface the returned kind.
func HouseCuspsFor(
	asc float64,
	mc float64,
	latitude float64,
	requested domain.HouseSystemKind,
) (domain.HouseCusps, domain.HouseSystemKind) {
	used := ResolveHouseSystem(requested, latitude)
	if used == domain.HousePlacidus {
		return quadrantTrisection(asc, mc), used
	}
	return wholeSignCusps(asc), used
}

func quadrantTrisection(asc, mc float64) domain.HouseCusps {
	var h domain.HouseCusps
	set := func(n int, v float64) { h[n-1] = NormalizeDegrees(v) }

	set(1, asc)
	set(10, mc)
	set(4, mc+180)
	set(7, asc+180)

	// Forward arcs MC->Asc and Asc->IC.
	q4 := NormalizeDegrees(h.Cusp(1) - h.Cusp(10))
	q1 := NormalizeDegrees(h.Cusp(4) - h.Cusp(1))

	set(11, h.Cusp(10)+q4/3)
	set(12, h.Cusp(10)+2*q4/3)
	set(2, h.Cusp(1)+q1/3)
	set(3, h.Cusp(1)+2*q1/3)

	set(5, h.Cusp(11)+180)
	set(6, h.Cusp(12)+180)
	set(8, h.Cusp(2)+180)
	set(9, h.Cusp(3)+180)

	return h
}

func wholeSignCusps(asc float64) domain.HouseCusps {
	var h domain.HouseCusps
	start := math.Floor(asc/30) * 30
	for n := 1; n <= 12; n++ {
		h[n-1] = NormalizeDegrees(start + float64(n-1)*30)
	}
	return h
}

// HouseOf returns the house (1..12) containing an ecliptic longitude.
// Each house spans the forward arc from its cusp (inclusive) to the next
// cusp (exclusive). It returns 0 only for degenerate cusps.
func HouseOf(longitude float64, cusps domain.HouseCusps) int {
	lon := NormalizeDegrees(longitude)
	for i := range cusps {
		start := cusps[i]
		span := NormalizeDegrees(cusps[(i+1)%len(cusps)] - start)
		if NormalizeDegrees(lon-start) < span {
			return i + 1
		}
	}
	return 0
}
