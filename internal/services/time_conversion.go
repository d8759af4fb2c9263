package services

import (
	"house-engine/internal/domain"
	"math"
	"time"
)

const (
	unixEpochJulianDay   = 2440587.5
	j2000JulianDay       = 2451545.0
	millisPerDay         = 86_400_000
	daysPerJulianCentury = 36525
)

// JulianDay converts an instant to a continuous Julian Day count.
//
// The instant is taken as UTC wall-clock time with no leap-second correction,
// so accuracy is an approximation for dates far from the present era.
func JulianDay(instant time.Time) float64 {
	return float64(instant.UnixMilli())/millisPerDay + unixEpochJulianDay
}

// GreenwichSiderealTime returns GMST in degrees [0, 360) using the standard
// polynomial in Julian centuries since J2000.0.
func GreenwichSiderealTime(instant time.Time) float64 {
	d := JulianDay(instant) - j2000JulianDay
	t := d / daysPerJulianCentury

	gmst := 280.46061837 +
		360.98564736629*d +
		0.000387933*t*t -
		t*t*t/38710000

	return NormalizeDegrees(gmst)
}

// LocalSiderealTime offsets GMST by an east-positive longitude.
func LocalSiderealTime(gmst, longitude float64) float64 {
	return NormalizeDegrees(gmst + longitude)
}

func SiderealTimeAt(instant time.Time, longitude float64) domain.SiderealTime {
	gmst := GreenwichSiderealTime(instant)
	return domain.SiderealTime{
		GMST: gmst,
		LST:  LocalSiderealTime(gmst, longitude),
	}
}

// NormalizeDegrees maps any finite angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	// A tiny negative remainder rounds up to exactly 360.
	if r >= 360 {
		r = 0
	}
	return r
}
