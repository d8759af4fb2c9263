package services

import (
	"fmt"
	"house-engine/internal/domain"
	"math"
)

// MeanObliquity is the J2000 mean obliquity of the ecliptic in degrees.
// No precession or nutation term is applied.
const MeanObliquity = 23.4392911

// Latitudes within this many degrees of a pole are rejected by Ascendant,
// where tan(latitude) diverges.
const poleTolerance = 1e-6

const degToRad = math.Pi / 180

// Midheaven returns the ecliptic degree on the upper meridian for a local
// sidereal time (RAMC) in degrees.
func Midheaven(lst float64) float64 {
	ramc := lst * degToRad
	eps := MeanObliquity * degToRad

	mc := math.Atan2(math.Sin(ramc), math.Cos(ramc)*math.Cos(eps))
	return NormalizeDegrees(mc / degToRad)
}

// Ascendant returns the ecliptic degree rising on the eastern horizon.
// atan2 keeps the result in the correct quadrant.
func Ascendant(lst, latitude float64) (float64, error) {
	if math.IsNaN(latitude) || math.Abs(latitude) >= 90-poleTolerance {
		return 0, fmt.Errorf("ascendant: latitude %v: %w", latitude, domain.ErrPolarLatitude)
	}

	ramc := lst * degToRad
	eps := MeanObliquity * degToRad
	phi := latitude * degToRad

	asc := math.Atan2(
		math.Cos(ramc),
		-math.Sin(ramc)*math.Cos(eps)-math.Tan(phi)*math.Sin(eps),
	)

	deg := NormalizeDegrees(asc / degToRad)
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0, fmt.Errorf("ascendant: lst=%v latitude=%v: %w", lst, latitude, domain.ErrNonFiniteResult)
	}

	return deg, nil
}
