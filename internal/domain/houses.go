package domain

import "fmt"

// HouseSystemKind names a house-division method.
type HouseSystemKind string

const (
	// HousePlacidus keeps the historical "placidus" label, but cusps are produced by
	// quadrant trisection (a Porphyry-style division), not iterative Placidus.
	HousePlacidus HouseSystemKind = "placidus"
	// HouseWholeSign assigns one 30° sign per house starting at the Ascendant's sign.
	HouseWholeSign HouseSystemKind = "whole_sign"
)

func (k HouseSystemKind) Valid() bool {
	return k == HousePlacidus || k == HouseWholeSign
}

// Ascendant and Midheaven, ecliptic degrees in [0, 360).
type ChartAngles struct {
	Ascendant float64 `json:"ascendant" mapstructure:"ascendant"`
	Midheaven float64 `json:"midheaven" mapstructure:"midheaven"`
}

// Twelve house cusps in ecliptic degrees. Index 0 holds house 1.
// Being an array, HouseCusps is copied on assignment.
type HouseCusps [12]float64

// Cusp returns the cusp of house n (1..12).
func (h HouseCusps) Cusp(n int) float64 {
	if n < 1 || n > 12 {
		panic(fmt.Sprintf("house cusp %d out of range 1..12", n))
	}
	return h[n-1]
}

// Greenwich and local sidereal time in degrees.
type SiderealTime struct {
	GMST float64
	LST  float64
}

// HouseResult is the output of one angle/house computation.
// System is the kind actually used; it differs from Requested when
// Placidus was downgraded at a polar latitude.
type HouseResult struct {
	Requested HouseSystemKind
	System    HouseSystemKind
	JulianDay float64
	Sidereal  SiderealTime
	Angles    ChartAngles
	Cusps     HouseCusps
}

// Downgraded reports whether a different system than requested was used.
func (r HouseResult) Downgraded() bool {
	return r.System != r.Requested
}

// CheckFinite rejects results carrying NaN or infinite values.
func (r HouseResult) CheckFinite() error {
	values := map[string]float64{
		"julian_day": r.JulianDay,
		"gmst":       r.Sidereal.GMST,
		"lst":        r.Sidereal.LST,
		"ascendant":  r.Angles.Ascendant,
		"midheaven":  r.Angles.Midheaven,
	}
	for name, v := range values {
		if !isFinite(v) {
			return fmt.Errorf("check result: %s=%v: %w", name, v, ErrNonFiniteResult)
		}
	}

	for i, c := range r.Cusps {
		if !isFinite(c) {
			return fmt.Errorf("check result: house %d cusp=%v: %w", i+1, c, ErrNonFiniteResult)
		}
	}

	return nil
}
