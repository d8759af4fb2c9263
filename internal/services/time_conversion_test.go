package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    float64
	}{
		{"unix epoch", time.Unix(0, 0).UTC(), 2440587.5},
		{"J2000.0", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{"1990 noon", scenarioInstant, 2447893.0},
		{"non-UTC location same instant", scenarioInstant.In(time.FixedZone("PST", -8*3600)), 2447893.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JulianDay(tt.instant))
		})
	}
}

func TestGreenwichSiderealTime(t *testing.T) {
	// At J2000.0 only the constant term survives.
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.InDelta(t, 280.46061837, GreenwichSiderealTime(j2000), 1e-9)

	assert.InDelta(t, 280.87644055718556, GreenwichSiderealTime(scenarioInstant), 1e-6)
}

func TestGreenwichSiderealTimeAdvancesOneSiderealDay(t *testing.T) {
	// One solar day later the sky has turned ~0.9856° further.
	g0 := GreenwichSiderealTime(scenarioInstant)
	g1 := GreenwichSiderealTime(scenarioInstant.Add(24 * time.Hour))

	assert.InDelta(t, 0.98564736629, NormalizeDegrees(g1-g0), 1e-6)
}

func TestLocalSiderealTime(t *testing.T) {
	assert.InDelta(t, 10.0, LocalSiderealTime(350, 20), 1e-12)
	assert.InDelta(t, 350.0, LocalSiderealTime(10, -20), 1e-12)
	assert.InDelta(t, 158.45704055718556, LocalSiderealTime(GreenwichSiderealTime(scenarioInstant), sanFrancisco.lon), 1e-6)
}

func TestSiderealTimeAt(t *testing.T) {
	st := SiderealTimeAt(scenarioInstant, sanFrancisco.lon)

	require.Equal(t, GreenwichSiderealTime(scenarioInstant), st.GMST)
	require.Equal(t, LocalSiderealTime(st.GMST, sanFrancisco.lon), st.LST)
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{720, 0},
		{-30, 330},
		{-390, 330},
		{1e6, 280},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeDegrees(tt.in), 1e-9, "NormalizeDegrees(%v)", tt.in)
	}

	// A tiny negative remainder must not produce 360.
	got := NormalizeDegrees(-1e-15)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, 360.0)
}
