package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates in signed decimal degrees.
// Longitude is east-positive.
type GeographicCoordinate struct {
	Lat float64 `json:"lat" mapstructure:"lat"`
	Lon float64 `json:"lon" mapstructure:"lon"`
}

// Validate rejects non-finite or off-globe coordinates.
func (c GeographicCoordinate) Validate() error {
	if !isFinite(c.Lat) || !isFinite(c.Lon) {
		return fmt.Errorf("validate coordinate: non-finite lat=%v lon=%v: %w", c.Lat, c.Lon, ErrInvalidCoordinate)
	}

	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("validate coordinate: latitude %v outside [-90, 90]: %w", c.Lat, ErrInvalidCoordinate)
	}

	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("validate coordinate: longitude %v outside [-180, 180]: %w", c.Lon, ErrInvalidCoordinate)
	}

	return nil
}

func (c GeographicCoordinate) String() string {
	return fmt.Sprintf("lat=%.4f lon=%.4f", c.Lat, c.Lon)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
