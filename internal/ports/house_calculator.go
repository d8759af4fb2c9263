package ports

import (
	"house-engine/internal/domain"
	"time"
)

// Contract for computing angles and house cusps for an instant and location.
type HouseCalculator interface {
	// Return angles, cusps and the house system actually used.
	CalculateHouses(instant time.Time, at domain.GeographicCoordinate, system domain.HouseSystemKind) (domain.HouseResult, error)
}
