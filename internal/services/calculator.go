package services

import (
	"fmt"
	"house-engine/internal/domain"
	"time"
)

// Calculator runs the time -> sidereal -> angles -> houses pipeline.
// It is stateless; the zero value is ready to use and safe for concurrent use.
type Calculator struct{}

// CalculateHouses implements ports.HouseCalculator.
func (Calculator) CalculateHouses(
	instant time.Time,
	at domain.GeographicCoordinate,
	requested domain.HouseSystemKind,
) (domain.HouseResult, error) {
	if err := at.Validate(); err != nil {
		return domain.HouseResult{}, fmt.Errorf("calculate houses: %w", err)
	}

	sidereal := SiderealTimeAt(instant, at.Lon)
	mc := Midheaven(sidereal.LST)

	asc, err := Ascendant(sidereal.LST, at.Lat)
	if err != nil {
		return domain.HouseResult{}, fmt.Errorf("calculate houses at %s: %w", at, err)
	}

	cusps, used := HouseCuspsFor(asc, mc, at.Lat, requested)

	res := domain.HouseResult{
		Requested: requested,
		System:    used,
		JulianDay: JulianDay(instant),
		Sidereal:  sidereal,
		Angles:    domain.ChartAngles{Ascendant: asc, Midheaven: mc},
		Cusps:     cusps,
	}
	if err := res.CheckFinite(); err != nil {
		return domain.HouseResult{}, fmt.Errorf("calculate houses at %s: %w", at, err)
	}

	return res, nil
}
