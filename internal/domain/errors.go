package domain

import "errors"

// ErrInvalidCoordinate is returned when a latitude or longitude is non-finite or off the globe.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ErrPolarLatitude is returned when a latitude is at or too close to a pole for the Ascendant formula.
var ErrPolarLatitude = errors.New("latitude too close to a pole")

// ErrNonFiniteResult is returned when a computed angle or cusp is NaN or infinite.
var ErrNonFiniteResult = errors.New("non-finite result")

// ErrInvalidChart is returned when a chart record lacks usable natal angles or houses.
var ErrInvalidChart = errors.New("invalid chart record")
