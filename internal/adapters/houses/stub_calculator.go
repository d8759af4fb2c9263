package houses

import (
	"house-engine/internal/domain"
	"sync/atomic"
	"time"
)

// StubCalculator is a HouseCalculator returning canned results.
// It stands in for the real pipeline when exercising failure paths.
type StubCalculator struct {
	Result    domain.HouseResult
	Err       error
	PanicWith any

	calls atomic.Int64
}

func NewStubCalculator(result domain.HouseResult, err error) *StubCalculator {
	return &StubCalculator{Result: result, Err: err}
}

func (s *StubCalculator) CalculateHouses(
	instant time.Time,
	at domain.GeographicCoordinate,
	system domain.HouseSystemKind,
) (domain.HouseResult, error) {
	s.calls.Add(1)

	if s.PanicWith != nil {
		panic(s.PanicWith)
	}

	if s.Err != nil {
		return domain.HouseResult{}, s.Err
	}

	return s.Result, nil
}

// Calls reports how many times CalculateHouses ran.
func (s *StubCalculator) Calls() int64 {
	return s.calls.Load()
}
