package domain

import (
	"fmt"
	"maps"

	"github.com/mitchellh/mapstructure"
)

// Record keys owned by the chart. Every other key is opaque payload.
const (
	KeyAngles               = "angles"
	KeyHouses               = "houses"
	KeyHouseSystem          = "house_system"
	KeyRelocationApplied    = "relocation_applied"
	KeyRelocationCity       = "relocation_city"
	KeyRelocationDisclosure = "relocation_disclosure"
	KeyRelocationMode       = "relocation_mode"
	KeyRelocationCoordinate = "relocation_coordinate"
	KeyRelocatedHouseSystem = "relocated_house_system"
	KeyRelocatedHouses      = "relocated_houses"
	KeyRelocatedAngles      = "relocated_angles"
)

// Chart is an immutable chart record: typed natal angles and houses plus an
// opaque payload (planets and anything else the caller carries) that is passed
// through untouched. Relocation produces a new Chart via WithRelocation; the
// natal fields of the receiver stay bit-identical.
type Chart struct {
	angles      ChartAngles
	houses      HouseCusps
	houseSystem HouseSystemKind
	extra       map[string]any
	relocation  *RelocatedChartPatch
}

// NewChart builds a chart from natal values. extra is copied.
func NewChart(angles ChartAngles, houses HouseCusps, system HouseSystemKind, extra map[string]any) Chart {
	return Chart{
		angles:      angles,
		houses:      houses,
		houseSystem: system,
		extra:       maps.Clone(extra),
	}
}

func (c Chart) Angles() ChartAngles          { return c.angles }
func (c Chart) Houses() HouseCusps           { return c.houses }
func (c Chart) HouseSystem() HouseSystemKind { return c.houseSystem }

// Extra looks up an opaque payload field. Nested values are shared with every
// chart derived from the same record and must not be mutated.
func (c Chart) Extra(key string) (any, bool) {
	v, ok := c.extra[key]
	return v, ok
}

// Relocation returns the applied relocation patch, if any.
func (c Chart) Relocation() (RelocatedChartPatch, bool) {
	if c.relocation == nil {
		return RelocatedChartPatch{}, false
	}
	return *c.relocation, true
}

// WithRelocation returns a copy of c carrying patch. c itself is not modified.
// The opaque payload is shared between both values; callers must treat
// values returned by Extra and Record as read-only.
func (c Chart) WithRelocation(patch RelocatedChartPatch) Chart {
	out := c
	p := patch
	out.relocation = &p
	return out
}

// Record renders the chart as a loosely typed record: the opaque payload,
// the natal fields and, when relocated, the relocation fields. The returned
// map is freshly allocated on every call.
func (c Chart) Record() map[string]any {
	rec := make(map[string]any, len(c.extra)+10)
	for k, v := range c.extra {
		rec[k] = v
	}

	rec[KeyAngles] = anglesRecord(c.angles)
	rec[KeyHouses] = cuspsRecord(c.houses)
	if c.houseSystem != "" {
		rec[KeyHouseSystem] = string(c.houseSystem)
	}

	if c.relocation != nil {
		p := c.relocation
		rec[KeyRelocationApplied] = p.Applied
		rec[KeyRelocationCity] = p.City
		rec[KeyRelocationDisclosure] = p.Disclosure
		rec[KeyRelocationMode] = string(p.Mode)
		rec[KeyRelocationCoordinate] = map[string]any{"lat": p.Coordinate.Lat, "lon": p.Coordinate.Lon}
		rec[KeyRelocatedHouseSystem] = string(p.HouseSystem)
		rec[KeyRelocatedHouses] = cuspsRecord(p.Houses)
		rec[KeyRelocatedAngles] = anglesRecord(p.Angles)
	}

	return rec
}

type natalAngles struct {
	Ascendant *float64 `mapstructure:"ascendant"`
	Midheaven *float64 `mapstructure:"midheaven"`
}

type natalFields struct {
	Angles      *natalAngles `mapstructure:"angles"`
	Houses      []float64    `mapstructure:"houses"`
	HouseSystem string       `mapstructure:"house_system"`
}

// ChartFromRecord decodes the natal angle/house fields of a loosely typed
// record (as read from JSON or YAML). Remaining fields become opaque payload.
func ChartFromRecord(rec map[string]any) (Chart, error) {
	if rec == nil {
		return Chart{}, fmt.Errorf("chart from record: record is nil: %w", ErrInvalidChart)
	}

	var natal natalFields
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &natal,
	})
	if err != nil {
		return Chart{}, fmt.Errorf("chart from record: build decoder: %w", err)
	}

	natalOnly := map[string]any{}
	for _, k := range []string{KeyAngles, KeyHouses, KeyHouseSystem} {
		if v, ok := rec[k]; ok {
			natalOnly[k] = v
		}
	}
	if err := dec.Decode(natalOnly); err != nil {
		return Chart{}, fmt.Errorf("chart from record: decode natal fields: %v: %w", err, ErrInvalidChart)
	}

	if natal.Angles == nil {
		return Chart{}, fmt.Errorf("chart from record: missing %q: %w", KeyAngles, ErrInvalidChart)
	}
	if natal.Angles.Ascendant == nil || natal.Angles.Midheaven == nil {
		return Chart{}, fmt.Errorf("chart from record: %q needs both ascendant and midheaven: %w", KeyAngles, ErrInvalidChart)
	}

	if len(natal.Houses) != 12 {
		return Chart{}, fmt.Errorf("chart from record: %q has %d cusps, want 12: %w", KeyHouses, len(natal.Houses), ErrInvalidChart)
	}

	var houses HouseCusps
	copy(houses[:], natal.Houses)

	extra := make(map[string]any, len(rec))
	for k, v := range rec {
		if _, owned := natalOnly[k]; owned {
			continue
		}
		extra[k] = v
	}

	return Chart{
		angles:      ChartAngles{Ascendant: *natal.Angles.Ascendant, Midheaven: *natal.Angles.Midheaven},
		houses:      houses,
		houseSystem: HouseSystemKind(natal.HouseSystem),
		extra:       extra,
	}, nil
}

func anglesRecord(a ChartAngles) map[string]any {
	return map[string]any{"ascendant": a.Ascendant, "midheaven": a.Midheaven}
}

func cuspsRecord(h HouseCusps) []float64 {
	out := make([]float64, len(h))
	copy(out, h[:])
	return out
}
