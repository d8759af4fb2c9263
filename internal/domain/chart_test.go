package domain

import (
	"errors"
	"testing"
)

func sampleChart() Chart {
	return NewChart(
		ChartAngles{Ascendant: 235.25, Midheaven: 156.72},
		HouseCusps{235.25, 269, 302, 336.72, 2.9, 29, 55.25, 89, 122, 156.72, 182.9, 209},
		HousePlacidus,
		map[string]any{"planets": map[string]any{"sun": 280.6}},
	)
}

func TestChartWithRelocationLeavesReceiverUntouched(t *testing.T) {
	natal := sampleChart()
	angles, houses := natal.Angles(), natal.Houses()

	patch := RelocatedChartPatch{
		Applied: true,
		City:    "London",
		Houses:  HouseCusps{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		Angles:  ChartAngles{Ascendant: 1, Midheaven: 10},
	}
	relocated := natal.WithRelocation(patch)

	// Mutating the caller's patch afterwards must not leak into the chart.
	patch.City = "Paris"
	patch.Houses[0] = 99

	if _, ok := natal.Relocation(); ok {
		t.Fatal("natal chart gained a relocation")
	}

	got, ok := relocated.Relocation()
	if !ok {
		t.Fatal("relocated chart has no relocation")
	}
	if got.City != "London" || got.Houses[0] != 1 {
		t.Errorf("relocation patch = %+v, want city London and first cusp 1", got)
	}

	if relocated.Angles() != angles || natal.Angles() != angles {
		t.Errorf("angles changed: natal=%+v relocated=%+v want %+v", natal.Angles(), relocated.Angles(), angles)
	}
	if relocated.Houses() != houses || natal.Houses() != houses {
		t.Errorf("houses changed: natal=%v relocated=%v want %v", natal.Houses(), relocated.Houses(), houses)
	}
}

func TestChartHousesReturnsCopy(t *testing.T) {
	natal := sampleChart()

	h := natal.Houses()
	h[0] = 0

	if natal.Houses()[0] != 235.25 {
		t.Fatalf("Houses() exposed internal state: first cusp = %v", natal.Houses()[0])
	}
}

func TestChartRecordIsFreshMap(t *testing.T) {
	natal := sampleChart()

	rec := natal.Record()
	rec["planets"] = "replaced"
	delete(rec, KeyAngles)

	again := natal.Record()
	if _, ok := again["planets"].(map[string]any); !ok {
		t.Errorf("planets = %#v, want the original payload map", again["planets"])
	}
	if _, ok := again[KeyAngles]; !ok {
		t.Error("angles missing after mutating an earlier record")
	}
}

func TestNewChartCopiesExtra(t *testing.T) {
	extra := map[string]any{"name": "A"}
	c := NewChart(ChartAngles{}, HouseCusps{}, HouseWholeSign, extra)

	extra["name"] = "B"
	extra["added"] = true

	if v, _ := c.Extra("name"); v != "A" {
		t.Errorf("Extra(name) = %v, want A", v)
	}
	if _, ok := c.Extra("added"); ok {
		t.Error("Extra(added) present, want absent")
	}
}

func TestChartRecord(t *testing.T) {
	rec := sampleChart().WithRelocation(RelocatedChartPatch{
		Applied:     true,
		City:        "London",
		Disclosure:  "moved",
		Mode:        RelocationPersonALocal,
		Coordinate:  GeographicCoordinate{Lat: 51.5, Lon: -0.12},
		HouseSystem: HousePlacidus,
	}).Record()

	if rec[KeyRelocationApplied] != true {
		t.Errorf("%s = %v, want true", KeyRelocationApplied, rec[KeyRelocationApplied])
	}
	if rec[KeyRelocationMode] != "person_a_local" {
		t.Errorf("%s = %v, want person_a_local", KeyRelocationMode, rec[KeyRelocationMode])
	}
	if rec[KeyHouseSystem] != "placidus" {
		t.Errorf("%s = %v, want placidus", KeyHouseSystem, rec[KeyHouseSystem])
	}
	if _, ok := rec["planets"]; !ok {
		t.Error("opaque planets field missing from record")
	}
	if houses, ok := rec[KeyHouses].([]float64); !ok || len(houses) != 12 {
		t.Errorf("%s = %#v, want 12 cusps", KeyHouses, rec[KeyHouses])
	}

	plain := sampleChart().Record()
	if _, ok := plain[KeyRelocationApplied]; ok {
		t.Error("unrelocated record carries relocation fields")
	}
}

func TestChartFromRecord(t *testing.T) {
	rec := map[string]any{
		"angles":       map[string]any{"ascendant": 213, "midheaven": "279.5"},
		"houses":       []any{210, 240, 270, 300, 330, 0, 30, 60, 90, 120, 150, 180},
		"house_system": "whole_sign",
		"planets":      map[string]any{"sun": 280.6},
		"owner":        "someone",
	}

	c, err := ChartFromRecord(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Angles() != (ChartAngles{Ascendant: 213, Midheaven: 279.5}) {
		t.Errorf("angles = %+v", c.Angles())
	}
	if c.Houses().Cusp(6) != 0 || c.Houses().Cusp(12) != 180 {
		t.Errorf("houses = %v", c.Houses())
	}
	if c.HouseSystem() != HouseWholeSign {
		t.Errorf("house system = %q, want whole_sign", c.HouseSystem())
	}
	if v, ok := c.Extra("owner"); !ok || v != "someone" {
		t.Errorf("Extra(owner) = %v, %v", v, ok)
	}
	if _, ok := c.Extra("angles"); ok {
		t.Error("natal angles leaked into opaque payload")
	}
}

func TestChartFromRecordInvalid(t *testing.T) {
	houses := []any{0, 30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330}

	tests := []struct {
		name string
		rec  map[string]any
	}{
		{"nil record", nil},
		{"missing angles", map[string]any{"houses": houses}},
		{"missing houses", map[string]any{"angles": map[string]any{"ascendant": 1, "midheaven": 2}}},
		{"missing midheaven", map[string]any{"angles": map[string]any{"ascendant": 1}, "houses": houses}},
		{"missing ascendant", map[string]any{"angles": map[string]any{"midheaven": 2}, "houses": houses}},
		{"eleven houses", map[string]any{"angles": map[string]any{"ascendant": 1}, "houses": houses[:11]}},
		{"angles not a map", map[string]any{"angles": "rising", "houses": houses}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ChartFromRecord(tt.rec)
			if !errors.Is(err, ErrInvalidChart) {
				t.Fatalf("err = %v, want ErrInvalidChart", err)
			}
		})
	}
}
