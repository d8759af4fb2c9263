package domain

// RelocationMode selects whose location (if any) houses and angles are recalculated for.
type RelocationMode string

const (
	RelocationBirthplace             RelocationMode = "birthplace"
	RelocationPersonALocal           RelocationMode = "person_a_local"
	RelocationPersonBLocal           RelocationMode = "person_b_local"
	RelocationBothLocal              RelocationMode = "both_local"
	RelocationEvent                  RelocationMode = "event"
	RelocationMidpointAdvancedHidden RelocationMode = "midpoint_advanced_hidden"
)

// RelocationModes lists every canonical mode, Birthplace first.
func RelocationModes() []RelocationMode {
	return []RelocationMode{
		RelocationBirthplace,
		RelocationPersonALocal,
		RelocationPersonBLocal,
		RelocationBothLocal,
		RelocationEvent,
		RelocationMidpointAdvancedHidden,
	}
}

func (m RelocationMode) Valid() bool {
	switch m {
	case RelocationBirthplace,
		RelocationPersonALocal,
		RelocationPersonBLocal,
		RelocationBothLocal,
		RelocationEvent,
		RelocationMidpointAdvancedHidden:
		return true
	}
	return false
}

// RelocatedChartPatch carries the relocated houses and angles that are merged
// additively into a chart record. The natal fields of the record are never touched.
type RelocatedChartPatch struct {
	Applied     bool
	City        string
	Disclosure  string
	Mode        RelocationMode
	Coordinate  GeographicCoordinate
	HouseSystem HouseSystemKind
	Houses      HouseCusps
	Angles      ChartAngles
}
