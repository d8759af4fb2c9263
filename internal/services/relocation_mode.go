package services

import (
	"fmt"
	"house-engine/internal/domain"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

var modeAliases = map[string]domain.RelocationMode{
	// Birthplace
	"birthplace":      domain.RelocationBirthplace,
	"birth_place":     domain.RelocationBirthplace,
	"birth":           domain.RelocationBirthplace,
	"none":            domain.RelocationBirthplace,
	"natal":           domain.RelocationBirthplace,
	"off":             domain.RelocationBirthplace,
	"default":         domain.RelocationBirthplace,
	"birthplace_mode": domain.RelocationBirthplace,

	// Person A
	"person_a_local": domain.RelocationPersonALocal,
	"a_local":        domain.RelocationPersonALocal,
	"a_local_lens":   domain.RelocationPersonALocal,
	"alocal":         domain.RelocationPersonALocal,
	"a_local_mode":   domain.RelocationPersonALocal,

	// Person B
	"person_b_local": domain.RelocationPersonBLocal,
	"b_local":        domain.RelocationPersonBLocal,
	"b_local_lens":   domain.RelocationPersonBLocal,
	"blocal":         domain.RelocationPersonBLocal,
	"b_local_mode":   domain.RelocationPersonBLocal,

	// Both
	"both_local":      domain.RelocationBothLocal,
	"both":            domain.RelocationBothLocal,
	"shared":          domain.RelocationBothLocal,
	"shared_local":    domain.RelocationBothLocal,
	"dual_local":      domain.RelocationBothLocal,
	"same_city":       domain.RelocationBothLocal,
	"both_local_mode": domain.RelocationBothLocal,

	// Event
	"event":       domain.RelocationEvent,
	"custom":      domain.RelocationEvent,
	"event_city":  domain.RelocationEvent,
	"event_local": domain.RelocationEvent,
	"custom_city": domain.RelocationEvent,

	// Midpoint
	"midpoint_advanced_hidden": domain.RelocationMidpointAdvancedHidden,
	"midpoint":                 domain.RelocationMidpointAdvancedHidden,
	"midpoint_advanced":        domain.RelocationMidpointAdvancedHidden,
	"composite_midpoint":       domain.RelocationMidpointAdvancedHidden,
}

type modeRule struct {
	contains []string
	mode     domain.RelocationMode
}

// Evaluated top to bottom; first match wins.
var modeRules = []modeRule{
	{contains: []string{"midpoint"}, mode: domain.RelocationMidpointAdvancedHidden},
	{contains: []string{"both", "shared"}, mode: domain.RelocationBothLocal},
	{contains: []string{"b_local"}, mode: domain.RelocationPersonBLocal},
	{contains: []string{"a_local"}, mode: domain.RelocationPersonALocal},
	{contains: []string{"event"}, mode: domain.RelocationEvent},
}

// normalizeToken lowercases, trims and collapses every run of
// non-alphanumerics into a single underscore.
func normalizeToken(raw any) string {
	s, err := cast.ToStringE(raw)
	if err != nil {
		return ""
	}

	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlphanumeric.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// NormalizeRelocationMode maps a loosely formatted token (UI widget values,
// older persisted records) onto a canonical mode. Unknown or absent tokens
// resolve to fallback, which itself defaults to Birthplace when invalid.
func NormalizeRelocationMode(raw any, fallback domain.RelocationMode) domain.RelocationMode {
	if !fallback.Valid() {
		fallback = domain.RelocationBirthplace
	}

	token := normalizeToken(raw)
	if token == "" {
		return fallback
	}

	if mode, ok := modeAliases[token]; ok {
		return mode
	}

	for _, rule := range modeRules {
		for _, sub := range rule.contains {
			if strings.Contains(token, sub) {
				return rule.mode
			}
		}
	}

	return fallback
}

// RelocationActive reports whether a mode recomputes houses away from the birthplace.
func RelocationActive(mode domain.RelocationMode) bool {
	return mode != domain.RelocationBirthplace
}

type disclosureTemplate struct {
	format      string
	placeholder string
}

var disclosures = map[domain.RelocationMode]disclosureTemplate{
	domain.RelocationBirthplace: {
		format:      "Natal houses and angles shown for %s.",
		placeholder: "the birthplace",
	},
	domain.RelocationPersonALocal: {
		format:      "Relocated for Person A: houses and angles recalculated for %s. Planetary positions are unchanged.",
		placeholder: "Person A's city",
	},
	domain.RelocationPersonBLocal: {
		format:      "Relocated for Person B: houses and angles recalculated for %s. Planetary positions are unchanged.",
		placeholder: "Person B's city",
	},
	domain.RelocationBothLocal: {
		format:      "Relocated for both people: houses and angles recalculated for %s. Planetary positions are unchanged.",
		placeholder: "Shared city for A & B",
	},
	domain.RelocationEvent: {
		format:      "Relocated to the event location: houses and angles recalculated for %s. Planetary positions are unchanged.",
		placeholder: "Event city",
	},
	domain.RelocationMidpointAdvancedHidden: {
		format:      "Advanced midpoint lens: houses and angles recalculated for %s. Planetary positions are unchanged.",
		placeholder: "Selected city",
	},
}

// RelocationDisclosure renders the user-facing notice for a mode. A blank
// label is replaced by the mode's generic placeholder.
func RelocationDisclosure(mode domain.RelocationMode, label string) string {
	tmpl, ok := disclosures[mode]
	if !ok {
		tmpl = disclosures[domain.RelocationBirthplace]
	}

	city := strings.TrimSpace(label)
	if city == "" {
		city = tmpl.placeholder
	}

	return fmt.Sprintf(tmpl.format, city)
}

var houseSystemAliases = map[string]domain.HouseSystemKind{
	"placidus":   domain.HousePlacidus,
	"p":          domain.HousePlacidus,
	"whole_sign": domain.HouseWholeSign,
	"wholesign":  domain.HouseWholeSign,
	"whole":      domain.HouseWholeSign,
	"ws":         domain.HouseWholeSign,
	"w":          domain.HouseWholeSign,
}

// ParseHouseSystem applies the same tolerant token handling to house system
// names. Unknown tokens resolve to fallback (Placidus when fallback is invalid).
func ParseHouseSystem(raw any, fallback domain.HouseSystemKind) domain.HouseSystemKind {
	if !fallback.Valid() {
		fallback = domain.HousePlacidus
	}

	if kind, ok := houseSystemAliases[normalizeToken(raw)]; ok {
		return kind
	}
	return fallback
}
