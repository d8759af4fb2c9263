package dto

import "house-engine/internal/domain"

type CuspResponse struct {
	House      int     `json:"house"`
	Degree     float64 `json:"degree"`
	Sign       string  `json:"sign"`
	SignDegree float64 `json:"sign_degree"`
}

// PointResponse places an externally computed longitude in a house.
type PointResponse struct {
	Longitude float64 `json:"longitude"`
	House     int     `json:"house"`
	Sign      string  `json:"sign"`
}

type HouseResultResponse struct {
	RequestedSystem string          `json:"requested_system"`
	HouseSystem     string          `json:"house_system"`
	WideAngle       bool            `json:"wide_angle"`
	JulianDay       float64         `json:"julian_day"`
	GMST            float64         `json:"gmst"`
	LST             float64         `json:"lst"`
	Ascendant       float64         `json:"ascendant"`
	Midheaven       float64         `json:"midheaven"`
	Houses          []CuspResponse  `json:"houses"`
	Points          []PointResponse `json:"points,omitempty"`
}

type ModeResponse struct {
	Input      string `json:"input"`
	Mode       string `json:"mode"`
	Active     bool   `json:"active"`
	Disclosure string `json:"disclosure"`
}

// NewHouseResultResponse flattens a HouseResult. WideAngle flags a polar
// fallback so the caller can disclose reduced precision.
func NewHouseResultResponse(r domain.HouseResult) HouseResultResponse {
	res := HouseResultResponse{
		RequestedSystem: string(r.Requested),
		HouseSystem:     string(r.System),
		WideAngle:       r.Downgraded(),
		JulianDay:       r.JulianDay,
		GMST:            r.Sidereal.GMST,
		LST:             r.Sidereal.LST,
		Ascendant:       r.Angles.Ascendant,
		Midheaven:       r.Angles.Midheaven,
		Houses:          make([]CuspResponse, 0, len(r.Cusps)),
	}

	for i, c := range r.Cusps {
		sign, within := domain.SignOf(c)
		res.Houses = append(res.Houses, CuspResponse{
			House:      i + 1,
			Degree:     c,
			Sign:       sign.String(),
			SignDegree: within,
		})
	}

	return res
}
