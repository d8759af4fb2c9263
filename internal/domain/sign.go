package domain

import "math"

type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return "Unknown"
	}
	return signNames[s]
}

// SignOf returns the zodiac sign containing an ecliptic longitude and the
// degree within that sign.
func SignOf(longitude float64) (Sign, float64) {
	d := math.Mod(longitude, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}

	idx := int(d / 30)

	return Sign(idx), d - float64(idx)*30
}
