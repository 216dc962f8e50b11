// Package astro combines the zodiac and numerology engines into the
// profile every insight is generated from.
package astro

import (
	"github.com/louisbranch/astrokit/internal/calendar"
	"github.com/louisbranch/astrokit/internal/numerology"
	"github.com/louisbranch/astrokit/internal/zodiac"
)

// Profile is the derived astrology and numerology snapshot for a birth
// date in a given year.
type Profile struct {
	Zodiac       zodiac.Sign `json:"zodiac"`
	LifePath     int         `json:"lifePath"`
	PersonalYear int         `json:"personalYear"`
}

// ComputeProfile validates birth and derives its sign, life path and
// personal year for currentYear.
func ComputeProfile(birth calendar.Date, currentYear int) (Profile, error) {
	if err := birth.Validate(); err != nil {
		return Profile{}, err
	}
	return Derive(birth, currentYear), nil
}

// Derive is ComputeProfile without validation. Out-of-range dates still
// produce a profile.
func Derive(birth calendar.Date, currentYear int) Profile {
	return Profile{
		Zodiac:       zodiac.SignFor(birth.Month, birth.Day),
		LifePath:     numerology.LifePath(birth.Year, birth.Month, birth.Day),
		PersonalYear: numerology.PersonalYear(birth.Month, birth.Day, currentYear),
	}
}
