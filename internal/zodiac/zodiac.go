// Package zodiac defines the twelve tropical sun signs and classifies
// birth dates into them.
package zodiac

import (
	"strings"

	apperrors "github.com/louisbranch/astrokit/internal/platform/errors"
)

// Element groups signs into temperament families.
type Element int

const (
	ElementUnspecified Element = iota
	Fire
	Earth
	Air
	Water
)

func (e Element) String() string {
	switch e {
	case Fire:
		return "FIRE"
	case Earth:
		return "EARTH"
	case Air:
		return "AIR"
	case Water:
		return "WATER"
	default:
		return "UNSPECIFIED"
	}
}

// Active reports whether the element is one of the active (Fire, Air) pair.
func (e Element) Active() bool {
	return e == Fire || e == Air
}

// Receptive reports whether the element is one of the receptive (Earth, Water) pair.
func (e Element) Receptive() bool {
	return e == Earth || e == Water
}

// Modality describes a sign's behavioral style.
type Modality int

const (
	ModalityUnspecified Modality = iota
	Cardinal
	Fixed
	Mutable
)

func (m Modality) String() string {
	switch m {
	case Cardinal:
		return "CARDINAL"
	case Fixed:
		return "FIXED"
	case Mutable:
		return "MUTABLE"
	default:
		return "UNSPECIFIED"
	}
}

// Body is a sign's ruling celestial body.
type Body int

const (
	BodyUnspecified Body = iota
	Mars
	Venus
	Mercury
	Moon
	Sun
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

func (b Body) String() string {
	switch b {
	case Mars:
		return "Mars"
	case Venus:
		return "Venus"
	case Mercury:
		return "Mercury"
	case Moon:
		return "Moon"
	case Sun:
		return "Sun"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	case Pluto:
		return "Pluto"
	default:
		return "Unspecified"
	}
}

// Sign is one of the twelve zodiac signs, in Aries..Pisces order.
type Sign int

const (
	SignUnspecified Sign = iota
	Aries
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

// signCount is the size of the zodiac ring.
const signCount = 12

type signInfo struct {
	name        string
	displayName string
	element     Element
	modality    Modality
	ruler       Body
}

var signTable = [...]signInfo{
	SignUnspecified: {name: "UNSPECIFIED", displayName: "Unspecified"},
	Aries:           {name: "ARIES", displayName: "Aries", element: Fire, modality: Cardinal, ruler: Mars},
	Taurus:          {name: "TAURUS", displayName: "Taurus", element: Earth, modality: Fixed, ruler: Venus},
	Gemini:          {name: "GEMINI", displayName: "Gemini", element: Air, modality: Mutable, ruler: Mercury},
	Cancer:          {name: "CANCER", displayName: "Cancer", element: Water, modality: Cardinal, ruler: Moon},
	Leo:             {name: "LEO", displayName: "Leo", element: Fire, modality: Fixed, ruler: Sun},
	Virgo:           {name: "VIRGO", displayName: "Virgo", element: Earth, modality: Mutable, ruler: Mercury},
	Libra:           {name: "LIBRA", displayName: "Libra", element: Air, modality: Cardinal, ruler: Venus},
	Scorpio:         {name: "SCORPIO", displayName: "Scorpio", element: Water, modality: Fixed, ruler: Pluto},
	Sagittarius:     {name: "SAGITTARIUS", displayName: "Sagittarius", element: Fire, modality: Mutable, ruler: Jupiter},
	Capricorn:       {name: "CAPRICORN", displayName: "Capricorn", element: Earth, modality: Cardinal, ruler: Saturn},
	Aquarius:        {name: "AQUARIUS", displayName: "Aquarius", element: Air, modality: Fixed, ruler: Uranus},
	Pisces:          {name: "PISCES", displayName: "Pisces", element: Water, modality: Mutable, ruler: Neptune},
}

func (s Sign) info() signInfo {
	if s < SignUnspecified || int(s) >= len(signTable) {
		return signTable[SignUnspecified]
	}
	return signTable[s]
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// Name returns the upper-case enum name ("LIBRA") used in seeds.
func (s Sign) Name() string { return s.info().name }

// DisplayName returns the human-readable name ("Libra").
func (s Sign) DisplayName() string { return s.info().displayName }

// Element returns the sign's element.
func (s Sign) Element() Element { return s.info().element }

// Modality returns the sign's modality.
func (s Sign) Modality() Modality { return s.info().modality }

// RulingBody returns the sign's ruling body.
func (s Sign) RulingBody() Body { return s.info().ruler }

func (s Sign) String() string { return s.DisplayName() }

// MarshalText renders the sign by display name.
func (s Sign) MarshalText() ([]byte, error) {
	return []byte(s.DisplayName()), nil
}

// UnmarshalText parses a sign by display or enum name.
func (s *Sign) UnmarshalText(text []byte) error {
	parsed, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Signs returns the twelve signs in enumeration order.
func Signs() []Sign {
	out := make([]Sign, 0, signCount)
	for s := Aries; s <= Pisces; s++ {
		out = append(out, s)
	}
	return out
}

// Cycle returns the display names of the twelve signs, Aries..Pisces.
// It is the ring chart houses rotate through.
func Cycle() []string {
	out := make([]string, 0, signCount)
	for _, s := range Signs() {
		out = append(out, s.DisplayName())
	}
	return out
}

// ParseSign resolves a sign from its display or enum name, ignoring case
// and surrounding whitespace.
func ParseSign(name string) (Sign, error) {
	trimmed := strings.TrimSpace(name)
	for _, s := range Signs() {
		if strings.EqualFold(trimmed, s.DisplayName()) {
			return s, nil
		}
	}
	return SignUnspecified, apperrors.WithMetadata(
		apperrors.CodeInvalidSign,
		"unknown zodiac sign "+trimmed,
		map[string]string{"Sign": trimmed},
	)
}

// Opposite returns the sign across the zodiac axis.
func Opposite(s Sign) Sign {
	switch s {
	case Aries:
		return Libra
	case Taurus:
		return Scorpio
	case Gemini:
		return Sagittarius
	case Cancer:
		return Capricorn
	case Leo:
		return Aquarius
	case Virgo:
		return Pisces
	case Libra:
		return Aries
	case Scorpio:
		return Taurus
	case Sagittarius:
		return Gemini
	case Capricorn:
		return Cancer
	case Aquarius:
		return Leo
	case Pisces:
		return Virgo
	default:
		return SignUnspecified
	}
}

// SignFor classifies a birth month and day into its tropical sun sign.
//
// Each month has one cutoff day: days up to and including the cutoff
// belong to the first sign, later days to the next. No range checking is
// done; callers validate dates first. A month outside 1..12 resolves to
// Aries.
func SignFor(month int, day int) Sign {
	switch month {
	case 1:
		return pick(day, 19, Capricorn, Aquarius)
	case 2:
		return pick(day, 18, Aquarius, Pisces)
	case 3:
		return pick(day, 20, Pisces, Aries)
	case 4:
		return pick(day, 19, Aries, Taurus)
	case 5:
		return pick(day, 20, Taurus, Gemini)
	case 6:
		return pick(day, 20, Gemini, Cancer)
	case 7:
		return pick(day, 22, Cancer, Leo)
	case 8:
		return pick(day, 22, Leo, Virgo)
	case 9:
		return pick(day, 22, Virgo, Libra)
	case 10:
		return pick(day, 22, Libra, Scorpio)
	case 11:
		return pick(day, 21, Scorpio, Sagittarius)
	case 12:
		return pick(day, 21, Sagittarius, Capricorn)
	default:
		return Aries
	}
}

func pick(day int, cutoff int, onOrBefore Sign, after Sign) Sign {
	if day <= cutoff {
		return onOrBefore
	}
	return after
}
