package kundli

import (
	"fmt"
	"strings"

	"github.com/louisbranch/astrokit/internal/random"
	"github.com/louisbranch/astrokit/internal/zodiac"
)

// HouseCount is the number of houses in a chart.
const HouseCount = 12

// Chart is a generated birth chart.
type Chart struct {
	Lagna     string      `json:"lagna"`
	MoonSign  string      `json:"moonSign"`
	Nakshatra string      `json:"nakshatra"`
	Houses    []HouseInfo `json:"houses"`
	Bodies    []BodyInfo  `json:"planets"`
}

// HouseInfo is one house, its sign and the bodies placed in it.
type HouseInfo struct {
	House  int      `json:"house"`
	Sign   string   `json:"sign"`
	Bodies []string `json:"planets"`
}

// BodyInfo is one body's placement.
type BodyInfo struct {
	Body  string `json:"planet"`
	Sign  string `json:"sign"`
	House int    `json:"house"`
}

// Clone returns a copy of c that shares no slices with it.
func (c Chart) Clone() Chart {
	out := c
	out.Houses = make([]HouseInfo, len(c.Houses))
	for i, h := range c.Houses {
		h.Bodies = append([]string{}, h.Bodies...)
		out.Houses[i] = h
	}
	out.Bodies = append([]BodyInfo(nil), c.Bodies...)
	return out
}

// Bodies lists the bodies placed in every chart, in placement order.
var Bodies = []string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn",
	"Rahu", "Ketu",
	"Uranus", "Neptune", "Pluto",
}

// Nakshatras lists the 27 lunar mansions.
var Nakshatras = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashirsha", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// Generate validates details and builds their chart.
func Generate(details BirthDetails) (Chart, error) {
	if err := details.Validate(); err != nil {
		return Chart{}, err
	}
	return Build(details), nil
}

// Build is Generate without validation.
//
// The lagna picks the first house's sign; the remaining houses follow the
// zodiac cycle from it. Each body lands in a house chosen from its own
// hash and takes that house's sign. The nakshatra is hashed from the moon
// sign.
func Build(details BirthDetails) Chart {
	seed := seedFor(details)
	cycle := zodiac.Cycle()

	lagnaIndex := random.Index("lagna|"+seed, len(cycle))
	houseSign := func(house int) string {
		return cycle[(lagnaIndex+house-1)%len(cycle)]
	}

	bodies := make([]BodyInfo, 0, len(Bodies))
	byHouse := make(map[int][]string, HouseCount)
	for _, body := range Bodies {
		house := 1 + random.Index("planetHouse|"+seed+"|p="+body, HouseCount)
		bodies = append(bodies, BodyInfo{Body: body, Sign: houseSign(house), House: house})
		byHouse[house] = append(byHouse[house], body)
	}

	houses := make([]HouseInfo, 0, HouseCount)
	for h := 1; h <= HouseCount; h++ {
		placed := byHouse[h]
		if placed == nil {
			placed = []string{}
		}
		houses = append(houses, HouseInfo{House: h, Sign: houseSign(h), Bodies: placed})
	}

	moonSign := moonSignOf(bodies, seed, cycle)
	nakshatra := Nakshatras[random.Index("nakshatra|"+seed+"|moon="+moonSign, len(Nakshatras))]

	return Chart{
		Lagna:     cycle[lagnaIndex],
		MoonSign:  moonSign,
		Nakshatra: nakshatra,
		Houses:    houses,
		Bodies:    bodies,
	}
}

// moonSignOf reads the Moon's sign, hashing one when no Moon was placed.
func moonSignOf(bodies []BodyInfo, seed string, cycle []string) string {
	for _, b := range bodies {
		if strings.EqualFold(b.Body, "Moon") {
			return b.Sign
		}
	}
	return cycle[random.Index("moonSign|"+seed, len(cycle))]
}

// seedFor is the canonical string every chart hash is derived from. The
// place is trimmed and lower-cased so cosmetic edits keep the chart.
func seedFor(details BirthDetails) string {
	place := strings.ToLower(strings.TrimSpace(details.Place))
	return fmt.Sprintf("y=%d|m=%d|d=%d|hh=%d|mm=%d|place=%s",
		details.Date.Year, details.Date.Month, details.Date.Day,
		details.Time.Hour, details.Time.Minute, place)
}
