// Package kundli builds the offline birth-chart preview and the house and
// body catalogs shown beside it.
//
// Charts are a deterministic preview keyed on birth details. No planetary
// positions are computed; the same details always produce the same chart.
package kundli

import (
	"strings"

	"github.com/louisbranch/astrokit/internal/calendar"
	apperrors "github.com/louisbranch/astrokit/internal/platform/errors"
)

// BirthDetails is the date, time and place a chart is keyed on.
type BirthDetails struct {
	Date  calendar.Date `json:"date"`
	Time  calendar.Time `json:"time"`
	Place string        `json:"place"`
}

// Summary renders "YYYY-MM-DD • HH:MM • place".
func (d BirthDetails) Summary() string {
	return d.Date.String() + " • " + d.Time.String() + " • " + strings.TrimSpace(d.Place)
}

// Validate checks the date, the time and that the place is not blank.
func (d BirthDetails) Validate() error {
	if err := d.Date.Validate(); err != nil {
		return err
	}
	if err := d.Time.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(d.Place) == "" {
		return apperrors.WithMetadata(
			apperrors.CodeInvalidPlace,
			"birth place is required",
			map[string]string{"Place": d.Place},
		)
	}
	return nil
}

// GeoPlace is a named location.
type GeoPlace struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// BirthInput is the full birth record a remote chart backend would need.
// The offline generator only reads the fields BirthDetails carries.
type BirthInput struct {
	Date                  calendar.Date `json:"date"`
	Time                  calendar.Time `json:"time"`
	TimezoneOffsetMinutes int           `json:"timezoneOffsetMinutes"`
	Place                 GeoPlace      `json:"place"`
}

// Details projects the input onto the fields the offline chart uses.
func (in BirthInput) Details() BirthDetails {
	return BirthDetails{Date: in.Date, Time: in.Time, Place: in.Place.Name}
}
