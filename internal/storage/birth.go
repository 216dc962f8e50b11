package storage

import (
	"context"
	"strings"

	"github.com/louisbranch/astrokit/internal/calendar"
	"github.com/louisbranch/astrokit/internal/kundli"
)

const (
	birthYearKey   = "birth_year"
	birthMonthKey  = "birth_month"
	birthDayKey    = "birth_day"
	birthHourKey   = "birth_hour"
	birthMinuteKey = "birth_minute"
	birthPlaceKey  = "birth_place"
)

// BirthDetailsStore keeps the last birth details entered for a chart.
type BirthDetailsStore struct {
	kv KeyValueStore
}

// NewBirthDetailsStore creates a birth details store on kv.
func NewBirthDetailsStore(kv KeyValueStore) *BirthDetailsStore {
	return &BirthDetailsStore{kv: kv}
}

// Save stores details with the place trimmed.
func (s *BirthDetailsStore) Save(ctx context.Context, details kundli.BirthDetails) error {
	ints := []struct {
		key   string
		value int
	}{
		{birthYearKey, details.Date.Year},
		{birthMonthKey, details.Date.Month},
		{birthDayKey, details.Date.Day},
		{birthHourKey, details.Time.Hour},
		{birthMinuteKey, details.Time.Minute},
	}
	for _, entry := range ints {
		if err := s.kv.PutInt(ctx, entry.key, entry.value); err != nil {
			return err
		}
	}
	return s.kv.PutString(ctx, birthPlaceKey, strings.TrimSpace(details.Place))
}

// Load returns the stored details. It returns ErrNotFound when any field
// is missing or the place is blank. Hour and minute are clamped into
// range.
func (s *BirthDetailsStore) Load(ctx context.Context) (kundli.BirthDetails, error) {
	values := make([]int, 0, 5)
	for _, key := range []string{birthYearKey, birthMonthKey, birthDayKey, birthHourKey, birthMinuteKey} {
		v, ok, err := s.kv.GetInt(ctx, key)
		if err != nil {
			return kundli.BirthDetails{}, err
		}
		if !ok {
			return kundli.BirthDetails{}, ErrNotFound
		}
		values = append(values, v)
	}

	place, _, err := s.kv.GetString(ctx, birthPlaceKey)
	if err != nil {
		return kundli.BirthDetails{}, err
	}
	place = strings.TrimSpace(place)
	if place == "" {
		return kundli.BirthDetails{}, ErrNotFound
	}

	return kundli.BirthDetails{
		Date:  calendar.NewDate(values[0], values[1], values[2]),
		Time:  calendar.NewTime(values[3], values[4]).Clamped(),
		Place: place,
	}, nil
}

// Clear removes the stored details.
func (s *BirthDetailsStore) Clear(ctx context.Context) error {
	return removeAll(ctx, s.kv, birthYearKey, birthMonthKey, birthDayKey, birthHourKey, birthMinuteKey, birthPlaceKey)
}

const (
	inputYearKey      = "birth_y"
	inputMonthKey     = "birth_m"
	inputDayKey       = "birth_d"
	inputHourKey      = "birth_h"
	inputMinuteKey    = "birth_min"
	inputTimezoneKey  = "birth_tz_min"
	inputPlaceNameKey = "birth_place_name"
	inputPlaceLatKey  = "birth_place_lat"
	inputPlaceLonKey  = "birth_place_lon"
)

// BirthInputStore keeps the last full birth input, coordinates included.
type BirthInputStore struct {
	kv KeyValueStore
}

// NewBirthInputStore creates a birth input store on kv.
func NewBirthInputStore(kv KeyValueStore) *BirthInputStore {
	return &BirthInputStore{kv: kv}
}

// Save stores input.
func (s *BirthInputStore) Save(ctx context.Context, input kundli.BirthInput) error {
	ints := []struct {
		key   string
		value int
	}{
		{inputYearKey, input.Date.Year},
		{inputMonthKey, input.Date.Month},
		{inputDayKey, input.Date.Day},
		{inputHourKey, input.Time.Hour},
		{inputMinuteKey, input.Time.Minute},
		{inputTimezoneKey, input.TimezoneOffsetMinutes},
	}
	for _, entry := range ints {
		if err := s.kv.PutInt(ctx, entry.key, entry.value); err != nil {
			return err
		}
	}
	if err := s.kv.PutString(ctx, inputPlaceNameKey, input.Place.Name); err != nil {
		return err
	}
	if err := s.kv.PutFloat(ctx, inputPlaceLatKey, input.Place.Lat); err != nil {
		return err
	}
	return s.kv.PutFloat(ctx, inputPlaceLonKey, input.Place.Lon)
}

// Load returns the stored input, or ErrNotFound when any field is missing.
func (s *BirthInputStore) Load(ctx context.Context) (kundli.BirthInput, error) {
	keys := []string{inputYearKey, inputMonthKey, inputDayKey, inputHourKey, inputMinuteKey, inputTimezoneKey}
	values := make([]int, 0, len(keys))
	for _, key := range keys {
		v, ok, err := s.kv.GetInt(ctx, key)
		if err != nil {
			return kundli.BirthInput{}, err
		}
		if !ok {
			return kundli.BirthInput{}, ErrNotFound
		}
		values = append(values, v)
	}

	name, ok, err := s.kv.GetString(ctx, inputPlaceNameKey)
	if err != nil {
		return kundli.BirthInput{}, err
	}
	if !ok {
		return kundli.BirthInput{}, ErrNotFound
	}
	lat, ok, err := s.kv.GetFloat(ctx, inputPlaceLatKey)
	if err != nil {
		return kundli.BirthInput{}, err
	}
	if !ok {
		return kundli.BirthInput{}, ErrNotFound
	}
	lon, ok, err := s.kv.GetFloat(ctx, inputPlaceLonKey)
	if err != nil {
		return kundli.BirthInput{}, err
	}
	if !ok {
		return kundli.BirthInput{}, ErrNotFound
	}

	return kundli.BirthInput{
		Date:                  calendar.NewDate(values[0], values[1], values[2]),
		Time:                  calendar.NewTime(values[3], values[4]),
		TimezoneOffsetMinutes: values[5],
		Place:                 kundli.GeoPlace{Name: name, Lat: lat, Lon: lon},
	}, nil
}

// Clear removes the stored input.
func (s *BirthInputStore) Clear(ctx context.Context) error {
	return removeAll(ctx, s.kv,
		inputYearKey, inputMonthKey, inputDayKey,
		inputHourKey, inputMinuteKey, inputTimezoneKey,
		inputPlaceNameKey, inputPlaceLatKey, inputPlaceLonKey,
	)
}
