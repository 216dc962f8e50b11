package storage

import (
	"context"
	"sync"

	"github.com/louisbranch/astrokit/internal/calendar"
	"github.com/louisbranch/astrokit/internal/insight"
)

const (
	insightDaysKey   = "insight_days"
	insightKeyPrefix = "insight_"

	// HistoryDays is how many days of insights are kept.
	HistoryDays = 7
)

// SavedInsight is an insight stored under its day key.
type SavedInsight struct {
	DayKey  string        `json:"dayKey"`
	Insight insight.Daily `json:"insight"`
}

// InsightHistory keeps the insights of the most recent days, newest first.
type InsightHistory struct {
	kv KeyValueStore
	mu sync.Mutex
}

// NewInsightHistory creates an insight history on kv.
func NewInsightHistory(kv KeyValueStore) *InsightHistory {
	return &InsightHistory{kv: kv}
}

// Save stores daily under dayKey and moves that day to the front. Days
// beyond the newest HistoryDays are dropped along with their insights.
// dayKey must be a YYYY-MM-DD date.
func (h *InsightHistory) Save(ctx context.Context, dayKey string, daily insight.Daily) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	day, err := calendar.ParseDate(dayKey)
	if err != nil {
		return err
	}
	dayKey = day.String()
	if err := putJSON(ctx, h.kv, insightKeyPrefix+dayKey, daily); err != nil {
		return err
	}

	days, err := getKeys(ctx, h.kv, insightDaysKey)
	if err != nil {
		return err
	}
	ordered := make([]string, 0, len(days)+1)
	ordered = append(ordered, dayKey)
	for _, day := range days {
		if day != dayKey {
			ordered = append(ordered, day)
		}
	}

	kept := ordered
	var dropped []string
	if len(ordered) > HistoryDays {
		kept = ordered[:HistoryDays]
		dropped = ordered[HistoryDays:]
	}

	if err := putJSON(ctx, h.kv, insightDaysKey, kept); err != nil {
		return err
	}
	for _, day := range dropped {
		if err := removeAll(ctx, h.kv, insightKeyPrefix+day); err != nil {
			return err
		}
	}
	return nil
}

// List returns the stored insights, newest first. Days whose insight is
// missing are skipped.
func (h *InsightHistory) List(ctx context.Context) ([]SavedInsight, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	days, err := getKeys(ctx, h.kv, insightDaysKey)
	if err != nil {
		return nil, err
	}
	out := make([]SavedInsight, 0, len(days))
	for _, day := range days {
		var daily insight.Daily
		ok, err := getJSON(ctx, h.kv, insightKeyPrefix+day, &daily)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, SavedInsight{DayKey: day, Insight: daily})
	}
	return out, nil
}

// Clear removes every stored insight.
func (h *InsightHistory) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	days, err := getKeys(ctx, h.kv, insightDaysKey)
	if err != nil {
		return err
	}
	for _, day := range days {
		if err := removeAll(ctx, h.kv, insightKeyPrefix+day); err != nil {
			return err
		}
	}
	return removeAll(ctx, h.kv, insightDaysKey)
}
