package astrokit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/astrokit/internal/astro"
	"github.com/louisbranch/astrokit/internal/calendar"
	"github.com/louisbranch/astrokit/internal/kundli"
	apperrors "github.com/louisbranch/astrokit/internal/platform/errors"
	"github.com/louisbranch/astrokit/internal/zodiac"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestEngine(t *testing.T) (*Engine, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider()
	tp.RegisterSpanProcessor(recorder)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	clock := calendar.FixedClock{At: time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)}
	return New(clock, WithTracerProvider(tp)), recorder
}

func TestProfileUsesClockYear(t *testing.T) {
	engine, _ := newTestEngine(t)
	got, err := engine.Profile(context.Background(), calendar.NewDate(1990, 10, 25))
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	want := astro.Profile{Zodiac: zodiac.Scorpio, LifePath: 9, PersonalYear: 9}
	if got != want {
		t.Fatalf("Profile = %+v, want %+v", got, want)
	}
}

func TestProfileRejectsInvalidDateAndRecordsError(t *testing.T) {
	engine, recorder := newTestEngine(t)
	_, err := engine.Profile(context.Background(), calendar.NewDate(1990, 13, 1))
	if got := apperrors.CodeOf(err); got != apperrors.CodeInvalidDate {
		t.Fatalf("code = %s, want %s", got, apperrors.CodeInvalidDate)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if spans[0].Name() != "astrokit.Profile" {
		t.Fatalf("span name = %q", spans[0].Name())
	}
	if spans[0].Status().Code != codes.Error || spans[0].Status().Description != "INVALID_DATE" {
		t.Fatalf("span status = %+v", spans[0].Status())
	}
}

func TestToday(t *testing.T) {
	engine, recorder := newTestEngine(t)
	profile := astro.Profile{Zodiac: zodiac.Scorpio, LifePath: 9, PersonalYear: 9}
	got, err := engine.Today(context.Background(), profile)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if got.Title != "Today • Sun • 2026-10-18" {
		t.Fatalf("Title = %q", got.Title)
	}
	if got.Focus != "Completion creates freedom." {
		t.Fatalf("Focus = %q", got.Focus)
	}
	if len(recorder.Ended()) != 1 || recorder.Ended()[0].Name() != "astrokit.Daily" {
		t.Fatalf("expected one astrokit.Daily span")
	}
}

func TestShareToday(t *testing.T) {
	engine, _ := newTestEngine(t)
	profile := astro.Profile{Zodiac: zodiac.Scorpio, LifePath: 9, PersonalYear: 9}
	got, err := engine.ShareToday(context.Background(), profile)
	if err != nil {
		t.Fatalf("ShareToday: %v", err)
	}
	if !strings.HasPrefix(got, "AstroKit Insight\nToday • Sun • 2026-10-18\n") {
		t.Fatalf("ShareToday = %q", got)
	}
	if !strings.Contains(got, "Zodiac: Scorpio (WATER)") {
		t.Fatalf("ShareToday missing zodiac line: %q", got)
	}
}

func TestTodayRejectsUnspecifiedSign(t *testing.T) {
	engine, _ := newTestEngine(t)
	_, err := engine.Today(context.Background(), astro.Profile{})
	if got := apperrors.CodeOf(err); got != apperrors.CodeInvalidSign {
		t.Fatalf("code = %s, want %s", got, apperrors.CodeInvalidSign)
	}
}

func TestCompatibilityAndExplain(t *testing.T) {
	engine, _ := newTestEngine(t)
	result, err := engine.Compatibility(context.Background(), zodiac.Libra, zodiac.Aries)
	if err != nil {
		t.Fatalf("Compatibility: %v", err)
	}
	if result.Score != 86 || result.Label != "Excellent match" {
		t.Fatalf("Compatibility = %+v", result)
	}

	explanation, err := engine.Explain(context.Background(), zodiac.Libra, zodiac.Aries)
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if explanation.ElementScore != 90 || len(explanation.Bullets) != 3 {
		t.Fatalf("Explain = %+v", explanation)
	}

	if _, err := engine.Compatibility(context.Background(), zodiac.Sign(42), zodiac.Aries); apperrors.CodeOf(err) != apperrors.CodeInvalidSign {
		t.Fatalf("Compatibility(invalid) err = %v", err)
	}
	if _, err := engine.Explain(context.Background(), zodiac.Aries, zodiac.SignUnspecified); apperrors.CodeOf(err) != apperrors.CodeInvalidSign {
		t.Fatalf("Explain(invalid) err = %v", err)
	}
}

func TestBestMatches(t *testing.T) {
	engine, _ := newTestEngine(t)
	got, err := engine.BestMatches(context.Background(), zodiac.Aries, 3)
	if err != nil {
		t.Fatalf("BestMatches: %v", err)
	}
	if len(got) != 3 || got[0].Sign != zodiac.Gemini {
		t.Fatalf("BestMatches = %+v", got)
	}

	for _, n := range []int{0, -2, 12} {
		_, err := engine.BestMatches(context.Background(), zodiac.Aries, n)
		if apperrors.CodeOf(err) != apperrors.CodeInvalidCount {
			t.Fatalf("BestMatches(n=%d) err = %v, want INVALID_COUNT", n, err)
		}
		if md := apperrors.MetadataOf(err); md["Count"] == "" {
			t.Fatalf("BestMatches(n=%d) metadata = %v", n, md)
		}
	}
}

func TestChart(t *testing.T) {
	engine, recorder := newTestEngine(t)
	chart, err := engine.Chart(context.Background(), kundli.BirthInput{
		Date:  calendar.NewDate(1990, 10, 25),
		Time:  calendar.NewTime(7, 30),
		Place: kundli.GeoPlace{Name: "Delhi", Lat: 28.61, Lon: 77.21},
	})
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if chart.Lagna != "Aquarius" {
		t.Fatalf("Lagna = %q", chart.Lagna)
	}

	_, err = engine.Chart(context.Background(), kundli.BirthInput{
		Date: calendar.NewDate(1990, 10, 25),
		Time: calendar.NewTime(7, 30),
	})
	if apperrors.CodeOf(err) != apperrors.CodeInvalidPlace {
		t.Fatalf("Chart(blank place) err = %v", err)
	}
	if n := len(recorder.Ended()); n != 2 {
		t.Fatalf("spans = %d, want 2", n)
	}
}

func chartCachedAttr(t *testing.T, span sdktrace.ReadOnlySpan) bool {
	t.Helper()
	for _, kv := range span.Attributes() {
		if kv.Key == "chart.cached" {
			return kv.Value.AsBool()
		}
	}
	t.Fatalf("span %q has no chart.cached attribute", span.Name())
	return false
}

func TestChartCachesAndCopies(t *testing.T) {
	engine, recorder := newTestEngine(t)
	details := kundli.BirthInput{
		Date:  calendar.NewDate(2000, 1, 1),
		Time:  calendar.NewTime(0, 0),
		Place: kundli.GeoPlace{Name: "Mumbai"},
	}

	first, err := engine.Chart(context.Background(), details)
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	first.Houses[0].Sign = "mutated"
	first.Bodies[0].Sign = "mutated"

	second, err := engine.Chart(context.Background(), details)
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if second.Houses[0].Sign != second.Lagna || second.Bodies[0].Sign == "mutated" {
		t.Fatalf("cached chart was mutated through a returned copy: %+v", second.Houses[0])
	}

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("spans = %d, want 2", len(spans))
	}
	if chartCachedAttr(t, spans[0]) || !chartCachedAttr(t, spans[1]) {
		t.Fatal("expected a miss then a hit")
	}
}

func TestChartCacheDisabled(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider()
	tp.RegisterSpanProcessor(recorder)
	defer tp.Shutdown(context.Background())

	engine := New(calendar.FixedClock{}, WithTracerProvider(tp), WithChartCacheSize(0))
	details := kundli.BirthInput{Date: calendar.NewDate(2000, 1, 1), Place: kundli.GeoPlace{Name: "Mumbai"}}
	for i := 0; i < 2; i++ {
		if _, err := engine.Chart(context.Background(), details); err != nil {
			t.Fatalf("Chart: %v", err)
		}
	}
	for _, span := range recorder.Ended() {
		if chartCachedAttr(t, span) {
			t.Fatal("cache hit with caching disabled")
		}
	}
}

type countingService struct {
	calls int
	err   error
}

func (s *countingService) GenerateChart(_ context.Context, _ kundli.BirthInput) (kundli.Chart, error) {
	s.calls++
	if s.err != nil {
		return kundli.Chart{}, s.err
	}
	return kundli.PreviewChart(), nil
}

func TestChartUsesConfiguredService(t *testing.T) {
	svc := &countingService{}
	engine := New(calendar.FixedClock{}, WithChartService(svc))
	in := kundli.BirthInput{Date: calendar.NewDate(1990, 1, 1), Place: kundli.GeoPlace{Name: "Pune"}}

	for i := 0; i < 2; i++ {
		chart, err := engine.Chart(context.Background(), in)
		if err != nil {
			t.Fatalf("Chart: %v", err)
		}
		if chart.Lagna != "Scorpio" {
			t.Fatalf("Lagna = %q, want the service's chart", chart.Lagna)
		}
	}
	if svc.calls != 1 {
		t.Fatalf("service calls = %d, want 1 with caching", svc.calls)
	}

	in.Place.Lat = 18.52
	if _, err := engine.Chart(context.Background(), in); err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if svc.calls != 2 {
		t.Fatalf("service calls = %d, want coordinates to change the cache key", svc.calls)
	}
}

func TestChartServiceErrorsAreNotCached(t *testing.T) {
	svc := &countingService{err: errors.New("backend down")}
	engine := New(calendar.FixedClock{}, WithChartService(svc))
	in := kundli.BirthInput{Date: calendar.NewDate(1990, 1, 1)}
	for i := 0; i < 2; i++ {
		if _, err := engine.Chart(context.Background(), in); err == nil {
			t.Fatal("expected service error")
		}
	}
	if svc.calls != 2 {
		t.Fatalf("service calls = %d, want 2", svc.calls)
	}
}

func TestChartHonorsCanceledContext(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine.Chart(ctx, kundli.BirthInput{Date: calendar.NewDate(1990, 1, 1), Place: kundli.GeoPlace{Name: "Pune"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Chart err = %v, want context.Canceled", err)
	}
}

func TestNewDefaultsToSystemClock(t *testing.T) {
	engine := New(nil)
	if engine.Now().IsZero() {
		t.Fatalf("Now() returned zero time")
	}
}
