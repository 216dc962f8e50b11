// Package astrokit is the clock-aware entry point to the astrology engine.
//
// Engine validates caller input, resolves "today" from its clock and
// records a trace span per operation. The computations themselves live in
// the astro, compatibility, insight and kundli packages and are pure.
package astrokit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/louisbranch/astrokit/internal/astro"
	"github.com/louisbranch/astrokit/internal/calendar"
	"github.com/louisbranch/astrokit/internal/compatibility"
	"github.com/louisbranch/astrokit/internal/insight"
	"github.com/louisbranch/astrokit/internal/kundli"
	apperrors "github.com/louisbranch/astrokit/internal/platform/errors"
	"github.com/louisbranch/astrokit/internal/zodiac"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/louisbranch/astrokit/internal/astrokit"

// MaxMatches is the most partners BestMatches can return.
const MaxMatches = 11

// DefaultChartCacheSize is how many generated charts an Engine keeps.
const DefaultChartCacheSize = 64

// Engine runs astrology operations against a clock.
type Engine struct {
	clock     calendar.Clock
	tracer    trace.Tracer
	cacheSize int
	charts    kundli.Service
	cache     *lru.Cache[kundli.BirthInput, kundli.Chart]
}

// Option configures an Engine.
type Option func(*Engine)

// WithTracerProvider records spans on tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) {
		e.tracer = tp.Tracer(instrumentationName)
	}
}

// WithChartCacheSize keeps up to size generated charts. Zero or less
// disables the cache.
func WithChartCacheSize(size int) Option {
	return func(e *Engine) {
		e.cacheSize = size
	}
}

// WithChartService generates charts with svc instead of the offline
// generator.
func WithChartService(svc kundli.Service) Option {
	return func(e *Engine) {
		e.charts = svc
	}
}

// New creates an Engine reading the current day from clock. A nil clock
// uses the system clock.
func New(clock calendar.Clock, opts ...Option) *Engine {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	e := &Engine{
		clock:     clock,
		tracer:    otel.Tracer(instrumentationName),
		cacheSize: DefaultChartCacheSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.charts == nil {
		e.charts = kundli.NewOfflineService()
	}
	if e.cacheSize > 0 {
		cache, err := lru.New[kundli.BirthInput, kundli.Chart](e.cacheSize)
		if err != nil {
			panic(fmt.Sprintf("astrokit: chart cache: %v", err))
		}
		e.cache = cache
	}
	return e
}

// Now returns the engine clock's current time.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// Profile derives the astrology profile of birth for the clock's current
// year.
func (e *Engine) Profile(ctx context.Context, birth calendar.Date) (astro.Profile, error) {
	_, span := e.tracer.Start(ctx, "astrokit.Profile", trace.WithAttributes(
		attribute.String("birth.date", birth.String()),
	))
	defer span.End()

	profile, err := astro.ComputeProfile(birth, e.clock.Now().Year())
	if err != nil {
		return astro.Profile{}, fail(span, err)
	}
	span.SetAttributes(attribute.String("zodiac.sign", profile.Zodiac.Name()))
	return profile, nil
}

// Today generates the insight card for the clock's current day.
func (e *Engine) Today(ctx context.Context, profile astro.Profile) (insight.Daily, error) {
	return e.DailyOn(ctx, profile, e.clock.Now())
}

// DailyOn generates the insight card for the civil day of at.
func (e *Engine) DailyOn(ctx context.Context, profile astro.Profile, at time.Time) (insight.Daily, error) {
	key := calendar.DateKey(at)
	_, span := e.tracer.Start(ctx, "astrokit.Daily", trace.WithAttributes(
		attribute.String("insight.day", key),
	))
	defer span.End()

	if err := validateSign(profile.Zodiac); err != nil {
		return insight.Daily{}, fail(span, err)
	}
	return insight.GenerateDaily(profile, key, calendar.WeekdayShort(at)), nil
}

// ShareToday renders today's card as share text.
func (e *Engine) ShareToday(ctx context.Context, profile astro.Profile) (string, error) {
	daily, err := e.Today(ctx, profile)
	if err != nil {
		return "", err
	}
	return insight.ShareText(profile, daily), nil
}

// Compatibility scores a against b.
func (e *Engine) Compatibility(ctx context.Context, a zodiac.Sign, b zodiac.Sign) (compatibility.Result, error) {
	_, span := e.startPair(ctx, "astrokit.Compatibility", a, b)
	defer span.End()

	if err := validatePair(a, b); err != nil {
		return compatibility.Result{}, fail(span, err)
	}
	result := compatibility.Between(a, b)
	span.SetAttributes(attribute.Int("compatibility.score", result.Score))
	return result, nil
}

// Explain breaks down the match between a and b.
func (e *Engine) Explain(ctx context.Context, a zodiac.Sign, b zodiac.Sign) (compatibility.Explanation, error) {
	_, span := e.startPair(ctx, "astrokit.Explain", a, b)
	defer span.End()

	if err := validatePair(a, b); err != nil {
		return compatibility.Explanation{}, fail(span, err)
	}
	return compatibility.Explain(a, b), nil
}

// BestMatches returns the n best partners for sign, 1 <= n <= MaxMatches.
func (e *Engine) BestMatches(ctx context.Context, sign zodiac.Sign, n int) ([]compatibility.Match, error) {
	_, span := e.tracer.Start(ctx, "astrokit.BestMatches", trace.WithAttributes(
		attribute.String("zodiac.sign", sign.Name()),
		attribute.Int("matches.count", n),
	))
	defer span.End()

	if err := validateSign(sign); err != nil {
		return nil, fail(span, err)
	}
	if n < 1 || n > MaxMatches {
		return nil, fail(span, apperrors.WithMetadata(
			apperrors.CodeInvalidCount,
			"match count must be between 1 and 11",
			map[string]string{"Count": strconv.Itoa(n)},
		))
	}
	return compatibility.TopMatches(sign, n), nil
}

// Chart generates the chart for input with the engine's chart service.
func (e *Engine) Chart(ctx context.Context, input kundli.BirthInput) (kundli.Chart, error) {
	ctx, span := e.tracer.Start(ctx, "astrokit.Chart", trace.WithAttributes(
		attribute.String("birth.date", input.Date.String()),
		attribute.String("birth.time", input.Time.String()),
	))
	defer span.End()

	if e.cache != nil {
		if cached, ok := e.cache.Get(input); ok {
			span.SetAttributes(
				attribute.String("chart.lagna", cached.Lagna),
				attribute.Bool("chart.cached", true),
			)
			return cached.Clone(), nil
		}
	}

	chart, err := e.charts.GenerateChart(ctx, input)
	if err != nil {
		return kundli.Chart{}, fail(span, err)
	}
	if e.cache != nil {
		e.cache.Add(input, chart.Clone())
	}
	span.SetAttributes(
		attribute.String("chart.lagna", chart.Lagna),
		attribute.Bool("chart.cached", false),
	)
	return chart, nil
}

func (e *Engine) startPair(ctx context.Context, name string, a zodiac.Sign, b zodiac.Sign) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("zodiac.a", a.Name()),
		attribute.String("zodiac.b", b.Name()),
	))
}

func validatePair(a zodiac.Sign, b zodiac.Sign) error {
	if err := validateSign(a); err != nil {
		return err
	}
	return validateSign(b)
}

func validateSign(s zodiac.Sign) error {
	if s.Valid() {
		return nil
	}
	value := strconv.Itoa(int(s))
	return apperrors.WithMetadata(
		apperrors.CodeInvalidSign,
		"unknown zodiac sign "+value,
		map[string]string{"Sign": value},
	)
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(apperrors.CodeOf(err)))
	return err
}
