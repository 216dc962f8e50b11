package astrokit

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/astrokit/internal/astro"
	"github.com/louisbranch/astrokit/internal/astrokit"
	"github.com/louisbranch/astrokit/internal/calendar"
	"github.com/louisbranch/astrokit/internal/compatibility"
	"github.com/louisbranch/astrokit/internal/insight"
	"github.com/louisbranch/astrokit/internal/kundli"
	apperrors "github.com/louisbranch/astrokit/internal/platform/errors"
	"github.com/louisbranch/astrokit/internal/storage"
	"github.com/louisbranch/astrokit/internal/zodiac"
)

type command struct {
	name string
	run  func(a *app, ctx context.Context, args []string) error
}

var commands = []command{
	{name: "profile", run: (*app).profile},
	{name: "sign", run: (*app).sign},
	{name: "match", run: (*app).match},
	{name: "explain", run: (*app).explain},
	{name: "matches", run: (*app).matches},
	{name: "daily", run: (*app).daily},
	{name: "history", run: (*app).history},
	{name: "chart", run: (*app).chart},
	{name: "traits", run: (*app).traits},
	{name: "lifepath", run: (*app).lifePath},
	{name: "personal-year", run: (*app).personalYear},
	{name: "house", run: (*app).house},
	{name: "body", run: (*app).body},
	{name: "profiles", run: (*app).profiles},
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		return a.usage()
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(a, ctx, args[1:])
		}
	}
	return usagef("unknown command %q", args[0])
}

func (a *app) usage() error {
	var b strings.Builder
	b.WriteString(a.text("core.usage.header") + "\n\n")
	b.WriteString(a.text("core.usage.commands") + "\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "  %-14s %s\n", cmd.name, a.text("core.command."+cmd.name))
	}
	return a.writeText(strings.TrimRight(b.String(), "\n"))
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return usagef("%s: %v", fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return usagef("%s: unexpected argument %q", fs.Name(), fs.Arg(0))
	}
	return nil
}

func requireFlag(name string, value string) error {
	if strings.TrimSpace(value) == "" {
		return usagef("-%s is required", name)
	}
	return nil
}

func parseSignFlag(name string, value string) (zodiac.Sign, error) {
	if err := requireFlag(name, value); err != nil {
		return zodiac.SignUnspecified, err
	}
	return zodiac.ParseSign(value)
}

type profileView struct {
	Date calendar.Date `json:"birthDate"`
	astro.Profile
}

// profile prints the profile for -date, or for a saved profile.
func (a *app) profile(ctx context.Context, args []string) error {
	fs := newFlagSet("profile")
	date := fs.String("date", "", "birth date YYYY-MM-DD (default: selected profile)")
	dateMS := fs.String("date-ms", "", "birth date as Unix epoch milliseconds, read in UTC")
	id := fs.String("id", "", "saved profile id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	birth, err := a.birthDate(ctx, *date, *dateMS, *id)
	if err != nil {
		return err
	}
	profile, err := a.engine.Profile(ctx, birth)
	if err != nil {
		return err
	}
	return a.writeJSON(profileView{Date: birth, Profile: profile})
}

type signView struct {
	Sign     zodiac.Sign `json:"sign"`
	Element  string      `json:"element"`
	Modality string      `json:"modality"`
	Ruler    string      `json:"ruler"`
	Opposite zodiac.Sign `json:"opposite"`
}

func (a *app) sign(ctx context.Context, args []string) error {
	fs := newFlagSet("sign")
	date := fs.String("date", "", "birth date YYYY-MM-DD")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireFlag("date", *date); err != nil {
		return err
	}
	birth, err := calendar.ParseDate(*date)
	if err != nil {
		return err
	}

	s := zodiac.SignFor(birth.Month, birth.Day)
	return a.writeJSON(signView{
		Sign:     s,
		Element:  s.Element().String(),
		Modality: s.Modality().String(),
		Ruler:    s.RulingBody().String(),
		Opposite: zodiac.Opposite(s),
	})
}

func (a *app) pairFlags(name string, args []string) (zodiac.Sign, zodiac.Sign, error) {
	fs := newFlagSet(name)
	first := fs.String("a", "", "first sign")
	second := fs.String("b", "", "second sign")
	if err := parseFlags(fs, args); err != nil {
		return 0, 0, err
	}
	x, err := parseSignFlag("a", *first)
	if err != nil {
		return 0, 0, err
	}
	y, err := parseSignFlag("b", *second)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (a *app) match(ctx context.Context, args []string) error {
	x, y, err := a.pairFlags("match", args)
	if err != nil {
		return err
	}
	result, err := a.engine.Compatibility(ctx, x, y)
	if err != nil {
		return err
	}
	return a.writeJSON(result)
}

func (a *app) explain(ctx context.Context, args []string) error {
	x, y, err := a.pairFlags("explain", args)
	if err != nil {
		return err
	}
	explanation, err := a.engine.Explain(ctx, x, y)
	if err != nil {
		return err
	}
	return a.writeJSON(explanation)
}

func (a *app) matches(ctx context.Context, args []string) error {
	fs := newFlagSet("matches")
	name := fs.String("sign", "", "sign to match")
	n := fs.Int("n", compatibility.DefaultMatchCount, "number of matches (1-11)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	s, err := parseSignFlag("sign", *name)
	if err != nil {
		return err
	}
	found, err := a.engine.BestMatches(ctx, s, *n)
	if err != nil {
		return err
	}
	return a.writeJSON(found)
}

// daily prints the insight card for a birth date, today or on -on.
func (a *app) daily(ctx context.Context, args []string) error {
	fs := newFlagSet("daily")
	date := fs.String("date", "", "birth date YYYY-MM-DD (default: selected profile)")
	dateMS := fs.String("date-ms", "", "birth date as Unix epoch milliseconds, read in UTC")
	id := fs.String("id", "", "saved profile id")
	on := fs.String("on", "", "day to generate YYYY-MM-DD (default: today)")
	save := fs.Bool("save", false, "save the card to history")
	share := fs.Bool("share", false, "print share text instead of JSON")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	birth, err := a.birthDate(ctx, *date, *dateMS, *id)
	if err != nil {
		return err
	}
	profile, err := a.engine.Profile(ctx, birth)
	if err != nil {
		return err
	}

	at := a.engine.Now()
	if strings.TrimSpace(*on) != "" {
		day, err := calendar.ParseDate(*on)
		if err != nil {
			return err
		}
		at = time.Date(day.Year, time.Month(day.Month), day.Day, 12, 0, 0, 0, time.UTC)
	}
	card, err := a.engine.DailyOn(ctx, profile, at)
	if err != nil {
		return err
	}

	if *save {
		kv, err := a.kv()
		if err != nil {
			return err
		}
		if err := storage.NewInsightHistory(kv).Save(ctx, calendar.DateKey(at), card); err != nil {
			return err
		}
	}
	if *share {
		return a.writeText(insight.ShareText(profile, card))
	}
	return a.writeJSON(card)
}

func (a *app) history(ctx context.Context, args []string) error {
	fs := newFlagSet("history")
	clearAll := fs.Bool("clear", false, "delete saved insights")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	kv, err := a.kv()
	if err != nil {
		return err
	}
	history := storage.NewInsightHistory(kv)
	if *clearAll {
		if err := history.Clear(ctx); err != nil {
			return err
		}
	}
	saved, err := history.List(ctx)
	if err != nil {
		return err
	}
	return a.writeJSON(saved)
}

type chartView struct {
	kundli.Chart
	Summary string `json:"summary,omitempty"`
	Note    string `json:"note"`
}

// chart prints the offline chart for the given birth input, or for the
// saved one when -date is omitted.
func (a *app) chart(ctx context.Context, args []string) error {
	fs := newFlagSet("chart")
	date := fs.String("date", "", "birth date YYYY-MM-DD (default: saved birth input)")
	clock := fs.String("time", "00:00", "birth time HH:MM")
	place := fs.String("place", "", "birth place")
	tz := fs.Int("tz", 0, "timezone offset in minutes")
	lat := fs.Float64("lat", 0, "birth place latitude")
	lon := fs.Float64("lon", 0, "birth place longitude")
	save := fs.Bool("save", false, "save the birth input")
	preview := fs.Bool("preview", false, "print the sample chart")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	note := a.text("core.chart.disclaimer")
	if *preview {
		engine := astrokit.New(calendar.SystemClock{}, astrokit.WithChartService(kundli.PreviewService{}), astrokit.WithChartCacheSize(0))
		chart, err := engine.Chart(ctx, kundli.BirthInput{})
		if err != nil {
			return err
		}
		return a.writeJSON(chartView{Chart: chart, Note: note})
	}

	var input kundli.BirthInput
	if strings.TrimSpace(*date) == "" {
		saved, err := a.savedBirthInput(ctx)
		if err != nil {
			return err
		}
		input = saved
	} else {
		birth, err := calendar.ParseDate(*date)
		if err != nil {
			return err
		}
		at, err := calendar.ParseTime(*clock)
		if err != nil {
			return err
		}
		input = kundli.BirthInput{
			Date:                  birth,
			Time:                  at,
			TimezoneOffsetMinutes: *tz,
			Place:                 kundli.GeoPlace{Name: strings.TrimSpace(*place), Lat: *lat, Lon: *lon},
		}
	}

	chart, err := a.engine.Chart(ctx, input)
	if err != nil {
		return err
	}
	if *save {
		if err := a.saveBirthInput(ctx, input); err != nil {
			return err
		}
	}
	return a.writeJSON(chartView{Chart: chart, Summary: input.Details().Summary(), Note: note})
}

// savedBirthInput loads the full birth input, falling back to the older
// date/time/place record.
func (a *app) savedBirthInput(ctx context.Context) (kundli.BirthInput, error) {
	kv, err := a.kv()
	if err != nil {
		return kundli.BirthInput{}, err
	}
	input, err := storage.NewBirthInputStore(kv).Load(ctx)
	if err == nil {
		return input, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return kundli.BirthInput{}, err
	}

	details, err := storage.NewBirthDetailsStore(kv).Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return kundli.BirthInput{}, apperrors.Wrap(apperrors.CodeNotFound, "no saved birth input", err)
	}
	if err != nil {
		return kundli.BirthInput{}, err
	}
	return kundli.BirthInput{
		Date:  details.Date,
		Time:  details.Time,
		Place: kundli.GeoPlace{Name: details.Place},
	}, nil
}

func (a *app) saveBirthInput(ctx context.Context, input kundli.BirthInput) error {
	kv, err := a.kv()
	if err != nil {
		return err
	}
	if err := storage.NewBirthInputStore(kv).Save(ctx, input); err != nil {
		return err
	}
	return storage.NewBirthDetailsStore(kv).Save(ctx, input.Details())
}

func (a *app) traits(_ context.Context, args []string) error {
	fs := newFlagSet("traits")
	name := fs.String("sign", "", "sign")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	s, err := parseSignFlag("sign", *name)
	if err != nil {
		return err
	}
	return a.writeJSON(insight.ZodiacTraits(s))
}

func (a *app) lifePath(_ context.Context, args []string) error {
	fs := newFlagSet("lifepath")
	n := fs.Int("n", 0, "life path number")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	return a.writeJSON(insight.LifePath(*n))
}

func (a *app) personalYear(_ context.Context, args []string) error {
	fs := newFlagSet("personal-year")
	n := fs.Int("n", 0, "personal year number")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	return a.writeJSON(insight.PersonalYear(*n))
}

func (a *app) house(_ context.Context, args []string) error {
	fs := newFlagSet("house")
	n := fs.Int("n", 0, "house number 1-12")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	return a.writeJSON(kundli.HouseMeaningFor(*n))
}

type bodyView struct {
	Name string `json:"name"`
	kundli.BodyMeaning
}

func (a *app) body(_ context.Context, args []string) error {
	fs := newFlagSet("body")
	name := fs.String("name", "", "body name, e.g. Moon")
	all := fs.Bool("all", false, "list every chart body")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *all {
		views := make([]bodyView, 0, len(kundli.Bodies))
		for _, b := range kundli.Bodies {
			views = append(views, bodyView{Name: b, BodyMeaning: kundli.BodyMeaningFor(b)})
		}
		return a.writeJSON(views)
	}
	if err := requireFlag("name", *name); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(*name)
	return a.writeJSON(bodyView{Name: trimmed, BodyMeaning: kundli.BodyMeaningFor(trimmed)})
}

// birthDate resolves the birth date from -date, -date-ms, -id or the selected
// profile, in that order.
func (a *app) birthDate(ctx context.Context, date string, dateMS string, id string) (calendar.Date, error) {
	date, dateMS = strings.TrimSpace(date), strings.TrimSpace(dateMS)
	switch {
	case date != "" && dateMS != "":
		return calendar.Date{}, usagef("-date and -date-ms are mutually exclusive")
	case date != "":
		return calendar.ParseDate(date)
	case dateMS != "":
		ms, err := strconv.ParseInt(dateMS, 10, 64)
		if err != nil {
			return calendar.Date{}, usagef("invalid -date-ms %q", dateMS)
		}
		birth := calendar.FromEpochMillis(ms)
		if err := birth.Validate(); err != nil {
			return calendar.Date{}, err
		}
		return birth, nil
	}

	kv, err := a.kv()
	if err != nil {
		return calendar.Date{}, err
	}
	profiles := storage.NewProfiles(kv)
	if strings.TrimSpace(id) != "" {
		profile, err := profiles.Get(ctx, id)
		if err != nil {
			return calendar.Date{}, profileErr(id, err)
		}
		return profile.Date, nil
	}
	profile, err := profiles.SelectedOrFirst(ctx)
	if err != nil {
		return calendar.Date{}, profileErr("", err)
	}
	return profile.Date, nil
}

func profileErr(id string, err error) error {
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return apperrors.WrapWithMetadata(
		apperrors.CodeProfileNotFound,
		"profile not found: "+id,
		map[string]string{"ID": strings.TrimSpace(id)},
		err,
	)
}
