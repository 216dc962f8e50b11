// Package astrokit parses astrokit command flags and dispatches its
// subcommands.
package astrokit

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/astrokit/internal/astrokit"
	"github.com/louisbranch/astrokit/internal/calendar"
	entrypoint "github.com/louisbranch/astrokit/internal/platform/cmd"
	apperrors "github.com/louisbranch/astrokit/internal/platform/errors"
	errori18n "github.com/louisbranch/astrokit/internal/platform/errors/i18n"
	i18ncatalog "github.com/louisbranch/astrokit/internal/platform/i18n/catalog"
	"github.com/louisbranch/astrokit/internal/storage"
	"github.com/louisbranch/astrokit/internal/storage/sqlite"
	"golang.org/x/text/message"
)

// Config holds astrokit command configuration.
type Config struct {
	DBPath string `env:"DB_PATH" envDefault:"data/astrokit.db"`
	Locale string `env:"LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into Config and returns the
// remaining arguments, starting with the subcommand.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, []string, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, nil, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path for profiles and history")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale for messages (en-US, pt-BR)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

// Run executes one subcommand, writing its output to out.
func Run(ctx context.Context, cfg Config, args []string, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAstrokit, func(ctx context.Context) error {
		a := newApp(cfg, astrokit.New(calendar.SystemClock{}), out)
		defer a.close()
		return a.run(ctx, args)
	})
}

// ExitCode maps a Run error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usage *usageError
	if errors.As(err, &usage) {
		return apperrors.ExitInvalidInput
	}
	return apperrors.CodeOf(err).ExitCode()
}

// Describe renders err for the user in locale.
func Describe(locale string, err error) string {
	return errori18n.Localize(locale, err)
}

// usageError reports a malformed command line.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// app holds the state shared by one command invocation.
type app struct {
	cfg     Config
	engine  *astrokit.Engine
	out     io.Writer
	printer *message.Printer

	store *sqlite.Store
}

func newApp(cfg Config, engine *astrokit.Engine, out io.Writer) *app {
	return &app{
		cfg:     cfg,
		engine:  engine,
		out:     out,
		printer: i18ncatalog.Default().Printer(cfg.Locale),
	}
}

// text renders a core catalog message in the negotiated locale.
func (a *app) text(key string) string {
	return a.printer.Sprintf(key)
}

// kv opens the SQLite store on first use.
func (a *app) kv() (storage.KeyValueStore, error) {
	if a.store != nil {
		return a.store, nil
	}
	path := strings.TrimSpace(a.cfg.DBPath)
	if path == "" {
		return nil, fmt.Errorf("db path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	a.store = store
	return store, nil
}

func (a *app) close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		log.Printf("close store: %v", err)
	}
	a.store = nil
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (a *app) writeText(text string) error {
	_, err := fmt.Fprintln(a.out, text)
	return err
}
