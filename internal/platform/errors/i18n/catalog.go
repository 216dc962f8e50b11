// Package i18n renders user-facing text for domain error codes.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	apperrors "github.com/louisbranch/astrokit/internal/platform/errors"
	i18ncatalog "github.com/louisbranch/astrokit/internal/platform/i18n/catalog"
)

// Code is a machine-readable error code.
type Code = apperrors.Code

// Namespace is the catalog namespace holding error templates.
const Namespace = "errors"

// Catalog holds the parsed message templates of one locale.
type Catalog struct {
	locale    string
	raw       map[Code]string
	templates map[Code]*template.Template
}

var (
	catalogsMu sync.RWMutex
	// catalogs holds registered and lazily built catalogs by locale.
	catalogs = map[string]*Catalog{}
)

// Localize renders err for a user in locale. Errors without a domain code
// render as their own text.
func Localize(locale string, err error) string {
	if err == nil {
		return ""
	}
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeUnknown {
		return err.Error()
	}
	return GetCatalog(locale).Format(code, apperrors.MetadataOf(err))
}

// GetCatalog returns the catalog for locale, resolving it against the
// embedded locales and falling back to en-US.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = i18ncatalog.BaseLocale
	}
	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	resolved := i18ncatalog.Default().Resolve(requested)
	if c, ok := lookupCatalog(resolved); ok {
		return c
	}

	resolvedLocale, messages := i18ncatalog.Default().NamespaceMessagesWithFallback(resolved, Namespace)
	if c, ok := lookupCatalog(resolvedLocale); ok {
		return c
	}
	codes := make(map[Code]string, len(messages))
	for key, value := range messages {
		codes[Code(key)] = value
	}
	return storeCatalogIfAbsent(resolvedLocale, NewCatalog(resolvedLocale, codes))
}

// NewCatalog parses messages into a catalog for locale. A message that
// fails to parse is kept and rendered verbatim.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	c := &Catalog{
		locale:    locale,
		raw:       make(map[Code]string, len(messages)),
		templates: make(map[Code]*template.Template, len(messages)),
	}
	for code, text := range messages {
		c.raw[code] = text
		if t, err := template.New(string(code)).Parse(text); err == nil {
			c.templates[code] = t
		}
	}
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the template for code with metadata. Unknown codes
// render as the code; templates that fail render verbatim. Missing
// metadata keys render as "<no value>".
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	raw, ok := c.raw[code]
	if !ok {
		return string(code)
	}
	t, ok := c.templates[code]
	if !ok {
		return raw
	}
	if metadata == nil {
		metadata = map[string]string{}
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return raw
	}
	return buf.String()
}

// RegisterCatalog registers cat for locale, replacing any existing one.
// Tests use it to install fixtures.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

func storeCatalogIfAbsent(locale string, candidate *Catalog) *Catalog {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	if existing, ok := catalogs[locale]; ok {
		return existing
	}
	catalogs[locale] = candidate
	return candidate
}
