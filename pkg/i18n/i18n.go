package i18n

import (
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Translator holds per-language message catalogs and renders templates with
// %{name} named substitution. Catalogs are nested maps addressed with
// dot-separated keys ("form.errors.age"); for validator messages the English
// default template itself is the catalog key, gettext-style.
type Translator struct {
	mu            sync.RWMutex
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	missingLog    bool
	logger        *slog.Logger
}

// New creates a Translator with an empty catalog. Load translations with
// LoadYAML or LoadFS.
func New(opts ...Option) *Translator {
	t := &Translator{
		translations:  make(map[string]map[string]any),
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SupportedLanguages returns the language codes with loaded catalogs, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation checks whether a catalog entry exists for lang and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for the given language, substituting %{name} placeholders
// from the trailing key-value argument pairs:
//
//	t.T("fr", "form.greeting", "name", "Alice")
//
// Lookup falls back to the default language, then to the key itself (unless
// WithFallbackToKey(false) was set, in which case a miss returns "").
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	template, ok := t.lookup(lang, key)
	if !ok && lang != t.defaultLang {
		template, ok = t.lookup(t.defaultLang, key)
	}
	if !ok {
		if t.missingLog {
			t.logger.Warn("missing translation", "lang", lang, "key", key)
		}
		if !t.fallbackToKey {
			return ""
		}
		template = key
	}

	return validator.FormatTemplate(template, buildParams(args))
}

// Formatter returns a validator.Formatter bound to lang, so a request's
// negotiated language plugs straight into validation messages. The message
// template is used as the flat catalog key; when no entry exists the English
// template is rendered as-is.
func (t *Translator) Formatter(lang string) validator.Formatter {
	return func(template string, params map[string]string) string {
		t.mu.RLock()
		translated := template
		if entry, ok := t.flatLookup(lang, template); ok {
			translated = entry
		} else if entry, ok := t.flatLookup(t.defaultLang, template); ok {
			translated = entry
		}
		t.mu.RUnlock()

		return validator.FormatTemplate(translated, params)
	}
}

// lookup traverses a nested catalog using dot-separated keys. The final node
// must be a string.
func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		if i == len(parts)-1 {
			s, ok := current[part].(string)
			return s, ok
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}

	return "", false
}

// flatLookup reads a top-level entry without dot-path traversal; validator
// message templates may legitimately contain dots.
func (t *Translator) flatLookup(lang, key string) (string, bool) {
	m, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	s, ok := m[key].(string)
	return s, ok
}

// buildParams converts trailing key-value string pairs into a map. An odd
// final argument is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}
