package validator

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// Default message templates. The English template doubles as the lookup key
// when messages are routed through a translation catalog.
const (
	msgMustBeString  = "must be a string"
	msgMustBeInteger = "must be an integer"
)

type config struct {
	strip    bool
	lstrip   bool
	rstrip   bool
	chars    string // cutset for stripping; empty means whitespace
	base     int    // integer parse base
	format   Formatter
	typeMsg  string // override for msgMustBeString
	parseMsg string // override for msgMustBeInteger
}

func newConfig(opts []Option) config {
	cfg := config{base: 10}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures an evaluator or a chain at construction time.
type Option func(*config)

// WithStrip removes characters from both ends of the input before validation.
func WithStrip() Option {
	return func(c *config) {
		c.strip = true
	}
}

// WithStripLeft removes characters from the beginning of the input.
func WithStripLeft() Option {
	return func(c *config) {
		c.lstrip = true
	}
}

// WithStripRight removes characters from the end of the input.
func WithStripRight() Option {
	return func(c *config) {
		c.rstrip = true
	}
}

// WithStripChars sets the characters removed by the strip options.
// Whitespace is stripped when not set.
func WithStripChars(cutset string) Option {
	return func(c *config) {
		c.chars = cutset
	}
}

// WithBase sets the base used when parsing integers. Default is 10.
func WithBase(base int) Option {
	return func(c *config) {
		if base > 0 {
			c.base = base
		}
	}
}

// WithFormatter sets the message formatter, typically a translation-aware one.
func WithFormatter(f Formatter) Option {
	return func(c *config) {
		if f != nil {
			c.format = f
		}
	}
}

// WithTypeMessage overrides the "must be a string" message template.
func WithTypeMessage(msg string) Option {
	return func(c *config) {
		c.typeMsg = msg
	}
}

// WithParseMessage overrides the "must be an integer" message template.
func WithParseMessage(msg string) Option {
	return func(c *config) {
		c.parseMsg = msg
	}
}

func (c config) newError(template string, params map[string]string) *Error {
	format := c.format
	if format == nil {
		format = FormatTemplate
	}
	return &Error{
		Message:  format(template, params),
		Template: template,
		Params:   params,
	}
}

// failure builds the check error, honoring a per-check message override.
func (c config) failure(template string, params map[string]string, override []string) *Error {
	if len(override) > 0 && override[0] != "" {
		template = override[0]
	}
	return c.newError(template, params)
}

// cleanString performs the base validation every evaluator starts with:
// the input must be string-typed, then the configured stripping is applied.
func cleanString(v any, cfg config) (string, *Error) {
	s, ok := v.(string)
	if !ok {
		template := cfg.typeMsg
		if template == "" {
			template = msgMustBeString
		}
		return "", cfg.newError(template, map[string]string{"value": fmt.Sprint(v)})
	}

	if cfg.strip {
		s = sanitizer.TrimSet(cfg.chars)(s)
	}
	if cfg.rstrip {
		s = sanitizer.TrimRightSet(cfg.chars)(s)
	}
	if cfg.lstrip {
		s = sanitizer.TrimLeftSet(cfg.chars)(s)
	}

	return s, nil
}
