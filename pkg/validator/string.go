package validator

import (
	"regexp"
	"strconv"
	"unicode"
)

// String check message templates.
const (
	msgNotEmpty           = "cannot be empty"
	msgMatch              = "incorrect format"
	msgShorterThan        = "length must be shorter than %{max} characters"
	msgShorterOrEqualThan = "length must be shorter or equal than %{max} characters"
	msgLengthEqual        = "length must be %{len} characters"
	msgLongerThan         = "length must be longer than %{min} characters"
	msgLongerOrEqualThan  = "length must be longer or equal than %{min} characters"
	msgNotAlphanumeric    = "some characters are not alphanumeric"
	msgNotAlphabetic      = "some characters are not alphabetic"
	msgNotDigits          = "some characters are not digits"
	msgNotLowercase       = "some characters are not lowercase"
	msgNotUppercase       = "some characters are not uppercase"
	msgNotWhitespace      = "some characters are not whitespace"
)

// String is the eager string evaluator. Like Int, the first failure is
// sticky and short-circuits the rest of the chain.
//
// Length checks count runes, not bytes, so multi-byte input behaves the way
// a form user would expect.
type String struct {
	value string
	err   *Error
	cfg   config
}

// NewString validates that v is a string and applies the configured
// stripping.
func NewString(v any, opts ...Option) *String {
	cfg := newConfig(opts)
	eval := &String{cfg: cfg}

	s, verr := cleanString(v, cfg)
	if verr != nil {
		eval.err = verr
		return eval
	}

	eval.value = s
	return eval
}

// NotEmpty checks that the value has at least one character.
func (s *String) NotEmpty(msg ...string) *String {
	if s.err != nil || len(s.value) != 0 {
		return s
	}
	s.err = s.cfg.failure(msgNotEmpty, map[string]string{"value": s.value}, msg)
	return s
}

// Match checks that the value matches re starting at the beginning of the
// string. The rest of the value may be anything unless the pattern anchors
// it.
func (s *String) Match(re *regexp.Regexp, msg ...string) *String {
	if s.err != nil {
		return s
	}
	if loc := re.FindStringIndex(s.value); loc != nil && loc[0] == 0 {
		return s
	}
	s.err = s.cfg.failure(msgMatch, map[string]string{"value": s.value}, msg)
	return s
}

// ShorterThan checks that the value has strictly fewer than max characters.
func (s *String) ShorterThan(max int, msg ...string) *String {
	if s.err != nil || s.length() < max {
		return s
	}
	s.err = s.cfg.failure(msgShorterThan, s.params("max", max), msg)
	return s
}

// ShorterOrEqualThan checks that the value has at most max characters.
func (s *String) ShorterOrEqualThan(max int, msg ...string) *String {
	if s.err != nil || s.length() <= max {
		return s
	}
	s.err = s.cfg.failure(msgShorterOrEqualThan, s.params("max", max), msg)
	return s
}

// LengthEqual checks that the value has exactly n characters.
func (s *String) LengthEqual(n int, msg ...string) *String {
	if s.err != nil || s.length() == n {
		return s
	}
	s.err = s.cfg.failure(msgLengthEqual, s.params("len", n), msg)
	return s
}

// LongerThan checks that the value has strictly more than min characters.
func (s *String) LongerThan(min int, msg ...string) *String {
	if s.err != nil || s.length() > min {
		return s
	}
	s.err = s.cfg.failure(msgLongerThan, s.params("min", min), msg)
	return s
}

// LongerOrEqualThan checks that the value has at least min characters.
func (s *String) LongerOrEqualThan(min int, msg ...string) *String {
	if s.err != nil || s.length() >= min {
		return s
	}
	s.err = s.cfg.failure(msgLongerOrEqualThan, s.params("min", min), msg)
	return s
}

// IsAlnum checks that every character is a letter or a digit.
// The empty string fails all character-class checks.
func (s *String) IsAlnum(msg ...string) *String {
	return s.classCheck(msgNotAlphanumeric, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}, msg)
}

// IsAlpha checks that every character is a letter.
func (s *String) IsAlpha(msg ...string) *String {
	return s.classCheck(msgNotAlphabetic, unicode.IsLetter, msg)
}

// IsDigit checks that every character is a digit.
func (s *String) IsDigit(msg ...string) *String {
	return s.classCheck(msgNotDigits, unicode.IsDigit, msg)
}

// IsLower checks that every character is a lowercase letter.
func (s *String) IsLower(msg ...string) *String {
	return s.classCheck(msgNotLowercase, unicode.IsLower, msg)
}

// IsUpper checks that every character is an uppercase letter.
func (s *String) IsUpper(msg ...string) *String {
	return s.classCheck(msgNotUppercase, unicode.IsUpper, msg)
}

// IsSpace checks that every character is whitespace.
func (s *String) IsSpace(msg ...string) *String {
	return s.classCheck(msgNotWhitespace, unicode.IsSpace, msg)
}

// ToString terminates the chain, returning the possibly transformed value or
// the first failure encountered.
func (s *String) ToString() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.value, nil
}

// ToInt terminates the chain by parsing the value as an integer in the
// configured base (default 10, see WithBase). A parse failure is reported as
// the same uniform check failure an Int evaluator would produce.
func (s *String) ToInt() (int, error) {
	if s.err != nil {
		return 0, s.err
	}

	n, err := strconv.ParseInt(s.value, s.cfg.base, strconv.IntSize)
	if err != nil {
		template := s.cfg.parseMsg
		if template == "" {
			template = msgMustBeInteger
		}
		return 0, s.cfg.newError(template, map[string]string{"value": s.value})
	}

	return int(n), nil
}

// Err returns the first failure, or nil if every check passed so far.
func (s *String) Err() error {
	if s.err != nil {
		return s.err
	}
	return nil
}

func (s *String) classCheck(template string, pred func(rune) bool, msg []string) *String {
	if s.err != nil {
		return s
	}

	ok := len(s.value) != 0
	for _, r := range s.value {
		if !pred(r) {
			ok = false
			break
		}
	}
	if ok {
		return s
	}

	s.err = s.cfg.failure(template, map[string]string{"value": s.value}, msg)
	return s
}

func (s *String) length() int {
	n := 0
	for range s.value {
		n++
	}
	return n
}

func (s *String) params(limitName string, limit int) map[string]string {
	return map[string]string{
		"value":   s.value,
		limitName: strconv.Itoa(limit),
	}
}
