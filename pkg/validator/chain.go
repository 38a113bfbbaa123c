package validator

import "regexp"

// The chain types are the deferred counterpart of the eager evaluators: a
// chain records checks without executing them, and Validate replays the
// recorded sequence, in order, against a fresh evaluator seeded with the
// supplied value. Chains are value types with copy-on-append semantics, so a
// built chain can be stored once and reused across requests.

// IntChain records integer checks for later evaluation.
type IntChain struct {
	opts   []Option
	checks []func(*Int) *Int
}

// NewIntChain creates an empty integer chain. The options are applied to
// every evaluator the chain constructs.
func NewIntChain(opts ...Option) IntChain {
	return IntChain{opts: opts}
}

// LesserThan records an Int.LesserThan check.
func (c IntChain) LesserThan(max int, msg ...string) IntChain {
	return c.push(func(v *Int) *Int { return v.LesserThan(max, msg...) })
}

// LesserOrEqualThan records an Int.LesserOrEqualThan check.
func (c IntChain) LesserOrEqualThan(max int, msg ...string) IntChain {
	return c.push(func(v *Int) *Int { return v.LesserOrEqualThan(max, msg...) })
}

// GreaterThan records an Int.GreaterThan check.
func (c IntChain) GreaterThan(min int, msg ...string) IntChain {
	return c.push(func(v *Int) *Int { return v.GreaterThan(min, msg...) })
}

// GreaterOrEqualThan records an Int.GreaterOrEqualThan check.
func (c IntChain) GreaterOrEqualThan(min int, msg ...string) IntChain {
	return c.push(func(v *Int) *Int { return v.GreaterOrEqualThan(min, msg...) })
}

// Validate replays the recorded checks against v and returns the terminal
// result, exactly as the equivalent eager chain would.
func (c IntChain) Validate(v any) (int, error) {
	eval := NewInt(v, c.opts...)
	for _, check := range c.checks {
		eval = check(eval)
	}
	return eval.ToInt()
}

// Func adapts the chain to the generic validating-function shape used by
// editor properties.
func (c IntChain) Func() func(any) (any, error) {
	return func(v any) (any, error) {
		n, err := c.Validate(v)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
}

func (c IntChain) push(check func(*Int) *Int) IntChain {
	checks := make([]func(*Int) *Int, len(c.checks), len(c.checks)+1)
	copy(checks, c.checks)
	c.checks = append(checks, check)
	return c
}

// StringChain records string checks for later evaluation.
type StringChain struct {
	opts   []Option
	checks []func(*String) *String
}

// NewStringChain creates an empty string chain. The options are applied to
// every evaluator the chain constructs.
func NewStringChain(opts ...Option) StringChain {
	return StringChain{opts: opts}
}

// NotEmpty records a String.NotEmpty check.
func (c StringChain) NotEmpty(msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.NotEmpty(msg...) })
}

// Match records a String.Match check.
func (c StringChain) Match(re *regexp.Regexp, msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.Match(re, msg...) })
}

// ShorterThan records a String.ShorterThan check.
func (c StringChain) ShorterThan(max int, msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.ShorterThan(max, msg...) })
}

// ShorterOrEqualThan records a String.ShorterOrEqualThan check.
func (c StringChain) ShorterOrEqualThan(max int, msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.ShorterOrEqualThan(max, msg...) })
}

// LengthEqual records a String.LengthEqual check.
func (c StringChain) LengthEqual(n int, msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.LengthEqual(n, msg...) })
}

// LongerThan records a String.LongerThan check.
func (c StringChain) LongerThan(min int, msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.LongerThan(min, msg...) })
}

// LongerOrEqualThan records a String.LongerOrEqualThan check.
func (c StringChain) LongerOrEqualThan(min int, msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.LongerOrEqualThan(min, msg...) })
}

// IsAlnum records a String.IsAlnum check.
func (c StringChain) IsAlnum(msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.IsAlnum(msg...) })
}

// IsAlpha records a String.IsAlpha check.
func (c StringChain) IsAlpha(msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.IsAlpha(msg...) })
}

// IsDigit records a String.IsDigit check.
func (c StringChain) IsDigit(msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.IsDigit(msg...) })
}

// IsLower records a String.IsLower check.
func (c StringChain) IsLower(msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.IsLower(msg...) })
}

// IsUpper records a String.IsUpper check.
func (c StringChain) IsUpper(msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.IsUpper(msg...) })
}

// IsSpace records a String.IsSpace check.
func (c StringChain) IsSpace(msg ...string) StringChain {
	return c.push(func(s *String) *String { return s.IsSpace(msg...) })
}

// Validate replays the recorded checks against v and returns the terminal
// string, exactly as the equivalent eager chain would.
func (c StringChain) Validate(v any) (string, error) {
	eval := NewString(v, c.opts...)
	for _, check := range c.checks {
		eval = check(eval)
	}
	return eval.ToString()
}

// ValidateInt replays the recorded checks against v and terminates with
// String.ToInt instead of ToString.
func (c StringChain) ValidateInt(v any) (int, error) {
	eval := NewString(v, c.opts...)
	for _, check := range c.checks {
		eval = check(eval)
	}
	return eval.ToInt()
}

// Func adapts the chain to the generic validating-function shape used by
// editor properties.
func (c StringChain) Func() func(any) (any, error) {
	return func(v any) (any, error) {
		s, err := c.Validate(v)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

func (c StringChain) push(check func(*String) *String) StringChain {
	checks := make([]func(*String) *String, len(c.checks), len(c.checks)+1)
	copy(checks, c.checks)
	c.checks = append(checks, check)
	return c
}
