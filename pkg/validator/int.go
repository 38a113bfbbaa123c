package validator

import "strconv"

// Integer check message templates.
const (
	msgLesserThan         = "must be lesser than %{max}"
	msgLesserOrEqualThan  = "must be lesser or equal than %{max}"
	msgGreaterThan        = "must be greater than %{min}"
	msgGreaterOrEqualThan = "must be greater or equal than %{min}"
)

// Int is the eager integer evaluator. It is seeded with a raw value at
// construction; every check executes immediately. The first failure is
// sticky: once a check fails, the remaining checks in the chain are no-ops
// and the terminal ToInt reports that first failure.
type Int struct {
	value int
	err   *Error
	cfg   config
}

// NewInt validates that v is a string, applies the configured stripping and
// parses it as an integer in the configured base (default 10). A failed type
// check or parse puts the evaluator in its failed state; checks on a failed
// evaluator do nothing.
func NewInt(v any, opts ...Option) *Int {
	cfg := newConfig(opts)
	eval := &Int{cfg: cfg}

	s, verr := cleanString(v, cfg)
	if verr != nil {
		eval.err = verr
		return eval
	}

	n, err := strconv.ParseInt(s, cfg.base, strconv.IntSize)
	if err != nil {
		template := cfg.parseMsg
		if template == "" {
			template = msgMustBeInteger
		}
		eval.err = cfg.newError(template, map[string]string{"value": s})
		return eval
	}

	eval.value = int(n)
	return eval
}

// LesserThan checks that the value is strictly below max.
func (v *Int) LesserThan(max int, msg ...string) *Int {
	if v.err != nil || v.value < max {
		return v
	}
	v.err = v.cfg.failure(msgLesserThan, v.params("max", max), msg)
	return v
}

// LesserOrEqualThan checks that the value is at most max.
func (v *Int) LesserOrEqualThan(max int, msg ...string) *Int {
	if v.err != nil || v.value <= max {
		return v
	}
	v.err = v.cfg.failure(msgLesserOrEqualThan, v.params("max", max), msg)
	return v
}

// GreaterThan checks that the value is strictly above min.
func (v *Int) GreaterThan(min int, msg ...string) *Int {
	if v.err != nil || v.value > min {
		return v
	}
	v.err = v.cfg.failure(msgGreaterThan, v.params("min", min), msg)
	return v
}

// GreaterOrEqualThan checks that the value is at least min.
func (v *Int) GreaterOrEqualThan(min int, msg ...string) *Int {
	if v.err != nil || v.value >= min {
		return v
	}
	v.err = v.cfg.failure(msgGreaterOrEqualThan, v.params("min", min), msg)
	return v
}

// ToInt terminates the chain, returning the parsed value or the first
// failure encountered.
func (v *Int) ToInt() (int, error) {
	if v.err != nil {
		return 0, v.err
	}
	return v.value, nil
}

// Err returns the first failure, or nil if every check passed so far.
func (v *Int) Err() error {
	if v.err != nil {
		return v.err
	}
	return nil
}

func (v *Int) params(limitName string, limit int) map[string]string {
	return map[string]string{
		"value":   strconv.Itoa(v.value),
		limitName: strconv.Itoa(limit),
	}
}
