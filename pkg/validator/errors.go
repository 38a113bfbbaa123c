package validator

import "errors"

// ErrInvalidValue is the class every check failure belongs to.
// errors.Is(err, ErrInvalidValue) reports whether an error came from a
// validation check rather than from a programming mistake.
var ErrInvalidValue = errors.New("invalid value")

// Error is the single failure signal produced by validator checks. It carries
// the rendered human-readable message together with the raw template and the
// named parameters it was rendered from, so callers can re-render it through
// a translation catalog.
type Error struct {
	Message  string            // rendered message
	Template string            // message template with %{name} placeholders
	Params   map[string]string // named substitution parameters
}

func (e *Error) Error() string {
	return e.Message
}

// Is makes every *Error match ErrInvalidValue.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidValue
}

// IsValidationError reports whether err is a check failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}

// AsValidationError extracts the *Error from err, if it is one.
func AsValidationError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
