package editor

import (
	"errors"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ValidateFunc converts and validates a raw input value. It returns the
// value to store, or an error. A *validator.Error marks the input as
// rejected; any other error is treated as a programming failure and is not
// absorbed by the property.
type ValidateFunc func(input any) (any, error)

// Property is a single buffered form field. It tracks the current raw input,
// the last value the validating function accepted, and the message of the
// last validation failure.
//
// Invariant: Err is nil exactly when the last Set succeeded, and Value only
// changes on success.
type Property struct {
	input    any
	value    any
	err      *validator.Error
	validate ValidateFunc
}

// NewProperty creates a property holding v as its initial valid value. The
// default validating function accepts everything unchanged.
func NewProperty(v any) *Property {
	return &Property{
		input: v,
		value: v,
		validate: func(input any) (any, error) {
			return input, nil
		},
	}
}

// Validate replaces the validating function and returns the property, so a
// freshly bound field can be configured in one expression.
func (p *Property) Validate(fn ValidateFunc) *Property {
	if fn != nil {
		p.validate = fn
	}
	return p
}

// Set records input as the current raw value and runs the validating
// function on it. On success the validated result becomes the new valid
// value and any previous error is cleared. A validation failure is stored in
// the property and Set returns nil; the valid value keeps its previous
// content. Any other error from the validating function propagates
// unchanged, leaving both the valid value and the error state untouched.
func (p *Property) Set(input any) error {
	p.input = input

	v, err := p.validate(input)
	if err != nil {
		var verr *validator.Error
		if errors.As(err, &verr) {
			p.err = verr
			return nil
		}
		return err
	}

	p.value = v
	p.err = nil
	return nil
}

// Input returns the current raw value, valid or not.
func (p *Property) Input() any {
	return p.input
}

// Value returns the last successfully validated value.
func (p *Property) Value() any {
	return p.value
}

// Err returns the last validation failure, or nil if the current input is
// valid.
func (p *Property) Err() *validator.Error {
	return p.err
}

// Error returns the last validation failure's message, or "" if the current
// input is valid. Meant for rendering next to the form field.
func (p *Property) Error() string {
	if p.err == nil {
		return ""
	}
	return p.err.Message
}
