// Package validator provides chainable conversion and constraint checks for
// single scalar values, with human-readable, translation-friendly failure
// messages. It is the validating half of the form toolkit: raw form input
// goes in on one side, a typed value or a single descriptive error comes out
// the other.
//
// # Architecture
//
// Every validation starts from a raw input of type any. The base step checks
// that the input is a string ("must be a string"), optionally strips
// characters from either end (see WithStrip and friends), and then hands the
// cleaned string to the type-specific checks. Two calling conventions are
// supported and are behaviorally equivalent:
//
//   - Eager evaluators (Int, String) are constructed with the value and run
//     each check immediately. The first failure is sticky: later checks
//     become no-ops and the terminal method (ToInt, ToString) reports it.
//     This gives fluent chains without an error return on every step.
//
//   - Chains (IntChain, StringChain) are built without a value; each method
//     records the check and returns an extended copy of the chain. Validate
//     replays the recorded checks against a fresh eager evaluator. Chains
//     are immutable values, safe to build once and share.
//
// Failures are always a *Error carrying the rendered message, the template
// it came from and the named parameters (%{min}, %{max}, %{value}, ...).
// All of them match ErrInvalidValue under errors.Is, which is how callers
// tell a rejected value apart from a programming error.
//
// # Usage
//
// Eager, when the value is at hand:
//
//	age, err := validator.NewInt(r.FormValue("age")).
//		GreaterOrEqualThan(18).
//		LesserThan(130).
//		ToInt()
//
// Deferred, when the rules are declared up front:
//
//	ageRule := validator.NewIntChain().GreaterOrEqualThan(18).LesserThan(130)
//	// later, per submission:
//	age, err := ageRule.Validate(input)
//
// A chain plugs into an editor property through Func:
//
//	ed.Property("age").Validate(ageRule.Func())
//
// # Messages
//
// Every check accepts an optional trailing message template overriding the
// default one. Templates use %{name} placeholders and are rendered by the
// package-default FormatTemplate, or by a custom Formatter (for example one
// backed by an i18n catalog) supplied with WithFormatter.
package validator
