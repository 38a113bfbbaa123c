// Package sanitizer provides small, stateless string-cleaning helpers for
// normalising form input before validation.
//
// All helpers are pure func(string) string transforms (or return one), so
// they can be freely combined into pipelines with Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.CollapseWhitespace,
//	    sanitizer.ToLower,
//	)
//
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// The validator package builds its strip options on the Trim family here.
package sanitizer
