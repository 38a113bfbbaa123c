package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimLeft removes leading whitespace from a string.
func TrimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// TrimRight removes trailing whitespace from a string.
func TrimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// TrimSet returns a transform removing the characters in cutset from both
// ends of a string. An empty cutset means whitespace, so TrimSet("") is
// equivalent to Trim.
func TrimSet(cutset string) func(string) string {
	if cutset == "" {
		return Trim
	}
	return func(s string) string {
		return strings.Trim(s, cutset)
	}
}

// TrimLeftSet returns a transform removing the characters in cutset from the
// beginning of a string. An empty cutset means whitespace.
func TrimLeftSet(cutset string) func(string) string {
	if cutset == "" {
		return TrimLeft
	}
	return func(s string) string {
		return strings.TrimLeft(s, cutset)
	}
}

// TrimRightSet returns a transform removing the characters in cutset from
// the end of a string. An empty cutset means whitespace.
func TrimRightSet(cutset string) func(string) string {
	if cutset == "" {
		return TrimRight
	}
	return func(s string) string {
		return strings.TrimRight(s, cutset)
	}
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// CollapseWhitespace trims the string and replaces every run of internal
// whitespace with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
