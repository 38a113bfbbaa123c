package validator

import "regexp"

// Formatter renders a message template with named substitution parameters.
// The default implementation is FormatTemplate; a translation layer can be
// plugged in per evaluator with WithFormatter.
type Formatter func(template string, params map[string]string) string

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// FormatTemplate substitutes %{name} placeholders in the template with the
// corresponding values from params. Placeholders without a matching parameter
// are kept as-is.
func FormatTemplate(template string, params map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
