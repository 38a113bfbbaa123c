package i18n

import "golang.org/x/text/language"

// MatchLanguage picks the best loaded catalog language for an
// Accept-Language header value. The default language wins on a tie, on an
// unparsable header, and when nothing matches.
func (t *Translator) MatchLanguage(acceptLanguage string) string {
	supported := t.SupportedLanguages()

	// The matcher prefers earlier tags, so the default language goes first.
	codes := make([]string, 0, len(supported)+1)
	tags := make([]language.Tag, 0, len(supported)+1)
	codes = append(codes, t.defaultLang)
	tags = append(tags, language.Make(t.defaultLang))
	for _, lang := range supported {
		if lang == t.defaultLang {
			continue
		}
		codes = append(codes, lang)
		tags = append(tags, language.Make(lang))
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return t.defaultLang
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return t.defaultLang
	}
	return codes[idx]
}
