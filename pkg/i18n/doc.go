// Package i18n renders message templates with %{name} named substitution,
// backed by per-language YAML catalogs.
//
// It plays two roles in the form toolkit. As a general translator, T looks
// up dot-separated keys in nested catalogs and substitutes parameters:
//
//	tr := i18n.New(i18n.WithDefaultLanguage("en"))
//	_ = tr.LoadYAML(catalogBytes)
//	msg := tr.T("fr", "form.greeting", "name", "Alice")
//
// As the validation message backend, Formatter adapts a language to the
// validator package's Formatter shape, using the English default template as
// the flat catalog key:
//
//	lang := tr.MatchLanguage(r.Header.Get("Accept-Language"))
//	age := validator.NewIntChain(validator.WithFormatter(tr.Formatter(lang))).
//		GreaterOrEqualThan(18)
//
// Untranslated templates render as-is, so the package is safe to leave
// entirely unconfigured: everything falls back to the built-in English.
package i18n
