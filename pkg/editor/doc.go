// Package editor buffers user-submitted form values against a target object,
// committing them back only when every field validates.
//
// # Architecture
//
// A Property holds three things per field: the raw input as last submitted,
// the last value the validating function accepted, and the error message of
// the last rejection. Setting a property never fails for invalid input; the
// failure is stored so the form layer can surface it next to the field.
//
// An Editor aggregates named properties and connects each to an attribute of
// the target through an explicit accessor/mutator pair (Field). There is no
// reflection: the caller states at bind time how each field is read and
// written. Commit validates the whole requested set before the first write,
// so the target is mutated all-or-nothing.
//
// # Usage
//
//	profile := struct {
//		Name string
//		Age  int
//	}{Name: "gopher", Age: 12}
//
//	ed := editor.New().
//		Bind("name", editor.Var(&profile.Name)).
//		Bind("age", editor.Var(&profile.Age))
//
//	ed.Property("name").Validate(validator.NewStringChain(validator.WithStrip()).NotEmpty().Func())
//	ed.Property("age").Validate(validator.NewIntChain().GreaterOrEqualThan(0).Func())
//
//	ed.Set("name", r.FormValue("name"))
//	ed.Set("age", r.FormValue("age"))
//
//	if !ed.Commit() {
//		// render ed.Property("age").Error() etc. back to the user
//	}
//
// One editor instance belongs to one form submission flow. Nothing in the
// package locks; concurrent use of a single editor is the caller's problem.
package editor
