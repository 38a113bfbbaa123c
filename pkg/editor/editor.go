package editor

// Field is the accessor/mutator pair connecting one editor property to an
// attribute of the target. Both functions must be non-nil: the editor reads
// through Get at bind time and writes through Set at commit time.
type Field struct {
	Get func() any
	Set func(any)
}

// Var builds a Field over a plain variable, for targets whose attributes are
// ordinary struct fields. The validated value's dynamic type must be T (or
// the write panics), so pair it with a validator producing that type.
func Var[T any](p *T) Field {
	return Field{
		Get: func() any { return *p },
		Set: func(v any) { *p = v.(T) },
	}
}

// Editor buffers form input against a target object. Each bound field gets a
// Property seeded with the target's current value; Commit writes the valid
// values back only when every relevant property validates. One editor serves
// one form submission flow; it is not safe for concurrent use.
type Editor struct {
	fields map[string]Field
	props  map[string]*Property
	order  []string
}

// New creates an empty editor. Bind fields to it before use.
func New() *Editor {
	return &Editor{
		fields: make(map[string]Field),
		props:  make(map[string]*Property),
	}
}

// Bind attaches a named field, reading its current value into a fresh
// property, and returns the editor for chaining. Binding order is the
// default commit order. Rebinding a name replaces the previous field and
// property.
func (e *Editor) Bind(name string, field Field) *Editor {
	if _, exists := e.fields[name]; !exists {
		e.order = append(e.order, name)
	}
	e.fields[name] = field
	e.props[name] = NewProperty(field.Get())
	return e
}

// Property returns the named property, or nil if the name was never bound.
func (e *Editor) Property(name string) *Property {
	return e.props[name]
}

// Set feeds a raw input value into the named property. Setting an unbound
// name is a no-op. The error return mirrors Property.Set: validation
// failures land in the property, anything else comes back.
func (e *Editor) Set(name string, input any) error {
	p := e.props[name]
	if p == nil {
		return nil
	}
	return p.Set(input)
}

// Names returns the bound field names in binding order.
func (e *Editor) Names() []string {
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

// IsValidated reports whether every named property is free of validation
// errors. With no names it checks every bound field. Unknown names count as
// not validated.
func (e *Editor) IsValidated(names ...string) bool {
	if len(names) == 0 {
		names = e.order
	}
	for _, name := range names {
		p := e.props[name]
		if p == nil || p.err != nil {
			return false
		}
	}
	return true
}

// Commit writes the named properties' valid values back to the target, but
// only if all of them validate. With no names the full bound set is
// committed, in binding order. It returns the validity; on false nothing was
// written.
func (e *Editor) Commit(names ...string) bool {
	return e.CommitValidating(names, nil)
}

// CommitValidating is Commit with an extra set of names that must validate
// without being written back. Validation of the whole union happens before
// the first write, so a commit is all-or-nothing.
func (e *Editor) CommitValidating(commit []string, alsoValidate []string) bool {
	if len(commit) == 0 {
		commit = e.order
	}

	if !e.IsValidated(append(append([]string{}, commit...), alsoValidate...)...) {
		return false
	}

	for _, name := range commit {
		e.fields[name].Set(e.props[name].value)
	}
	return true
}
