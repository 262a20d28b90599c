package model

// Supertypes is the extends clause of a type: either the single parent
// class of a class, or the list of interfaces an interface extends.
type Supertypes struct {
	names    []string
	multiple bool
}

// SingleSupertype builds the single-parent variant.
func SingleSupertype(name string) Supertypes {
	return Supertypes{names: []string{name}}
}

// MultipleSupertypes builds the interface-list variant.
func MultipleSupertypes(names ...string) Supertypes {
	return Supertypes{names: append([]string(nil), names...), multiple: true}
}

// List returns the supertype names in declaration order regardless of
// variant. Renderers only ever go through List.
func (s Supertypes) List() []string {
	return append([]string(nil), s.names...)
}

// IsZero reports whether no supertype is set.
func (s Supertypes) IsZero() bool {
	return len(s.names) == 0
}

// IsMultiple reports whether the clause holds an interface list rather
// than a single parent.
func (s Supertypes) IsMultiple() bool {
	return s.multiple
}

// add appends a name, promoting a single parent to the list variant.
func (s Supertypes) add(name string) Supertypes {
	names := append(s.List(), name)
	return Supertypes{names: names, multiple: s.multiple || len(names) > 1}
}
