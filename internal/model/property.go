package model

import "strings"

// Property models a class property. A nil value means the default
// segment is omitted; any non-nil value, including zero values, renders
// as "= <literal>".
type Property struct {
	name       string
	value      any
	static     bool
	visibility Visibility
	comment    string
}

// NewProperty creates a property with no default value.
func NewProperty(name string) *Property {
	return &Property{name: name}
}

func (p *Property) Name() string {
	return p.name
}

func (p *Property) Value() any {
	return p.value
}

func (p *Property) SetValue(v any) *Property {
	p.value = v
	return p
}

func (p *Property) IsStatic() bool {
	return p.static
}

func (p *Property) SetStatic(static bool) *Property {
	p.static = static
	return p
}

func (p *Property) Visibility() Visibility {
	return p.visibility
}

func (p *Property) SetVisibility(v Visibility) *Property {
	p.visibility = v
	return p
}

func (p *Property) Comment() string {
	return p.comment
}

func (p *Property) SetComment(comment string) *Property {
	p.comment = comment
	return p
}

// Render returns the property declaration fragment. Unset visibility
// renders as public.
func (p *Property) Render() string {
	var b strings.Builder
	b.WriteString(FormatDocComment(p.comment))
	vis := p.visibility
	if vis == "" {
		vis = VisibilityPublic
	}
	b.WriteString(string(vis))
	if p.static {
		b.WriteString(" static")
	}
	b.WriteString(" $" + p.name)
	if p.value != nil {
		b.WriteString(" = " + Dump(p.value))
	}
	b.WriteString(";\n")
	return b.String()
}
