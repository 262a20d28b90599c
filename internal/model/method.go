package model

import "strings"

// Method models a class or interface method. Methods are bound to the
// namespace context of their owning type at insertion time so that
// parameter and return type hints can be shortened at render time.
type Method struct {
	name       string
	visibility Visibility
	static     bool
	abstract   bool
	final      bool
	params     []*Parameter
	returnType string
	body       string
	hasBody    bool
	comment    string
	namespace  *Namespace
}

// NewMethod creates a method with an empty body. Use SetHasBody(false)
// for bodiless signatures.
func NewMethod(name string) *Method {
	return &Method{name: name, hasBody: true}
}

func (m *Method) Name() string {
	return m.name
}

func (m *Method) Visibility() Visibility {
	return m.visibility
}

func (m *Method) SetVisibility(v Visibility) *Method {
	m.visibility = v
	return m
}

func (m *Method) IsStatic() bool {
	return m.static
}

func (m *Method) SetStatic(static bool) *Method {
	m.static = static
	return m
}

func (m *Method) IsAbstract() bool {
	return m.abstract
}

func (m *Method) SetAbstract(abstract bool) *Method {
	m.abstract = abstract
	return m
}

func (m *Method) IsFinal() bool {
	return m.final
}

func (m *Method) SetFinal(final bool) *Method {
	m.final = final
	return m
}

func (m *Method) ReturnType() string {
	return m.returnType
}

func (m *Method) SetReturnType(t string) *Method {
	m.returnType = t
	return m
}

// SetBody sets the body text and marks the method as having one.
func (m *Method) SetBody(body string) *Method {
	m.body = body
	m.hasBody = true
	return m
}

func (m *Method) Body() string {
	return m.body
}

// SetHasBody toggles between a full definition and a bodiless signature
// (interface methods, abstract methods).
func (m *Method) SetHasBody(hasBody bool) *Method {
	m.hasBody = hasBody
	return m
}

func (m *Method) HasBody() bool {
	return m.hasBody
}

func (m *Method) Comment() string {
	return m.comment
}

func (m *Method) SetComment(comment string) *Method {
	m.comment = comment
	return m
}

// AddParameter creates, appends and returns a parameter.
func (m *Method) AddParameter(name string) *Parameter {
	p := NewParameter(name)
	m.params = append(m.params, p)
	return p
}

func (m *Method) Parameters() []*Parameter {
	return append([]*Parameter(nil), m.params...)
}

func (m *Method) SetParameters(params []*Parameter) *Method {
	m.params = append([]*Parameter(nil), params...)
	return m
}

// bindNamespace attaches the lookup-only namespace context. The method
// does not own the namespace.
func (m *Method) bindNamespace(ns *Namespace) {
	m.namespace = ns
}

// Render returns the full method fragment: doc comment, signature and,
// unless bodiless, the brace-delimited body indented one level.
func (m *Method) Render() string {
	var b strings.Builder
	b.WriteString(FormatDocComment(m.comment))
	if m.abstract {
		b.WriteString("abstract ")
	}
	if m.final {
		b.WriteString("final ")
	}
	if m.visibility != "" {
		b.WriteString(string(m.visibility) + " ")
	}
	if m.static {
		b.WriteString("static ")
	}
	b.WriteString("function " + m.name + "(")
	for i, p := range m.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.render(m.namespace))
	}
	b.WriteString(")")
	if m.returnType != "" {
		b.WriteString(": " + unresolveWith(m.namespace, m.returnType))
	}
	if !m.hasBody {
		b.WriteString(";\n")
		return b.String()
	}
	b.WriteString("\n{\n")
	if m.body != "" {
		b.WriteString(Indent(strings.TrimRight(m.body, "\n"), 1) + "\n")
	}
	b.WriteString("}\n")
	return b.String()
}
