package model

import "strings"

// Parameter models a method parameter.
type Parameter struct {
	name       string
	typeHint   string
	byRef      bool
	defaultVal any
	hasDefault bool
}

// NewParameter creates a parameter with no type hint and no default.
func NewParameter(name string) *Parameter {
	return &Parameter{name: name}
}

func (p *Parameter) Name() string {
	return p.name
}

func (p *Parameter) TypeHint() string {
	return p.typeHint
}

func (p *Parameter) SetTypeHint(hint string) *Parameter {
	p.typeHint = hint
	return p
}

func (p *Parameter) IsByRef() bool {
	return p.byRef
}

func (p *Parameter) SetByRef(byRef bool) *Parameter {
	p.byRef = byRef
	return p
}

// SetDefault sets the default value. An explicit nil renders as null;
// parameters without a default render no value segment at all.
func (p *Parameter) SetDefault(v any) *Parameter {
	p.defaultVal = v
	p.hasDefault = true
	return p
}

func (p *Parameter) HasDefault() bool {
	return p.hasDefault
}

func (p *Parameter) Default() any {
	return p.defaultVal
}

// render formats the parameter inside a signature, shortening the type
// hint against ns when one is bound.
func (p *Parameter) render(ns *Namespace) string {
	var b strings.Builder
	if p.typeHint != "" {
		b.WriteString(unresolveWith(ns, p.typeHint) + " ")
	}
	if p.byRef {
		b.WriteString("&")
	}
	b.WriteString("$" + p.name)
	if p.hasDefault {
		b.WriteString(" = " + Dump(p.defaultVal))
	}
	return b.String()
}
