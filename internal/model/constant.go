package model

import "strings"

// Constant models a class constant.
type Constant struct {
	name       string
	value      any
	visibility Visibility
	comment    string
}

// NewConstant creates a constant with the given value.
func NewConstant(name string, value any) *Constant {
	return &Constant{name: name, value: value}
}

func (c *Constant) Name() string {
	return c.name
}

func (c *Constant) Value() any {
	return c.value
}

func (c *Constant) SetValue(v any) *Constant {
	c.value = v
	return c
}

func (c *Constant) Visibility() Visibility {
	return c.visibility
}

func (c *Constant) SetVisibility(v Visibility) *Constant {
	c.visibility = v
	return c
}

func (c *Constant) Comment() string {
	return c.comment
}

func (c *Constant) SetComment(comment string) *Constant {
	c.comment = comment
	return c
}

// Render returns the constant declaration fragment, terminator included.
// The visibility segment is omitted when unset.
func (c *Constant) Render() string {
	var b strings.Builder
	b.WriteString(FormatDocComment(c.comment))
	if c.visibility != "" {
		b.WriteString(string(c.visibility) + " ")
	}
	b.WriteString("const " + c.name + " = " + Dump(c.value) + ";\n")
	return b.String()
}
