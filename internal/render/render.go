// Package render turns type models into formatted PHP source text.
package render

import (
	"strings"

	"phpgen/internal/model"
)

// NameShortener maps a fully or partially qualified name to the short
// form valid in the enclosing namespace context.
type NameShortener interface {
	Unresolve(name string) string
}

// Fragment is the rendering capability shared by all member entities.
// The layout algorithm sees members only through it.
type Fragment interface {
	Render() string
}

// Class renders a type model to source text. The transformation is pure
// and idempotent: the model is never mutated and repeated calls yield
// byte-identical output. When ns is nil the namespace bound to the model
// is consulted; when neither exists, names render exactly as stored.
func Class(t *model.ClassType, ns NameShortener) string {
	if ns == nil {
		if bound := t.Namespace(); bound != nil {
			ns = bound
		}
	}
	shorten := func(name string) string {
		if ns == nil {
			return name
		}
		return ns.Unresolve(name)
	}

	var b strings.Builder
	b.WriteString(model.FormatDocComment(t.Comment()))
	if t.IsAbstract() {
		b.WriteString("abstract ")
	}
	if t.IsFinal() {
		b.WriteString("final ")
	}
	named := t.Name() != ""
	if named {
		b.WriteString(string(t.Kind()) + " " + t.Name() + " ")
	}
	if ext := t.Extends().List(); len(ext) > 0 {
		b.WriteString("extends " + joinShortened(ext, shorten) + " ")
	}
	if impl := t.Implements(); len(impl) > 0 {
		b.WriteString("implements " + joinShortened(impl, shorten) + " ")
	}
	// Named types break before the brace; anonymous bodies keep header
	// and brace on one line for inline embedding.
	if named {
		b.WriteString("\n")
	}
	b.WriteString("{\n")
	b.WriteString(model.Indent(body(t, shorten), 1))
	b.WriteString("}")

	out := normalize(b.String())
	if named {
		out += "\n"
	}
	return out
}

// body assembles the four member groups in fixed order, each separated
// from the next by one blank line: trait uses, constants, properties,
// methods. Within a group, insertion order rules.
func body(t *model.ClassType, shorten func(string) string) string {
	var groups []string

	if traits := t.Traits(); len(traits) > 0 {
		var b strings.Builder
		for _, tr := range traits {
			b.WriteString("use " + shorten(tr.Name))
			if len(tr.Resolutions) == 0 {
				b.WriteString(";\n")
				continue
			}
			b.WriteString(" {\n")
			for _, r := range tr.Resolutions {
				b.WriteString("\t" + r + ";\n")
			}
			b.WriteString("}\n")
		}
		groups = append(groups, b.String())
	}

	if consts := t.Constants(); len(consts) > 0 {
		groups = append(groups, joinFragments(consts, ""))
	}
	if props := t.Properties(); len(props) > 0 {
		groups = append(groups, joinFragments(props, "\n"))
	}
	if methods := t.Methods(); len(methods) > 0 {
		groups = append(groups, joinFragments(methods, "\n"))
	}

	return strings.Join(groups, "\n")
}

// joinFragments renders each member through the shared Fragment
// capability. Fragments end with a newline, so a "\n" separator yields
// one blank line between entries.
func joinFragments[F Fragment](items []F, sep string) string {
	rendered := make([]string, len(items))
	for i, item := range items {
		rendered[i] = item.Render()
	}
	return strings.Join(rendered, sep)
}

func joinShortened(names []string, shorten func(string) string) string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = shorten(name)
	}
	return strings.Join(out, ", ")
}

// normalize strips trailing whitespace from every line and drops leading
// and trailing blank lines.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
