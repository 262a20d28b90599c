package model

import "strings"

// FormatDocComment formats a doc comment as a PHPDoc block ending with a
// newline. Empty input contributes nothing.
func FormatDocComment(comment string) string {
	if comment == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSpace(comment), "\n")
	if len(lines) == 1 {
		return "/** " + strings.TrimSpace(lines[0]) + " */\n"
	}
	var b strings.Builder
	b.WriteString("/**\n")
	for _, line := range lines {
		b.WriteString(" * " + strings.TrimRight(line, " \t") + "\n")
	}
	b.WriteString(" */\n")
	return b.String()
}

// Indent prefixes every non-blank line of s with level tabs.
func Indent(s string, level int) string {
	if s == "" {
		return ""
	}
	prefix := strings.Repeat("\t", level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
