package model

import "strings"

// Namespace is the enclosing namespace context a type renders inside.
// Types and methods hold it as a lookup-only reference for name
// shortening; they never own it.
type Namespace struct {
	name string
	uses *orderedMap[string] // alias -> fully qualified name
}

// NewNamespace creates a namespace context. An empty name denotes the
// global namespace.
func NewNamespace(name string) (*Namespace, error) {
	name = strings.TrimPrefix(name, `\`)
	if name != "" && !validNSIdent(name) {
		return nil, validationErrorf("value \"%s\" is not a valid namespace name", name)
	}
	return &Namespace{name: name, uses: newOrderedMap[string]()}, nil
}

func (n *Namespace) Name() string {
	return n.name
}

// AddUse registers a use alias. An empty alias defaults to the last
// segment of the imported name.
func (n *Namespace) AddUse(name, alias string) error {
	name = strings.TrimPrefix(name, `\`)
	if !validNSIdent(name) {
		return validationErrorf("value \"%s\" is not a valid use target", name)
	}
	if alias == "" {
		segments := strings.Split(name, `\`)
		alias = segments[len(segments)-1]
	}
	if !validIdent(alias) {
		return validationErrorf("value \"%s\" is not a valid use alias", alias)
	}
	n.uses.upsert(alias, name)
	return nil
}

// Uses returns alias -> target pairs in registration order.
func (n *Namespace) Uses() map[string]string {
	out := make(map[string]string, n.uses.len())
	for _, alias := range n.uses.ordered() {
		target, _ := n.uses.get(alias)
		out[alias] = target
	}
	return out
}

// UseOrder returns the aliases in registration order.
func (n *Namespace) UseOrder() []string {
	return n.uses.ordered()
}

// Unresolve maps a fully or partially qualified name to the shortest
// form valid inside this namespace. Best effort: an exact use match
// wins, then a use-prefix match, then the current namespace prefix is
// stripped; unknown names pass through with any leading separator
// trimmed.
func (n *Namespace) Unresolve(name string) string {
	trimmed := strings.TrimPrefix(name, `\`)
	for _, alias := range n.uses.ordered() {
		target, _ := n.uses.get(alias)
		if strings.EqualFold(trimmed, target) {
			return alias
		}
		prefix := target + `\`
		if len(trimmed) > len(prefix) && strings.EqualFold(trimmed[:len(prefix)], prefix) {
			return alias + `\` + trimmed[len(prefix):]
		}
	}
	if n.name != "" {
		prefix := n.name + `\`
		if strings.HasPrefix(trimmed, prefix) {
			return trimmed[len(prefix):]
		}
	}
	return trimmed
}

// unresolveWith shortens name against ns, or returns it verbatim when no
// context is bound.
func unresolveWith(ns *Namespace, name string) string {
	if ns == nil {
		return name
	}
	return ns.Unresolve(name)
}
