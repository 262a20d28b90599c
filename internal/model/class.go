package model

// ClassType models a single class, interface, or trait definition. It is
// mutated exclusively through its accessors. Batch setters validate
// their whole input before committing anything, so a rejected call
// leaves the model untouched.
type ClassType struct {
	name       string
	kind       Kind
	final      bool
	abstract   bool
	extends    Supertypes
	implements []string
	traits     *orderedMap[[]string]
	consts     *orderedMap[*Constant]
	props      *orderedMap[*Property]
	methods    *orderedMap[*Method]
	comment    string
	namespace  *Namespace
}

// TraitUse is one use clause together with its conflict-resolution
// directives. Directives are free-form text in final syntax form and are
// carried verbatim into the rendered block.
type TraitUse struct {
	Name        string
	Resolutions []string
}

// NewClass creates a class model. An empty name yields the anonymous
// form used for inline type bodies.
func NewClass(name string) (*ClassType, error) {
	return NewClassIn(name, nil)
}

// NewClassIn creates a class model bound to a namespace context. The
// binding is lookup-only; the class does not own the namespace.
func NewClassIn(name string, ns *Namespace) (*ClassType, error) {
	c := &ClassType{
		kind:      KindClass,
		traits:    newOrderedMap[[]string](),
		consts:    newOrderedMap[*Constant](),
		props:     newOrderedMap[*Property](),
		methods:   newOrderedMap[*Method](),
		namespace: ns,
	}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ClassType) Name() string {
	return c.name
}

// SetName sets the type name, which must be a bare identifier. An empty
// name switches to the anonymous form.
func (c *ClassType) SetName(name string) error {
	if name != "" && !validIdent(name) {
		return validationErrorf("value \"%s\" is not a valid class name", name)
	}
	c.name = name
	return nil
}

func (c *ClassType) Kind() Kind {
	return c.kind
}

func (c *ClassType) SetKind(kind Kind) error {
	switch kind {
	case KindClass, KindInterface, KindTrait:
		c.kind = kind
		return nil
	}
	return validationErrorf("value \"%s\" is not a valid type kind", string(kind))
}

func (c *ClassType) IsFinal() bool {
	return c.final
}

func (c *ClassType) SetFinal(final bool) {
	c.final = final
}

func (c *ClassType) IsAbstract() bool {
	return c.abstract
}

func (c *ClassType) SetAbstract(abstract bool) {
	c.abstract = abstract
}

func (c *ClassType) Comment() string {
	return c.comment
}

func (c *ClassType) SetComment(comment string) {
	c.comment = comment
}

// Namespace returns the bound namespace context, or nil.
func (c *ClassType) Namespace() *Namespace {
	return c.namespace
}

func (c *ClassType) Extends() Supertypes {
	return c.extends
}

// SetExtends replaces the extends clause. One name yields the single
// variant, several the list variant; no names clears the clause.
func (c *ClassType) SetExtends(names ...string) error {
	for _, name := range names {
		if !validNSIdent(name) {
			return validationErrorf("value \"%s\" is not a valid class name", name)
		}
	}
	if len(names) == 1 {
		c.extends = SingleSupertype(names[0])
	} else {
		c.extends = MultipleSupertypes(names...)
	}
	return nil
}

// AddExtend appends a supertype, promoting a single parent to the list
// variant when needed.
func (c *ClassType) AddExtend(name string) error {
	if !validNSIdent(name) {
		return validationErrorf("value \"%s\" is not a valid class name", name)
	}
	c.extends = c.extends.add(name)
	return nil
}

func (c *ClassType) Implements() []string {
	return append([]string(nil), c.implements...)
}

func (c *ClassType) SetImplements(names ...string) error {
	for _, name := range names {
		if !validNSIdent(name) {
			return validationErrorf("value \"%s\" is not a valid interface name", name)
		}
	}
	c.implements = append([]string(nil), names...)
	return nil
}

func (c *ClassType) AddImplement(name string) error {
	if !validNSIdent(name) {
		return validationErrorf("value \"%s\" is not a valid interface name", name)
	}
	c.implements = append(c.implements, name)
	return nil
}

// Traits returns the trait-use clauses in insertion order.
func (c *ClassType) Traits() []TraitUse {
	out := make([]TraitUse, 0, c.traits.len())
	for _, name := range c.traits.ordered() {
		resolutions, _ := c.traits.get(name)
		out = append(out, TraitUse{Name: name, Resolutions: append([]string(nil), resolutions...)})
	}
	return out
}

// SetTraits replaces the full trait-use set, each name mapped to an
// empty resolution list.
func (c *ClassType) SetTraits(names ...string) error {
	for _, name := range names {
		if !validNSIdent(name) {
			return validationErrorf("value \"%s\" is not a valid trait name", name)
		}
	}
	c.traits.reset()
	for _, name := range names {
		c.traits.upsert(name, nil)
	}
	return nil
}

// AddTrait sets or replaces a trait use together with its resolution
// directives. Directives are not syntax-checked.
func (c *ClassType) AddTrait(name string, resolutions ...string) error {
	if !validNSIdent(name) {
		return validationErrorf("value \"%s\" is not a valid trait name", name)
	}
	c.traits.upsert(name, append([]string(nil), resolutions...))
	return nil
}

// Constants returns the constants in insertion order.
func (c *ClassType) Constants() []*Constant {
	return c.consts.values()
}

// SetConstants replaces the constant set. Entries are keyed by their own
// declared name; duplicates overwrite silently in insertion order.
func (c *ClassType) SetConstants(consts []*Constant) error {
	for _, cst := range consts {
		if cst == nil {
			return validationErrorf("constant entries must not be nil")
		}
	}
	c.consts.reset()
	for _, cst := range consts {
		c.consts.upsert(cst.Name(), cst)
	}
	return nil
}

// AddConstant creates, stores and returns a constant. Adding a name
// twice replaces the value and keeps the original position.
func (c *ClassType) AddConstant(name string, value any) *Constant {
	cst := NewConstant(name, value)
	c.consts.upsert(name, cst)
	return cst
}

// Properties returns the properties in insertion order.
func (c *ClassType) Properties() []*Property {
	return c.props.values()
}

func (c *ClassType) SetProperties(props []*Property) error {
	for _, p := range props {
		if p == nil {
			return validationErrorf("property entries must not be nil")
		}
	}
	c.props.reset()
	for _, p := range props {
		c.props.upsert(p.Name(), p)
	}
	return nil
}

// AddProperty creates, stores and returns a property. The optional
// value becomes its default; omitted or nil means none.
func (c *ClassType) AddProperty(name string, value ...any) *Property {
	p := NewProperty(name)
	if len(value) > 0 {
		p.SetValue(value[0])
	}
	c.props.upsert(name, p)
	return p
}

// GetProperty returns the named property.
func (c *ClassType) GetProperty(name string) (*Property, error) {
	p, ok := c.props.get(name)
	if !ok {
		return nil, notFoundErrorf("property %q does not exist", name)
	}
	return p, nil
}

// Methods returns the methods in insertion order.
func (c *ClassType) Methods() []*Method {
	return c.methods.values()
}

// SetMethods replaces the method set. Each method is bound to this
// type's namespace context as a side effect.
func (c *ClassType) SetMethods(methods []*Method) error {
	for _, m := range methods {
		if m == nil {
			return validationErrorf("method entries must not be nil")
		}
	}
	c.methods.reset()
	for _, m := range methods {
		m.bindNamespace(c.namespace)
		c.methods.upsert(m.Name(), m)
	}
	return nil
}

// AddMethod creates, stores and returns a method bound to this type's
// namespace context. On an interface the method is bodiless; otherwise
// its visibility defaults to public.
func (c *ClassType) AddMethod(name string) *Method {
	m := NewMethod(name)
	m.bindNamespace(c.namespace)
	if c.kind == KindInterface {
		m.SetHasBody(false)
	} else {
		m.SetVisibility(VisibilityPublic)
	}
	c.methods.upsert(name, m)
	return m
}

// GetMethod returns the named method.
func (c *ClassType) GetMethod(name string) (*Method, error) {
	m, ok := c.methods.get(name)
	if !ok {
		return nil, notFoundErrorf("method %q does not exist", name)
	}
	return m, nil
}
