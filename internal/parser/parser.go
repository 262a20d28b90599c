// Package parser reads YAML type-definition files and builds type
// models from them.
package parser

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"phpgen/internal/model"
)

// File is the top-level shape of a definition file.
type File struct {
	Namespace string     `yaml:"namespace"`
	Uses      []Use      `yaml:"uses"`
	Classes   []ClassDef `yaml:"classes"`
}

// Use declares a namespace import with an optional alias.
type Use struct {
	Name  string `yaml:"name"`
	Alias string `yaml:"alias"`
}

// ClassDef describes one class, interface, or trait.
type ClassDef struct {
	Name       string        `yaml:"name"`
	Kind       string        `yaml:"kind"`
	Final      bool          `yaml:"final"`
	Abstract   bool          `yaml:"abstract"`
	Comment    string        `yaml:"comment"`
	Extends    StringList    `yaml:"extends"`
	Implements []string      `yaml:"implements"`
	Traits     []TraitDef    `yaml:"traits"`
	Constants  []ConstantDef `yaml:"constants"`
	Properties []PropertyDef `yaml:"properties"`
	Methods    []MethodDef   `yaml:"methods"`
}

// TraitDef describes a trait use with optional resolution directives.
type TraitDef struct {
	Name        string   `yaml:"name"`
	Resolutions []string `yaml:"resolutions"`
}

// ConstantDef describes a class constant.
type ConstantDef struct {
	Name       string `yaml:"name"`
	Value      any    `yaml:"value"`
	Visibility string `yaml:"visibility"`
	Comment    string `yaml:"comment"`
}

// PropertyDef describes a property. A null (or absent) value means the
// property renders without a default segment.
type PropertyDef struct {
	Name       string `yaml:"name"`
	Value      any    `yaml:"value"`
	Static     bool   `yaml:"static"`
	Visibility string `yaml:"visibility"`
	Comment    string `yaml:"comment"`
}

// MethodDef describes a method.
type MethodDef struct {
	Name       string     `yaml:"name"`
	Visibility string     `yaml:"visibility"`
	Static     bool       `yaml:"static"`
	Abstract   bool       `yaml:"abstract"`
	Final      bool       `yaml:"final"`
	ReturnType string     `yaml:"returnType"`
	Body       string     `yaml:"body"`
	Comment    string     `yaml:"comment"`
	Params     []ParamDef `yaml:"params"`
}

// ParamDef describes a method parameter. A null (or absent) default
// means the parameter has none.
type ParamDef struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	ByRef   bool   `yaml:"byRef"`
	Default any    `yaml:"default"`
}

// StringList accepts either a single scalar or a sequence of strings in
// YAML, mirroring the single-or-many shape of the extends clause.
type StringList []string

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	case yaml.SequenceNode:
		var ss []string
		if err := node.Decode(&ss); err != nil {
			return err
		}
		*l = StringList(ss)
		return nil
	}
	return errors.Newf("line %d: expected a string or a list of strings", node.Line)
}

// Result holds the models built from one definition file.
type Result struct {
	Namespace *model.Namespace
	Classes   []*model.ClassType
}

// Parser builds type models from definition files.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a single definition file.
func (p *Parser) ParseFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	res, err := p.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return res, nil
}

// Parse builds models from raw definition data.
func (p *Parser) Parse(data []byte) (*Result, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decoding definition file")
	}

	var ns *model.Namespace
	if f.Namespace != "" || len(f.Uses) > 0 {
		var err error
		ns, err = model.NewNamespace(f.Namespace)
		if err != nil {
			return nil, err
		}
		for _, u := range f.Uses {
			if err := ns.AddUse(u.Name, u.Alias); err != nil {
				return nil, errors.Wrapf(err, "use %q", u.Name)
			}
		}
	}

	result := &Result{Namespace: ns}
	for _, def := range f.Classes {
		cls, err := buildClass(def, ns)
		if err != nil {
			return nil, errors.Wrapf(err, "class %q", def.Name)
		}
		result.Classes = append(result.Classes, cls)
	}
	return result, nil
}

func buildClass(def ClassDef, ns *model.Namespace) (*model.ClassType, error) {
	cls, err := model.NewClassIn(def.Name, ns)
	if err != nil {
		return nil, err
	}
	if def.Kind != "" {
		if err := cls.SetKind(model.Kind(def.Kind)); err != nil {
			return nil, err
		}
	}
	cls.SetFinal(def.Final)
	cls.SetAbstract(def.Abstract)
	cls.SetComment(def.Comment)

	if len(def.Extends) > 0 {
		if err := cls.SetExtends(def.Extends...); err != nil {
			return nil, err
		}
	}
	if len(def.Implements) > 0 {
		if err := cls.SetImplements(def.Implements...); err != nil {
			return nil, err
		}
	}
	for _, t := range def.Traits {
		if err := cls.AddTrait(t.Name, t.Resolutions...); err != nil {
			return nil, err
		}
	}

	for _, d := range def.Constants {
		vis, err := parseVisibility(d.Visibility)
		if err != nil {
			return nil, errors.Wrapf(err, "constant %q", d.Name)
		}
		cls.AddConstant(d.Name, d.Value).
			SetVisibility(vis).
			SetComment(d.Comment)
	}

	for _, d := range def.Properties {
		vis, err := parseVisibility(d.Visibility)
		if err != nil {
			return nil, errors.Wrapf(err, "property %q", d.Name)
		}
		prop := cls.AddProperty(d.Name).
			SetStatic(d.Static).
			SetVisibility(vis).
			SetComment(d.Comment)
		if d.Value != nil {
			prop.SetValue(d.Value)
		}
	}

	for _, d := range def.Methods {
		if err := buildMethod(cls, d); err != nil {
			return nil, errors.Wrapf(err, "method %q", d.Name)
		}
	}
	return cls, nil
}

func buildMethod(cls *model.ClassType, def MethodDef) error {
	m := cls.AddMethod(def.Name)
	if def.Visibility != "" {
		vis, err := parseVisibility(def.Visibility)
		if err != nil {
			return err
		}
		m.SetVisibility(vis)
	}
	m.SetStatic(def.Static)
	m.SetAbstract(def.Abstract)
	m.SetFinal(def.Final)
	m.SetComment(def.Comment)
	if def.ReturnType != "" {
		m.SetReturnType(def.ReturnType)
	}
	// Interface methods stay bodiless even when a body is declared;
	// abstract class methods drop theirs too.
	if def.Body != "" && cls.Kind() != model.KindInterface && !def.Abstract {
		m.SetBody(def.Body)
	}
	if def.Abstract {
		m.SetHasBody(false)
	}
	for _, pd := range def.Params {
		param := m.AddParameter(pd.Name).SetByRef(pd.ByRef)
		if pd.Type != "" {
			param.SetTypeHint(pd.Type)
		}
		if pd.Default != nil {
			param.SetDefault(pd.Default)
		}
	}
	return nil
}

func parseVisibility(s string) (model.Visibility, error) {
	switch s {
	case "":
		return "", nil
	case "public":
		return model.VisibilityPublic, nil
	case "protected":
		return model.VisibilityProtected, nil
	case "private":
		return model.VisibilityPrivate, nil
	}
	return "", errors.Mark(errors.Newf("value \"%s\" is not a valid visibility", s), model.ErrValidation)
}
