// Package model defines the in-memory representation of PHP class-like
// type definitions: the type itself, its member entities, and the
// namespace context used for name shortening.
package model

// Kind represents the category of a type definition.
type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindTrait     Kind = "trait"
)

// Visibility represents member visibility. The zero value means unset;
// renderers substitute the language default where one applies.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
)
