package model

import (
	"regexp"

	"github.com/cockroachdb/errors"
)

// Error kinds raised by the mutation and lookup surface. Callers detect
// them with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

var (
	identRe   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	nsIdentRe = regexp.MustCompile(`^\\?[A-Za-z_][A-Za-z0-9_]*(\\[A-Za-z_][A-Za-z0-9_]*)*$`)
)

// validIdent reports whether s is a bare identifier with no namespace
// separators.
func validIdent(s string) bool {
	return identRe.MatchString(s)
}

// validNSIdent reports whether s is a namespace identifier: one or more
// identifier segments separated by backslashes, optionally prefixed with
// a backslash to denote a fully qualified name.
func validNSIdent(s string) bool {
	return nsIdentRe.MatchString(s)
}

func validationErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrValidation)
}

func notFoundErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrNotFound)
}
