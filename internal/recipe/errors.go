package recipe

import (
	"fmt"

	"github.com/vk/recipekit/internal/document"
)

// ValidationError reports a malformed or missing value at a specific node.
type ValidationError struct {
	Location document.Location
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

func validationErrorf(loc document.Location, format string, args ...any) error {
	return &ValidationError{Location: loc, Message: fmt.Sprintf(format, args...)}
}

// MissingFieldError reports a recipe-level required field that never
// appeared in the document. It carries no line because there is no node to
// point at.
type MissingFieldError struct {
	File  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field %q is missing", e.File, e.Field)
}

// DuplicateDependencyError reports a dependency declared more than once
// within one settings scope.
type DuplicateDependencyError struct {
	Location document.Location
	Name     string
}

func (e *DuplicateDependencyError) Error() string {
	return fmt.Sprintf("%s: dependency %q is declared more than once in this scope", e.Location, e.Name)
}
