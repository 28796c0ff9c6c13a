// Package recipe translates a tagged-document tree into the canonical,
// strongly-typed build-recipe model consumed by the resolver and build
// system. The translation is a single recursive walk over the document:
// scalar metadata is read directly, build settings are accumulated per
// platform qualifier, and sub-packages recurse into the same entry point.
//
// Parsing is fail-fast: the first malformed value aborts the whole walk,
// including the enclosing package when the failure occurs inside an inline
// sub-package. Unrecognized field names are never an error so that older
// tools keep accepting recipes written for newer ones.
package recipe
