// Package document defines the generic tagged-document tree consumed by the
// recipe walker. A document is a tree of named nodes; each node carries an
// ordered list of scalar values, named attributes, child nodes, and the
// source location it originated from.
//
// The surface syntax of recipe files is parsed by an external tool that
// emits document trees in a JSON wire form. This package only decodes that
// wire form; it never tokenizes recipe source text itself.
package document
