package document

import "fmt"

// Location identifies where a node appeared in its source file. It is used
// for diagnostics only and never influences parsing decisions.
type Location struct {
	File string
	Line int
}

// String renders the location in the conventional "file(line)" form.
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("(%d)", l.Line)
	}
	return fmt.Sprintf("%s(%d)", l.File, l.Line)
}

// Node is one tag of a tagged document. Node identity is purely structural;
// nodes are never indexed or referenced globally.
type Node struct {
	// Name is the tag name, possibly namespaced (e.g. "x:ddoxFilterArgs").
	// An empty name marks an anonymous tag.
	Name string

	// Values are the node's direct scalar values, in document order.
	Values []Value

	// Attributes maps an attribute name to its values in document order.
	Attributes map[string][]Value

	// Children are the nested tags, in document order.
	Children []*Node

	Location Location
}

// Attribute returns the first value of the named attribute, reporting
// whether the attribute is present at all.
func (n *Node) Attribute(name string) (Value, bool) {
	vals, ok := n.Attributes[name]
	if !ok || len(vals) == 0 {
		return Value{}, false
	}
	return vals[0], true
}
