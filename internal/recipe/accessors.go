package recipe

import (
	"github.com/vk/recipekit/internal/document"
)

// singleString extracts the node's one required string value. Child nodes
// are rejected unless allowChildren is set (tags like "configuration" carry
// a name value and a body).
func singleString(n *document.Node, allowChildren bool) (string, error) {
	if !allowChildren && len(n.Children) > 0 {
		return "", validationErrorf(n.Location, "field %q does not allow child tags", n.Name)
	}
	if len(n.Values) == 0 {
		return "", validationErrorf(n.Location, "field %q requires a value", n.Name)
	}
	if len(n.Values) > 1 {
		return "", validationErrorf(n.Location, "field %q requires exactly one value, got %d", n.Name, len(n.Values))
	}
	s, ok := n.Values[0].Text()
	if !ok {
		return "", validationErrorf(n.Location, "field %q requires a string value, got %s", n.Name, n.Values[0].GoString())
	}
	return s, nil
}

// stringArray extracts all of the node's values as an ordered string list.
// The list may be empty.
func stringArray(n *document.Node, allowChildren bool) ([]string, error) {
	if !allowChildren && len(n.Children) > 0 {
		return nil, validationErrorf(n.Location, "field %q does not allow child tags", n.Name)
	}
	out := make([]string, 0, len(n.Values))
	for _, v := range n.Values {
		s, ok := v.Text()
		if !ok {
			return nil, validationErrorf(n.Location, "field %q requires string values, got %s", n.Name, v.GoString())
		}
		out = append(out, s)
	}
	return out, nil
}

// platformKey derives the platform qualifier of a node from its optional
// "platform" attribute: "" when unconditional, else "-" followed by the
// platform identifier.
func platformKey(n *document.Node) (string, error) {
	v, ok := n.Attribute("platform")
	if !ok {
		return "", nil
	}
	s, sok := v.Text()
	if !sok {
		return "", validationErrorf(n.Location, "attribute \"platform\" on field %q requires a string value", n.Name)
	}
	return "-" + s, nil
}
