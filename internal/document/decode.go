package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// wireNode is the JSON wire form emitted by the external syntax parser.
type wireNode struct {
	Name       string             `json:"name"`
	Values     []Value            `json:"values,omitempty"`
	Attributes map[string][]Value `json:"attributes,omitempty"`
	Children   []*wireNode        `json:"children,omitempty"`
	Line       int                `json:"line"`
}

// Decode reads one JSON-encoded document tree from r. The filename is
// stamped into every node's location; it is used for diagnostics only.
func Decode(r io.Reader, filename string) (*Node, error) {
	dec := json.NewDecoder(r)
	var root wireNode
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding document %s: %w", filename, err)
	}
	return root.toNode(filename), nil
}

// LoadFile reads a JSON-encoded document tree from disk. The file's own
// path becomes the diagnostic filename.
func LoadFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, path)
}

func (w *wireNode) toNode(filename string) *Node {
	n := &Node{
		Name:       w.Name,
		Values:     w.Values,
		Attributes: w.Attributes,
		Location:   Location{File: filename, Line: w.Line},
	}
	for _, c := range w.Children {
		n.Children = append(n.Children, c.toNode(filename))
	}
	return n
}
