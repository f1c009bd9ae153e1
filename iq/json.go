package iq

import (
	"bytes"
	"encoding/json"
)

type jsonNode struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Rel      string      `json:"rel,omitempty" yaml:"rel,omitempty"`
	Class    string      `json:"class,omitempty" yaml:"class,omitempty"`
	Children []*jsonNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// MarshalJSON leaves relational operators unescaped; callers that want
// HTML-safe output get it from json.Marshal as usual.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(n.toJSON()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalYAML lets gopkg.in/yaml.v3 encode the same shape as MarshalJSON.
func (n *Node) MarshalYAML() (any, error) {
	return n.toJSON(), nil
}

func (n *Node) toJSON() *jsonNode {
	jn := &jsonNode{
		Kind:  n.Kind.String(),
		Rel:   string(n.Rel),
		Class: n.Class,
	}
	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = child.toJSON()
		}
	}
	return jn
}
