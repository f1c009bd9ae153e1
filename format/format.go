// Package format encodes parsed IQ queries for output.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/isgci/iq"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(r *iq.Result) error
}

// Names lists the formats accepted by New.
var Names = []string{"tree", "text", "json", "yaml"}

// New returns the encoder called name writing to w. styled enables
// terminal colors where the format supports them.
func New(name string, w io.Writer, styled bool) (Encoder, error) {
	switch name {
	case "tree":
		return NewTreeEncoder(w, styled), nil
	case "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

// document is the shape shared by the JSON and YAML encoders.
type document struct {
	Query   string   `json:"query" yaml:"query"`
	State   string   `json:"state" yaml:"state"`
	Classes []string `json:"classes,omitempty" yaml:"classes,omitempty"`
	Tree    *iq.Node `json:"tree,omitempty" yaml:"tree,omitempty"`
}

func newDocument(r *iq.Result) document {
	doc := document{
		Query: r.Query,
		State: r.State.String(),
	}
	if r.State == iq.StateWellFormed {
		doc.Classes = r.Root.Classes()
		doc.Tree = r.Root
	}
	return doc
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
