package format

import (
	"io"

	"github.com/dhamidi/isgci/iq"
	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w      io.Writer
	result *iq.Result
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(r *iq.Result) error {
	e.result = r
	return write(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(newDocument(e.result))
}
