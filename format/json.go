package format

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/dhamidi/isgci/iq"
)

type JSONEncoder struct {
	w      io.Writer
	result *iq.Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(r *iq.Result) error {
	e.result = r
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDocument(e.result)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
