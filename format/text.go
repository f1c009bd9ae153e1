package format

import (
	"io"

	"github.com/dhamidi/isgci/iq"
)

// TextEncoder writes the query back in canonical IQ syntax.
type TextEncoder struct {
	w      io.Writer
	result *iq.Result
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(r *iq.Result) error {
	e.result = r
	return write(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	switch e.result.State {
	case iq.StateEmpty:
		return nil, nil
	case iq.StateMalformed:
		return []byte("malformed\n"), nil
	}
	return []byte(e.result.Root.String() + "\n"), nil
}
