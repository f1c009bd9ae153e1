package diag

import (
	"errors"
	"testing"

	"github.com/dhamidi/isgci/iq"
)

func TestCheckWellFormed(t *testing.T) {
	for _, src := range []string{
		"< a",
		"<= threshold or not (> a and = b)",
		"(< a",
		"< a and (< b or (< c",
		`= "K_{3,3}-free" and < "unterminated`,
		`= ""`,
		"< andromeda or < nothing",
		"< and_x",
	} {
		if err := Check("", src); err != nil {
			t.Errorf("Check(%q) = %v, want nil", src, err)
		}
	}
}

func TestCheckEmpty(t *testing.T) {
	for _, src := range []string{"", "  ", "\t\n"} {
		if err := Check("", src); !errors.Is(err, ErrEmpty) {
			t.Errorf("Check(%q) = %v, want ErrEmpty", src, err)
		}
	}
}

func TestCheckLocatesError(t *testing.T) {
	tests := []struct {
		src    string
		offset int
	}{
		{"< a )", 4},
		{"< and", 2},
		{"< a < b", 4},
		{"(< a) (< b)", 6},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			err := Check("queries.iq", tt.src)
			var derr *Error
			if !errors.As(err, &derr) {
				t.Fatalf("Check(%q) = %v, want *Error", tt.src, err)
			}
			if derr.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d (%v)", derr.Offset, tt.offset, derr)
			}
			if derr.Line != 1 || derr.Column != tt.offset+1 {
				t.Errorf("position = %d:%d, want 1:%d", derr.Line, derr.Column, tt.offset+1)
			}
			if derr.Filename != "queries.iq" || derr.Message == "" {
				t.Errorf("incomplete error %#v", derr)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{Filename: "q.iq", Line: 3, Column: 7, Message: `unexpected token ")"`}
	if got, want := err.Error(), `q.iq:3:7: unexpected token ")"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err.Filename = ""
	if got, want := err.Error(), `3:7: unexpected token ")"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// The strict grammar must accept exactly the queries the packrat parser
// considers well-formed.
func TestCheckAgreesWithParser(t *testing.T) {
	corpus := []string{
		"< a",
		"not < a",
		"not not < a",
		"< a or < b and not < c",
		"((< a)",
		"(",
		"()",
		"< a and",
		"or < a",
		"< 9lives",
		"< _a",
		"< a\n< b",
		"= \"a\nb\"",
		`< "a" b`,
		"<< a",
		"< = a",
		"a",
		"@@@",
		"< a &",
		"< orchid",
		"< not",
		"> a )",
		"\t>=  x1 \n",
		"=\"abc\nand < b",
		"= \"first\nline\"",
	}

	for _, src := range corpus {
		wellFormed := iq.Parse(src).State == iq.StateWellFormed
		err := Check("", src)
		if wellFormed != (err == nil) {
			t.Errorf("%q: parser well-formed = %v, Check = %v", src, wellFormed, err)
		}
	}
}
