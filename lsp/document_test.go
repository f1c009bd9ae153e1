package lsp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const document = `# perfect graph classes
< perfect and not < chordal

< a )
  # indented comment
(< cograph or = "claw free"
< and
`

func TestAnalyze(t *testing.T) {
	problems := Analyze("classes.iq", document, "#")
	if len(problems) != 2 {
		t.Fatalf("got %d problems, want 2: %v", len(problems), problems)
	}

	first := problems[0]
	if first.Line != 3 || first.Column != 4 || first.EndCol != 5 {
		t.Errorf("first problem at %d:%d-%d, want 3:4-5", first.Line, first.Column, first.EndCol)
	}
	if first.Query != "< a )" || first.Message == "" {
		t.Errorf("first problem = %#v", first)
	}
	if got, want := first.String()[:len("classes.iq:4:5: ")], "classes.iq:4:5: "; got != want {
		t.Errorf("String() prefix = %q, want %q", got, want)
	}

	second := problems[1]
	if second.Line != 6 || second.Column != 2 {
		t.Errorf("second problem at %d:%d, want 6:2", second.Line, second.Column)
	}
}

func TestAnalyzeWithoutComments(t *testing.T) {
	problems := Analyze("classes.iq", "# not a comment\n< a\n", "")
	if len(problems) != 1 || problems[0].Line != 0 {
		t.Errorf("problems = %v, want one on line 0", problems)
	}
}

func TestLines(t *testing.T) {
	got := Lines("< a\r\n< b\n")
	if diff := cmp.Diff([]string{"< a", "< b", ""}, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestIsQueryLine(t *testing.T) {
	tests := []struct {
		line    string
		comment string
		want    bool
	}{
		{"< a", "#", true},
		{"", "#", false},
		{" \t", "#", false},
		{"# note", "#", false},
		{"   # note", "#", false},
		{"-- note", "--", false},
		{"# note", "", true},
	}
	for _, tt := range tests {
		if got := IsQueryLine(tt.line, tt.comment); got != tt.want {
			t.Errorf("IsQueryLine(%q, %q) = %v, want %v", tt.line, tt.comment, got, tt.want)
		}
	}
}

func labels(cs []Completion) []string {
	var out []string
	for _, c := range cs {
		out = append(out, c.Label)
	}
	return out
}

func TestComplete(t *testing.T) {
	factorStart := []string{"<", "<=", ">", ">=", "=", "not", "("}

	tests := []struct {
		name string
		line string
		col  int
		want []string
	}{
		{"start of line", "", 0, factorStart},
		{"after operator", "< a and ", 8, factorStart},
		{"after not", "not ", 4, []string{"<", "<=", ">", ">=", "=", "("}},
		{"after open group", "(", 1, factorStart},
		{"after operand", "< a ", 4, []string{"and", "or"}},
		{"inside group", "(< a ", 5, []string{"and", "or", ")"}},
		{"after closed group", "(< a) ", 6, []string{"and", "or"}},
		{"after quoted", `= "x y" `, 8, []string{"and", "or"}},
		{"typing a keyword", "< a o", 5, []string{"or"}},
		{"typing not", "< a and n", 9, []string{"not"}},
		{"after relop", "< ", 2, nil},
		{"cursor mid line", "< a and < b", 4, []string{"and", "or"}},
		{"cursor past end", "< a ", 99, []string{"and", "or"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, labels(Complete(tt.line, tt.col))); diff != "" {
				t.Errorf("Complete(%q, %d) mismatch (-want +got):\n%s", tt.line, tt.col, diff)
			}
		})
	}
}

func TestServerDiagnostics(t *testing.T) {
	s := NewServer(Options{Name: "iq", Version: "test", Comment: "#"})

	diags := s.Diagnostics("file:///tmp/classes.iq", document)
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diags))
	}
	d := diags[0]
	wantRange := protocol.Range{
		Start: protocol.Position{Line: 3, Character: 4},
		End:   protocol.Position{Line: 3, Character: 5},
	}
	if diff := cmp.Diff(wantRange, d.Range); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity = %v, want error", d.Severity)
	}
	if d.Source == nil || *d.Source != "iq" {
		t.Errorf("source = %v, want iq", d.Source)
	}

	if got := s.Diagnostics("file:///tmp/ok.iq", "< a\n"); len(got) != 0 {
		t.Errorf("diagnostics for a clean document = %v", got)
	}
}

func TestURIToPath(t *testing.T) {
	tests := map[string]string{
		"file:///tmp/a%20b.iq": "/tmp/a b.iq",
		"untitled:Untitled-1":  "untitled:Untitled-1",
	}
	for uri, want := range tests {
		if got := uriToPath(uri); got != want {
			t.Errorf("uriToPath(%q) = %q, want %q", uri, got, want)
		}
	}
}
