package iq

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNodeString(t *testing.T) {
	tests := []struct {
		node *Node
		want string
	}{
		{Atom(RelSub, "a"), "< a"},
		{Atom(RelEqual, "some class"), `= "some class"`},
		{Atom(RelSuperEq, "and"), `>= "and"`},
		{Atom(RelSub, ""), `< ""`},
		{Not(Atom(RelSub, "a")), "not < a"},
		{And(Atom(RelSub, "a"), Atom(RelSub, "b")), "< a and < b"},
		{Or(Atom(RelSub, "a"), And(Atom(RelSub, "b"), Atom(RelSub, "c"))), "< a or < b and < c"},
		{And(Or(Atom(RelSub, "a"), Atom(RelSub, "b")), Atom(RelSub, "c")), "(< a or < b) and < c"},
		{Not(And(Atom(RelSub, "a"), Atom(RelSub, "b"))), "not (< a and < b)"},
		{Not(Grouped(Or(Atom(RelSub, "a"), Atom(RelSub, "b")))), "not (< a or < b)"},
		{Grouped(Atom(RelSub, "a")), "(< a)"},
		{Malformed(), "<malformed>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeStringReparses(t *testing.T) {
	inputs := []string{
		"< a or < b and < c",
		"not (< a or < b)",
		`= "x y" and not > z`,
		"((< a))",
		"(< a or < b) and (< c or < d)",
	}
	for _, input := range inputs {
		first := Parse(input)
		second := Parse(first.Root.String())
		if second.State != StateWellFormed {
			t.Fatalf("%q rendered as malformed %q", input, first.Root.String())
		}
		if diff := cmp.Diff(first.Root.Unwrap(), second.Root.Unwrap()); diff != "" {
			t.Errorf("%q does not survive rendering (-first +second):\n%s", input, diff)
		}
	}
}

func TestNodeUnwrap(t *testing.T) {
	n := Not(Grouped(Or(Grouped(Atom(RelSub, "a")), Atom(RelSub, "b"))))
	want := Not(Or(Atom(RelSub, "a"), Atom(RelSub, "b")))
	if diff := cmp.Diff(want, n.Unwrap()); diff != "" {
		t.Errorf("Unwrap mismatch (-want +got):\n%s", diff)
	}
	if n.Children[0].Kind != KindGrouped {
		t.Errorf("Unwrap modified its receiver")
	}
}

func TestNodeClasses(t *testing.T) {
	r := Parse(`< b and (= a or not > b) or >= "c d"`)
	want := []string{"b", "a", "c d"}
	if diff := cmp.Diff(want, r.Root.Classes()); diff != "" {
		t.Errorf("Classes mismatch (-want +got):\n%s", diff)
	}
	if got := r.Root.Count(); got != 9 {
		t.Errorf("Count() = %d, want 9", got)
	}
}

func TestNodeMarshalJSON(t *testing.T) {
	data, err := json.Marshal(And(Atom(RelSub, "a"), Not(Atom(RelEqual, "b c"))))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"kind":"And","children":[{"kind":"Atom","rel":"\u003c","class":"a"},{"kind":"Not","children":[{"kind":"Atom","rel":"=","class":"b c"}]}]}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a", true},
		{"P4_free", true},
		{"andromeda", true},
		{"and", false},
		{"not", false},
		{"or", false},
		{"_a", false},
		{"4a", false},
		{"a-b", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsIdentifier(tt.name); got != tt.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	kinds := map[NodeKind]string{
		KindMalformed: "Malformed",
		KindAtom:      "Atom",
		KindNot:       "Not",
		KindAnd:       "And",
		KindOr:        "Or",
		KindGrouped:   "Grouped",
		NodeKind(99):  "Unknown",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("NodeKind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
	if OpAnd.String() != "and" || OpOr.String() != "or" || Op(7).String() != "unknown" {
		t.Errorf("Op.String() mismatch")
	}
}
