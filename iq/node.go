package iq

import "strings"

// RelOp is the relation an atom asserts between the queried class and a
// named graph class.
type RelOp string

const (
	RelSub     RelOp = "<"  // proper subclass of
	RelSubEq   RelOp = "<=" // subclass of or equal to
	RelSuper   RelOp = ">"  // proper superclass of
	RelSuperEq RelOp = ">=" // superclass of or equal to
	RelEqual   RelOp = "="  // equivalent to
)

// relOps lists the operators in the order the grammar tries them.
var relOps = []RelOp{RelSubEq, RelSub, RelSuperEq, RelSuper, RelEqual}

// Op is a binary connective.
type Op int

const (
	OpAnd Op = iota
	OpOr
)

func (o Op) String() string {
	switch o {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "unknown"
	}
}

type NodeKind int

const (
	KindMalformed NodeKind = iota
	KindAtom
	KindNot
	KindAnd
	KindOr
	KindGrouped
)

func (k NodeKind) String() string {
	switch k {
	case KindMalformed:
		return "Malformed"
	case KindAtom:
		return "Atom"
	case KindNot:
		return "Not"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindGrouped:
		return "Grouped"
	default:
		return "Unknown"
	}
}

// Node is a node of the query tree. Atoms carry Rel and Class; every
// other kind carries its operands in Children.
type Node struct {
	Kind     NodeKind
	Rel      RelOp
	Class    string
	Children []*Node
}

func Atom(op RelOp, class string) *Node {
	return &Node{Kind: KindAtom, Rel: op, Class: class}
}

func Not(child *Node) *Node {
	return &Node{Kind: KindNot, Children: []*Node{child}}
}

func And(children ...*Node) *Node {
	return &Node{Kind: KindAnd, Children: children}
}

func Or(children ...*Node) *Node {
	return &Node{Kind: KindOr, Children: children}
}

func Grouped(child *Node) *Node {
	return &Node{Kind: KindGrouped, Children: []*Node{child}}
}

func Malformed() *Node {
	return &Node{Kind: KindMalformed}
}

// IsMalformed reports whether n is the recovery marker.
func (n *Node) IsMalformed() bool {
	return n != nil && n.Kind == KindMalformed
}

// Unwrap returns a copy of the tree with every Grouped wrapper removed.
func (n *Node) Unwrap() *Node {
	if n == nil {
		return nil
	}
	if n.Kind == KindGrouped && len(n.Children) == 1 {
		return n.Children[0].Unwrap()
	}
	out := &Node{Kind: n.Kind, Rel: n.Rel, Class: n.Class}
	for _, c := range n.Children {
		out.Children = append(out.Children, c.Unwrap())
	}
	return out
}

// Walk calls fn for n and its descendants in pre-order. Returning false
// from fn skips the children of that node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Classes returns the graph class names referenced by the tree, in
// source order, without duplicates.
func (n *Node) Classes() []string {
	var names []string
	seen := make(map[string]bool)
	Walk(n, func(m *Node) bool {
		if m.Kind == KindAtom && !seen[m.Class] {
			seen[m.Class] = true
			names = append(names, m.Class)
		}
		return true
	})
	return names
}

// Count returns the number of nodes in the tree.
func (n *Node) Count() int {
	count := 0
	Walk(n, func(*Node) bool {
		count++
		return true
	})
	return count
}

// String renders the tree as IQ text. Parsing the result yields the same
// tree up to Grouped wrappers added where precedence requires them.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindMalformed:
		sb.WriteString("<malformed>")
	case KindAtom:
		sb.WriteString(string(n.Rel))
		sb.WriteByte(' ')
		sb.WriteString(QuoteName(n.Class))
	case KindNot:
		sb.WriteString("not ")
		n.writeOperand(sb, n.Children[0], KindNot)
	case KindAnd, KindOr:
		sep := " and "
		if n.Kind == KindOr {
			sep = " or "
		}
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteString(sep)
			}
			n.writeOperand(sb, c, n.Kind)
		}
	case KindGrouped:
		sb.WriteByte('(')
		n.Children[0].write(sb)
		sb.WriteByte(')')
	}
}

func (n *Node) writeOperand(sb *strings.Builder, c *Node, parent NodeKind) {
	if binds(c.Kind) < binds(parent) {
		sb.WriteByte('(')
		c.write(sb)
		sb.WriteByte(')')
		return
	}
	c.write(sb)
}

// binds orders kinds from loosest to tightest binding.
func binds(k NodeKind) int {
	switch k {
	case KindOr:
		return 1
	case KindAnd:
		return 2
	case KindNot:
		return 3
	default:
		return 4
	}
}

// QuoteName returns name as it must appear in a query: bare when it is an
// identifier, in double quotes otherwise.
func QuoteName(name string) string {
	if IsIdentifier(name) {
		return name
	}
	return `"` + name + `"`
}

// IsIdentifier reports whether name can be written without quotes.
func IsIdentifier(name string) bool {
	if name == "" || strings.IndexByte(letters, name[0]) < 0 {
		return false
	}
	for i := 1; i < len(name); i++ {
		if strings.IndexByte(identChars, name[i]) < 0 {
			return false
		}
	}
	return !IsKeyword(name)
}

// IsKeyword reports whether word is one of the reserved connectives.
func IsKeyword(word string) bool {
	switch word {
	case "and", "or", "not":
		return true
	}
	return false
}
