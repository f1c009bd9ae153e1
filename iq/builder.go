package iq

// Builder receives notifications as grammar nodes complete. The parser
// calls each method at most once per grammar node; a node's operands are
// always reported before the node itself.
type Builder interface {
	// OnAtom reports a completed relational predicate.
	OnAtom(op RelOp, class string)
	// OnNot wraps the most recently produced node.
	OnNot()
	// OnFold combines the n most recent nodes, n >= 2.
	OnFold(op Op, n int)
	// OnGrouped tags the most recent node as explicitly parenthesised.
	OnGrouped()
	// OnMalformed reports that the query could not be parsed. Nodes
	// produced before it are not part of any result.
	OnMalformed()
	// OnSpace reports skipped whitespace in [from, to).
	OnSpace(from, to int)
}

// resetter is implemented by builders that hold per-parse state.
type resetter interface {
	Reset()
}

// TreeBuilder builds a *Node tree on a stack.
type TreeBuilder struct {
	stack     []*Node
	malformed bool
}

func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

func (b *TreeBuilder) Reset() {
	b.stack = b.stack[:0]
	b.malformed = false
}

func (b *TreeBuilder) push(n *Node) {
	b.stack = append(b.stack, n)
}

func (b *TreeBuilder) pop() *Node {
	if len(b.stack) == 0 {
		return Malformed()
	}
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return n
}

func (b *TreeBuilder) OnAtom(op RelOp, class string) {
	b.push(Atom(op, class))
}

func (b *TreeBuilder) OnNot() {
	b.push(Not(b.pop()))
}

func (b *TreeBuilder) OnFold(op Op, n int) {
	if n > len(b.stack) {
		n = len(b.stack)
	}
	children := make([]*Node, n)
	copy(children, b.stack[len(b.stack)-n:])
	b.stack = b.stack[:len(b.stack)-n]
	if op == OpAnd {
		b.push(And(children...))
	} else {
		b.push(Or(children...))
	}
}

func (b *TreeBuilder) OnGrouped() {
	b.push(Grouped(b.pop()))
}

func (b *TreeBuilder) OnMalformed() {
	b.stack = b.stack[:0]
	b.malformed = true
}

func (b *TreeBuilder) OnSpace(from, to int) {}

// Malformed reports whether the last parse took the recovery path.
func (b *TreeBuilder) Malformed() bool {
	return b.malformed
}

// Root returns the tree of the last parse: the Malformed marker after
// recovery, nil when nothing was produced.
func (b *TreeBuilder) Root() *Node {
	if b.malformed {
		return Malformed()
	}
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}
