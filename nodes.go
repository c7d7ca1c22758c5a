package units

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Node is a node in the abstract syntax tree of a program. Each node owns its
// children exclusively; a node must not appear in more than one tree.
type Node struct {
	Kind NodeKind
	// Name is the identifier of Def and Unit nodes and the target of
	// assignments.
	Name string
	// Num is the value of a Num node.
	Num *apd.Decimal
	// Left and Right are the operands of binary operations. Right is also the
	// value of assignments.
	Left, Right *Node
	// Body is the statements of a Scope, in order.
	Body []*Node
	// Span is the source text the node covers. It does not participate in
	// equality.
	Span Span
}

// NodeKind is the variant of a Node.
type NodeKind int8

const (
	NodeNone NodeKind = iota

	NodeDef // def Name

	NodeAdd // Left + Right
	NodeSub // Left - Right
	NodeMul // Left * Right
	NodeDiv // Left / Right
	NodePow // Left ^ Right

	NodeUnit // reference to Name
	NodeNum  // literal Num

	NodeAssign    // Name = Right
	NodeAddAssign // Name += Right
	NodeSubAssign // Name -= Right
	NodeMulAssign // Name *= Right
	NodeDivAssign // Name /= Right
	NodePowAssign // Name ^= Right

	NodeScope // { Body }

	// NodeErr marks where parsing failed.
	NodeErr
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=NodeKind -trimprefix=Node
//go:generate go mod tidy

// ops holds the operator text of binary and assignment kinds.
var ops = [...]string{
	NodeAdd:       "+",
	NodeSub:       "-",
	NodeMul:       "*",
	NodeDiv:       "/",
	NodePow:       "^",
	NodeAssign:    "=",
	NodeAddAssign: "+=",
	NodeSubAssign: "-=",
	NodeMulAssign: "*=",
	NodeDivAssign: "/=",
	NodePowAssign: "^=",
}

// IsBinary reports whether k is a binary operation.
func (k NodeKind) IsBinary() bool {
	return NodeAdd <= k && k <= NodePow
}

// IsAssign reports whether k is an assignment, including compound forms.
func (k NodeKind) IsAssign() bool {
	return NodeAssign <= k && k <= NodePowAssign
}

// Err creates a node marking a parse failure.
func Err(span Span) *Node {
	return &Node{Kind: NodeErr, Span: span}
}

// NewDef creates a def node.
func NewDef(name string, span Span) *Node {
	return &Node{Kind: NodeDef, Name: name, Span: span}
}

// NewUnit creates a reference to a unit or variable.
func NewUnit(name string, span Span) *Node {
	return &Node{Kind: NodeUnit, Name: name, Span: span}
}

// NewNum creates a numeric literal.
func NewNum(v *apd.Decimal, span Span) *Node {
	return &Node{Kind: NodeNum, Num: v, Span: span}
}

// NewScope creates a block of statements. The scope takes ownership of body.
func NewScope(body []*Node, span Span) *Node {
	return &Node{Kind: NodeScope, Body: body, Span: span}
}

// Leaf creates the leaf node for a TokenUnit or TokenNum. Any other token
// produces an Err node at its span.
func Leaf(tok Token) *Node {
	switch tok.Kind {
	case TokenUnit:
		return NewUnit(tok.Text, tok.Span)
	case TokenNum:
		return NewNum(tok.Num, tok.Span)
	default:
		return Err(tok.Span)
	}
}

// Binary creates a binary operation node of the given kind with operands l
// and r. The result spans both operands. Panics if kind is not binary.
func Binary(kind NodeKind, l, r *Node) *Node {
	if !kind.IsBinary() {
		panic("units: " + kind.String() + " is not a binary operation")
	}
	return &Node{Kind: kind, Left: l, Right: r, Span: l.Span.Merge(r.Span)}
}

// NewAdd creates l + r.
func NewAdd(l, r *Node) *Node { return Binary(NodeAdd, l, r) }

// NewSub creates l - r.
func NewSub(l, r *Node) *Node { return Binary(NodeSub, l, r) }

// NewMul creates l * r.
func NewMul(l, r *Node) *Node { return Binary(NodeMul, l, r) }

// NewDiv creates l / r.
func NewDiv(l, r *Node) *Node { return Binary(NodeDiv, l, r) }

// NewPow creates l ^ r.
func NewPow(l, r *Node) *Node { return Binary(NodePow, l, r) }

// Compound transforms target, which must be a Unit node, into an assignment
// of the given kind to target's name with rhs as the value. The result spans
// both nodes. target is left unchanged and should be discarded.
//
// Building an assignment on anything other than a Unit node is a bug in the
// caller, so Compound panics with an *AssignError in that case. It also
// panics if kind is not an assignment kind.
func Compound(kind NodeKind, target, rhs *Node) *Node {
	if !kind.IsAssign() {
		panic("units: " + kind.String() + " is not an assignment")
	}
	if target.Kind != NodeUnit {
		panic(&AssignError{Kind: kind, Target: target})
	}
	return &Node{Kind: kind, Name: target.Name, Right: rhs, Span: target.Span.Merge(rhs.Span)}
}

// NewAssign creates target = rhs. See Compound.
func NewAssign(target, rhs *Node) *Node { return Compound(NodeAssign, target, rhs) }

// NewAddAssign creates target += rhs. See Compound.
func NewAddAssign(target, rhs *Node) *Node { return Compound(NodeAddAssign, target, rhs) }

// NewSubAssign creates target -= rhs. See Compound.
func NewSubAssign(target, rhs *Node) *Node { return Compound(NodeSubAssign, target, rhs) }

// NewMulAssign creates target *= rhs. See Compound.
func NewMulAssign(target, rhs *Node) *Node { return Compound(NodeMulAssign, target, rhs) }

// NewDivAssign creates target /= rhs. See Compound.
func NewDivAssign(target, rhs *Node) *Node { return Compound(NodeDivAssign, target, rhs) }

// NewPowAssign creates target ^= rhs. See Compound.
func NewPowAssign(target, rhs *Node) *Node { return Compound(NodePowAssign, target, rhs) }

// Equal reports whether n and m have the same structure, names, and values.
// Spans are ignored.
func (n *Node) Equal(m *Node) bool {
	d, e := n.diff(m)
	return d == nil && e == nil
}

// diff finds the first pre-order node of n that differs from m, or nil, nil
// if the two trees are equal.
func (n *Node) diff(m *Node) (*Node, *Node) {
	if n == nil || m == nil {
		if n != m {
			return n, m
		}
		return nil, nil
	}
	if n.Kind != m.Kind {
		return n, m
	}
	switch n.Kind {
	case NodeDef, NodeUnit:
		if n.Name != m.Name {
			return n, m
		}
	case NodeNum:
		if n.Num.Cmp(m.Num) != 0 {
			return n, m
		}
	case NodeAdd, NodeSub, NodeMul, NodeDiv, NodePow:
		if d, e := n.Left.diff(m.Left); d != nil || e != nil {
			return d, e
		}
		if d, e := n.Right.diff(m.Right); d != nil || e != nil {
			return d, e
		}
	case NodeAssign, NodeAddAssign, NodeSubAssign, NodeMulAssign, NodeDivAssign, NodePowAssign:
		if n.Name != m.Name {
			return n, m
		}
		if d, e := n.Right.diff(m.Right); d != nil || e != nil {
			return d, e
		}
	case NodeScope:
		if len(n.Body) != len(m.Body) {
			return n, m
		}
		for i := range n.Body {
			if d, e := n.Body[i].diff(m.Body[i]); d != nil || e != nil {
				return d, e
			}
		}
	case NodeErr:
		// Errors carry nothing but their span.
	default:
		panic("units: invalid node kind " + n.Kind.String())
	}
	return nil, nil
}

// String formats the node as fully parenthesized infix.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	switch n.Kind {
	case NodeDef:
		b.WriteString("(def ")
		b.WriteString(n.Name)
		b.WriteByte(')')
	case NodeAdd, NodeSub, NodeMul, NodeDiv, NodePow:
		b.WriteByte('(')
		n.Left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(ops[n.Kind])
		b.WriteByte(' ')
		n.Right.fmt(b)
		b.WriteByte(')')
	case NodeUnit:
		b.WriteString(n.Name)
	case NodeNum:
		b.WriteString(fmtdec(n.Num))
	case NodeAssign, NodeAddAssign, NodeSubAssign, NodeMulAssign, NodeDivAssign, NodePowAssign:
		b.WriteByte('(')
		b.WriteString(n.Name)
		b.WriteByte(' ')
		b.WriteString(ops[n.Kind])
		b.WriteByte(' ')
		n.Right.fmt(b)
		b.WriteByte(')')
	case NodeScope:
		b.WriteString("{\n")
		for _, s := range n.Body {
			s.fmt(b)
			b.WriteByte('\n')
		}
		b.WriteByte('}')
	case NodeErr:
		b.WriteString("Error")
	default:
		panic("units: invalid node kind " + n.Kind.String() + " after writing " + b.String())
	}
}
