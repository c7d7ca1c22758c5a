package units

import (
	"strconv"
	"strings"
)

// InputError is an error with position information. Every error resulting from
// invalid source text implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset of the start of the text that caused the
	// error.
	Pos() int
}

// LexError describes a slice of source text that matched no token.
type LexError struct {
	// Text is the unmatched slice.
	Text string
	// Span is the location of Text in the source.
	Span Span
}

func (err *LexError) Error() string {
	return errpos(err.Span.Start, "invalid token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Span.Start
}

// UnitError is an error from combining quantities whose units are
// incompatible for the operation.
type UnitError struct {
	// Op is the operator that failed, e.g. "+".
	Op string
	// Left and Right are the units of the operands.
	Left, Right Unit
}

func (err *UnitError) Error() string {
	return "incompatible units: " + bracketed(err.Left) + " " + err.Op + " " + bracketed(err.Right)
}

// bracketed formats a unit for messages, where the empty display of a
// dimensionless unit would be confusing.
func bracketed(u Unit) string {
	if u.IsNone() {
		return "[]"
	}
	return u.String()
}

// DomainError is an error from an operation whose operand is outside its
// domain, such as a zero divisor.
type DomainError struct {
	// X is the out-of-domain operand.
	X Quantity
	// Op is the operator that failed, e.g. "/".
	Op string
}

func (err *DomainError) Error() string {
	if err.Op == "/" {
		return "division by zero"
	}
	return strings.TrimSpace(err.X.String()) + " outside domain of " + err.Op
}

// AssignError is the panic value when a compound assignment is built on a
// node that is not a Unit leaf. It indicates a bug in the code constructing
// the AST, never bad input.
type AssignError struct {
	// Kind is the assignment kind that was requested.
	Kind NodeKind
	// Target is the node that was assigned to.
	Target *Node
}

func (err *AssignError) Error() string {
	return "units: can only " + err.Kind.String() + " to a Unit node, not " + err.Target.Kind.String()
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var _ InputError = (*LexError)(nil)
