package units

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// expctx is the context for arithmetic on unit exponents. It has no traps, so
// combining units never fails.
var expctx = &apd.Context{
	Precision:   34,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Rounding:    apd.RoundHalfEven,
}

var one = apd.New(1, 0)

// Atom is a single named dimension raised to a power, like m^2. Exp must not
// be modified once the atom is created.
type Atom struct {
	Name string
	Exp  *apd.Decimal
}

// Base creates an atom with exponent 1.
func Base(name string) Atom {
	return Atom{Name: name, Exp: apd.New(1, 0)}
}

// NewAtom creates an atom with a copy of exp.
func NewAtom(name string, exp *apd.Decimal) Atom {
	return Atom{Name: name, Exp: new(apd.Decimal).Set(exp)}
}

// Equal reports whether a and b have the same name and numerically equal
// exponents.
func (a Atom) Equal(b Atom) bool {
	return a.Name == b.Name && a.Exp.Cmp(b.Exp) == 0
}

// String formats the atom as its bare name if its exponent is exactly 1, or
// as name^exp otherwise.
func (a Atom) String() string {
	if a.Exp.Cmp(one) == 0 {
		return a.Name
	}
	return a.Name + "^" + fmtdec(a.Exp)
}

// plainLimit bounds the adjusted exponent of numbers shown in plain notation.
const plainLimit = 64

// fmtdec formats d in plain notation, or in scientific notation if its
// adjusted exponent is beyond plainLimit in either direction.
func fmtdec(d *apd.Decimal) string {
	adj := int64(d.NumDigits()) + int64(d.Exponent) - 1
	if adj > plainLimit || adj < -plainLimit {
		return d.Text('E')
	}
	return d.Text('f')
}

// Unit is a product of atoms. The zero value is dimensionless.
//
// Units produced by Mul, Div, Pow, Inv, and Product are canonical: atoms are
// ordered by name, no name appears twice, no exponent is zero, and every atom
// with a positive exponent precedes every atom with a negative one. Two
// canonical units of the same dimension are Equal.
type Unit struct {
	atoms []Atom
}

// None returns the dimensionless unit.
func None() Unit {
	return Unit{}
}

// FromAtom creates a unit of exactly one atom, without canonicalizing it.
func FromAtom(a Atom) Unit {
	return Unit{atoms: []Atom{a}}
}

// Product creates the canonical unit for the product of atoms.
func Product(atoms ...Atom) Unit {
	return canonical(append([]Atom(nil), atoms...))
}

// Atoms returns a copy of the atoms of u in order. The exponents are shared
// with u and must not be modified.
func (u Unit) Atoms() []Atom {
	return append([]Atom(nil), u.atoms...)
}

// Len returns the number of atoms in u.
func (u Unit) Len() int {
	return len(u.atoms)
}

// IsNone reports whether u has no atoms.
func (u Unit) IsNone() bool {
	return len(u.atoms) == 0
}

// Equal reports whether u and v have the same atoms in the same order.
func (u Unit) Equal(v Unit) bool {
	if len(u.atoms) != len(v.atoms) {
		return false
	}
	for i, a := range u.atoms {
		if !a.Equal(v.atoms[i]) {
			return false
		}
	}
	return true
}

// Mul returns the canonical product of u and v.
func (u Unit) Mul(v Unit) Unit {
	w := make([]Atom, 0, len(u.atoms)+len(v.atoms))
	w = append(w, u.atoms...)
	w = append(w, v.atoms...)
	return canonical(w)
}

// Div returns the canonical quotient of u and v. It is always the same as
// u.Mul(v.Inv()).
func (u Unit) Div(v Unit) Unit {
	w := make([]Atom, 0, len(u.atoms)+len(v.atoms))
	w = append(w, u.atoms...)
	w = append(w, negated(v.atoms)...)
	return canonical(w)
}

// Inv returns the canonical reciprocal of u.
func (u Unit) Inv() Unit {
	return canonical(negated(u.atoms))
}

// Pow returns u with every exponent multiplied by e. The new exponents have
// no trailing zeros.
func (u Unit) Pow(e *apd.Decimal) Unit {
	w := make([]Atom, len(u.atoms))
	for i, a := range u.atoms {
		x := new(apd.Decimal)
		expctx.Mul(x, a.Exp, e)
		x.Reduce(x)
		w[i] = Atom{Name: a.Name, Exp: x}
	}
	return canonical(w)
}

// String formats u as its atoms separated by spaces in square brackets, or as
// the empty string if u is dimensionless.
func (u Unit) String() string {
	if len(u.atoms) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, a := range u.atoms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(a.String())
	}
	b.WriteByte(']')
	return b.String()
}

func negated(atoms []Atom) []Atom {
	w := make([]Atom, len(atoms))
	for i, a := range atoms {
		w[i] = Atom{Name: a.Name, Exp: new(apd.Decimal).Neg(a.Exp)}
	}
	return w
}

// canonical reduces w to canonical form. w is reordered in place.
func canonical(w []Atom) Unit {
	if len(w) == 0 {
		return Unit{}
	}
	sortatoms(w)
	// Merge runs of equal names.
	merged := make([]Atom, 0, len(w))
	for _, a := range w {
		if k := len(merged) - 1; k >= 0 && merged[k].Name == a.Name {
			x := new(apd.Decimal)
			expctx.Add(x, merged[k].Exp, a.Exp)
			merged[k].Exp = x
			continue
		}
		merged = append(merged, a)
	}
	// Drop cancelled atoms and move negative exponents to the end, keeping
	// name order within each side.
	r := make([]Atom, 0, len(merged))
	for _, a := range merged {
		if a.Exp.Sign() > 0 {
			r = append(r, a)
		}
	}
	for _, a := range merged {
		if a.Exp.Sign() < 0 {
			r = append(r, a)
		}
	}
	if len(r) == 0 {
		return Unit{}
	}
	return Unit{atoms: r}
}

// sortatoms stably sorts atoms by name. Units are small, so an insertion sort
// is plenty.
func sortatoms(w []Atom) {
	for i := 1; i < len(w); i++ {
		for j := i; j > 0 && w[j].Name < w[j-1].Name; j-- {
			w[j], w[j-1] = w[j-1], w[j]
		}
	}
}
