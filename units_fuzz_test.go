//go:build go1.18
// +build go1.18

package units

import (
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
)

// fuzzunit builds a unit from space-separated names, alternating the sign of
// their exponents.
func fuzzunit(s string) Unit {
	var atoms []Atom
	for i, name := range strings.Fields(s) {
		atoms = append(atoms, NewAtom(name, apd.New(int64(1-2*(i%2)), 0)))
	}
	return Product(atoms...)
}

func canonicalOK(u Unit) bool {
	neg := false
	for i, a := range u.atoms {
		switch a.Exp.Sign() {
		case 0:
			return false
		case -1:
			neg = true
		case 1:
			if neg {
				return false
			}
		}
		for _, b := range u.atoms[:i] {
			if a.Name == b.Name {
				return false
			}
		}
	}
	return true
}

func FuzzUnitMul(f *testing.F) {
	f.Add("kg m s", "s m")
	f.Add("m", "m")
	f.Add("", "x y z")
	f.Fuzz(func(t *testing.T, x, y string) {
		a, b := fuzzunit(x), fuzzunit(y)
		ab := a.Mul(b)
		if !canonicalOK(ab) {
			t.Errorf("%v * %v = %v is not canonical", a, b, ab)
		}
		if !ab.Equal(b.Mul(a)) {
			t.Errorf("%v * %v does not commute", a, b)
		}
		if q := a.Div(a); !q.IsNone() {
			t.Errorf("%v / %v = %v", a, a, q)
		}
		if !ab.Div(b).Equal(a) {
			t.Errorf("%v * %v / %v != %v", a, b, b, a)
		}
	})
}
