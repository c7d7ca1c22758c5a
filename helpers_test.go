package units

import "github.com/cockroachdb/apd/v3"

// dec parses a decimal for tests. Panics on invalid input.
func dec(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// atom creates an atom from a name and a decimal exponent string.
func atom(name, exp string) Atom {
	return NewAtom(name, dec(exp))
}

// qty creates a quantity from a decimal string and atoms.
func qty(v string, atoms ...Atom) Quantity {
	return NewQuantity(dec(v), Product(atoms...))
}
