package units

import "github.com/cockroachdb/apd/v3"

// Quantity is a value measured in a unit. The zero value is dimensionless 0.
type Quantity struct {
	value *apd.Decimal
	unit  Unit
}

// NewQuantity creates a quantity with a copy of v.
func NewQuantity(v *apd.Decimal, u Unit) Quantity {
	return Quantity{value: new(apd.Decimal).Set(v), unit: u}
}

// Num creates a dimensionless quantity.
func Num(v *apd.Decimal) Quantity {
	return NewQuantity(v, None())
}

// QuantityOf creates one of a unit.
func QuantityOf(u Unit) Quantity {
	return Quantity{value: apd.New(1, 0), unit: u}
}

// val returns the value of q, which is nil only for the zero Quantity.
func (q Quantity) val() *apd.Decimal {
	if q.value == nil {
		return new(apd.Decimal)
	}
	return q.value
}

// Value returns a copy of the value of q.
func (q Quantity) Value() *apd.Decimal {
	return new(apd.Decimal).Set(q.val())
}

// Unit returns the unit of q.
func (q Quantity) Unit() Unit {
	return q.unit
}

// IsZero reports whether the value of q is zero, in any unit.
func (q Quantity) IsZero() bool {
	return q.val().IsZero()
}

// Neg returns q with its value negated.
func (q Quantity) Neg() Quantity {
	return Quantity{value: new(apd.Decimal).Neg(q.val()), unit: q.unit}
}

// Equal reports whether q and r have numerically equal values and equal
// units.
func (q Quantity) Equal(r Quantity) bool {
	return q.val().Cmp(r.val()) == 0 && q.unit.Equal(r.unit)
}

// String formats q as its value, a space, and its unit. Values with adjusted
// exponents beyond 64 in magnitude use scientific notation. Dimensionless
// quantities keep the trailing space.
func (q Quantity) String() string {
	return fmtdec(q.val()) + " " + q.unit.String()
}

// defaultContext is the context for the arithmetic shortcuts on Quantity.
var defaultContext = NewContext()

// Add is a shortcut for adding q and r with the default context.
func (q Quantity) Add(r Quantity) (Quantity, error) {
	return defaultContext.Add(q, r)
}

// Sub is a shortcut for subtracting r from q with the default context.
func (q Quantity) Sub(r Quantity) (Quantity, error) {
	return defaultContext.Sub(q, r)
}

// Mul is a shortcut for multiplying q by r with the default context.
func (q Quantity) Mul(r Quantity) (Quantity, error) {
	return defaultContext.Mul(q, r)
}

// Div is a shortcut for dividing q by r with the default context.
func (q Quantity) Div(r Quantity) (Quantity, error) {
	return defaultContext.Div(q, r)
}

// Pow is a shortcut for raising q to r with the default context.
func (q Quantity) Pow(r Quantity) (Quantity, error) {
	return defaultContext.Pow(q, r)
}
