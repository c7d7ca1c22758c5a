package units

import "github.com/cockroachdb/apd/v3"

// DefaultPrec is the number of significant digits to which quantity values
// are computed when no precision is given.
const DefaultPrec = 34

// Context is a context for arithmetic on quantities. It holds the precision
// and rounding of value arithmetic. Exponents of units are unaffected by the
// context. A Context is never modified after it is created, so it is safe to
// use concurrently.
type Context struct {
	dec apd.Context
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	precopt  uint32
	roundopt apd.Rounder
)

func (precopt) ctxOption()  {}
func (roundopt) ctxOption() {}

// Prec sets the number of significant digits of calculations. Panics if
// digits is zero.
func Prec(digits uint32) ContextOption {
	if digits == 0 {
		panic("units: precision must be positive")
	}
	return precopt(digits)
}

// Rounding sets the rounding mode of calculations.
func Rounding(r apd.Rounder) ContextOption {
	return roundopt(r)
}

// NewContext creates a new arithmetic context. If no precision is given, the
// default is DefaultPrec. If no rounding is given, the default is
// apd.RoundHalfUp.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{dec: *apd.BaseContext.WithPrecision(DefaultPrec)}
	ctx.dec.Rounding = apd.RoundHalfUp
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it in order.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := *ctx
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			continue
		case precopt:
			n.dec.Precision = uint32(opt)
		case roundopt:
			n.dec.Rounding = apd.Rounder(opt)
		default:
			panic("units: unknown option type")
		}
	}
	return &n
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint32 {
	return ctx.dec.Precision
}

// Add returns x + y. If the units of x and y are not equal, the error is a
// *UnitError.
func (ctx *Context) Add(x, y Quantity) (Quantity, error) {
	return ctx.add("+", x, y, y.val())
}

// Sub returns x - y, which is x + (-y). If the units of x and y are not equal,
// the error is a *UnitError.
func (ctx *Context) Sub(x, y Quantity) (Quantity, error) {
	return ctx.add("-", x, y, new(apd.Decimal).Neg(y.val()))
}

// add adds yv in the unit of y to x.
func (ctx *Context) add(op string, x, y Quantity, yv *apd.Decimal) (Quantity, error) {
	if !x.unit.Equal(y.unit) {
		return Quantity{}, &UnitError{Op: op, Left: x.unit, Right: y.unit}
	}
	r := new(apd.Decimal)
	if _, err := ctx.dec.Add(r, x.val(), yv); err != nil {
		return Quantity{}, err
	}
	return Quantity{value: r, unit: x.unit}, nil
}

// Mul returns x * y. Any units multiply.
func (ctx *Context) Mul(x, y Quantity) (Quantity, error) {
	r := new(apd.Decimal)
	if _, err := ctx.dec.Mul(r, x.val(), y.val()); err != nil {
		return Quantity{}, err
	}
	return Quantity{value: r, unit: x.unit.Mul(y.unit)}, nil
}

// Div returns x / y. If the value of y is zero, whatever its unit, the error
// is a *DomainError.
func (ctx *Context) Div(x, y Quantity) (Quantity, error) {
	if y.IsZero() {
		return Quantity{}, &DomainError{X: y, Op: "/"}
	}
	r := new(apd.Decimal)
	cond, err := ctx.dec.Quo(r, x.val(), y.val())
	if err != nil {
		return Quantity{}, err
	}
	if !cond.Inexact() {
		ctx.trimquo(r, x.val().Exponent-y.val().Exponent)
	}
	return Quantity{value: r, unit: x.unit.Div(y.unit)}, nil
}

// trimquo removes the trailing zeros that Quo pads an exact quotient with,
// stopping at the ideal exponent so that 1.50/1 is 1.50 and 10/2 is 5.
func (ctx *Context) trimquo(d *apd.Decimal, ideal int32) {
	if d.Exponent >= ideal {
		return
	}
	var red apd.Decimal
	red.Reduce(d)
	if red.Exponent <= ideal {
		d.Set(&red)
		return
	}
	// Reduce removed too many zeros. Quantizing back down only appends
	// zeros, and the result has no more digits than d had.
	ctx.dec.Quantize(d, &red, ideal)
}

// Pow returns x ^ y, with every exponent of the unit of x multiplied by the
// value of y. If y has a unit, the error is a *UnitError. If x is zero and y
// is negative, or x is negative and y is not an integer, the error is a
// *DomainError. Anything to the zeroth power is dimensionless 1.
func (ctx *Context) Pow(x, y Quantity) (Quantity, error) {
	if !y.unit.IsNone() {
		return Quantity{}, &UnitError{Op: "^", Left: x.unit, Right: y.unit}
	}
	b, e := x.val(), y.val()
	switch {
	case e.IsZero():
		return Quantity{value: apd.New(1, 0), unit: None()}, nil
	case b.IsZero() && e.Sign() < 0:
		return Quantity{}, &DomainError{X: x, Op: "^"}
	case b.Sign() < 0 && !isInteger(e):
		return Quantity{}, &DomainError{X: x, Op: "^"}
	}
	r := new(apd.Decimal)
	if _, err := ctx.dec.Pow(r, b, e); err != nil {
		return Quantity{}, err
	}
	return Quantity{value: r, unit: x.unit.Pow(e)}, nil
}

func isInteger(d *apd.Decimal) bool {
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	return frac.IsZero()
}
