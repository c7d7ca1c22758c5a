package units_test

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/zephyrtronium/units"
)

func ExampleUnit_Mul() {
	force := units.Product(units.Base("kg"), units.Base("m"), units.NewAtom("s", apd.New(-2, 0)))
	length := units.FromAtom(units.Base("m"))
	fmt.Println(force)
	fmt.Println(force.Div(length))
	fmt.Println(force.Mul(length))
	fmt.Printf("%q\n", length.Div(length).String())

	// Output:
	// [kg m s^-2]
	// [kg s^-2]
	// [kg m^2 s^-2]
	// ""
}

func ExampleQuantity_Add() {
	m := units.FromAtom(units.Base("m"))
	s := units.FromAtom(units.Base("s"))
	a := units.NewQuantity(apd.New(5, 0), m)
	b := units.NewQuantity(apd.New(3, 0), m)
	c := units.NewQuantity(apd.New(3, 0), s)
	fmt.Println(a.Add(b))
	fmt.Println(a.Add(c))

	// Output:
	// 8 [m] <nil>
	// 0  incompatible units: [m] + [s]
}

func ExampleQuantity_Div() {
	ten := units.Num(apd.New(10, 0))
	half, _ := ten.Div(units.Num(apd.New(2, 0)))
	fmt.Printf("%q\n", half.String())
	m := units.FromAtom(units.Base("m"))
	s := units.FromAtom(units.Base("s"))
	v, _ := units.NewQuantity(apd.New(10, 0), m).Div(units.NewQuantity(apd.New(4, 0), s))
	fmt.Println(v)
	_, err := ten.Div(units.Num(apd.New(0, 0)))
	fmt.Println(err)

	// Output:
	// "5 "
	// 2.5 [m s^-1]
	// division by zero
}

func ExampleLex() {
	for _, tok := range units.Tokens("v += 3.5 m/s\n") {
		fmt.Println(tok.Kind, tok.Span, tok)
	}

	// Output:
	// Unit 0..1 UNIT
	// AddAssign 2..4 +=
	// Num 5..8 NUM
	// Unit 9..10 UNIT
	// Div 10..11 /
	// Unit 11..12 UNIT
	// NL 12..13 (\n or ;)
}

func ExampleCompound() {
	src := "x = 2 * y"
	toks := units.Tokens(src)
	rhs := units.NewMul(units.Leaf(toks[2]), units.Leaf(toks[4]))
	n := units.NewAssign(units.Leaf(toks[0]), rhs)
	fmt.Println(n, n.Span)

	// Output:
	// (x = (2 * y)) 0..9
}
