// Package units implements the lexical and dimensional core of a units-aware
// calculator language.
//
// Source text lexes into tokens where every identifier may name either a
// variable or a unit, e.g. "5 kg m / s^2". Numbers are exact decimals, so
// "0.1 + 0.2" really is 0.3. An AST of expressions and statements is built
// from nodes which remember the bytes of source they span.
//
// A Unit is a product of named atoms raised to decimal powers, kept in a
// canonical order: atoms sorted by name, equal names merged, cancelled atoms
// removed, and atoms with negative exponents moved to the end. A Quantity is
// a value with a Unit. Quantities multiply and divide freely, but adding
// meters to seconds or dividing by zero is an error rather than a panic.
//
package units
