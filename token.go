package units

import "github.com/cockroachdb/apd/v3"

// TokenKind is the type of a lexed token.
type TokenKind int8

const (
	TokenNone TokenKind = iota

	// Arithmetic operators.
	TokenMul // *
	TokenDiv // /
	TokenAdd // +
	TokenSub // -
	TokenPow // ^

	// Assignment operators.
	TokenAssign    // =
	TokenAddAssign // +=
	TokenSubAssign // -=
	TokenMulAssign // *=
	TokenDivAssign // /=
	TokenPowAssign // ^=

	// Grouping.
	TokenLParen // (
	TokenRParen // )
	TokenLCurly // {
	TokenRCurly // }

	// Keywords.
	TokenDef  // def
	TokenIf   // if
	TokenElse // else

	// TokenUnit is an identifier. Variables and units are not distinguished
	// lexically.
	TokenUnit
	// TokenNum is a decimal literal.
	TokenNum
	// TokenNL ends a statement. Newline and ; lex identically.
	TokenNL
	// TokenLexErr is source text that matched no token.
	TokenLexErr
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// tokenDisplay holds the text shown for each kind in messages like "expected
// NUM". Identifiers and numbers show their class, not their text.
var tokenDisplay = [...]string{
	TokenMul:       "*",
	TokenDiv:       "/",
	TokenAdd:       "+",
	TokenSub:       "-",
	TokenPow:       "^",
	TokenAssign:    "=",
	TokenAddAssign: "+=",
	TokenSubAssign: "-=",
	TokenMulAssign: "*=",
	TokenDivAssign: "/=",
	TokenPowAssign: "^=",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLCurly:    "{",
	TokenRCurly:    "}",
	TokenDef:       "def",
	TokenIf:        "if",
	TokenElse:      "else",
	TokenUnit:      "UNIT",
	TokenNum:       "NUM",
	TokenNL:        `(\n or ;)`,
}

// Token is a lexed token.
type Token struct {
	Kind TokenKind
	// Text is the source text of the token. For TokenUnit it is the name, and
	// for TokenLexErr it is the unmatched slice.
	Text string
	// Num is the value of a TokenNum. It is nil for other kinds.
	Num *apd.Decimal
	// Span is the location of the token in the source.
	Span Span
}

// String formats the token as it should appear in diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case TokenLexErr:
		return "Lexer Error: " + t.Text
	case TokenNone:
		return "<none>"
	}
	if t.Kind < 0 || int(t.Kind) >= len(tokenDisplay) {
		panic("units: invalid token kind " + t.Kind.String())
	}
	return tokenDisplay[t.Kind]
}

// Err returns a *LexError describing t if it is a TokenLexErr, or nil
// otherwise.
func (t Token) Err() error {
	if t.Kind != TokenLexErr {
		return nil
	}
	return &LexError{Text: t.Text, Span: t.Span}
}
