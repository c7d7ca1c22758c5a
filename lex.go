package units

import (
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
)

// Lexer scans tokens from source text. Names in the tokens it produces are
// substrings of the source.
type Lexer struct {
	src string
	pos int
}

// Lex creates a lexer over src.
func Lex(src string) *Lexer {
	return &Lexer{src: src}
}

// Tokens lexes all of src.
func Tokens(src string) []Token {
	l := Lex(src)
	var r []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return r
		}
		r = append(r, tok)
	}
}

var keywords = map[string]TokenKind{
	"def":  TokenDef,
	"if":   TokenIf,
	"else": TokenElse,
}

// Next scans the next token. Input that matches no token becomes a
// TokenLexErr one rune long, and scanning continues after it. Once the input
// is exhausted, the result is a zero Token and io.EOF.
func (l *Lexer) Next() (Token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return Token{}, io.EOF
	}
	start := l.pos
	r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += sz
	switch {
	case r == '\n', r == ';':
		return l.emit(TokenNL, start), nil
	case '0' <= r && r <= '9':
		return l.scanNum(start), nil
	case isIdentStart(r):
		l.scanIdent()
		tok := l.emit(TokenUnit, start)
		if k, ok := keywords[tok.Text]; ok {
			tok.Kind = k
		}
		return tok, nil
	}
	switch r {
	case '*':
		return l.op(TokenMul, TokenMulAssign, start), nil
	case '/':
		return l.op(TokenDiv, TokenDivAssign, start), nil
	case '+':
		return l.op(TokenAdd, TokenAddAssign, start), nil
	case '-':
		return l.op(TokenSub, TokenSubAssign, start), nil
	case '^':
		return l.op(TokenPow, TokenPowAssign, start), nil
	case '=':
		return l.emit(TokenAssign, start), nil
	case '(':
		return l.emit(TokenLParen, start), nil
	case ')':
		return l.emit(TokenRParen, start), nil
	case '{':
		return l.emit(TokenLCurly, start), nil
	case '}':
		return l.emit(TokenRCurly, start), nil
	}
	return l.emit(TokenLexErr, start), nil
}

// emit creates a token spanning from start to the current position.
func (l *Lexer) emit(kind TokenKind, start int) Token {
	return Token{
		Kind: kind,
		Text: l.src[start:l.pos],
		Span: Span{Start: start, End: l.pos},
	}
}

// op emits either an operator or its assignment form, if the next byte is =.
func (l *Lexer) op(bare, assign TokenKind, start int) Token {
	if l.pos < len(l.src) && l.src[l.pos] == '=' {
		l.pos++
		return l.emit(assign, start)
	}
	return l.emit(bare, start)
}

// skipSpace skips spaces, tabs, and form feeds. Newlines are significant.
func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\f':
			l.pos++
		default:
			return
		}
	}
}

// digits advances over ASCII digits and returns how many there were.
func (l *Lexer) digits() int {
	n := 0
	for l.pos < len(l.src) && '0' <= l.src[l.pos] && l.src[l.pos] <= '9' {
		l.pos++
		n++
	}
	return n
}

// scanNum scans [0-9]+ or [0-9]+.[0-9]+. The first digit has already been
// consumed. A dot not followed by a digit is not part of the number.
func (l *Lexer) scanNum(start int) Token {
	l.digits()
	if l.pos+1 < len(l.src) && l.src[l.pos] == '.' && isDigit(l.src[l.pos+1]) {
		l.pos++
		l.digits()
	}
	tok := l.emit(TokenNum, start)
	d, _, err := apd.NewFromString(tok.Text)
	if err != nil {
		// Only digits and at most one inner dot get here.
		panic("units: invalid number " + tok.Text + ": " + err.Error())
	}
	tok.Num = d
	return tok
}

func (l *Lexer) scanIdent() {
	for l.pos < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentContinue(r) {
			return
		}
		l.pos += sz
	}
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isIdentStart reports whether r has the Unicode ID_Start property.
func isIdentStart(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	if unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space) {
		return false
	}
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start)
}

// isIdentContinue reports whether r has the Unicode ID_Continue property.
func isIdentContinue(r rune) bool {
	if isIdentStart(r) {
		return true
	}
	if r == utf8.RuneError || unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space) {
		return false
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}
