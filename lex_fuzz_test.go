//go:build go1.18
// +build go1.18

package units

import (
	"io"
	"testing"
)

func FuzzLex(f *testing.F) {
	f.Add("x = 5 kg m / s^2")
	f.Add("µm; Ω\n")
	f.Add("1.5.3 $")
	f.Fuzz(func(t *testing.T, s string) {
		scan := Lex(s)
		end := 0
		for {
			tok, err := scan.Next()
			if err == io.EOF {
				break
			}
			if tok.Span.Start < end || tok.Span.End <= tok.Span.Start || tok.Span.End > len(s) {
				t.Fatalf("bad span %v after %d in %q", tok.Span, end, s)
			}
			if s[tok.Span.Start:tok.Span.End] != tok.Text {
				t.Fatalf("token text %q does not match source %q", tok.Text, s[tok.Span.Start:tok.Span.End])
			}
			end = tok.Span.End
		}
	})
}
