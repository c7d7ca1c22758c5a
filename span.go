package units

import "strconv"

// Span is a half-open range of byte offsets into source text.
type Span struct {
	Start, End int
}

// Merge returns the span covering both s and t, from the smaller start to the
// larger end. The order of the arguments does not matter.
func (s Span) Merge(t Span) Span {
	if t.Start < s.Start {
		s.Start = t.Start
	}
	if t.End > s.End {
		s.End = t.End
	}
	return s
}

// Len returns the number of bytes in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return strconv.Itoa(s.Start) + ".." + strconv.Itoa(s.End)
}
