package engine

// Kind classifies a segment of the output stream.
type Kind int

const (
	// KindStructural is punctuation, whitespace and object keys.
	KindStructural Kind = iota
	// KindJSON is a complete value produced by a JSON encoder.
	KindJSON
	// KindRaw is verbatim text that must reach the consumer unquoted.
	KindRaw
)

// Segment is one contiguous piece of output.
type Segment struct {
	Kind Kind
	Text string
}

// Join concatenates segment texts.
func Join(segs []Segment) []byte {
	n := 0
	for _, s := range segs {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range segs {
		b = append(b, s.Text...)
	}
	return b
}
