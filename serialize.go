package chartopts

import (
	"github.com/reoring/chartopts/internal/engine"
)

// SegmentKind classifies a piece of encoded chart options.
type SegmentKind int

const (
	// SegmentStructural holds braces, brackets, separators and member names.
	SegmentStructural SegmentKind = iota
	// SegmentJSON holds one value in strict JSON.
	SegmentJSON
	// SegmentRaw holds an expression written verbatim (functions, gradient
	// constructors, data source lookups).
	SegmentRaw
)

// Segment is one contiguous piece of encoded chart options.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Output is encoded chart options. It is JSON-like text that may contain
// raw JavaScript expressions, so consumers must evaluate it rather than
// parse it as JSON.
type Output struct {
	segs []engine.Segment
}

// String returns the full text.
func (o Output) String() string { return string(engine.Join(o.segs)) }

// Bytes returns the full text.
func (o Output) Bytes() []byte { return engine.Join(o.segs) }

// IsZero reports whether nothing was encoded.
func (o Output) IsZero() bool { return len(o.segs) == 0 }

// Segments returns the output split into structural, JSON and raw pieces.
func (o Output) Segments() []Segment {
	out := make([]Segment, len(o.segs))
	for i, s := range o.segs {
		out[i] = Segment{Kind: fromEngineKind(s.Kind), Text: s.Text}
	}
	return out
}

// RawFragments returns the text of every raw segment, in order.
func (o Output) RawFragments() []string {
	var out []string
	for _, s := range o.segs {
		if s.Kind == engine.KindRaw {
			out = append(out, s.Text)
		}
	}
	return out
}

func fromEngineKind(k engine.Kind) SegmentKind {
	switch k {
	case engine.KindJSON:
		return SegmentJSON
	case engine.KindRaw:
		return SegmentRaw
	default:
		return SegmentStructural
	}
}

// Payload holds the three independent outputs handed to the runtime.
type Payload struct {
	// Chart is the encoded configuration tree.
	Chart Output
	// Maps is a strict JSON array of map definitions, or nil.
	Maps []byte
	// Fetch is a strict JSON array of fetch commands, or nil.
	Fetch []byte
}

// Encode encodes a configuration tree with c's rule set.
func (c *Config) Encode(tree any) (Output, error) {
	e := newEncoder(c)
	if err := e.Value(tree); err != nil {
		return Output{}, err
	}
	if !e.s.Complete() {
		return Output{}, issueAt("", CodeRuleViolation, "incomplete output", nil)
	}
	return Output{segs: e.s.Segments()}, nil
}

// Serialize produces the chart options, the map options (only when
// inlineMaps is set and maps exist) and the fetch commands (only when data
// sources exist). On error no partial payload is returned.
func (c *Config) Serialize(in Input, inlineMaps bool) (Payload, error) {
	chart, err := c.Encode(in.Options)
	if err != nil {
		return Payload{}, err
	}
	p := Payload{Chart: chart}
	if inlineMaps {
		if p.Maps, err = EncodeMaps(in.Maps); err != nil {
			return Payload{}, err
		}
	}
	// Fetch commands bypass the rule set: the runtime parses them with a
	// strict JSON reader.
	if p.Fetch, err = EncodeFetchCommands(in.DataSources); err != nil {
		return Payload{}, err
	}
	return p, nil
}

// Serialize encodes in with the Config selected by opt.
func Serialize(in Input, opt SerializeOpt) (Payload, error) {
	return ConfigFor(opt.Settings, !opt.NoCache).Serialize(in, opt.InlineMaps)
}

// Marshal encodes a configuration tree with the shared Config.
func Marshal(tree any) ([]byte, error) {
	out, err := SharedConfig().Encode(tree)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
