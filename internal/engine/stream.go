package engine

import (
	"errors"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ErrTooDeep is returned when nesting exceeds StreamOptions.MaxDepth.
var ErrTooDeep = errors.New("engine: max depth exceeded")

// ErrState is returned when a write does not fit the current container.
var ErrState = errors.New("engine: invalid stream state")

// StreamOptions controls layout and limits.
type StreamOptions struct {
	// Indent, when non-empty, pretty-prints containers using it per level.
	Indent   string
	MaxDepth int
}

type containerKind int

const (
	kindRoot containerKind = iota
	kindObject
	kindArray
)

type frame struct {
	kind       containerKind
	count      int
	pendingKey bool
	path       string
	nextIndex  int
	key        string
}

// Stream builds a segmented output document. Structural segments are
// coalesced; JSON and Raw segments are always kept separate so raw
// fragments remain auditable.
type Stream struct {
	opt   StreamOptions
	segs  []Segment
	stack []frame
}

// NewStream returns an empty stream holding a single root slot.
func NewStream(opt StreamOptions) *Stream {
	return &Stream{opt: opt, stack: []frame{{kind: kindRoot}}}
}

// Segments returns the written segments.
func (s *Stream) Segments() []Segment { return s.segs }

// Depth reports the number of open containers.
func (s *Stream) Depth() int { return len(s.stack) - 1 }

// Count reports how many values the innermost container holds.
func (s *Stream) Count() int { return s.stack[len(s.stack)-1].count }

// Path returns the JSON Pointer of the next value to be written.
func (s *Stream) Path() string {
	top := &s.stack[len(s.stack)-1]
	switch top.kind {
	case kindObject:
		return top.path + "/" + escapePointer(top.key)
	case kindArray:
		return top.path + "/" + strconv.Itoa(top.nextIndex)
	default:
		return ""
	}
}

func (s *Stream) structural(text string) {
	if n := len(s.segs); n > 0 && s.segs[n-1].Kind == KindStructural {
		s.segs[n-1].Text += text
		return
	}
	s.segs = append(s.segs, Segment{Kind: KindStructural, Text: text})
}

func (s *Stream) newline(depth int) {
	if s.opt.Indent == "" {
		return
	}
	s.structural("\n" + strings.Repeat(s.opt.Indent, depth))
}

// beforeValue places separators ahead of a value and validates state.
func (s *Stream) beforeValue() error {
	top := &s.stack[len(s.stack)-1]
	switch top.kind {
	case kindRoot:
		if top.count > 0 {
			return ErrState
		}
	case kindObject:
		if !top.pendingKey {
			return ErrState
		}
	case kindArray:
		if top.count > 0 {
			s.structural(",")
		}
		s.newline(s.Depth())
	}
	return nil
}

func (s *Stream) afterValue() {
	top := &s.stack[len(s.stack)-1]
	top.count++
	top.pendingKey = false
	if top.kind == kindArray {
		top.nextIndex++
	}
}

// Key writes an object member name.
func (s *Stream) Key(name string) error {
	top := &s.stack[len(s.stack)-1]
	if top.kind != kindObject || top.pendingKey {
		return ErrState
	}
	if top.count > 0 {
		s.structural(",")
	}
	s.newline(s.Depth())
	b, err := json.MarshalNoEscape(name)
	if err != nil {
		return err
	}
	sep := ":"
	if s.opt.Indent != "" {
		sep = ": "
	}
	s.structural(string(b) + sep)
	top.pendingKey = true
	top.key = name
	return nil
}

// JSON writes an already encoded JSON value.
func (s *Stream) JSON(text []byte) error {
	if err := s.beforeValue(); err != nil {
		return err
	}
	s.segs = append(s.segs, Segment{Kind: KindJSON, Text: string(text)})
	s.afterValue()
	return nil
}

// Raw writes text verbatim as one value.
func (s *Stream) Raw(text string) error {
	if err := s.beforeValue(); err != nil {
		return err
	}
	s.segs = append(s.segs, Segment{Kind: KindRaw, Text: text})
	s.afterValue()
	return nil
}

func (s *Stream) open(kind containerKind, delim string) error {
	if err := s.beforeValue(); err != nil {
		return err
	}
	if s.opt.MaxDepth > 0 && s.Depth() >= s.opt.MaxDepth {
		return ErrTooDeep
	}
	path := s.Path()
	s.structural(delim)
	s.stack = append(s.stack, frame{kind: kind, path: path})
	return nil
}

func (s *Stream) close(kind containerKind, delim string) error {
	top := s.stack[len(s.stack)-1]
	if top.kind != kind || top.pendingKey {
		return ErrState
	}
	s.stack = s.stack[:len(s.stack)-1]
	if top.count > 0 {
		s.newline(s.Depth())
	}
	s.structural(delim)
	s.afterValue()
	return nil
}

// BeginObject opens an object.
func (s *Stream) BeginObject() error { return s.open(kindObject, "{") }

// EndObject closes the innermost object.
func (s *Stream) EndObject() error { return s.close(kindObject, "}") }

// BeginArray opens an array.
func (s *Stream) BeginArray() error { return s.open(kindArray, "[") }

// EndArray closes the innermost array.
func (s *Stream) EndArray() error { return s.close(kindArray, "]") }

// Complete reports whether the root slot holds exactly one closed value.
func (s *Stream) Complete() bool {
	return len(s.stack) == 1 && s.stack[0].count == 1
}

func escapePointer(key string) string {
	if !strings.ContainsAny(key, "~/") {
		return key
	}
	key = strings.ReplaceAll(key, "~", "~0")
	return strings.ReplaceAll(key, "/", "~1")
}
