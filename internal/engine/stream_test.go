package engine

import (
	"errors"
	"testing"
)

func TestStream_CompactObject(t *testing.T) {
	s := NewStream(StreamOptions{})
	must(t, s.BeginObject())
	must(t, s.Key("a"))
	must(t, s.JSON([]byte("1")))
	must(t, s.Key("f"))
	must(t, s.Raw("x => x"))
	must(t, s.EndObject())
	if !s.Complete() {
		t.Fatalf("stream should be complete")
	}
	if got := string(Join(s.Segments())); got != `{"a":1,"f":x => x}` {
		t.Fatalf("unexpected: %s", got)
	}
	kinds := []Kind{KindStructural, KindJSON, KindStructural, KindRaw, KindStructural}
	segs := s.Segments()
	if len(segs) != len(kinds) {
		t.Fatalf("want %d segments, got %d: %+v", len(kinds), len(segs), segs)
	}
	for i, k := range kinds {
		if segs[i].Kind != k {
			t.Fatalf("segment %d: want kind %d, got %d", i, k, segs[i].Kind)
		}
	}
}

func TestStream_Path(t *testing.T) {
	s := NewStream(StreamOptions{})
	must(t, s.BeginObject())
	must(t, s.Key("series"))
	must(t, s.BeginArray())
	must(t, s.JSON([]byte("0")))
	must(t, s.BeginObject())
	must(t, s.Key("a/b"))
	if got := s.Path(); got != "/series/1/a~1b" {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestStream_StateErrors(t *testing.T) {
	s := NewStream(StreamOptions{})
	must(t, s.BeginObject())
	if err := s.JSON([]byte("1")); !errors.Is(err, ErrState) {
		t.Fatalf("value without key: want ErrState, got %v", err)
	}
	must(t, s.Key("k"))
	if err := s.EndObject(); !errors.Is(err, ErrState) {
		t.Fatalf("close with pending key: want ErrState, got %v", err)
	}
	if err := s.EndArray(); !errors.Is(err, ErrState) {
		t.Fatalf("mismatched close: want ErrState, got %v", err)
	}

	root := NewStream(StreamOptions{})
	must(t, root.JSON([]byte("1")))
	if err := root.JSON([]byte("2")); !errors.Is(err, ErrState) {
		t.Fatalf("second root value: want ErrState, got %v", err)
	}
}

func TestStream_MaxDepth(t *testing.T) {
	s := NewStream(StreamOptions{MaxDepth: 1})
	must(t, s.BeginArray())
	if err := s.BeginArray(); !errors.Is(err, ErrTooDeep) {
		t.Fatalf("want ErrTooDeep, got %v", err)
	}
}

func TestStream_EmptyContainersStayInline(t *testing.T) {
	s := NewStream(StreamOptions{Indent: "\t"})
	must(t, s.BeginObject())
	must(t, s.Key("a"))
	must(t, s.BeginArray())
	must(t, s.EndArray())
	must(t, s.EndObject())
	if got := string(Join(s.Segments())); got != "{\n\t\"a\": []\n}" {
		t.Fatalf("unexpected: %q", got)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
