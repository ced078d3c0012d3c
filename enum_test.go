package chartopts_test

import (
	"errors"
	"testing"

	chartopts "github.com/reoring/chartopts"
)

type orient int

const (
	orientHorizontal orient = iota + 1
	orientVertical
)

var orientNames = []string{"", "Horizontal", "Vertical"}

func (o orient) EnumName() string { return chartopts.EnumNameOf(orientNames, o) }

type roam int

const (
	roamTrue roam = iota + 1
	roamFalse
	roamScale
)

var roamNames = []string{"", "True", "False", "Scale"}

func (r roam) EnumName() string { return chartopts.EnumNameOf(roamNames, r) }

func (r roam) EnumBool() (bool, bool) {
	switch r {
	case roamTrue:
		return true, true
	case roamFalse:
		return false, true
	}
	return false, false
}

func marshal(t *testing.T, v any) string {
	t.Helper()
	out, err := chartopts.ConfigFor(chartopts.Settings{}, false).Encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return out.String()
}

func TestEnum_TokenLowersFirstRune(t *testing.T) {
	if got := chartopts.EnumToken(orientHorizontal); got != "horizontal" {
		t.Fatalf("want horizontal, got %q", got)
	}
	if got := marshal(t, []orient{orientVertical, orientHorizontal}); got != `["vertical","horizontal"]` {
		t.Fatalf("unexpected: %s", got)
	}
}

func TestEnum_MixedBooleanMembers(t *testing.T) {
	got := marshal(t, []roam{roamTrue, roamFalse, roamScale})
	if got != `[true,false,"scale"]` {
		t.Fatalf("unexpected: %s", got)
	}
}

func TestEnum_ZeroFieldOmitted(t *testing.T) {
	type legend struct {
		Orient orient
		Roam   roam
	}
	if got := marshal(t, legend{Roam: roamScale}); got != `{"roam":"scale"}` {
		t.Fatalf("unexpected: %s", got)
	}
}

func TestEnum_UnknownValueFails(t *testing.T) {
	_, err := chartopts.ConfigFor(chartopts.Settings{}, false).Encode([]orient{orient(9)})
	iss, ok := chartopts.AsIssues(err)
	if !ok || iss[0].Code != chartopts.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum, got %v", err)
	}
	if iss[0].Path != "/0" {
		t.Fatalf("want path /0, got %q", iss[0].Path)
	}
	if errors.Is(err, chartopts.ErrUnsupported) {
		t.Fatalf("invalid enum must not report ErrUnsupported")
	}
}

func TestEnum_UnknownFieldValueFails(t *testing.T) {
	type legend struct {
		Show   bool
		Orient orient
	}
	out, err := chartopts.ConfigFor(chartopts.Settings{}, false).Encode(legend{Show: true, Orient: orient(9)})
	iss, ok := chartopts.AsIssues(err)
	if !ok || iss[0].Code != chartopts.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum, got %v (output %q)", err, out.String())
	}
	if iss[0].Path != "/orient" {
		t.Fatalf("want path /orient, got %q", iss[0].Path)
	}
}

func TestEnumNameOf_OutOfRange(t *testing.T) {
	if got := chartopts.EnumNameOf(orientNames, orient(-1)); got != "" {
		t.Fatalf("want empty, got %q", got)
	}
	if got := chartopts.EnumNameOf(orientNames, orient(3)); got != "" {
		t.Fatalf("want empty, got %q", got)
	}
}
