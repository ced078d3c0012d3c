package chart_test

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/reoring/chartopts/chart"
)

func TestGroup_InitConnectsMembers(t *testing.T) {
	rt := &recorder{}
	g := chart.NewGroup("dash")
	a, b := newChart(rt), newChart(rt)
	a.ID, b.ID = "a", "b"
	g.Add(a)
	g.Add(b)

	for _, c := range []*chart.Chart{a, b} {
		if err := c.Init(context.Background()); err != nil {
			t.Fatalf("init %s: %v", c.ID, err)
		}
	}
	if len(rt.calls) != 4 {
		t.Fatalf("want 4 calls, got %d", len(rt.calls))
	}
	connect := rt.calls[3]
	if connect.identifier != "window.chartopts.connectChart" {
		t.Fatalf("unexpected identifier %q", connect.identifier)
	}
	if connect.args[0] != "b" || connect.args[1] != "dash" {
		t.Fatalf("unexpected connect args %v", connect.args)
	}
	if got := g.Members(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("unexpected members %v", got)
	}
}

func TestGroup_DisposeLeavesGroup(t *testing.T) {
	rt := &recorder{}
	g := chart.NewGroup("")
	if !strings.HasPrefix(g.Name, "group") || len(g.Name) != len("group")+32 {
		t.Fatalf("unexpected group name %q", g.Name)
	}
	a, b := newChart(rt), newChart(rt)
	a.ID, b.ID = "a", "b"
	g.Add(a)
	g.Add(b)

	a.Dispose(context.Background())
	if a.Group != nil {
		t.Fatalf("disposed chart still grouped")
	}
	if got := g.Members(); !slices.Equal(got, []string{"b"}) {
		t.Fatalf("unexpected members %v", got)
	}
}

func TestInit_WithoutGroupSkipsConnect(t *testing.T) {
	rt := &recorder{}
	if err := newChart(rt).Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if len(rt.calls) != 1 || rt.calls[0].identifier != "window.chartopts.initChart" {
		t.Fatalf("unexpected calls: %+v", rt.calls)
	}
}

func TestSetRuntimeLogging(t *testing.T) {
	rt := &recorder{}
	if err := chart.SetRuntimeLogging(context.Background(), rt, "", true); err != nil {
		t.Fatalf("set logging: %v", err)
	}
	if err := chart.SetRuntimeLogging(context.Background(), rt, "app.viz", false); err != nil {
		t.Fatalf("set logging: %v", err)
	}
	if rt.calls[0].identifier != "window.chartopts.changeLogging" || rt.calls[0].args[0] != true {
		t.Fatalf("unexpected call %+v", rt.calls[0])
	}
	if rt.calls[1].identifier != "app.viz.changeLogging" || rt.calls[1].args[0] != false {
		t.Fatalf("unexpected call %+v", rt.calls[1])
	}
}
