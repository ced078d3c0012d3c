package chart_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	chartopts "github.com/reoring/chartopts"
	"github.com/reoring/chartopts/chart"
	"github.com/reoring/chartopts/options"
)

type call struct {
	identifier string
	args       []any
}

type recorder struct {
	calls []call
	err   error
}

func (r *recorder) InvokeVoid(ctx context.Context, identifier string, args ...any) error {
	r.calls = append(r.calls, call{identifier: identifier, args: args})
	return r.err
}

func newChart(rt chart.Runtime) *chart.Chart {
	c := chart.New(rt, &options.ChartOptions{
		Series: []options.Series{&options.BarSeries{Data: []int{1, 2}}},
	})
	c.NoCache = true
	return c
}

func TestNew_GeneratesID(t *testing.T) {
	c := newChart(&recorder{})
	if !strings.HasPrefix(c.ID, "chart") || len(c.ID) != len("chart")+32 {
		t.Fatalf("unexpected id %q", c.ID)
	}
	if newChart(&recorder{}).ID == c.ID {
		t.Fatalf("ids must be unique")
	}
}

func TestInit_InvokesRuntime(t *testing.T) {
	rt := &recorder{}
	c := newChart(rt)
	c.ID = "c1"
	c.Theme = "dark"
	c.Height = "300px"
	src := chartopts.NewExternalDataSourceWithID("d", "/d.json")
	c.DataSources = []*chartopts.ExternalDataSource{src}
	c.Maps = []chartopts.MapDefinition{chartopts.SVGMap{MapName: "m", SVG: "s"}}

	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rt.calls) != 1 {
		t.Fatalf("want 1 call, got %d", len(rt.calls))
	}
	got := rt.calls[0]
	if got.identifier != "window.chartopts.initChart" {
		t.Fatalf("unexpected identifier %q", got.identifier)
	}
	want := []any{
		"c1",
		"dark",
		`{"renderer":"svg","height":"300px"}`,
		`{"series":[{"type":"bar","data":[1,2]}]}`,
		`[{"type":"svg","mapName":"m","svg":"s"}]`,
		`[{"id":"d","url":"/d.json","fetchAs":"json"}]`,
	}
	if len(got.args) != len(want) {
		t.Fatalf("want %d args, got %d", len(want), len(got.args))
	}
	for i := range want {
		if got.args[i] != want[i] {
			t.Fatalf("arg %d: want %v, got %v", i, want[i], got.args[i])
		}
	}
}

func TestUpdate_SkipsMapsAndRunsLoader(t *testing.T) {
	rt := &recorder{}
	c := newChart(rt)
	c.ID = "c2"
	c.Maps = []chartopts.MapDefinition{chartopts.SVGMap{MapName: "m", SVG: "s"}}
	loads := 0
	c.DataLoader = func(ctx context.Context, c *chart.Chart) error {
		loads++
		c.Options = &options.ChartOptions{Series: []options.Series{&options.BarSeries{Data: []int{loads}}}}
		return nil
	}

	if err := c.Update(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loads != 0 {
		t.Fatalf("loader must not run when not requested")
	}
	if err := c.Update(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := rt.calls[len(rt.calls)-1]
	if last.identifier != "window.chartopts.updateChart" {
		t.Fatalf("unexpected identifier %q", last.identifier)
	}
	if last.args[1] != `{"series":[{"type":"bar","data":[1]}]}` {
		t.Fatalf("loader result not serialized: %v", last.args[1])
	}
	if last.args[2] != nil || last.args[3] != nil {
		t.Fatalf("update must not send maps or empty fetch list: %v %v", last.args[2], last.args[3])
	}
}

func TestInit_LoaderErrorStops(t *testing.T) {
	rt := &recorder{}
	c := newChart(rt)
	boom := errors.New("boom")
	c.DataLoader = func(context.Context, *chart.Chart) error { return boom }
	if err := c.Init(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("want loader error, got %v", err)
	}
	if len(rt.calls) != 0 {
		t.Fatalf("runtime must not be called after a loader error")
	}
}

func TestInit_EncodeErrorPropagates(t *testing.T) {
	rt := &recorder{}
	c := newChart(rt)
	c.Options = map[string]any{"bad": make(chan int)}
	_, err := c.Payload(false)
	if _, ok := chartopts.AsIssues(err); !ok {
		t.Fatalf("expected encode issues, got %v", err)
	}
	if err := c.Init(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if len(rt.calls) != 0 {
		t.Fatalf("runtime must not be called on encode failure")
	}
}

func TestTeardown_SwallowsRuntimeErrors(t *testing.T) {
	var buf bytes.Buffer
	rt := &recorder{err: errors.New("chart gone")}
	c := newChart(rt)
	c.ID = "c3"
	c.Logger = log.New(&buf)

	c.Clear(context.Background())
	c.Dispose(context.Background())

	if len(rt.calls) != 2 {
		t.Fatalf("want 2 calls, got %d", len(rt.calls))
	}
	if rt.calls[0].identifier != "window.chartopts.clearChart" || rt.calls[1].identifier != "window.chartopts.disposeChart" {
		t.Fatalf("unexpected calls: %+v", rt.calls)
	}
	out := buf.String()
	if !strings.Contains(out, "dispose chart failed") || !strings.Contains(out, "chart gone") {
		t.Fatalf("teardown failure not logged: %q", out)
	}
}

func TestRuntimeNamespaceFromSettings(t *testing.T) {
	rt := &recorder{}
	c := newChart(rt)
	c.Settings.RuntimeNamespace = "app.viz"
	c.Dispose(context.Background())
	if rt.calls[0].identifier != "app.viz.disposeChart" {
		t.Fatalf("unexpected identifier %q", rt.calls[0].identifier)
	}
}

func TestScriptRuntime(t *testing.T) {
	rt := &chart.ScriptRuntime{}
	c := newChart(rt)
	c.ID = "c4"
	c.Renderer = chart.RendererCanvas
	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stmts := rt.Statements()
	if len(stmts) != 1 {
		t.Fatalf("want 1 statement, got %d", len(stmts))
	}
	want := `window.chartopts.initChart("c4", null, "{\"renderer\":\"canvas\"}", "{\"series\":[{\"type\":\"bar\",\"data\":[1,2]}]}", null, null);`
	if stmts[0] != want {
		t.Fatalf("want %s\ngot  %s", want, stmts[0])
	}
	script := rt.Script()
	if !strings.HasPrefix(script, "(async () => {\n  await window.chartopts.initChart(") {
		t.Fatalf("unexpected script: %s", script)
	}
	rt.Reset()
	if len(rt.Statements()) != 0 {
		t.Fatalf("reset should drop statements")
	}
}

func TestScriptRuntime_EscapesHTML(t *testing.T) {
	rt := &chart.ScriptRuntime{}
	if err := rt.InvokeVoid(context.Background(), "f", "</script>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := rt.Statements()[0]; strings.Contains(s, "</script>") {
		t.Fatalf("script end tag not escaped: %s", s)
	}
}

func TestScriptRuntime_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rt := &chart.ScriptRuntime{}
	if err := rt.InvokeVoid(ctx, "f"); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
