package document_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chartopts "github.com/reoring/chartopts"
	"github.com/reoring/chartopts/chart"
	"github.com/reoring/chartopts/internal/document"
)

func encode(t *testing.T, d *document.Document) string {
	t.Helper()
	out, err := chartopts.NewConfig(chartopts.Settings{}).Encode(d.Options)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return out.String()
}

const yamlDoc = `
id: sales
renderer: canvas
height: 320px
dataSources:
  - id: s1
    url: /api/s1
    path: rows
    options:
      method: POST
      headers: {X-Token: abc}
maps:
  - name: floor
    type: svg
    svg: "<svg/>"
options:
  title:
    text: Sales
  tooltip:
    formatter: {$function: "p => p.name"}
  series:
    - type: line
      data: {$dataSource: s1, $path: values}
      areaStyle:
        color:
          $linearGradient: {x: 0, y: 0, x2: 0, y2: 1, colorStops: [{offset: 0, color: red}]}
  xAxis:
    data: [{$date: "2024-01-02"}, 2024-01-03, {$dateTime: "2024-01-02T03:04:05"}]
`

func TestParse_YAMLDirectives(t *testing.T) {
	d, err := document.Parse([]byte(yamlDoc), document.FormatYAML, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"series":[{"areaStyle":{"color":new echarts.graphic.LinearGradient(0, 0, 0, 1, [{"offset":0,"color":"red"}], null)},` +
		`"data":window.chartopts.getDataSource('s1').values,"type":"line"}],` +
		`"title":{"text":"Sales"},"tooltip":{"formatter":p => p.name},` +
		`"xAxis":{"data":["2024-01-02","2024-01-03","2024-01-02T03:04:05.000"]}}`
	if got := encode(t, d); got != want {
		t.Fatalf("want %s\ngot  %s", want, got)
	}
	if d.ID != "sales" || d.Renderer != chart.RendererCanvas || d.Height != "320px" {
		t.Fatalf("unexpected header: %+v", d)
	}
	if len(d.DataSources) != 1 {
		t.Fatalf("want 1 data source, got %d", len(d.DataSources))
	}
	src := d.DataSources[0]
	if src.FetchID() != "s1" || src.Path != "rows" || src.Options == nil || src.Options.Method != "POST" || src.Options.Headers["X-Token"] != "abc" {
		t.Fatalf("unexpected data source: %+v", src)
	}
	if len(d.Maps) != 1 || d.Maps[0].Name() != "floor" || d.Maps[0].MapType() != "svg" {
		t.Fatalf("unexpected maps: %+v", d.Maps)
	}
}

func TestParse_JSON(t *testing.T) {
	in := `{"options":{"series":[{"type":"bar","data":[1,2.5,{"$time":"2024-01-02T03:04:05+09:00"}]}]}}`
	d, err := document.Parse([]byte(in), document.FormatJSON, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"series":[{"data":[1,2.5,"2024-01-02T03:04:05.000+09:00"],"type":"bar"}]}`
	if got := encode(t, d); got != want {
		t.Fatalf("want %s\ngot  %s", want, got)
	}
}

func TestParse_TOMLLocalDates(t *testing.T) {
	in := `
width = "100%"

[[dataSources]]
id = "rows"
url = "/rows.json"
fetchAs = "string"

[options.xAxis]
min = 2024-01-02
max = 2024-02-03T04:05:06

[[options.series]]
type = "scatter"
data = { "$dataSource" = "rows" }
`
	d, err := document.Parse([]byte(in), document.FormatTOML, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"series":[{"data":window.chartopts.getDataSource('rows'),"type":"scatter"}],` +
		`"xAxis":{"max":"2024-02-03T04:05:06.000","min":"2024-01-02"}}`
	if got := encode(t, d); got != want {
		t.Fatalf("want %s\ngot  %s", want, got)
	}
	if d.DataSources[0].FetchAs != chartopts.FetchAsString {
		t.Fatalf("fetchAs not applied")
	}
}

func TestParse_DuplicateKeys(t *testing.T) {
	cases := []struct {
		name   string
		format document.Format
		in     string
		key    string
	}{
		{"yaml", document.FormatYAML, "options:\n  a: 1\n  a: 2\n", "a"},
		{"json", document.FormatJSON, `{"options":{"b":1,"b":2}}`, "b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := document.Parse([]byte(tc.in), tc.format, "")
			var dup *document.DuplicateKeyError
			if !errors.As(err, &dup) {
				t.Fatalf("want DuplicateKeyError, got %v", err)
			}
			if dup.Key != tc.key {
				t.Fatalf("want key %q, got %q", tc.key, dup.Key)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		path string
		msg  string
	}{
		{"unknown top-level", "option: {}\n", "/option", "unknown field"},
		{"missing options", "id: x\n", "/options", "missing"},
		{"unknown data source", "options:\n  data: {$dataSource: nope}\n", "/options/data", "unknown data source"},
		{"unknown directive", "options:\n  data: {$nope: 1}\n", "/options/data/$nope", "unknown directive"},
		{"extra directive key", "options:\n  f: {$function: x, other: 1}\n", "/options/f/other", "unexpected key"},
		{"empty function", "options:\n  f: {$function: \"\"}\n", "/options/f", "empty function"},
		{"bad date", "options:\n  d: {$date: \"2024-13-01\"}\n", "/options/d", "invalid temporal value"},
		{"bad renderer", "renderer: webgl\noptions: {}\n", "/renderer", "unknown renderer"},
		{"missing url", "dataSources: [{id: a}]\noptions: {}\n", "/dataSources/0/url", "missing"},
		{"duplicate source", "dataSources: [{id: a, url: x}, {id: a, url: y}]\noptions: {}\n", "/dataSources/1/id", "duplicate data source"},
		{"gradient coordinate", "options:\n  c: {$linearGradient: {x: 0, y: 0, x2: 1, colorStops: []}}\n", "/options/c/$linearGradient/y2", "must be a number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := document.Parse([]byte(tc.in), document.FormatYAML, "")
			var de *document.Error
			if !errors.As(err, &de) {
				t.Fatalf("want *document.Error, got %v", err)
			}
			if de.Path != tc.path {
				t.Fatalf("want path %q, got %q (%v)", tc.path, de.Path, err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("want message containing %q, got %v", tc.msg, err)
			}
		})
	}
}

func TestLoad_MapFiles(t *testing.T) {
	dir := t.TempDir()
	geo := `{"type":"FeatureCollection","features":[]}`
	if err := os.WriteFile(filepath.Join(dir, "world.json"), []byte(geo), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "floor.svg"), []byte("<svg></svg>"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc := `
maps:
  - name: world
    type: geoJSON
    file: world.json
    specialAreas:
      Alaska: {left: -131, top: 25, width: 15}
  - name: floor
    type: svg
    file: floor.svg
options:
  series: [{type: map, map: world}]
`
	path := filepath.Join(dir, "chart.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := document.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	maps, err := chartopts.EncodeMaps(d.Maps)
	if err != nil {
		t.Fatalf("encode maps: %v", err)
	}
	want := `[{"type":"geoJSON","mapName":"world","geoJSON":` + geo +
		`,"specialAreas":{"Alaska":{"left":-131,"top":25,"width":15}}},` +
		`{"type":"svg","mapName":"floor","svg":"<svg></svg>"}]`
	if string(maps) != want {
		t.Fatalf("want %s\ngot  %s", want, maps)
	}
}

func TestLoad_MissingMapFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.json")
	doc := `{"maps":[{"name":"w","type":"geoJSON","file":"nope.json"}],"options":{}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := document.Load(path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}

func TestFormatOf(t *testing.T) {
	for in, want := range map[string]document.Format{
		"a.yaml": document.FormatYAML,
		"a.YML":  document.FormatYAML,
		"a.toml": document.FormatTOML,
		"a.json": document.FormatJSON,
	} {
		got, err := document.FormatOf(in)
		if err != nil || got != want {
			t.Fatalf("%s: want %v, got %v (%v)", in, want, got, err)
		}
	}
	if _, err := document.FormatOf("a.txt"); err == nil {
		t.Fatalf("expected error for unknown extension")
	}
}

func TestDocument_Chart(t *testing.T) {
	d, err := document.Parse([]byte("theme: dark\noptions: {}\n"), document.FormatYAML, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := d.Chart(&chart.ScriptRuntime{})
	if !strings.HasPrefix(c.ID, "chart") || c.Theme != "dark" || c.Renderer != chart.RendererSvg {
		t.Fatalf("unexpected chart: %+v", c)
	}
}

func TestSchema(t *testing.T) {
	s := document.Schema()
	if s.ID != document.SchemaID || len(s.Required) != 1 || s.Required[0] != "options" {
		t.Fatalf("unexpected root schema: %+v", s)
	}
	for _, key := range []string{"id", "theme", "renderer", "width", "height", "locale", "dataSources", "maps", "options"} {
		if s.Properties[key] == nil {
			t.Fatalf("schema is missing %q", key)
		}
	}
	for _, def := range []string{"function", "linearGradient", "radialGradient", "dataSource", "date", "dateTime", "time"} {
		if s.Defs[def] == nil {
			t.Fatalf("schema is missing directive %q", def)
		}
	}
	if got := s.Defs["dataSource"].Required; len(got) != 1 || got[0] != "$dataSource" {
		t.Fatalf("unexpected dataSource requirement: %v", got)
	}
}
