package options_test

import (
	"testing"

	chartopts "github.com/reoring/chartopts"
	"github.com/reoring/chartopts/options"
)

func encode(t *testing.T, v any) string {
	t.Helper()
	out, err := chartopts.NewConfig(chartopts.Settings{}).Encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return out.String()
}

func TestEnumTokens(t *testing.T) {
	cases := []struct {
		in   chartopts.Enum
		want string
	}{
		{options.OrientVertical, "vertical"},
		{options.AxisTypeCategory, "category"},
		{options.TooltipTriggerNone, "none"},
		{options.FilterModeWeakFilter, "weakFilter"},
		{options.LabelPositionInsideTop, "insideTop"},
		{options.EmphasisFocusSeries, "series"},
		{options.ImageTypeSvg, "svg"},
	}
	for _, tc := range cases {
		if got := chartopts.EnumToken(tc.in); got != tc.want {
			t.Fatalf("%T: want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestMixedBooleanEnums(t *testing.T) {
	got := encode(t, []any{
		options.RoamTrue, options.RoamMove,
		options.SelectedModeFalse, options.SelectedModeMultiple,
		options.AxisPointerStatusTrue, options.AxisPointerStatusHide,
	})
	if got != `[true,"move",false,"multiple",true,"hide"]` {
		t.Fatalf("unexpected: %s", got)
	}
}

func TestSeriesCarryType(t *testing.T) {
	series := []options.Series{
		&options.LineSeries{},
		&options.BarSeries{},
		&options.PieSeries{},
		&options.ScatterSeries{},
		&options.MapSeries{},
	}
	got := encode(t, series)
	want := `[{"type":"line"},{"type":"bar"},{"type":"pie"},{"type":"scatter"},{"type":"map"}]`
	if got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestPieSeries(t *testing.T) {
	pie := &options.PieSeries{
		Name:     chartopts.Ptr("Access"),
		Radius:   []chartopts.NumberOrString{chartopts.Percent(40), chartopts.Percent(70)},
		RoseType: options.PieRoseTypeArea,
		Data: []options.DataItem{
			{Name: chartopts.Ptr("Search"), Value: 1048},
			{Name: chartopts.Ptr("Direct"), Value: 735, ItemStyle: &options.ItemStyle{Color: chartopts.Hex("5470c6")}},
		},
		Label: &options.Label{Show: chartopts.Ptr(true), Position: options.LabelPositionOutside, Formatter: chartopts.Template("{b}: {d}%")},
	}
	got := encode(t, pie)
	want := `{"type":"pie","name":"Access","data":[{"name":"Search","value":1048},` +
		`{"name":"Direct","value":735,"itemStyle":{"color":"#5470c6"}}],` +
		`"radius":["40%","70%"],"roseType":"area","label":{"show":true,"position":"outside","formatter":"{b}: {d}%"}}`
	if got != want {
		t.Fatalf("want %s\ngot  %s", want, got)
	}
}

func TestSliderDataZoomWithDates(t *testing.T) {
	dz := &options.SliderDataZoom{
		DataZoomWindow: options.DataZoomWindow{
			StartValue: chartopts.Date{Year: 2024, Month: 1, Day: 1},
			EndValue:   chartopts.Date{Year: 2024, Month: 6, Day: 30},
			FilterMode: options.FilterModeNone,
		},
		Height:         chartopts.Pixels(20),
		LabelFormatter: chartopts.Callback("v => new Date(v).toISOString()"),
	}
	got := encode(t, dz)
	want := `{"type":"slider","filterMode":"none","startValue":"2024-01-01","endValue":"2024-06-30",` +
		`"height":20,"labelFormatter":v => new Date(v).toISOString()}`
	if got != want {
		t.Fatalf("want %s\ngot  %s", want, got)
	}
}

func TestToolboxAndGeo(t *testing.T) {
	opts := &options.ChartOptions{
		Toolbox: &options.Toolbox{Feature: &options.ToolboxFeature{
			SaveAsImage: &options.SaveAsImageFeature{Type: options.ImageTypePng},
			MagicType:   &options.MagicTypeFeature{Type: []string{"line", "bar"}},
		}},
		Geo: &options.Geo{
			Map:        chartopts.Ptr("USA"),
			Roam:       options.RoamScale,
			ScaleLimit: &options.ScaleLimit{Min: chartopts.Ptr(1.0), Max: chartopts.Ptr(4.0)},
		},
	}
	got := encode(t, opts)
	want := `{"toolbox":{"feature":{"saveAsImage":{"type":"png"},"magicType":{"type":["line","bar"]}}},` +
		`"geo":{"map":"USA","roam":"scale","scaleLimit":{"min":1,"max":4}}}`
	if got != want {
		t.Fatalf("want %s\ngot  %s", want, got)
	}
}
