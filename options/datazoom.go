package options

import "github.com/reoring/chartopts"

// DataZoom is one entry of ChartOptions.DataZoom.
type DataZoom interface {
	chartopts.Typed
}

// DataZoomWindow holds the fields shared by the inside and slider variants.
// StartValue and EndValue accept numbers, category names or temporal values.
type DataZoomWindow struct {
	ID         *string
	Disabled   *bool
	XAxisIndex chartopts.NumberOrNumberArray
	YAxisIndex chartopts.NumberOrNumberArray
	FilterMode FilterMode
	Start      *float64
	End        *float64
	StartValue any
	EndValue   any
	MinSpan    *float64
	MaxSpan    *float64
	Orient     Orient
	ZoomLock   *bool
	Throttle   *float64
}

type InsideDataZoom struct {
	DataZoomWindow
	ZoomOnMouseWheel *bool
	MoveOnMouseMove  *bool
}

func (*InsideDataZoom) OptionType() string { return "inside" }

type SliderDataZoom struct {
	DataZoomWindow
	Show            *bool
	Left            chartopts.NumberOrString
	Right           chartopts.NumberOrString
	Bottom          chartopts.NumberOrString
	Height          chartopts.NumberOrString
	BackgroundColor chartopts.Color
	FillerColor     chartopts.Color
	ShowDetail      *bool
	LabelFormatter  chartopts.StringOrFunction
}

func (*SliderDataZoom) OptionType() string { return "slider" }
