package options

import "github.com/reoring/chartopts"

// Series is one entry of ChartOptions.Series. The encoder writes the
// OptionType token as the leading "type" member.
type Series interface {
	chartopts.Typed
}

type LineSeries struct {
	ID           *string
	Name         *string
	XAxisIndex   *int
	YAxisIndex   *int
	DatasetIndex *int
	Encode       map[string]any
	Data         any
	Stack        *string
	Smooth       *bool
	Step         Step
	ConnectNulls *bool
	ShowSymbol   *bool
	Symbol       *string
	SymbolSize   chartopts.NumberArrayOrFunction
	Label        *Label
	LineStyle    *LineStyle
	AreaStyle    *AreaStyle
	ItemStyle    *ItemStyle
	Emphasis     *Emphasis
	Z            *int
}

func (*LineSeries) OptionType() string { return "line" }

type BarSeries struct {
	ID              *string
	Name            *string
	XAxisIndex      *int
	YAxisIndex      *int
	DatasetIndex    *int
	Encode          map[string]any
	Data            any
	Stack           *string
	BarWidth        chartopts.NumberOrString
	BarMaxWidth     chartopts.NumberOrString
	BarGap          *string
	ShowBackground  *bool
	BackgroundStyle *ItemStyle
	Label           *Label
	ItemStyle       *ItemStyle
	Emphasis        *Emphasis
}

func (*BarSeries) OptionType() string { return "bar" }

type PieSeries struct {
	ID                *string
	Name              *string
	DatasetIndex      *int
	Encode            map[string]any
	Data              any
	Radius            []chartopts.NumberOrString
	Center            []chartopts.NumberOrString
	RoseType          PieRoseType
	StartAngle        *float64
	Clockwise         *bool
	AvoidLabelOverlap *bool
	SelectedMode      SelectedMode
	Label             *Label
	ItemStyle         *ItemStyle
	Emphasis          *Emphasis
}

func (*PieSeries) OptionType() string { return "pie" }

type ScatterSeries struct {
	ID           *string
	Name         *string
	XAxisIndex   *int
	YAxisIndex   *int
	DatasetIndex *int
	Encode       map[string]any
	Data         any
	Symbol       *string
	SymbolSize   chartopts.NumberArrayOrFunction
	Label        *Label
	ItemStyle    *ItemStyle
	Emphasis     *Emphasis
}

func (*ScatterSeries) OptionType() string { return "scatter" }

type MapSeries struct {
	ID           *string
	Name         *string
	Map          *string
	GeoIndex     *int
	Roam         Roam
	Zoom         *float64
	Center       []float64
	ScaleLimit   *ScaleLimit
	NameMap      map[string]string
	SelectedMode SelectedMode
	Data         any
	Label        *Label
	ItemStyle    *ItemStyle
	Emphasis     *Emphasis
}

func (*MapSeries) OptionType() string { return "map" }

// DataItem is a named datum for pie and map series.
type DataItem struct {
	Name      *string
	Value     any
	Selected  *bool
	ItemStyle *ItemStyle
	Label     *Label
}
