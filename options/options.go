package options

import "github.com/reoring/chartopts"

// ChartOptions is the root of the option tree.
type ChartOptions struct {
	Title           *Title
	Legend          *Legend
	Grid            []*Grid
	Tooltip         *Tooltip
	AxisPointer     *AxisPointer
	Toolbox         *Toolbox
	XAxis           []*Axis
	YAxis           []*Axis
	Geo             *Geo
	DataZoom        []DataZoom
	Dataset         []*Dataset
	Series          []Series
	Color           []chartopts.Color
	BackgroundColor chartopts.Color
	TextStyle       *TextStyle

	Animation         *bool
	AnimationDuration chartopts.NumberArrayOrFunction
	AnimationEasing   *string
	UseUTC            *bool
}

type Title struct {
	ID           *string
	Show         *bool
	Text         *string
	Link         *string
	Subtext      *string
	TextAlign    HorizontalAlign
	Left         chartopts.NumberOrString
	Top          chartopts.NumberOrString
	Right        chartopts.NumberOrString
	Bottom       chartopts.NumberOrString
	TextStyle    *TextStyle
	SubtextStyle *TextStyle
}

type TextStyle struct {
	Color      chartopts.Color
	FontStyle  *string
	FontWeight *string
	FontFamily *string
	FontSize   *float64
	LineHeight *float64
}

type Legend struct {
	Type         LegendType
	ID           *string
	Show         *bool
	Orient       Orient
	Left         chartopts.NumberOrString
	Top          chartopts.NumberOrString
	Right        chartopts.NumberOrString
	Bottom       chartopts.NumberOrString
	Icon         *string
	Data         []string
	Selected     map[string]bool
	SelectedMode SelectedMode
	Formatter    chartopts.StringOrFunction
	TextStyle    *TextStyle
}

type Grid struct {
	ID              *string
	Show            *bool
	Left            chartopts.NumberOrString
	Top             chartopts.NumberOrString
	Right           chartopts.NumberOrString
	Bottom          chartopts.NumberOrString
	Width           chartopts.NumberOrString
	Height          chartopts.NumberOrString
	ContainLabel    *bool
	BackgroundColor chartopts.Color
	BorderColor     chartopts.Color
}

type Tooltip struct {
	Show            *bool
	Trigger         TooltipTrigger
	AxisPointer     *AxisPointer
	Formatter       chartopts.StringOrFunction
	ValueFormatter  chartopts.JSFunction
	Position        chartopts.NumberArrayOrFunction
	BackgroundColor chartopts.Color
	BorderColor     chartopts.Color
	BorderWidth     *float64
	Confine         *bool
	TextStyle       *TextStyle
}

type AxisPointer struct {
	Show      *bool
	Type      AxisPointerType
	Status    AxisPointerStatus
	Snap      *bool
	Label     *Label
	LineStyle *LineStyle
	Link      []map[string]any
}

type Toolbox struct {
	Show    *bool
	Orient  Orient
	Left    chartopts.NumberOrString
	Top     chartopts.NumberOrString
	Right   chartopts.NumberOrString
	Feature *ToolboxFeature
}

type ToolboxFeature struct {
	SaveAsImage *SaveAsImageFeature
	Restore     *ToolboxButton
	DataView    *DataViewFeature
	DataZoom    *ToolboxButton
	MagicType   *MagicTypeFeature
}

type ToolboxButton struct {
	Show  *bool
	Title *string
}

type SaveAsImageFeature struct {
	Show       *bool
	Type       ImageType
	Name       *string
	PixelRatio *float64
}

type DataViewFeature struct {
	Show     *bool
	ReadOnly *bool
}

type MagicTypeFeature struct {
	Show *bool
	Type []string
}

type Axis struct {
	ID             *string
	Show           *bool
	Type           AxisType
	GridIndex      *int
	Position       *string
	Name           *string
	NameLocation   *string
	Inverse        *bool
	BoundaryGap    *bool
	Scale          *bool
	Min            chartopts.NumberOrString
	Max            chartopts.NumberOrString
	MinInterval    *float64
	Interval       *float64
	Data           []any
	AxisLine       *AxisLine
	AxisTick       *AxisTick
	AxisLabel      *AxisLabel
	SplitLine      *SplitLine
	MinorSplitLine *SplitLine
	SplitArea      *SplitArea
	AxisPointer    *AxisPointer
}

type AxisLine struct {
	Show      *bool
	OnZero    *bool
	LineStyle *LineStyle
}

type AxisTick struct {
	Show           *bool
	AlignWithLabel *bool
	Inside         *bool
	Length         *float64
}

type AxisLabel struct {
	Show      *bool
	Inside    *bool
	Rotate    *float64
	Margin    *float64
	Formatter chartopts.StringOrFunction
	Color     chartopts.Color
	FontSize  *float64
}

type SplitLine struct {
	Show      *bool
	LineStyle *LineStyle
}

type SplitArea struct {
	Show      *bool
	AreaStyle *AreaStyle
}

type LineStyle struct {
	Color       chartopts.Color
	Width       *float64
	Type        LineType
	Cap         LineCap
	Opacity     *float64
	ShadowBlur  *float64
	ShadowColor chartopts.Color
}

type AreaStyle struct {
	Color   chartopts.Color
	Opacity *float64
	Origin  chartopts.NumberOrString
}

type ItemStyle struct {
	Color        chartopts.Color
	BorderColor  chartopts.Color
	BorderWidth  *float64
	BorderType   LineType
	BorderRadius chartopts.NumberArrayOrFunction
	Opacity      *float64
	ShadowBlur   *float64
	ShadowColor  chartopts.Color
}

type Label struct {
	Show            *bool
	Position        LabelPosition
	Distance        *float64
	Rotate          *float64
	Formatter       chartopts.StringOrFunction
	Color           chartopts.Color
	FontSize        *float64
	FontWeight      *string
	BackgroundColor chartopts.Color
}

type Emphasis struct {
	Disabled  *bool
	Focus     EmphasisFocus
	Scale     *bool
	ItemStyle *ItemStyle
	LineStyle *LineStyle
	AreaStyle *AreaStyle
	Label     *Label
}

type Geo struct {
	ID         *string
	Show       *bool
	Map        *string
	Roam       Roam
	Zoom       *float64
	Center     []float64
	ScaleLimit *ScaleLimit
	NameMap    map[string]string
	Label      *Label
	ItemStyle  *ItemStyle
	Emphasis   *Emphasis
	Regions    []*Region
}

type ScaleLimit struct {
	Min *float64
	Max *float64
}

type Region struct {
	Name      *string
	Selected  *bool
	ItemStyle *ItemStyle
	Label     *Label
}

// Dataset holds tabular source data shared by series. Source is usually a
// two-dimensional slice or a data-source reference resolved by the runtime.
type Dataset struct {
	ID           *string
	Source       any
	Dimensions   []any
	SourceHeader *bool
}
