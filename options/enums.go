package options

import "github.com/reoring/chartopts"

// Enumerations start at 1; the zero value of each type means unset.

type Orient int

const (
	OrientHorizontal Orient = iota + 1
	OrientVertical
)

var orientNames = []string{"", "Horizontal", "Vertical"}

func (v Orient) EnumName() string { return chartopts.EnumNameOf(orientNames, v) }

type AxisType int

const (
	AxisTypeValue AxisType = iota + 1
	AxisTypeCategory
	AxisTypeTime
	AxisTypeLog
)

var axisTypeNames = []string{"", "Value", "Category", "Time", "Log"}

func (v AxisType) EnumName() string { return chartopts.EnumNameOf(axisTypeNames, v) }

type TooltipTrigger int

const (
	TooltipTriggerItem TooltipTrigger = iota + 1
	TooltipTriggerAxis
	TooltipTriggerNone
)

var tooltipTriggerNames = []string{"", "Item", "Axis", "None"}

func (v TooltipTrigger) EnumName() string { return chartopts.EnumNameOf(tooltipTriggerNames, v) }

type AxisPointerType int

const (
	AxisPointerTypeLine AxisPointerType = iota + 1
	AxisPointerTypeShadow
	AxisPointerTypeNone
	AxisPointerTypeCross
)

var axisPointerTypeNames = []string{"", "Line", "Shadow", "None", "Cross"}

func (v AxisPointerType) EnumName() string { return chartopts.EnumNameOf(axisPointerTypeNames, v) }

// AxisPointerStatus mixes booleans with named modes.
type AxisPointerStatus int

const (
	AxisPointerStatusTrue AxisPointerStatus = iota + 1
	AxisPointerStatusFalse
	AxisPointerStatusShow
	AxisPointerStatusHide
)

var axisPointerStatusNames = []string{"", "True", "False", "Show", "Hide"}

func (v AxisPointerStatus) EnumName() string {
	return chartopts.EnumNameOf(axisPointerStatusNames, v)
}

func (v AxisPointerStatus) EnumBool() (bool, bool) {
	switch v {
	case AxisPointerStatusTrue:
		return true, true
	case AxisPointerStatusFalse:
		return false, true
	}
	return false, false
}

// Roam controls mouse zoom and pan; it mixes booleans with named modes.
type Roam int

const (
	RoamTrue Roam = iota + 1
	RoamFalse
	RoamScale
	RoamMove
)

var roamNames = []string{"", "True", "False", "Scale", "Move"}

func (v Roam) EnumName() string { return chartopts.EnumNameOf(roamNames, v) }

func (v Roam) EnumBool() (bool, bool) {
	switch v {
	case RoamTrue:
		return true, true
	case RoamFalse:
		return false, true
	}
	return false, false
}

// SelectedMode mixes booleans with named modes.
type SelectedMode int

const (
	SelectedModeTrue SelectedMode = iota + 1
	SelectedModeFalse
	SelectedModeSingle
	SelectedModeMultiple
	SelectedModeSeries
)

var selectedModeNames = []string{"", "True", "False", "Single", "Multiple", "Series"}

func (v SelectedMode) EnumName() string { return chartopts.EnumNameOf(selectedModeNames, v) }

func (v SelectedMode) EnumBool() (bool, bool) {
	switch v {
	case SelectedModeTrue:
		return true, true
	case SelectedModeFalse:
		return false, true
	}
	return false, false
}

type LegendType int

const (
	LegendTypePlain LegendType = iota + 1
	LegendTypeScroll
)

var legendTypeNames = []string{"", "Plain", "Scroll"}

func (v LegendType) EnumName() string { return chartopts.EnumNameOf(legendTypeNames, v) }

type LineType int

const (
	LineTypeSolid LineType = iota + 1
	LineTypeDashed
	LineTypeDotted
)

var lineTypeNames = []string{"", "Solid", "Dashed", "Dotted"}

func (v LineType) EnumName() string { return chartopts.EnumNameOf(lineTypeNames, v) }

type LineCap int

const (
	LineCapButt LineCap = iota + 1
	LineCapRound
	LineCapSquare
)

var lineCapNames = []string{"", "Butt", "Round", "Square"}

func (v LineCap) EnumName() string { return chartopts.EnumNameOf(lineCapNames, v) }

type HorizontalAlign int

const (
	HorizontalAlignLeft HorizontalAlign = iota + 1
	HorizontalAlignCenter
	HorizontalAlignRight
)

var horizontalAlignNames = []string{"", "Left", "Center", "Right"}

func (v HorizontalAlign) EnumName() string { return chartopts.EnumNameOf(horizontalAlignNames, v) }

type VerticalAlign int

const (
	VerticalAlignTop VerticalAlign = iota + 1
	VerticalAlignMiddle
	VerticalAlignBottom
)

var verticalAlignNames = []string{"", "Top", "Middle", "Bottom"}

func (v VerticalAlign) EnumName() string { return chartopts.EnumNameOf(verticalAlignNames, v) }

type EmphasisFocus int

const (
	EmphasisFocusNone EmphasisFocus = iota + 1
	EmphasisFocusSelf
	EmphasisFocusSeries
)

var emphasisFocusNames = []string{"", "None", "Self", "Series"}

func (v EmphasisFocus) EnumName() string { return chartopts.EnumNameOf(emphasisFocusNames, v) }

type Step int

const (
	StepStart Step = iota + 1
	StepMiddle
	StepEnd
)

var stepNames = []string{"", "Start", "Middle", "End"}

func (v Step) EnumName() string { return chartopts.EnumNameOf(stepNames, v) }

type PieRoseType int

const (
	PieRoseTypeRadius PieRoseType = iota + 1
	PieRoseTypeArea
)

var pieRoseTypeNames = []string{"", "Radius", "Area"}

func (v PieRoseType) EnumName() string { return chartopts.EnumNameOf(pieRoseTypeNames, v) }

type LabelPosition int

const (
	LabelPositionTop LabelPosition = iota + 1
	LabelPositionLeft
	LabelPositionRight
	LabelPositionBottom
	LabelPositionInside
	LabelPositionInsideLeft
	LabelPositionInsideRight
	LabelPositionInsideTop
	LabelPositionInsideBottom
	LabelPositionOutside
	LabelPositionCenter
)

var labelPositionNames = []string{"", "Top", "Left", "Right", "Bottom", "Inside", "InsideLeft",
	"InsideRight", "InsideTop", "InsideBottom", "Outside", "Center"}

func (v LabelPosition) EnumName() string { return chartopts.EnumNameOf(labelPositionNames, v) }

type FilterMode int

const (
	FilterModeFilter FilterMode = iota + 1
	FilterModeWeakFilter
	FilterModeEmpty
	FilterModeNone
)

var filterModeNames = []string{"", "Filter", "WeakFilter", "Empty", "None"}

func (v FilterMode) EnumName() string { return chartopts.EnumNameOf(filterModeNames, v) }

type ImageType int

const (
	ImageTypePng ImageType = iota + 1
	ImageTypeJpeg
	ImageTypeSvg
)

var imageTypeNames = []string{"", "Png", "Jpeg", "Svg"}

func (v ImageType) EnumName() string { return chartopts.EnumNameOf(imageTypeNames, v) }
