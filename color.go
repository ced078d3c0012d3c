package chartopts

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// ColorStop is one stop of a gradient.
type ColorStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// Gradient is a LinearGradient or a RadialGradient.
type Gradient interface {
	Stops() []ColorStop
	// GlobalFlag reports the tri-state "global" flag; nil means unset.
	GlobalFlag() *bool
	clone() Gradient
}

// LinearGradient spans from (X, Y) to (X2, Y2).
type LinearGradient struct {
	X, Y, X2, Y2 float64
	ColorStops   []ColorStop
	Global       *bool
}

// NewLinearGradient returns a linear gradient with the given geometry and stops.
func NewLinearGradient(x, y, x2, y2 float64, stops ...ColorStop) *LinearGradient {
	return &LinearGradient{X: x, Y: y, X2: x2, Y2: y2, ColorStops: stops}
}

func (g *LinearGradient) Stops() []ColorStop { return g.ColorStops }
func (g *LinearGradient) GlobalFlag() *bool  { return g.Global }

func (g *LinearGradient) clone() Gradient {
	c := *g
	c.ColorStops = cloneStops(g.ColorStops)
	c.Global = cloneBool(g.Global)
	return &c
}

// RadialGradient is centered at (X, Y) with radius R.
type RadialGradient struct {
	X, Y, R    float64
	ColorStops []ColorStop
	Global     *bool
}

// NewRadialGradient returns a radial gradient with the given geometry and stops.
func NewRadialGradient(x, y, r float64, stops ...ColorStop) *RadialGradient {
	return &RadialGradient{X: x, Y: y, R: r, ColorStops: stops}
}

func (g *RadialGradient) Stops() []ColorStop { return g.ColorStops }
func (g *RadialGradient) GlobalFlag() *bool  { return g.Global }

func (g *RadialGradient) clone() Gradient {
	c := *g
	c.ColorStops = cloneStops(g.ColorStops)
	c.Global = cloneBool(g.Global)
	return &c
}

// Color is either a plain CSS color string or a gradient. The zero value is
// unset.
type Color struct {
	kind     variant
	solid    string
	gradient Gradient
}

// Solid returns a plain color such as "red" or "#c23531".
func Solid(s string) Color { return Color{kind: variantString, solid: s} }

// GradientColor returns a gradient color. The gradient is copied, so later
// changes to g do not affect the color. It panics if g is nil.
func GradientColor(g Gradient) Color {
	if isNilGradient(g) {
		panic("chartopts.GradientColor: gradient must not be nil")
	}
	return Color{kind: variantGradient, gradient: g.clone()}
}

// ColorOf builds a color from optional arms; exactly one must be set.
func ColorOf(solid *string, g Gradient) (Color, error) {
	hasGradient := !isNilGradient(g)
	switch {
	case solid != nil && !hasGradient:
		return Solid(*solid), nil
	case solid == nil && hasGradient:
		return GradientColor(g), nil
	case solid != nil:
		return Color{}, invalidVariant("Color", 2)
	default:
		return Color{}, invalidVariant("Color", 0)
	}
}

// Hex returns a color from a hex triplet, adding the leading '#' if missing.
func Hex(hex string) Color {
	if strings.HasPrefix(hex, "#") {
		return Solid(hex)
	}
	return Solid("#" + hex)
}

// RGB returns an rgb() color.
func RGB(r, g, b uint8) Color { return Solid(fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)) }

// RGBA returns an rgba() color.
func RGBA(r, g, b uint8, a float64) Color {
	return Solid(fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatFloat(a, 64)))
}

// Transparent returns the "transparent" color.
func Transparent() Color { return Solid("transparent") }

func (c Color) IsZero() bool { return c.kind == variantNone }

// Value returns the plain color string, if that arm is set.
func (c Color) Value() (string, bool) { return c.solid, c.kind == variantString }

// Gradient returns a copy of the gradient, if that arm is set.
func (c Color) Gradient() (Gradient, bool) {
	if c.kind != variantGradient {
		return nil, false
	}
	return c.gradient.clone(), true
}

func (c *Color) UnmarshalJSON([]byte) error { return unsupportedDecode("Color") }

func (c Color) encode(e *Encoder) error {
	switch c.kind {
	case variantString:
		return e.String(c.solid)
	case variantGradient:
		expr, err := GradientExpression(e.Config().GraphicNamespace(), c.gradient)
		if err != nil {
			return issueAt(e.Path(), CodeUnknownGradient, err.Error(), err)
		}
		return e.Raw(expr)
	default:
		return e.Null()
	}
}

// GradientExpression renders the constructor call for g, for example
// new echarts.graphic.LinearGradient(0, 0, 1, 0, [...], null).
func GradientExpression(namespace string, g Gradient) (string, error) {
	stops, err := json.MarshalNoEscape(g.Stops())
	if err != nil {
		return "", err
	}
	global := "null"
	if f := g.GlobalFlag(); f != nil {
		global = fmt.Sprint(*f)
	}
	switch g := g.(type) {
	case *LinearGradient:
		return fmt.Sprintf("new %s.graphic.LinearGradient(%s, %s, %s, %s, %s, %s)", namespace,
			formatFloat(g.X, 64), formatFloat(g.Y, 64), formatFloat(g.X2, 64), formatFloat(g.Y2, 64),
			stops, global), nil
	case *RadialGradient:
		return fmt.Sprintf("new %s.graphic.RadialGradient(%s, %s, %s, %s, %s)", namespace,
			formatFloat(g.X, 64), formatFloat(g.Y, 64), formatFloat(g.R, 64),
			stops, global), nil
	default:
		return "", fmt.Errorf("gradient type %T is not supported", g)
	}
}

func isNilGradient(g Gradient) bool {
	switch g := g.(type) {
	case nil:
		return true
	case *LinearGradient:
		return g == nil
	case *RadialGradient:
		return g == nil
	default:
		return false
	}
}

func cloneStops(s []ColorStop) []ColorStop {
	if s == nil {
		return nil
	}
	return append([]ColorStop{}, s...)
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
