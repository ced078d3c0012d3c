package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reoring/chartopts"
)

// Directives are single-purpose mappings whose keys start with "$". They
// stand in for option values that plain data cannot express.
const (
	dirFunction       = "$function"
	dirLinearGradient = "$linearGradient"
	dirRadialGradient = "$radialGradient"
	dirDataSource     = "$dataSource"
	dirPath           = "$path"
	dirDate           = "$date"
	dirDateTime       = "$dateTime"
	dirTime           = "$time"
)

// translate copies v, replacing every directive mapping with its typed value.
func (b *builder) translate(v any, path string) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		if isDirective(t) {
			return b.directive(t, path)
		}
		out := make(map[string]any, len(t))
		for k, vv := range t {
			tv, err := b.translate(vv, path+"/"+escapePointer(k))
			if err != nil {
				return nil, err
			}
			out[k] = tv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			tv, err := b.translate(vv, path+"/"+strconv.Itoa(i))
			if err != nil {
				return nil, err
			}
			out[i] = tv
		}
		return out, nil
	default:
		return v, nil
	}
}

func isDirective(m map[string]any) bool {
	for k := range m {
		if strings.HasPrefix(k, "$") {
			return true
		}
	}
	return false
}

func (b *builder) directive(m map[string]any, path string) (any, error) {
	allow := func(keys ...string) error {
		for k := range m {
			ok := false
			for _, a := range keys {
				ok = ok || k == a
			}
			if !ok {
				return errAt(path+"/"+escapePointer(k), "unexpected key in directive")
			}
		}
		return nil
	}
	str := func(key string) (string, error) {
		s, ok := m[key].(string)
		if !ok {
			return "", errAt(path+"/"+escapePointer(key), "must be a string")
		}
		return s, nil
	}

	switch {
	case has(m, dirFunction):
		if err := allow(dirFunction); err != nil {
			return nil, err
		}
		src, err := str(dirFunction)
		if err != nil {
			return nil, err
		}
		fn := chartopts.JSFunction(src)
		if fn.IsZero() {
			return nil, errAt(path, "empty function")
		}
		return fn, nil

	case has(m, dirLinearGradient):
		if err := allow(dirLinearGradient); err != nil {
			return nil, err
		}
		return gradient(m[dirLinearGradient], path+"/"+escapePointer(dirLinearGradient), false)

	case has(m, dirRadialGradient):
		if err := allow(dirRadialGradient); err != nil {
			return nil, err
		}
		return gradient(m[dirRadialGradient], path+"/"+escapePointer(dirRadialGradient), true)

	case has(m, dirDataSource):
		if err := allow(dirDataSource, dirPath); err != nil {
			return nil, err
		}
		id, err := str(dirDataSource)
		if err != nil {
			return nil, err
		}
		src, ok := b.sources[id]
		if !ok {
			return nil, errAt(path, "unknown data source %q", id)
		}
		if _, ok := m[dirPath]; !ok {
			return src.Ref(), nil
		}
		p, err := str(dirPath)
		if err != nil {
			return nil, err
		}
		return src.RefPath(p), nil

	case has(m, dirDate):
		if err := allow(dirDate); err != nil {
			return nil, err
		}
		return temporal(m[dirDate], path, func(s string) (any, error) { return chartopts.ParseDate(s) })

	case has(m, dirDateTime):
		if err := allow(dirDateTime); err != nil {
			return nil, err
		}
		return temporal(m[dirDateTime], path, func(s string) (any, error) { return chartopts.ParseDateTime(s) })

	case has(m, dirTime):
		if err := allow(dirTime); err != nil {
			return nil, err
		}
		return temporal(m[dirTime], path, func(s string) (any, error) { return time.Parse(time.RFC3339Nano, s) })
	}
	for k := range m {
		if strings.HasPrefix(k, "$") {
			return nil, errAt(path+"/"+escapePointer(k), "unknown directive")
		}
	}
	return nil, errAt(path, "unknown directive")
}

func has(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

// temporal accepts a string to parse or a value the decoder already typed.
func temporal(v any, path string, parse func(string) (any, error)) (any, error) {
	switch t := v.(type) {
	case string:
		out, err := parse(t)
		if err != nil {
			return nil, &Error{Path: path, Msg: "invalid temporal value", Err: err}
		}
		return out, nil
	case chartopts.Date, chartopts.DateTime, time.Time:
		return t, nil
	default:
		return nil, errAt(path, "temporal value must be a string")
	}
}

func gradient(v any, path string, radial bool) (chartopts.Color, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return chartopts.Color{}, errAt(path, "must be a mapping")
	}
	num := func(key string) (float64, error) {
		f, ok := toFloat(m[key])
		if !ok {
			return 0, errAt(path+"/"+key, "must be a number")
		}
		return f, nil
	}
	var coords []string
	if radial {
		coords = []string{"x", "y", "r"}
	} else {
		coords = []string{"x", "y", "x2", "y2"}
	}
	vals := make([]float64, len(coords))
	for i, c := range coords {
		f, err := num(c)
		if err != nil {
			return chartopts.Color{}, err
		}
		vals[i] = f
	}
	for k := range m {
		switch k {
		case "x", "y", "r", "x2", "y2", "colorStops", "global":
		default:
			return chartopts.Color{}, errAt(path+"/"+escapePointer(k), "unexpected key in gradient")
		}
	}
	stops, err := colorStops(m["colorStops"], path+"/colorStops")
	if err != nil {
		return chartopts.Color{}, err
	}
	var global *bool
	if g, ok := m["global"]; ok {
		b, ok := g.(bool)
		if !ok {
			return chartopts.Color{}, errAt(path+"/global", "must be a boolean")
		}
		global = &b
	}
	if radial {
		g := chartopts.NewRadialGradient(vals[0], vals[1], vals[2], stops...)
		g.Global = global
		return chartopts.GradientColor(g), nil
	}
	g := chartopts.NewLinearGradient(vals[0], vals[1], vals[2], vals[3], stops...)
	g.Global = global
	return chartopts.GradientColor(g), nil
}

func colorStops(v any, path string) ([]chartopts.ColorStop, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, errAt(path, "must be a sequence")
	}
	stops := make([]chartopts.ColorStop, 0, len(list))
	for i, el := range list {
		p := fmt.Sprintf("%s/%d", path, i)
		m, ok := el.(map[string]any)
		if !ok {
			return nil, errAt(p, "must be a mapping")
		}
		off, ok := toFloat(m["offset"])
		if !ok {
			return nil, errAt(p+"/offset", "must be a number")
		}
		c, ok := m["color"].(string)
		if !ok {
			return nil, errAt(p+"/color", "must be a string")
		}
		stops = append(stops, chartopts.ColorStop{Offset: off, Color: c})
	}
	return stops, nil
}
