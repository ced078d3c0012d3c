package document

import (
	js "github.com/reoring/chartopts/jsonschema"
)

// SchemaID identifies the chart document schema.
const SchemaID = "https://github.com/reoring/chartopts/document.schema.json"

// Schema describes the chart document format. Option values are free-form
// apart from the $-directives, which are listed under $defs.
func Schema() *js.Schema {
	directive := js.AnyOf(
		js.Ref("function"),
		js.Ref("linearGradient"),
		js.Ref("radialGradient"),
		js.Ref("dataSource"),
		js.Ref("date"),
		js.Ref("dateTime"),
		js.Ref("time"),
	)
	colorStop := js.Object(map[string]*js.Schema{
		"offset": js.Number(),
		"color":  js.String(""),
	}, "offset", "color")
	gradient := func(coords ...string) *js.Schema {
		props := map[string]*js.Schema{
			"colorStops": js.ArrayOf(colorStop),
			"global":     js.Boolean(),
		}
		for _, c := range coords {
			props[c] = js.Number()
		}
		return js.Object(props, append(coords, "colorStops")...)
	}
	single := func(key string, value *js.Schema, desc string) *js.Schema {
		s := js.Object(map[string]*js.Schema{key: value}, key)
		s.Description = desc
		return s
	}

	root := js.Object(map[string]*js.Schema{
		"id":       js.String("element ID of the chart; generated when empty"),
		"theme":    js.String("ECharts theme name"),
		"renderer": js.Enum("svg", "canvas"),
		"width":    js.String("CSS width"),
		"height":   js.String("CSS height"),
		"locale":   js.String("ECharts locale"),
		"dataSources": js.ArrayOf(js.Object(map[string]*js.Schema{
			"id":      js.String("FetchID referenced by $dataSource; generated when empty"),
			"url":     {Type: "string", MinLength: js.IntPtr(1)},
			"fetchAs": js.Enum("json", "string"),
			"path":    js.String("path applied to the fetched JSON"),
			"options": js.Object(map[string]*js.Schema{
				"method":      js.String(""),
				"headers":     {Type: "object", AdditionalProperties: js.String("")},
				"body":        js.String(""),
				"mode":        js.String(""),
				"credentials": js.String(""),
				"cache":       js.String(""),
			}),
		}, "url")),
		"maps": js.ArrayOf(js.Object(map[string]*js.Schema{
			"name":    {Type: "string", MinLength: js.IntPtr(1)},
			"type":    js.Enum("geoJSON", "svg"),
			"file":    js.String("map file relative to the document"),
			"geoJSON": {Description: "inline GeoJSON document"},
			"svg":     js.String("inline SVG document"),
			"specialAreas": {Type: "object", AdditionalProperties: js.Object(map[string]*js.Schema{
				"left":   js.Number(),
				"top":    js.Number(),
				"width":  js.Number(),
				"height": js.Number(),
			}, "left", "top", "width")},
		}, "name", "type")),
		"options": {
			Type:                 "object",
			Description:          "ECharts option tree; mappings with $-keys are directives",
			AdditionalProperties: true,
		},
	}, "options")
	root.SchemaURI = js.Draft
	root.ID = SchemaID
	root.Title = "chartopts chart document"
	root.Defs = map[string]*js.Schema{
		"directive": directive,
		"function": single(dirFunction, &js.Schema{Type: "string", MinLength: js.IntPtr(1)},
			"raw JavaScript function source"),
		"linearGradient": single(dirLinearGradient, gradient("x", "y", "x2", "y2"), "linear gradient color"),
		"radialGradient": single(dirRadialGradient, gradient("x", "y", "r"), "radial gradient color"),
		"dataSource": func() *js.Schema {
			s := js.Object(map[string]*js.Schema{
				dirDataSource: js.String("id of a dataSources entry"),
				dirPath:       js.String("path inside the fetched data"),
			}, dirDataSource)
			s.Description = "reference to fetched data"
			return s
		}(),
		"date":     single(dirDate, &js.Schema{Type: "string", Format: "date"}, "calendar date"),
		"dateTime": single(dirDateTime, js.String("yyyy-MM-ddTHH:mm:ss[.fff] without offset"), "local date and time"),
		"time":     single(dirTime, &js.Schema{Type: "string", Format: "date-time"}, "instant with offset"),
	}
	return root
}
