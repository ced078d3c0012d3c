package chartopts

import (
	"github.com/goccy/go-json"
)

// MapDefinition is a map registered with the runtime before the chart
// options are applied: a GeoJSONMap or an SVGMap.
type MapDefinition interface {
	MapType() string
	Name() string
}

// SpecialArea relocates a region of a GeoJSON map.
type SpecialArea struct {
	Left   float64  `json:"left"`
	Top    float64  `json:"top"`
	Width  float64  `json:"width"`
	Height *float64 `json:"height,omitempty"`
}

// GeoJSONMap registers GeoJSON features under MapName. GeoJSON is any value
// that encodes to a GeoJSON document, typically a json.RawMessage.
type GeoJSONMap struct {
	MapName      string                 `json:"mapName"`
	GeoJSON      any                    `json:"geoJSON"`
	SpecialAreas map[string]SpecialArea `json:"specialAreas,omitempty"`
}

func (m GeoJSONMap) MapType() string { return "geoJSON" }
func (m GeoJSONMap) Name() string    { return m.MapName }

func (m GeoJSONMap) MarshalJSON() ([]byte, error) {
	type plain GeoJSONMap
	return json.MarshalNoEscape(struct {
		Type string `json:"type"`
		plain
	}{Type: m.MapType(), plain: plain(m)})
}

// SVGMap registers an SVG document under MapName.
type SVGMap struct {
	MapName string `json:"mapName"`
	SVG     string `json:"svg"`
}

func (m SVGMap) MapType() string { return "svg" }
func (m SVGMap) Name() string    { return m.MapName }

func (m SVGMap) MarshalJSON() ([]byte, error) {
	type plain SVGMap
	return json.MarshalNoEscape(struct {
		Type string `json:"type"`
		plain
	}{Type: m.MapType(), plain: plain(m)})
}

// EncodeMaps encodes map definitions as a strict JSON array. It returns nil
// for an empty list.
func EncodeMaps(maps []MapDefinition) ([]byte, error) {
	if len(maps) == 0 {
		return nil, nil
	}
	return json.MarshalNoEscape(maps)
}
