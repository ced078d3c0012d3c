// Package document loads chart documents: YAML, TOML or JSON files that
// describe a chart, its maps and its external data sources, with option
// values that need more than JSON written as $-directives.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/reoring/chartopts"
	"github.com/reoring/chartopts/chart"
)

// Format is the syntax of a chart document.
type Format int

const (
	FormatYAML Format = iota + 1
	FormatTOML
	FormatJSON
)

var formatNames = []string{"", "YAML", "TOML", "JSON"}

func (f Format) String() string { return chartopts.EnumNameOf(formatNames, f) }

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("document: unknown format for %q", path)
	}
}

// Document is a decoded chart document.
type Document struct {
	ID       string
	Theme    string
	Renderer chart.Renderer
	Width    string
	Height   string
	Locale   string

	DataSources []*chartopts.ExternalDataSource
	Maps        []chartopts.MapDefinition
	// Options is the option tree with directives replaced by their typed
	// values.
	Options map[string]any
}

// Error locates a problem inside a document.
type Error struct {
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("document: %s: %s: %v", displayPath(e.Path), e.Msg, e.Err)
	}
	return fmt.Sprintf("document: %s: %s", displayPath(e.Path), e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func errAt(path, format string, args ...any) error {
	return &Error{Path: path, Msg: fmt.Sprintf(format, args...)}
}

// Load reads and decodes the document at path. Map files are resolved
// relative to the document's directory.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, format, filepath.Dir(path))
}

// Parse decodes a document. dir is the base for relative map files.
func Parse(data []byte, format Format, dir string) (*Document, error) {
	var (
		root any
		err  error
	)
	switch format {
	case FormatYAML:
		root, err = decodeYAML(data)
	case FormatTOML:
		root, err = decodeTOML(data)
	case FormatJSON:
		root, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("document: unsupported format %d", format)
	}
	if err != nil {
		return nil, fmt.Errorf("document: decode %s: %w", format, err)
	}
	m, ok := root.(map[string]any)
	if !ok {
		return nil, errAt("", "top level must be a mapping")
	}
	b := &builder{dir: dir, sources: map[string]*chartopts.ExternalDataSource{}}
	return b.document(m)
}

// Input returns the serializer input of the document.
func (d *Document) Input() chartopts.Input {
	return chartopts.Input{Options: d.Options, Maps: d.Maps, DataSources: d.DataSources}
}

// Chart returns a chart bound to rt. An empty document ID keeps the
// generated chart ID.
func (d *Document) Chart(rt chart.Runtime) *chart.Chart {
	c := chart.New(rt, d.Options)
	if d.ID != "" {
		c.ID = d.ID
	}
	if d.Renderer != 0 {
		c.Renderer = d.Renderer
	}
	c.Theme = d.Theme
	c.Width = d.Width
	c.Height = d.Height
	c.Locale = d.Locale
	c.Maps = d.Maps
	c.DataSources = d.DataSources
	return c
}

type builder struct {
	dir     string
	sources map[string]*chartopts.ExternalDataSource
}

var topLevelKeys = map[string]bool{
	"id": true, "theme": true, "renderer": true, "width": true, "height": true,
	"locale": true, "dataSources": true, "maps": true, "options": true,
}

func (b *builder) document(m map[string]any) (*Document, error) {
	for _, k := range sortedKeys(m) {
		if !topLevelKeys[k] {
			return nil, errAt("/"+escapePointer(k), "unknown field")
		}
	}
	d := &Document{}
	var err error
	for _, f := range []struct {
		key string
		dst *string
	}{{"id", &d.ID}, {"theme", &d.Theme}, {"width", &d.Width}, {"height", &d.Height}, {"locale", &d.Locale}} {
		if *f.dst, err = optString(m, f.key, ""); err != nil {
			return nil, err
		}
	}
	r, err := optString(m, "renderer", "")
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(r) {
	case "":
	case "svg":
		d.Renderer = chart.RendererSvg
	case "canvas":
		d.Renderer = chart.RendererCanvas
	default:
		return nil, errAt("/renderer", "unknown renderer %q", r)
	}

	if d.DataSources, err = b.dataSources(m["dataSources"]); err != nil {
		return nil, err
	}
	if d.Maps, err = b.maps(m["maps"]); err != nil {
		return nil, err
	}
	raw, ok := m["options"]
	if !ok {
		return nil, errAt("/options", "missing")
	}
	opts, ok := raw.(map[string]any)
	if !ok {
		return nil, errAt("/options", "must be a mapping")
	}
	tree, err := b.translate(opts, "/options")
	if err != nil {
		return nil, err
	}
	d.Options = tree.(map[string]any)
	return d, nil
}

func (b *builder) dataSources(v any) ([]*chartopts.ExternalDataSource, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, errAt("/dataSources", "must be a sequence")
	}
	out := make([]*chartopts.ExternalDataSource, 0, len(list))
	for i, el := range list {
		path := fmt.Sprintf("/dataSources/%d", i)
		m, ok := el.(map[string]any)
		if !ok {
			return nil, errAt(path, "must be a mapping")
		}
		url, err := optString(m, "url", path)
		if err != nil {
			return nil, err
		}
		if url == "" {
			return nil, errAt(path+"/url", "missing")
		}
		id, err := optString(m, "id", path)
		if err != nil {
			return nil, err
		}
		var src *chartopts.ExternalDataSource
		if id == "" {
			src = chartopts.NewExternalDataSource(url)
		} else {
			src = chartopts.NewExternalDataSourceWithID(id, url)
		}
		if _, dup := b.sources[src.FetchID()]; dup {
			return nil, errAt(path+"/id", "duplicate data source %q", src.FetchID())
		}
		b.sources[src.FetchID()] = src

		fetchAs, err := optString(m, "fetchAs", path)
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(fetchAs) {
		case "", "json":
			src.FetchAs = chartopts.FetchAsJSON
		case "string":
			src.FetchAs = chartopts.FetchAsString
		default:
			return nil, errAt(path+"/fetchAs", "unknown fetch mode %q", fetchAs)
		}
		if src.Path, err = optString(m, "path", path); err != nil {
			return nil, err
		}
		if o, ok := m["options"]; ok {
			if src.Options, err = fetchOptions(o, path+"/options"); err != nil {
				return nil, err
			}
		}
		out = append(out, src)
	}
	return out, nil
}

func fetchOptions(v any, path string) (*chartopts.FetchOptions, error) {
	// The fetch options are plain data; a JSON round trip maps them onto
	// the tagged struct.
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &Error{Path: path, Msg: "invalid fetch options", Err: err}
	}
	var o chartopts.FetchOptions
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, &Error{Path: path, Msg: "invalid fetch options", Err: err}
	}
	return &o, nil
}

func (b *builder) maps(v any) ([]chartopts.MapDefinition, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, errAt("/maps", "must be a sequence")
	}
	out := make([]chartopts.MapDefinition, 0, len(list))
	for i, el := range list {
		path := fmt.Sprintf("/maps/%d", i)
		m, ok := el.(map[string]any)
		if !ok {
			return nil, errAt(path, "must be a mapping")
		}
		name, err := optString(m, "name", path)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, errAt(path+"/name", "missing")
		}
		typ, err := optString(m, "type", path)
		if err != nil {
			return nil, err
		}
		file, err := optString(m, "file", path)
		if err != nil {
			return nil, err
		}
		switch typ {
		case "geoJSON":
			def, err := b.geoJSONMap(name, file, m, path)
			if err != nil {
				return nil, err
			}
			out = append(out, def)
		case "svg":
			svg, err := optString(m, "svg", path)
			if err != nil {
				return nil, err
			}
			if file != "" {
				data, err := os.ReadFile(b.resolve(file))
				if err != nil {
					return nil, &Error{Path: path + "/file", Msg: "read map", Err: err}
				}
				svg = string(data)
			}
			if svg == "" {
				return nil, errAt(path, "svg map needs svg or file")
			}
			out = append(out, chartopts.SVGMap{MapName: name, SVG: svg})
		default:
			return nil, errAt(path+"/type", "unknown map type %q", typ)
		}
	}
	return out, nil
}

func (b *builder) geoJSONMap(name, file string, m map[string]any, path string) (chartopts.GeoJSONMap, error) {
	def := chartopts.GeoJSONMap{MapName: name, GeoJSON: m["geoJSON"]}
	if file != "" {
		data, err := os.ReadFile(b.resolve(file))
		if err != nil {
			return def, &Error{Path: path + "/file", Msg: "read map", Err: err}
		}
		if !json.Valid(data) {
			return def, errAt(path+"/file", "%s is not valid JSON", file)
		}
		def.GeoJSON = json.RawMessage(data)
	}
	if def.GeoJSON == nil {
		return def, errAt(path, "geoJSON map needs geoJSON or file")
	}
	areas, ok := m["specialAreas"]
	if !ok {
		return def, nil
	}
	am, ok := areas.(map[string]any)
	if !ok {
		return def, errAt(path+"/specialAreas", "must be a mapping")
	}
	def.SpecialAreas = make(map[string]chartopts.SpecialArea, len(am))
	for _, k := range sortedKeys(am) {
		apath := path + "/specialAreas/" + escapePointer(k)
		fields, ok := am[k].(map[string]any)
		if !ok {
			return def, errAt(apath, "must be a mapping")
		}
		var area chartopts.SpecialArea
		for key, dst := range map[string]*float64{"left": &area.Left, "top": &area.Top, "width": &area.Width} {
			f, ok := toFloat(fields[key])
			if !ok {
				return def, errAt(apath+"/"+key, "must be a number")
			}
			*dst = f
		}
		if raw, ok := fields["height"]; ok {
			f, ok := toFloat(raw)
			if !ok {
				return def, errAt(apath+"/height", "must be a number")
			}
			area.Height = &f
		}
		def.SpecialAreas[k] = area
	}
	return def, nil
}

func (b *builder) resolve(file string) string {
	if filepath.IsAbs(file) || b.dir == "" {
		return file
	}
	return filepath.Join(b.dir, file)
}

func optString(m map[string]any, key, parent string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errAt(parent+"/"+key, "must be a string")
	}
	return s, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
