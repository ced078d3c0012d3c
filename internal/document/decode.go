package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/chartopts"
)

// DuplicateKeyError reports a key that appears twice in one mapping.
type DuplicateKeyError struct {
	Path string
	Key  string
	// Line and Col locate the duplicate in YAML input; zero otherwise.
	Line int
	Col  int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("duplicate key %q at %d:%d", e.Key, e.Line, e.Col)
	}
	return fmt.Sprintf("duplicate key %q in %s", e.Key, displayPath(e.Path))
}

// decodeYAML reads the first YAML document into JSON-like values. Unquoted
// dates become chartopts.Date and full timestamps become time.Time.
func decodeYAML(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return yamlValue(&root)
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if _, dup := m[k.Value]; dup {
				return nil, &DuplicateKeyError{Key: k.Value, Line: k.Line, Col: k.Column}
			}
			v, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[k.Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return yamlScalar(n), nil
	default:
		return nil, nil
	}
}

func yamlScalar(n *yaml.Node) any {
	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return i
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return f
		}
	case "!!timestamp":
		if d, err := chartopts.ParseDate(n.Value); err == nil {
			return d
		}
		var t time.Time
		if err := n.Decode(&t); err == nil {
			return t
		}
	}
	return n.Value
}

// decodeJSON reads a JSON document, rejecting duplicate object keys.
// Integral numbers become int64, the rest float64.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := jsonValue(dec, "")
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

func jsonValue(dec *json.Decoder, path string) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			m := map[string]any{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("object key at %s is not a string", displayPath(path))
				}
				if _, dup := m[key]; dup {
					return nil, &DuplicateKeyError{Path: path, Key: key}
				}
				if m[key], err = jsonValue(dec, path+"/"+escapePointer(key)); err != nil {
					return nil, err
				}
			}
			_, err := dec.Token()
			return m, err
		case '[':
			arr := []any{}
			for i := 0; dec.More(); i++ {
				el, err := jsonValue(dec, path+"/"+strconv.Itoa(i))
				if err != nil {
					return nil, err
				}
				arr = append(arr, el)
			}
			_, err := dec.Token()
			return arr, err
		}
		return nil, fmt.Errorf("unexpected %q at %s", v, displayPath(path))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		return v.Float64()
	default:
		return v, nil
	}
}

// decodeTOML reads a TOML document. Local dates and local date-times keep
// their zone-less meaning as chartopts.Date and chartopts.DateTime.
func decodeTOML(data []byte) (any, error) {
	var m map[string]any
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, err
	}
	return tomlNormalize(m), nil
}

func tomlNormalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			t[k] = tomlNormalize(vv)
		}
		return t
	case []map[string]any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = tomlNormalize(t[i])
		}
		return arr
	case []any:
		for i := range t {
			t[i] = tomlNormalize(t[i])
		}
		return t
	case time.Time:
		// BurntSushi/toml marks zone-less values with named fixed zones.
		switch t.Location().String() {
		case "date-local":
			return chartopts.DateOf(t)
		case "datetime-local":
			return chartopts.DateTimeOf(t)
		case "time-local":
			return t.Format("15:04:05.999999999")
		}
		return t
	default:
		return v
	}
}

func escapePointer(s string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(s)
}

func displayPath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
