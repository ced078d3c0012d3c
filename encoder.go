package chartopts

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/reoring/chartopts/internal/engine"
)

// maxIndirections bounds pointer and interface chains that open no container.
const maxIndirections = 256

var (
	enumType   = reflect.TypeFor[Enum]()
	typedType  = reflect.TypeFor[Typed]()
	zeroerType = reflect.TypeFor[interface{ IsZero() bool }]()
)

// Encoder walks a configuration tree and writes it to a segment stream.
// Rules receive the Encoder to write their value.
type Encoder struct {
	cfg *Config
	s   *engine.Stream
}

func newEncoder(cfg *Config) *Encoder {
	return &Encoder{cfg: cfg, s: engine.NewStream(engine.StreamOptions{Indent: cfg.indent, MaxDepth: cfg.maxDepth})}
}

// Config returns the rule set the encoder runs with.
func (e *Encoder) Config() *Config { return e.cfg }

// Path returns the JSON Pointer of the value about to be written.
func (e *Encoder) Path() string { return e.s.Path() }

// Raw writes expr verbatim. The consumer evaluates it as code.
func (e *Encoder) Raw(expr string) error { return e.wrap(e.s.Raw(expr)) }

// JSON writes v using plain JSON encoding, bypassing all rules.
func (e *Encoder) JSON(v any) error {
	b, err := json.MarshalNoEscape(v)
	if err != nil {
		return issueAt(e.Path(), CodeUnsupportedType, err.Error(), err)
	}
	return e.rawJSON(b)
}

func (e *Encoder) rawJSON(b []byte) error { return e.wrap(e.s.JSON(b)) }

// Value writes v with the full rule set.
func (e *Encoder) Value(v any) error { return e.encode(reflect.ValueOf(v)) }

// Null writes null.
func (e *Encoder) Null() error { return e.rawJSON([]byte("null")) }

// Bool writes a bare true or false.
func (e *Encoder) Bool(b bool) error {
	if b {
		return e.rawJSON([]byte("true"))
	}
	return e.rawJSON([]byte("false"))
}

// Number writes a numeric literal. NaN and Inf are rejected.
func (e *Encoder) Number(f float64) error { return e.float(f, 64) }

// String writes a quoted JSON string.
func (e *Encoder) String(s string) error {
	b, err := json.MarshalNoEscape(s)
	if err != nil {
		return issueAt(e.Path(), CodeUnsupportedType, err.Error(), err)
	}
	return e.rawJSON(b)
}

// BeginObject opens an object; pair with Key and EndObject.
func (e *Encoder) BeginObject() error { return e.wrap(e.s.BeginObject()) }

// Key writes an object member name.
func (e *Encoder) Key(name string) error { return e.wrap(e.s.Key(name)) }

// EndObject closes the innermost object.
func (e *Encoder) EndObject() error { return e.wrap(e.s.EndObject()) }

// BeginArray opens an array.
func (e *Encoder) BeginArray() error { return e.wrap(e.s.BeginArray()) }

// EndArray closes the innermost array.
func (e *Encoder) EndArray() error { return e.wrap(e.s.EndArray()) }

func (e *Encoder) wrap(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, engine.ErrTooDeep):
		return issueAt(e.Path(), CodeTooDeep, fmt.Sprintf("nesting exceeds %d levels", e.cfg.maxDepth), err)
	default:
		return issueAt(e.Path(), CodeRuleViolation, err.Error(), err)
	}
}

func (e *Encoder) float(f float64, bits int) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return issueAt(e.Path(), CodeInvalidNumber, "NaN and Inf are not representable", nil)
	}
	return e.rawJSON([]byte(formatFloat(f, bits)))
}

func (e *Encoder) encode(v reflect.Value) error {
	for hops := 0; ; hops++ {
		if hops > maxIndirections {
			return issueAt(e.Path(), CodeTooDeep, "pointer chain too long", nil)
		}
		if !v.IsValid() {
			return e.Null()
		}
		if k := v.Kind(); k == reflect.Interface || k == reflect.Pointer {
			if v.IsNil() {
				return e.Null()
			}
		}
		if v.Kind() == reflect.Interface {
			v = v.Elem()
			continue
		}
		if r := e.cfg.ruleFor(v.Type()); r != nil {
			return e.applyRule(r, v)
		}
		if v.Kind() == reflect.Pointer {
			v = v.Elem()
			continue
		}
		break
	}

	switch v.Kind() {
	case reflect.Bool:
		return e.Bool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return e.rawJSON(strconv.AppendInt(nil, v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return e.rawJSON(strconv.AppendUint(nil, v.Uint(), 10))
	case reflect.Float32:
		return e.float(v.Float(), 32)
	case reflect.Float64:
		return e.float(v.Float(), 64)
	case reflect.String:
		return e.String(v.String())
	case reflect.Struct:
		return e.encodeStruct(v)
	case reflect.Map:
		return e.encodeMap(v)
	case reflect.Slice:
		if v.IsNil() {
			return e.Null()
		}
		return e.encodeArray(v)
	case reflect.Array:
		return e.encodeArray(v)
	default:
		return issueAt(e.Path(), CodeUnsupportedType, fmt.Sprintf("cannot encode %s", v.Type()), nil)
	}
}

func (e *Encoder) applyRule(r Rule, v reflect.Value) error {
	path := e.Path()
	depth, count := e.s.Depth(), e.s.Count()
	if err := r.Encode(e, v); err != nil {
		if _, ok := AsIssues(err); ok {
			return err
		}
		return issueAt(path, CodeRuleViolation, err.Error(), err)
	}
	if e.s.Depth() != depth || e.s.Count() != count+1 {
		return issueAt(path, CodeRuleViolation, fmt.Sprintf("rule for %s must write exactly one value", v.Type()), nil)
	}
	return nil
}

func (e *Encoder) encodeStruct(v reflect.Value) error {
	plan := planFor(v.Type())
	if err := e.BeginObject(); err != nil {
		return err
	}
	if !plan.hasType {
		if t, ok := asTyped(v); ok {
			if err := e.Key("type"); err != nil {
				return err
			}
			if err := e.String(t.OptionType()); err != nil {
				return err
			}
		}
	}
	for _, f := range plan.fields {
		fv, ok := fieldByIndex(v, f.index)
		if !ok || isUnset(fv, f.omitEmpty) {
			continue
		}
		if err := e.Key(f.name); err != nil {
			return err
		}
		if err := e.encode(fv); err != nil {
			return err
		}
	}
	return e.EndObject()
}

func (e *Encoder) encodeMap(v reflect.Value) error {
	if v.IsNil() {
		return e.Null()
	}
	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k := iter.Key()
		var ks string
		switch k.Kind() {
		case reflect.String:
			ks = k.String()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			ks = strconv.FormatInt(k.Int(), 10)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			ks = strconv.FormatUint(k.Uint(), 10)
		default:
			return issueAt(e.Path(), CodeUnsupportedType, fmt.Sprintf("map key type %s", k.Type()), nil)
		}
		entries = append(entries, entry{key: ks, val: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	if err := e.BeginObject(); err != nil {
		return err
	}
	for _, en := range entries {
		if err := e.Key(en.key); err != nil {
			return err
		}
		if err := e.encode(en.val); err != nil {
			return err
		}
	}
	return e.EndObject()
}

func (e *Encoder) encodeArray(v reflect.Value) error {
	if err := e.BeginArray(); err != nil {
		return err
	}
	for i := 0; i < v.Len(); i++ {
		if err := e.encode(v.Index(i)); err != nil {
			return err
		}
	}
	return e.EndArray()
}

// isUnset reports whether a struct field is omitted from the output.
func isUnset(v reflect.Value, omitEmpty bool) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return true
		}
	}
	t := v.Type()
	if t.Implements(zeroerType) {
		if v.Interface().(interface{ IsZero() bool }).IsZero() {
			return true
		}
	}
	// Only the zero member is unset; other unnamed members fail in the
	// enum rule.
	if t.Kind() != reflect.Pointer && t.Implements(enumType) && v.IsZero() {
		return true
	}
	return omitEmpty && v.IsZero()
}

func asTyped(v reflect.Value) (Typed, bool) {
	if v.Type().Implements(typedType) {
		return v.Interface().(Typed), true
	}
	if v.CanAddr() && v.Addr().Type().Implements(typedType) {
		return v.Addr().Interface().(Typed), true
	}
	return nil, false
}

// fieldByIndex follows index through embedded structs, reporting false when
// an embedded pointer on the way is nil.
func fieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

type fieldPlan struct {
	name      string
	index     []int
	omitEmpty bool
	tagged    bool
}

type structPlan struct {
	fields  []fieldPlan
	hasType bool
}

var plans = mustPlanCache(1024)

func mustPlanCache(size int) *lru.Cache[reflect.Type, *structPlan] {
	c, err := lru.New[reflect.Type, *structPlan](size)
	if err != nil {
		panic(err)
	}
	return c
}

func planFor(t reflect.Type) *structPlan {
	if p, ok := plans.Get(t); ok {
		return p
	}
	var cands []fieldPlan
	collectFields(t, nil, map[reflect.Type]bool{}, &cands)
	p := &structPlan{fields: dominantFields(cands)}
	for _, f := range p.fields {
		if f.name == "type" {
			p.hasType = true
		}
	}
	plans.Add(t, p)
	return p
}

// collectFields gathers exported fields, descending into anonymous structs
// without a json name.
func collectFields(t reflect.Type, prefix []int, visiting map[reflect.Type]bool, out *[]fieldPlan) {
	if visiting[t] {
		return
	}
	visiting[t] = true
	defer delete(visiting, t)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(append([]int{}, prefix...), i)
		ft := sf.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		tag, tagged := sf.Tag.Lookup("json")
		if sf.Anonymous && ft.Kind() == reflect.Struct && (!tagged || strings.HasPrefix(tag, ",")) {
			if sf.IsExported() || sf.Type.Kind() != reflect.Pointer {
				collectFields(ft, idx, visiting, out)
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		name, omit := ResolveStructKey(sf)
		if name == "-" {
			continue
		}
		*out = append(*out, fieldPlan{name: name, index: idx, omitEmpty: omit, tagged: tagged})
	}
}

// dominantFields resolves name collisions the way encoding/json does: the
// shallowest field wins, a tagged field beats untagged ones at the same
// depth, and remaining ties drop the name. The result is in declaration
// order.
func dominantFields(cands []fieldPlan) []fieldPlan {
	byName := map[string][]fieldPlan{}
	var names []string
	for _, f := range cands {
		if _, ok := byName[f.name]; !ok {
			names = append(names, f.name)
		}
		byName[f.name] = append(byName[f.name], f)
	}
	out := make([]fieldPlan, 0, len(names))
	for _, n := range names {
		fs := byName[n]
		best := len(fs[0].index)
		for _, f := range fs[1:] {
			best = min(best, len(f.index))
		}
		var top, tagged []fieldPlan
		for _, f := range fs {
			if len(f.index) == best {
				top = append(top, f)
				if f.tagged {
					tagged = append(tagged, f)
				}
			}
		}
		switch {
		case len(top) == 1:
			out = append(out, top[0])
		case len(tagged) == 1:
			out = append(out, tagged[0])
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessIndex(out[i].index, out[j].index) })
	return out
}

func lessIndex(a, b []int) bool {
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return len(a) < len(b)
}

// formatFloat renders f the way encoding/json does: shortest representation,
// exponent form only for very large or very small magnitudes.
func formatFloat(f float64, bits int) string {
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) || bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	b := strconv.AppendFloat(nil, f, format, -1, bits)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}
