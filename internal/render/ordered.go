package render

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"

	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Map is a string-keyed mapping that encodes its keys in insertion order.
// Setting an existing key replaces the value and keeps its position.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{values: map[string]any{}}
}

// Set stores v under k and returns m for chaining.
func (m *Map) Set(k string, v any) *Map {
	if m.values == nil {
		m.values = map[string]any{}
	}
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
	return m
}

func (m *Map) Get(k string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[k]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// MarshalYAML emits a mapping node whose pairs follow insertion order.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if m == nil {
		return node, nil
	}
	for _, k := range m.keys {
		var val yaml.Node
		if err := val.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("encode %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node, nil
}

// jsonAPI matches encoding/json output with two-space indentation and no
// HTML escaping.
var jsonAPI = json.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	IndentionStep:          2,
}.Froze()

func writeJSON(s *json.Stream, v any) {
	switch v := v.(type) {
	case *Map:
		if v == nil {
			s.WriteNil()
			return
		}
		writeJSONObject(s, v.keys, v.values)
	case map[string]any:
		writeJSONObject(s, sortedKeys(v), v)
	case []any:
		if len(v) == 0 {
			s.WriteEmptyArray()
			return
		}
		s.WriteArrayStart()
		for i, e := range v {
			if i > 0 {
				s.WriteMore()
			}
			writeJSON(s, e)
		}
		s.WriteArrayEnd()
	default:
		s.WriteVal(v)
	}
}

func writeJSONObject(s *json.Stream, keys []string, values map[string]any) {
	if len(keys) == 0 {
		s.WriteEmptyObject()
		return
	}
	s.WriteObjectStart()
	for i, k := range keys {
		if i > 0 {
			s.WriteMore()
		}
		s.WriteObjectField(k)
		writeJSON(s, values[k])
	}
	s.WriteObjectEnd()
}

var anyType = reflect.TypeFor[any]()

// tomlValue prepares doc for the TOML encoder. go-toml sorts map keys but
// keeps struct fields in declaration order, so each *Map becomes a struct
// built at runtime with one tagged field per key.
func tomlValue(v any) any {
	switch v := v.(type) {
	case *Map:
		if v == nil {
			return nil
		}
		return orderedTable(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = tomlValue(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = tomlValue(e)
		}
		return out
	default:
		return v
	}
}

func orderedTable(m *Map) any {
	if slices.ContainsFunc(m.keys, func(k string) bool { return !tomlTagKey(k) }) {
		out := make(map[string]any, len(m.keys))
		for _, k := range m.keys {
			out[k] = tomlValue(m.values[k])
		}
		return out
	}
	fields := make([]reflect.StructField, len(m.keys))
	for i, k := range m.keys {
		fields[i] = reflect.StructField{
			Name: "F" + strconv.Itoa(i),
			Type: anyType,
			Tag:  reflect.StructTag("toml:" + strconv.Quote(k)),
		}
	}
	sv := reflect.New(reflect.StructOf(fields)).Elem()
	for i, k := range m.keys {
		if e := tomlValue(m.values[k]); e != nil {
			sv.Field(i).Set(reflect.ValueOf(e))
		}
	}
	return sv.Interface()
}

// tomlTagKey reports whether k survives as a go-toml struct tag name.
func tomlTagKey(k string) bool {
	if k == "" {
		return false
	}
	for _, c := range k {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && !strings.ContainsRune(tagPunct, c) {
			return false
		}
	}
	return true
}

const tagPunct = "!#$%&()*+-./:;<=>?@[]^_{|}~ "

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
