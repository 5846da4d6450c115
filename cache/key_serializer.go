package cache

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// KeySeparator delimits the segments of a cache key: entity, operation, and
// one segment per parameter.
const KeySeparator = "::"

// EntityPrefix returns the key prefix shared by every cached query for the
// named entity. Prefix matching against it is what makes coarse,
// entity-wide invalidation possible.
func EntityPrefix(entity string) string {
	return entity + KeySeparator
}

// OperationPrefix returns the key prefix shared by every cached query for
// one operation on the named entity.
func OperationPrefix(entity, operation string) string {
	return entity + KeySeparator + operation
}

// defaultKeySerializer produces deterministic keys via reflection. Slices
// keep element order, maps sort their keys, structs serialize exported
// fields in declaration order, pointers dereference. Anything else falls
// back to canonical JSON.
type defaultKeySerializer struct{}

// NewDefaultKeySerializer creates the serializer used unless a caller
// provides their own.
func NewDefaultKeySerializer() KeySerializer {
	return &defaultKeySerializer{}
}

func (s *defaultKeySerializer) SerializeKey(entity, operation string, args ...any) string {
	parts := make([]string, 0, 2+len(args))
	parts = append(parts, entity, operation)
	for _, arg := range args {
		parts = append(parts, s.serialize(arg))
	}
	return strings.Join(parts, KeySeparator)
}

func (s *defaultKeySerializer) serialize(v any) string {
	if v == nil {
		return "nil"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
		return s.serialize(rv.Elem().Interface())

	case reflect.Slice:
		if rv.IsNil() {
			return "slice:nil"
		}
		return s.serializeSequence("slice", rv)

	case reflect.Array:
		return s.serializeSequence("array", rv)

	case reflect.Map:
		if rv.IsNil() {
			return "map:nil"
		}
		return s.serializeMap(rv)

	case reflect.Struct:
		return s.serializeStruct(rv)

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return fmt.Sprintf("%v", v)

	default:
		return s.jsonFallback(v)
	}
}

func (s *defaultKeySerializer) serializeSequence(kind string, rv reflect.Value) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = s.serialize(rv.Index(i).Interface())
	}
	return fmt.Sprintf("%s[%d]:{%s}", kind, len(parts), strings.Join(parts, ","))
}

func (s *defaultKeySerializer) serializeMap(rv reflect.Value) string {
	pairs := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, fmt.Sprintf("%s=%s", s.serialize(iter.Key().Interface()), s.serialize(iter.Value().Interface())))
	}
	// Map iteration order is random; sorting the rendered pairs keeps the
	// key deterministic.
	sort.Strings(pairs)
	return fmt.Sprintf("map[%d]:{%s}", len(pairs), strings.Join(pairs, ","))
}

func (s *defaultKeySerializer) serializeStruct(rv reflect.Value) string {
	rt := rv.Type()
	parts := make([]string, 0, rv.NumField())
	for i := 0; i < rv.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%s", field.Name, s.serialize(rv.Field(i).Interface())))
	}
	return fmt.Sprintf("struct:{%s}", strings.Join(parts, ","))
}

func (s *defaultKeySerializer) jsonFallback(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("fallback:%s", reflect.TypeOf(v).String())
	}
	return fmt.Sprintf("json:%s", data)
}
