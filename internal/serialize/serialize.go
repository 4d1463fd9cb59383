// Package serialize turns declared resource structs into CloudFormation
// property maps.
//
// Two conventions drive it: field names carry PascalCase json tags, and a
// nested value that is itself a resource (implements ResourceType) is not
// inlined but replaced by {"Ref": <logical name>}, resolved through the
// registry the resource was registered in. Intrinsics serialize through
// their own json.Marshaler implementations.
package serialize

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
)

// Resolver answers reverse lookups during serialization: given a resource
// value, under which logical name was it registered? *ecomstack.Registry
// satisfies it.
type Resolver interface {
	FindByValue(v any) (string, bool)
}

// referenceable is what makes a nested value a resource reference rather
// than an inline property block.
type referenceable interface {
	ResourceType() string
}

// Properties serializes a resource struct to its CloudFormation Properties
// map. Nested resource values become Refs; a nested resource the resolver
// does not know is an error, because it means a declaration was referenced
// but never registered.
func Properties(v any, res Resolver) (map[string]any, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("serializing properties: %T is not a struct", v)
	}

	result := make(map[string]any)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		name := fieldName(field)
		if name == "-" {
			continue
		}

		fieldVal := val.Field(i)
		if isZeroValue(fieldVal) {
			continue
		}

		serialized, err := serializeValue(fieldVal, res)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		if serialized != nil {
			result[name] = serialized
		}
	}

	return result, nil
}

func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		return field.Name
	}
	return name
}

// isZeroValue reports whether a field should be omitted. Pointer fields are
// only omitted when nil; that is how a declared false survives for fields
// like PubliclyAccessible where omission and false differ.
func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Slice, reflect.Map:
		return v.IsNil() || v.Len() == 0
	case reflect.String:
		return v.String() == ""
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	default:
		return false
	}
}

func serializeValue(v reflect.Value, res Resolver) (any, error) {
	if !v.IsValid() {
		return nil, nil
	}

	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		return serializeValue(v.Elem(), res)
	}

	if v.CanInterface() {
		iv := v.Interface()

		// A nested resource is a reference, never an inline block.
		if r, ok := iv.(referenceable); ok {
			name, found := res.FindByValue(iv)
			if !found {
				return nil, fmt.Errorf("reference to unregistered %s resource", r.ResourceType())
			}
			return map[string]any{"Ref": name}, nil
		}

		// Intrinsics carry their own wire form.
		if m, ok := iv.(json.Marshaler); ok {
			data, err := m.MarshalJSON()
			if err != nil {
				return nil, err
			}
			var out any
			if err := json.Unmarshal(data, &out); err != nil {
				return nil, err
			}
			return out, nil
		}
	}

	switch v.Kind() {
	case reflect.Struct:
		return Properties(v.Interface(), res)

	case reflect.Slice:
		if v.Len() == 0 {
			return nil, nil
		}
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := serializeValue(v.Index(i), res)
			if err != nil {
				return nil, err
			}
			out[i] = elem
		}
		return out, nil

	case reflect.Map:
		if v.Len() == 0 {
			return nil, nil
		}
		out := make(map[string]any)
		iter := v.MapRange()
		for iter.Next() {
			elem, err := serializeValue(iter.Value(), res)
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = elem
		}
		return out, nil

	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil

	default:
		data, err := json.Marshal(v.Interface())
		if err != nil {
			return nil, err
		}
		var out any
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// subRefPattern matches ${Name} and ${Name.Attribute} inside Fn::Sub
// strings. ${!literal} escapes are not references.
var subRefPattern = regexp.MustCompile(`\$\{([A-Za-z0-9:.]+)\}`)

// Dependencies extracts the logical names a serialized property map refers
// to, via Ref, Fn::GetAtt and Fn::Sub. known filters out pseudo-parameters
// and dynamic-reference noise: only names it accepts are returned. The
// result is sorted and de-duplicated.
func Dependencies(props any, known func(string) bool) []string {
	seen := make(map[string]bool)
	walkRefs(props, known, seen)

	deps := make([]string, 0, len(seen))
	for name := range seen {
		deps = append(deps, name)
	}
	sort.Strings(deps)
	return deps
}

func walkRefs(v any, known func(string) bool, seen map[string]bool) {
	switch val := v.(type) {
	case map[string]any:
		for key, inner := range val {
			switch key {
			case "Ref":
				if name, ok := inner.(string); ok {
					record(name, known, seen)
				}
			case "Fn::GetAtt":
				switch att := inner.(type) {
				case []any:
					if len(att) > 0 {
						if name, ok := att[0].(string); ok {
							record(name, known, seen)
						}
					}
				case string:
					record(strings.SplitN(att, ".", 2)[0], known, seen)
				}
			case "Fn::Sub":
				switch sub := inner.(type) {
				case string:
					recordSubRefs(sub, known, seen)
				case []any:
					if len(sub) > 0 {
						if s, ok := sub[0].(string); ok {
							recordSubRefs(s, known, seen)
						}
					}
				}
			default:
				walkRefs(inner, known, seen)
			}
		}
	case []any:
		for _, inner := range val {
			walkRefs(inner, known, seen)
		}
	}
}

func recordSubRefs(s string, known func(string) bool, seen map[string]bool) {
	for _, m := range subRefPattern.FindAllStringSubmatch(s, -1) {
		name := strings.SplitN(m[1], ".", 2)[0]
		record(name, known, seen)
	}
}

func record(name string, known func(string) bool, seen map[string]bool) {
	if strings.HasPrefix(name, "AWS::") {
		return
	}
	if known != nil && !known(name) {
		return
	}
	seen[name] = true
}
