// Package jsonschema generates a JSON Schema description of a Go type via
// reflection. The repair orchestrator embeds the generated schema in its
// re-prompt so the model knows the exact shape it must produce.
package jsonschema

import (
	"reflect"
	"strings"
)

// Schema is the subset of JSON Schema used for describing artifact shapes.
type Schema struct {
	Type       string             `json:"type,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Enum       []any              `json:"enum,omitempty"`
}

// Generate builds a schema for T from its struct tags. Fields without an
// omitempty json option are listed as required; unexported and `json:"-"`
// fields are skipped.
func Generate[T any]() *Schema {
	return fromType(reflect.TypeOf((*T)(nil)).Elem())
}

func fromType(t reflect.Type) *Schema {
	switch t.Kind() {
	case reflect.Pointer:
		return fromType(t.Elem())

	case reflect.Struct:
		schema := &Schema{
			Type:       "object",
			Properties: make(map[string]*Schema),
		}
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name, required, skip := parseTag(field)
			if skip {
				continue
			}
			schema.Properties[name] = fromType(field.Type)
			if required {
				schema.Required = append(schema.Required, name)
			}
		}
		return schema

	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: fromType(t.Elem())}

	case reflect.Map:
		return &Schema{Type: "object"}

	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	default:
		return &Schema{}
	}
}

func parseTag(field reflect.StructField) (name string, required, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	name = field.Name
	required = true

	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			required = false
		}
	}
	return name, required, false
}
