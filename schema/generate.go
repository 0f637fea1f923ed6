package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Generate builds a JSON schema for the given Go type using reflection.
// Struct tags drive the output: `json` names the property and omitempty
// makes it optional, `description` documents it, `enum` restricts string
// values (comma-separated), and `required` overrides the omitempty default.
//
// Example:
//
//	type Action struct {
//	  Kind string `json:"action" description:"The action to take" enum:"add,delete"`
//	  Text string `json:"text,omitempty" description:"The item text"`
//	}
//	s, err := schema.Generate(Action{})
func Generate(v any) (*Schema, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("cannot generate schema for nil value")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	prop, err := reflectType(t)
	if err != nil {
		return nil, err
	}
	if t.Kind() != reflect.Struct {
		return &Schema{Type: prop.Type}, nil
	}

	additionalProps := false
	return &Schema{
		Type:                 prop.Type,
		Properties:           prop.Properties,
		Required:             prop.Required,
		AdditionalProperties: &additionalProps,
	}, nil
}

// reflectType recursively analyzes a reflect.Type and returns a Property
// describing its JSON schema representation.
func reflectType(t reflect.Type) (*Property, error) {
	switch t.Kind() {
	case reflect.String:
		return &Property{Type: String}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Property{Type: Integer}, nil

	case reflect.Float32, reflect.Float64:
		return &Property{Type: Number}, nil

	case reflect.Bool:
		return &Property{Type: Boolean}, nil

	case reflect.Slice, reflect.Array:
		items, err := reflectType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("failed to reflect array element type: %w", err)
		}
		return &Property{Type: Array, Items: items}, nil

	case reflect.Struct:
		return reflectStruct(t)

	case reflect.Ptr:
		underlying, err := reflectType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("failed to reflect pointer underlying type: %w", err)
		}
		nullable := true
		underlying.Nullable = &nullable
		return underlying, nil

	case reflect.Interface:
		// any JSON value
		return &Property{}, nil

	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind().String())
	}
}

func reflectStruct(t reflect.Type) (*Property, error) {
	properties := make(map[string]*Property)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonName, isRequired := parseJSONTag(field)
		if jsonName == "-" {
			continue
		}

		prop, err := reflectType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to reflect field %s: %w", field.Name, err)
		}
		applyFieldTags(prop, field)

		if checkRequired(field, isRequired) {
			required = append(required, jsonName)
		}
		properties[jsonName] = prop
	}

	additionalProps := false
	return &Property{
		Type:                 Object,
		Properties:           properties,
		Required:             required,
		AdditionalProperties: &additionalProps,
	}, nil
}

// parseJSONTag extracts the JSON field name and omitempty flag from a struct
// field's json tag. A field without omitempty is required by default.
func parseJSONTag(field reflect.StructField) (name string, required bool) {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" {
		return field.Name, true
	}

	parts := strings.Split(jsonTag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}

	required = true
	for _, part := range parts[1:] {
		if part == "omitempty" {
			required = false
			break
		}
	}
	return name, required
}

func applyFieldTags(prop *Property, field reflect.StructField) {
	if desc := field.Tag.Get("description"); desc != "" {
		prop.Description = desc
	}
	if enum := field.Tag.Get("enum"); enum != "" {
		prop.Enum = strings.Split(enum, ",")
	}
	if nullable := field.Tag.Get("nullable"); nullable != "" {
		if val, err := strconv.ParseBool(nullable); err == nil {
			prop.Nullable = &val
		}
	}
	if pattern := field.Tag.Get("pattern"); pattern != "" {
		prop.Pattern = &pattern
	}
	if format := field.Tag.Get("format"); format != "" {
		prop.Format = &format
	}
}

// checkRequired determines if a field should be marked as required. An
// explicit required tag takes precedence over the json tag.
func checkRequired(field reflect.StructField, jsonRequired bool) bool {
	if req := field.Tag.Get("required"); req != "" {
		if val, err := strconv.ParseBool(req); err == nil {
			return val
		}
	}
	return jsonRequired
}
