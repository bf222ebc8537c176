// Package mask provides functionality for masking sensitive fields in structs before logging them.
package mask

import (
	"fmt"
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const tagName = "mask"

// Viewer is implemented by values whose fields are unexported and which expose
// a loggable view of themselves instead (for example immutable parameter objects).
type Viewer interface {
	MaskView() any
}

// StructToOrdMap flattens v into an ordered map with sensitive values masked.
// Fields tagged with `mask:"true"` have their values replaced by a placeholder;
// nested structs are flattened with dotted keys. Field names follow the priority
// json tag > yaml tag > struct field name, and fields tagged "-" are skipped.
func StructToOrdMap(v any) *orderedmap.OrderedMap[string, any] {
	if v == nil {
		return nil
	}

	if viewer, ok := v.(Viewer); ok {
		return StructToOrdMap(viewer.MaskView())
	}

	om := orderedmap.New[string, any]()
	flatten(om, reflect.ValueOf(v), "")
	return om
}

func flatten(om *orderedmap.OrderedMap[string, any], val reflect.Value, prefix string) {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			om.Set(prefix, nil)
			return
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		om.Set(prefix, val.Interface())
		return
	}

	typ := val.Type()
	for i := range val.NumField() {
		fieldType := typ.Field(i)
		if !fieldType.IsExported() {
			continue
		}

		name, skip := fieldName(fieldType)
		if skip {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		field := val.Field(i)
		switch {
		case strings.EqualFold(fieldType.Tag.Get(tagName), "true"):
			om.Set(name, placeholder(field))
		case field.Kind() == reflect.Pointer && field.IsNil():
			om.Set(name, nil)
		case isStruct(field):
			flatten(om, field, name)
		default:
			om.Set(name, field.Interface())
		}
	}
}

func isStruct(val reflect.Value) bool {
	if val.Kind() == reflect.Pointer {
		return !val.IsNil() && val.Elem().Kind() == reflect.Struct
	}
	return val.Kind() == reflect.Struct
}

// placeholder hides the value but keeps its kind visible; nil stays nil so that
// "not configured" remains distinguishable from "configured".
func placeholder(val reflect.Value) any {
	switch val.Kind() { //nolint:exhaustive // remaining kinds are masked by name
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return nil
		}
		return placeholder(val.Elem())
	case reflect.Slice, reflect.Map:
		if val.IsNil() {
			return nil
		}
	}

	switch val.Kind() { //nolint:exhaustive // default covers the rest
	case reflect.String:
		return "***masked-string***"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "***masked-int***"
	case reflect.Slice, reflect.Array:
		return "***masked-slice***"
	default:
		return fmt.Sprintf("***masked-%s***", val.Kind())
	}
}

func fieldName(field reflect.StructField) (string, bool) {
	for _, tag := range []string{"json", "yaml"} {
		value, ok := field.Tag.Lookup(tag)
		if !ok {
			continue
		}
		if value == "-" {
			return "", true
		}
		if name, _, _ := strings.Cut(value, ","); name != "" {
			return name, false
		}
	}

	return field.Name, false
}
