// Package val provides validation functions for use case parameters and configuration values.
package val

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate //nolint: gochecknoglobals // shared validator, it caches struct metadata

func init() { //nolint: gochecknoinits // validator must be ready before the first ValidateSchema call
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(getTagName)
	registerCustomValidations(validate)
}

func getValidator() *validator.Validate {
	return validate
}

// Validator returns the shared validator with the custom tags registered.
// Field names in its errors follow the json/yaml tags.
func Validator() *validator.Validate {
	return validate
}

// getTagName returns the name of a struct field based on its struct tags.
// It checks 'json' and 'yaml' tags in that order, and falls back
// to the field name if neither tag has a non-empty name component.
func getTagName(fld reflect.StructField) string {
	for _, tagName := range []string{"json", "yaml"} {
		name := strings.SplitN(fld.Tag.Get(tagName), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}

	return fld.Name
}
