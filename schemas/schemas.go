// Package schemas is the validation layer: every payload that reaches the
// record service, the prediction gateway or account provisioning is first
// normalized and checked here, producing field-level error messages.
package schemas

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/funabab/ilivercare-app/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name so messages match the wire payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Expose Number to the rule engine: absent fields fail "required",
	// non-numeric input fails "number", valid input validates as *float64.
	// A pointer carries presence so a legitimate 0 is not mistaken for a
	// missing value by the zero-value check behind "required".
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		n, ok := field.Interface().(Number)
		if !ok || !n.Present() {
			return nil
		}
		if !n.Numeric() {
			return n.raw
		}
		value := n.Float64()
		return &value
	}, Number{})

	return v
}

// messages maps json field name -> failing tag -> human-readable message.
type messages map[string]map[string]string

func numberMessages(label string) map[string]string {
	return map[string]string{
		"required": label + " is required",
		"number":   "Enter a valid number for " + label,
	}
}

func check(s any, msgs messages) []apperr.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []apperr.FieldError{{Field: "", Message: "Invalid input"}}
	}

	out := make([]apperr.FieldError, 0, len(ves))
	for _, ve := range ves {
		out = append(out, apperr.FieldError{
			Field:   ve.Field(),
			Message: messageFor(msgs, ve.Field(), ve.Tag()),
		})
	}
	return out
}

func messageFor(msgs messages, field, tag string) string {
	if byTag, ok := msgs[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return "Invalid value for " + field
}

// hasFieldError reports whether fields already carries an error for name.
func hasFieldError(fields []apperr.FieldError, name string) bool {
	for _, fe := range fields {
		if fe.Field == name {
			return true
		}
	}
	return false
}
