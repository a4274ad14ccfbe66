// Package validation checks request input structs against their
// declarative field rules and shapes failures into the wire format: an
// ordered array of {"error": "<message>"} objects.
package validation

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Input is a request body struct carrying validator tags and a table of
// per-field wire messages keyed by JSON field name.
type Input interface {
	Messages() map[string]string
}

// Error is a single field validation failure.
type Error struct {
	Field   string
	Message string
}

// MarshalJSON renders the wire shape {"error": "<message>"}.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"error": e.Message})
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// The published value must stringify to exactly "true" or "false".
	_ = v.RegisterValidation("boolstring", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "true" || s == "false"
	})

	return v
}

// Check trims every string field of in, validates it, and returns the
// failures in field order. A nil or empty result means the input is
// acceptable. Check never touches the store; it is a pure function of
// the input.
func Check(in Input) []Error {
	trimStrings(in)

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Error{{Message: "Invalid request body."}}
	}

	messages := in.Messages()
	seen := make(map[string]bool, len(verrs))
	var out []Error
	for _, fe := range verrs {
		field := fe.Field()
		if seen[field] {
			continue
		}
		seen[field] = true
		msg, ok := messages[field]
		if !ok {
			msg = "Invalid value for " + field + "."
		}
		out = append(out, Error{Field: field, Message: msg})
	}
	return out
}

// trimStrings trims whitespace from every settable string field so that
// length rules apply to the trimmed value.
func trimStrings(in Input) {
	v := reflect.ValueOf(in)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}
