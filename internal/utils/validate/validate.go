// Package validate wraps go-playground/validator behind a single shared
// instance configured for this API.
//
// Why not validator.New() inline in every handler? Two reasons:
//
//   - A validator instance caches struct metadata; sharing one avoids
//     re-parsing the validate tags on every request.
//
//   - Error messages must name fields the way the CLIENT sees them
//     ("partySize"), not the Go way ("PartySize"). That mapping is a
//     RegisterTagNameFunc call which belongs in exactly one place.
//
// Validation here is pure: input struct in, field errors out, nothing
// stored, nothing mutated. Handlers only touch storage after Struct
// returns nil.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var instance = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json tag name so error payloads line up
	// with the request body the client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct checks every validate:"..." tag on v. Returns nil when all
// constraints hold, otherwise the full list of field errors — validator
// collects every failure, not just the first.
func Struct(v any) validator.ValidationErrors {
	err := instance.Struct(v)
	if err == nil {
		return nil
	}
	return err.(validator.ValidationErrors)
}
