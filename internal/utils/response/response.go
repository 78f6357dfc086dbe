// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Every handler in this application sends JSON back to the client.
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here.
//
// Error responses always have the shape:
//
//	{ "message": "Invalid contact data",
//	  "errors": [ { "field": "email", "message": "..." } ] }
//
// where "errors" appears only for validation failures. Clients key
// their form highlighting off the field names, so the per-field list is
// part of the API contract, not a debugging aid.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed constraint on one input field.
type FieldError struct {
	Field   string `json:"field"`   // JSON field name, e.g. "email"
	Message string `json:"message"` // human-readable constraint description
}

// Error is the standard envelope for every non-2xx response.
type Error struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// WriteJSON writes a JSON-encoded response with the given HTTP status
// code. data can be any encodable value — a record, a slice, an Error.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps a message into the standard envelope with no
// per-field detail. Use for decode failures, storage failures, and
// conflicts.
func GeneralError(message string) Error {
	return Error{Message: message}
}

// ValidationError converts go-playground/validator field errors into
// the standard envelope. The validator reports EVERY failing field, not
// just the first, and we keep its order.
//
// Field names come from the struct's json tag (see the RegisterTagNameFunc
// call in the handlers' shared validator), so the client sees "partySize",
// not "PartySize".
func ValidationError(message string, errs validator.ValidationErrors) Error {
	fieldErrors := make([]FieldError, 0, len(errs))

	for _, e := range errs {
		var msg string
		switch e.ActualTag() {
		// "required" tag — field was missing or zero-valued
		case "required":
			msg = fmt.Sprintf("field %s is required", e.Field())
		// "email" tag — field did not match email format
		case "email":
			msg = fmt.Sprintf("field %s must be a valid email address", e.Field())
		// "gt" tag — numeric field at or below the bound
		case "gt":
			msg = fmt.Sprintf("field %s must be greater than %s", e.Field(), e.Param())
		// Catch-all for any other validation tag (min, max, len, etc.)
		default:
			msg = fmt.Sprintf("field %s is invalid", e.Field())
		}

		fieldErrors = append(fieldErrors, FieldError{
			Field:   e.Field(),
			Message: msg,
		})
	}

	return Error{
		Message: message,
		Errors:  fieldErrors,
	}
}
