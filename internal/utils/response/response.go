// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Every handler in this application sends JSON back to the client. Rather
// than repeating the same three lines (set header, set status, encode JSON)
// in every handler, they are centralised here. Consistent response shapes
// also make life easier for API consumers — they always know what error
// responses look like.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the standard envelope returned for error cases.
//
// Success responses may return any JSON shape (a record, a list, an id…).
// Error responses always look like:
//
//	{ "status": "error", "error": "field Name is required" }
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error"`  // human-readable error detail
}

// Status string constants — use these instead of raw string literals so a
// typo is caught by the compiler.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Message is the envelope used by the message-oriented endpoints (notes and
// the deserialization endpoint): a human-readable msg, optionally with the
// payload under data and field errors under error.
//
//	{ "data": {...}, "msg": "Note retrieved" }
//	{ "error": "field Title is required", "msg": "Data insertion unsuccessful" }
type Message struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
	Msg   string `json:"msg"`
}

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// Order matters: Header() → WriteHeader() → body. Once WriteHeader is
// called (or the first Write happens), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// json.NewEncoder streams directly into w, no intermediate buffer.
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard Response shape. Use
// this for unexpected errors (DB failures, decode errors, etc.).
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError converts a set of validator.FieldError values into a
// single human-readable Response.
//
// The go-playground/validator package returns one FieldError per failing
// struct field. Each becomes a plain English sentence; they are joined with
// ", " so the client sees one descriptive error string:
//
//	{ "status": "error", "error": "field Name is required, field Age is required" }
func ValidationError(errs validator.ValidationErrors) Response {
	return Response{
		Status: StatusError,
		Error:  ValidationErrorText(errs),
	}
}

// ValidationErrorText renders the field-level error set as a single string,
// for endpoints that embed it in a different envelope than Response.
func ValidationErrorText(errs validator.ValidationErrors) string {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(errMessages, ", ")
}
