// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler in this application sends JSON back to the client. Rather
// than repeating "set header, set status, encode JSON" in every handler,
// we centralise it here.
//
// Two body shapes are supported and chosen once at startup through Format:
//
//	bare:     the resource itself, errors as
//	          { "status": "error", "error": "Contact not found", "code": "NOT_FOUND" }
//	envelope: { "success": true, "data": ... } and
//	          { "success": false, "error": { "message": "...", "code": "..." } }
package response

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the bare-format error body:
//
//	{ "status": "error", "error": "Invalid contact ID", "code": "INVALID_ID" }
//
// Code is omitted when the error carries none (see GeneralError).
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error"`  // human-readable error detail
	Code   string `json:"code,omitempty"`
}

// Status string constants, so a typo is caught by the compiler rather
// than silently sending "eroor".
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ─────────────────────────────────────────────────────────────────────────────
// Envelope is the envelope-format body used for both outcomes:
//
//	{ "success": true,  "data": { "id": 1, ... } }
//	{ "success": false, "error": { "message": "Contact not found", "code": "NOT_FOUND" } }
//
// ─────────────────────────────────────────────────────────────────────────────
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the error member of an Envelope.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ─────────────────────────────────────────────────────────────────────────────
// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
// ─────────────────────────────────────────────────────────────────────────────
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Format writes success and error bodies in the configured shape.
type Format struct {
	Envelope bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Success writes data with the given status.
//
// Example usage:
//
//	opts.Format.Success(w, http.StatusCreated, created)
//
// ─────────────────────────────────────────────────────────────────────────────
func (f Format) Success(w http.ResponseWriter, status int, data any) error {
	if f.Envelope {
		return WriteJSON(w, status, Envelope{Success: true, Data: data})
	}
	return WriteJSON(w, status, data)
}

// ─────────────────────────────────────────────────────────────────────────────
// Fail writes err with the status and code of its *Error.
//
// Anything that is not an *Error (a storage failure, say) is reported as
// ErrInternal, so internal details never reach the client:
//
//	{ "status": "error", "error": "Internal server error", "code": "INTERNAL_ERROR" }
//
// ─────────────────────────────────────────────────────────────────────────────
func (f Format) Fail(w http.ResponseWriter, err error) error {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = ErrInternal
	}

	if f.Envelope {
		return WriteJSON(w, apiErr.Status, Envelope{
			Success: false,
			Error:   &ErrorBody{Message: apiErr.Message, Code: apiErr.Code},
		})
	}
	return WriteJSON(w, apiErr.Status, GeneralError(apiErr))
}

// GeneralError wraps any Go error into the bare Response shape. An *Error
// also contributes its code.
func GeneralError(err error) Response {
	resp := Response{
		Status: StatusError,
		Error:  err.Error(),
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		resp.Code = apiErr.Code
	}
	return resp
}
