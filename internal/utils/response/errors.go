package response

import (
	"fmt"
	"net/http"
	"strings"
)

// Error codes sent to clients.
const (
	CodeInvalidID     = "INVALID_ID"
	CodeNotFound      = "NOT_FOUND"
	CodeMissingFields = "MISSING_FIELDS"
	CodeInvalidEmail  = "INVALID_EMAIL"
	CodeInvalidBody   = "INVALID_BODY"
	CodeNoRoute       = "ROUTE_NOT_FOUND"
	CodeBadMethod     = "METHOD_NOT_ALLOWED"
	CodeInternal      = "INTERNAL_ERROR"
)

// Error is a failure that maps to one HTTP status and one error code.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrInvalidID    = &Error{http.StatusBadRequest, CodeInvalidID, "Invalid contact ID"}
	ErrNotFound     = &Error{http.StatusNotFound, CodeNotFound, "Contact not found"}
	ErrInvalidEmail = &Error{http.StatusBadRequest, CodeInvalidEmail, "Invalid email format"}
	ErrInternal     = &Error{http.StatusInternalServerError, CodeInternal, "Internal server error"}
	ErrNoRoute      = &Error{http.StatusNotFound, CodeNoRoute, "Route not found"}
	ErrBadMethod    = &Error{http.StatusMethodNotAllowed, CodeBadMethod, "Method not allowed"}
)

// MissingFields reports the required fields that were absent or blank.
func MissingFields(fields []string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeMissingFields,
		Message: "Missing required fields: " + strings.Join(fields, ", "),
	}
}

// InvalidBody reports a request body that is not valid JSON for the schema.
func InvalidBody(err error) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeInvalidBody,
		Message: fmt.Sprintf("invalid request body: %v", err),
	}
}
