// Package meta serves the endpoints that describe the service itself
// rather than contacts. Their bodies are never wrapped in an envelope.
package meta

import (
	"net/http"

	"github.com/aanand-mishra/contacts-api/internal/utils/response"
)

// endpoints maps "METHOD path" to a one-line description, as listed by Root.
// A fresh map is built per call so no caller can change what Root serves.
func endpoints() map[string]string {
	return map[string]string{
		"GET /health":              "Health check endpoint",
		"GET /api/contacts":        "Get all contacts",
		"GET /api/contacts/:id":    "Get a contact by ID",
		"POST /api/contacts":       "Create a new contact",
		"PUT /api/contacts/:id":    "Update a contact",
		"DELETE /api/contacts/:id": "Delete a contact",
	}
}

// Description is the body of GET /.
type Description struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Root handles GET / with the service name and its endpoint listing.
func Root(name string) http.HandlerFunc {
	body := Description{Message: name, Endpoints: endpoints()}
	return func(w http.ResponseWriter, _ *http.Request) {
		response.WriteJSON(w, http.StatusOK, body)
	}
}

// Health handles GET /health. It only proves the process is serving.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": response.StatusOK})
	}
}
