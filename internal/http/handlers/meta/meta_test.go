package meta

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints_FreshMap(t *testing.T) {
	first := endpoints()
	first["GET /health"] = "changed"
	delete(first, "DELETE /api/contacts/:id")

	second := endpoints()
	assert.Len(t, second, 6)
	assert.Equal(t, "Health check endpoint", second["GET /health"])
}

func TestRoot(t *testing.T) {
	rec := httptest.NewRecorder()
	Root("Contacts API")(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body Description
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, Description{Message: "Contacts API", Endpoints: endpoints()}, body)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health()(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
