package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Success(t *testing.T) {
	t.Run("bare", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, Format{}.Success(rec, http.StatusCreated, map[string]int{"id": 3}))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"id":3}`, rec.Body.String())
	})

	t.Run("envelope", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, Format{Envelope: true}.Success(rec, http.StatusOK, []int{1, 2}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"data":[1,2]}`, rec.Body.String())
	})
}

func TestFormat_Fail(t *testing.T) {
	tests := []struct {
		name     string
		envelope bool
		err      error
		status   int
		body     string
	}{
		{
			name:   "bare not found",
			err:    ErrNotFound,
			status: http.StatusNotFound,
			body:   `{"status":"error","error":"Contact not found","code":"NOT_FOUND"}`,
		},
		{
			name:     "envelope missing fields",
			envelope: true,
			err:      MissingFields([]string{"firstName", "email"}),
			status:   http.StatusBadRequest,
			body: `{"success":false,"error":{"message":"Missing required fields: firstName, email",` +
				`"code":"MISSING_FIELDS"}}`,
		},
		{
			name:   "plain error hidden as internal",
			err:    errors.New("disk on fire"),
			status: http.StatusInternalServerError,
			body:   `{"status":"error","error":"Internal server error","code":"INTERNAL_ERROR"}`,
		},
		{
			name:     "envelope invalid id",
			envelope: true,
			err:      ErrInvalidID,
			status:   http.StatusBadRequest,
			body:     `{"success":false,"error":{"message":"Invalid contact ID","code":"INVALID_ID"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.NoError(t, Format{Envelope: tt.envelope}.Fail(rec, tt.err))

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestInvalidBody(t *testing.T) {
	err := InvalidBody(&json.SyntaxError{})

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeInvalidBody, err.Code)
	assert.Contains(t, err.Message, "invalid request body")
}
