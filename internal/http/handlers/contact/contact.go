// Package contact contains all HTTP handlers related to the Contact resource.
//
// HANDLER PATTERN USED HERE: THE CLOSURE / FACTORY PATTERN
// ────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like a store. Each
// factory below accepts the dependencies (storage, options) and returns a
// function with exactly that signature:
//
//	router.HandleFunc("POST /api/contacts", contact.New(storage, opts))
//	//                                      ^^^^^^^^^^^^^^^^^^^^^^^^^^
//	//                       New(storage, opts) runs ONCE at startup.
//	//                       The returned closure runs on EVERY request.
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/contacts-api/internal/storage"
	"github.com/aanand-mishra/contacts-api/internal/types"
	"github.com/aanand-mishra/contacts-api/internal/utils/response"
	"github.com/aanand-mishra/contacts-api/internal/validation"
)

// Options carries the behaviour switches shared by all contact handlers.
type Options struct {
	// StrictIDs rejects malformed ids with 400 instead of 404.
	StrictIDs bool

	// Validator checks request bodies for create and update.
	Validator *validation.Validator

	// Format selects bare or envelope bodies.
	Format response.Format
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/contacts
// Creates a new contact from the JSON request body.
//
// Request body (JSON), every field required and trimmed:
//
//	{ "firstName": "Alice", "lastName": "Liddell",
//	  "email": "alice@example.com", "telephone": "+4400000000" }
//
// Success response (201 Created), the stored contact with its new id:
//
//	{ "id": 3, "firstName": "Alice", ... }
//
// Error responses:
//
//	400 Bad Request  MISSING_FIELDS, INVALID_EMAIL or INVALID_BODY
//	500 Internal     storage failure
//
// ─────────────────────────────────────────────────────────────────────────────
func New(storage storage.Storage, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a contact")

		input, err := decodeInput(r, opts.Validator)
		if err != nil {
			opts.fail(w, err)
			return
		}

		created, err := storage.CreateContact(r.Context(), input.Contact(0))
		if err != nil {
			slog.Error("error creating contact", slog.String("error", err.Error()))
			opts.fail(w, err)
			return
		}

		slog.Info("contact created", slog.Int64("id", created.ID))
		opts.Format.Success(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/contacts/{id}
// Fetches a single contact.
//
// Success response (200 OK):
//
//	{ "id": 1, "firstName": "John", "lastName": "Doe",
//	  "email": "john.doe@example.com", "telephone": "+1234567890" }
//
// Error responses:
//
//	400 Bad Request  INVALID_ID (strict ids only)
//	404 Not Found    NOT_FOUND
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(storage storage.Storage, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting a contact", slog.String("id", id))

		contact, err := opts.lookup(r.Context(), storage, id)
		if err != nil {
			opts.fail(w, err)
			return
		}

		opts.Format.Success(w, http.StatusOK, contact)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/contacts
// Returns every contact in insertion order.
//
// Success response (200 OK):
//
//	[
//	  { "id": 1, "firstName": "John", ... },
//	  { "id": 2, "firstName": "Jane", ... }
//	]
//
// An empty store encodes as [] rather than null.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(storage storage.Storage, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all contacts")

		contacts, err := storage.GetContacts(r.Context())
		if err != nil {
			slog.Error("error getting contacts", slog.String("error", err.Error()))
			opts.fail(w, err)
			return
		}

		opts.Format.Success(w, http.StatusOK, contacts)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /api/contacts/{id}
// Replaces ALL fields of an existing contact; the id never changes.
//
// The id is parsed and looked up before the body is read, so an unknown
// id answers 404 even when the body is also invalid.
//
// Request body: same as New. An "id" member in the body is ignored.
//
// Success response (200 OK), the updated contact.
//
// Error responses:
//
//	400 Bad Request  INVALID_ID, MISSING_FIELDS, INVALID_EMAIL or INVALID_BODY
//	404 Not Found    NOT_FOUND
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(storage storage.Storage, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a contact", slog.String("id", id))

		existing, err := opts.lookup(r.Context(), storage, id)
		if err != nil {
			opts.fail(w, err)
			return
		}

		input, err := decodeInput(r, opts.Validator)
		if err != nil {
			opts.fail(w, err)
			return
		}

		updated, err := storage.UpdateContactByID(r.Context(), existing.ID, input.Contact(existing.ID))
		if err != nil {
			opts.fail(w, mapStorageError(id, err))
			return
		}

		slog.Info("contact updated", slog.String("id", id))
		opts.Format.Success(w, http.StatusOK, updated)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /api/contacts/{id}
// Permanently removes one contact.
//
// Success response: 204 No Content with an empty body, in either format.
//
// Error responses:
//
//	400 Bad Request  INVALID_ID (strict ids only)
//	404 Not Found    NOT_FOUND, including a second delete of the same id
//
// ─────────────────────────────────────────────────────────────────────────────
func Delete(storage storage.Storage, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a contact", slog.String("id", id))

		intID, err := opts.parseID(id)
		if err != nil {
			opts.fail(w, err)
			return
		}

		if err := storage.DeleteContactByID(r.Context(), intID); err != nil {
			opts.fail(w, mapStorageError(id, err))
			return
		}

		slog.Info("contact deleted", slog.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// parseID converts the path segment to a contact id. Strict mode accepts
// only base-10 positive integers. Otherwise anything unparseable becomes
// id 0, which no contact ever has.
//
// Unlike a JavaScript-style parseInt, a numeric prefix is not enough:
// "1abc" and "1.5" are INVALID_ID in strict mode, not id 1.
func (o Options) parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		if o.StrictIDs {
			return 0, response.ErrInvalidID
		}
		return 0, nil
	}
	return id, nil
}

// lookup parses raw and fetches the matching contact.
func (o Options) lookup(ctx context.Context, s storage.Storage, raw string) (types.Contact, error) {
	id, err := o.parseID(raw)
	if err != nil {
		return types.Contact{}, err
	}

	contact, err := s.GetContactByID(ctx, id)
	if err != nil {
		return types.Contact{}, mapStorageError(raw, err)
	}
	return contact, nil
}

// fail writes err in the configured format.
func (o Options) fail(w http.ResponseWriter, err error) {
	o.Format.Fail(w, err)
}

// mapStorageError turns storage.ErrNotFound into the 404 API error and
// logs anything else, which the response layer reports as a 500.
func mapStorageError(id string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return response.ErrNotFound
	}
	slog.Error("storage error", slog.String("id", id), slog.String("error", err.Error()))
	return err
}

// errTrailingData is reported when the body holds more than one JSON value.
var errTrailingData = errors.New("unexpected data after JSON value")

// decodeInput reads the JSON body and validates it. An empty body is the
// same as {} and fails with MISSING_FIELDS. The body must hold exactly one
// JSON value; anything after it is INVALID_BODY.
func decodeInput(r *http.Request, v *validation.Validator) (types.ContactInput, error) {
	var input types.ContactInput

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&input)
	if err != nil && !errors.Is(err, io.EOF) {
		return types.ContactInput{}, response.InvalidBody(err)
	}
	if err == nil {
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return types.ContactInput{}, response.InvalidBody(errTrailingData)
		}
	}

	res := v.Contact(input)
	switch {
	case len(res.Missing) > 0:
		return types.ContactInput{}, response.MissingFields(res.Missing)
	case res.InvalidEmail:
		return types.ContactInput{}, response.ErrInvalidEmail
	}
	return res.Input, nil
}
