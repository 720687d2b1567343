// Package router builds the route table and middleware chain served by
// cmd/contacts-api.
//
// Route table:
//
//	GET    /                   service description
//	GET    /health             health check
//	GET    /api/contacts       list contacts (also /api/contacts/)
//	POST   /api/contacts       create a contact
//	GET    /api/contacts/{id}  get one contact
//	PUT    /api/contacts/{id}  update a contact
//	DELETE /api/contacts/{id}  delete a contact
package router

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/contacts-api/internal/config"
	"github.com/aanand-mishra/contacts-api/internal/http/handlers/contact"
	"github.com/aanand-mishra/contacts-api/internal/http/handlers/meta"
	"github.com/aanand-mishra/contacts-api/internal/http/middleware"
	"github.com/aanand-mishra/contacts-api/internal/storage"
	"github.com/aanand-mishra/contacts-api/internal/utils/response"
	"github.com/aanand-mishra/contacts-api/internal/validation"
)

// Title is reported by GET /.
const Title = "Contact List API"

// Options derives the contact handler options from the API config.
func Options(api config.API) contact.Options {
	return contact.Options{
		StrictIDs: api.StrictIDs,
		Validator: validation.New(api.ValidateEmail),
		Format:    response.Format{Envelope: api.Envelope},
	}
}

// New returns the complete HTTP handler for the service.
func New(storage storage.Storage, opts contact.Options, logger *slog.Logger) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", meta.Root(Title))
	router.HandleFunc("GET /health", meta.Health())

	router.HandleFunc("POST /api/contacts", contact.New(storage, opts))
	router.HandleFunc("GET /api/contacts", contact.GetList(storage, opts))
	router.HandleFunc("GET /api/contacts/{$}", contact.GetList(storage, opts))
	router.HandleFunc("GET /api/contacts/{id}", contact.GetByID(storage, opts))
	router.HandleFunc("PUT /api/contacts/{id}", contact.Update(storage, opts))
	router.HandleFunc("DELETE /api/contacts/{id}", contact.Delete(storage, opts))

	return middleware.Chain(jsonErrors(router, opts.Format),
		middleware.WithRequestID,
		middleware.Logger(logger),
		middleware.Recover(logger, opts.Format),
	)
}

// jsonErrors serves requests the mux has no pattern for with a JSON error
// body instead of net/http's text/plain one. The mux's own fallback handler
// still runs so its status (404 or 405) and Allow header are kept.
func jsonErrors(mux *http.ServeMux, format response.Format) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallback, pattern := mux.Handler(r)
		if pattern != "" {
			mux.ServeHTTP(w, r)
			return
		}

		rec := &headerOnly{ResponseWriter: w, status: http.StatusNotFound}
		fallback.ServeHTTP(rec, r)

		if rec.status == http.StatusMethodNotAllowed {
			format.Fail(w, response.ErrBadMethod)
			return
		}
		format.Fail(w, response.ErrNoRoute)
	})
}

// headerOnly records the status of the mux fallback and drops its
// text/plain body. Header() still reaches the real writer.
type headerOnly struct {
	http.ResponseWriter
	status int
}

func (h *headerOnly) WriteHeader(status int) { h.status = status }

func (h *headerOnly) Write(b []byte) (int, error) { return len(b), nil }
