// Package storage defines the Storage interface, the contract any contact
// backend must satisfy to work with this application.
//
// Handlers depend only on this interface, so the in-memory slice backend
// and the SQLite backend are interchangeable from main.go, and tests can
// run the same suite against both.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/contacts-api/internal/types"
)

// ErrNotFound is returned when no contact has the requested id.
// Backends wrap it, so callers must match with errors.Is.
var ErrNotFound = errors.New("storage: contact not found")

// Storage is the contact store contract.
type Storage interface {
	// GetContacts returns every contact in insertion order.
	// Returns an empty slice (not nil) when the store is empty.
	GetContacts(ctx context.Context) ([]types.Contact, error)

	// GetContactByID fetches a single contact.
	// Returns ErrNotFound if no contact has that id.
	GetContactByID(ctx context.Context, id int64) (types.Contact, error)

	// CreateContact assigns the next id, appends the contact and returns
	// the stored record. The ID field of c is ignored.
	CreateContact(ctx context.Context, c types.Contact) (types.Contact, error)

	// UpdateContactByID replaces every field except the id.
	// Returns the stored record or ErrNotFound.
	UpdateContactByID(ctx context.Context, id int64, c types.Contact) (types.Contact, error)

	// DeleteContactByID removes exactly one contact or returns ErrNotFound.
	DeleteContactByID(ctx context.Context, id int64) error
}

// Seed returns the sample contacts every backend starts with.
// A fresh slice is returned on each call so callers may keep it.
func Seed() []types.Contact {
	return []types.Contact{
		{
			ID:        1,
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john.doe@example.com",
			Telephone: "+1234567890",
		},
		{
			ID:        2,
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     "jane.smith@example.com",
			Telephone: "+0987654321",
		},
	}
}
