// Package memory provides the default storage.Storage implementation: an
// ordered slice of contacts plus an id counter, both owned by one Memory
// value and lost when the process exits.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/aanand-mishra/contacts-api/internal/storage"
	"github.com/aanand-mishra/contacts-api/internal/types"
)

// Memory implements storage.Storage.
//
// net/http serves each request on its own goroutine, so every method
// holds mu for its whole body. That keeps each operation a single step
// as seen by other requests.
type Memory struct {
	mu       sync.Mutex
	contacts []types.Contact
	nextID   int64
}

var _ storage.Storage = (*Memory)(nil)

// New returns a store holding the given contacts in order. The id counter
// starts one past the highest id seen.
func New(seed ...types.Contact) *Memory {
	var maxID int64
	for _, c := range seed {
		maxID = max(maxID, c.ID)
	}
	return &Memory{
		contacts: slices.Clone(seed),
		nextID:   maxID + 1,
	}
}

// NewSeeded returns a store holding storage.Seed().
func NewSeeded() *Memory {
	return New(storage.Seed()...)
}

func (m *Memory) GetContacts(_ context.Context) ([]types.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy so callers never share the backing array with the store.
	contacts := make([]types.Contact, len(m.contacts))
	copy(contacts, m.contacts)
	return contacts, nil
}

func (m *Memory) GetContactByID(_ context.Context, id int64) (types.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return types.Contact{}, fmt.Errorf("GetContactByID %d: %w", id, storage.ErrNotFound)
	}
	return m.contacts[i], nil
}

func (m *Memory) CreateContact(_ context.Context, c types.Contact) (types.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = m.nextID
	m.nextID++
	m.contacts = append(m.contacts, c)
	return c, nil
}

func (m *Memory) UpdateContactByID(_ context.Context, id int64, c types.Contact) (types.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return types.Contact{}, fmt.Errorf("UpdateContactByID %d: %w", id, storage.ErrNotFound)
	}
	c.ID = id
	m.contacts[i] = c
	return c, nil
}

func (m *Memory) DeleteContactByID(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return fmt.Errorf("DeleteContactByID %d: %w", id, storage.ErrNotFound)
	}
	m.contacts = slices.Delete(m.contacts, i, i+1)
	return nil
}

// index returns the position of id in m.contacts, or -1. Callers hold mu.
func (m *Memory) index(id int64) int {
	return slices.IndexFunc(m.contacts, func(c types.Contact) bool { return c.ID == id })
}
