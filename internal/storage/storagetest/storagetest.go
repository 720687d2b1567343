// Package storagetest is the behavioural suite every storage.Storage
// backend runs from its own tests.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/contacts-api/internal/storage"
	"github.com/aanand-mishra/contacts-api/internal/types"
)

// Run exercises a backend. newStore must return a freshly seeded store
// on every call.
func Run(t *testing.T, newStore func(t *testing.T) storage.Storage) {
	t.Helper()
	ctx := context.Background()

	alice := types.Contact{
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
		Telephone: "+4400000000",
	}

	t.Run("starts with seed", func(t *testing.T) {
		s := newStore(t)

		contacts, err := s.GetContacts(ctx)
		require.NoError(t, err)
		assert.Equal(t, storage.Seed(), contacts)
	})

	t.Run("create assigns next id", func(t *testing.T) {
		s := newStore(t)

		created, err := s.CreateContact(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, int64(3), created.ID)
		assert.Equal(t, alice.Email, created.Email)

		got, err := s.GetContactByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)

		contacts, err := s.GetContacts(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 3)
		assert.Equal(t, created, contacts[2])
	})

	t.Run("create ignores caller id", func(t *testing.T) {
		s := newStore(t)

		c := alice
		c.ID = 1
		created, err := s.CreateContact(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, int64(3), created.ID)
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		s := newStore(t)

		first, err := s.CreateContact(ctx, alice)
		require.NoError(t, err)
		require.NoError(t, s.DeleteContactByID(ctx, first.ID))

		second, err := s.CreateContact(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, first.ID+1, second.ID)
	})

	t.Run("get missing", func(t *testing.T) {
		s := newStore(t)

		_, err := s.GetContactByID(ctx, 9999)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("update replaces fields but not id", func(t *testing.T) {
		s := newStore(t)

		c := alice
		c.ID = 42
		updated, err := s.UpdateContactByID(ctx, 1, c)
		require.NoError(t, err)
		assert.Equal(t, int64(1), updated.ID)
		assert.Equal(t, "Alice", updated.FirstName)

		got, err := s.GetContactByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, updated, got)

		contacts, err := s.GetContacts(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, updated, contacts[0], "update keeps position")
	})

	t.Run("update missing", func(t *testing.T) {
		s := newStore(t)

		_, err := s.UpdateContactByID(ctx, 9999, alice)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete removes exactly one", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.DeleteContactByID(ctx, 1))

		contacts, err := s.GetContacts(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, int64(2), contacts[0].ID)

		assert.ErrorIs(t, s.DeleteContactByID(ctx, 1), storage.ErrNotFound)
	})

	t.Run("empty store lists as empty slice", func(t *testing.T) {
		s := newStore(t)

		for _, c := range storage.Seed() {
			require.NoError(t, s.DeleteContactByID(ctx, c.ID))
		}

		contacts, err := s.GetContacts(ctx)
		require.NoError(t, err)
		assert.NotNil(t, contacts)
		assert.Empty(t, contacts)
	})
}
