package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/contacts-api/internal/storage"
	"github.com/aanand-mishra/contacts-api/internal/storage/storagetest"
	"github.com/aanand-mishra/contacts-api/internal/types"
)

func TestMemory(t *testing.T) {
	storagetest.Run(t, func(*testing.T) storage.Storage { return NewSeeded() })
}

func TestNew_CounterFollowsHighestID(t *testing.T) {
	m := New(types.Contact{ID: 7}, types.Contact{ID: 3})

	created, err := m.CreateContact(context.Background(), types.Contact{FirstName: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)
}

func TestGetContacts_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewSeeded()

	contacts, err := m.GetContacts(ctx)
	require.NoError(t, err)
	contacts[0].FirstName = "changed"

	got, err := m.GetContactByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)
}
