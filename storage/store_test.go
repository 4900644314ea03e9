package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreIsWriteOnce(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "u1/certificate-1.html", []byte("first"), "text/html"))

	err := store.Put(ctx, "u1/certificate-1.html", []byte("second"), "text/html")
	assert.ErrorIs(t, err, ErrObjectExists)

	body, ok := store.Get("u1/certificate-1.html")
	require.True(t, ok)
	assert.Equal(t, "first", string(body))
}

func TestMemoryStoreListFiltersByPrefix(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "u1/a.html", []byte("a"), "text/html"))
	require.NoError(t, store.Put(ctx, "u1/b.html", []byte("b"), "text/html"))
	require.NoError(t, store.Put(ctx, "u2/c.html", []byte("c"), "text/html"))

	objects, err := store.List(ctx, "u1/")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "u1/a.html", objects[0].Key)
	assert.Equal(t, "u1/b.html", objects[1].Key)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "u1/a.html", []byte("a"), "text/html"))
	require.NoError(t, store.Delete(ctx, "u1/a.html"))

	_, ok := store.Get("u1/a.html")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}
