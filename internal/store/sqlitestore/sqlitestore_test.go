package sqlitestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/endurance/internal/store"
)

func TestBackend_PutGet(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b, err := Open(ctx, dir)
	require.NoError(t, err)

	_, err = b.Get(ctx, "k")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, b.Put(ctx, "k", []byte("one")))
	require.NoError(t, b.Put(ctx, "k", []byte("two")))
	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
	require.NoError(t, b.Close())

	// Survives reopen.
	b2, err := Open(ctx, dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b2.Close() })
	got, err = b2.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
}
