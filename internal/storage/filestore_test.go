package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStoreGetMissingKey(t *testing.T) {
	store := newTestStore(t)

	value, err := store.Get(context.Background(), "users")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestFileStoreSetThenGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users", []byte(`[{"id":"u1"}]`)))

	value, err := store.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"u1"}]`, string(value))
}

func TestFileStoreSetReplacesWholeValue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "teacher_courses", []byte(`["a","b"]`)))
	require.NoError(t, store.Set(ctx, "teacher_courses", []byte(`["c"]`)))

	value, err := store.Get(ctx, "teacher_courses")
	require.NoError(t, err)
	assert.Equal(t, `["c"]`, string(value))
}

func TestFileStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "session_u1", []byte(`{}`)))
	require.NoError(t, store.Delete(ctx, "session_u1"))

	value, err := store.Get(ctx, "session_u1")
	require.NoError(t, err)
	assert.Nil(t, value)

	// Deleting again is a no-op
	require.NoError(t, store.Delete(ctx, "session_u1"))
}

func TestFileStoreKeysWithSeparators(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	key := SessionKey("user-1")
	require.NoError(t, store.Set(ctx, key, []byte(`{"token":"t"}`)))

	value, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"token":"t"}`, string(value))

	other, err := store.Get(ctx, EnrollmentKey("user-1"))
	require.NoError(t, err)
	assert.Nil(t, other)
}
