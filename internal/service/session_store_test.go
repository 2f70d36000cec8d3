package service

import (
	"context"
	"sync"
	"testing"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore_DefaultSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	conv, err := store.Get(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 0, conv.Len())

	require.NoError(t, store.Save(ctx, "", domain.Conversation{}.Append("q", "a")))

	conv, err = store.Get(ctx, DefaultSessionID)
	require.NoError(t, err)
	assert.Equal(t, []string{"q", "a"}, conv.Turns)

	// Deleting the default session resets it.
	require.NoError(t, store.Delete(ctx, DefaultSessionID))
	conv, err = store.Get(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 0, conv.Len())
	assert.Equal(t, 1, store.Len())
}

func TestMemorySessionStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	id, err := store.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NotEqual(t, DefaultSessionID, id)
	assert.Equal(t, 2, store.Len())

	require.NoError(t, store.Save(ctx, id, domain.Conversation{}.Append("hello")))
	conv, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, conv.Turns)

	// Other sessions are untouched.
	def, err := store.Get(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 0, def.Len())

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Save(ctx, id, domain.Conversation{}), ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(ctx, id), ErrSessionNotFound)
}

func TestMemorySessionStore_UnknownSession(t *testing.T) {
	store := NewMemorySessionStore()
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := store.Create(ctx)
			assert.NoError(t, err)
			assert.NoError(t, store.Save(ctx, id, domain.Conversation{}.Append("turn")))
			conv, err := store.Get(ctx, "")
			assert.NoError(t, err)
			assert.NoError(t, store.Save(ctx, "", conv.Append("turn")))
		}()
	}
	wg.Wait()

	assert.Equal(t, 21, store.Len())
	conv, err := store.Get(ctx, "")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, conv.Len(), 1)
}
