package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	assert.Equal(t, 0, m.Count())

	id, state := m.Create()
	require.NotEmpty(t, id)
	assert.Equal(t, DefaultGenre, state.Genre)
	assert.Equal(t, 1, m.Count())

	got, err := m.Get(id)
	require.NoError(t, err)
	assert.Equal(t, state, got)

	require.NoError(t, m.Delete(id))
	assert.Equal(t, 0, m.Count())

	_, err = m.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.Delete(id), ErrNotFound)
}

func TestManagerDispatch(t *testing.T) {
	m := NewManager()
	id, _ := m.Create()

	updated, err := m.Dispatch(id,
		SettingsChanged{Genre: "rock"},
		TurnAppended{Role: RoleUser, Content: "hello"},
		TurnAppended{Role: RoleAssistant, Content: "hi"},
	)
	require.NoError(t, err)
	assert.Equal(t, "rock", updated.Genre)
	require.Len(t, updated.Conversation, 2)

	// Dispatched state is the stored state
	stored, err := m.Get(id)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)

	_, err = m.Dispatch("unknown", Reset{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerConcurrentSessions(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	ids := make([]string, 20)
	for i := range ids {
		ids[i], _ = m.Create()
	}

	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := m.Dispatch(id, TurnAppended{Role: RoleUser, Content: "x"})
				assert.NoError(t, err)
			}
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		state, err := m.Get(id)
		require.NoError(t, err)
		assert.Len(t, state.Conversation, 50)
	}
}
