package activities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-activities/src/models"
)

func TestNewStore_NormalizesRoster(t *testing.T) {
	store := NewStore(models.ActivityMap{
		"Art Club": {Description: "Painting", MaxParticipants: 10},
	})

	a, ok := store.Get("Art Club")
	require.True(t, ok)
	assert.NotNil(t, a.Participants)
	assert.Empty(t, a.Participants)

	_, ok = store.Get("Unknown")
	assert.False(t, ok)
}

func TestNewStore_NilMap(t *testing.T) {
	store := NewStore(nil)
	assert.Equal(t, 0, store.Len())
	assert.NotNil(t, store.List())
}

func TestStore_ListIsLive(t *testing.T) {
	store := NewStore(models.ActivityMap{
		"Chess Club": {Participants: []string{"a@mergington.edu"}},
	})
	live := store.List()

	err := store.Update("Chess Club", func(a *models.Activity) error {
		a.Participants = append(a.Participants, "b@mergington.edu")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a@mergington.edu", "b@mergington.edu"}, live["Chess Club"].Participants)
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	store := NewStore(models.ActivityMap{
		"Chess Club": {Participants: []string{"a@mergington.edu"}},
	})
	snap := store.Snapshot()

	require.NoError(t, store.Update("Chess Club", func(a *models.Activity) error {
		a.Participants = append(a.Participants, "b@mergington.edu")
		return nil
	}))
	assert.Equal(t, []string{"a@mergington.edu"}, snap["Chess Club"].Participants)
}

func TestStore_UpdateUnknownActivity(t *testing.T) {
	store := NewStore(models.ActivityMap{})
	called := false
	err := store.Update("Nope", func(a *models.Activity) error {
		called = true
		return nil
	})
	assert.True(t, errors.Is(err, ErrActivityNotFound))
	assert.False(t, called)
}
