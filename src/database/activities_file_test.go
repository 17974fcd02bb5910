package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadActivitiesFile_Valid(t *testing.T) {
	path := writeFile(t, `{
		"Robotics": {
			"description": "Build robots",
			"schedule": "Wednesdays, 4:00 PM",
			"max_participants": 8,
			"participants": ["ada@mergington.edu"]
		},
		"Debate Team": {
			"description": "Argue well",
			"schedule": "Mondays",
			"max_participants": 15
		}
	}`)

	activities, err := ReadActivitiesFile(path)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, 8, activities["Robotics"].MaxParticipants)
	assert.Equal(t, []string{"ada@mergington.edu"}, activities["Robotics"].Participants)
	assert.Empty(t, activities["Debate Team"].Participants)
}

func TestReadActivitiesFile_Missing(t *testing.T) {
	_, err := ReadActivitiesFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, errors.Is(err, ErrSourceMissing))
}

func TestReadActivitiesFile_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{"Chess Club": `},
		{"array document", `[]`},
		{"null document", `null`},
		{"string capacity", `{"A": {"description": "d", "schedule": "s", "max_participants": "12"}}`},
		{"zero capacity", `{"A": {"description": "d", "schedule": "s", "max_participants": 0}}`},
		{"missing schedule", `{"A": {"description": "d", "max_participants": 3}}`},
		{"duplicate participants", `{"A": {"description": "d", "schedule": "s", "max_participants": 3, "participants": ["x@y.edu", "x@y.edu"]}}`},
		{"non string participant", `{"A": {"description": "d", "schedule": "s", "max_participants": 3, "participants": [1]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadActivitiesFile(writeFile(t, tt.content))
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrSourceMissing))
		})
	}
}

func TestLoadActivitiesFile_FallsBackToDefaults(t *testing.T) {
	log := zap.NewNop()

	t.Run("missing file", func(t *testing.T) {
		activities := LoadActivitiesFile(filepath.Join(t.TempDir(), "absent.json"), log)
		assert.Equal(t, DefaultActivities(), activities)
	})

	t.Run("malformed file", func(t *testing.T) {
		activities := LoadActivitiesFile(writeFile(t, `{oops`), log)
		assert.Equal(t, DefaultActivities(), activities)
	})

	t.Run("unreadable path", func(t *testing.T) {
		activities := LoadActivitiesFile(t.TempDir(), log)
		assert.Equal(t, DefaultActivities(), activities)
	})

	t.Run("valid file is used as is", func(t *testing.T) {
		activities := LoadActivitiesFile(writeFile(t, `{}`), log)
		assert.Empty(t, activities)
	})
}

func TestDefaultActivities(t *testing.T) {
	defaults := DefaultActivities()
	require.Len(t, defaults, 3)

	chess := defaults["Chess Club"]
	require.NotNil(t, chess)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
	assert.Equal(t, 20, defaults["Programming Class"].MaxParticipants)
	assert.Equal(t, 30, defaults["Gym Class"].MaxParticipants)

	// each call hands out an independent copy
	chess.Participants = append(chess.Participants, "x@mergington.edu")
	assert.Len(t, DefaultActivities()["Chess Club"].Participants, 2)
}
