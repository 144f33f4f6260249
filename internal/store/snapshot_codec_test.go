package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/models"
)

func TestDecodeSnapshot_LegacyLayout(t *testing.T) {
	// users.json as written by the original server: millisecond ids, no counter
	raw := `{
		"alice": {
			"password": "$2b$10$abcdefghijklmnopqrstuuJ0jOq3J0y8r2I9c0kKxvZ9m0pQm2p5e",
			"tasks": [
				{"id": 1700000000000, "name": "A", "description": "d", "status": "Pending"},
				{"id": 1700000000500, "name": "B", "description": "", "status": "Completed"}
			]
		},
		"bob": {"password": "hash", "tasks": []},
		"carol": {"password": "hash"}
	}`

	snapshot, err := decodeSnapshot([]byte(raw))
	require.NoError(t, err)
	require.Len(t, snapshot, 3)

	alice := snapshot["alice"]
	assert.Equal(t, "alice", alice.Username)
	assert.Len(t, alice.Tasks, 2)
	assert.Equal(t, int64(1700000000501), alice.NextTaskID)

	assert.Equal(t, int64(1), snapshot["bob"].NextTaskID)
	assert.NotNil(t, snapshot["carol"].Tasks)
	assert.Empty(t, snapshot["carol"].Tasks)
}

func TestDecodeSnapshot_KeepsHigherCounter(t *testing.T) {
	raw := `{"alice": {"password": "h", "tasks": [{"id": 2}], "next_task_id": 7}}`

	snapshot, err := decodeSnapshot([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, int64(7), snapshot["alice"].NextTaskID)
}

func TestDecodeSnapshot_Malformed(t *testing.T) {
	for _, raw := range []string{``, `{`, `[]`, `null`, `{"alice": "nope"}`} {
		t.Run(raw, func(t *testing.T) {
			_, err := decodeSnapshot([]byte(raw))
			assert.True(t, errors.Is(err, ErrMalformedSnapshot), "got %v", err)
		})
	}
}

func TestEncodeSnapshot_Layout(t *testing.T) {
	snapshot := models.Snapshot{
		"alice": {
			Username:     "alice",
			PasswordHash: "hash",
			Tasks:        []models.Task{{ID: 1, Name: "A", Status: models.StatusPending}},
			NextTaskID:   2,
		},
	}

	data, err := encodeSnapshot(snapshot)
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "hash", raw["alice"]["password"])
	assert.EqualValues(t, 2, raw["alice"]["next_task_id"])
	assert.NotContains(t, raw["alice"], "Username")

	empty, err := encodeSnapshot(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(empty))
}
