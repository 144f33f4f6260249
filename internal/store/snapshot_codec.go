package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/models"
)

// decodeSnapshot parses a stored snapshot and restores the fields that are
// not serialized: the username of each record is taken from its map key,
// a nil task list becomes empty and the per-user id counter is raised above
// every existing task id. Snapshots written without next_task_id therefore
// keep working.
func decodeSnapshot(data []byte) (models.Snapshot, error) {
	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	if snapshot == nil {
		// literal "null"
		return nil, fmt.Errorf("%w: snapshot is not an object", ErrMalformedSnapshot)
	}

	for username, user := range snapshot {
		user.Username = username
		if user.Tasks == nil {
			user.Tasks = []models.Task{}
		}
		for _, task := range user.Tasks {
			if task.ID >= user.NextTaskID {
				user.NextTaskID = task.ID + 1
			}
		}
		if user.NextTaskID < 1 {
			user.NextTaskID = 1
		}
		snapshot[username] = user
	}

	return snapshot, nil
}

func encodeSnapshot(snapshot models.Snapshot) ([]byte, error) {
	if snapshot == nil {
		snapshot = models.Snapshot{}
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding snapshot: %w", err)
	}
	return data, nil
}
