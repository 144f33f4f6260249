// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account of the task keeper together with the tasks it
// owns. It is the value stored per username inside a [Snapshot].
//
// Sensitive fields must never be exposed outside trusted boundaries: the
// record itself is only serialized into the persisted snapshot, never into an
// HTTP response.
type User struct {
	// Username is the unique account key. It is the key of the snapshot map
	// and is therefore not repeated inside the serialized record.
	Username string `json:"-"`

	// PasswordHash is the bcrypt hash of the user's password.
	// The JSON name matches the layout of existing users.json files.
	PasswordHash string `json:"password"`

	// Tasks is the ordered list of tasks owned by the user, in insertion order.
	Tasks []Task `json:"tasks"`

	// NextTaskID is the identifier that will be assigned to the next created
	// task. It only ever grows, so identifiers are never reused after deletes.
	NextTaskID int64 `json:"next_task_id,omitempty"`
}

// Clone returns a deep copy of u. The Tasks slice of the copy does not share
// its backing array with u.
func (u User) Clone() User {
	clone := u
	clone.Tasks = make([]Task, len(u.Tasks))
	copy(clone.Tasks, u.Tasks)
	return clone
}

// Credentials is the request body of the register and login operations.
type Credentials struct {
	// Username is the account name.
	Username string `json:"username"`

	// Password is the plain-text password. It is hashed before storage and
	// never logged.
	Password string `json:"password"`
}
