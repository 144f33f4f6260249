// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Snapshot is the complete persisted state of the credential store: every
// user record keyed by username. It is written wholesale on every mutation.
type Snapshot map[string]User

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	clone := make(Snapshot, len(s))
	for username, user := range s {
		clone[username] = user.Clone()
	}
	return clone
}
