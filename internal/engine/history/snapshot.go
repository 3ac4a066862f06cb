package history

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable capture of document text.
type Snapshot struct {
	id        uuid.UUID
	state     string
	timestamp time.Time
}

// NewSnapshot captures state at the given time.
func NewSnapshot(state string, at time.Time) *Snapshot {
	return &Snapshot{
		id:        uuid.New(),
		state:     state,
		timestamp: at,
	}
}

// State returns the saved document text.
func (s *Snapshot) State() string {
	return s.state
}

// ID returns the snapshot identifier.
func (s *Snapshot) ID() uuid.UUID {
	return s.id
}

// Timestamp returns when the snapshot was captured.
func (s *Snapshot) Timestamp() time.Time {
	return s.timestamp
}

// Info returns a read-only description of the snapshot.
func (s *Snapshot) Info() SnapshotInfo {
	return SnapshotInfo{
		ID:        s.id,
		Timestamp: s.timestamp,
		Size:      len(s.state),
	}
}

// SnapshotInfo provides read-only info about a history entry.
// Used for displaying undo/redo history to users.
type SnapshotInfo struct {
	ID        uuid.UUID // Unique entry identifier
	Timestamp time.Time // When the state was recorded
	Size      int       // Length of the saved text in bytes
}
