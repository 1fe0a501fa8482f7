package ports

import (
	"context"
	"time"
)

// EventType names a todo lifecycle event.
type EventType string

// Lifecycle events published after a write commits.
const (
	EventTodoCreated          EventType = "created"
	EventTodoUpdated          EventType = "updated"
	EventTodoToggled          EventType = "toggled"
	EventTodoDeleted          EventType = "deleted"
	EventTodosCompletedPurged EventType = "completed_deleted"
	EventTodosPurged          EventType = "all_deleted"
)

// TodoEvent describes a committed change. ID is set for single-row events and
// Count for bulk deletes.
type TodoEvent struct {
	Type       EventType `json:"type"`
	ID         int64     `json:"id,omitempty"`
	Completed  *bool     `json:"completed,omitempty"`
	Count      int64     `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher broadcasts todo lifecycle events to interested consumers.
// Implementations must not block the caller for long; a failed publish is
// reported but never undoes the committed write.
type EventPublisher interface {
	Publish(ctx context.Context, event TodoEvent) error
}
