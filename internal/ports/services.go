package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoService defines the service port for todo use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every operation runs in one storage transaction.
type TodoService interface {
	// List returns todos matching filter, newest first. A zero-value filter
	// lists everything.
	List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// Get returns a single todo by ID.
	// Returns a *domain.NotFoundError if the todo does not exist.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Create persists a new, incomplete todo and returns it with the
	// store-assigned ID and timestamps.
	Create(ctx context.Context, title string, description *string) (*todo.Todo, error)

	// Update applies the fields present in patch, refreshes UpdatedAt even
	// when nothing changed, and returns the row as re-read from the store.
	// Returns a *domain.NotFoundError if the todo does not exist.
	Update(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// Toggle flips the completion flag and returns the re-read row.
	// Returns a *domain.NotFoundError if the todo does not exist.
	Toggle(ctx context.Context, id int64) (*todo.Todo, error)

	// Delete removes a todo.
	// Returns a *domain.NotFoundError if the todo does not exist.
	Delete(ctx context.Context, id int64) error

	// DeleteCompleted removes every completed todo and returns how many
	// were removed.
	DeleteCompleted(ctx context.Context) (int64, error)

	// DeleteAll removes every todo and returns the row count observed
	// before deletion.
	DeleteAll(ctx context.Context) (int64, error)

	// Stats returns total, completed and pending counts.
	Stats(ctx context.Context) (*todo.Stats, error)
}
