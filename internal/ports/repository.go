package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoRepository defines the data access port for the todo table.
// Implemented by the storage adapters; called by the application layer.
// Storage faults are returned unmodified: implementations neither swallow
// nor retry them.
type TodoRepository interface {
	// InTx runs fn inside a single storage transaction. The repository passed
	// to fn is bound to that transaction. If fn returns an error the
	// transaction is rolled back and the error is returned as-is.
	InTx(ctx context.Context, fn func(ctx context.Context, tx TodoRepository) error) error

	// ListAll returns every todo, newest first.
	ListAll(ctx context.Context) ([]todo.Todo, error)

	// ListByCompleted returns todos whose completion flag equals completed,
	// newest first.
	ListByCompleted(ctx context.Context, completed bool) ([]todo.Todo, error)

	// FindByID returns the todo with the given ID, or nil if none exists.
	FindByID(ctx context.Context, id int64) (*todo.Todo, error)

	// ExistsByID reports whether a todo with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Save inserts t when t.ID is zero and updates it otherwise. The returned
	// todo carries the store-assigned ID and timestamps.
	Save(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// SaveAndReadBack persists t and re-reads the row, so the caller observes
	// store-assigned timestamps rather than in-memory values.
	SaveAndReadBack(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// DeleteByID removes one row. Deleting a missing row is not an error;
	// callers check existence first.
	DeleteByID(ctx context.Context, id int64) error

	// Count returns the number of rows.
	Count(ctx context.Context) (int64, error)

	// CountByCompleted returns the number of rows with the given flag.
	CountByCompleted(ctx context.Context, completed bool) (int64, error)

	// DeleteAllCompleted removes every completed row in one statement and
	// returns the number of rows removed.
	DeleteAllCompleted(ctx context.Context) (int64, error)

	// DeleteAll removes every row in one statement.
	DeleteAll(ctx context.Context) error

	// FindByTitleContains returns todos whose title contains substr,
	// newest first. When ignoreCase is true the match is case-insensitive.
	FindByTitleContains(ctx context.Context, substr string, ignoreCase bool) ([]todo.Todo, error)
}
