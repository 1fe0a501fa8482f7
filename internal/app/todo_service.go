// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of the TodoRepository port.
// Each use case runs inside one repository transaction; lifecycle events are
// published only after that transaction commits.
type TodoService struct {
	repo      ports.TodoRepository
	publisher ports.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewTodoService creates a TodoService. A nil publisher disables lifecycle
// events; a nil logger discards log output.
func NewTodoService(repo ports.TodoRepository, publisher ports.EventPublisher, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns todos matching filter, newest first.
func (s *TodoService) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	s.logger.DebugContext(ctx, "listing todos",
		slog.Any("completed", filter.Completed),
		slog.String("search", filter.TitleContains),
	)

	var todos []todo.Todo
	err := s.repo.InTx(ctx, func(ctx context.Context, tx ports.TodoRepository) error {
		var err error
		switch {
		case filter.TitleContains != "":
			todos, err = tx.FindByTitleContains(ctx, filter.TitleContains, true)
			todos = filterTodos(todos, filter)
		case filter.Completed == nil:
			todos, err = tx.ListAll(ctx)
		default:
			todos, err = tx.ListByCompleted(ctx, *filter.Completed)
		}
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return todos, nil
}

// Get returns a single todo by ID.
func (s *TodoService) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	s.logger.DebugContext(ctx, "fetching todo", slog.Int64("id", id))

	var found *todo.Todo
	err := s.repo.InTx(ctx, func(ctx context.Context, tx ports.TodoRepository) error {
		var err error
		found, err = findOrFail(ctx, tx, id)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "Get", id, err)
		return nil, err
	}

	return found, nil
}

// Create validates and persists a new incomplete todo.
func (s *TodoService) Create(ctx context.Context, title string, description *string) (*todo.Todo, error) {
	s.logger.DebugContext(ctx, "creating todo", slog.String("title", title))

	td := todo.New(title, description)
	if err := td.Validate(); err != nil {
		return nil, err
	}

	var created *todo.Todo
	err := s.repo.InTx(ctx, func(ctx context.Context, tx ports.TodoRepository) error {
		var err error
		created, err = tx.Save(ctx, td)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating todo: %w", err)
	}

	s.logger.InfoContext(ctx, "todo created", slog.Int64("id", created.ID))
	s.publish(ctx, ports.TodoEvent{Type: ports.EventTodoCreated, ID: created.ID, Completed: &created.Completed})
	return created, nil
}

// Update applies patch to an existing todo. UpdatedAt is refreshed even when
// the patch changes nothing, and the result is re-read from the store.
func (s *TodoService) Update(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error) {
	s.logger.DebugContext(ctx, "updating todo",
		slog.Int64("id", id),
		slog.Bool("timestamp_only", patch.IsEmpty()),
	)

	var updated *todo.Todo
	err := s.repo.InTx(ctx, func(ctx context.Context, tx ports.TodoRepository) error {
		current, err := findOrFail(ctx, tx, id)
		if err != nil {
			return err
		}

		current.Apply(patch)
		if err := current.Validate(); err != nil {
			return err
		}
		current.UpdatedAt = s.now()

		updated, err = tx.SaveAndReadBack(ctx, current)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "Update", id, err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo updated", slog.Int64("id", id))
	s.publish(ctx, ports.TodoEvent{Type: ports.EventTodoUpdated, ID: id, Completed: &updated.Completed})
	return updated, nil
}

// Toggle flips the completion flag of an existing todo.
func (s *TodoService) Toggle(ctx context.Context, id int64) (*todo.Todo, error) {
	s.logger.DebugContext(ctx, "toggling todo", slog.Int64("id", id))

	var toggled *todo.Todo
	err := s.repo.InTx(ctx, func(ctx context.Context, tx ports.TodoRepository) error {
		current, err := findOrFail(ctx, tx, id)
		if err != nil {
			return err
		}

		current.ToggleCompleted()
		current.UpdatedAt = s.now()

		toggled, err = tx.SaveAndReadBack(ctx, current)
		return err
	})
	if err != nil {
		s.logFailure(ctx, "Toggle", id, err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo toggled",
		slog.Int64("id", id),
		slog.Bool("completed", toggled.Completed),
	)
	s.publish(ctx, ports.TodoEvent{Type: ports.EventTodoToggled, ID: id, Completed: &toggled.Completed})
	return toggled, nil
}

// Delete removes an existing todo.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	s.logger.DebugContext(ctx, "deleting todo", slog.Int64("id", id))

	err := s.repo.InTx(ctx, func(ctx context.Context, tx ports.TodoRepository) error {
		exists, err := tx.ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("checking todo %d: %w", id, err)
		}
		if !exists {
			return &domain.NotFoundError{ID: id}
		}
		return tx.DeleteByID(ctx, id)
	})
	if err != nil {
		s.logFailure(ctx, "Delete", id, err)
		return err
	}

	s.logger.InfoContext(ctx, "todo deleted", slog.Int64("id", id))
	s.publish(ctx, ports.TodoEvent{Type: ports.EventTodoDeleted, ID: id})
	return nil
}

// DeleteCompleted removes all completed todos in one statement.
func (s *TodoService) DeleteCompleted(ctx context.Context) (int64, error) {
	var deleted int64
	err := s.repo.InTx(ctx, func(ctx context.Context, tx ports.TodoRepository) error {
		var err error
		deleted, err = tx.DeleteAllCompleted(ctx)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete completed todos",
			slog.String("operation", "DeleteCompleted"),
			slog.Any("error", err),
		)
		return 0, err
	}

	s.logger.InfoContext(ctx, "completed todos deleted", slog.Int64("count", deleted))
	s.publish(ctx, ports.TodoEvent{Type: ports.EventTodosCompletedPurged, Count: deleted})
	return deleted, nil
}

// DeleteAll removes every todo and reports the count observed beforehand.
func (s *TodoService) DeleteAll(ctx context.Context) (int64, error) {
	var total int64
	err := s.repo.InTx(ctx, func(ctx context.Context, tx ports.TodoRepository) error {
		var err error
		if total, err = tx.Count(ctx); err != nil {
			return err
		}
		return tx.DeleteAll(ctx)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete all todos",
			slog.String("operation", "DeleteAll"),
			slog.Any("error", err),
		)
		return 0, err
	}

	s.logger.InfoContext(ctx, "all todos deleted", slog.Int64("count", total))
	s.publish(ctx, ports.TodoEvent{Type: ports.EventTodosPurged, Count: total})
	return total, nil
}

// Stats returns aggregate counts read within one transaction.
func (s *TodoService) Stats(ctx context.Context) (*todo.Stats, error) {
	var stats todo.Stats
	err := s.repo.InTx(ctx, func(ctx context.Context, tx ports.TodoRepository) error {
		var err error
		if stats.Total, err = tx.Count(ctx); err != nil {
			return err
		}
		if stats.Completed, err = tx.CountByCompleted(ctx, true); err != nil {
			return err
		}
		stats.Pending, err = tx.CountByCompleted(ctx, false)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to compute todo stats",
			slog.String("operation", "Stats"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &stats, nil
}

// findOrFail loads a todo or returns a *domain.NotFoundError.
func findOrFail(ctx context.Context, repo ports.TodoRepository, id int64) (*todo.Todo, error) {
	found, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding todo %d: %w", id, err)
	}
	if found == nil {
		return nil, &domain.NotFoundError{ID: id}
	}
	return found, nil
}

// filterTodos keeps the todos that satisfy the completion part of filter.
func filterTodos(todos []todo.Todo, filter todo.Filter) []todo.Todo {
	if filter.Completed == nil {
		return todos
	}
	kept := make([]todo.Todo, 0, len(todos))
	for i := range todos {
		if filter.Matches(&todos[i]) {
			kept = append(kept, todos[i])
		}
	}
	return kept
}

// logFailure logs expected client errors at WARN and everything else at ERROR.
func (s *TodoService) logFailure(ctx context.Context, operation string, id int64, err error) {
	if isClientError(err) {
		s.logger.WarnContext(ctx, "todo request rejected",
			slog.String("operation", operation),
			slog.Int64("id", id),
			slog.String("reason", err.Error()),
		)
		return
	}
	s.logger.ErrorContext(ctx, "todo operation failed",
		slog.String("operation", operation),
		slog.Int64("id", id),
		slog.Any("error", err),
	)
}

// publish emits a lifecycle event after commit. Failures are logged only.
func (s *TodoService) publish(ctx context.Context, event ports.TodoEvent) {
	if s.publisher == nil {
		return
	}
	event.OccurredAt = s.now()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish todo event",
			slog.String("event", string(event.Type)),
			slog.Int64("id", event.ID),
			slog.Any("error", err),
		)
	}
}
