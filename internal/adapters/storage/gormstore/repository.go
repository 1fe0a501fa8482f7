package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that Repository implements ports.TodoRepository.
var _ ports.TodoRepository = (*Repository)(nil)

// newestFirst is the ordering applied to every list query.
const newestFirst = "created_at DESC, id DESC"

// likeEscaper escapes LIKE wildcards so search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository is a GORM-backed TodoRepository. A Repository returned by InTx is
// bound to that transaction.
type Repository struct {
	db *gorm.DB
}

// New wraps an open database handle.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// InTx runs fn in a database transaction. A nested call on a transaction-bound
// repository becomes a savepoint.
func (r *Repository) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.TodoRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &Repository{db: tx})
	})
}

// ListAll returns every todo, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]todo.Todo, error) {
	var rows []todoRow
	if err := r.db.WithContext(ctx).Order(newestFirst).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	return toDomainList(rows), nil
}

// ListByCompleted returns the todos whose completed flag matches, newest first.
func (r *Repository) ListByCompleted(ctx context.Context, completed bool) ([]todo.Todo, error) {
	var rows []todoRow
	err := r.db.WithContext(ctx).
		Where("completed = ?", completed).
		Order(newestFirst).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing todos by completed=%t: %w", completed, err)
	}
	return toDomainList(rows), nil
}

// FindByID returns the todo with the given id, or nil without error when no
// row matches.
func (r *Repository) FindByID(ctx context.Context, id int64) (*todo.Todo, error) {
	var row todoRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding todo %d: %w", id, err)
	}
	return row.toDomain(), nil
}

// ExistsByID reports whether a row with the given id exists.
func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&todoRow{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("checking todo %d: %w", id, err)
	}
	return n > 0, nil
}

// Save inserts when t.ID is zero. Otherwise it rewrites every column except
// created_at, and GORM refreshes updated_at.
func (r *Repository) Save(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	row := fromDomain(t)
	db := r.db.WithContext(ctx)

	if row.ID == 0 {
		if err := db.Create(row).Error; err != nil {
			return nil, fmt.Errorf("inserting todo: %w", err)
		}
		return row.toDomain(), nil
	}

	if err := db.Omit("created_at").Save(row).Error; err != nil {
		return nil, fmt.Errorf("updating todo %d: %w", row.ID, err)
	}
	return row.toDomain(), nil
}

// SaveAndReadBack saves t and returns the row as re-read from the database,
// so the result carries the timestamps the store assigned.
func (r *Repository) SaveAndReadBack(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	saved, err := r.Save(ctx, t)
	if err != nil {
		return nil, err
	}
	reread, err := r.FindByID(ctx, saved.ID)
	if err != nil {
		return nil, err
	}
	if reread == nil {
		return nil, fmt.Errorf("todo %d vanished after save", saved.ID)
	}
	return reread, nil
}

// DeleteByID removes the row with the given id. Deleting a missing id is not
// an error.
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&todoRow{}, id).Error; err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, err)
	}
	return nil
}

// Count returns the total number of todos.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&todoRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting todos: %w", err)
	}
	return n, nil
}

// CountByCompleted returns the number of todos with the given completed flag.
func (r *Repository) CountByCompleted(ctx context.Context, completed bool) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&todoRow{}).Where("completed = ?", completed).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("counting todos by completed=%t: %w", completed, err)
	}
	return n, nil
}

// DeleteAllCompleted removes every completed todo and returns how many rows
// were deleted.
func (r *Repository) DeleteAllCompleted(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("completed = ?", true).Delete(&todoRow{})
	if res.Error != nil {
		return 0, fmt.Errorf("deleting completed todos: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteAll removes every todo.
func (r *Repository) DeleteAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&todoRow{}).Error
	if err != nil {
		return fmt.Errorf("deleting all todos: %w", err)
	}
	return nil
}

// FindByTitleContains matches substr anywhere in the title. LIKE wildcards in
// substr are matched literally.
func (r *Repository) FindByTitleContains(ctx context.Context, substr string, ignoreCase bool) ([]todo.Todo, error) {
	db := r.db.WithContext(ctx)
	if ignoreCase {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(substr)) + "%"
		db = db.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern)
	} else {
		db = db.Where(r.positionExpr()+" > 0", substr)
	}

	var rows []todoRow
	if err := db.Order(newestFirst).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("searching todos by title: %w", err)
	}
	return toDomainList(rows), nil
}

// positionExpr is a case-sensitive substring test; LIKE folds case on SQLite.
func (r *Repository) positionExpr() string {
	if r.db.Dialector.Name() == DriverPostgres {
		return "STRPOS(title, ?)"
	}
	return "INSTR(title, ?)"
}

// HealthCheck pings the database.
func (r *Repository) HealthCheck(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("accessing connection pool: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Name identifies the database in health reports.
func (r *Repository) Name() string {
	return "database"
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
