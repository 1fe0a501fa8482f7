package gormstore

import (
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// todoRow is the persisted shape of a todo. Indexes match the query paths:
// completion filter, newest-first ordering and title search.
type todoRow struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;size:255;not null;index:idx_todos_title"`
	Description *string   `gorm:"column:description;type:text"`
	Completed   bool      `gorm:"column:completed;not null;default:false;index:idx_todos_completed"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime;index:idx_todos_created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName pins the table name regardless of GORM's naming strategy.
func (todoRow) TableName() string {
	return "todos"
}

func fromDomain(t *todo.Todo) *todoRow {
	return &todoRow{
		ID:          t.ID,
		Title:       t.Title,
		Description: copyString(t.Description),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *todoRow) toDomain() *todo.Todo {
	return &todo.Todo{
		ID:          r.ID,
		Title:       r.Title,
		Description: copyString(r.Description),
		Completed:   r.Completed,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toDomainList(rows []todoRow) []todo.Todo {
	todos := make([]todo.Todo, len(rows))
	for i := range rows {
		todos[i] = *rows[i].toDomain()
	}
	return todos
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
