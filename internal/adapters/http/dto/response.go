// Package dto provides HTTP request/response data transfer objects, the
// response envelope, and the error translator for the inbound HTTP adapter.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// DateTimeLayout renders timestamps in local time without a zone.
const DateTimeLayout = "2006-01-02 15:04:05"

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   FormatDateTime(t.CreatedAt),
		UpdatedAt:   FormatDateTime(t.UpdatedAt),
	}
}

// ToTodoListResponse converts todos to response DTOs. The result is never nil
// so an empty list encodes as [].
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// FormatDateTime formats t with DateTimeLayout in local time. The zero time
// formats as "".
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(DateTimeLayout)
}

// StatsResponse carries aggregate counts.
type StatsResponse struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
}

// ToStatsResponse converts domain stats to a response DTO.
func ToStatsResponse(s *todo.Stats) StatsResponse {
	return StatsResponse{Total: s.Total, Completed: s.Completed, Pending: s.Pending}
}

// DeleteResponse reports how many rows a bulk delete removed.
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// HealthResponse is the unwrapped liveness body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ReadinessResponse reports the outcome of every registered health check.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
