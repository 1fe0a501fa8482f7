package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// TodoHandler serves the /api/v1/todos endpoints. Every response is wrapped in
// a dto.Envelope; failures go through dto.WriteError.
type TodoHandler struct {
	svc ports.TodoService
}

// NewTodoHandler creates a new TodoHandler backed by svc.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List handles GET /api/v1/todos[?completed=bool][&search=text].
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTodoFilter(r)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	todos, err := h.svc.List(r.Context(), filter)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteEnvelope(w, r, http.StatusOK, dto.MsgSuccess, dto.ToTodoListResponse(todos))
}

// Get handles GET /api/v1/todos/{id}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteEnvelope(w, r, http.StatusOK, dto.MsgSuccess, dto.ToTodoResponse(t))
}

// Create handles POST /api/v1/todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), req.Title, req.Description)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteEnvelope(w, r, http.StatusCreated, dto.MsgCreated, dto.ToTodoResponse(created))
}

// Update handles PUT /api/v1/todos/{id}. Absent fields are left unchanged.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteEnvelope(w, r, http.StatusOK, dto.MsgUpdated, dto.ToTodoResponse(updated))
}

// Toggle handles PATCH /api/v1/todos/{id}/toggle.
func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	toggled, err := h.svc.Toggle(r.Context(), id)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteEnvelope(w, r, http.StatusOK, dto.MsgToggled, dto.ToTodoResponse(toggled))
}

// Delete handles DELETE /api/v1/todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteEnvelope(w, r, http.StatusOK, dto.MsgDeleted, nil)
}

// DeleteCompleted handles DELETE /api/v1/todos/completed.
func (h *TodoHandler) DeleteCompleted(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DeleteCompleted(r.Context())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteEnvelope(w, r, http.StatusOK, dto.MsgCompletedDeleted, dto.DeleteResponse{DeletedCount: n})
}

// DeleteAll handles DELETE /api/v1/todos/all.
func (h *TodoHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DeleteAll(r.Context())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteEnvelope(w, r, http.StatusOK, dto.MsgAllDeleted, dto.DeleteResponse{DeletedCount: n})
}

// Stats handles GET /api/v1/todos/stats.
func (h *TodoHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteEnvelope(w, r, http.StatusOK, dto.MsgSuccess, dto.ToStatsResponse(stats))
}
