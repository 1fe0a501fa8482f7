package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/mocks"
)

const testUpdatedValue = "Updated"

func newTodoHandler(t *testing.T) (*handlers.TodoHandler, *mocks.MockTodoService) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	return handlers.NewTodoHandler(svc), svc
}

func idRequest(method, target, id string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	return withChiParams(req, map[string]string{"id": id})
}

// --- List ---

func TestList_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().List(mock.Anything, todo.Filter{}).Return([]todo.Todo{validTodo()}, nil)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil))

	requireStatus(t, rec, http.StatusOK)
	var items []dto.TodoResponse
	env := decodeEnvelope(t, rec, &items)
	if env.Code != http.StatusOK || env.Message != "success" {
		t.Errorf("envelope = {%d %q}, want {200 \"success\"}", env.Code, env.Message)
	}
	if len(items) != 1 {
		t.Fatalf("len(data) = %d, want 1", len(items))
	}
	if items[0].CreatedAt != "2026-02-12 15:04:05" {
		t.Errorf("createdAt = %q, want %q", items[0].CreatedAt, "2026-02-12 15:04:05")
	}
}

func TestList_EmptyIsArray(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().List(mock.Anything, todo.Filter{}).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil))

	requireStatus(t, rec, http.StatusOK)
	env := decodeEnvelope(t, rec, nil)
	if string(env.Data) != "[]" {
		t.Errorf("data = %s, want []", env.Data)
	}
}

func TestList_Filters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  todo.Filter
	}{
		{"completed true", "?completed=true", todo.Filter{Completed: boolPtr(true)}},
		{"completed false", "?completed=false", todo.Filter{Completed: boolPtr(false)}},
		{"search", "?search=milk", todo.Filter{TitleContains: "milk"}},
		{"search and completed", "?search=milk&completed=true", todo.Filter{Completed: boolPtr(true), TitleContains: "milk"}},
		{"empty values ignored", "?search=&completed=", todo.Filter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTodoHandler(t)
			svc.EXPECT().List(mock.Anything, tt.want).Return([]todo.Todo{}, nil)

			rec := httptest.NewRecorder()
			h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todos"+tt.query, nil))

			requireStatus(t, rec, http.StatusOK)
		})
	}
}

func TestList_InvalidCompleted(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todos?completed=maybe", nil))

	requireStatus(t, rec, http.StatusBadRequest)
	env := decodeEnvelope(t, rec, nil)
	if env.Message != "Invalid value for parameter 'completed': maybe" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestList_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().List(mock.Anything, todo.Filter{}).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil))

	requireStatus(t, rec, http.StatusInternalServerError)
	env := decodeEnvelope(t, rec, nil)
	if env.Message != "Internal server error" {
		t.Errorf("message = %q, want %q", env.Message, "Internal server error")
	}
}

// --- Get ---

func TestGet_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	td := validTodo()
	svc.EXPECT().Get(mock.Anything, int64(1)).Return(&td, nil)

	rec := httptest.NewRecorder()
	h.Get(rec, idRequest(http.MethodGet, "/api/v1/todos/1", "1", nil))

	requireStatus(t, rec, http.StatusOK)
	var resp dto.TodoResponse
	decodeEnvelope(t, rec, &resp)
	if resp.ID != 1 {
		t.Errorf("ID = %d, want 1", resp.ID)
	}
}

func TestGet_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	h.Get(rec, idRequest(http.MethodGet, "/api/v1/todos/abc", "abc", nil))

	requireStatus(t, rec, http.StatusBadRequest)
	env := decodeEnvelope(t, rec, nil)
	if env.Message != "Invalid value for parameter 'id': abc" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Get(mock.Anything, int64(999)).Return(nil, &domain.NotFoundError{ID: 999})

	rec := httptest.NewRecorder()
	h.Get(rec, idRequest(http.MethodGet, "/api/v1/todos/999", "999", nil))

	requireStatus(t, rec, http.StatusNotFound)
	env := decodeEnvelope(t, rec, nil)
	if env.Code != http.StatusNotFound || env.Message != "Todo not found with id: 999" {
		t.Errorf("envelope = {%d %q}", env.Code, env.Message)
	}
}

// --- Create ---

func TestCreate_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	created := validTodo()
	svc.EXPECT().Create(mock.Anything, "Buy groceries", strPtr("Milk, eggs, bread")).Return(&created, nil)

	body := jsonBody(t, dto.CreateTodoRequest{Title: "Buy groceries", Description: strPtr("Milk, eggs, bread")})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", body)
	req.Header.Set("Content-Type", "application/json")
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	var resp dto.TodoResponse
	env := decodeEnvelope(t, rec, &resp)
	if env.Code != http.StatusCreated || env.Message != "Todo created successfully" {
		t.Errorf("envelope = {%d %q}", env.Code, env.Message)
	}
	if resp.Title != "Buy groceries" || resp.Completed {
		t.Errorf("data = %+v", resp)
	}
}

func TestCreate_WithoutDescription(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	created := validTodo()
	created.Description = nil
	svc.EXPECT().Create(mock.Anything, "Buy groceries", (*string)(nil)).Return(&created, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", bytes.NewBufferString(`{"title":"Buy groceries"}`))
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCreate_MalformedJSON(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	env := decodeEnvelope(t, rec, nil)
	if env.Message != "Malformed JSON request body" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestCreate_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	body := jsonBody(t, dto.CreateTodoRequest{Title: "  "})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", body)
	req.Header.Set("Content-Type", "application/json")
	h.Create(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ValidationErrorResponse](t, rec)
	if resp.Message != "Validation failed" {
		t.Errorf("message = %q, want %q", resp.Message, "Validation failed")
	}
	if resp.Errors["title"] != "Title is required" {
		t.Errorf("errors = %v", resp.Errors)
	}
}

// --- Update ---

func TestUpdate_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	updated := validTodo()
	updated.Title = testUpdatedValue
	updated.Completed = true
	svc.EXPECT().Update(mock.Anything, int64(1), todo.Patch{Title: strPtr(testUpdatedValue), Completed: boolPtr(true)}).
		Return(&updated, nil)

	body := jsonBody(t, dto.UpdateTodoRequest{Title: strPtr(testUpdatedValue), Completed: boolPtr(true)})
	rec := httptest.NewRecorder()
	h.Update(rec, idRequest(http.MethodPut, "/api/v1/todos/1", "1", body))

	requireStatus(t, rec, http.StatusOK)
	var resp dto.TodoResponse
	env := decodeEnvelope(t, rec, &resp)
	if env.Message != "Todo updated successfully" {
		t.Errorf("message = %q", env.Message)
	}
	if resp.Title != testUpdatedValue || !resp.Completed {
		t.Errorf("data = %+v", resp)
	}
}

func TestUpdate_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	h.Update(rec, idRequest(http.MethodPut, "/api/v1/todos/x", "x", jsonBody(t, dto.UpdateTodoRequest{})))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdate_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	body := jsonBody(t, dto.UpdateTodoRequest{Title: strPtr("")})
	rec := httptest.NewRecorder()
	h.Update(rec, idRequest(http.MethodPut, "/api/v1/todos/1", "1", body))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ValidationErrorResponse](t, rec)
	if _, ok := resp.Errors["title"]; !ok {
		t.Errorf("errors = %v, want title", resp.Errors)
	}
}

func TestUpdate_BlankTitleRejectedBeforeService(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	body := jsonBody(t, dto.UpdateTodoRequest{Title: strPtr("   ")})
	rec := httptest.NewRecorder()
	h.Update(rec, idRequest(http.MethodPut, "/api/v1/todos/1", "1", body))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ValidationErrorResponse](t, rec)
	if resp.Errors["title"] != "Title must not be blank" {
		t.Errorf("errors = %v", resp.Errors)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Update(mock.Anything, int64(5), todo.Patch{}).Return(nil, &domain.NotFoundError{ID: 5})

	rec := httptest.NewRecorder()
	h.Update(rec, idRequest(http.MethodPut, "/api/v1/todos/5", "5", bytes.NewBufferString("{}")))

	requireStatus(t, rec, http.StatusNotFound)
}

// --- Toggle ---

func TestToggle_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	toggled := validTodo()
	toggled.Completed = true
	svc.EXPECT().Toggle(mock.Anything, int64(1)).Return(&toggled, nil)

	rec := httptest.NewRecorder()
	h.Toggle(rec, idRequest(http.MethodPatch, "/api/v1/todos/1/toggle", "1", nil))

	requireStatus(t, rec, http.StatusOK)
	var resp dto.TodoResponse
	env := decodeEnvelope(t, rec, &resp)
	if env.Message != "Todo status toggled successfully" {
		t.Errorf("message = %q", env.Message)
	}
	if !resp.Completed {
		t.Error("completed = false, want true")
	}
}

func TestToggle_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Toggle(mock.Anything, int64(2)).Return(nil, &domain.NotFoundError{ID: 2})

	rec := httptest.NewRecorder()
	h.Toggle(rec, idRequest(http.MethodPatch, "/api/v1/todos/2/toggle", "2", nil))

	requireStatus(t, rec, http.StatusNotFound)
}

// --- Delete ---

func TestDelete_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

	rec := httptest.NewRecorder()
	h.Delete(rec, idRequest(http.MethodDelete, "/api/v1/todos/1", "1", nil))

	requireStatus(t, rec, http.StatusOK)
	env := decodeEnvelope(t, rec, nil)
	if env.Message != "Todo deleted successfully" {
		t.Errorf("message = %q", env.Message)
	}
	if env.Data != nil {
		t.Errorf("data = %s, want absent", env.Data)
	}
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Delete(mock.Anything, int64(9)).Return(&domain.NotFoundError{ID: 9})

	rec := httptest.NewRecorder()
	h.Delete(rec, idRequest(http.MethodDelete, "/api/v1/todos/9", "9", nil))

	requireStatus(t, rec, http.StatusNotFound)
}

// --- Bulk deletes ---

func TestDeleteCompleted(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteCompleted(mock.Anything).Return(int64(3), nil)

	rec := httptest.NewRecorder()
	h.DeleteCompleted(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/todos/completed", nil))

	requireStatus(t, rec, http.StatusOK)
	var resp dto.DeleteResponse
	env := decodeEnvelope(t, rec, &resp)
	if env.Message != "Completed todos deleted successfully" {
		t.Errorf("message = %q", env.Message)
	}
	if resp.DeletedCount != 3 {
		t.Errorf("deletedCount = %d, want 3", resp.DeletedCount)
	}
}

func TestDeleteAll(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteAll(mock.Anything).Return(int64(0), nil)

	rec := httptest.NewRecorder()
	h.DeleteAll(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/todos/all", nil))

	requireStatus(t, rec, http.StatusOK)
	var resp dto.DeleteResponse
	env := decodeEnvelope(t, rec, &resp)
	if env.Message != "All todos deleted successfully" {
		t.Errorf("message = %q", env.Message)
	}
	if resp.DeletedCount != 0 {
		t.Errorf("deletedCount = %d, want 0", resp.DeletedCount)
	}
}

func TestDeleteAll_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteAll(mock.Anything).Return(int64(0), errors.New("disk full"))

	rec := httptest.NewRecorder()
	h.DeleteAll(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/todos/all", nil))

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- Stats ---

func TestStats(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().Stats(mock.Anything).Return(&todo.Stats{Total: 4, Completed: 1, Pending: 3}, nil)

	rec := httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todos/stats", nil))

	requireStatus(t, rec, http.StatusOK)
	var resp dto.StatsResponse
	env := decodeEnvelope(t, rec, &resp)
	if env.Message != "success" {
		t.Errorf("message = %q", env.Message)
	}
	if resp != (dto.StatsResponse{Total: 4, Completed: 1, Pending: 3}) {
		t.Errorf("data = %+v", resp)
	}
}
