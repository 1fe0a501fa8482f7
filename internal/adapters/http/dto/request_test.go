package dto_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain"
)

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError carries want for field.
func requireValidationField(t *testing.T, err error, field, want string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	got, ok := verr.Fields[field]
	if !ok {
		t.Fatalf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
	if got != want {
		t.Errorf("Fields[%q] = %q, want %q", field, got, want)
	}
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		wantField string
		wantMsg   string
	}{
		{
			name: "title only passes",
			req:  dto.CreateTodoRequest{Title: "Buy groceries"},
		},
		{
			name: "title and description pass",
			req:  dto.CreateTodoRequest{Title: "Buy groceries", Description: stringPtr("Milk, eggs, bread")},
		},
		{
			name: "title at limit passes",
			req:  dto.CreateTodoRequest{Title: strings.Repeat("a", 255)},
		},
		{
			name: "multibyte title at limit passes",
			req:  dto.CreateTodoRequest{Title: strings.Repeat("买", 255)},
		},
		{
			name: "description at limit passes",
			req:  dto.CreateTodoRequest{Title: "t", Description: stringPtr(strings.Repeat("d", 1000))},
		},
		{
			name:      "empty title fails",
			req:       dto.CreateTodoRequest{Title: ""},
			wantField: "title",
			wantMsg:   "Title is required",
		},
		{
			name:      "whitespace-only title fails",
			req:       dto.CreateTodoRequest{Title: " \t "},
			wantField: "title",
			wantMsg:   "Title is required",
		},
		{
			name:      "title over limit fails",
			req:       dto.CreateTodoRequest{Title: strings.Repeat("a", 256)},
			wantField: "title",
			wantMsg:   "Title must not exceed 255 characters",
		},
		{
			name:      "description over limit fails",
			req:       dto.CreateTodoRequest{Title: "t", Description: stringPtr(strings.Repeat("d", 1001))},
			wantField: "description",
			wantMsg:   "Description must not exceed 1000 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField, tt.wantMsg)
		})
	}
}

func TestCreateTodoRequest_Validate_ReportsAllFields(t *testing.T) {
	t.Parallel()

	req := dto.CreateTodoRequest{Title: "", Description: stringPtr(strings.Repeat("d", 1001))}
	err := req.Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("len(Fields) = %d, want 2: %v", len(verr.Fields), verr.Fields)
	}
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		wantField string
		wantMsg   string
	}{
		{
			name: "empty request passes",
			req:  dto.UpdateTodoRequest{},
		},
		{
			name: "completed only passes",
			req:  dto.UpdateTodoRequest{Completed: boolPtr(true)},
		},
		{
			name: "empty description passes",
			req:  dto.UpdateTodoRequest{Description: stringPtr("")},
		},
		{
			name:      "empty title fails",
			req:       dto.UpdateTodoRequest{Title: stringPtr("")},
			wantField: "title",
			wantMsg:   "Title length must be between 1 and 255 characters",
		},
		{
			name:      "whitespace-only title fails",
			req:       dto.UpdateTodoRequest{Title: stringPtr(" \t ")},
			wantField: "title",
			wantMsg:   "Title must not be blank",
		},
		{
			name:      "title over limit fails",
			req:       dto.UpdateTodoRequest{Title: stringPtr(strings.Repeat("a", 256))},
			wantField: "title",
			wantMsg:   "Title length must be between 1 and 255 characters",
		},
		{
			name:      "description over limit fails",
			req:       dto.UpdateTodoRequest{Description: stringPtr(strings.Repeat("d", 1001))},
			wantField: "description",
			wantMsg:   "Description must not exceed 1000 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField, tt.wantMsg)
		})
	}
}

func TestUpdateTodoRequest_ToPatch(t *testing.T) {
	t.Parallel()

	req := dto.UpdateTodoRequest{Title: stringPtr("new"), Completed: boolPtr(false)}
	patch := req.ToPatch()

	if patch.Title == nil || *patch.Title != "new" {
		t.Errorf("Title = %v, want %q", patch.Title, "new")
	}
	if patch.Description != nil {
		t.Errorf("Description = %v, want nil", patch.Description)
	}
	if patch.Completed == nil || *patch.Completed {
		t.Errorf("Completed = %v, want false", patch.Completed)
	}
	empty := dto.UpdateTodoRequest{}
	if !empty.ToPatch().IsEmpty() {
		t.Error("empty request should produce an empty patch")
	}
}
