package todo

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
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
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestNew_StartsIncomplete(t *testing.T) {
	t.Parallel()

	td := New("Buy milk", nil)
	if td.Completed {
		t.Error("New().Completed = true, want false")
	}
	if td.ID != 0 {
		t.Errorf("New().ID = %d, want 0 before persistence", td.ID)
	}
	if td.Description != nil {
		t.Errorf("New().Description = %v, want nil", td.Description)
	}
}

func TestTodo_ToggleCompleted(t *testing.T) {
	t.Parallel()

	td := New("Buy milk", nil)
	td.ToggleCompleted()
	if !td.Completed {
		t.Fatal("after first toggle Completed = false, want true")
	}
	td.ToggleCompleted()
	if td.Completed {
		t.Fatal("after second toggle Completed = true, want false")
	}
}

func TestTodo_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		patch    Patch
		wantT    string
		wantDesc *string
		wantDone bool
	}{
		{
			name:     "empty patch keeps everything",
			patch:    Patch{},
			wantT:    "Original",
			wantDesc: stringPtr("original description"),
			wantDone: false,
		},
		{
			name:     "title only",
			patch:    Patch{Title: stringPtr("Renamed")},
			wantT:    "Renamed",
			wantDesc: stringPtr("original description"),
			wantDone: false,
		},
		{
			name:     "empty description is stored, not treated as absent",
			patch:    Patch{Description: stringPtr("")},
			wantT:    "Original",
			wantDesc: stringPtr(""),
			wantDone: false,
		},
		{
			name:     "completed only",
			patch:    Patch{Completed: boolPtr(true)},
			wantT:    "Original",
			wantDesc: stringPtr("original description"),
			wantDone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			td := New("Original", stringPtr("original description"))
			td.Apply(tt.patch)

			if td.Title != tt.wantT {
				t.Errorf("Title = %q, want %q", td.Title, tt.wantT)
			}
			if *td.Description != *tt.wantDesc {
				t.Errorf("Description = %q, want %q", *td.Description, *tt.wantDesc)
			}
			if td.Completed != tt.wantDone {
				t.Errorf("Completed = %v, want %v", td.Completed, tt.wantDone)
			}
		})
	}
}

func TestPatch_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(Patch{}).IsEmpty() {
		t.Error("Patch{}.IsEmpty() = false, want true")
	}
	if (Patch{Completed: boolPtr(false)}).IsEmpty() {
		t.Error("Patch{Completed}.IsEmpty() = true, want false")
	}
}

func TestTodo_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		todo      *Todo
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid todo passes",
			todo:    New("Buy groceries", stringPtr("Milk, eggs, bread")),
			wantErr: false,
		},
		{
			name:    "nil description passes",
			todo:    New("Buy groceries", nil),
			wantErr: false,
		},
		{
			name:      "empty title fails",
			todo:      New("", nil),
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "whitespace-only title fails",
			todo:      New(" \t ", nil),
			wantErr:   true,
			wantField: "title",
		},
		{
			name:    "title at 255 characters passes",
			todo:    New(strings.Repeat("a", MaxTitleLength), nil),
			wantErr: false,
		},
		{
			name:      "title over 255 characters fails",
			todo:      New(strings.Repeat("a", MaxTitleLength+1), nil),
			wantErr:   true,
			wantField: "title",
		},
		{
			name:    "multibyte title counted in characters",
			todo:    New(strings.Repeat("买", MaxTitleLength), nil),
			wantErr: false,
		},
		{
			name:    "description at 1000 characters passes",
			todo:    New("t", stringPtr(strings.Repeat("d", MaxDescriptionLength))),
			wantErr: false,
		},
		{
			name:      "description over 1000 characters fails",
			todo:      New("t", stringPtr(strings.Repeat("d", MaxDescriptionLength+1))),
			wantErr:   true,
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.todo.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	done := &Todo{Completed: true}
	open := &Todo{Completed: false}

	if !(Filter{}).Matches(done) || !(Filter{}).Matches(open) {
		t.Error("zero Filter should match every todo")
	}
	if !(Filter{Completed: boolPtr(true)}).Matches(done) {
		t.Error("completed=true filter should match a completed todo")
	}
	if (Filter{Completed: boolPtr(true)}).Matches(open) {
		t.Error("completed=true filter should not match a pending todo")
	}
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("getting todo: %w", &domain.NotFoundError{ID: 42})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatal("errors.Is(wrapped NotFoundError, ErrNotFound) = false, want true")
	}
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatal("errors.As(wrapped, *NotFoundError) = false, want true")
	}
	if got, want := nf.Error(), "Todo not found with id: 42"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", domain.ErrNotFound},
		{"ErrValidation", domain.ErrValidation},
		{"ErrBadArgument", domain.ErrBadArgument},
		{"ErrUnavailable", domain.ErrUnavailable},
	}

	for _, tt := range sentinels {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false", tt.name)
			}
		})
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a.err, b.err) {
				t.Errorf("%s and %s should be distinct", a.name, b.name)
			}
		}
	}
}
