// Package todo holds the Todo entity and the value types used to query and
// mutate it.
package todo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// Field limits enforced on create and update.
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
)

// Todo represents a single todo item. ID and both timestamps are assigned by
// the store; CreatedAt never changes after insertion.
type Todo struct {
	ID          int64
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New builds an unsaved Todo. New items always start incomplete.
func New(title string, description *string) *Todo {
	return &Todo{
		Title:       title,
		Description: description,
		Completed:   false,
	}
}

// ToggleCompleted flips the completion flag.
func (t *Todo) ToggleCompleted() {
	t.Completed = !t.Completed
}

// Apply copies every field present in p onto t. Absent fields keep their
// current value.
func (t *Todo) Apply(p Patch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		desc := *p.Description
		t.Description = &desc
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgNotBlank
	} else if n := utf8.RuneCountInString(t.Title); n > MaxTitleLength {
		fields["title"] = fmt.Sprintf("size must be between 1 and %d, got %d", MaxTitleLength, n)
	}
	if t.Description != nil {
		if n := utf8.RuneCountInString(*t.Description); n > MaxDescriptionLength {
			fields["description"] = fmt.Sprintf("size must be at most %d, got %d", MaxDescriptionLength, n)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch carries a partial update. A nil field means "leave unchanged",
// never "clear".
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the patch changes no field.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}
