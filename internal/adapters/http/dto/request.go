package dto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// Field validation messages.
var (
	msgTitleRequired      = "Title is required"
	msgTitleBlank         = "Title must not be blank"
	msgTitleTooLong       = fmt.Sprintf("Title must not exceed %d characters", todo.MaxTitleLength)
	msgTitleLength        = fmt.Sprintf("Title length must be between 1 and %d characters", todo.MaxTitleLength)
	msgDescriptionTooLong = fmt.Sprintf("Description must not exceed %d characters", todo.MaxDescriptionLength)
)

// CreateTodoRequest represents the JSON body for creating a new todo.
type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(r.Title) == "":
		fields["title"] = msgTitleRequired
	case utf8.RuneCountInString(r.Title) > todo.MaxTitleLength:
		fields["title"] = msgTitleTooLong
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > todo.MaxDescriptionLength {
		fields["description"] = msgDescriptionTooLong
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTodoRequest represents the JSON body for updating an existing todo.
// All fields are optional; nil means "do not change this field".
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil {
		n := utf8.RuneCountInString(*r.Title)
		switch {
		case n < 1 || n > todo.MaxTitleLength:
			fields["title"] = msgTitleLength
		case strings.TrimSpace(*r.Title) == "":
			fields["title"] = msgTitleBlank
		}
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > todo.MaxDescriptionLength {
		fields["description"] = msgDescriptionTooLong
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request into a domain patch.
func (r *UpdateTodoRequest) ToPatch() todo.Patch {
	return todo.Patch{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}
