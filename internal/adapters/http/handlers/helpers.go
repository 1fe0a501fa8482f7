package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// Query parameter names accepted by the list endpoint.
const (
	queryCompleted = "completed"
	querySearch    = "search"
)

func badParam(name, raw string) error {
	return &domain.BadArgumentError{
		Message: fmt.Sprintf("Invalid value for parameter '%s': %s", name, raw),
	}
}

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, badParam(param, raw)
	}
	return id, nil
}

// parseTodoFilter reads the optional completed and search query parameters.
func parseTodoFilter(r *http.Request) (todo.Filter, error) {
	var filter todo.Filter
	q := r.URL.Query()

	if raw := q.Get(queryCompleted); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return todo.Filter{}, badParam(queryCompleted, raw)
		}
		filter.Completed = &completed
	}
	filter.TitleContains = q.Get(querySearch)

	return filter, nil
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteError(w, r, &domain.BadArgumentError{Message: dto.MsgMalformedJSON})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteError(w, r, err)
		return false
	}
	return true
}
