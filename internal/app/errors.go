package app

import (
	"errors"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// isClientError reports whether err is caused by the request rather than by
// the service or its store.
func isClientError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrBadArgument)
}
