package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// WriteError translates err into a status code and body. It is the
// only place errors are classified for HTTP:
//
//   - *domain.ValidationError: 400 with per-field messages
//   - domain.ErrBadArgument: 400 envelope carrying the error message
//   - domain.ErrNotFound: 404 envelope carrying the error message
//   - anything else: 500 envelope with a generic message; the cause is logged
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.WarnContext(r.Context(), "validation failed", slog.Any("fields", verr.Fields))
		WriteJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{
			Code:    http.StatusBadRequest,
			Message: MsgValidationFailed,
			Errors:  verr.Fields,
		})
	case errors.Is(err, domain.ErrBadArgument):
		logger.WarnContext(r.Context(), "bad argument", slog.String("reason", err.Error()))
		WriteEnvelope(w, r, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, domain.ErrNotFound):
		logger.WarnContext(r.Context(), "todo not found", slog.String("reason", err.Error()))
		WriteEnvelope(w, r, http.StatusNotFound, err.Error(), nil)
	default:
		logger.ErrorContext(r.Context(), "unhandled error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		WriteEnvelope(w, r, http.StatusInternalServerError, MsgInternalError, nil)
	}
}
