package dto

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// Response messages.
const (
	MsgSuccess          = "success"
	MsgCreated          = "Todo created successfully"
	MsgUpdated          = "Todo updated successfully"
	MsgToggled          = "Todo status toggled successfully"
	MsgDeleted          = "Todo deleted successfully"
	MsgCompletedDeleted = "Completed todos deleted successfully"
	MsgAllDeleted       = "All todos deleted successfully"
	MsgValidationFailed = "Validation failed"
	MsgMalformedJSON    = "Malformed JSON request body"
	MsgInternalError    = "Internal server error"
	MsgTooManyRequests  = "Too many requests"
	MsgRequestTimeout   = "Request timed out"
)

// Envelope is the uniform body of every API response. Data is omitted when
// nil.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ValidationErrorResponse is the body of a 400 caused by field validation.
// It replaces the envelope's data with a field-to-message map.
type ValidationErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// WriteEnvelope writes {code,message,data} using status as both the HTTP
// status and the envelope code.
func WriteEnvelope(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	WriteJSON(w, r, status, Envelope{Code: status, Message: message, Data: data})
}
