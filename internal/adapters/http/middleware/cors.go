package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/requestmeta"
)

// CORS returns middleware that restricts cross-origin access to the
// configured origins. Preflight requests are answered directly.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Content-Type",
			"X-Requested-With",
			requestmeta.HeaderRequestID,
			requestmeta.HeaderCorrelationID,
		},
		ExposedHeaders: []string{
			requestmeta.HeaderRequestID,
			requestmeta.HeaderCorrelationID,
		},
		AllowCredentials: true,
		MaxAge:           int(cfg.MaxAge.Seconds()),
	})
	return c.Handler
}
