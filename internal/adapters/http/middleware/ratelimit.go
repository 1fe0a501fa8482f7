package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// RateLimit returns middleware that admits requests through a single
// token bucket shared by all clients. Rejected requests get a 429 envelope.
// A non-positive RequestsPerSecond disables limiting.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if cfg.RequestsPerSecond <= 0 {
			return next
		}

		burst := max(cfg.Burst, 1)
		limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "rate limit exceeded",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
				)
				w.Header().Set("Retry-After", "1")
				dto.WriteEnvelope(w, r, http.StatusTooManyRequests, dto.MsgTooManyRequests, nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
