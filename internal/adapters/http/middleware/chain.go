package middleware

import (
	"net/http"
	"slices"
)

// Chain folds middlewares into one, outermost first:
//
//	Chain(Recovery(l), RequestID(), Logging(l))(h) == Recovery(l)(RequestID()(Logging(l)(h)))
//
// Nil entries are skipped, so optional middleware can be left unset when its
// feature is turned off in configuration.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for _, mw := range slices.Backward(middlewares) {
			if mw != nil {
				handler = mw(handler)
			}
		}
		return handler
	}
}
