// Package requestmeta carries inbound request identifiers to outbound
// messages. Inbound HTTP middleware stores the IDs; publishers read them back
// as headers so events can be traced to the request that caused them.
//
//	ctx = requestmeta.WithRequestID(ctx, "req-123")
//	ctx = requestmeta.WithCorrelationID(ctx, "corr-456")
//	hdr := requestmeta.Headers(ctx) // X-Request-ID, X-Correlation-ID
package requestmeta

import "context"

// Header names used for propagation.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID returns a new context with the given request ID stored in it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID returns a new context with the given correlation ID
// stored in it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Headers returns the identifiers present in ctx keyed by header name.
// Empty identifiers are omitted.
func Headers(ctx context.Context) map[string]string {
	out := make(map[string]string, 2)
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		out[HeaderRequestID] = id
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		out[HeaderCorrelationID] = id
	}
	return out
}
