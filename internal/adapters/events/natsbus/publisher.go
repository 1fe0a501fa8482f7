// Package natsbus publishes todo lifecycle events to NATS JetStream.
// Each event goes to "<subject_prefix>.<type>" (e.g. "todos.created") on a
// stream that captures "<subject_prefix>.>".
package natsbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/requestmeta"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time checks.
var (
	_ ports.EventPublisher = (*Publisher)(nil)
	_ ports.EventPublisher = Discard{}
	_ ports.HealthChecker  = (*Publisher)(nil)
)

// Publisher sends events to a JetStream stream.
type Publisher struct {
	nc     *nats.Conn
	js     nats.JetStreamContext
	prefix string
	logger *slog.Logger
}

// Connect dials NATS, ensures the event stream exists, and returns a ready
// Publisher. The connection reconnects on its own after transient outages.
func Connect(cfg config.EventsConfig, logger *slog.Logger) (*Publisher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("component", "natsbus"))

	opts := []nats.Option{
		nats.Name("todo-service"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", slog.Any("error", err))
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", slog.String("url", c.ConnectedUrlRedacted()))
		}),
	}
	if cfg.ConnectWait > 0 {
		opts = append(opts, nats.Timeout(cfg.ConnectWait))
	}

	nc, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats %s: %w", cfg.NATSURL, err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("initializing jetstream: %w", err)
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:     cfg.Stream,
		Subjects: []string{cfg.SubjectPrefix + ".>"},
	})
	if err != nil && !errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
		nc.Close()
		return nil, fmt.Errorf("creating stream %s: %w", cfg.Stream, err)
	}

	logger.Info("nats publisher ready",
		slog.String("url", nc.ConnectedUrlRedacted()),
		slog.String("stream", cfg.Stream),
	)

	return &Publisher{nc: nc, js: js, prefix: cfg.SubjectPrefix, logger: logger}, nil
}

// Publish encodes event as JSON and waits for the stream to acknowledge it.
// Request and correlation IDs from ctx travel as message headers.
func (p *Publisher) Publish(ctx context.Context, event ports.TodoEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event.Type, err)
	}

	msg := nats.NewMsg(p.Subject(event.Type))
	msg.Data = data
	for name, value := range requestmeta.Headers(ctx) {
		msg.Header.Set(name, value)
	}

	if _, err := p.js.PublishMsg(msg, nats.Context(ctx)); err != nil {
		return fmt.Errorf("publishing to %s: %w", msg.Subject, err)
	}

	p.logger.DebugContext(ctx, "event published",
		slog.String("subject", msg.Subject),
		slog.Int64("id", event.ID),
	)
	return nil
}

// Subject returns the subject an event type is published on.
func (p *Publisher) Subject(t ports.EventType) string {
	return p.prefix + "." + string(t)
}

// HealthCheck reports whether the NATS connection is up.
func (p *Publisher) HealthCheck(_ context.Context) error {
	if status := p.nc.Status(); status != nats.CONNECTED {
		return fmt.Errorf("nats connection %s", status)
	}
	return nil
}

// Name identifies NATS in health reports.
func (p *Publisher) Name() string {
	return "nats"
}

// Close flushes pending messages and closes the connection.
func (p *Publisher) Close() error {
	return p.nc.Drain()
}

// Discard is the publisher used when events are disabled.
type Discard struct{}

// Publish does nothing.
func (Discard) Publish(context.Context, ports.TodoEvent) error {
	return nil
}
