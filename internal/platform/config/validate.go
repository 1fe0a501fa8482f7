package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.App.validate(),
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Database.validate(),
		c.Storage.validate(),
		c.CORS.validate(),
		c.RateLimit.validate(),
		c.Events.validate(),
	)
}

func (a *AppConfig) validate() error {
	if strings.TrimSpace(a.Version) == "" {
		return errors.New("app.version must not be empty")
	}
	return nil
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	switch d.Driver {
	case "sqlite", "postgres":
		if d.DSN == "" {
			errs = append(errs, fmt.Errorf("database.dsn must not be empty for driver %s", d.Driver))
		}
	case "memory":
		// No connection settings.
	default:
		errs = append(errs, fmt.Errorf("database.driver must be one of: sqlite, postgres, memory; got %q", d.Driver))
	}

	if d.MaxOpenConns < 0 {
		errs = append(errs, fmt.Errorf("database.max_open_conns must not be negative, got %d", d.MaxOpenConns))
	}
	if d.MaxIdleConns < 0 {
		errs = append(errs, fmt.Errorf("database.max_idle_conns must not be negative, got %d", d.MaxIdleConns))
	}

	switch d.LogLevel {
	case "", "silent", "error", "warn", "info":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("database.log_level must be one of: silent, error, warn, info; got %q", d.LogLevel))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	cb := s.CircuitBreaker
	if !cb.Enabled {
		return nil
	}

	var errs []error

	if cb.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("storage.circuit_breaker.max_failures must be >= 1, got %d", cb.MaxFailures))
	}
	if cb.Timeout <= 0 {
		errs = append(errs, errors.New("storage.circuit_breaker.timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (c *CORSConfig) validate() error {
	if len(c.AllowedOrigins) == 0 {
		return errors.New("cors.allowed_origins must list at least one origin")
	}

	var errs []error
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("cors.allowed_origins entry %q must be a scheme://host origin", origin))
		}
	}

	return errors.Join(errs...)
}

func (r *RateLimitConfig) validate() error {
	var errs []error

	if r.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("rate_limit.requests_per_second must not be negative, got %g", r.RequestsPerSecond))
	}
	if r.RequestsPerSecond > 0 && r.Burst < 1 {
		errs = append(errs, fmt.Errorf("rate_limit.burst must be >= 1 when limiting is enabled, got %d", r.Burst))
	}

	return errors.Join(errs...)
}

func (e *EventsConfig) validate() error {
	if !e.Enabled {
		return nil
	}

	var errs []error

	if e.NATSURL == "" {
		errs = append(errs, errors.New("events.nats_url must not be empty when events are enabled"))
	}
	if strings.TrimSpace(e.SubjectPrefix) == "" {
		errs = append(errs, errors.New("events.subject_prefix must not be empty when events are enabled"))
	}
	if strings.TrimSpace(e.Stream) == "" {
		errs = append(errs, errors.New("events.stream must not be empty when events are enabled"))
	}

	return errors.Join(errs...)
}
