package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 50
	defaultRateLimitBurst = 100
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"app.name":    "todo-service",
		"app.version": "1.0.0",

		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-service",

		"database.driver":            "sqlite",
		"database.dsn":               "todo.db",
		"database.max_open_conns":    defaultMaxOpenConns,
		"database.max_idle_conns":    defaultMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.auto_migrate":      true,
		"database.log_level":         "warn",
		"database.slow_threshold":    "200ms",

		"storage.circuit_breaker.enabled":         true,
		"storage.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.circuit_breaker.timeout":         "30s",
		"storage.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"cors.allowed_origins": []string{"http://localhost:3000"},
		"cors.max_age":         "1h",

		"rate_limit.requests_per_second": defaultRateLimitRPS,
		"rate_limit.burst":               defaultRateLimitBurst,

		"events.enabled":        false,
		"events.nats_url":       "nats://localhost:4222",
		"events.subject_prefix": "todos",
		"events.stream":         "TODO_EVENTS",
		"events.connect_wait":   "2s",
	}
}
