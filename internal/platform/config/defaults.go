package config

const (
	defaultServerPort = 8080

	defaultDatabaseBusyTimeoutMS = 5000

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.path":            "data/heavyshop.db",
		"database.busy_timeout_ms": defaultDatabaseBusyTimeoutMS,

		"purchasing.base_url":                        "http://localhost:8081",
		"purchasing.timeout":                         "30s",
		"purchasing.retry.max_attempts":              defaultRetryMaxAttempts,
		"purchasing.retry.initial_interval":          "100ms",
		"purchasing.retry.max_interval":              "10s",
		"purchasing.retry.multiplier":                defaultRetryMultiplier,
		"purchasing.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"purchasing.circuit_breaker.timeout":         "30s",
		"purchasing.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
