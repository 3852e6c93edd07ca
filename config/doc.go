// Package config provides configuration management for the metrics-whisperer
// service.
//
// Configuration is environment-first: every setting has a default, an optional
// config.yaml in the working directory can override defaults, and environment
// variables override everything. The result is loaded once at startup,
// validated, and treated as immutable for the life of the process.
//
// # Basic Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client := promclient.New(cfg.Prometheus.URL, cfg.Prometheus.QueryTimeout)
//
// # Environment Variables
//
// Nested keys map onto flat environment names by joining with underscores:
//
//	# Metrics backend
//	export PROMETHEUS_URL="http://prometheus:9090"
//	export PROMETHEUS_QUERY_TIMEOUT="30s"
//
//	# Dashboard base for explore links (empty disables links)
//	export GRAFANA_URL="http://grafana:3000"
//
//	# HTTP listener
//	export SERVER_PORT="8000"
//	export SERVER_CORS_ORIGINS="*"
//
//	# Demonstration metrics generator
//	export GENERATOR_ENABLED="true"
//	export GENERATOR_INTERVAL="5s"
//	export GENERATOR_ERROR_BACKOFF="10s"
//
// HUGGINGFACE_API_KEY is also read and bound onto the Config for deployment
// parity with earlier revisions of the service; nothing consumes it.
//
// # Config File
//
// A config.yaml in the working directory supplies the same keys in nested
// form:
//
//	server:
//	  port: 8000
//	prometheus:
//	  url: http://prometheus:9090
//	  query_timeout: 30s
//
// Precedence is environment > file > defaults.
//
// # Validation
//
// Load validates before returning: base URLs must be absolute http or https,
// the listen port must fall in 1-65535, and all intervals must be positive.
// Validation failures classify as invalid configuration errors, so the
// entrypoint exits instead of starting half-configured.
package config
