// Package config provides 12-factor configuration for the rolling-moment
// core.
//
// Configuration is loaded from environment variables with sensible
// defaults; every knob also has a safe zero default so the library works
// unconfigured.
//
// Configuration Sections:
//   - Rolling: worker fan-out and numeric accuracy settings
//   - Logging: log level and output format
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	roller := rolling.New(cfg, logging.NewDefault())
//
// Environment Variables:
//   - SIGFEAT_WORKERS, SIGFEAT_EXACT, SIGFEAT_EXACT_MAX_LAG
//   - SIGFEAT_MAX_OUTPUT_ELEMS
//   - SIGFEAT_LOG_LEVEL, SIGFEAT_LOG_DEV
package config
