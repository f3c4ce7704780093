// Package logging provides structured logging using uber/zap.
//
// Two modes are offered:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The rolling driver logs plan and fan-out details at debug level;
// libraries embedding this core that want silence can pass NewNop.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("roll complete", zap.Int("windows", n))
package logging
