// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for development (debug level,
// human-readable) and production (json) use.
//
// # Run Correlation
//
// Each cleanup run is tagged with a run_id (uuid v4) through WithRunID, so the
// lines of one invocation can be grouped when logs are shipped somewhere.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log, runID := logger.WithRunID(log)
//	log.Info("Starting cleanup")
package logger
