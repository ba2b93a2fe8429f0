// Package log provides structured logging for easyfmt.
//
// Package: log
// Title: easyfmt Structured Logging
// Description: Structured logger with levels, persistent fields, a correlation
//              ID, pluggable formatters (JSON, text, console, logfmt) and
//              operation timers. The error of an entry is rendered by
//              every formatter under the "error" key.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Removed async buffering, audit level and severity
//   mapping; deterministic field order
//
// Usage:
//   import mdwlog "github.com/msto63/easyfmt/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatLogfmt).
//     WithField("component", "pipeline")
//
//   logger.Info("pipeline compiled", mdwlog.Fields{"name": "slug", "steps": 4})
//
//   timer := logger.StartTimer("pipeline.run")
//   // ... run the pipeline
//   timer.Stop()
package log
