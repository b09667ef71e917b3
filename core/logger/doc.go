// Package logger provides a structured logging facility based on Zap.
//
// The logger is shared by the HTTP layer and the background capture loop, so every
// screenshot attempt, lifecycle transition and request ends up in the same stream.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by the rayid middleware from a Fiber context and
// attaches it to the log entry, so all logs of one request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
