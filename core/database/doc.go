// Package database handles database connections and schema inspection.
//
// It wraps GORM so the capture feature can keep a history of capture sessions in
// MySQL (production) or SQLite (local runs and tests). The database is optional:
// when it is disabled or unreachable the server keeps running without history.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns back the readiness probe, which reports whether
// the capture_sessions table carries the columns the application writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "capture_sessions", []string{"id", "started_at"})
package database
