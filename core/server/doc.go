// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port, the optional API key guarding the
// capture endpoints, CORS origins, HTTPS redirection and the directories holding
// page templates and static files. The cmd package reads it when wiring Fiber.
package server
