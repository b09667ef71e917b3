// Package capture implements periodic full-screen screenshot capture.
//
// A single Controller owns the capture session. Start clears the previous session,
// takes one screenshot right away and launches a recurring task that captures
// every interval. Stop cancels the task, waits for it to exit and takes a final
// screenshot. Archive zips every screenshot of the session in capture order.
//
// Capture failures (no display, permission denied, encode errors) are logged and
// never abort a lifecycle operation or the recurring schedule. Screenshots live in
// memory; DiskPersister and StoragePersister keep optional copies, and
// GormSessionStore keeps a history of sessions.
//
// # HTTP Endpoints
//
//   - POST /start-capture : Start capturing.
//   - POST /stop-capture : Stop capturing and report the screenshot count.
//   - GET /download-screenshots : Zip of the current session (400 when empty).
//   - GET /capture/status : Session state.
//   - GET /capture/sessions : Session history (503 without a database).
package capture
