// Package config provides configuration management for the simulation server.
//
// Values come from struct tag defaults, an optional .env file (godotenv) and
// environment variables (Viper), in increasing priority. Nested keys map to
// upper-case underscore names: capture.interval_seconds is CAPTURE_INTERVAL_SECONDS.
//
// # Configuration Structure
//
//   - Server: port, API key, CORS origins, HTTPS redirect, template and static dirs
//   - Log: level and format
//   - Storage: optional S3/MinIO screenshot mirror
//   - Database: optional capture session history (mysql or sqlite)
//   - Capture: interval, screenshot directory, persistence toggles
//   - Game: Unity WebGL build directory, asset allowlist, watcher
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
