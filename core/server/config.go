package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"5001"`
	// ApiKey protects the capture endpoints when non-empty.
	ApiKey string `mapstructure:"api_key" default:""`
	// AllowedOrigins is a comma separated CORS origin list.
	AllowedOrigins string `mapstructure:"allowed_origins" default:"*"`
	// ForceHTTPS redirects plain HTTP traffic from non-local hosts to https.
	ForceHTTPS bool `mapstructure:"force_https" default:"false"`
	// TemplatesDir holds the HTML page templates.
	TemplatesDir string `mapstructure:"templates_dir" default:"templates"`
	// StaticDir is served under /static.
	StaticDir string `mapstructure:"static_dir" default:"static"`
	// BodyLimitMB caps request bodies.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"16"`
}

// Origins returns the normalised CORS origin list joined the way the cors
// middleware expects it.
func (c Config) Origins() string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 16 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
