package game

import (
	"strings"
	"time"
)

// Config holds the Unity WebGL build settings.
type Config struct {
	// BuildDir is the root of the exported WebGL build.
	BuildDir string `mapstructure:"build_dir" default:"static/Try_web_build"`
	// AllowedPatterns is a comma separated list of doublestar patterns, relative to BuildDir.
	AllowedPatterns string `mapstructure:"allowed_patterns" default:"index.html,Build/**,TemplateData/**,*.ico,*.png,*.js,*.css,StreamingAssets/**"`
	// Watch refreshes the asset index when the build changes.
	Watch bool `mapstructure:"watch" default:"true"`
	// WatchIntervalMs is the polling period of the build watcher.
	WatchIntervalMs int `mapstructure:"watch_interval_ms" default:"1000"`
}

// Patterns splits AllowedPatterns.
func (c Config) Patterns() []string {
	var out []string
	for _, p := range strings.Split(c.AllowedPatterns, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// WatchInterval returns the watcher polling period, at least 100ms.
func (c Config) WatchInterval() time.Duration {
	d := time.Duration(c.WatchIntervalMs) * time.Millisecond
	if d < 100*time.Millisecond {
		return 100 * time.Millisecond
	}
	return d
}
