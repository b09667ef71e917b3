package capture

import "time"

const (
	BackendScreen    = "screen"
	BackendSynthetic = "synthetic"
)

// Config holds the screenshot capture settings.
type Config struct {
	// IntervalSeconds is the cadence of the recurring capture task.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"60"`
	// Backend selects the grabber: "screen" for the real display, "synthetic" for headless hosts.
	Backend string `mapstructure:"backend" default:"screen"`
	// Dir is where screenshots are written when PersistToDisk is set. It must not sit
	// under server.static_dir when an API key protects the capture routes.
	Dir string `mapstructure:"dir" default:"screenshots"`
	// PersistToDisk writes every capture to Dir.
	PersistToDisk bool `mapstructure:"persist_to_disk" default:"true"`
	// MirrorToStorage uploads every capture to the object storage bucket.
	MirrorToStorage bool `mapstructure:"mirror_to_storage" default:"false"`
	// StoragePrefix is the object key prefix for mirrored captures.
	StoragePrefix string `mapstructure:"storage_prefix" default:"screenshots"`
	// CaptureTimeoutSeconds bounds a single grab and its persistence.
	CaptureTimeoutSeconds int `mapstructure:"capture_timeout_seconds" default:"30"`
	// ArchivePrefix starts the suggested download filename.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"simulation_screenshots"`
}

// Interval returns the capture cadence, falling back to one minute.
func (c Config) Interval() time.Duration {
	if c.IntervalSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.IntervalSeconds) * time.Second
}

// CaptureTimeout returns the per-capture timeout, falling back to 30 seconds.
func (c Config) CaptureTimeout() time.Duration {
	if c.CaptureTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.CaptureTimeoutSeconds) * time.Second
}
