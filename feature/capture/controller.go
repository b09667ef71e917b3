package capture

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Status is the lifecycle state of the capture session.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
)

// Result statuses reported to callers of Start and Stop.
const (
	ResultStarted        = "started"
	ResultAlreadyRunning = "already_running"
	ResultStopped        = "stopped"
)

// Options configure a Controller.
type Options struct {
	Interval       time.Duration
	CaptureTimeout time.Duration
	ArchivePrefix  string
	Grabber        Grabber
	Persisters     []Persister
	Sessions       SessionStore
	Logger         *zap.Logger
	Clock          func() time.Time
	Sleeper        func(context.Context, time.Duration) error
}

// StartResult is returned by Start.
type StartResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StopResult is returned by Stop.
type StopResult struct {
	Status          string `json:"status"`
	Message         string `json:"message"`
	ScreenshotCount int    `json:"screenshot_count"`
}

// StatusReport describes the current session.
type StatusReport struct {
	Status          Status     `json:"status"`
	SessionID       string     `json:"session_id,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	IntervalSeconds int        `json:"interval_seconds"`
	ScreenshotCount int        `json:"screenshot_count"`
}

// Controller owns the capture session: its status, the screenshots taken since the
// last Start and the recurring capture task.
type Controller struct {
	interval       time.Duration
	captureTimeout time.Duration
	archivePrefix  string
	grabber        Grabber
	persisters     []Persister
	sessions       SessionStore
	logger         *zap.Logger
	clock          func() time.Time
	sleeper        func(context.Context, time.Duration) error

	// lifecycle serialises Start, Stop and Close.
	lifecycle sync.Mutex

	// mu guards the fields below. It is never held across a grab.
	mu        sync.Mutex
	status    Status
	sessionID string
	startedAt time.Time
	images    []Image
	names     nameSet
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewController validates options and returns an idle controller.
func NewController(opts Options) (*Controller, error) {
	if opts.Interval <= 0 {
		return nil, errors.New("interval must be positive")
	}
	if opts.Grabber == nil {
		return nil, errors.New("grabber must be provided")
	}
	captureTimeout := opts.CaptureTimeout
	if captureTimeout <= 0 {
		captureTimeout = 30 * time.Second
	}
	prefix := opts.ArchivePrefix
	if prefix == "" {
		prefix = "simulation_screenshots"
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	sleeper := opts.Sleeper
	if sleeper == nil {
		sleeper = defaultSleeper
	}
	return &Controller{
		interval:       opts.Interval,
		captureTimeout: captureTimeout,
		archivePrefix:  prefix,
		grabber:        opts.Grabber,
		persisters:     opts.Persisters,
		sessions:       opts.Sessions,
		logger:         logger,
		clock:          clock,
		sleeper:        sleeper,
		status:         StatusIdle,
		names:          nameSet{},
	}, nil
}

// Start begins a new session: prior screenshots are dropped, one capture is taken
// immediately and the recurring task is launched. Starting a running session is a
// no-op reported as already_running.
func (c *Controller) Start(ctx context.Context) StartResult {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	c.mu.Lock()
	if c.status == StatusRunning {
		c.mu.Unlock()
		c.logger.Info("Screenshot capture already running")
		return StartResult{Status: ResultAlreadyRunning, Message: "Screenshot capture already running"}
	}
	sessionID := uuid.NewString()
	startedAt := c.clock()
	c.images = nil
	c.names = nameSet{}
	c.sessionID = sessionID
	c.startedAt = startedAt
	c.status = StatusRunning
	c.mu.Unlock()

	l := c.logger.With(zap.String("session", sessionID))
	l.Info("Starting screenshot capture", zap.Duration("interval", c.interval))
	c.recordBegin(ctx, sessionID, startedAt)

	if _, err := c.captureOnce(ctx, sessionID); err != nil {
		l.Warn("Initial screenshot failed, continuing", zap.Error(err))
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	c.mu.Lock()
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	go c.run(loopCtx, sessionID, done)

	return StartResult{Status: ResultStarted, Message: "Screenshot capture started"}
}

// Stop cancels the recurring task and takes one final capture. No scheduled capture
// fires after Stop returns. Stopping an idle controller still captures, appending to
// the last session's screenshots.
func (c *Controller) Stop(ctx context.Context) StopResult {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	running, sessionID := c.halt()

	if _, err := c.captureOnce(ctx, sessionID); err != nil {
		c.logger.Warn("Final screenshot failed", zap.String("session", sessionID), zap.Error(err))
	}

	c.mu.Lock()
	c.status = StatusIdle
	count := len(c.images)
	c.mu.Unlock()

	if running {
		c.recordFinish(ctx, sessionID, count)
		c.logger.Info("Stopped screenshot capture", zap.String("session", sessionID), zap.Int("count", count))
	}

	return StopResult{Status: ResultStopped, Message: "Screenshot capture stopped", ScreenshotCount: count}
}

// Close tears the session down without a final capture. It is safe to call at any
// time and more than once.
func (c *Controller) Close() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	running, sessionID := c.halt()

	c.mu.Lock()
	c.status = StatusIdle
	count := len(c.images)
	c.mu.Unlock()

	if running {
		c.recordFinish(context.Background(), sessionID, count)
		c.logger.Info("Closed screenshot capture", zap.String("session", sessionID), zap.Int("count", count))
	}
}

// Archive bundles the current session's screenshots into a zip. It does not
// modify the session.
func (c *Controller) Archive() (*Archive, error) {
	images := c.Images()
	if len(images) == 0 {
		return nil, ErrNoScreenshots
	}
	return BuildArchive(images, c.archivePrefix, c.clock())
}

// Images returns a copy of the screenshots recorded in the current session.
func (c *Controller) Images() []Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Image, len(c.images))
	copy(out, c.images)
	return out
}

// Status reports the session state.
func (c *Controller) Status() StatusReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	report := StatusReport{
		Status:          c.status,
		SessionID:       c.sessionID,
		IntervalSeconds: int(c.interval / time.Second),
		ScreenshotCount: len(c.images),
	}
	if !c.startedAt.IsZero() {
		started := c.startedAt
		report.StartedAt = &started
	}
	return report
}

// halt cancels the recurring task and waits for it to exit. An in-flight capture
// completes before halt returns. The caller must hold lifecycle.
func (c *Controller) halt() (bool, string) {
	c.mu.Lock()
	running := c.status == StatusRunning
	sessionID := c.sessionID
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	return running, sessionID
}

func (c *Controller) run(ctx context.Context, sessionID string, done chan struct{}) {
	defer close(done)
	l := c.logger.With(zap.String("session", sessionID))
	for {
		if err := c.sleeper(ctx, c.interval); err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
		if _, err := c.captureOnce(ctx, sessionID); err != nil {
			l.Warn("Scheduled screenshot failed, will retry next interval", zap.Error(err))
		}
	}
}

// captureOnce grabs one frame and appends it to the session. The grab runs on its
// own timeout, detached from ctx cancellation, so a capture already in flight when
// the session stops still completes.
func (c *Controller) captureOnce(ctx context.Context, sessionID string) (Image, error) {
	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.captureTimeout)
	defer cancel()

	frame, err := c.grabber.Grab(opCtx)
	if err == nil && len(frame.PNG) == 0 {
		err = errors.New("grabber returned empty image")
	}
	if err != nil {
		return Image{}, captureError(err)
	}

	ts := frame.CapturedAt
	if ts.IsZero() {
		ts = c.clock()
	}

	c.mu.Lock()
	img := Image{
		Name:      c.names.next(ts),
		Timestamp: ts,
		Data:      frame.PNG,
		Width:     frame.Width,
		Height:    frame.Height,
	}
	c.images = append(c.images, img)
	count := len(c.images)
	c.mu.Unlock()

	c.logger.Info("Screenshot captured",
		zap.String("session", sessionID),
		zap.String("name", img.Name),
		zap.Int("bytes", len(img.Data)),
		zap.Int("count", count))

	for _, p := range c.persisters {
		if err := p.Persist(opCtx, sessionID, img); err != nil {
			c.logger.Warn("Failed to persist screenshot", zap.String("name", img.Name), zap.Error(err))
		}
	}
	return img, nil
}

func (c *Controller) recordBegin(ctx context.Context, sessionID string, startedAt time.Time) {
	if c.sessions == nil {
		return
	}
	if err := c.sessions.Begin(context.WithoutCancel(ctx), sessionID, startedAt); err != nil {
		c.logger.Warn("Failed to record session start", zap.Error(err))
	}
}

func (c *Controller) recordFinish(ctx context.Context, sessionID string, count int) {
	if c.sessions == nil {
		return
	}
	if err := c.sessions.Finish(context.WithoutCancel(ctx), sessionID, c.clock(), count); err != nil {
		c.logger.Warn("Failed to record session stop", zap.Error(err))
	}
}

func defaultSleeper(ctx context.Context, wait time.Duration) error {
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
