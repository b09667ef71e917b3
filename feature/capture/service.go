package capture

import (
	"context"
	"fmt"

	"simulation-server/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the optional collaborators of the capture service.
type Dependencies struct {
	Logger *zap.Logger
	// Storage mirrors captures to a bucket when Config.MirrorToStorage is set.
	Storage storage.Client
	Bucket  string
	// DB keeps session history; nil disables it.
	DB *gorm.DB
	// Grabber overrides the backend selected by Config.Backend.
	Grabber Grabber
}

// Service exposes the capture controller to the HTTP layer and the CLI.
type Service struct {
	controller *Controller
	sessions   SessionStore
	logger     *zap.Logger
}

// NewService wires a controller from configuration.
func NewService(cfg Config, deps Dependencies) (*Service, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	grabber := deps.Grabber
	if grabber == nil {
		g, err := NewGrabber(cfg.Backend)
		if err != nil {
			return nil, err
		}
		grabber = g
	}

	var persisters []Persister
	if cfg.PersistToDisk {
		disk, err := NewDiskPersister(cfg.Dir)
		if err != nil {
			return nil, err
		}
		persisters = append(persisters, disk)
	}
	if cfg.MirrorToStorage {
		if deps.Storage == nil {
			return nil, fmt.Errorf("storage mirror enabled but no storage client configured")
		}
		persisters = append(persisters, NewStoragePersister(deps.Storage, deps.Bucket, cfg.StoragePrefix))
	}

	var sessions SessionStore
	if deps.DB != nil {
		store := NewGormSessionStore(deps.DB)
		if err := store.Migrate(); err != nil {
			logger.Warn("Session history disabled", zap.Error(err))
		} else {
			sessions = store
		}
	}

	controller, err := NewController(Options{
		Interval:       cfg.Interval(),
		CaptureTimeout: cfg.CaptureTimeout(),
		ArchivePrefix:  cfg.ArchivePrefix,
		Grabber:        grabber,
		Persisters:     persisters,
		Sessions:       sessions,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("initialise capture controller: %w", err)
	}

	return &Service{controller: controller, sessions: sessions, logger: logger}, nil
}

// Start begins a capture session.
func (s *Service) Start(ctx context.Context) StartResult {
	return s.controller.Start(ctx)
}

// Stop ends the capture session.
func (s *Service) Stop(ctx context.Context) StopResult {
	return s.controller.Stop(ctx)
}

// Archive bundles the session's screenshots.
func (s *Service) Archive() (*Archive, error) {
	return s.controller.Archive()
}

// Images returns the screenshots of the current session.
func (s *Service) Images() []Image {
	return s.controller.Images()
}

// Status reports the session state.
func (s *Service) Status() StatusReport {
	return s.controller.Status()
}

// Sessions lists recent capture sessions.
func (s *Service) Sessions(ctx context.Context, limit int) ([]Session, error) {
	if s.sessions == nil {
		return nil, ErrHistoryDisabled
	}
	return s.sessions.Recent(ctx, limit)
}

// Close cancels any running session.
func (s *Service) Close() {
	s.controller.Close()
}
