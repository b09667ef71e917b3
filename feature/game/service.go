package game

import (
	"go.uber.org/zap"
)

// Service owns the asset index and its watcher.
type Service struct {
	cfg     Config
	index   *Index
	watcher *Watcher
	logger  *zap.Logger
}

// NewService indexes the build directory and, when configured, starts watching it.
// A build directory that does not exist yet is not an error: the index stays empty.
func NewService(cfg Config, logger *zap.Logger) (*Service, error) {
	index, err := NewIndex(cfg.BuildDir, cfg.Patterns())
	if err != nil {
		return nil, err
	}
	if err := index.Refresh(); err != nil {
		logger.Warn("Failed to index game build", zap.String("dir", cfg.BuildDir), zap.Error(err))
	}

	s := &Service{cfg: cfg, index: index, logger: logger}
	if cfg.Watch {
		w, err := NewWatcher(index, cfg.WatchInterval(), logger)
		if err != nil {
			logger.Warn("Game build watcher disabled", zap.Error(err))
		} else {
			w.Start()
			s.watcher = w
		}
	}

	logger.Info("Game build indexed",
		zap.String("dir", cfg.BuildDir),
		zap.Int("assets", index.Len()),
		zap.Bool("watching", s.watcher != nil))
	return s, nil
}

// Index returns the asset index.
func (s *Service) Index() *Index {
	return s.index
}

// Close stops the watcher.
func (s *Service) Close() {
	if s.watcher != nil {
		s.watcher.Close()
		s.watcher = nil
	}
}
