package game

import (
	"fmt"
	"os"
	"time"

	"github.com/radovskyb/watcher"
	"go.uber.org/zap"
)

// Watcher polls the build directory and refreshes the index on change.
type Watcher struct {
	index    *Index
	interval time.Duration
	logger   *zap.Logger
	w        *watcher.Watcher
	done     chan struct{}
}

// NewWatcher prepares a watcher for the index root. The root must exist.
func NewWatcher(index *Index, interval time.Duration, logger *zap.Logger) (*Watcher, error) {
	if _, err := os.Stat(index.Root()); err != nil {
		return nil, fmt.Errorf("watch %s: %w", index.Root(), err)
	}

	w := watcher.New()
	// Many files change at once when a build is exported
	w.SetMaxEvents(1)
	w.FilterOps(watcher.Create, watcher.Write, watcher.Remove, watcher.Rename, watcher.Move)
	if err := w.AddRecursive(index.Root()); err != nil {
		return nil, fmt.Errorf("watch %s: %w", index.Root(), err)
	}

	return &Watcher{index: index, interval: interval, logger: logger, w: w, done: make(chan struct{})}, nil
}

// Start begins polling in the background and returns once the poller is running.
func (gw *Watcher) Start() {
	go gw.loop()
	go func() {
		if err := gw.w.Start(gw.interval); err != nil {
			gw.logger.Error("Build watcher stopped", zap.Error(err))
		}
	}()
	gw.w.Wait()
}

// Close stops polling. It blocks until the event loop has exited.
func (gw *Watcher) Close() {
	gw.w.Close()
	<-gw.done
}

func (gw *Watcher) loop() {
	defer close(gw.done)
	for {
		select {
		case ev := <-gw.w.Event:
			if err := gw.index.Refresh(); err != nil {
				gw.logger.Warn("Failed to refresh asset index", zap.Error(err))
				continue
			}
			gw.logger.Info("Game build changed",
				zap.String("op", ev.Op.String()),
				zap.String("path", ev.Path),
				zap.Int("assets", gw.index.Len()))
		case err := <-gw.w.Error:
			gw.logger.Warn("Build watcher error", zap.Error(err))
		case <-gw.w.Closed:
			return
		}
	}
}
