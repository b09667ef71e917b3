package capture

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Session is the persisted record of one capture session.
type Session struct {
	ID              string     `gorm:"primaryKey;size:36" json:"id"`
	StartedAt       time.Time  `gorm:"index" json:"started_at"`
	StoppedAt       *time.Time `json:"stopped_at,omitempty"`
	ScreenshotCount int        `json:"screenshot_count"`
}

// TableName implements gorm's tabler.
func (Session) TableName() string {
	return SessionTable
}

// SessionTable is the table holding capture session history.
const SessionTable = "capture_sessions"

// SessionColumns are the columns the application writes to SessionTable.
var SessionColumns = []string{"id", "started_at", "stopped_at", "screenshot_count"}

// SessionStore records capture session history.
type SessionStore interface {
	Begin(ctx context.Context, id string, startedAt time.Time) error
	Finish(ctx context.Context, id string, stoppedAt time.Time, count int) error
	Recent(ctx context.Context, limit int) ([]Session, error)
}

// GormSessionStore keeps session history in a gorm database.
type GormSessionStore struct {
	db *gorm.DB
}

// NewGormSessionStore creates a store backed by db.
func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{db: db}
}

// Migrate creates or updates the session table.
func (s *GormSessionStore) Migrate() error {
	if err := s.db.AutoMigrate(&Session{}); err != nil {
		return fmt.Errorf("migrate %s: %w", SessionTable, err)
	}
	return nil
}

// Begin records a newly started session.
func (s *GormSessionStore) Begin(ctx context.Context, id string, startedAt time.Time) error {
	rec := &Session{ID: id, StartedAt: startedAt}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("record session %s: %w", id, err)
	}
	return nil
}

// Finish marks a session stopped with its final screenshot count.
func (s *GormSessionStore) Finish(ctx context.Context, id string, stoppedAt time.Time, count int) error {
	err := s.db.WithContext(ctx).
		Model(&Session{}).
		Where("id = ?", id).
		Updates(map[string]any{"stopped_at": stoppedAt, "screenshot_count": count}).Error
	if err != nil {
		return fmt.Errorf("finish session %s: %w", id, err)
	}
	return nil
}

// Recent returns up to limit sessions, newest first.
func (s *GormSessionStore) Recent(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []Session
	if err := s.db.WithContext(ctx).Order("started_at desc").Limit(limit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}
