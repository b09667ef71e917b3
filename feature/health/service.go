package health

import (
	"context"
	"fmt"
	"time"

	"simulation-server/core/database"
	"simulation-server/core/storage"
	"simulation-server/feature/capture"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusDisabled = "disabled"
)

// CheckReport is the outcome of one dependency check.
type CheckReport struct {
	Status         string   `json:"status"`
	MissingColumns []string `json:"missing_columns,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// Report is the readiness of the server's dependencies.
type Report struct {
	Status   string      `json:"status"`
	Database CheckReport `json:"database"`
	Storage  CheckReport `json:"storage"`
}

// Ready reports whether every enabled dependency is healthy.
func (r Report) Ready() bool {
	return r.Database.Status != StatusError && r.Storage.Status != StatusError
}

// Service checks the optional dependencies. Nil dependencies are reported as disabled.
type Service struct {
	db      *gorm.DB
	client  storage.Client
	bucket  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewService creates a new health service.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{db: db, client: client, bucket: bucket, timeout: 5 * time.Second, logger: logger}
}

// Check runs every readiness check.
func (s *Service) Check(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report := Report{
		Database: s.checkDatabase(ctx),
		Storage:  s.checkStorage(ctx),
	}
	report.Status = "ready"
	if !report.Ready() {
		report.Status = "degraded"
	}
	return report
}

func (s *Service) checkDatabase(ctx context.Context) CheckReport {
	if s.db == nil {
		return CheckReport{Status: StatusDisabled}
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return CheckReport{Status: StatusError, Error: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return CheckReport{Status: StatusError, Error: err.Error()}
	}

	missing, err := database.MissingColumns(s.db.WithContext(ctx), capture.SessionTable, capture.SessionColumns)
	if err != nil {
		return CheckReport{Status: StatusError, Error: err.Error()}
	}
	if len(missing) > 0 {
		return CheckReport{
			Status:         StatusError,
			MissingColumns: missing,
			Error:          fmt.Sprintf("table %s is missing columns", capture.SessionTable),
		}
	}
	return CheckReport{Status: StatusOK}
}

func (s *Service) checkStorage(ctx context.Context) CheckReport {
	if s.client == nil {
		return CheckReport{Status: StatusDisabled}
	}
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return CheckReport{Status: StatusError, Error: err.Error()}
	}
	if !exists {
		return CheckReport{Status: StatusError, Error: fmt.Sprintf("bucket %s does not exist", s.bucket)}
	}
	return CheckReport{Status: StatusOK}
}
