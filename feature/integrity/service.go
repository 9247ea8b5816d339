package integrity

import (
	"context"

	"grocery-tracker/core/persistence"
	"grocery-tracker/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Check statuses.
const (
	StatusOK      = "ok"
	StatusMissing = "missing"
	StatusFixed   = "fixed"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// CheckResult is the outcome of one backend check.
type CheckResult struct {
	Status  string   `json:"status"`
	Missing []string `json:"missing,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Report combines every backend check.
type Report struct {
	Backend  string      `json:"backend"`
	Database CheckResult `json:"database"`
	Storage  CheckResult `json:"storage"`
}

// Service checks that the persistence backends are usable.
type Service struct {
	backend string
	db      *gorm.DB
	client  storage.Client
	bucket  string
	region  string
	logger  *zap.Logger
}

// NewService creates a new integrity service. db and client may be nil
// when the matching backend is not in use; their checks are then skipped.
func NewService(backend string, db *gorm.DB, client storage.Client, bucket, region string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		backend: backend,
		db:      db,
		client:  client,
		bucket:  bucket,
		region:  region,
		logger:  logger,
	}
}

// CheckDatabase reports the columns the documents table lacks. With fix,
// the table is migrated first.
func (s *Service) CheckDatabase(fix bool) CheckResult {
	if s.db == nil {
		return CheckResult{Status: StatusSkipped}
	}
	store := persistence.NewDocumentStore(s.db)

	missing, err := store.MissingColumns()
	if err != nil {
		return CheckResult{Status: StatusError, Error: err.Error()}
	}
	if len(missing) == 0 {
		return CheckResult{Status: StatusOK}
	}
	if !fix {
		return CheckResult{Status: StatusMissing, Missing: missing}
	}

	s.logger.Info("Migrating documents table", zap.Strings("missing", missing))
	if err := store.Migrate(); err != nil {
		return CheckResult{Status: StatusError, Missing: missing, Error: err.Error()}
	}
	return CheckResult{Status: StatusFixed, Missing: missing}
}

// CheckStorage reports whether the bucket exists. With fix, a missing
// bucket is created.
func (s *Service) CheckStorage(ctx context.Context, fix bool) CheckResult {
	if s.client == nil {
		return CheckResult{Status: StatusSkipped}
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return CheckResult{Status: StatusError, Error: err.Error()}
	}
	if exists {
		return CheckResult{Status: StatusOK}
	}
	missing := []string{s.bucket}
	if !fix {
		return CheckResult{Status: StatusMissing, Missing: missing}
	}

	s.logger.Info("Creating bucket", zap.String("bucket", s.bucket))
	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return CheckResult{Status: StatusError, Missing: missing, Error: err.Error()}
	}
	return CheckResult{Status: StatusFixed, Missing: missing}
}

// CheckAll runs every check in parallel.
func (s *Service) CheckAll(ctx context.Context, fix bool) Report {
	report := Report{Backend: s.backend}

	var g errgroup.Group
	g.Go(func() error {
		report.Database = s.CheckDatabase(fix)
		return nil
	})
	g.Go(func() error {
		report.Storage = s.CheckStorage(ctx, fix)
		return nil
	})
	_ = g.Wait()

	return report
}

// Healthy reports whether no check failed or found something missing.
func (r Report) Healthy() bool {
	for _, c := range []CheckResult{r.Database, r.Storage} {
		if c.Status == StatusError || c.Status == StatusMissing {
			return false
		}
	}
	return true
}
