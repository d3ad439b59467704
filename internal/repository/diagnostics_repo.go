package repository

import (
	"context"

	"gorm.io/gorm"
)

// DiagnosticsRepository exposes store connectivity checks for the /test endpoint.
type DiagnosticsRepository interface {
	Ping(ctx context.Context) error
	// ListTables returns up to limit public table names.
	ListTables(ctx context.Context, limit int) ([]string, error)
}

type diagnosticsRepo struct {
	db *gorm.DB
}

// NewDiagnosticsRepo creates the GORM-backed DiagnosticsRepository.
func NewDiagnosticsRepo(db *gorm.DB) DiagnosticsRepository {
	return &diagnosticsRepo{db: db}
}

func (r *diagnosticsRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *diagnosticsRepo) ListTables(ctx context.Context, limit int) ([]string, error) {
	var tables []string
	err := r.db.WithContext(ctx).
		Raw("SELECT tablename FROM pg_catalog.pg_tables WHERE schemaname = 'public' ORDER BY tablename LIMIT ?", limit).
		Scan(&tables).Error
	return tables, err
}
