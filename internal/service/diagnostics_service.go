package service

import (
	"context"

	"go.uber.org/zap"

	"turnusplan/backend/internal/dto"
	"turnusplan/backend/internal/repository"
	"turnusplan/backend/pkg/redis"
)

const diagnosticsTableLimit = 10

// DiagnosticsService reports store connectivity for the /test endpoint.
// Every store error is contained in the payload; the check itself never fails.
type DiagnosticsService interface {
	Check(ctx context.Context) *dto.DiagnosticsResponse
}

type diagnosticsService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewDiagnosticsService creates the DiagnosticsService.
func NewDiagnosticsService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) DiagnosticsService {
	return &diagnosticsService{repo: repo, rdb: rdb, logger: logger}
}

func (s *diagnosticsService) Check(ctx context.Context) *dto.DiagnosticsResponse {
	resp := &dto.DiagnosticsResponse{
		Backend: "running",
	}

	if err := s.repo.Diagnostics.Ping(ctx); err != nil {
		s.logger.Warn("diagnostics: database ping failed", zap.Error(err))
		resp.Database = dto.StoreStatus{Status: "error", Error: err.Error()}
	} else {
		resp.Database = dto.StoreStatus{Status: "connected"}
		tables, err := s.repo.Diagnostics.ListTables(ctx, diagnosticsTableLimit)
		if err != nil {
			s.logger.Warn("diagnostics: list tables failed", zap.Error(err))
			resp.Database.Error = err.Error()
		} else {
			resp.Database.Tables = tables
		}
	}

	if s.rdb == nil {
		resp.Redis = dto.StoreStatus{Status: "not_configured"}
	} else if err := s.rdb.Ping(ctx); err != nil {
		s.logger.Warn("diagnostics: redis ping failed", zap.Error(err))
		resp.Redis = dto.StoreStatus{Status: "error", Error: err.Error()}
	} else {
		resp.Redis = dto.StoreStatus{Status: "connected"}
	}

	return resp
}
