package service

import (
	"go.uber.org/zap"

	"turnusplan/backend/internal/repository"
	"turnusplan/backend/pkg/jwt"
	"turnusplan/backend/pkg/redis"
)

// Service aggregates every service interface.
type Service struct {
	Auth        AuthService
	Org         OrgService
	Employee    EmployeeService
	Interpret   InterpretService
	Schedule    ScheduleService
	Export      ExportService
	Diagnostics DiagnosticsService
}

// NewService wires the service implementations.
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	interpret := NewInterpretService()
	return &Service{
		Auth:        NewAuthService(repo, jwtMgr, rdb, logger),
		Org:         NewOrgService(repo, logger),
		Employee:    NewEmployeeService(repo, interpret, logger),
		Interpret:   interpret,
		Schedule:    NewScheduleService(repo, logger),
		Export:      NewExportService(repo, logger),
		Diagnostics: NewDiagnosticsService(repo, rdb, logger),
	}
}
