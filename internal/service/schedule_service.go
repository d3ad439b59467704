package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"turnusplan/backend/internal/dto"
	"turnusplan/backend/internal/model"
	"turnusplan/backend/internal/repository"
)

// ── schedule module errors ──

var (
	ErrNoEmployees      = errors.New("no employees in department")
	ErrScheduleNotFound = errors.New("schedule not found")
)

// ScheduleService generates and retrieves monthly rosters.
type ScheduleService interface {
	// Generate builds, persists and returns a month's roster. An existing
	// active schedule for the same department and month is superseded.
	Generate(ctx context.Context, req *dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error)
	// Get returns the active stored schedule for a department and month.
	Get(ctx context.Context, departmentID string, year, month int) (*dto.ScheduleResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService creates the ScheduleService.
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

func (s *scheduleService) Generate(ctx context.Context, req *dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	if _, err := s.repo.Department.GetByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("load department failed", zap.Error(err))
		return nil, err
	}

	employees, err := s.repo.Employee.ListByDepartment(ctx, req.DepartmentID)
	if err != nil {
		s.logger.Error("load employees failed", zap.Error(err))
		return nil, err
	}
	if len(employees) == 0 {
		return nil, ErrNoEmployees
	}

	assignments := BuildRoster(employees, req.Year, req.Month)

	// Supersede an existing active schedule for this month instead of
	// silently duplicating it.
	existing, err := s.repo.Schedule.GetActiveByMonth(ctx, req.DepartmentID, req.Year, req.Month)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("load existing schedule failed", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		existing.Status = model.ScheduleStatusSuperseded
		if err := s.repo.Schedule.Update(ctx, existing); err != nil {
			s.logger.Error("supersede schedule failed",
				zap.String("schedule_id", existing.ScheduleID), zap.Error(err))
			return nil, err
		}
	}

	schedule := &model.Schedule{
		DepartmentID: req.DepartmentID,
		Year:         req.Year,
		Month:        req.Month,
		Status:       model.ScheduleStatusActive,
		Assignments:  assignments,
		Version:      1,
	}
	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		s.logger.Error("persist schedule failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("schedule generated",
		zap.String("department_id", req.DepartmentID),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("assignments", len(assignments)),
	)

	return &dto.GenerateScheduleResponse{
		ID:          schedule.ScheduleID,
		Assignments: assignments,
	}, nil
}

func (s *scheduleService) Get(ctx context.Context, departmentID string, year, month int) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.GetActiveByMonth(ctx, departmentID, year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("load schedule failed", zap.Error(err))
		return nil, err
	}

	return &dto.ScheduleResponse{
		ID:           schedule.ScheduleID,
		DepartmentID: schedule.DepartmentID,
		Year:         schedule.Year,
		Month:        schedule.Month,
		Status:       schedule.Status,
		Assignments:  schedule.Assignments,
		Notes:        schedule.Notes,
		CreatedAt:    schedule.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}, nil
}
