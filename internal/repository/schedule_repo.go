package repository

import (
	"context"

	"gorm.io/gorm"

	"turnusplan/backend/internal/model"
	pkgerrors "turnusplan/backend/pkg/errors"
)

// ScheduleRepository is the schedules data access interface.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	GetByID(ctx context.Context, id string) (*model.Schedule, error)
	// GetActiveByMonth returns the active schedule for a department and month.
	GetActiveByMonth(ctx context.Context, departmentID string, year, month int) (*model.Schedule, error)
	// Update writes status/notes/assignments under an optimistic version check.
	Update(ctx context.Context, schedule *model.Schedule) error
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo creates the GORM-backed ScheduleRepository.
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) GetActiveByMonth(ctx context.Context, departmentID string, year, month int) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.WithContext(ctx).
		Where("department_id = ? AND year = ? AND month = ? AND status = ?",
			departmentID, year, month, model.ScheduleStatusActive).
		Order("created_at DESC").
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) Update(ctx context.Context, schedule *model.Schedule) error {
	oldVersion := schedule.Version
	result := r.db.WithContext(ctx).
		Model(schedule).
		Where("schedule_id = ? AND version = ?", schedule.ScheduleID, oldVersion).
		Updates(map[string]interface{}{
			"status":      schedule.Status,
			"assignments": schedule.Assignments,
			"notes":       schedule.Notes,
			"updated_by":  schedule.UpdatedBy,
			"version":     oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	schedule.Version = oldVersion + 1
	return nil
}
