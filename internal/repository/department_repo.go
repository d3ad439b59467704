package repository

import (
	"context"

	"gorm.io/gorm"

	"turnusplan/backend/internal/model"
)

// DepartmentRepository is the departments data access interface.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *model.Department) error
	GetByID(ctx context.Context, id string) (*model.Department, error)
	List(ctx context.Context, municipalityID string) ([]model.Department, error)
}

type departmentRepo struct {
	db *gorm.DB
}

// NewDepartmentRepo creates the GORM-backed DepartmentRepository.
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) Create(ctx context.Context, dept *model.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departmentRepo) GetByID(ctx context.Context, id string) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).
		Where("department_id = ?", id).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) List(ctx context.Context, municipalityID string) ([]model.Department, error) {
	var depts []model.Department
	q := r.db.WithContext(ctx).Order("name ASC")
	if municipalityID != "" {
		q = q.Where("municipality_id = ?", municipalityID)
	}
	err := q.Find(&depts).Error
	return depts, err
}
