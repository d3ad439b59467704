package repository

import (
	"context"

	"gorm.io/gorm"

	"turnusplan/backend/internal/model"
)

// EmployeeRepository is the employees data access interface.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	// ListByDepartment returns employees in stable creation order; the roster
	// rotation depends on this ordering being deterministic.
	ListByDepartment(ctx context.Context, departmentID string) ([]model.Employee, error)
	Update(ctx context.Context, emp *model.Employee) error
}

type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo creates the GORM-backed EmployeeRepository.
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) ListByDepartment(ctx context.Context, departmentID string) ([]model.Employee, error) {
	var emps []model.Employee
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("created_at ASC, employee_id ASC").
		Find(&emps).Error
	return emps, err
}

func (r *employeeRepo) Update(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}
