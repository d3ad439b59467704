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

// ── employee module errors ──

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidCalendar  = errors.New("invalid calendar file")
)

// EmployeeService manages employees and their scheduling preferences.
type EmployeeService interface {
	// Create stores an employee. When preference text is given, the keyword
	// interpreter seeds the hard/soft rule structures.
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.CreatedResponse, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]dto.EmployeeResponse, error)
	// UpdatePreferences re-runs the interpreter on new text and persists the result.
	UpdatePreferences(ctx context.Context, employeeID string, req *dto.UpdatePreferencesRequest) (*dto.EmployeeResponse, error)
	// ImportAbsences parses an iCalendar payload into absence periods and
	// replaces the employee's stored absences.
	ImportAbsences(ctx context.Context, employeeID string, icsData []byte) (*dto.ImportAbsencesResponse, error)
}

type employeeService struct {
	repo      *repository.Repository
	interpret InterpretService
	logger    *zap.Logger
}

// NewEmployeeService creates the EmployeeService.
func NewEmployeeService(repo *repository.Repository, interpret InterpretService, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, interpret: interpret, logger: logger}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.CreatedResponse, error) {
	if _, err := s.repo.Department.GetByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("load department failed", zap.Error(err))
		return nil, err
	}

	emp := &model.Employee{
		DepartmentID:       req.DepartmentID,
		Name:               req.Name,
		ContractPercentage: req.ContractPercentage,
		PreferencesText:    req.PreferencesText,
		SoftPreferences:    model.SoftPreferences{},
		Absences:           model.AbsencePeriods{},
	}
	if req.PreferencesText != "" {
		emp.HardRules, emp.SoftPreferences = s.interpret.InterpretRules(req.PreferencesText)
	}

	if err := s.repo.Employee.Create(ctx, emp); err != nil {
		s.logger.Error("create employee failed", zap.Error(err))
		return nil, err
	}

	return &dto.CreatedResponse{ID: emp.EmployeeID}, nil
}

func (s *employeeService) ListByDepartment(ctx context.Context, departmentID string) ([]dto.EmployeeResponse, error) {
	emps, err := s.repo.Employee.ListByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		result = append(result, toEmployeeResponse(&emps[i]))
	}
	return result, nil
}

func (s *employeeService) UpdatePreferences(ctx context.Context, employeeID string, req *dto.UpdatePreferencesRequest) (*dto.EmployeeResponse, error) {
	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	emp.PreferencesText = req.Text
	emp.HardRules, emp.SoftPreferences = s.interpret.InterpretRules(req.Text)

	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		s.logger.Error("update employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	resp := toEmployeeResponse(emp)
	return &resp, nil
}

func (s *employeeService) ImportAbsences(ctx context.Context, employeeID string, icsData []byte) (*dto.ImportAbsencesResponse, error) {
	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	periods, err := ParseAbsenceCalendar(icsData)
	if err != nil {
		s.logger.Warn("parse absence calendar failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, ErrInvalidCalendar
	}

	emp.Absences = periods
	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		s.logger.Error("update employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	return &dto.ImportAbsencesResponse{
		EmployeeID: emp.EmployeeID,
		Imported:   len(periods),
		Absences:   periods,
	}, nil
}

func (s *employeeService) getEmployee(ctx context.Context, employeeID string) (*model.Employee, error) {
	emp, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("load employee failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return emp, nil
}

func toEmployeeResponse(emp *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:                 emp.EmployeeID,
		DepartmentID:       emp.DepartmentID,
		Name:               emp.Name,
		ContractPercentage: emp.ContractPercentage,
		PreferencesText:    emp.PreferencesText,
		HardRules:          emp.HardRules,
		SoftPreferences:    emp.SoftPreferences,
		Absences:           emp.Absences,
	}
}
