package repository

import "gorm.io/gorm"

// Repository aggregates every repository interface.
type Repository struct {
	User         UserRepository
	Municipality MunicipalityRepository
	Department   DepartmentRepository
	Employee     EmployeeRepository
	Schedule     ScheduleRepository
	Diagnostics  DiagnosticsRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Municipality: NewMunicipalityRepo(db),
		Department:   NewDepartmentRepo(db),
		Employee:     NewEmployeeRepo(db),
		Schedule:     NewScheduleRepo(db),
		Diagnostics:  NewDiagnosticsRepo(db),
	}
}
