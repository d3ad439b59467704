package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"turnusplan/backend/internal/model"
	"turnusplan/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // keyed by username and by user_id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Username
	}
	m.users[user.Username] = user
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.Username] = user
	m.users[user.UserID] = user
	return nil
}

// ── Mock MunicipalityRepository ──

type mockMunicipalityRepo struct {
	municipalities map[string]*model.Municipality
	order          []string
	idCounter      int
}

func newMockMunicipalityRepo() *mockMunicipalityRepo {
	return &mockMunicipalityRepo{municipalities: make(map[string]*model.Municipality)}
}

func (m *mockMunicipalityRepo) Create(_ context.Context, mun *model.Municipality) error {
	if mun.MunicipalityID == "" {
		m.idCounter++
		mun.MunicipalityID = fmt.Sprintf("mun-%d", m.idCounter)
	}
	m.municipalities[mun.MunicipalityID] = mun
	m.order = append(m.order, mun.MunicipalityID)
	return nil
}

func (m *mockMunicipalityRepo) GetByID(_ context.Context, id string) (*model.Municipality, error) {
	if mun, ok := m.municipalities[id]; ok {
		return mun, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMunicipalityRepo) List(_ context.Context) ([]model.Municipality, error) {
	result := make([]model.Municipality, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, *m.municipalities[id])
	}
	return result, nil
}

// ── Mock DepartmentRepository ──

type mockDepartmentRepo struct {
	departments map[string]*model.Department
	order       []string
	idCounter   int
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[string]*model.Department)}
}

func (m *mockDepartmentRepo) Create(_ context.Context, dept *model.Department) error {
	if dept.DepartmentID == "" {
		m.idCounter++
		dept.DepartmentID = fmt.Sprintf("dept-%d", m.idCounter)
	}
	m.departments[dept.DepartmentID] = dept
	m.order = append(m.order, dept.DepartmentID)
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id string) (*model.Department, error) {
	if d, ok := m.departments[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) List(_ context.Context, municipalityID string) ([]model.Department, error) {
	var result []model.Department
	for _, id := range m.order {
		d := m.departments[id]
		if municipalityID != "" && d.MunicipalityID != municipalityID {
			continue
		}
		result = append(result, *d)
	}
	return result, nil
}

// ── Mock EmployeeRepository ──

// employees kept as a slice so ListByDepartment preserves creation order,
// matching the GORM implementation's ordering guarantee.
type mockEmployeeRepo struct {
	employees []*model.Employee
	idCounter int
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{}
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *model.Employee) error {
	if emp.EmployeeID == "" {
		m.idCounter++
		emp.EmployeeID = fmt.Sprintf("emp-%d", m.idCounter)
	}
	m.employees = append(m.employees, emp)
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.EmployeeID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) ListByDepartment(_ context.Context, departmentID string) ([]model.Employee, error) {
	var result []model.Employee
	for _, e := range m.employees {
		if e.DepartmentID == departmentID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, emp *model.Employee) error {
	for i, e := range m.employees {
		if e.EmployeeID == emp.EmployeeID {
			m.employees[i] = emp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	schedules map[string]*model.Schedule
	idCounter int
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{schedules: make(map[string]*model.Schedule)}
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *model.Schedule) error {
	if schedule.ScheduleID == "" {
		m.idCounter++
		schedule.ScheduleID = fmt.Sprintf("sched-%d", m.idCounter)
	}
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = time.Now()
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.Schedule, error) {
	if s, ok := m.schedules[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) GetActiveByMonth(_ context.Context, departmentID string, year, month int) (*model.Schedule, error) {
	for _, s := range m.schedules {
		if s.DepartmentID == departmentID && s.Year == year && s.Month == month &&
			s.Status == model.ScheduleStatusActive {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) Update(_ context.Context, schedule *model.Schedule) error {
	if _, ok := m.schedules[schedule.ScheduleID]; !ok {
		return gorm.ErrRecordNotFound
	}
	schedule.UpdatedAt = time.Now()
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

// countByStatus tallies stored schedules per status, for assertions.
func (m *mockScheduleRepo) countByStatus(status string) int {
	n := 0
	for _, s := range m.schedules {
		if s.Status == status {
			n++
		}
	}
	return n
}

// ── Mock DiagnosticsRepository ──

type mockDiagnosticsRepo struct {
	pingErr error
	tables  []string
}

func newMockDiagnosticsRepo() *mockDiagnosticsRepo {
	return &mockDiagnosticsRepo{tables: []string{"users", "municipalities", "departments", "employees", "schedules"}}
}

func (m *mockDiagnosticsRepo) Ping(_ context.Context) error {
	return m.pingErr
}

func (m *mockDiagnosticsRepo) ListTables(_ context.Context, limit int) ([]string, error) {
	if limit < len(m.tables) {
		return m.tables[:limit], nil
	}
	return m.tables, nil
}

// ── Test Helpers ──

type mockRepos struct {
	user         *mockUserRepo
	municipality *mockMunicipalityRepo
	department   *mockDepartmentRepo
	employee     *mockEmployeeRepo
	schedule     *mockScheduleRepo
	diagnostics  *mockDiagnosticsRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	mocks := &mockRepos{
		user:         newMockUserRepo(),
		municipality: newMockMunicipalityRepo(),
		department:   newMockDepartmentRepo(),
		employee:     newMockEmployeeRepo(),
		schedule:     newMockScheduleRepo(),
		diagnostics:  newMockDiagnosticsRepo(),
	}
	repo := &repository.Repository{
		User:         mocks.user,
		Municipality: mocks.municipality,
		Department:   mocks.department,
		Employee:     mocks.employee,
		Schedule:     mocks.schedule,
		Diagnostics:  mocks.diagnostics,
	}
	return repo, mocks
}

func seedDepartment(mocks *mockRepos, id, name string) *model.Department {
	dept := &model.Department{DepartmentID: id, MunicipalityID: "mun-1", Name: name}
	mocks.department.departments[id] = dept
	mocks.department.order = append(mocks.department.order, id)
	return dept
}

func seedEmployee(mocks *mockRepos, id, departmentID, name string, rules model.HardRules) *model.Employee {
	emp := &model.Employee{
		EmployeeID:         id,
		DepartmentID:       departmentID,
		Name:               name,
		ContractPercentage: 100,
		HardRules:          rules,
		SoftPreferences:    model.SoftPreferences{},
		Absences:           model.AbsencePeriods{},
	}
	mocks.employee.employees = append(mocks.employee.employees, emp)
	return emp
}
