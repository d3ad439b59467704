package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"turnusplan/backend/internal/repository"
)

// ── export module errors ──

var (
	ErrExportNoSchedule   = errors.New("no schedule stored for this month")
	ErrExportGenerateFail = errors.New("generate excel file failed")
)

// ExportService renders stored rosters as downloadable files.
//
// The Excel layout is one row per employee and one column per day of the
// month, with shift codes in the cells. The buffer is returned to the
// handler, which sets the download headers.
type ExportService interface {
	// ExportRoster renders the active schedule for a department and month
	// as an .xlsx workbook. Returns the content and a suggested filename.
	ExportRoster(ctx context.Context, departmentID string, year, month int) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportRoster(ctx context.Context, departmentID string, year, month int) (*bytes.Buffer, string, error) {
	schedule, err := s.repo.Schedule.GetActiveByMonth(ctx, departmentID, year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrExportNoSchedule
		}
		s.logger.Error("load schedule failed", zap.Error(err))
		return nil, "", err
	}

	department, err := s.repo.Department.GetByID(ctx, departmentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("load department failed", zap.Error(err))
		return nil, "", err
	}
	departmentName := departmentID
	if department != nil {
		departmentName = department.Name
	}

	employees, err := s.repo.Employee.ListByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("load employees failed", zap.Error(err))
		return nil, "", err
	}
	nameByID := make(map[string]string, len(employees))
	for i := range employees {
		nameByID[employees[i].EmployeeID] = employees[i].Name
	}

	// Index assignments: employee → date → shift, preserving first-seen
	// employee order (generation order).
	shiftByEmployee := make(map[string]map[string]string)
	var employeeOrder []string
	for _, a := range schedule.Assignments {
		if _, ok := shiftByEmployee[a.EmployeeID]; !ok {
			shiftByEmployee[a.EmployeeID] = make(map[string]string)
			employeeOrder = append(employeeOrder, a.EmployeeID)
		}
		shiftByEmployee[a.EmployeeID][a.Date] = string(a.Shift)
	}

	days := daysInMonth(year, month)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Roster"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// title row
	title := fmt.Sprintf("%s %04d-%02d", departmentName, year, month)
	f.SetCellValue(sheetName, "A1", title)
	lastCol, _ := excelize.ColumnNumberToName(1 + days)
	f.MergeCell(sheetName, "A1", lastCol+"1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// header row: employee name column then one column per day
	f.SetColWidth(sheetName, "A", "A", 24)
	f.SetCellValue(sheetName, "A2", "Employee")
	for day := 1; day <= days; day++ {
		col, _ := excelize.ColumnNumberToName(1 + day)
		f.SetColWidth(sheetName, col, col, 5)
		f.SetCellValue(sheetName, col+"2", day)
	}
	f.SetCellStyle(sheetName, "A2", lastCol+"2", headerStyle)

	// one row per employee
	row := 3
	for _, employeeID := range employeeOrder {
		name := nameByID[employeeID]
		if name == "" {
			name = employeeID
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), name)

		for day := 1; day <= days; day++ {
			date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			col, _ := excelize.ColumnNumberToName(1 + day)
			if shift, ok := shiftByEmployee[employeeID][date]; ok {
				f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), shift)
			} else {
				f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), "-")
			}
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("turnus_%s_%04d-%02d.xlsx", departmentName, year, month)
	return buf, filename, nil
}
