package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"turnusplan/backend/internal/model"
)

func setupExportService() (ExportService, *mockRepos) {
	repo, mocks := newMockRepository()
	return NewExportService(repo, zap.NewNop()), mocks
}

func seedActiveSchedule(mocks *mockRepos, departmentID string, year, month int, employees []model.Employee) {
	mocks.schedule.schedules["sched-export"] = &model.Schedule{
		ScheduleID:   "sched-export",
		DepartmentID: departmentID,
		Year:         year,
		Month:        month,
		Status:       model.ScheduleStatusActive,
		Assignments:  BuildRoster(employees, year, month),
		Version:      1,
	}
}

func TestExportRoster_Success(t *testing.T) {
	svc, mocks := setupExportService()
	seedDepartment(mocks, "dept-1", "Kirurgisk")
	emp1 := seedEmployee(mocks, "emp-1", "dept-1", "Kari Nordmann", model.HardRules{})
	emp2 := seedEmployee(mocks, "emp-2", "dept-1", "Ola Hansen", model.HardRules{})
	seedActiveSchedule(mocks, "dept-1", 2025, 1, []model.Employee{*emp1, *emp2})

	buf, filename, err := svc.ExportRoster(context.Background(), "dept-1", 2025, 1)
	if err != nil {
		t.Fatalf("ExportRoster should succeed: %v", err)
	}
	if filename != "turnus_Kirurgisk_2025-01.xlsx" {
		t.Errorf("unexpected filename: %s", filename)
	}
	if buf.Len() == 0 {
		t.Fatal("workbook buffer should not be empty")
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("exported workbook should open: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Roster", "A2"); v != "Employee" {
		t.Errorf("expected header Employee in A2, got %q", v)
	}
	if v, _ := f.GetCellValue("Roster", "B2"); v != "1" {
		t.Errorf("expected day 1 in B2, got %q", v)
	}
	if v, _ := f.GetCellValue("Roster", "A3"); v != "Kari Nordmann" {
		t.Errorf("expected first employee row, got %q", v)
	}
	// position 0 on day 1 of the rotation is a day shift
	if v, _ := f.GetCellValue("Roster", "B3"); v != "D" {
		t.Errorf("expected shift D in B3, got %q", v)
	}
	// position 1 rotates one step: evening on day 1
	if v, _ := f.GetCellValue("Roster", "B4"); v != "E" {
		t.Errorf("expected shift E in B4, got %q", v)
	}
}

func TestExportRoster_NoSchedule(t *testing.T) {
	svc, mocks := setupExportService()
	seedDepartment(mocks, "dept-1", "Kirurgisk")

	_, _, err := svc.ExportRoster(context.Background(), "dept-1", 2025, 1)
	if !errors.Is(err, ErrExportNoSchedule) {
		t.Errorf("expected ErrExportNoSchedule, got: %v", err)
	}
}

func TestExportRoster_UnknownDepartmentNameFallsBack(t *testing.T) {
	svc, mocks := setupExportService()
	emp := seedEmployee(mocks, "emp-1", "dept-x", "Kari Nordmann", model.HardRules{})
	seedActiveSchedule(mocks, "dept-x", 2025, 2, []model.Employee{*emp})

	_, filename, err := svc.ExportRoster(context.Background(), "dept-x", 2025, 2)
	if err != nil {
		t.Fatalf("ExportRoster should succeed without a department record: %v", err)
	}
	if filename != "turnus_dept-x_2025-02.xlsx" {
		t.Errorf("expected department id fallback in filename, got %s", filename)
	}
}
