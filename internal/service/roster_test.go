package service

import (
	"fmt"
	"reflect"
	"testing"

	"turnusplan/backend/internal/model"
)

func rosterEmployees(rules ...model.HardRules) []model.Employee {
	emps := make([]model.Employee, 0, len(rules))
	for i, r := range rules {
		emps = append(emps, model.Employee{
			EmployeeID:   fmt.Sprintf("emp-%d", i+1),
			DepartmentID: "dept-1",
			Name:         fmt.Sprintf("Employee %d", i+1),
			HardRules:    r,
		})
	}
	return emps
}

func shiftOn(t *testing.T, assignments []model.DailyAssignment, date, employeeID string) model.Shift {
	t.Helper()
	for _, a := range assignments {
		if a.Date == date && a.EmployeeID == employeeID {
			return a.Shift
		}
	}
	t.Fatalf("no assignment for %s on %s", employeeID, date)
	return ""
}

func TestBuildRoster_MonthLengths(t *testing.T) {
	tests := []struct {
		year, month, days int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29}, // leap year
		{2025, 4, 30},
		{2024, 12, 31},
	}

	emps := rosterEmployees(model.HardRules{}, model.HardRules{})
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-%02d", tt.year, tt.month), func(t *testing.T) {
			got := BuildRoster(emps, tt.year, tt.month)
			want := tt.days * len(emps)
			if len(got) != want {
				t.Errorf("expected %d assignments, got %d", want, len(got))
			}
		})
	}
}

func TestBuildRoster_BaseRotation(t *testing.T) {
	emps := rosterEmployees(model.HardRules{})
	got := BuildRoster(emps, 2025, 1)

	// first seven days for list position 0: D E N D E N OFF
	want := []model.Shift{
		model.ShiftDay, model.ShiftEvening, model.ShiftNight,
		model.ShiftDay, model.ShiftEvening, model.ShiftNight,
		model.ShiftOff,
	}
	for i, w := range want {
		date := fmt.Sprintf("2025-01-%02d", i+1)
		if s := shiftOn(t, got, date, "emp-1"); s != w {
			t.Errorf("%s: expected %s, got %s", date, w, s)
		}
	}
}

func TestBuildRoster_RestDayRotatesWithPosition(t *testing.T) {
	emps := rosterEmployees(model.HardRules{}, model.HardRules{})
	got := BuildRoster(emps, 2025, 1)

	// position 1 rests one day earlier than position 0
	if s := shiftOn(t, got, "2025-01-06", "emp-2"); s != model.ShiftOff {
		t.Errorf("emp-2 on 2025-01-06: expected OFF, got %s", s)
	}
	if s := shiftOn(t, got, "2025-01-07", "emp-1"); s != model.ShiftOff {
		t.Errorf("emp-1 on 2025-01-07: expected OFF, got %s", s)
	}
	if s := shiftOn(t, got, "2025-01-07", "emp-2"); s == model.ShiftOff {
		t.Error("emp-2 on 2025-01-07: should not be OFF")
	}
}

func TestBuildRoster_NoNight(t *testing.T) {
	emps := rosterEmployees(model.HardRules{NoNight: true})
	got := BuildRoster(emps, 2025, 1)

	for _, a := range got {
		if a.Shift == model.ShiftNight {
			t.Errorf("%s: no_night employee assigned N", a.Date)
		}
	}

	// base rotation gives N on the third day; the override turns it into D
	if s := shiftOn(t, got, "2025-01-03", "emp-1"); s != model.ShiftDay {
		t.Errorf("2025-01-03: expected D, got %s", s)
	}
}

func TestBuildRoster_NoAfterSixteenFriday(t *testing.T) {
	emps := rosterEmployees(model.HardRules{NoAfterSixteenFriday: true})
	got := BuildRoster(emps, 2025, 1)

	// January 2025 Fridays: 3, 10, 17, 24, 31
	for _, day := range []int{3, 10, 17, 24, 31} {
		date := fmt.Sprintf("2025-01-%02d", day)
		s := shiftOn(t, got, date, "emp-1")
		if s == model.ShiftEvening || s == model.ShiftNight {
			t.Errorf("%s (Friday): expected no evening/night, got %s", date, s)
		}
	}

	// the rule only applies to Fridays: Thursday evening survives
	if s := shiftOn(t, got, "2025-01-02", "emp-1"); s != model.ShiftEvening {
		t.Errorf("2025-01-02: expected E, got %s", s)
	}
}

func TestBuildRoster_Deterministic(t *testing.T) {
	emps := rosterEmployees(
		model.HardRules{NoNight: true},
		model.HardRules{},
		model.HardRules{NoAfterSixteenFriday: true},
	)

	first := BuildRoster(emps, 2025, 3)
	second := BuildRoster(emps, 2025, 3)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical input produced different rosters")
	}
}

func TestBuildRoster_HolidayMarking(t *testing.T) {
	emps := rosterEmployees(model.HardRules{})

	jan := BuildRoster(emps, 2025, 1)
	for _, a := range jan {
		switch a.Date {
		case "2025-01-01":
			if !a.Holiday {
				t.Error("2025-01-01 should be marked as a holiday")
			}
		case "2025-01-02":
			if a.Holiday {
				t.Error("2025-01-02 should not be marked as a holiday")
			}
		}
	}

	may := BuildRoster(emps, 2025, 5)
	holidays := map[string]bool{}
	for _, a := range may {
		if a.Holiday {
			holidays[a.Date] = true
		}
	}
	if !holidays["2025-05-01"] || !holidays["2025-05-17"] {
		t.Errorf("expected 2025-05-01 and 2025-05-17 marked, got %v", holidays)
	}
	if len(holidays) != 2 {
		t.Errorf("expected exactly two May holidays, got %v", holidays)
	}
}
