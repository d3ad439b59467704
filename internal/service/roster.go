package service

import (
	"time"

	"turnusplan/backend/internal/model"
)

// shiftRotation is the base three-shift cycle indexed by (dayOffset + employeeIndex) % 3.
var shiftRotation = [3]model.Shift{model.ShiftDay, model.ShiftEvening, model.ShiftNight}

// norwegianPublicHolidays holds fixed-date public holidays marked on rosters
// (month, day). Not exhaustive; movable feasts are not tracked.
var norwegianPublicHolidays = map[[2]int]bool{
	{1, 1}:   true, // 1. nyttårsdag
	{5, 1}:   true, // arbeidernes dag
	{5, 17}:  true, // grunnlovsdag
	{12, 25}: true, // 1. juledag
	{12, 26}: true, // 2. juledag
}

func isPublicHoliday(d time.Time) bool {
	return norwegianPublicHolidays[[2]int{int(d.Month()), d.Day()}]
}

// daysInMonth counts the calendar days of a month. Day 0 of the following
// month normalizes to the last day of the target month, which handles
// year rollover and leap years.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildRoster produces the full month's daily assignments for every employee.
// Deterministic: identical employee order and rules yield identical output.
//
// Per day offset i and employee list position idx:
//   - (i+idx)%7 == 6        → OFF (rest day rotates with list position)
//   - otherwise             → rotation[(i+idx)%3]
//   - no_night && N         → D
//   - no_after_16_friday on a Friday && shift is E or N → D
//
// The Friday override runs after the no_night override. Absences, soft
// preferences and contract percentage are not consulted.
func BuildRoster(employees []model.Employee, year, month int) []model.DailyAssignment {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := daysInMonth(year, month)

	assignments := make([]model.DailyAssignment, 0, days*len(employees))
	for dayOffset := 0; dayOffset < days; dayOffset++ {
		d := first.AddDate(0, 0, dayOffset)
		for idx := range employees {
			emp := &employees[idx]

			var shift model.Shift
			if (dayOffset+idx)%7 == 6 {
				shift = model.ShiftOff
			} else {
				shift = shiftRotation[(dayOffset+idx)%3]
				if emp.HardRules.NoNight && shift == model.ShiftNight {
					shift = model.ShiftDay
				}
				if emp.HardRules.NoAfterSixteenFriday && d.Weekday() == time.Friday &&
					(shift == model.ShiftEvening || shift == model.ShiftNight) {
					shift = model.ShiftDay
				}
			}

			assignments = append(assignments, model.DailyAssignment{
				Date:       d.Format("2006-01-02"),
				EmployeeID: emp.EmployeeID,
				Shift:      shift,
				Holiday:    isPublicHoliday(d),
			})
		}
	}

	return assignments
}
