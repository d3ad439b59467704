package service

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"turnusplan/backend/internal/model"
)

const icsMaxFileSize = 5 * 1024 * 1024 // 5MB

// ParseAbsenceCalendar parses iCalendar content into absence periods.
// Each VEVENT becomes one period: DTSTART/DTEND truncated to whole days,
// SUMMARY carried over as the reason. Events without a parsable start are
// skipped; a missing end defaults to the start day.
func ParseAbsenceCalendar(data []byte) ([]model.AbsencePeriod, error) {
	if len(data) > icsMaxFileSize {
		return nil, fmt.Errorf("calendar file exceeds %d bytes", icsMaxFileSize)
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	var periods []model.AbsencePeriod
	for _, evt := range cal.Events() {
		start, err := evt.GetStartAt()
		if err != nil {
			continue
		}

		end, err := evt.GetEndAt()
		if err != nil {
			end = start
		}

		reason := ""
		if summary := evt.GetProperty(ics.ComponentPropertySummary); summary != nil {
			reason = strings.TrimSpace(summary.Value)
		}

		periods = append(periods, model.AbsencePeriod{
			Start:  truncateToDay(start),
			End:    truncateToDay(end),
			Reason: reason,
		})
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Start.Before(periods[j].Start)
	})

	return periods, nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
