package schedule

import (
	"time"
)

// Slots expands cfg into the bookable grid between from and to inclusive,
// dropping every candidate that starts before now + minimum notice or that
// collides with a buffered busy window. The result is time-ordered and the
// function is deterministic for fixed busy data and fixed now.
func Slots(cfg AvailabilityConfig, busy []BusyWindow, from, to time.Time, now time.Time) ([]TimeSlot, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Hours.Location()
	if err != nil {
		return nil, err
	}

	var (
		duration = cfg.Duration()
		interval = cfg.Interval()
		notice   = now.Add(time.Duration(cfg.MinNoticeHours) * time.Hour)
	)

	var slots []TimeSlot

	day := midnight(from.In(loc))
	last := midnight(to.In(loc))

	for ; !day.After(last); day = day.AddDate(0, 0, 1) {
		if !cfg.Hours.activeOn(day.Weekday()) {
			continue
		}

		// wall-clock boundaries: adding hours to midnight drifts by the
		// offset change on DST-transition days
		y, m, d := day.Date()
		dayStart := time.Date(y, m, d, cfg.Hours.StartHour, 0, 0, 0, loc)
		dayEnd := time.Date(y, m, d, cfg.Hours.EndHour, 0, 0, 0, loc)

		for start := dayStart; !start.Add(duration).After(dayEnd); start = start.Add(interval) {
			end := start.Add(duration)

			if start.Before(notice) {
				continue
			}

			if conflicts(busy, start, end, cfg.BufferBeforeMin, cfg.BufferAfterMin) {
				continue
			}

			slots = append(slots, TimeSlot{Start: start, End: end})
		}
	}

	return slots, nil
}

// conflicts reports whether [start, end) overlaps any busy window expanded
// by the buffers. Buffers are applied to the busy window, not the candidate.
func conflicts(busy []BusyWindow, start, end time.Time, beforeMin, afterMin int) bool {
	for _, w := range busy {
		bufferedStart := w.Start.Add(-time.Duration(beforeMin) * time.Minute)
		bufferedEnd := w.End.Add(time.Duration(afterMin) * time.Minute)

		if start.Before(bufferedEnd) && end.After(bufferedStart) {
			return true
		}
	}
	return false
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
