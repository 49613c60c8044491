package schedule

import (
	"time"

	"github.com/hireloop/scheduler/pkg/errors"
)

// WorkingHours bounds the bookable part of a day in the owner's timezone.
// EndHour is exclusive.
type WorkingHours struct {
	StartHour int            `yaml:"start_hour" json:"start_hour"`
	EndHour   int            `yaml:"end_hour"   json:"end_hour"`
	Days      []time.Weekday `yaml:"days"       json:"days"`
	Timezone  string         `yaml:"timezone"   json:"timezone"`
}

func (h WorkingHours) Validate() error {
	if h.StartHour < 0 || h.EndHour > 24 || h.StartHour >= h.EndHour {
		return errors.Errorf("bad working hours [%d, %d)", h.StartHour, h.EndHour)
	}
	for _, d := range h.Days {
		if d < time.Sunday || d > time.Saturday {
			return errors.Errorf("bad weekday %d", d)
		}
	}
	return nil
}

func (h WorkingHours) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(h.Timezone)
	return loc, errors.WrapFailf(err, "load timezone %q", h.Timezone)
}

func (h WorkingHours) activeOn(day time.Weekday) bool {
	for _, d := range h.Days {
		if d == day {
			return true
		}
	}
	return false
}

// AvailabilityConfig describes one slot grid: spacing between candidate
// starts, meeting length, padding around existing commitments and the
// shortest allowed lead time.
type AvailabilityConfig struct {
	Hours WorkingHours `yaml:"hours" json:"hours"`

	SlotIntervalMin int `yaml:"slot_interval_min" json:"slot_interval_min"`
	DurationMin     int `yaml:"duration_min"      json:"duration_min"`
	BufferBeforeMin int `yaml:"buffer_before_min" json:"buffer_before_min"`
	BufferAfterMin  int `yaml:"buffer_after_min"  json:"buffer_after_min"`

	MinNoticeHours int `yaml:"min_notice_hours" json:"min_notice_hours"`

	// RescheduleNoticeHours is the relaxed lead time applied when moving an
	// already booked interview. Same-day changes are common, so it is much
	// shorter than MinNoticeHours.
	RescheduleNoticeHours int `yaml:"reschedule_notice_hours" json:"reschedule_notice_hours"`
}

func (c AvailabilityConfig) Validate() error {
	err := c.Hours.Validate()
	if err != nil {
		return err
	}

	if c.DurationMin <= 0 {
		return errors.Error("meeting duration must be positive")
	}

	if c.SlotIntervalMin < 0 || c.BufferBeforeMin < 0 || c.BufferAfterMin < 0 ||
		c.MinNoticeHours < 0 || c.RescheduleNoticeHours < 0 {
		return errors.Error("negative availability parameter")
	}

	return nil
}

func (c AvailabilityConfig) Duration() time.Duration {
	return time.Duration(c.DurationMin) * time.Minute
}

func (c AvailabilityConfig) Interval() time.Duration {
	if c.SlotIntervalMin == 0 {
		return c.Duration()
	}
	return time.Duration(c.SlotIntervalMin) * time.Minute
}

// BusyWindow is a commitment on a participant's calendar. It may come from
// any event, not only interviews booked here.
type BusyWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TimeSlot is a bookable interval, End = Start + meeting duration.
// Slots are computed on demand and never persisted until booked.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (s TimeSlot) key() [2]int64 {
	return [2]int64{s.Start.UnixMilli(), s.End.UnixMilli()}
}
