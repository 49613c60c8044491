package calendar

import (
	"context"
	"time"

	"github.com/hireloop/scheduler/internal/schedule"
)

// EventRequest carries everything needed to put an interview on the
// organizer's calendar.
type EventRequest struct {
	Title       string
	Description string

	Start    time.Time
	End      time.Time
	Timezone string

	// Attendees are invitee emails, organizer included.
	Attendees []string
}

type CreatedEvent struct {
	EventID  string
	MeetLink string
}

// Provider is the capability surface of one calendar backend. The organizer
// argument names the connected account the call is performed as.
type Provider interface {
	Name() string

	FreeBusy(ctx context.Context, emails []string, from, to time.Time) (map[string][]schedule.BusyWindow, error)

	CreateEvent(ctx context.Context, organizer string, req EventRequest) (*CreatedEvent, error)
	PatchEventTime(ctx context.Context, organizer, eventID string, start, end time.Time, timezone string) error
	DeleteEvent(ctx context.Context, organizer, eventID string, notifyAttendees bool) error
}

var _ schedule.BusySource = (Provider)(nil)
