package api

import (
	"context"
	"time"

	"github.com/hireloop/scheduler/internal/booking"
	"github.com/hireloop/scheduler/internal/interviews"
	"github.com/hireloop/scheduler/internal/schedule"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type availabilityEngine interface {
	Available(ctx context.Context, cfg schedule.AvailabilityConfig, email string, from, to time.Time) ([]schedule.TimeSlot, error)
	PanelAvailable(ctx context.Context, cfg schedule.AvailabilityConfig, emails []string, from, to time.Time) ([]schedule.TimeSlot, error)
}

type orchestrator interface {
	Book(ctx context.Context, req booking.BookRequest) (*interviews.Interview, error)
	Reschedule(ctx context.Context, id string, start time.Time, cfg schedule.AvailabilityConfig) (*interviews.Interview, error)
	Cancel(ctx context.Context, id string) error
}
