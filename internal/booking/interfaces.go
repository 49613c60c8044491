package booking

import (
	"context"
	"time"

	"github.com/hireloop/scheduler/internal/calendar"
	"github.com/hireloop/scheduler/internal/interviews"
	"github.com/hireloop/scheduler/internal/schedule"
)

//go:generate mockgen -source=interfaces.go -destination=mock_test.go -package=booking

// Validator re-checks one interval against fresh busy data right before
// commit. Satisfied by *schedule.Engine.
type Validator interface {
	Validate(ctx context.Context, cfg schedule.AvailabilityConfig, email string, start, end time.Time, noticeHours int) (bool, error)
}

type calendarProvider interface {
	calendar.Provider
}

type slotValidator interface {
	Validator
}

type interviewsRepo interface {
	interviews.Repo
}

type accountsRepo interface {
	interviews.Accounts
}
