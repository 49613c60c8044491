package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/hireloop/scheduler/pkg/errors"
	"github.com/hireloop/scheduler/pkg/logger"
)

// BusySource reports existing commitments per participant calendar email
// within a range. Implemented by the calendar provider.
type BusySource interface {
	FreeBusy(ctx context.Context, emails []string, from, to time.Time) (map[string][]BusyWindow, error)
}

// Engine glues the pure slot math to a BusySource.
type Engine struct {
	src BusySource
	log logger.Logger
	now func() time.Time
}

func NewEngine(src BusySource, log logger.Logger) *Engine {
	return &Engine{
		src: src,
		log: log.With("schedule"),
		now: time.Now,
	}
}

// Available computes the bookable slots of a single participant.
func (e *Engine) Available(ctx context.Context, cfg AvailabilityConfig, email string, from, to time.Time) ([]TimeSlot, error) {
	return e.available(ctx, cfg, email, from, to, e.now())
}

func (e *Engine) available(ctx context.Context, cfg AvailabilityConfig, email string, from, to time.Time, now time.Time) ([]TimeSlot, error) {
	busy, err := e.src.FreeBusy(ctx, []string{email}, from, to)
	if err != nil {
		return nil, errors.WrapFail(err, "fetch busy windows")
	}

	return Slots(cfg, busy[email], from, to, now)
}

// PanelAvailable computes the slots bookable by every listed participant.
//
// All participants share cfg, so their grids are identical and slots can be
// matched by exact start and end. The shared config is a precondition of
// that exact matching, which is why this method takes a single cfg instead
// of one per participant.
//
// Each participant's availability is fetched concurrently; this is an
// optimization only, the fetches are independent.
func (e *Engine) PanelAvailable(ctx context.Context, cfg AvailabilityConfig, emails []string, from, to time.Time) ([]TimeSlot, error) {
	switch len(emails) {
	case 0:
		return nil, nil
	case 1:
		return e.Available(ctx, cfg, emails[0], from, to)
	}

	var (
		wg    sync.WaitGroup
		lists = make([][]TimeSlot, len(emails))
		errs  = make([]error, len(emails))

		// a single notice threshold for the whole panel, so every
		// participant's grid is trimmed against the same clock reading
		now = e.now()
	)

	for i, email := range emails {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			lists[i], errs[i] = e.available(ctx, cfg, email, from, to, now)
		}(i, email)
	}
	wg.Wait()

	err := errors.Collapse(errs)
	if err != nil {
		return nil, errors.WrapFail(err, "fetch panel availability")
	}

	return intersect(lists), nil
}

// intersect keeps the slots of the first list present in every other list,
// matched by identical start and end.
func intersect(lists [][]TimeSlot) []TimeSlot {
	base := lists[0]

	var shared []TimeSlot
	for _, slot := range base {
		ok := true
		for _, other := range lists[1:] {
			if !contains(other, slot) {
				ok = false
				break
			}
		}
		if ok {
			shared = append(shared, slot)
		}
	}

	return shared
}

func contains(list []TimeSlot, slot TimeSlot) bool {
	for _, s := range list {
		if s.key() == slot.key() {
			return true
		}
	}
	return false
}
