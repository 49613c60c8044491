package schedule

import (
	"context"
	"time"

	"github.com/hireloop/scheduler/pkg/errors"
)

// validationPadding widens the busy refetch around the proposed interval so
// neighbouring commitments still trip the buffer check.
const validationPadding = 30 * time.Minute

// Validate re-checks one proposed interval against fresh busy data. It is
// the last line of defense between listing a slot and committing it:
// another actor may have booked an overlapping event in the meantime, so
// the orchestrator calls this immediately before touching the provider.
// A clear interval returns (true, nil); a stale or short-notice interval
// returns (false, nil). Errors are reserved for fetch failures.
func (e *Engine) Validate(ctx context.Context, cfg AvailabilityConfig, email string, start, end time.Time, noticeHours int) (bool, error) {
	if start.Before(e.now().Add(time.Duration(noticeHours) * time.Hour)) {
		return false, nil
	}

	busy, err := e.src.FreeBusy(ctx, []string{email}, start.Add(-validationPadding), end.Add(validationPadding))
	if err != nil {
		return false, errors.WrapFail(err, "refetch busy windows")
	}

	if conflicts(busy[email], start, end, cfg.BufferBeforeMin, cfg.BufferAfterMin) {
		return false, nil
	}

	return true, nil
}
