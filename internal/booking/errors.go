package booking

import "github.com/hireloop/scheduler/pkg/errors"

var (
	// ErrNoConnectedAccount means the interviewer never connected a
	// calendar. Not retryable without user action.
	ErrNoConnectedAccount = errors.New("interviewer has no connected calendar account")

	// ErrSlotTaken means validation rejected the interval; the caller
	// should refetch availability and pick another slot.
	ErrSlotTaken = errors.New("slot is no longer available")

	// ErrNotFound means the interview does not exist.
	ErrNotFound = errors.New("interview not found")

	// ErrCancelled means the interview is in its terminal state and cannot
	// be rescheduled.
	ErrCancelled = errors.New("interview is cancelled")

	// ErrEventCreateFailed means the provider did not return an event id;
	// nothing was persisted and the whole operation may be retried.
	ErrEventCreateFailed = errors.New("calendar event was not created")
)
