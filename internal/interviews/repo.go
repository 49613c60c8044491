package interviews

import (
	"context"
	"time"
)

type Repo interface {
	// Create persists a booked interview and returns its id.
	Create(ctx context.Context, i Interview) (id string, err error)

	// Find returns nil without error when the interview does not exist.
	Find(ctx context.Context, id string) (*Interview, error)

	// Reschedule moves the interview and marks it StatusRescheduled.
	Reschedule(ctx context.Context, id string, start, end time.Time) error

	// Cancel marks the interview StatusCancelled.
	Cancel(ctx context.Context, id string) error

	// SetFeedback attaches post-interview feedback.
	SetFeedback(ctx context.Context, id string, feedback string) error

	// ListByInterviewer returns all interviews assigned to an interviewer.
	ListByInterviewer(ctx context.Context, interviewerID string) ([]Interview, error)
}

type Accounts interface {
	// Get returns nil without error when the interviewer has no connected
	// account for the provider.
	Get(ctx context.Context, interviewerID, provider string) (*ConnectedAccount, error)

	// GetByEmail resolves an account by its calendar email.
	GetByEmail(ctx context.Context, email, provider string) (*ConnectedAccount, error)

	Upsert(ctx context.Context, account ConnectedAccount) error
}
