package booking

import (
	"context"
	"time"

	"github.com/hireloop/scheduler/internal/calendar"
	"github.com/hireloop/scheduler/internal/interviews"
	"github.com/hireloop/scheduler/internal/schedule"
	"github.com/hireloop/scheduler/pkg/errors"
	"github.com/hireloop/scheduler/pkg/logger"
)

// Orchestrator owns the interview state machine. Every operation runs
// validate → external call → persist sequentially; no step is retried here,
// because re-invoking Book after an ambiguous failure may duplicate the
// external event. A residual race between validation and the provider
// accepting the event remains (another actor can book the same slot in that
// gap); it is accepted instead of distributed locking, since calendar
// double-books are rare and human-correctable.
type Orchestrator struct {
	provider   calendar.Provider
	validator  Validator
	interviews interviews.Repo
	accounts   interviews.Accounts
	log        logger.Logger
}

func NewOrchestrator(
	provider calendar.Provider,
	validator Validator,
	repo interviews.Repo,
	accounts interviews.Accounts,
	log logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		provider:   provider,
		validator:  validator,
		interviews: repo,
		accounts:   accounts,
		log:        log.With("booking"),
	}
}

type BookRequest struct {
	OrgID string
	JobID string

	Candidate     interviews.Candidate
	InterviewerID string

	Title       string
	Description string

	Start  time.Time
	Config schedule.AvailabilityConfig
}

// Book turns a validated slot into a calendar event plus a persisted
// interview. The external event is created first: an interview record
// without a working event is a silent no-show, while an event without a
// record is recoverable by reconciliation.
func (o *Orchestrator) Book(ctx context.Context, req BookRequest) (*interviews.Interview, error) {
	account, err := o.account(ctx, req.InterviewerID)
	if err != nil {
		return nil, err
	}

	end := req.Start.Add(req.Config.Duration())

	ok, err := o.validator.Validate(ctx, req.Config, account.Email, req.Start, end, req.Config.MinNoticeHours)
	if err != nil {
		return nil, errors.WrapFail(err, "validate slot")
	}
	if !ok {
		return nil, ErrSlotTaken
	}

	created, err := o.provider.CreateEvent(ctx, account.Email, calendar.EventRequest{
		Title:       req.Title,
		Description: req.Description,
		Start:       req.Start,
		End:         end,
		Timezone:    req.Config.Hours.Timezone,
		Attendees:   []string{account.Email, req.Candidate.Email},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create calendar event")
	}
	if created == nil || created.EventID == "" {
		return nil, ErrEventCreateFailed
	}

	interview := interviews.Interview{
		OrgID:           req.OrgID,
		JobID:           req.JobID,
		Candidate:       req.Candidate,
		InterviewerID:   req.InterviewerID,
		Title:           req.Title,
		Description:     req.Description,
		Start:           req.Start,
		End:             end,
		Timezone:        req.Config.Hours.Timezone,
		Provider:        o.provider.Name(),
		ProviderEventID: created.EventID,
		MeetLink:        created.MeetLink,
		Status:          interviews.StatusScheduled,
	}

	id, err := o.interviews.Create(ctx, interview)
	if err != nil {
		return nil, errors.WrapFail(err, "persist interview")
	}

	interview.ID = id
	return &interview, nil
}

// Reschedule moves an existing interview. The cancelled state is terminal:
// moving a cancelled interview is an error, not a resurrection. Validation
// runs with the relaxed reschedule notice, since same-day changes are
// legitimate here.
func (o *Orchestrator) Reschedule(ctx context.Context, id string, start time.Time, cfg schedule.AvailabilityConfig) (*interviews.Interview, error) {
	interview, err := o.interviews.Find(ctx, id)
	if err != nil {
		return nil, errors.WrapFail(err, "find interview")
	}
	if interview == nil {
		return nil, ErrNotFound
	}
	if interview.Status == interviews.StatusCancelled {
		return nil, ErrCancelled
	}

	account, err := o.account(ctx, interview.InterviewerID)
	if err != nil {
		return nil, err
	}

	end := start.Add(cfg.Duration())

	ok, err := o.validator.Validate(ctx, cfg, account.Email, start, end, cfg.RescheduleNoticeHours)
	if err != nil {
		return nil, errors.WrapFail(err, "validate slot")
	}
	if !ok {
		return nil, ErrSlotTaken
	}

	err = o.provider.PatchEventTime(ctx, account.Email, interview.ProviderEventID, start, end, interview.Timezone)
	if err != nil {
		return nil, errors.WrapFail(err, "patch calendar event")
	}

	err = o.interviews.Reschedule(ctx, id, start, end)
	if err != nil {
		return nil, errors.WrapFail(err, "update interview times")
	}

	interview.Start = start
	interview.End = end
	interview.Status = interviews.StatusRescheduled
	return interview, nil
}

// Cancel is idempotent: an already cancelled interview is a successful
// no-op with no provider call. A failed external delete is logged and the
// local transition proceeds anyway — a consistent "this slot is free again"
// view beats blocking cancellation on a flaky dependency.
func (o *Orchestrator) Cancel(ctx context.Context, id string) error {
	interview, err := o.interviews.Find(ctx, id)
	if err != nil {
		return errors.WrapFail(err, "find interview")
	}
	if interview == nil {
		return ErrNotFound
	}
	if interview.Status == interviews.StatusCancelled {
		return nil
	}

	account, err := o.account(ctx, interview.InterviewerID)
	if err != nil {
		return err
	}

	err = o.provider.DeleteEvent(ctx, account.Email, interview.ProviderEventID, true)
	if err != nil {
		o.log.Warn(errors.WrapFailf(err, "delete calendar event %q", interview.ProviderEventID))
	}

	err = o.interviews.Cancel(ctx, id)
	return errors.WrapFail(err, "cancel interview")
}

func (o *Orchestrator) account(ctx context.Context, interviewerID string) (*interviews.ConnectedAccount, error) {
	account, err := o.accounts.Get(ctx, interviewerID, o.provider.Name())
	if err != nil {
		return nil, errors.WrapFail(err, "look up connected account")
	}
	if account == nil {
		return nil, ErrNoConnectedAccount
	}
	return account, nil
}
