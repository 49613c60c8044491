package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hireloop/scheduler/internal/booking"
	"github.com/hireloop/scheduler/internal/interviews"
	"github.com/hireloop/scheduler/pkg/errors"
	"github.com/hireloop/scheduler/pkg/logger"
)

func NewServer(
	cfg Config,
	log logger.Logger,
	engine availabilityEngine,
	orch orchestrator,
	repo interviews.Repo,
	accounts interviews.Accounts,
	provider string,
) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		cfg:      cfg,
		engine:   engine,
		orch:     orch,
		repo:     repo,
		accounts: accounts,
		provider: provider,
		http:     fiber.New(fiberCfg),
		log:      serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	cfg      Config
	engine   availabilityEngine
	orch     orchestrator
	repo     interviews.Repo
	accounts interviews.Accounts
	provider string

	http *fiber.App
	log  logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.cfg.HTTP.Addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.http.ShutdownWithContext(ctx)
	return errors.WrapFail(err, "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Get("/slots", s.handleSlots)
	s.http.Get("/panel-slots", s.handlePanelSlots)
	s.http.Get("/interviews", s.handleList)
	s.http.Post("/book", s.handleBook)
	s.http.Post("/reschedule", s.handleReschedule)
	s.http.Post("/cancel", s.handleCancel)
	s.http.Post("/feedback", s.handleFeedback)
	s.http.Post("/accounts", s.handleConnectAccount)
}

type connectAccountPayload struct {
	InterviewerID string `json:"interviewer_id"`
	Email         string `json:"email"`

	// Token is the serialized OAuth token obtained by the surrounding
	// application; the token lifecycle itself is not managed here.
	Token []byte `json:"token"`
}

func (s *server) handleConnectAccount(c *fiber.Ctx) error {
	var payload connectAccountPayload
	err := c.BodyParser(&payload)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal account payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	if payload.InterviewerID == "" || payload.Email == "" {
		return s.sendError(c, http.StatusBadRequest, "missing interviewer_id or email")
	}

	err = s.accounts.Upsert(c.Context(), interviews.ConnectedAccount{
		InterviewerID: payload.InterviewerID,
		Provider:      s.provider,
		Email:         payload.Email,
		Token:         payload.Token,
	})
	if err != nil {
		return errors.WrapFail(err, "upsert connected account")
	}

	return c.Status(http.StatusCreated).Send(nil)
}

func (s *server) handleSlots(c *fiber.Ctx) error {
	from, to, err := s.getRangeOrErr(c)
	if err != nil {
		s.log.Warn(err)
		return s.sendError(c, http.StatusBadRequest, "bad time range")
	}

	email, err := s.accountEmail(c.Context(), c.Query("interviewer_id", ""))
	if err != nil {
		return s.mapBookingErr(c, err)
	}

	slots, err := s.engine.Available(c.Context(), s.cfg.Availability, email, from, to)
	if err != nil {
		return errors.WrapFail(err, "compute availability")
	}

	return c.Status(http.StatusOK).JSON(map[string]any{"slots": slots})
}

func (s *server) handlePanelSlots(c *fiber.Ctx) error {
	from, to, err := s.getRangeOrErr(c)
	if err != nil {
		s.log.Warn(err)
		return s.sendError(c, http.StatusBadRequest, "bad time range")
	}

	ids := strings.Split(c.Query("interviewer_ids", ""), ",")

	emails := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}

		email, err := s.accountEmail(c.Context(), id)
		if err != nil {
			return s.mapBookingErr(c, err)
		}
		emails = append(emails, email)
	}

	slots, err := s.engine.PanelAvailable(c.Context(), s.cfg.Availability, emails, from, to)
	if err != nil {
		return errors.WrapFail(err, "compute panel availability")
	}

	return c.Status(http.StatusOK).JSON(map[string]any{"slots": slots})
}

func (s *server) handleList(c *fiber.Ctx) error {
	id := c.Query("interviewer_id", "")
	if id == "" {
		return s.sendError(c, http.StatusBadRequest, "missing required parameter \"interviewer_id\"")
	}

	listed, err := s.repo.ListByInterviewer(c.Context(), id)
	if err != nil {
		return errors.WrapFail(err, "list interviews")
	}

	return c.Status(http.StatusOK).JSON(map[string]any{"interviews": listed})
}

type bookPayload struct {
	OrgID         string               `json:"org_id"`
	JobID         string               `json:"job_id"`
	Candidate     interviews.Candidate `json:"candidate"`
	InterviewerID string               `json:"interviewer_id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Start         time.Time            `json:"start"`
}

func (s *server) handleBook(c *fiber.Ctx) error {
	var payload bookPayload
	err := c.BodyParser(&payload)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal book payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	interview, err := s.orch.Book(c.Context(), booking.BookRequest{
		OrgID:         payload.OrgID,
		JobID:         payload.JobID,
		Candidate:     payload.Candidate,
		InterviewerID: payload.InterviewerID,
		Title:         payload.Title,
		Description:   payload.Description,
		Start:         payload.Start,
		Config:        s.cfg.Availability,
	})
	if err != nil {
		return s.mapBookingErr(c, err)
	}

	return c.Status(http.StatusCreated).JSON(interview)
}

type reschedulePayload struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
}

func (s *server) handleReschedule(c *fiber.Ctx) error {
	var payload reschedulePayload
	err := c.BodyParser(&payload)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal reschedule payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	interview, err := s.orch.Reschedule(c.Context(), payload.ID, payload.Start, s.cfg.Availability)
	if err != nil {
		return s.mapBookingErr(c, err)
	}

	return c.Status(http.StatusOK).JSON(interview)
}

func (s *server) handleCancel(c *fiber.Ctx) error {
	id := c.Query("id", "")
	if id == "" {
		return s.sendError(c, http.StatusBadRequest, "missing required parameter \"id\"")
	}

	err := s.orch.Cancel(c.Context(), id)
	if err != nil {
		return s.mapBookingErr(c, err)
	}

	return c.Status(http.StatusOK).Send(nil)
}

type feedbackPayload struct {
	ID       string `json:"id"`
	Feedback string `json:"feedback"`
}

func (s *server) handleFeedback(c *fiber.Ctx) error {
	var payload feedbackPayload
	err := c.BodyParser(&payload)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal feedback payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	interview, err := s.repo.Find(c.Context(), payload.ID)
	if err != nil {
		return errors.WrapFail(err, "find interview")
	}
	if interview == nil {
		return s.sendError(c, http.StatusNotFound, "interview not found")
	}

	err = s.repo.SetFeedback(c.Context(), payload.ID, payload.Feedback)
	if err != nil {
		return errors.WrapFail(err, "set feedback")
	}

	return c.Status(http.StatusOK).Send(nil)
}

func (s *server) accountEmail(ctx context.Context, interviewerID string) (string, error) {
	if interviewerID == "" {
		return "", booking.ErrNoConnectedAccount
	}

	account, err := s.accounts.Get(ctx, interviewerID, s.provider)
	if err != nil {
		return "", errors.WrapFail(err, "look up connected account")
	}
	if account == nil {
		return "", booking.ErrNoConnectedAccount
	}

	return account.Email, nil
}

func (s *server) mapBookingErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		return s.sendError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrNoConnectedAccount):
		return s.sendError(c, http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, booking.ErrSlotTaken), errors.Is(err, booking.ErrCancelled):
		return s.sendError(c, http.StatusConflict, err.Error())
	case errors.Is(err, booking.ErrEventCreateFailed):
		return s.sendError(c, http.StatusBadGateway, err.Error())
	default:
		return err
	}
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}

func (s *server) getRangeOrErr(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, c.Query("from", ""))
	if err != nil {
		return time.Time{}, time.Time{}, errors.WrapFail(err, "parse \"from\" param")
	}

	to, err := time.Parse(time.RFC3339, c.Query("to", ""))
	if err != nil {
		return time.Time{}, time.Time{}, errors.WrapFail(err, "parse \"to\" param")
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.Error("\"to\" is before \"from\"")
	}

	return from, to, nil
}
