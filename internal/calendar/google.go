package calendar

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/hireloop/scheduler/internal/schedule"
	"github.com/hireloop/scheduler/pkg/errors"
	"github.com/hireloop/scheduler/pkg/logger"
)

const (
	ProviderGoogle = "google"

	primaryCalendar = "primary"

	sendUpdatesAll  = "all"
	sendUpdatesNone = "none"
)

// TokenStore resolves the stored OAuth token of a connected account.
// Token refresh and persistence of rotated tokens live behind it.
type TokenStore interface {
	Token(ctx context.Context, email string) (*oauth2.Token, error)
}

type GoogleConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
}

func (c GoogleConfig) oauth() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     googleEndpoint,
	}
}

// googleEndpoint is inlined to avoid importing the whole google oauth
// package for two URLs.
var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

func NewGoogle(cfg GoogleConfig, tokens TokenStore, log logger.Logger) *Google {
	return &Google{
		cfg:    cfg.oauth(),
		tokens: tokens,
		log:    log.With("google_calendar"),
	}
}

// Google talks to Google Calendar on behalf of connected accounts.
type Google struct {
	cfg    *oauth2.Config
	tokens TokenStore
	log    logger.Logger
}

func (g *Google) Name() string {
	return ProviderGoogle
}

func (g *Google) service(ctx context.Context, organizer string) (*calendar.Service, error) {
	tok, err := g.tokens.Token(ctx, organizer)
	if err != nil {
		return nil, errors.WrapFailf(err, "resolve token for %q", organizer)
	}

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(g.cfg.Client(ctx, tok)))
	return srv, errors.WrapFail(err, "create calendar service")
}

// FreeBusy queries commitments of all listed calendars in one request,
// authorized as the first one.
func (g *Google) FreeBusy(ctx context.Context, emails []string, from, to time.Time) (map[string][]schedule.BusyWindow, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	srv, err := g.service(ctx, emails[0])
	if err != nil {
		return nil, err
	}

	items := make([]*calendar.FreeBusyRequestItem, 0, len(emails))
	for _, email := range emails {
		items = append(items, &calendar.FreeBusyRequestItem{Id: email})
	}

	resp, err := srv.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   items,
	}).Context(ctx).Do()
	if err != nil {
		return nil, errors.WrapFail(err, "query freebusy")
	}

	busy := make(map[string][]schedule.BusyWindow, len(resp.Calendars))
	for email, cal := range resp.Calendars {
		windows := make([]schedule.BusyWindow, 0, len(cal.Busy))
		for _, p := range cal.Busy {
			w, err := parsePeriod(p)
			if err != nil {
				g.log.Warn(errors.WrapFailf(err, "parse busy period of %q", email))
				continue
			}
			windows = append(windows, w)
		}
		busy[email] = windows
	}

	return busy, nil
}

func (g *Google) CreateEvent(ctx context.Context, organizer string, req EventRequest) (*CreatedEvent, error) {
	srv, err := g.service(ctx, organizer)
	if err != nil {
		return nil, err
	}

	attendees := make([]*calendar.EventAttendee, 0, len(req.Attendees))
	for _, email := range req.Attendees {
		attendees = append(attendees, &calendar.EventAttendee{Email: email})
	}

	event := &calendar.Event{
		Summary:     req.Title,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.Start.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.End.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		Attendees: attendees,
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := srv.Events.
		Insert(primaryCalendar, event).
		ConferenceDataVersion(1).
		SendUpdates(sendUpdatesAll).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.WrapFail(err, "insert event")
	}

	return &CreatedEvent{
		EventID:  created.Id,
		MeetLink: meetLink(created),
	}, nil
}

func (g *Google) PatchEventTime(ctx context.Context, organizer, eventID string, start, end time.Time, timezone string) error {
	srv, err := g.service(ctx, organizer)
	if err != nil {
		return err
	}

	patch := &calendar.Event{
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: timezone,
		},
	}

	_, err = srv.Events.
		Patch(primaryCalendar, eventID, patch).
		SendUpdates(sendUpdatesAll).
		Context(ctx).
		Do()
	return errors.WrapFail(err, "patch event")
}

func (g *Google) DeleteEvent(ctx context.Context, organizer, eventID string, notifyAttendees bool) error {
	srv, err := g.service(ctx, organizer)
	if err != nil {
		return err
	}

	updates := sendUpdatesNone
	if notifyAttendees {
		updates = sendUpdatesAll
	}

	err = srv.Events.
		Delete(primaryCalendar, eventID).
		SendUpdates(updates).
		Context(ctx).
		Do()
	return errors.WrapFail(err, "delete event")
}

func parsePeriod(p *calendar.TimePeriod) (schedule.BusyWindow, error) {
	start, err := time.Parse(time.RFC3339, p.Start)
	if err != nil {
		return schedule.BusyWindow{}, errors.WrapFail(err, "parse period start")
	}

	end, err := time.Parse(time.RFC3339, p.End)
	if err != nil {
		return schedule.BusyWindow{}, errors.WrapFail(err, "parse period end")
	}

	return schedule.BusyWindow{Start: start, End: end}, nil
}

func meetLink(ev *calendar.Event) string {
	if ev.HangoutLink != "" {
		return ev.HangoutLink
	}

	if ev.ConferenceData == nil {
		return ""
	}

	for _, ep := range ev.ConferenceData.EntryPoints {
		if ep.EntryPointType == "video" {
			return ep.Uri
		}
	}
	return ""
}
