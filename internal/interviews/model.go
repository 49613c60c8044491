package interviews

import "time"

type Status int

const (
	// StatusScheduled is set when the booking committed.
	StatusScheduled = Status(iota) + 1

	// StatusRescheduled is set every time the interview is moved.
	StatusRescheduled

	// StatusCancelled is terminal; interviews are never deleted.
	StatusCancelled
)

type Candidate struct {
	Name  string `json:"name"  bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

type Interview struct {
	ID string `json:"id" bson:"_id,omitempty"`

	OrgID string `json:"org_id"           bson:"org_id"`
	JobID string `json:"job_id,omitempty" bson:"job_id,omitempty"`

	Candidate     Candidate `json:"candidate"      bson:"candidate"`
	InterviewerID string    `json:"interviewer_id" bson:"interviewer_id"`

	Title       string `json:"title"       bson:"title"`
	Description string `json:"description" bson:"description"`

	Start    time.Time `json:"start"    bson:"start"`
	End      time.Time `json:"end"      bson:"end"`
	Timezone string    `json:"timezone" bson:"timezone"`

	Provider        string `json:"provider"          bson:"provider"`
	ProviderEventID string `json:"provider_event_id" bson:"provider_event_id"`
	MeetLink        string `json:"meet_link,omitempty" bson:"meet_link,omitempty"`

	Status       Status `json:"status"        bson:"status"`
	ReminderSent bool   `json:"reminder_sent" bson:"reminder_sent"`
	Feedback     string `json:"feedback,omitempty" bson:"feedback,omitempty"`
}

const (
	FieldInterviewer = "interviewer_id"
	FieldStart       = "start"
	FieldEnd         = "end"
	FieldStatus      = "status"
	FieldFeedback    = "feedback"
)

// ConnectedAccount binds an interviewer to one calendar account. Its absence
// is a precondition failure for every booking operation.
type ConnectedAccount struct {
	InterviewerID string `json:"interviewer_id" bson:"interviewer_id"`
	Provider      string `json:"provider"       bson:"provider"`
	Email         string `json:"email"          bson:"email"`

	// Token is the serialized OAuth token; the token lifecycle itself is
	// owned by the surrounding application.
	Token []byte `json:"-" bson:"token"`
}

const (
	AccountFieldInterviewer = "interviewer_id"
	AccountFieldProvider    = "provider"
	AccountFieldEmail       = "email"
)
