package interview

import (
	"context"
	"errors"
	"time"
)

// StorageKey holds the whole collection as one JSON array.
const StorageKey = "@portfolio_interviews"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusOffered   Status = "offered"
	StatusRejected  Status = "rejected"
)

// Statuses is every selectable value. Any status may follow any other.
var Statuses = []Status{StatusScheduled, StatusCompleted, StatusCancelled, StatusOffered, StatusRejected}

var ErrInvalidStatus = errors.New("invalid interview status")

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// TimestampLayout matches the millisecond ISO-8601 strings already stored on
// devices, e.g. 2025-01-01T10:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

type Question struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}

type TechnicalTopic struct {
	ID        string   `json:"id"`
	Topic     string   `json:"topic"`
	Prepared  bool     `json:"prepared"`
	Notes     string   `json:"notes"`
	Resources []string `json:"resources"`
}

type Interview struct {
	ID               string           `json:"id"`
	Company          string           `json:"company"`
	Position         string           `json:"position"`
	Date             string           `json:"date"`
	Notes            string           `json:"notes"`
	Status           Status           `json:"status"`
	CreatedAt        string           `json:"createdAt"`
	UpdatedAt        string           `json:"updatedAt"`
	Feedback         string           `json:"feedback"`
	FollowUpDate     *string          `json:"followUpDate"`
	PreparationNotes string           `json:"preparationNotes"`
	Questions        []Question       `json:"questions"`
	TechnicalTopics  []TechnicalTopic `json:"technicalTopics"`
}

// New builds a scheduled interview with its id assigned once.
func New(id, company, position, date, notes string, now time.Time) Interview {
	ts := Timestamp(now)
	return Interview{
		ID:              id,
		Company:         company,
		Position:        position,
		Date:            date,
		Notes:           notes,
		Status:          StatusScheduled,
		CreatedAt:       ts,
		UpdatedAt:       ts,
		Questions:       []Question{},
		TechnicalTopics: []TechnicalTopic{},
	}
}

// Normalize replaces nil sequences so the stored JSON never carries null lists.
func (iv *Interview) Normalize() {
	if iv.Questions == nil {
		iv.Questions = []Question{}
	}
	if iv.TechnicalTopics == nil {
		iv.TechnicalTopics = []TechnicalTopic{}
	}
	for i := range iv.TechnicalTopics {
		if iv.TechnicalTopics[i].Resources == nil {
			iv.TechnicalTopics[i].Resources = []string{}
		}
	}
}

func (iv *Interview) Touch(now time.Time) {
	iv.UpdatedAt = Timestamp(now)
}

// DateTime parses Date. Both millisecond and plain RFC 3339 forms are accepted.
func (iv *Interview) DateTime() (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, iv.Date); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, iv.Date)
}

// Repository reports outcomes as booleans: failures are logged by the
// implementation and the caller only decides whether to show a retry prompt.
type Repository interface {
	List(ctx context.Context) []Interview
	Get(ctx context.Context, id string) (Interview, bool)
	Save(ctx context.Context, iv Interview) bool
	Remove(ctx context.Context, id string) bool
	UpdateStatus(ctx context.Context, id string, status Status, feedback string) bool
	AppendQuestion(ctx context.Context, id, question string) bool
	AppendTechnicalTopic(ctx context.Context, id, topic string) bool
}
