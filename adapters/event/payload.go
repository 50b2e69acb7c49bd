package event

import (
	"time"

	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
)

const (
	TopicInterviewReminders = "interview.reminders"
	ReminderExchange        = "reminders_exchange"
	ReminderQueue           = "interview_reminders"

	ReminderEventScheduled = "reminder.scheduled"
)

type ReminderEventPayload struct {
	EventType     string    `json:"event_type"`
	InterviewID   string    `json:"interview_id"`
	Company       string    `json:"company"`
	Position      string    `json:"position"`
	InterviewDate time.Time `json:"interview_date"`
	RemindAt      time.Time `json:"remind_at"`
}

func NewReminderEventPayload(r interview.Reminder) ReminderEventPayload {
	return ReminderEventPayload{
		EventType:     ReminderEventScheduled,
		InterviewID:   r.InterviewID,
		Company:       r.Company,
		Position:      r.Position,
		InterviewDate: r.InterviewDate,
		RemindAt:      r.RemindAt,
	}
}

func (p ReminderEventPayload) Reminder() interview.Reminder {
	return interview.Reminder{
		InterviewID:   p.InterviewID,
		Company:       p.Company,
		Position:      p.Position,
		InterviewDate: p.InterviewDate,
		RemindAt:      p.RemindAt,
	}
}
