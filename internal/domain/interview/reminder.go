package interview

import (
	"errors"
	"fmt"
	"time"
)

var ErrReminderInPast = errors.New("reminder time must be in the future")

// Reminder is the notification scheduled for the day before an interview.
type Reminder struct {
	InterviewID   string    `json:"interviewId"`
	Company       string    `json:"company"`
	Position      string    `json:"position"`
	InterviewDate time.Time `json:"interviewDate"`
	RemindAt      time.Time `json:"remindAt"`
}

// NewReminder fires one day before the interview at hour:minute (UTC).
func NewReminder(iv Interview, hour, minute int, now time.Time) (Reminder, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Reminder{}, fmt.Errorf("invalid reminder time %02d:%02d", hour, minute)
	}
	date, err := iv.DateTime()
	if err != nil {
		return Reminder{}, fmt.Errorf("parse interview date %q: %w", iv.Date, err)
	}

	day := date.UTC().AddDate(0, 0, -1)
	remindAt := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	if !remindAt.After(now) {
		return Reminder{}, ErrReminderInPast
	}

	return Reminder{
		InterviewID:   iv.ID,
		Company:       iv.Company,
		Position:      iv.Position,
		InterviewDate: date,
		RemindAt:      remindAt,
	}, nil
}

func (r Reminder) Subject() string {
	return "Interview Reminder"
}

func (r Reminder) Body() string {
	return fmt.Sprintf("You have an interview with %s for %s tomorrow at %s",
		r.Company, r.Position, r.InterviewDate.UTC().Format("15:04 MST"))
}
