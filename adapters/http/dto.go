package http

import (
	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
	"github.com/khoahotran/portfolio-showcase/internal/domain/settings"
)

// Interview DTOs

type CreateInterviewRequest struct {
	Company     string `json:"company" binding:"required"`
	Position    string `json:"position" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Notes       string `json:"notes"`
	SetReminder bool   `json:"setReminder"`
	// ReminderTime is "HH:MM"; empty uses the server default.
	ReminderTime string `json:"reminderTime"`
}

type QuestionRequest struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type TopicRequest struct {
	ID        string   `json:"id"`
	Topic     string   `json:"topic"`
	Prepared  bool     `json:"prepared"`
	Notes     string   `json:"notes"`
	Resources []string `json:"resources"`
}

// UpdateInterviewRequest leaves questions and topics untouched when the
// fields are absent from the body.
type UpdateInterviewRequest struct {
	Company          string             `json:"company"`
	Position         string             `json:"position"`
	Date             string             `json:"date"`
	Notes            string             `json:"notes"`
	PreparationNotes string             `json:"preparationNotes"`
	FollowUpDate     *string            `json:"followUpDate"`
	Questions        *[]QuestionRequest `json:"questions"`
	TechnicalTopics  *[]TopicRequest    `json:"technicalTopics"`
}

func (r UpdateInterviewRequest) questions() []interview.Question {
	if r.Questions == nil {
		return nil
	}
	out := make([]interview.Question, 0, len(*r.Questions))
	for _, q := range *r.Questions {
		out = append(out, interview.Question{ID: q.ID, Question: q.Question, Answer: q.Answer})
	}
	return out
}

func (r UpdateInterviewRequest) technicalTopics() []interview.TechnicalTopic {
	if r.TechnicalTopics == nil {
		return nil
	}
	out := make([]interview.TechnicalTopic, 0, len(*r.TechnicalTopics))
	for _, t := range *r.TechnicalTopics {
		out = append(out, interview.TechnicalTopic{
			ID:        t.ID,
			Topic:     t.Topic,
			Prepared:  t.Prepared,
			Notes:     t.Notes,
			Resources: t.Resources,
		})
	}
	return out
}

type UpdateStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Feedback string `json:"feedback"`
}

type AddQuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

type AddTopicRequest struct {
	Topic string `json:"topic" binding:"required"`
}

type CreateInterviewResponse struct {
	Interview         interview.Interview `json:"interview"`
	ReminderScheduled bool                `json:"reminderScheduled"`
}

type InterviewListResponse struct {
	Interviews []interview.Interview `json:"interviews"`
	Total      int                   `json:"total"`
}

// Profile DTOs

type ImportImageRequest struct {
	Source string `json:"source" binding:"required"`
}

type ImportImageResponse struct {
	ProfileImage string `json:"profileImage"`
}

// Settings DTOs

type ThemeResponse struct {
	Theme  settings.Theme `json:"theme"`
	IsDark bool           `json:"isDark"`
}

func ToThemeResponse(s settings.Settings) ThemeResponse {
	return ThemeResponse{Theme: s.Theme, IsDark: s.Theme.IsDark()}
}

type BackupResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
