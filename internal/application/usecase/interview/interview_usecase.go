package interview

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/application/service"
	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
	"github.com/khoahotran/portfolio-showcase/pkg/apperror"
	"github.com/khoahotran/portfolio-showcase/pkg/idgen"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

var tracer = otel.Tracer("interview_usecase")

type ReminderSchedule struct {
	Hour   int
	Minute int
}

// ParseReminderTime reads a 24-hour "HH:MM" value.
func ParseReminderTime(v string) (ReminderSchedule, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(v))
	if err != nil {
		return ReminderSchedule{}, err
	}
	return ReminderSchedule{Hour: t.Hour(), Minute: t.Minute()}, nil
}

type InterviewUseCase struct {
	repo      interview.Repository
	publisher service.ReminderPublisher
	schedule  ReminderSchedule
	logger    logger.Logger
	now       func() time.Time
	newID     func() string
}

// NewInterviewUseCase accepts a nil publisher, in which case reminders are
// never scheduled.
func NewInterviewUseCase(repo interview.Repository, pub service.ReminderPublisher, schedule ReminderSchedule, log logger.Logger) *InterviewUseCase {
	return &InterviewUseCase{
		repo:      repo,
		publisher: pub,
		schedule:  schedule,
		logger:    log,
		now:       time.Now,
		newID:     idgen.New,
	}
}

func persistenceFailure(op, id string) error {
	return apperror.NewPersistence(op+" interview "+id, nil)
}

type CreateInterviewInput struct {
	Company     string
	Position    string
	Date        string
	Notes       string
	SetReminder bool
	// ReminderTime is an optional "HH:MM" (UTC) overriding the configured
	// reminder time.
	ReminderTime string
}

type CreateInterviewOutput struct {
	Interview         interview.Interview
	ReminderScheduled bool
}

func (uc *InterviewUseCase) Create(ctx context.Context, input CreateInterviewInput) (*CreateInterviewOutput, error) {
	ctx, span := tracer.Start(ctx, "Create")
	defer span.End()

	company := strings.TrimSpace(input.Company)
	position := strings.TrimSpace(input.Position)
	if company == "" || position == "" {
		return nil, apperror.NewInvalidInput("company and position are required", nil)
	}

	schedule := uc.schedule
	if input.ReminderTime != "" {
		parsed, err := ParseReminderTime(input.ReminderTime)
		if err != nil {
			return nil, apperror.NewInvalidInput("reminderTime must be HH:MM", err)
		}
		schedule = parsed
	}

	iv := interview.New(uc.newID(), company, position, input.Date, input.Notes, uc.now())
	if _, err := iv.DateTime(); err != nil {
		return nil, apperror.NewInvalidInput("date must be an ISO-8601 timestamp", err)
	}
	span.SetAttributes(attribute.String("interview_id", iv.ID))

	if !uc.repo.Save(ctx, iv) {
		err := persistenceFailure("create", iv.ID)
		span.RecordError(err)
		return nil, err
	}

	out := &CreateInterviewOutput{Interview: iv}
	if input.SetReminder {
		out.ReminderScheduled = uc.scheduleReminder(ctx, iv, schedule)
	}
	return out, nil
}

// scheduleReminder never fails the caller. Problems are logged only.
func (uc *InterviewUseCase) scheduleReminder(ctx context.Context, iv interview.Interview, at ReminderSchedule) bool {
	if uc.publisher == nil {
		return false
	}
	r, err := interview.NewReminder(iv, at.Hour, at.Minute, uc.now())
	if err != nil {
		if errors.Is(err, interview.ErrReminderInPast) {
			uc.logger.Warn("Reminder time already passed, not scheduling", zap.String("interview_id", iv.ID))
		} else {
			uc.logger.Error("Failed to compute reminder", err, zap.String("interview_id", iv.ID))
		}
		return false
	}
	if err := uc.publisher.PublishReminder(ctx, r); err != nil {
		uc.logger.Error("Failed to schedule reminder", err, zap.String("interview_id", iv.ID))
		return false
	}
	return true
}

func (uc *InterviewUseCase) List(ctx context.Context) []interview.Interview {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	list := uc.repo.List(ctx)
	span.SetAttributes(attribute.Int("count", len(list)))
	return list
}

func (uc *InterviewUseCase) Get(ctx context.Context, id string) (*interview.Interview, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	iv, ok := uc.repo.Get(ctx, id)
	if !ok {
		return nil, apperror.NewNotFound("interview", id)
	}
	return &iv, nil
}

type UpdateInterviewInput struct {
	ID               string
	Company          string
	Position         string
	Date             string
	Notes            string
	PreparationNotes string
	FollowUpDate     *string
	// Questions and TechnicalTopics replace the stored lists when non-nil.
	// Entries keep their stored id and question timestamp; blank ids get a
	// new one.
	Questions       []interview.Question
	TechnicalTopics []interview.TechnicalTopic
}

// Update rewrites the editable fields of an existing interview. Status and
// feedback are left as stored.
func (uc *InterviewUseCase) Update(ctx context.Context, input UpdateInterviewInput) (*interview.Interview, error) {
	ctx, span := tracer.Start(ctx, "Update")
	defer span.End()

	iv, ok := uc.repo.Get(ctx, input.ID)
	if !ok {
		return nil, apperror.NewNotFound("interview", input.ID)
	}

	if c := strings.TrimSpace(input.Company); c != "" {
		iv.Company = c
	}
	if p := strings.TrimSpace(input.Position); p != "" {
		iv.Position = p
	}
	if input.Date != "" {
		iv.Date = input.Date
		if _, err := iv.DateTime(); err != nil {
			return nil, apperror.NewInvalidInput("date must be an ISO-8601 timestamp", err)
		}
	}
	iv.Notes = input.Notes
	iv.PreparationNotes = input.PreparationNotes
	iv.FollowUpDate = input.FollowUpDate

	if input.Questions != nil {
		questions, err := uc.mergeQuestions(iv.Questions, input.Questions)
		if err != nil {
			return nil, err
		}
		iv.Questions = questions
	}
	if input.TechnicalTopics != nil {
		topics, err := uc.mergeTopics(input.TechnicalTopics)
		if err != nil {
			return nil, err
		}
		iv.TechnicalTopics = topics
	}
	iv.Normalize()

	if !uc.repo.Save(ctx, iv) {
		err := persistenceFailure("update", iv.ID)
		span.RecordError(err)
		return nil, err
	}

	saved, ok := uc.repo.Get(ctx, iv.ID)
	if !ok {
		return &iv, nil
	}
	return &saved, nil
}

func (uc *InterviewUseCase) mergeQuestions(stored, edited []interview.Question) ([]interview.Question, error) {
	asked := make(map[string]string, len(stored))
	for _, q := range stored {
		asked[q.ID] = q.Timestamp
	}

	seen := make(map[string]bool, len(edited))
	out := make([]interview.Question, 0, len(edited))
	for _, q := range edited {
		q.Question = strings.TrimSpace(q.Question)
		if q.Question == "" {
			return nil, apperror.NewInvalidInput("question text cannot be empty", nil)
		}
		if q.ID == "" {
			q.ID = uc.newID()
		}
		if ts, ok := asked[q.ID]; ok {
			q.Timestamp = ts
		} else {
			q.Timestamp = interview.Timestamp(uc.now())
		}
		if seen[q.ID] {
			return nil, apperror.NewInvalidInput("duplicate question id "+q.ID, nil)
		}
		seen[q.ID] = true
		out = append(out, q)
	}
	return out, nil
}

func (uc *InterviewUseCase) mergeTopics(edited []interview.TechnicalTopic) ([]interview.TechnicalTopic, error) {
	seen := make(map[string]bool, len(edited))
	out := make([]interview.TechnicalTopic, 0, len(edited))
	for _, t := range edited {
		t.Topic = strings.TrimSpace(t.Topic)
		if t.Topic == "" {
			return nil, apperror.NewInvalidInput("topic cannot be empty", nil)
		}
		if t.ID == "" {
			t.ID = uc.newID()
		}
		if seen[t.ID] {
			return nil, apperror.NewInvalidInput("duplicate topic id "+t.ID, nil)
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out, nil
}

func (uc *InterviewUseCase) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Delete")
	defer span.End()

	if !uc.repo.Remove(ctx, id) {
		err := persistenceFailure("delete", id)
		span.RecordError(err)
		return err
	}
	return nil
}

func (uc *InterviewUseCase) UpdateStatus(ctx context.Context, id string, status interview.Status, feedback string) error {
	ctx, span := tracer.Start(ctx, "UpdateStatus")
	defer span.End()

	if !status.Valid() {
		return apperror.NewInvalidInput("unknown status '"+string(status)+"'", interview.ErrInvalidStatus)
	}
	if !uc.repo.UpdateStatus(ctx, id, status, feedback) {
		err := persistenceFailure("update status of", id)
		span.RecordError(err)
		return err
	}
	return nil
}

func (uc *InterviewUseCase) AddQuestion(ctx context.Context, id, question string) error {
	ctx, span := tracer.Start(ctx, "AddQuestion")
	defer span.End()

	if strings.TrimSpace(question) == "" {
		return apperror.NewInvalidInput("question must not be blank", nil)
	}
	if !uc.repo.AppendQuestion(ctx, id, question) {
		err := persistenceFailure("add question to", id)
		span.RecordError(err)
		return err
	}
	return nil
}

func (uc *InterviewUseCase) AddTechnicalTopic(ctx context.Context, id, topic string) error {
	ctx, span := tracer.Start(ctx, "AddTechnicalTopic")
	defer span.End()

	if strings.TrimSpace(topic) == "" {
		return apperror.NewInvalidInput("topic must not be blank", nil)
	}
	if !uc.repo.AppendTechnicalTopic(ctx, id, topic) {
		err := persistenceFailure("add topic to", id)
		span.RecordError(err)
		return err
	}
	return nil
}
