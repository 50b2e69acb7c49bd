package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
	"github.com/khoahotran/portfolio-showcase/internal/domain/kv"
	"github.com/khoahotran/portfolio-showcase/pkg/idgen"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

// kvInterviewRepo keeps every interview in one JSON array under
// interview.StorageKey. Each mutation reads the array, changes it in memory
// and writes the whole array back. There is no locking: two overlapping
// mutations race and the later write wins.
type kvInterviewRepo struct {
	store  kv.Store
	logger logger.Logger
	now    func() time.Time
	newID  func() string
}

func NewKVInterviewRepo(store kv.Store, log logger.Logger) interview.Repository {
	return &kvInterviewRepo{
		store:  store,
		logger: log,
		now:    time.Now,
		newID:  idgen.New,
	}
}

// read distinguishes a failed read (err) from an absent or corrupt blob,
// which both yield an empty collection.
func (r *kvInterviewRepo) read(ctx context.Context) ([]interview.Interview, error) {
	raw, found, err := r.store.Get(ctx, interview.StorageKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []interview.Interview{}, nil
	}

	var interviews []interview.Interview
	if err := decodeStored(raw, &interviews); err != nil {
		r.logger.Warn("Malformed interview collection, treating as empty", zap.Error(err))
		return []interview.Interview{}, nil
	}
	if interviews == nil {
		interviews = []interview.Interview{}
	}
	for i := range interviews {
		interviews[i].Normalize()
	}
	return interviews, nil
}

func (r *kvInterviewRepo) write(ctx context.Context, interviews []interview.Interview) error {
	b, err := json.Marshal(interviews)
	if err != nil {
		return fmt.Errorf("marshal interviews: %w", err)
	}
	return r.store.Set(ctx, interview.StorageKey, string(b))
}

func indexOf(interviews []interview.Interview, id string) int {
	for i := range interviews {
		if interviews[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *kvInterviewRepo) List(ctx context.Context) []interview.Interview {
	interviews, err := r.read(ctx)
	if err != nil {
		r.logger.Error("Error getting interviews", err)
		return []interview.Interview{}
	}
	return interviews
}

func (r *kvInterviewRepo) Get(ctx context.Context, id string) (interview.Interview, bool) {
	interviews := r.List(ctx)
	if i := indexOf(interviews, id); i >= 0 {
		return interviews[i], true
	}
	return interview.Interview{}, false
}

func (r *kvInterviewRepo) Save(ctx context.Context, iv interview.Interview) bool {
	interviews, err := r.read(ctx)
	if err != nil {
		r.logger.Error("Error saving interview", err, zap.String("interview_id", iv.ID))
		return false
	}

	iv.Normalize()
	if i := indexOf(interviews, iv.ID); i >= 0 {
		iv.Touch(r.now())
		interviews[i] = iv
	} else {
		interviews = append(interviews, iv)
	}

	if err := r.write(ctx, interviews); err != nil {
		r.logger.Error("Error saving interview", err, zap.String("interview_id", iv.ID))
		return false
	}
	return true
}

// Remove succeeds when id is not present.
func (r *kvInterviewRepo) Remove(ctx context.Context, id string) bool {
	interviews, err := r.read(ctx)
	if err != nil {
		r.logger.Error("Error deleting interview", err, zap.String("interview_id", id))
		return false
	}

	filtered := make([]interview.Interview, 0, len(interviews))
	for _, iv := range interviews {
		if iv.ID != id {
			filtered = append(filtered, iv)
		}
	}

	if err := r.write(ctx, filtered); err != nil {
		r.logger.Error("Error deleting interview", err, zap.String("interview_id", id))
		return false
	}
	return true
}

// mutate applies fn to the interview with the given id and writes the
// collection back. It reports false without writing when id is unknown.
func (r *kvInterviewRepo) mutate(ctx context.Context, op, id string, fn func(iv *interview.Interview, now time.Time)) bool {
	interviews, err := r.read(ctx)
	if err != nil {
		r.logger.Error("Error "+op, err, zap.String("interview_id", id))
		return false
	}

	i := indexOf(interviews, id)
	if i < 0 {
		r.logger.Warn("Interview not found", zap.String("op", op), zap.String("interview_id", id))
		return false
	}

	now := r.now()
	fn(&interviews[i], now)
	interviews[i].Touch(now)

	if err := r.write(ctx, interviews); err != nil {
		r.logger.Error("Error "+op, err, zap.String("interview_id", id))
		return false
	}
	return true
}

func (r *kvInterviewRepo) UpdateStatus(ctx context.Context, id string, status interview.Status, feedback string) bool {
	return r.mutate(ctx, "updating interview status", id, func(iv *interview.Interview, _ time.Time) {
		iv.Status = status
		if feedback != "" {
			iv.Feedback = feedback
		}
	})
}

func (r *kvInterviewRepo) AppendQuestion(ctx context.Context, id, question string) bool {
	return r.mutate(ctx, "adding interview question", id, func(iv *interview.Interview, now time.Time) {
		iv.Questions = append(iv.Questions, interview.Question{
			ID:        r.newID(),
			Question:  question,
			Answer:    "",
			Timestamp: interview.Timestamp(now),
		})
	})
}

func (r *kvInterviewRepo) AppendTechnicalTopic(ctx context.Context, id, topic string) bool {
	return r.mutate(ctx, "adding technical topic", id, func(iv *interview.Interview, _ time.Time) {
		iv.TechnicalTopics = append(iv.TechnicalTopics, interview.TechnicalTopic{
			ID:        r.newID(),
			Topic:     topic,
			Prepared:  false,
			Notes:     "",
			Resources: []string{},
		})
	})
}
