package persistence

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
	"github.com/khoahotran/portfolio-showcase/internal/domain/kv"
	"github.com/khoahotran/portfolio-showcase/internal/domain/kv/mocks"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type InterviewRepoTestSuite struct {
	suite.Suite
	ctx   context.Context
	store kv.Store
	repo  *kvInterviewRepo
	clock time.Time
	seq   int
}

func (s *InterviewRepoTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newSQLiteStore(s.T())
	s.clock = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	s.seq = 0

	s.repo = NewKVInterviewRepo(s.store, logger.NewNop()).(*kvInterviewRepo)
	s.repo.now = func() time.Time { return s.clock }
	s.repo.newID = func() string {
		s.seq++
		return "sub-" + strconv.Itoa(s.seq)
	}
}

func TestInterviewRepo(t *testing.T) {
	suite.Run(t, new(InterviewRepoTestSuite))
}

func (s *InterviewRepoTestSuite) newInterview(id, company string) interview.Interview {
	return interview.New(id, company, "Engineer", "2025-01-01T10:00:00.000Z", "", s.clock)
}

func (s *InterviewRepoTestSuite) Test_List_EmptyStore() {
	s.Equal([]interview.Interview{}, s.repo.List(s.ctx))
}

func (s *InterviewRepoTestSuite) Test_List_MalformedBlobFailsOpen() {
	s.Require().NoError(s.store.Set(s.ctx, interview.StorageKey, "[{broken"))
	s.Equal([]interview.Interview{}, s.repo.List(s.ctx))
}

func (s *InterviewRepoTestSuite) Test_Save_NewInterview() {
	iv := interview.New("iv-1", "Acme", "Engineer", "2025-01-01T10:00:00.000Z", "", s.clock)
	s.True(s.repo.Save(s.ctx, iv))

	list := s.repo.List(s.ctx)
	s.Require().Len(list, 1)
	s.Equal("Acme", list[0].Company)
	s.Equal(interview.StatusScheduled, list[0].Status)
	s.Equal([]interview.Question{}, list[0].Questions)
	s.Equal([]interview.TechnicalTopic{}, list[0].TechnicalTopics)
}

func (s *InterviewRepoTestSuite) Test_Save_ExistingReplacesInPlace() {
	s.Require().True(s.repo.Save(s.ctx, s.newInterview("a", "Acme")))
	s.Require().True(s.repo.Save(s.ctx, s.newInterview("b", "Globex")))
	s.Require().True(s.repo.Save(s.ctx, s.newInterview("c", "Initech")))

	s.clock = s.clock.Add(time.Hour)
	edited := s.repo.List(s.ctx)[1]
	edited.Notes = "bring portfolio"
	s.True(s.repo.Save(s.ctx, edited))

	list := s.repo.List(s.ctx)
	s.Require().Len(list, 3)
	s.Equal("b", list[1].ID)
	s.Equal("bring portfolio", list[1].Notes)
	s.Equal("2025-01-01T09:00:00.000Z", list[1].UpdatedAt)
	s.Equal("2025-01-01T08:00:00.000Z", list[1].CreatedAt)
	s.Equal("Globex", list[1].Company)
	s.Equal("2025-01-01T08:00:00.000Z", list[0].UpdatedAt)
}

func (s *InterviewRepoTestSuite) Test_Remove() {
	first := s.newInterview("first", "Acme")
	second := s.newInterview("second", "Globex")
	s.Require().True(s.repo.Save(s.ctx, first))
	s.Require().True(s.repo.Save(s.ctx, second))

	s.True(s.repo.Remove(s.ctx, first.ID))

	list := s.repo.List(s.ctx)
	s.Require().Len(list, 1)
	s.Equal(second, list[0])
}

func (s *InterviewRepoTestSuite) Test_Remove_UnknownIDIsIdempotent() {
	s.Require().True(s.repo.Save(s.ctx, s.newInterview("a", "Acme")))
	before := s.repo.List(s.ctx)

	s.True(s.repo.Remove(s.ctx, "missing"))
	s.Equal(before, s.repo.List(s.ctx))
}

func (s *InterviewRepoTestSuite) Test_UpdateStatus() {
	s.Require().True(s.repo.Save(s.ctx, s.newInterview("a", "Acme")))
	s.clock = s.clock.Add(time.Minute)

	s.True(s.repo.UpdateStatus(s.ctx, "a", interview.StatusCompleted, ""))
	got, ok := s.repo.Get(s.ctx, "a")
	s.Require().True(ok)
	s.Equal(interview.StatusCompleted, got.Status)
	s.Empty(got.Feedback)
	s.Equal("2025-01-01T08:01:00.000Z", got.UpdatedAt)

	// any status may follow any other
	s.True(s.repo.UpdateStatus(s.ctx, "a", interview.StatusScheduled, "went well"))
	got, _ = s.repo.Get(s.ctx, "a")
	s.Equal(interview.StatusScheduled, got.Status)
	s.Equal("went well", got.Feedback)

	// empty feedback keeps the previous one
	s.True(s.repo.UpdateStatus(s.ctx, "a", interview.StatusOffered, ""))
	got, _ = s.repo.Get(s.ctx, "a")
	s.Equal("went well", got.Feedback)
}

func (s *InterviewRepoTestSuite) Test_UpdateStatus_UnknownID() {
	s.Require().True(s.repo.Save(s.ctx, s.newInterview("a", "Acme")))
	raw, _, err := s.store.Get(s.ctx, interview.StorageKey)
	s.Require().NoError(err)

	s.False(s.repo.UpdateStatus(s.ctx, "missing", interview.StatusRejected, "no"))

	after, _, err := s.store.Get(s.ctx, interview.StorageKey)
	s.Require().NoError(err)
	s.Equal(raw, after)
}

func (s *InterviewRepoTestSuite) Test_AppendQuestion() {
	s.Require().True(s.repo.Save(s.ctx, s.newInterview("a", "Acme")))

	s.True(s.repo.AppendQuestion(s.ctx, "a", "Tell me about yourself"))

	got, _ := s.repo.Get(s.ctx, "a")
	s.Require().Len(got.Questions, 1)
	q := got.Questions[0]
	s.Equal("Tell me about yourself", q.Question)
	s.Equal("", q.Answer)
	s.NotEmpty(q.Timestamp)
	s.NotEmpty(q.ID)

	s.False(s.repo.AppendQuestion(s.ctx, "missing", "Why us?"))
}

func (s *InterviewRepoTestSuite) Test_AppendTechnicalTopic() {
	s.Require().True(s.repo.Save(s.ctx, s.newInterview("a", "Acme")))

	s.True(s.repo.AppendTechnicalTopic(s.ctx, "a", "Goroutines"))
	s.True(s.repo.AppendTechnicalTopic(s.ctx, "a", "Channels"))

	got, _ := s.repo.Get(s.ctx, "a")
	s.Require().Len(got.TechnicalTopics, 2)
	s.Equal("Goroutines", got.TechnicalTopics[0].Topic)
	s.False(got.TechnicalTopics[0].Prepared)
	s.Equal([]string{}, got.TechnicalTopics[0].Resources)
	s.NotEqual(got.TechnicalTopics[0].ID, got.TechnicalTopics[1].ID)
}

func (s *InterviewRepoTestSuite) Test_LastWriterWins() {
	s.Require().True(s.repo.Save(s.ctx, s.newInterview("a", "Acme")))

	// A stale snapshot saved after a newer mutation overwrites it.
	stale, _ := s.repo.Get(s.ctx, "a")
	s.Require().True(s.repo.AppendQuestion(s.ctx, "a", "Q1"))
	s.Require().True(s.repo.Save(s.ctx, stale))

	got, _ := s.repo.Get(s.ctx, "a")
	s.Empty(got.Questions)
}

func TestInterviewRepo_ReadFailureReportsFalseWithoutWriting(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.On("Get", mock.Anything, interview.StorageKey).Return("", false, errors.New("io error"))

	repo := NewKVInterviewRepo(store, logger.NewNop())
	ctx := context.Background()

	require.Equal(t, []interview.Interview{}, repo.List(ctx))
	require.False(t, repo.Save(ctx, interview.New("a", "Acme", "Dev", "", "", time.Now())))
	require.False(t, repo.Remove(ctx, "a"))
	require.False(t, repo.UpdateStatus(ctx, "a", interview.StatusCompleted, ""))
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestInterviewRepo_WriteFailureReportsFalse(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.On("Get", mock.Anything, interview.StorageKey).Return("[]", true, nil)
	store.On("Set", mock.Anything, interview.StorageKey, mock.Anything).Return(errors.New("quota exceeded"))

	repo := NewKVInterviewRepo(store, logger.NewNop())
	require.False(t, repo.Save(context.Background(), interview.New("a", "Acme", "Dev", "", "", time.Now())))
}
