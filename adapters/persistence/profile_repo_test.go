package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/portfolio-showcase/internal/domain/kv"
	"github.com/khoahotran/portfolio-showcase/internal/domain/kv/mocks"
	"github.com/khoahotran/portfolio-showcase/internal/domain/profile"
	"github.com/khoahotran/portfolio-showcase/pkg/apperror"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type ProfileRepoTestSuite struct {
	suite.Suite
	ctx   context.Context
	store kv.Store
	repo  profile.Repository
}

func (s *ProfileRepoTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newSQLiteStore(s.T())
	s.repo = NewKVProfileRepo(s.store, false, logger.NewNop())
}

func TestProfileRepo(t *testing.T) {
	suite.Run(t, new(ProfileRepoTestSuite))
}

func (s *ProfileRepoTestSuite) Test_Load_EmptyStore() {
	p, state := s.repo.Load(s.ctx)

	s.Equal(profile.LoadEmpty, state)
	s.Equal(profile.Empty(), p)
}

func (s *ProfileRepoTestSuite) Test_SaveLoad_RoundTrip() {
	want := profile.Default()
	s.Require().NoError(s.repo.Save(s.ctx, want))

	got, state := s.repo.Load(s.ctx)
	s.Equal(profile.LoadFound, state)
	s.Equal(want, got)
}

func (s *ProfileRepoTestSuite) Test_SaveLoad_UnsetListsComeBackEmpty() {
	want := &profile.Profile{
		Name:        "Ada",
		Title:       "Engineer",
		Projects:    []profile.Project{{ID: "p1", Title: "Engine"}},
		ContactInfo: profile.ContactInfo{Email: "ada@example.com"},
	}
	s.Require().NoError(s.repo.Save(s.ctx, want))

	got, state := s.repo.Load(s.ctx)
	s.Equal(profile.LoadFound, state)
	s.Equal("Ada", got.Name)
	s.Equal("ada@example.com", got.ContactInfo.Email)
	s.NotNil(got.Education)
	s.Empty(got.Education)
	s.NotNil(got.Skills)
	s.NotNil(got.Testimonials)
	s.NotNil(got.Certificates)
	s.Require().Len(got.Projects, 1)
	s.Equal([]string{}, got.Projects[0].Technologies)
}

func (s *ProfileRepoTestSuite) Test_Save_WritesEveryPartition() {
	s.Require().NoError(s.repo.Save(s.ctx, profile.Default()))

	for _, key := range profile.PartitionKeys {
		_, found, err := s.store.Get(s.ctx, key)
		s.Require().NoError(err)
		s.True(found, key)
	}
}

func (s *ProfileRepoTestSuite) Test_Clear_ThenLoad() {
	s.Require().NoError(s.repo.Save(s.ctx, profile.Default()))
	s.Require().NoError(s.repo.Clear(s.ctx))

	got, state := s.repo.Load(s.ctx)
	s.Equal(profile.LoadEmpty, state)
	s.Empty(got.Name)
	s.Empty(got.Title)
	s.Empty(got.Bio)
	s.Empty(got.ProfileImage)
	s.Equal(profile.ContactInfo{}, got.ContactInfo)
	s.Equal([]profile.Education{}, got.Education)
	s.Equal([]profile.Skill{}, got.Skills)
	s.Equal([]profile.Project{}, got.Projects)
	s.Equal([]profile.Testimonial{}, got.Testimonials)
	s.Equal([]profile.Certificate{}, got.Certificates)
}

func (s *ProfileRepoTestSuite) Test_Load_MalformedPartitionFallsBackToEmpty() {
	s.Require().NoError(s.repo.Save(s.ctx, profile.Default()))
	s.Require().NoError(s.store.Set(s.ctx, profile.KeySkills, "{not json"))
	s.Require().NoError(s.store.Set(s.ctx, profile.KeyContactInfo, `["wrong","shape"]`))

	got, state := s.repo.Load(s.ctx)
	s.Equal(profile.LoadFound, state)
	s.Equal([]profile.Skill{}, got.Skills)
	s.Equal(profile.ContactInfo{}, got.ContactInfo)
	s.Equal(profile.Default().Education, got.Education)
	s.Equal("Chauhan", got.Name)
}

func (s *ProfileRepoTestSuite) Test_Load_NullListPartition() {
	s.Require().NoError(s.store.Set(s.ctx, profile.KeyProjects, "null"))

	got, state := s.repo.Load(s.ctx)
	s.Equal(profile.LoadFound, state)
	s.Equal([]profile.Project{}, got.Projects)
}

func (s *ProfileRepoTestSuite) Test_Save_PartialFailureIsNotRolledBack() {
	failing := &failingStore{Store: s.store, failKeys: map[string]bool{profile.KeySkills: true}}
	repo := NewKVProfileRepo(failing, false, logger.NewNop())

	updated := profile.Default()
	updated.Name = "Updated"
	err := repo.Save(s.ctx, updated)

	s.Require().Error(err)
	s.True(errors.Is(err, apperror.ErrPersistence))

	got, _ := s.repo.Load(s.ctx)
	s.Equal("Updated", got.Name)
	s.Empty(got.Skills)
}

func (s *ProfileRepoTestSuite) Test_Save_AtomicWritesUseBatch() {
	repo := NewKVProfileRepo(s.store, true, logger.NewNop())
	s.Require().NoError(repo.Save(s.ctx, profile.Default()))

	got, state := repo.Load(s.ctx)
	s.Equal(profile.LoadFound, state)
	s.Equal(profile.Default(), got)
}

func TestProfileRepo_Load_ReadErrorsAreReportedAsDegraded(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.On("Get", mock.Anything, profile.KeyBasicInfo).Return(`{"name":"Ada"}`, true, nil)
	store.On("Get", mock.Anything, mock.Anything).Return("", false, errors.New("io error"))

	repo := NewKVProfileRepo(store, false, logger.NewNop())
	got, state := repo.Load(context.Background())

	require.Equal(t, profile.LoadDegraded, state)
	require.Equal(t, "Ada", got.Name)
	require.Equal(t, []profile.Skill{}, got.Skills)
}

func TestProfileRepo_Load_AllReadsFailingIsNotEmpty(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.On("Get", mock.Anything, mock.Anything).Return("", false, errors.New("database is locked"))

	repo := NewKVProfileRepo(store, false, logger.NewNop())
	got, state := repo.Load(context.Background())

	require.Equal(t, profile.LoadDegraded, state)
	require.Equal(t, profile.Empty(), got)
}

func TestProfileRepo_Clear_Failure(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.On("Remove", mock.Anything, profile.PartitionKeys).Return(errors.New("io error"))

	repo := NewKVProfileRepo(store, false, logger.NewNop())
	err := repo.Clear(context.Background())

	require.Error(t, err)
	require.ErrorIs(t, err, apperror.ErrPersistence)
}

func TestProfileRepo_Save_AtomicFallsBackWithoutBatcher(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(len(profile.PartitionKeys))

	repo := NewKVProfileRepo(store, true, logger.NewNop())
	require.NoError(t, repo.Save(context.Background(), profile.Default()))
}
