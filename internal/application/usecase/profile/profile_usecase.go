package profile

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/domain/profile"
	"github.com/khoahotran/portfolio-showcase/pkg/apperror"
	"github.com/khoahotran/portfolio-showcase/pkg/idgen"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

var tracer = otel.Tracer("profile_usecase")

type ProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Logger
	newID       func() string
}

func NewProfileUseCase(repo profile.Repository, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		logger:      log,
		newID:       idgen.New,
	}
}

type GetProfileOutput struct {
	Profile *profile.Profile
	Seeded  bool
}

// ExecuteGetProfile loads the profile, seeding the default one on first run.
// A failed seed is logged and the default is still returned. When the store
// could not be read the default is returned without being written.
func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteGetProfile")
	defer span.End()

	p, state := uc.profileRepo.Load(ctx)
	span.SetAttributes(attribute.String("load_state", state.String()))
	def := profile.Default()
	def.Normalize()

	switch state {
	case profile.LoadFound:
		return &GetProfileOutput{Profile: p}, nil
	case profile.LoadDegraded:
		uc.logger.Warn("Profile store unreadable, serving default without seeding")
		return &GetProfileOutput{Profile: def}, nil
	}

	if err := uc.profileRepo.Save(ctx, def); err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to seed default profile", err)
	} else {
		uc.logger.Info("Seeded default profile", zap.String("name", def.Name))
	}
	span.SetAttributes(attribute.Bool("seeded", true))
	return &GetProfileOutput{Profile: def, Seeded: true}, nil
}

type UpdateProfileInput struct {
	Profile *profile.Profile
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteUpdateProfile")
	defer span.End()

	if input.Profile == nil {
		return nil, apperror.NewInvalidInput("profile body is required", nil)
	}

	p := input.Profile
	p.Normalize()
	p.AssignIDs(uc.newID)
	if err := p.Validate(); err != nil {
		span.RecordError(err)
		if errors.Is(err, profile.ErrDuplicateID) {
			return nil, apperror.NewInvalidInput(err.Error(), err)
		}
		return nil, apperror.NewInternal("validate profile", err)
	}

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &UpdateProfileOutput{Profile: p}, nil
}

func (uc *ProfileUseCase) ExecuteResetProfile(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "ExecuteResetProfile")
	defer span.End()

	if err := uc.profileRepo.Clear(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	uc.logger.Info("Profile data cleared")
	return nil
}
