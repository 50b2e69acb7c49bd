package settings

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/domain/settings"
	"github.com/khoahotran/portfolio-showcase/pkg/apperror"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

var tracer = otel.Tracer("settings_usecase")

// SettingsUseCase owns the single process-wide Settings value. Collaborators
// read it through Current instead of keeping their own copy.
type SettingsUseCase struct {
	repo   settings.Repository
	logger logger.Logger

	mu      sync.RWMutex
	current settings.Settings
}

func NewSettingsUseCase(repo settings.Repository, log logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{
		repo:    repo,
		logger:  log,
		current: settings.Settings{Theme: settings.ThemeLight},
	}
}

// Load reads the stored preferences once at startup. A read failure keeps the
// light theme.
func (uc *SettingsUseCase) Load(ctx context.Context) settings.Settings {
	ctx, span := tracer.Start(ctx, "Load")
	defer span.End()

	theme, err := uc.repo.LoadTheme(ctx)
	if err != nil {
		span.RecordError(err)
		uc.logger.Warn("Failed to load theme, using light", zap.Error(err))
		theme = settings.ThemeLight
	}

	uc.mu.Lock()
	uc.current.Theme = theme
	s := uc.current
	uc.mu.Unlock()
	return s
}

func (uc *SettingsUseCase) Current() settings.Settings {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current
}

// Toggle flips the theme and writes it through. The in-memory value flips
// even when the write fails.
func (uc *SettingsUseCase) Toggle(ctx context.Context) (settings.Settings, error) {
	ctx, span := tracer.Start(ctx, "Toggle")
	defer span.End()

	uc.mu.Lock()
	uc.current.Theme = uc.current.Theme.Toggled()
	s := uc.current
	uc.mu.Unlock()

	span.SetAttributes(attribute.String("theme", string(s.Theme)))
	if err := uc.repo.SaveTheme(ctx, s.Theme); err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to save theme", err, zap.String("theme", string(s.Theme)))
		return s, apperror.NewInternal("save theme preference", err)
	}
	return s, nil
}
