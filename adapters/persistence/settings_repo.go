package persistence

import (
	"context"

	"github.com/khoahotran/portfolio-showcase/internal/domain/kv"
	"github.com/khoahotran/portfolio-showcase/internal/domain/settings"
	"github.com/khoahotran/portfolio-showcase/pkg/apperror"
)

type kvSettingsRepo struct {
	store kv.Store
}

func NewKVSettingsRepo(store kv.Store) settings.Repository {
	return &kvSettingsRepo{store: store}
}

func (r *kvSettingsRepo) LoadTheme(ctx context.Context) (settings.Theme, error) {
	raw, found, err := r.store.Get(ctx, settings.KeyTheme)
	if err != nil {
		return settings.ThemeLight, apperror.NewPersistence("failed to load theme", err)
	}
	if found && settings.Theme(raw) == settings.ThemeDark {
		return settings.ThemeDark, nil
	}
	return settings.ThemeLight, nil
}

func (r *kvSettingsRepo) SaveTheme(ctx context.Context, t settings.Theme) error {
	if err := r.store.Set(ctx, settings.KeyTheme, string(t)); err != nil {
		return apperror.NewPersistence("failed to save theme", err)
	}
	return nil
}
