package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-showcase/internal/domain/kv/mocks"
	"github.com/khoahotran/portfolio-showcase/internal/domain/settings"
	"github.com/khoahotran/portfolio-showcase/pkg/apperror"
)

func TestSettingsRepo_Theme(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)
	repo := NewKVSettingsRepo(store)

	theme, err := repo.LoadTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.ThemeLight, theme)

	require.NoError(t, repo.SaveTheme(ctx, settings.ThemeDark))
	raw, _, _ := store.Get(ctx, settings.KeyTheme)
	assert.Equal(t, "dark", raw)

	theme, err = repo.LoadTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.ThemeDark, theme)

	require.NoError(t, store.Set(ctx, settings.KeyTheme, "sepia"))
	theme, err = repo.LoadTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.ThemeLight, theme)
}

func TestSettingsRepo_Errors(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.On("Get", mock.Anything, settings.KeyTheme).Return("", false, errors.New("io"))
	store.On("Set", mock.Anything, settings.KeyTheme, "dark").Return(errors.New("io"))
	repo := NewKVSettingsRepo(store)

	theme, err := repo.LoadTheme(context.Background())
	assert.Equal(t, settings.ThemeLight, theme)
	assert.ErrorIs(t, err, apperror.ErrPersistence)

	assert.ErrorIs(t, repo.SaveTheme(context.Background(), settings.ThemeDark), apperror.ErrPersistence)
}
