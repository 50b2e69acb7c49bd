package settings

import "context"

const KeyTheme = "theme"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsDark() bool { return t == ThemeDark }

func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Settings is the process-wide preference value handed to collaborators
// instead of ambient UI state.
type Settings struct {
	Theme Theme `json:"theme"`
}

type Repository interface {
	// LoadTheme returns ThemeLight when nothing has been stored yet.
	LoadTheme(ctx context.Context) (Theme, error)
	SaveTheme(ctx context.Context, t Theme) error
}
