package settings

import "context"

// SettingsRepository returns Default() when nothing has been saved yet.
type SettingsRepository interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) (Settings, error)
}
