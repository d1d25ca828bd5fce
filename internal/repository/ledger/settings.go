package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/retail-hr/internal/domain/settings"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
)

type settingsRepositoryImpl struct {
	store store.Store
}

func NewSettingsRepository(st store.Store) settings.SettingsRepository {
	return &settingsRepositoryImpl{store: st}
}

func (r *settingsRepositoryImpl) Load(ctx context.Context) (settings.Settings, error) {
	data, version, err := r.store.Load(ctx, store.KeySettings)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("load %s: %w", store.KeySettings, err)
	}

	s := settings.Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return settings.Settings{}, fmt.Errorf("decode %s: %w", store.KeySettings, err)
	}
	s.Version = version
	return s, nil
}

func (r *settingsRepositoryImpl) Save(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return s, fmt.Errorf("encode %s: %w", store.KeySettings, err)
	}
	version, err := r.store.Save(ctx, store.KeySettings, data, s.Version)
	if err != nil {
		return s, fmt.Errorf("save %s: %w", store.KeySettings, err)
	}
	s.Version = version
	return s, nil
}
