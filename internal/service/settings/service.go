package settings

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/retail-hr/internal/domain/settings"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
)

type SettingsServiceImpl struct {
	locker       *store.Locker
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(locker *store.Locker, settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{locker: locker, settingsRepo: settingsRepo}
}

func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (settings.SettingsResponse, error) {
	cfg, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings.ToResponse(cfg), nil
}

func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	unlock := s.locker.Lock(store.KeySettings)
	defer unlock()

	cfg, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}
	saved, err := s.settingsRepo.Save(ctx, req.Apply(cfg))
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings.ToResponse(saved), nil
}
