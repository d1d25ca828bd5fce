package settings

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/retail-hr/internal/domain/settings"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
	"github.com/cmlabs-hris/retail-hr/internal/repository/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_DefaultsAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(store.NewLocker(), ledger.NewSettingsRepository(store.NewMemoryStore()))

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, got.HousingRate.Equal(decimal.RequireFromString("0.25")))

	name := "Corner Mart"
	rate := decimal.RequireFromString("0.3")
	updated, err := svc.UpdateSettings(ctx, settings.UpdateSettingsRequest{CompanyName: &name, HousingRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, "Corner Mart", updated.CompanyName)
	assert.True(t, updated.HousingRate.Equal(rate))
	assert.Equal(t, got.Currency, updated.Currency)

	got, err = svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Corner Mart", got.CompanyName)
}

func TestSettingsService_RejectsInvalidRate(t *testing.T) {
	svc := NewSettingsService(store.NewLocker(), ledger.NewSettingsRepository(store.NewMemoryStore()))

	rate := decimal.NewFromInt(2)
	_, err := svc.UpdateSettings(context.Background(), settings.UpdateSettingsRequest{InsuranceRate: &rate})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "insurance_rate", verrs[0].Field)
}
