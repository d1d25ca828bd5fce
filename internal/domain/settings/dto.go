package settings

import (
	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SettingsResponse struct {
	CompanyName      string          `json:"company_name"`
	Currency         string          `json:"currency"`
	HousingRate      decimal.Decimal `json:"housing_rate"`
	TransportRate    decimal.Decimal `json:"transport_rate"`
	InsuranceRate    decimal.Decimal `json:"insurance_rate"`
	ExpiringSoonDays int             `json:"expiring_soon_days"`
}

func ToResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:      s.CompanyName,
		Currency:         s.Currency,
		HousingRate:      s.HousingRate,
		TransportRate:    s.TransportRate,
		InsuranceRate:    s.InsuranceRate,
		ExpiringSoonDays: s.SoonDays(),
	}
}

type UpdateSettingsRequest struct {
	CompanyName      *string          `json:"company_name,omitempty"`
	Currency         *string          `json:"currency,omitempty"`
	HousingRate      *decimal.Decimal `json:"housing_rate,omitempty"`
	TransportRate    *decimal.Decimal `json:"transport_rate,omitempty"`
	InsuranceRate    *decimal.Decimal `json:"insurance_rate,omitempty"`
	ExpiringSoonDays *int             `json:"expiring_soon_days,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyName != nil && validator.IsEmpty(*r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "company_name", Message: "company_name cannot be empty"})
	}
	if r.Currency != nil && len(*r.Currency) != 3 {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "currency must be a 3-letter code"})
	}
	for field, rate := range map[string]*decimal.Decimal{
		"housing_rate":   r.HousingRate,
		"transport_rate": r.TransportRate,
		"insurance_rate": r.InsuranceRate,
	} {
		if rate != nil && (rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1))) {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be between 0 and 1"})
		}
	}
	if r.ExpiringSoonDays != nil && (*r.ExpiringSoonDays < 1 || *r.ExpiringSoonDays > 365) {
		errs = append(errs, validator.ValidationError{Field: "expiring_soon_days", Message: "expiring_soon_days must be between 1 and 365"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply returns s with the set fields replaced.
func (r UpdateSettingsRequest) Apply(s Settings) Settings {
	if r.CompanyName != nil {
		s.CompanyName = *r.CompanyName
	}
	if r.Currency != nil {
		s.Currency = *r.Currency
	}
	if r.HousingRate != nil {
		s.HousingRate = *r.HousingRate
	}
	if r.TransportRate != nil {
		s.TransportRate = *r.TransportRate
	}
	if r.InsuranceRate != nil {
		s.InsuranceRate = *r.InsuranceRate
	}
	if r.ExpiringSoonDays != nil {
		s.ExpiringSoonDays = *r.ExpiringSoonDays
	}
	return s
}
