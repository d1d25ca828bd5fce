package settings

import (
	"github.com/cmlabs-hris/retail-hr/internal/domain/document"
	"github.com/cmlabs-hris/retail-hr/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Settings is the single company-wide configuration record.
type Settings struct {
	CompanyName      string          `json:"companyName"`
	Currency         string          `json:"currency"`
	HousingRate      decimal.Decimal `json:"housingRate"`
	TransportRate    decimal.Decimal `json:"transportRate"`
	InsuranceRate    decimal.Decimal `json:"insuranceRate"`
	ExpiringSoonDays int             `json:"expiringSoonDays"`

	Version int64 `json:"-"`
}

func Default() Settings {
	rates := payroll.DefaultRates()
	return Settings{
		CompanyName:      "Retail HR",
		Currency:         "SAR",
		HousingRate:      rates.Housing,
		TransportRate:    rates.Transport,
		InsuranceRate:    rates.Insurance,
		ExpiringSoonDays: document.DefaultExpiringSoonDays,
	}
}

// Rates returns the payroll percentages.
func (s Settings) Rates() payroll.Rates {
	return payroll.Rates{
		Housing:   s.HousingRate,
		Transport: s.TransportRate,
		Insurance: s.InsuranceRate,
	}
}

// SoonDays falls back to the document default when unset.
func (s Settings) SoonDays() int {
	if s.ExpiringSoonDays <= 0 {
		return document.DefaultExpiringSoonDays
	}
	return s.ExpiringSoonDays
}
