package loantype

import "time"

// LoanType is one catalog entry supplying the policy bounds used when an
// application is submitted.
type LoanType struct {
	ID   uint64 `gorm:"primaryKey;column:id" json:"-"`
	Code string `gorm:"size:32;uniqueIndex:ux_loan_types_code" json:"code"`
	Name string `gorm:"size:64" json:"name"`

	MinAmount       float64 `gorm:"type:decimal(18,2)" json:"min_amount"`
	MaxAmount       float64 `gorm:"type:decimal(18,2)" json:"max_amount"`
	MinTenureMonths int     `json:"min_tenure_months"`
	MaxTenureMonths int     `json:"max_tenure_months"`

	InterestRateMin float64 `gorm:"type:decimal(6,4)" json:"interest_rate_min"`
	InterestRateMax float64 `gorm:"type:decimal(6,4)" json:"interest_rate_max"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanType) TableName() string { return "loan_types" }

// DefaultCatalog is the seed set installed on first boot.
func DefaultCatalog() []LoanType {
	return []LoanType{
		{Code: "personal", Name: "Personal Loan", MinAmount: 10_000, MaxAmount: 2_500_000,
			MinTenureMonths: 6, MaxTenureMonths: 60, InterestRateMin: 10.5, InterestRateMax: 18, Active: true},
		{Code: "home", Name: "Home Loan", MinAmount: 100_000, MaxAmount: 30_000_000,
			MinTenureMonths: 12, MaxTenureMonths: 360, InterestRateMin: 8.5, InterestRateMax: 12, Active: true},
		{Code: "vehicle", Name: "Vehicle Loan", MinAmount: 50_000, MaxAmount: 2_000_000,
			MinTenureMonths: 6, MaxTenureMonths: 84, InterestRateMin: 9, InterestRateMax: 14, Active: true},
		{Code: "business", Name: "Business Loan", MinAmount: 100_000, MaxAmount: 10_000_000,
			MinTenureMonths: 6, MaxTenureMonths: 120, InterestRateMin: 11, InterestRateMax: 20, Active: true},
		{Code: "education", Name: "Education Loan", MinAmount: 50_000, MaxAmount: 5_000_000,
			MinTenureMonths: 6, MaxTenureMonths: 96, InterestRateMin: 9.5, InterestRateMax: 15, Active: true},
	}
}
