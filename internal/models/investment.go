package models

import "time"

// Investment kinds.
const (
	InvestmentFixedIncome    = "FIXED_INCOME"
	InvestmentVariableIncome = "VARIABLE_INCOME"
	InvestmentRealEstateFund = "REAL_ESTATE_FUND"
	InvestmentCrypto         = "CRYPTO"
	InvestmentOther          = "OTHER"
)

type Investment struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	Name           string   `json:"name"`
	Kind           string   `json:"kind"`
	InvestedAmount float64  `json:"investedAmount"`
	CurrentValue   float64  `json:"currentValue"`
	YieldPercent   *float64 `json:"yieldPercent"`
	StartDate      string   `json:"startDate"`
	MaturityDate   *string  `json:"maturityDate"`
	Institution    string   `json:"institution"`
	Notes          string   `json:"notes"`
	Active         bool     `json:"active"`

	UserID    uint      `gorm:"index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RefreshYield recomputes the yield percentage from invested vs. current
// value. Called by the controllers before persisting.
func (i *Investment) RefreshYield() {
	if i.InvestedAmount <= 0 {
		i.YieldPercent = nil
		return
	}
	y := (i.CurrentValue - i.InvestedAmount) / i.InvestedAmount * 100
	i.YieldPercent = &y
}
