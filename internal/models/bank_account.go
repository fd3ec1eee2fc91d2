package models

import "time"

// Bank account kinds.
const (
	AccountChecking   = "CHECKING"
	AccountSavings    = "SAVINGS"
	AccountSalary     = "SALARY"
	AccountInvestment = "INVESTMENT"
)

type BankAccount struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	Bank              string  `json:"bank"`
	Branch            string  `json:"branch"`
	Number            string  `json:"number"`
	Kind              string  `json:"kind"`
	Balance           float64 `json:"balance"`
	ReconciledBalance float64 `json:"reconciledBalance"`
	LastReconciledAt  *string `json:"lastReconciledAt"`
	Notes             string  `json:"notes"`
	Active            bool    `json:"active"`

	UserID    uint      `gorm:"index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
