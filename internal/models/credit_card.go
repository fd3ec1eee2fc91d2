package models

import "time"

// Card networks.
const (
	NetworkVisa       = "VISA"
	NetworkMastercard = "MASTERCARD"
	NetworkAmex       = "AMEX"
	NetworkElo        = "ELO"
	NetworkHipercard  = "HIPERCARD"
	NetworkOther      = "OTHER"
)

type CreditCard struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Name             string  `json:"name"`
	Network          string  `json:"network"`
	Number           string  `json:"number"` // last digits only
	Limit            float64 `json:"limit"`
	DueDay           int     `json:"dueDay"`
	ClosingDay       int     `json:"closingDay"`
	CurrentStatement float64 `json:"currentStatement"`
	NextStatement    float64 `json:"nextStatement"`
	Notes            string  `json:"notes"`
	Active           bool    `json:"active"`

	UserID    uint      `gorm:"index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
