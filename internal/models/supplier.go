package models

import "time"

// Supplier kinds: natural or legal person.
const (
	PersonNatural = "PF"
	PersonLegal   = "PJ"
)

type Supplier struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"` // PF or PJ
	Document  string    `gorm:"uniqueIndex" json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Notes     string    `json:"notes"`
	Active    bool      `json:"active"`
	UserID    uint      `gorm:"index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
