package models

import "time"

// Receivable statuses.
const (
	ReceivableStatusPending  = "PENDING"
	ReceivableStatusReceived = "RECEIVED"
	ReceivableStatusOverdue  = "OVERDUE"
	ReceivableStatusCanceled = "CANCELED"
)

// Receivable is a money obligation owed to the user by a client.
type Receivable struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	DueDate       string  `gorm:"index" json:"dueDate"`
	ReceivedDate  *string `json:"receivedDate"` // non-nil iff Status == RECEIVED
	Status        string  `gorm:"index;default:PENDING" json:"status"`
	ReceiptMethod string  `json:"receiptMethod"`
	Notes         string  `json:"notes"`

	UserID        uint  `gorm:"index" json:"userId"`
	ClientID      uint  `json:"clientId"`
	BankAccountID *uint `json:"bankAccountId"`

	Client      *Client      `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	BankAccount *BankAccount `gorm:"foreignKey:BankAccountID" json:"bankAccount,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
