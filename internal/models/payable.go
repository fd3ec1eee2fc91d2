package models

import "time"

// Payable statuses.
const (
	PayableStatusPending  = "PENDING"
	PayableStatusPaid     = "PAID"
	PayableStatusCanceled = "CANCELED"
)

// Payment methods, shared with receivables.
const (
	MethodCash       = "CASH"
	MethodCreditCard = "CREDIT_CARD"
	MethodDebitCard  = "DEBIT_CARD"
	MethodPix        = "PIX"
	MethodBoleto     = "BOLETO"
	MethodTransfer   = "TRANSFER"
)

// Payable is a money obligation owed by the user to a supplier.
// DueDate and PaidDate are YYYY-MM-DD strings; string order equals
// date order so range filters stay plain comparisons.
type Payable struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	DueDate       string  `gorm:"index" json:"dueDate"`
	PaidDate      *string `json:"paidDate"` // non-nil iff Status == PAID
	Status        string  `gorm:"index;default:PENDING" json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	Category      string  `json:"category"`
	Notes         string  `json:"notes"`
	ReceiptURL    string  `json:"receiptUrl"`

	UserID        uint  `gorm:"index" json:"userId"`
	SupplierID    uint  `json:"supplierId"`
	BankAccountID *uint `json:"bankAccountId"`
	CreditCardID  *uint `json:"creditCardId"`

	Supplier    *Supplier    `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	BankAccount *BankAccount `gorm:"foreignKey:BankAccountID" json:"bankAccount,omitempty"`
	CreditCard  *CreditCard  `gorm:"foreignKey:CreditCardID" json:"creditCard,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
