package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodVNPay        PaymentMethod = "VNPAY"
)

type Payment struct {
	Base
	BookingID     uuid.UUID     `db:"booking_id"`
	Method        PaymentMethod `db:"method"`
	Amount        int64         `db:"amount"` // minor currency units
	Status        PaymentStatus `db:"status"`
	TransactionID *string       `db:"transaction_id"`
	ProofImageURL *string       `db:"proof_image_url"` // bank transfer receipt
}
