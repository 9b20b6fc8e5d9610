package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment purposes
const (
	PaymentPurposePackage    = "PACKAGE"
	PaymentPurposeStaffSeats = "STAFF_SEATS"
)

// Payment statuses
const (
	PaymentStatusCompleted = "COMPLETED"
)

// Payment is an immutable record of a confirmed purchase. Rows are only ever
// created; the unique session ID makes client-driven confirmation idempotent.
type Payment struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"index;not null"`
	Purpose string `json:"purpose" gorm:"not null"` // PACKAGE, STAFF_SEATS
	Seats   int    `json:"seats" gorm:"default:0"`  // STAFF_SEATS only

	Amount   int64  `json:"amount"` // minor units, as reported by Stripe
	Currency string `json:"currency"`
	Status   string `json:"status" gorm:"not null"`

	StripeSessionID       string `json:"stripe_session_id" gorm:"unique;not null"`
	StripePaymentIntentID string `json:"stripe_payment_intent_id"`

	PaidAt    time.Time `json:"paid_at"`
	IsDeleted bool      `gorm:"default:false"`
}
