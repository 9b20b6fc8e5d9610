package models

import (
	"time"

	"gorm.io/gorm"
)

// Staff seat statuses
const (
	SeatStatusInvited = "INVITED"
	SeatStatusActive  = "ACTIVE"
	SeatStatusRevoked = "REVOKED"
)

// StaffSeat is a paid access grant assigned by a business owner to a
// subordinate account. A seat starts INVITED, becomes ACTIVE when the staff
// user accepts the invite token, and can be revoked by the owner.
type StaffSeat struct {
	gorm.Model
	OwnerID     uint  `json:"owner_id" gorm:"index;not null"`
	StaffUserID *uint `json:"staff_user_id" gorm:"index"`
	PaymentID   uint  `json:"payment_id" gorm:"index;not null"`

	StaffEmail  string `json:"staff_email" gorm:"not null"`
	InviteToken string `json:"-" gorm:"unique;not null"`
	Status      string `json:"status" gorm:"default:'INVITED'"`

	AcceptedAt *time.Time `json:"accepted_at"`
	RevokedAt  *time.Time `json:"revoked_at"`
	IsDeleted  bool       `gorm:"default:false"`
}
