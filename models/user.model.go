package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleIndividual    = "INDIVIDUAL"
	RoleBusinessOwner = "BUSINESS_OWNER"
	RoleStaff         = "STAFF"
	RoleAdmin         = "ADMIN"
)

type User struct {
	gorm.Model
	Name     string `gorm:"default:''"`
	Email    string `gorm:"unique;not null"`
	Company  string `gorm:"default:''"`
	Role     string `gorm:"default:'INDIVIDUAL'"` // INDIVIDUAL, BUSINESS_OWNER, STAFF, ADMIN
	Password string `gorm:"not null"`

	// Payment-derived access flag. Set by a confirmed package purchase or an
	// accepted staff seat, cleared when the seat is revoked.
	HasAccess bool `gorm:"default:false"`

	// Unassigned seat credits held by a business owner.
	SeatCredits int `gorm:"default:0"`

	LastLogin           time.Time  `gorm:"default:NULL"`
	FailedLoginAttempts int        `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	IsDeleted           bool       `gorm:"default:false"`
}
