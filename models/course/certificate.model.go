package course

import (
	"time"

	"gorm.io/gorm"
)

// CertificateRequest represents a learner's request for a completion
// certificate, reviewed by an admin.
type CertificateRequest struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index;not null"`
	CourseCMSID string `json:"course_cms_id" gorm:"index;not null"`

	Status          string     `json:"status" gorm:"default:'PENDING'"` // PENDING, APPROVED, REJECTED
	RequestedAt     time.Time  `json:"requested_at"`
	ApprovedAt      *time.Time `json:"approved_at"`
	ApprovedBy      *uint      `json:"approved_by"`
	RejectionReason string     `json:"rejection_reason"`
	IsDeleted       bool       `gorm:"default:false"`
}

// Certificate is an issued completion certificate. No rendered artifact is
// stored; the certificate number is the verifiable record.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	CourseCMSID       string    `json:"course_cms_id" gorm:"index;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	IssuedAt          time.Time `json:"issued_at"`
	IsDeleted         bool      `gorm:"default:false"`
}
