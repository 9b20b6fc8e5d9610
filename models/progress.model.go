package models

import "gorm.io/gorm"

// UserCourseProgress is the denormalized per-(user, course) progress snapshot.
// At most one row per pair, enforced by the composite unique index; the index
// is the only atomicity guarantee for concurrent writes (last write wins per
// request).
//
// CompletedModuleIDs is a JSON-encoded array of CMS module IDs. Percent is a
// cached derived value and stays independently writable by the client, matching
// the external contract.
type UserCourseProgress struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID string `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"` // CMS course ID

	CompletedModuleIDs string   `json:"completed_module_ids" gorm:"type:text"`
	Percent            *float64 `json:"percent"`
	LastModuleID       *string  `json:"last_module_id"`
	LastLessonID       *string  `json:"last_lesson_id"`

	// Version is bumped on every write. Epoch is bumped when an admin resets
	// the row; full-set writes carrying a stale epoch are discarded so a reset
	// cannot be undone by a stale client cache.
	Version int64 `json:"version" gorm:"default:0"`
	Epoch   int64 `json:"epoch" gorm:"default:0"`
}
