package models

import "gorm.io/gorm"

// QuizSubmission records a quiz submission for a lesson. Scoring is
// bookkeeping only: submitting completes the module regardless of correctness.
type QuizSubmission struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	CourseID string `json:"course_id" gorm:"index;not null"`
	ModuleID string `json:"module_id" gorm:"index;not null"`
	LessonID string `json:"lesson_id" gorm:"not null"`

	SelectedOptions string `json:"selected_options"` // JSON array of selected option IDs
	Score           int    `json:"score"`
	MaxScore        int    `json:"max_score"`
	AttemptNumber   int    `json:"attempt_number" gorm:"default:1"`
	IsDeleted       bool   `gorm:"default:false"`
}
