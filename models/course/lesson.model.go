package course

import "gorm.io/gorm"

// Lesson is an ordered content unit within a module, mirrored from the CMS.
// A lesson may carry a quiz; HasQuiz is denormalized so the player can decide
// the completion trigger without loading quiz rows.
type Lesson struct {
	gorm.Model
	CMSID       string `json:"cms_id" gorm:"uniqueIndex;not null"`
	ModuleCMSID string `json:"module_cms_id" gorm:"index;not null"`
	Title       string `json:"title"`
	ContentType string `json:"content_type" gorm:"default:'TEXT'"` // TEXT, VIDEO
	Body        string `json:"body" gorm:"type:text"`
	VideoURL    string `json:"video_url"`
	Position    int    `json:"position" gorm:"default:0"`
	HasQuiz     bool   `json:"has_quiz" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
