package course

import "gorm.io/gorm"

// QuizQuestion is a question attached to a lesson's quiz, mirrored from the CMS.
type QuizQuestion struct {
	gorm.Model
	CMSID       string `json:"cms_id" gorm:"uniqueIndex;not null"`
	LessonCMSID string `json:"lesson_cms_id" gorm:"index;not null"`
	Prompt      string `json:"prompt"`
	Position    int    `json:"position" gorm:"default:0"`
	IsDeleted   bool   `gorm:"default:false"`
}

// QuizOption is an answer option for a quiz question. IsCorrect is stripped
// before options are returned to course players.
type QuizOption struct {
	gorm.Model
	CMSID         string `json:"cms_id" gorm:"uniqueIndex;not null"`
	QuestionCMSID string `json:"question_cms_id" gorm:"index;not null"`
	OptionText    string `json:"option_text"`
	IsCorrect     bool   `json:"is_correct" gorm:"default:false"`
	Position      int    `json:"position" gorm:"default:0"`
	IsDeleted     bool   `gorm:"default:false"`
}
