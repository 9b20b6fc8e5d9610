package course

import "gorm.io/gorm"

// Module is an ordered section within a course, mirrored from the CMS.
// Position is the module's index in the course's ordered list; the unlock
// frontier is computed over this ordering.
type Module struct {
	gorm.Model
	CMSID       string `json:"cms_id" gorm:"uniqueIndex;not null"`
	CourseCMSID string `json:"course_cms_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"position" gorm:"default:0"`
	IsDeleted   bool   `gorm:"default:false"`
}
