package course

import "gorm.io/gorm"

// Course is a CMS-authored course mirrored into the relational store. Rows in
// this table are written only by the catalog sync job; the application treats
// them as read-only.
type Course struct {
	gorm.Model
	CMSID        string `json:"cms_id" gorm:"uniqueIndex;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Language     string `json:"language" gorm:"default:'en'"`
	Duration     int64  `json:"duration" gorm:"default:0"` // duration in hours
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
