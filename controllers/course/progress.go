package controllers

import (
	"cultura/config"
	"cultura/database"
	"cultura/models"
	courseModels "cultura/models/course"
	"cultura/progress"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProgressMeta mirrors the normalized fields and carries the row bookkeeping
// the client echoes back on full-set writes.
type ProgressMeta struct {
	CompletedModuleIDs []string   `json:"completedModuleIds"`
	Percent            *float64   `json:"percent"`
	LastModuleID       *string    `json:"lastModuleId"`
	LastLessonID       *string    `json:"lastLessonId,omitempty"`
	Version            int64      `json:"version"`
	Epoch              int64      `json:"epoch"`
	UpdatedAt          *time.Time `json:"updatedAt"`
}

// ProgressPayload is the normalized progress shape. These two endpoints are an
// external contract for the course player and return this bare shape instead
// of the standard response envelope.
type ProgressPayload struct {
	CompletedModuleIDs []string     `json:"completedModuleIds"`
	Percent            *float64     `json:"percent"`
	LastModuleID       *string      `json:"lastModuleId"`
	LastLessonID       *string      `json:"lastLessonId,omitempty"`
	Meta               ProgressMeta `json:"meta"`
}

// ProgressWrite is the POST body. Exactly one of AddModuleID,
// CompletedModuleIDs or LastLessonID must be present (enforced by the
// validator); the rest are optional companions.
type ProgressWrite struct {
	CourseID           string   `json:"courseId"`
	AddModuleID        *string  `json:"addModuleId"`
	CompletedModuleIDs []string `json:"completedModuleIds"`
	LastLessonID       *string  `json:"lastLessonId"`
	LastModuleID       *string  `json:"lastModuleId"`
	Percent            *float64 `json:"percent"`
	Epoch              *int64   `json:"epoch"`
}

func payloadFromRow(row *models.UserCourseProgress) ProgressPayload {
	completed := progress.DecodeIDs(row.CompletedModuleIDs)

	lastLesson := row.LastLessonID
	if !config.AppConfig.ProgressResumeLesson {
		// Reduced shape for deployments without the resume-lesson column
		lastLesson = nil
	}

	updatedAt := row.UpdatedAt
	var updated *time.Time
	if !updatedAt.IsZero() {
		updated = &updatedAt
	}

	return ProgressPayload{
		CompletedModuleIDs: completed,
		Percent:            row.Percent,
		LastModuleID:       row.LastModuleID,
		LastLessonID:       lastLesson,
		Meta: ProgressMeta{
			CompletedModuleIDs: completed,
			Percent:            row.Percent,
			LastModuleID:       row.LastModuleID,
			LastLessonID:       lastLesson,
			Version:            row.Version,
			Epoch:              row.Epoch,
			UpdatedAt:          updated,
		},
	}
}

func emptyPayload() ProgressPayload {
	return ProgressPayload{
		CompletedModuleIDs: []string{},
		Meta: ProgressMeta{
			CompletedModuleIDs: []string{},
		},
	}
}

// orderedModuleIDs returns the course's module IDs in catalog order.
func orderedModuleIDs(courseID string) ([]string, error) {
	var modules []courseModels.Module
	if err := database.Database.Db.Where("course_cms_id = ? AND is_deleted = ?", courseID, false).
		Order("position asc").Find(&modules).Error; err != nil {
		return nil, err
	}
	ids := make([]string, len(modules))
	for i, mod := range modules {
		ids[i] = mod.CMSID
	}
	return ids, nil
}

// GetProgress handles GET /api/courses/progress?courseId=<id>
func GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	courseID := c.Query("courseId")
	if courseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "courseId is required"})
	}

	var row models.UserCourseProgress
	err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		// No row yet: the row is created lazily on first write
		return c.Status(fiber.StatusOK).JSON(emptyPayload())
	}
	if err != nil {
		log.Printf("Error loading progress for user %d course %s: %v", userID, courseID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong"})
	}

	return c.Status(fiber.StatusOK).JSON(payloadFromRow(&row))
}

// PostProgress handles POST /api/courses/progress. Three write modes:
// addModuleId (single completion), completedModuleIds (full-set merge) and
// lastLessonId (position ping).
func PostProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	reqData, ok := c.Locals("validatedProgressWrite").(*ProgressWrite)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	ordered, err := orderedModuleIDs(reqData.CourseID)
	if err != nil {
		log.Printf("Error loading modules for course %s: %v", reqData.CourseID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong"})
	}
	if len(ordered) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Course not found"})
	}

	db := database.Database.Db

	// Lazily create the row; the (user, course) unique index keeps concurrent
	// first writes down to a single row.
	var row models.UserCourseProgress
	err = db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		row = models.UserCourseProgress{
			UserID:             userID,
			CourseID:           reqData.CourseID,
			CompletedModuleIDs: "[]",
		}
		if err := db.Create(&row).Error; err != nil {
			// Lost a creation race: re-read the winner's row
			if err := db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).First(&row).Error; err != nil {
				log.Printf("Error creating progress row for user %d course %s: %v", userID, reqData.CourseID, err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong"})
			}
		}
	} else if err != nil {
		log.Printf("Error loading progress for user %d course %s: %v", userID, reqData.CourseID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong"})
	}

	current := progress.DecodeIDs(row.CompletedModuleIDs)
	dirty := false

	switch {
	case reqData.AddModuleID != nil:
		// Single completion, idempotent: a re-completion writes nothing
		merged, changed := progress.Complete(current, *reqData.AddModuleID)
		if changed {
			row.CompletedModuleIDs = progress.EncodeIDs(merged)
			current = merged
			dirty = true
			// The completed module becomes the resume pointer unless the
			// client sent an explicit one.
			if reqData.LastModuleID == nil {
				row.LastModuleID = reqData.AddModuleID
			}
		}

	case reqData.CompletedModuleIDs != nil:
		// Full-set merge; a stale epoch means the row was reset after the
		// client read it, so the client's set is discarded.
		clientEpoch := row.Epoch
		if reqData.Epoch != nil {
			clientEpoch = *reqData.Epoch
		}
		merged, accepted := progress.MergeFullSet(current, row.Epoch, reqData.CompletedModuleIDs, clientEpoch)
		if accepted && !sameLength(merged, current) {
			row.CompletedModuleIDs = progress.EncodeIDs(merged)
			current = merged
			dirty = true
		}
		if !accepted {
			return c.Status(fiber.StatusOK).JSON(payloadFromRow(&row))
		}

	case reqData.LastLessonID != nil:
		// Position ping
		if config.AppConfig.ProgressResumeLesson {
			row.LastLessonID = reqData.LastLessonID
			dirty = true
		}
	}

	if reqData.LastModuleID != nil {
		row.LastModuleID = reqData.LastModuleID
		dirty = true
	}

	// Percent stays independently writable per the contract; derive it only
	// when the completed set changed and the client sent nothing.
	if reqData.Percent != nil {
		row.Percent = reqData.Percent
		dirty = true
	} else if dirty && (reqData.AddModuleID != nil || reqData.CompletedModuleIDs != nil) {
		pct := progress.Percent(ordered, current)
		row.Percent = &pct
	}

	if dirty {
		row.Version++
		if err := db.Save(&row).Error; err != nil {
			log.Printf("Error saving progress for user %d course %s: %v", userID, reqData.CourseID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(payloadFromRow(&row))
}

func sameLength(a, b []string) bool {
	return len(a) == len(b)
}
