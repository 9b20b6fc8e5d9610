package cms

import (
	courseModels "cultura/models/course"
	"log"

	"gorm.io/gorm"
)

// SyncCatalog mirrors the CMS catalog into the database: upsert every course,
// module, lesson and quiz by CMS ID, then soft-delete rows whose CMS entry
// disappeared. Runs at startup, on the cron schedule and on the admin trigger.
func SyncCatalog(db *gorm.DB, client *Client) error {
	log.Println("[CMS-SYNC] Starting catalog sync...")

	summaries, err := client.ListCourses()
	if err != nil {
		log.Printf("[CMS-SYNC] Failed to list courses: %v", err)
		return err
	}

	seenCourses := make([]string, 0, len(summaries))
	for _, summary := range summaries {
		detail, err := client.GetCourse(summary.ID)
		if err != nil {
			// Keep the previous mirror of a course the CMS failed to serve.
			log.Printf("[CMS-SYNC] Skipping course %s: %v", summary.ID, err)
			continue
		}

		if err := syncCourse(db, detail); err != nil {
			log.Printf("[CMS-SYNC] Failed to sync course %s: %v", summary.ID, err)
			continue
		}
		seenCourses = append(seenCourses, summary.ID)
	}

	// Courses gone from the CMS are withdrawn from the catalog. An empty sync
	// (CMS returned nothing, or every detail fetch failed) skips the prune so a
	// faulty response cannot withdraw the whole catalog.
	if len(seenCourses) > 0 {
		if err := db.Model(&courseModels.Course{}).
			Where("cms_id NOT IN ? AND is_deleted = false", seenCourses).
			Update("is_deleted", true).Error; err != nil {
			log.Printf("[CMS-SYNC] Failed to prune removed courses: %v", err)
		}
	}

	log.Printf("[CMS-SYNC] Catalog sync completed: %d courses", len(seenCourses))
	return nil
}

func syncCourse(db *gorm.DB, detail *CourseDetail) error {
	course := courseModels.Course{
		CMSID:        detail.ID,
		Title:        detail.Title,
		Description:  detail.Description,
		Language:     detail.Language,
		Duration:     detail.Duration,
		ThumbnailURL: detail.ThumbnailURL,
		IsPublished:  detail.Published,
		IsDeleted:    false,
	}

	var existing courseModels.Course
	if err := db.Where("cms_id = ?", detail.ID).First(&existing).Error; err == nil {
		course.Model = existing.Model
		if err := db.Save(&course).Error; err != nil {
			return err
		}
	} else if err := db.Create(&course).Error; err != nil {
		return err
	}

	seenModules := make([]string, 0, len(detail.Modules))
	for position, mod := range detail.Modules {
		if err := syncModule(db, detail.ID, position, mod); err != nil {
			return err
		}
		seenModules = append(seenModules, mod.ID)
	}

	// Modules removed in the CMS drop out of the ordering; completed IDs that
	// reference them are simply ignored by the unlock computation.
	pruneQuery := db.Model(&courseModels.Module{}).Where("course_cms_id = ? AND is_deleted = false", detail.ID)
	if len(seenModules) > 0 {
		pruneQuery = pruneQuery.Where("cms_id NOT IN ?", seenModules)
	}
	return pruneQuery.Update("is_deleted", true).Error
}

func syncModule(db *gorm.DB, courseID string, position int, payload ModulePayload) error {
	module := courseModels.Module{
		CMSID:       payload.ID,
		CourseCMSID: courseID,
		Title:       payload.Title,
		Description: payload.Description,
		Position:    position,
		IsDeleted:   false,
	}

	var existing courseModels.Module
	if err := db.Where("cms_id = ?", payload.ID).First(&existing).Error; err == nil {
		module.Model = existing.Model
		if err := db.Save(&module).Error; err != nil {
			return err
		}
	} else if err := db.Create(&module).Error; err != nil {
		return err
	}

	for lessonPos, lesson := range payload.Lessons {
		if err := syncLesson(db, payload.ID, lessonPos, lesson); err != nil {
			return err
		}
	}
	return nil
}

func syncLesson(db *gorm.DB, moduleID string, position int, payload LessonPayload) error {
	lesson := courseModels.Lesson{
		CMSID:       payload.ID,
		ModuleCMSID: moduleID,
		Title:       payload.Title,
		ContentType: payload.ContentType,
		Body:        payload.Body,
		VideoURL:    payload.VideoURL,
		Position:    position,
		HasQuiz:     payload.Quiz != nil && len(payload.Quiz.Questions) > 0,
		IsDeleted:   false,
	}

	var existing courseModels.Lesson
	if err := db.Where("cms_id = ?", payload.ID).First(&existing).Error; err == nil {
		lesson.Model = existing.Model
		if err := db.Save(&lesson).Error; err != nil {
			return err
		}
	} else if err := db.Create(&lesson).Error; err != nil {
		return err
	}

	if payload.Quiz == nil {
		return nil
	}

	for qPos, question := range payload.Quiz.Questions {
		q := courseModels.QuizQuestion{
			CMSID:       question.ID,
			LessonCMSID: payload.ID,
			Prompt:      question.Prompt,
			Position:    qPos,
			IsDeleted:   false,
		}

		var existingQ courseModels.QuizQuestion
		if err := db.Where("cms_id = ?", question.ID).First(&existingQ).Error; err == nil {
			q.Model = existingQ.Model
			if err := db.Save(&q).Error; err != nil {
				return err
			}
		} else if err := db.Create(&q).Error; err != nil {
			return err
		}

		for oPos, option := range question.Options {
			o := courseModels.QuizOption{
				CMSID:         option.ID,
				QuestionCMSID: question.ID,
				OptionText:    option.Text,
				IsCorrect:     option.Correct,
				Position:      oPos,
				IsDeleted:     false,
			}

			var existingO courseModels.QuizOption
			if err := db.Where("cms_id = ?", option.ID).First(&existingO).Error; err == nil {
				o.Model = existingO.Model
				if err := db.Save(&o).Error; err != nil {
					return err
				}
			} else if err := db.Create(&o).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
