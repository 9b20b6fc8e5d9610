package controllers

import (
	"cultura/config"
	"cultura/database"
	"cultura/middleware"
	"cultura/models"
	courseModels "cultura/models/course"
	"cultura/progress"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitQuiz records a quiz submission for a lesson and completes the lesson's
// module. Submission alone completes the module; the score is recorded but
// never gates completion.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)
	moduleID := c.Locals("moduleID").(string)

	reqData, ok := c.Locals("validatedQuizSubmit").(*struct {
		LessonID          string   `json:"lessonId"`
		SelectedOptionIDs []string `json:"selectedOptionIds"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("cms_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("cms_id = ? AND course_cms_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("cms_id = ? AND module_cms_id = ? AND is_deleted = ?", reqData.LessonID, moduleID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if !lesson.HasQuiz {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson has no quiz!", nil)
	}

	// Score the submission for the record
	var correctOptions []courseModels.QuizOption
	database.Database.Db.
		Joins("JOIN quiz_questions ON quiz_options.question_cms_id = quiz_questions.cms_id").
		Where("quiz_questions.lesson_cms_id = ? AND quiz_options.is_correct = ? AND quiz_options.is_deleted = ?", lesson.CMSID, true, false).
		Find(&correctOptions)

	correctIDs := make(map[string]bool, len(correctOptions))
	for _, opt := range correctOptions {
		correctIDs[opt.CMSID] = true
	}

	score := 0
	for _, selected := range reqData.SelectedOptionIDs {
		if correctIDs[selected] {
			score++
		}
	}

	var attemptCount int64
	database.Database.Db.Model(&models.QuizSubmission{}).
		Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lesson.CMSID, false).
		Count(&attemptCount)

	selectedJSON, _ := json.Marshal(reqData.SelectedOptionIDs)

	submission := models.QuizSubmission{
		UserID:          userID,
		CourseID:        courseID,
		ModuleID:        moduleID,
		LessonID:        lesson.CMSID,
		SelectedOptions: string(selectedJSON),
		Score:           score,
		MaxScore:        len(correctOptions),
		AttemptNumber:   int(attemptCount) + 1,
	}

	if err := database.Database.Db.Create(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	completed, err := completeModuleForUser(userID, courseID, moduleID, lesson.CMSID)
	if err != nil {
		log.Printf("Error completing module %s for user %d: %v", moduleID, userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"submission":       submission,
		"score":            score,
		"max_score":        len(correctOptions),
		"module_completed": completed,
	})
}

// MarkModuleComplete completes a quizless module via an explicit user action
// on its last lesson. Idempotent: re-completing reports "no change".
func MarkModuleComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)
	moduleID := c.Locals("moduleID").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("cms_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("cms_id = ? AND course_cms_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	changed, err := completeModuleForUser(userID, courseID, moduleID, "")
	if err != nil {
		log.Printf("Error completing module %s for user %d: %v", moduleID, userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	message := "Module marked as completed!"
	if !changed {
		message = "No change: module already completed."
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"module_id": moduleID,
		"changed":   changed,
	})
}

// completeModuleForUser adds a module to the user's completed set, refreshing
// the resume pointer and the cached percent. Returns false when the module was
// already complete (no write is performed).
func completeModuleForUser(userID uint, courseID, moduleID, lessonID string) (bool, error) {
	db := database.Database.Db

	ordered, err := orderedModuleIDs(courseID)
	if err != nil {
		return false, err
	}

	var row models.UserCourseProgress
	err = db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		row = models.UserCourseProgress{
			UserID:             userID,
			CourseID:           courseID,
			CompletedModuleIDs: "[]",
		}
		if err := db.Create(&row).Error; err != nil {
			if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&row).Error; err != nil {
				return false, err
			}
		}
	} else if err != nil {
		return false, err
	}

	current := progress.DecodeIDs(row.CompletedModuleIDs)
	merged, changed := progress.Complete(current, moduleID)
	if !changed {
		return false, nil
	}

	pct := progress.Percent(ordered, merged)
	row.CompletedModuleIDs = progress.EncodeIDs(merged)
	row.Percent = &pct
	row.LastModuleID = &moduleID
	if lessonID != "" && config.AppConfig.ProgressResumeLesson {
		row.LastLessonID = &lessonID
	}
	row.Version++

	return true, db.Save(&row).Error
}
