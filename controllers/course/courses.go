package controllers

import (
	"cultura/database"
	"cultura/middleware"
	"cultura/models"
	courseModels "cultura/models/course"
	"cultura/progress"

	"github.com/gofiber/fiber/v2"
)

// LessonView is a lesson with its quiz questions; option correctness is
// stripped before the payload leaves the server.
type LessonView struct {
	courseModels.Lesson
	Quiz []QuestionView `json:"quiz,omitempty"`
}

type QuestionView struct {
	courseModels.QuizQuestion
	Options []courseModels.QuizOption `json:"options"`
}

// ModuleView is a module with its lessons and the user's navigability flag.
type ModuleView struct {
	courseModels.Module
	Lessons    []LessonView `json:"lessons"`
	IsUnlocked bool         `json:"is_unlocked"`
	IsComplete bool         `json:"is_complete"`
}

// GetAllCourses lists published catalog courses
func GetAllCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Retrieve validated pagination request
	reqData, _ := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true)

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("title asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns a course with its modules, lessons and quizzes,
// plus the caller's unlock state computed from the progress row.
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("cms_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_cms_id = ? AND is_deleted = ?", courseID, false).Order("position asc").Find(&modules)

	// The user's completed set drives the unlock computation
	completed := []string{}
	var row models.UserCourseProgress
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&row).Error; err == nil {
		completed = progress.DecodeIDs(row.CompletedModuleIDs)
	}

	ordered := make([]string, len(modules))
	for i, mod := range modules {
		ordered[i] = mod.CMSID
	}

	unlockedIdx := progress.UnlockedIndexes(ordered, completed)
	unlocked := make(map[int]bool, len(unlockedIdx))
	for _, i := range unlockedIdx {
		unlocked[i] = true
	}

	result := make([]ModuleView, len(modules))
	for i, mod := range modules {
		result[i] = ModuleView{
			Module:     mod,
			Lessons:    lessonViews(mod.CMSID),
			IsUnlocked: unlocked[i],
			IsComplete: progress.Contains(completed, mod.CMSID),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":  course,
		"modules": result,
	})
}

// lessonViews loads a module's ordered lessons with answer keys stripped
func lessonViews(moduleID string) []LessonView {
	var lessons []courseModels.Lesson
	database.Database.Db.Where("module_cms_id = ? AND is_deleted = ?", moduleID, false).Order("position asc").Find(&lessons)

	views := make([]LessonView, len(lessons))
	for i, lesson := range lessons {
		views[i] = LessonView{Lesson: lesson}
		if !lesson.HasQuiz {
			continue
		}

		var questions []courseModels.QuizQuestion
		database.Database.Db.Where("lesson_cms_id = ? AND is_deleted = ?", lesson.CMSID, false).Order("position asc").Find(&questions)

		qViews := make([]QuestionView, len(questions))
		for j, question := range questions {
			var options []courseModels.QuizOption
			database.Database.Db.Where("question_cms_id = ? AND is_deleted = ?", question.CMSID, false).Order("position asc").Find(&options)
			// Never ship answer keys to the player
			for k := range options {
				options[k].IsCorrect = false
			}
			qViews[j] = QuestionView{QuizQuestion: question, Options: options}
		}
		views[i].Quiz = qViews
	}
	return views
}
