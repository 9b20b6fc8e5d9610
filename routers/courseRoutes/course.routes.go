package courseRoutes

import (
	controllers "cultura/controllers/course"
	"cultura/middleware"
	validators "cultura/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog, player and progress routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog browsing needs a login but no purchase
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)

	// Course content requires paid access or an active staff seat
	courseGroup.Get("/:id", middleware.JWTMiddleware, middleware.RequireCourseAccess, validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Completion triggers
	courseGroup.Post("/:course_id/module/:module_id/quiz/submit", middleware.JWTMiddleware, middleware.RequireCourseAccess, validators.ModuleParams(), validators.QuizSubmit(), controllers.SubmitQuiz)
	courseGroup.Post("/:course_id/module/:module_id/complete", middleware.JWTMiddleware, middleware.RequireCourseAccess, validators.ModuleParams(), controllers.MarkModuleComplete)

	// Certificates
	courseGroup.Post("/:course_id/certificate/request", middleware.JWTMiddleware, middleware.RequireCourseAccess, validators.CourseParam(), controllers.RequestCertificate)

	userGroup := app.Group("/user")
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)

	// Progress contract for the course player; bare payloads, no envelope
	apiGroup := app.Group("/api/courses")
	apiGroup.Get("/progress", middleware.JWTMiddleware, controllers.GetProgress)
	apiGroup.Post("/progress", middleware.JWTMiddleware, validators.ProgressWrite(), controllers.PostProgress)
}
