package adminRoutes

import (
	adminControllers "cultura/controllers/admin"
	"cultura/middleware"
	"cultura/models"
	adminValidators "cultura/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/users", adminControllers.ListUsers)
	adminGroup.Post("/progress/reset", adminValidators.ResetProgress(), adminControllers.ResetProgress)
	adminGroup.Post("/cms/sync", adminControllers.TriggerCatalogSync)
	adminGroup.Get("/certificates/requests", adminControllers.ListCertificateRequests)
	adminGroup.Patch("/certificates/:id/approve", adminControllers.ApproveCertificate)
	adminGroup.Patch("/certificates/:id/reject", adminControllers.RejectCertificate)
	adminGroup.Get("/dashboard", adminControllers.GetDashboard)
}
