package staffRoutes

import (
	staffControllers "cultura/controllers/staff"
	"cultura/middleware"
	"cultura/models"
	staffValidators "cultura/validators/staff"

	"github.com/gofiber/fiber/v2"
)

func SetupStaffRoutes(app *fiber.App) {
	staffGroup := app.Group("/staff")

	staffGroup.Post("/assign", middleware.JWTMiddleware, middleware.RequireRole(models.RoleBusinessOwner), staffValidators.AssignSeat(), staffControllers.AssignSeat)
	staffGroup.Post("/accept", middleware.JWTMiddleware, staffValidators.AcceptSeat(), staffControllers.AcceptSeat)
	staffGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleBusinessOwner), staffControllers.RevokeSeat)
	staffGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleBusinessOwner), staffControllers.ListSeats)
}
