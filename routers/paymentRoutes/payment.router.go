package paymentRoutes

import (
	paymentControllers "cultura/controllers/payment"
	"cultura/middleware"
	paymentValidators "cultura/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/checkout", middleware.JWTMiddleware, paymentValidators.Checkout(), paymentControllers.CreateCheckoutSession)
	paymentGroup.Post("/confirm", middleware.JWTMiddleware, paymentValidators.Confirm(), paymentControllers.ConfirmPayment)
	paymentGroup.Get("/history", middleware.JWTMiddleware, paymentControllers.GetPaymentHistory)
}
