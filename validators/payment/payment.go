package paymentValidator

import (
	"cultura/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors maps validator violations to the response error map
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, verr := range verrs {
			errors[verr.Field()] = "Failed validation: " + verr.Tag()
		}
	} else {
		errors["request"] = "Invalid request data!"
	}
	return errors
}

func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Plan  string `json:"plan" validate:"required,oneof=individual business"`
			Seats int    `json:"seats" validate:"omitempty,min=1,max=500"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		if reqData.Plan == "business" && reqData.Seats < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"seats": "Seat count is required for a business purchase!",
			})
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}

func Confirm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SessionID string `json:"sessionId" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedConfirm", reqData)
		return c.Next()
	}
}
