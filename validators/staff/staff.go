package staffValidator

import (
	"cultura/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func AssignSeat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email" validate:"required,email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"email": "A valid email address is required!",
			})
		}

		c.Locals("validatedAssignSeat", reqData)
		return c.Next()
	}
}

func AcceptSeat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Token string `json:"token" validate:"required,uuid4"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Token = strings.TrimSpace(reqData.Token)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"token": "A valid invite code is required!",
			})
		}

		c.Locals("validatedAcceptSeat", reqData)
		return c.Next()
	}
}
