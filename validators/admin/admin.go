package adminValidator

import (
	"cultura/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func ResetProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   uint   `json:"userId"`
			CourseID string `json:"courseId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if strings.TrimSpace(reqData.CourseID) == "" {
			errors["courseId"] = "Course ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResetProgress", reqData)
		return c.Next()
	}
}
