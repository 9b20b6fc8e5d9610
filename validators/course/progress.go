package courseValidator

import (
	controllers "cultura/controllers/course"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ProgressWrite enforces the progress write contract: exactly one of
// addModuleId, completedModuleIds or lastLessonId per request. Contract
// violations are a 400, not the standard validation envelope, because the
// progress endpoints return bare payloads.
func ProgressWrite() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.ProgressWrite)

		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		if strings.TrimSpace(reqData.CourseID) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "courseId is required"})
		}

		modes := 0
		if reqData.AddModuleID != nil {
			if strings.TrimSpace(*reqData.AddModuleID) == "" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "addModuleId must not be empty"})
			}
			modes++
		}
		if reqData.CompletedModuleIDs != nil {
			modes++
		}
		if reqData.LastLessonID != nil {
			modes++
		}

		if modes != 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Exactly one of addModuleId, completedModuleIds or lastLessonId is required",
			})
		}

		if reqData.Percent != nil && (*reqData.Percent < 0 || *reqData.Percent > 100) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "percent must be between 0 and 100"})
		}

		c.Locals("validatedProgressWrite", reqData)
		return c.Next()
	}
}
