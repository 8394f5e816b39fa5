package courseValidator

import (
	"fmt"
	"strings"

	"dlms/middleware"
	"dlms/services"

	"github.com/gofiber/fiber/v2"
)

// CourseBody validates the course create/update payload and stashes the
// parsed request for the controller.
func CourseBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.CourseCreateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Modules
		for i, module := range reqData.Modules {
			if strings.TrimSpace(module.Title) == "" {
				errors[fmt.Sprintf("modules[%d].title", i)] = "Module title is required!"
			}
			for j, lesson := range module.Lessons {
				if strings.TrimSpace(lesson.Title) == "" {
					errors[fmt.Sprintf("modules[%d].lessons[%d].title", i, j)] = "Lesson title is required!"
				}
			}
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseId validates the course id path parameter
func CourseId() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Params("courseId")) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}
		return c.Next()
	}
}
