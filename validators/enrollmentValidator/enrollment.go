package enrollmentValidator

import (
	"strings"

	"dlms/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollRequest is the enrollment creation payload
type EnrollRequest struct {
	UserID   string `json:"userId"`
	CourseID string `json:"courseId"`
}

// ProgressRequest is the progress update payload. CompletedLessons replaces
// the stored set wholesale.
type ProgressRequest struct {
	CompletedLessons []string `json:"completedLessons"`
	Progress         *int     `json:"progress"`
}

// Enroll validates the enrollment creation payload
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate UserID
		if strings.TrimSpace(reqData.UserID) == "" {
			errors["userId"] = "User ID is required!"
		}

		// Validate CourseID
		if strings.TrimSpace(reqData.CourseID) == "" {
			errors["courseId"] = "Course ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

// UpdateProgress validates the progress update payload. Progress is required
// and must not be negative; values at or above 100 drive auto-completion and
// are passed through untouched.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Progress
		if reqData.Progress == nil {
			errors["progress"] = "Progress is required!"
		} else if *reqData.Progress < 0 {
			errors["progress"] = "Progress must not be negative!"
		}

		// Validate CompletedLessons entries
		for _, lessonID := range reqData.CompletedLessons {
			if strings.TrimSpace(lessonID) == "" {
				errors["completedLessons"] = "Lesson IDs must not be empty!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
