package enrollmentRoutes

import (
	controllers "dlms/controllers/enrollmentController"
	"dlms/middleware"
	validators "dlms/validators/enrollmentValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up enrollment and progress tracking routes
func SetupEnrollmentRoutes(app *fiber.App) {
	enrollGroup := app.Group("/api/enrollments", middleware.JWTMiddleware)

	enrollGroup.Post("/", validators.Enroll(), controllers.Enroll)
	enrollGroup.Get("/", controllers.GetUserEnrollments)
	enrollGroup.Put("/complete", controllers.MarkComplete)
	enrollGroup.Put("/progress", validators.UpdateProgress(), controllers.UpdateProgress)
}
