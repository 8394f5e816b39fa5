package courseRoutes

import (
	controllers "dlms/controllers/courseController"
	"dlms/middleware"
	validators "dlms/validators/courseValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course authoring and catalog routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Catalog reads
	courseGroup.Get("/", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:courseId", middleware.JWTMiddleware, validators.CourseId(), controllers.GetCourseById)

	// Authoring (admin / instructor only)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "INSTRUCTOR"), validators.CourseBody(), controllers.CreateCourse)
	courseGroup.Put("/:courseId", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "INSTRUCTOR"), validators.CourseId(), validators.CourseBody(), controllers.UpdateCourse)
	courseGroup.Delete("/:courseId", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "INSTRUCTOR"), validators.CourseId(), controllers.DeleteCourse)
}
