package mediaRoutes

import (
	controllers "dlms/controllers/mediaController"
	"dlms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupMediaRoutes sets up media upload, access and linking routes
func SetupMediaRoutes(app *fiber.App) {
	mediaGroup := app.Group("/api/media")

	mediaGroup.Post("/upload", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "INSTRUCTOR"), controllers.Upload)
	mediaGroup.Get("/download/:mediaId", middleware.JWTMiddleware, controllers.Download)
	mediaGroup.Get("/:mediaId", middleware.JWTMiddleware, controllers.GetStreamUrl)
	mediaGroup.Delete("/:mediaId", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "INSTRUCTOR"), controllers.Delete)
	mediaGroup.Put("/:mediaId/course/:courseId", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "INSTRUCTOR"), controllers.AssignCourse)
}
