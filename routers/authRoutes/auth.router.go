package authRoutes

import (
	controllers "dlms/controllers/authController"
	"dlms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up authentication and user management routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", controllers.Register)
	authGroup.Post("/login", controllers.Login)

	// Admin user management
	userGroup := authGroup.Group("/users", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	userGroup.Get("/", controllers.GetAllUsers)
	userGroup.Get("/:id", controllers.GetUserById)
	userGroup.Post("/", controllers.CreateUser)
	userGroup.Put("/:id/role", controllers.UpdateUserRole)
	userGroup.Delete("/:id", controllers.DeleteUser)
}
