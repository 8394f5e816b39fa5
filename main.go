package main

import (
	"log"

	"dlms/config"
	"dlms/controllers/chatbotController"
	"dlms/controllers/courseController"
	"dlms/controllers/enrollmentController"
	"dlms/controllers/mediaController"
	"dlms/database"
	"dlms/middleware"
	"dlms/repository"
	authRoutes "dlms/routers/authRoutes"
	courseRoutes "dlms/routers/courseRoutes"
	enrollmentRoutes "dlms/routers/enrollmentRoutes"
	mediaRoutes "dlms/routers/mediaRoutes"
	"dlms/services"
	"dlms/services/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	database.ConnectMongo()
	database.SeedUsers()

	// Wire repositories and services
	courseRepo := repository.NewMongoCourseRepository(database.CourseCollection, database.CounterCollection)
	mediaRepo := repository.NewMongoMediaRepository(database.MediaCollection)
	enrollmentRepo := repository.NewGormEnrollmentRepository(database.Database.Db)

	mediaService := services.NewMediaService(mediaRepo, storage.NewPinataProvider())
	courseService := services.NewCourseService(courseRepo, mediaService)
	enrollmentService := services.NewEnrollmentService(enrollmentRepo)

	courseController.Init(courseService)
	mediaController.Init(mediaService)
	enrollmentController.Init(enrollmentService, courseService)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // allow large media uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	mediaRoutes.SetupMediaRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)

	app.Post("/api/chat", middleware.JWTMiddleware, chatbotController.Chat)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
