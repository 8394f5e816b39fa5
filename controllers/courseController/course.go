package courseController

import (
	"dlms/middleware"
	"dlms/services"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

var courseService *services.CourseService

// Init wires the course service used by this controller
func Init(svc *services.CourseService) {
	courseService = svc
}

// CreateCourse persists a new course and reports the media link outcome
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*services.CourseCreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course, sync, err := courseService.Create(c.Context(), *reqData)
	if err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", fiber.Map{
		"course":    course,
		"mediaSync": sync,
	})
}

// GetAllCourses lists every course with full module/lesson nesting
func GetAllCourses(c *fiber.Ctx) error {
	courses, err := courseService.List(c.Context())
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// GetCourseById returns one course
func GetCourseById(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	course, err := courseService.GetByID(c.Context(), courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error fetching course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

// UpdateCourse replaces the course structure, preserving its identity fields
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	reqData, ok := c.Locals("validatedCourse").(*services.CourseCreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course, sync, err := courseService.Update(c.Context(), courseID, *reqData)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error updating course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", fiber.Map{
		"course":    course,
		"mediaSync": sync,
	})
}

// DeleteCourse removes the course after a best-effort media cleanup sweep
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	sweep, err := courseService.Delete(c.Context(), courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error deleting course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully.", fiber.Map{
		"mediaCleanup": sweep,
	})
}
