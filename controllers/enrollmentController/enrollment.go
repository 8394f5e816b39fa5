package enrollmentController

import (
	"context"
	"errors"
	"log"
	"strconv"

	"dlms/database"
	"dlms/middleware"
	"dlms/models"
	"dlms/services"
	"dlms/utils"
	"dlms/validators/enrollmentValidator"

	"github.com/gofiber/fiber/v2"
)

var (
	enrollmentService *services.EnrollmentService
	courseService     *services.CourseService
)

// Init wires the services used by this controller
func Init(enrollSvc *services.EnrollmentService, courseSvc *services.CourseService) {
	enrollmentService = enrollSvc
	courseService = courseSvc
}

// Enroll enrolls a user into a course. Enrolling twice returns the existing
// enrollment unchanged.
func Enroll(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	enrollment, err := enrollmentService.Enroll(c.Context(), reqData.UserID, reqData.CourseID)
	if err != nil {
		log.Printf("Error enrolling user %s in course %s: %v", reqData.UserID, reqData.CourseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully.", enrollment)
}

// GetUserEnrollments lists a user's enrollments, optionally filtered to one
// course
func GetUserEnrollments(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "userId is required!", nil)
	}
	courseID := c.Query("courseId")

	enrollments, err := enrollmentService.ListForUser(c.Context(), userID, courseID)
	if err != nil {
		log.Printf("Error fetching enrollments for user %s: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", enrollments)
}

// MarkComplete forces an enrollment to COMPLETED regardless of progress
func MarkComplete(c *fiber.Ctx) error {
	userID := c.Query("userId")
	courseID := c.Query("courseId")
	if userID == "" || courseID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "userId and courseId are required!", nil)
	}

	ok, err := enrollmentService.Complete(c.Context(), userID, courseID)
	if err != nil {
		log.Printf("Error completing enrollment for user %s course %s: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark course as completed!", nil)
	}
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	go notifyCompletion(userID, courseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course marked as completed.", nil)
}

// UpdateProgress overwrites the completed-lesson set and progress. Reaching
// 100 promotes the enrollment to COMPLETED.
func UpdateProgress(c *fiber.Ctx) error {
	userID := c.Query("userId")
	courseID := c.Query("courseId")
	if userID == "" || courseID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "userId and courseId are required!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*enrollmentValidator.ProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	enrollment, err := enrollmentService.UpdateProgress(c.Context(), userID, courseID, reqData.CompletedLessons, *reqData.Progress)
	if err != nil {
		if errors.Is(err, services.ErrEnrollmentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		}
		log.Printf("Error updating progress for user %s course %s: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	if enrollment.Status == models.StatusCompleted {
		go notifyCompletion(userID, courseID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully.", enrollment)
}

// notifyCompletion sends a best-effort completion email. Any failure is
// logged and ignored.
func notifyCompletion(userID, courseID string) {
	id, err := strconv.Atoi(userID)
	if err != nil {
		return
	}

	var user models.User
	if err := database.Database.Db.First(&user, id).Error; err != nil || user.Email == "" {
		return
	}

	courseTitle := courseID
	if courseService != nil {
		if course, err := courseService.GetByID(context.Background(), courseID); err == nil {
			courseTitle = course.Title
		}
	}

	if err := utils.SendCourseCompletionEmail(user.Email, user.UserName, courseTitle); err != nil {
		log.Printf("Failed to send completion email to %s: %v", user.Email, err)
	}
}
