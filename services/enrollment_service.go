package services

import (
	"context"
	"errors"
	"time"

	"dlms/models"
	"dlms/repository"

	"gorm.io/datatypes"
)

// ErrEnrollmentNotFound is returned when no enrollment exists for the
// requested (userId, courseId) pair
var ErrEnrollmentNotFound = errors.New("enrollment not found")

// Concurrent UpdateProgress calls on the same enrollment race; the repository
// rejects writes against a stale version and the service re-reads and
// re-applies before giving up.
const maxUpdateAttempts = 3

// EnrollmentService owns the enrollment state machine: ENROLLED on creation,
// COMPLETED by explicit request or automatically at progress >= 100.
// Completion is sticky: a later lower-progress update never reverts it.
type EnrollmentService struct {
	repo repository.EnrollmentRepository
}

// NewEnrollmentService builds an EnrollmentService
func NewEnrollmentService(repo repository.EnrollmentRepository) *EnrollmentService {
	return &EnrollmentService{repo: repo}
}

// Enroll creates an enrollment for the pair, or returns the existing one
// unchanged. Calling it twice is not an error and creates no duplicate.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	existing, err := s.repo.FindByUserIDAndCourseID(ctx, userID, courseID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	enrollment := &models.Enrollment{
		UserID:           userID,
		CourseID:         courseID,
		Status:           models.StatusEnrolled,
		EnrolledAt:       time.Now(),
		CompletedLessons: datatypes.JSONSlice[string]{},
		Progress:         0,
	}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Complete forces the enrollment to COMPLETED regardless of progress. It
// reports false when no enrollment exists for the pair. Completing an already
// COMPLETED or CANCELLED enrollment succeeds as a no-op.
func (s *EnrollmentService) Complete(ctx context.Context, userID, courseID string) (bool, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		enrollment, err := s.repo.FindByUserIDAndCourseID(ctx, userID, courseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return false, nil
			}
			return false, err
		}

		enrollment.Status = models.StatusCompleted
		err = s.repo.UpdateVersioned(ctx, enrollment)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, repository.ErrStaleVersion) {
			return false, err
		}
	}
	return false, repository.ErrStaleVersion
}

// UpdateProgress overwrites the completed-lesson set and progress wholesale.
// Progress >= 100 promotes the status to COMPLETED on the same write; a lower
// value leaves a COMPLETED status untouched.
func (s *EnrollmentService) UpdateProgress(ctx context.Context, userID, courseID string, completedLessons []string, progress int) (*models.Enrollment, error) {
	var lastErr error
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		enrollment, err := s.repo.FindByUserIDAndCourseID(ctx, userID, courseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrEnrollmentNotFound
			}
			return nil, err
		}

		enrollment.CompletedLessons = datatypes.JSONSlice[string](completedLessons)
		enrollment.Progress = progress
		if progress >= 100 {
			enrollment.Status = models.StatusCompleted
		}

		err = s.repo.UpdateVersioned(ctx, enrollment)
		if err == nil {
			return enrollment, nil
		}
		if !errors.Is(err, repository.ErrStaleVersion) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// ListForUser returns the user's enrollments, optionally narrowed to a single
// course by equality on courseId.
func (s *EnrollmentService) ListForUser(ctx context.Context, userID, courseID string) ([]models.Enrollment, error) {
	enrollments, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if courseID == "" {
		return enrollments, nil
	}

	filtered := make([]models.Enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		if e.CourseID == courseID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
