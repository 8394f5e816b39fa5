package repository

import (
	"context"
	"errors"

	"dlms/models"

	"gorm.io/gorm"
)

// EnrollmentRepository is the persistence capability the enrollment service
// depends on
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	FindByUserID(ctx context.Context, userID string) ([]models.Enrollment, error)
	FindByUserIDAndCourseID(ctx context.Context, userID, courseID string) (*models.Enrollment, error)
	// UpdateVersioned persists status, progress and completed lessons with a
	// compare-and-swap on the version column. ErrStaleVersion is returned when
	// the row changed since it was read.
	UpdateVersioned(ctx context.Context, enrollment *models.Enrollment) error
}

type gormEnrollmentRepository struct {
	db *gorm.DB
}

// NewGormEnrollmentRepository builds an EnrollmentRepository backed by GORM
func NewGormEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &gormEnrollmentRepository{db: db}
}

func (r *gormEnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *gormEnrollmentRepository) FindByUserID(ctx context.Context, userID string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("enrolled_at asc").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *gormEnrollmentRepository) FindByUserIDAndCourseID(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) UpdateVersioned(ctx context.Context, enrollment *models.Enrollment) error {
	res := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("id = ? AND version = ?", enrollment.ID, enrollment.Version).
		Updates(map[string]interface{}{
			"status":            enrollment.Status,
			"progress":          enrollment.Progress,
			"completed_lessons": enrollment.CompletedLessons,
			"version":           enrollment.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleVersion
	}

	enrollment.Version++
	return nil
}
