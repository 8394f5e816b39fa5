package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment statuses. CANCELLED is a valid stored value but no operation
// currently produces it.
const (
	StatusEnrolled  = "ENROLLED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// Enrollment tracks a user's enrollment in a course with progress.
// At most one row may exist per (user_id, course_id) pair; uniqueness is
// enforced by lookup-before-insert in the service, not by a constraint.
type Enrollment struct {
	gorm.Model
	UserID           string                      `json:"userId" gorm:"index;not null"`
	CourseID         string                      `json:"courseId" gorm:"index;not null"` // course document id (string)
	Status           string                      `json:"status" gorm:"default:'ENROLLED'"`
	EnrolledAt       time.Time                   `json:"enrolledAt"`
	CompletedLessons datatypes.JSONSlice[string] `json:"completedLessons"`
	Progress         int                         `json:"progress" gorm:"default:0"` // 0-100
	Version          uint                        `json:"-" gorm:"default:0"`        // optimistic concurrency token
}
