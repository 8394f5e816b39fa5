package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is the top-level course document stored in MongoDB. CourseID is a
// separate human-facing numeric identity assigned from a counter sequence at
// creation; both CourseID and CreatedAt are immutable after first save.
type Course struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CourseID    int                `json:"courseId" bson:"courseId"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Instructor  string             `json:"instructor" bson:"instructor"`
	Modules     []CourseModule     `json:"modules" bson:"modules"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CourseModule is an ordered section of lessons within a course
type CourseModule struct {
	Title   string   `json:"title" bson:"title"`
	Lessons []Lesson `json:"lessons" bson:"lessons"`
}

// Lesson is a single unit of content. MediaId, when non-empty, references a
// MediaMetadata document.
type Lesson struct {
	ID      string `json:"id" bson:"id"`
	Title   string `json:"title" bson:"title"`
	Type    string `json:"type" bson:"type"` // free-form content kind (video, article, quiz...)
	MediaID string `json:"mediaId" bson:"mediaId,omitempty"`
}

// NewLesson builds a lesson with a generated id. Lesson ids are assigned once
// at construction and never reassigned.
func NewLesson(title, lessonType, mediaID string) Lesson {
	return Lesson{
		ID:      uuid.NewString(),
		Title:   title,
		Type:    lessonType,
		MediaID: mediaID,
	}
}
