package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"dlms/models"
	"dlms/repository"
)

// ErrCourseNotFound is returned when no course exists for the requested id
var ErrCourseNotFound = errors.New("course not found")

// CourseCreateRequest carries the full course structure for create and update.
// Lesson ids are never taken from the request; they are generated server-side.
type CourseCreateRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Instructor  string          `json:"instructor"`
	Modules     []ModuleRequest `json:"modules"`
}

// ModuleRequest is one ordered section of the course request
type ModuleRequest struct {
	Title   string          `json:"title"`
	Lessons []LessonRequest `json:"lessons"`
}

// LessonRequest is one lesson of the course request. MediaID is optional.
type LessonRequest struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	MediaID string `json:"mediaId"`
}

// MediaFailure records one failed media sub-operation during a fan-out
type MediaFailure struct {
	MediaID string `json:"mediaId"`
	Reason  string `json:"reason"`
}

// MediaSyncResult is the aggregate outcome of a per-lesson media fan-out.
// The parent course operation never fails because of entries in Failed.
type MediaSyncResult struct {
	Succeeded []string       `json:"succeeded"`
	Failed    []MediaFailure `json:"failed"`
}

// MediaLinker is the slice of the media service the course lifecycle needs
type MediaLinker interface {
	AssignCourse(ctx context.Context, mediaID, courseID string) error
	Delete(ctx context.Context, mediaID string) error
}

// CourseService owns the course lifecycle and the best-effort propagation of
// course identity into the media store.
type CourseService struct {
	repo  repository.CourseRepository
	media MediaLinker
}

// NewCourseService builds a CourseService
func NewCourseService(repo repository.CourseRepository, media MediaLinker) *CourseService {
	return &CourseService{repo: repo, media: media}
}

// Create persists a new course and links every lesson's media to it. Media
// link failures never fail the create; they are reported in the sync result.
func (s *CourseService) Create(ctx context.Context, request CourseCreateRequest) (*models.Course, MediaSyncResult, error) {
	courseID, err := s.repo.NextCourseID(ctx)
	if err != nil {
		return nil, MediaSyncResult{}, err
	}

	now := time.Now()
	course := buildCourse(request)
	course.CourseID = courseID
	course.CreatedAt = now
	course.UpdatedAt = now

	saved, err := s.repo.Save(ctx, course)
	if err != nil {
		return nil, MediaSyncResult{}, err
	}

	sync := s.syncMedia(ctx, saved)
	return saved, sync, nil
}

// Update replaces the course structure wholesale while preserving its
// identity: document id, courseId and createdAt always survive the update.
func (s *CourseService) Update(ctx context.Context, id string, request CourseCreateRequest) (*models.Course, MediaSyncResult, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, MediaSyncResult{}, ErrCourseNotFound
		}
		return nil, MediaSyncResult{}, err
	}

	updated := buildCourse(request)
	updated.ID = existing.ID
	updated.CourseID = existing.CourseID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	saved, err := s.repo.Save(ctx, updated)
	if err != nil {
		return nil, MediaSyncResult{}, err
	}

	sync := s.syncMedia(ctx, saved)
	return saved, sync, nil
}

// Delete removes the course after attempting to delete every media record its
// lessons reference. Each media failure is logged and skipped so a course can
// never become undeletable because of a dangling media reference.
func (s *CourseService) Delete(ctx context.Context, id string) (MediaSyncResult, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return MediaSyncResult{}, ErrCourseNotFound
		}
		return MediaSyncResult{}, err
	}

	sweep := applyToLessonMedia(course, func(mediaID string) error {
		if err := s.media.Delete(ctx, mediaID); err != nil {
			log.Printf("Failed to delete media %s: %v", mediaID, err)
			return err
		}
		return nil
	})

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return sweep, ErrCourseNotFound
		}
		return sweep, err
	}
	return sweep, nil
}

// GetByID returns the course with its full module/lesson nesting
func (s *CourseService) GetByID(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// List returns all courses
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	return s.repo.FindAll(ctx)
}

// syncMedia links every lesson-attached media record to the course. The link
// target is the course document id, falling back to the numeric courseId when
// the document id is unset. A media record whose lesson was removed keeps its
// previous courseId; no unlink pass runs here.
func (s *CourseService) syncMedia(ctx context.Context, course *models.Course) MediaSyncResult {
	linkTarget := course.ID.Hex()
	if course.ID.IsZero() {
		linkTarget = strconv.Itoa(course.CourseID)
	}

	return applyToLessonMedia(course, func(mediaID string) error {
		if err := s.media.AssignCourse(ctx, mediaID, linkTarget); err != nil {
			log.Printf("Failed to link media %s to course %s: %v", mediaID, linkTarget, err)
			return err
		}
		return nil
	})
}

// applyToLessonMedia runs op once per lesson carrying a media id, isolating
// each call's failure so one bad reference never blocks the rest.
func applyToLessonMedia(course *models.Course, op func(mediaID string) error) MediaSyncResult {
	var result MediaSyncResult
	for _, module := range course.Modules {
		for _, lesson := range module.Lessons {
			if lesson.MediaID == "" {
				continue
			}
			if err := op(lesson.MediaID); err != nil {
				result.Failed = append(result.Failed, MediaFailure{
					MediaID: lesson.MediaID,
					Reason:  err.Error(),
				})
				continue
			}
			result.Succeeded = append(result.Succeeded, lesson.MediaID)
		}
	}
	return result
}

// buildCourse maps a request to a course entity, generating fresh lesson ids
func buildCourse(request CourseCreateRequest) *models.Course {
	course := &models.Course{
		Title:       request.Title,
		Description: request.Description,
		Instructor:  request.Instructor,
	}
	for _, m := range request.Modules {
		module := models.CourseModule{Title: m.Title}
		for _, l := range m.Lessons {
			module.Lessons = append(module.Lessons, models.NewLesson(l.Title, l.Type, l.MediaID))
		}
		course.Modules = append(course.Modules, module)
	}
	return course
}
