package services

import (
	"context"
	"errors"
	"testing"

	"dlms/models"
	"dlms/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCourseRepo struct {
	byID map[string]*models.Course
	seq  int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{byID: make(map[string]*models.Course)}
}

func (f *fakeCourseRepo) Save(_ context.Context, course *models.Course) (*models.Course, error) {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	stored := *course
	f.byID[course.ID.Hex()] = &stored
	return course, nil
}

func (f *fakeCourseRepo) FindByID(_ context.Context, id string) (*models.Course, error) {
	course, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := *course
	return &found, nil
}

func (f *fakeCourseRepo) FindAll(_ context.Context) ([]models.Course, error) {
	var out []models.Course
	for _, c := range f.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCourseRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeCourseRepo) NextCourseID(_ context.Context) (int, error) {
	f.seq++
	return f.seq, nil
}

// fakeMediaLinker records every assign/delete call and can be told to fail
// for specific media ids.
type fakeMediaLinker struct {
	assigned    map[string]string
	assignCalls []string
	deleteCalls []string
	failAssign  map[string]error
	failDelete  map[string]error
}

func newFakeMediaLinker() *fakeMediaLinker {
	return &fakeMediaLinker{
		assigned:   make(map[string]string),
		failAssign: make(map[string]error),
		failDelete: make(map[string]error),
	}
}

func (f *fakeMediaLinker) AssignCourse(_ context.Context, mediaID, courseID string) error {
	f.assignCalls = append(f.assignCalls, mediaID)
	if err, ok := f.failAssign[mediaID]; ok {
		return err
	}
	f.assigned[mediaID] = courseID
	return nil
}

func (f *fakeMediaLinker) Delete(_ context.Context, mediaID string) error {
	f.deleteCalls = append(f.deleteCalls, mediaID)
	if err, ok := f.failDelete[mediaID]; ok {
		return err
	}
	return nil
}

func twoLessonRequest(mediaIDs ...string) CourseCreateRequest {
	req := CourseCreateRequest{
		Title:      "Intro to Distributed Systems",
		Instructor: "instructor",
	}
	module := ModuleRequest{Title: "Basics"}
	for i, id := range mediaIDs {
		module.Lessons = append(module.Lessons, LessonRequest{
			Title:   "Lesson " + string(rune('A'+i)),
			Type:    "video",
			MediaID: id,
		})
	}
	req.Modules = []ModuleRequest{module}
	return req
}

func TestCreateAssignsIdentityAndLessonIds(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo(), newFakeMediaLinker())

	course, _, err := svc.Create(context.Background(), twoLessonRequest("m1", ""))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if course.ID.IsZero() {
		t.Error("course document id not assigned")
	}
	if course.CourseID == 0 {
		t.Error("numeric courseId not assigned")
	}
	if course.CreatedAt.IsZero() || course.UpdatedAt.IsZero() {
		t.Error("timestamps not set on create")
	}

	seen := make(map[string]bool)
	for _, m := range course.Modules {
		for _, l := range m.Lessons {
			if l.ID == "" {
				t.Errorf("lesson %q has empty generated id", l.Title)
			}
			if seen[l.ID] {
				t.Errorf("duplicate lesson id %q", l.ID)
			}
			seen[l.ID] = true
		}
	}
}

func TestCreateLinksLessonMedia(t *testing.T) {
	linker := newFakeMediaLinker()
	svc := NewCourseService(newFakeCourseRepo(), linker)

	course, sync, err := svc.Create(context.Background(), twoLessonRequest("m1", "m2"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(sync.Succeeded) != 2 || len(sync.Failed) != 0 {
		t.Fatalf("sync = %+v, want two successes", sync)
	}
	for _, id := range []string{"m1", "m2"} {
		if linker.assigned[id] != course.ID.Hex() {
			t.Errorf("media %s linked to %q, want %q", id, linker.assigned[id], course.ID.Hex())
		}
	}
}

func TestCreateSurvivesLinkFailures(t *testing.T) {
	linker := newFakeMediaLinker()
	linker.failAssign["m1"] = errors.New("media store down")
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo, linker)

	course, sync, err := svc.Create(context.Background(), twoLessonRequest("m1", "m2"))
	if err != nil {
		t.Fatalf("Create must not fail on link errors: %v", err)
	}

	if _, found := repo.byID[course.ID.Hex()]; !found {
		t.Fatal("course was not persisted")
	}
	if len(sync.Failed) != 1 || sync.Failed[0].MediaID != "m1" {
		t.Errorf("sync.Failed = %+v, want single m1 failure", sync.Failed)
	}
	if len(sync.Succeeded) != 1 || sync.Succeeded[0] != "m2" {
		t.Errorf("sync.Succeeded = %+v, want [m2]", sync.Succeeded)
	}
}

func TestUpdatePreservesIdentity(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo(), newFakeMediaLinker())
	ctx := context.Background()

	created, _, err := svc.Create(ctx, twoLessonRequest("m1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, _, err := svc.Update(ctx, created.ID.Hex(), CourseCreateRequest{
		Title: "Renamed Course",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("document id changed: %s -> %s", created.ID.Hex(), updated.ID.Hex())
	}
	if updated.CourseID != created.CourseID {
		t.Errorf("courseId changed: %d -> %d", created.CourseID, updated.CourseID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("createdAt changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Errorf("updatedAt not advanced: %v", updated.UpdatedAt)
	}
	if updated.Title != "Renamed Course" {
		t.Errorf("title = %q, want replacement applied", updated.Title)
	}
}

func TestUpdateUnknownCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo(), newFakeMediaLinker())

	_, _, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), twoLessonRequest())
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestUpdateRelinksNewLessonSetOnly(t *testing.T) {
	linker := newFakeMediaLinker()
	svc := NewCourseService(newFakeCourseRepo(), linker)
	ctx := context.Background()

	created, _, err := svc.Create(ctx, twoLessonRequest("m1", "m2"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	linker.assignCalls = nil
	if _, _, err := svc.Update(ctx, created.ID.Hex(), twoLessonRequest("m2")); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Only the current lesson set is linked. The removed lesson's media (m1)
	// keeps its old back-reference; there is no unlink pass.
	if len(linker.assignCalls) != 1 || linker.assignCalls[0] != "m2" {
		t.Errorf("assign calls after update = %v, want [m2]", linker.assignCalls)
	}
	if linker.assigned["m1"] != created.ID.Hex() {
		t.Errorf("m1 back-reference = %q, expected stale link to remain", linker.assigned["m1"])
	}
}

func TestDeleteSweepsAllMediaDespiteFailures(t *testing.T) {
	linker := newFakeMediaLinker()
	linker.failDelete["m1"] = errors.New("already pinned elsewhere")
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo, linker)
	ctx := context.Background()

	created, _, err := svc.Create(ctx, twoLessonRequest("m1", "m2"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sweep, err := svc.Delete(ctx, created.ID.Hex())
	if err != nil {
		t.Fatalf("Delete must survive media failures: %v", err)
	}

	// Both deletions attempted, in lesson order, despite m1 failing
	if len(linker.deleteCalls) != 2 || linker.deleteCalls[0] != "m1" || linker.deleteCalls[1] != "m2" {
		t.Errorf("delete calls = %v, want [m1 m2]", linker.deleteCalls)
	}
	if len(sweep.Failed) != 1 || sweep.Failed[0].MediaID != "m1" {
		t.Errorf("sweep.Failed = %+v, want single m1 failure", sweep.Failed)
	}

	if _, found := repo.byID[created.ID.Hex()]; found {
		t.Error("course still present after delete")
	}
}

func TestDeleteUnknownCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo(), newFakeMediaLinker())

	_, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestGetByIdRoundTripsNesting(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo(), newFakeMediaLinker())
	ctx := context.Background()

	created, _, err := svc.Create(ctx, CourseCreateRequest{
		Title: "Full Nesting",
		Modules: []ModuleRequest{
			{Title: "M1", Lessons: []LessonRequest{{Title: "L1", Type: "video", MediaID: "m1"}}},
			{Title: "M2", Lessons: []LessonRequest{{Title: "L2", Type: "article"}, {Title: "L3", Type: "quiz"}}},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Modules) != 2 {
		t.Fatalf("modules = %d, want 2", len(got.Modules))
	}
	if len(got.Modules[0].Lessons) != 1 || len(got.Modules[1].Lessons) != 2 {
		t.Errorf("lesson counts = %d/%d, want 1/2", len(got.Modules[0].Lessons), len(got.Modules[1].Lessons))
	}
	if got.Modules[0].Lessons[0].MediaID != "m1" {
		t.Errorf("mediaId = %q, want m1", got.Modules[0].Lessons[0].MediaID)
	}
}
