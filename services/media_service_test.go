package services

import (
	"context"
	"errors"
	"testing"

	"dlms/models"
	"dlms/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeMediaRepo struct {
	byID map[string]*models.MediaMetadata
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{byID: make(map[string]*models.MediaMetadata)}
}

func (f *fakeMediaRepo) Save(_ context.Context, media *models.MediaMetadata) (*models.MediaMetadata, error) {
	if media.ID.IsZero() {
		media.ID = primitive.NewObjectID()
	}
	stored := *media
	f.byID[media.ID.Hex()] = &stored
	return media, nil
}

func (f *fakeMediaRepo) FindByID(_ context.Context, id string) (*models.MediaMetadata, error) {
	media, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := *media
	return &found, nil
}

func (f *fakeMediaRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeMediaRepo) UpdateCourseID(_ context.Context, id, courseID string) error {
	media, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	media.CourseID = courseID
	return nil
}

type fakeProvider struct {
	cid     string
	lastKey string
	err     error
}

func (f *fakeProvider) UploadFile(_ context.Context, fileName string, _ []byte) (string, error) {
	f.lastKey = fileName
	if f.err != nil {
		return "", f.err
	}
	return f.cid, nil
}

func (f *fakeProvider) AccessURL(cid string) string {
	return "https://gateway.example/ipfs/" + cid
}

func TestUploadPersistsMetadata(t *testing.T) {
	repo := newFakeMediaRepo()
	svc := NewMediaService(repo, &fakeProvider{cid: "QmTest"})

	meta, err := svc.Upload(context.Background(), "lecture.mp4", "video/mp4", 2048, []byte("bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if meta.ID.IsZero() {
		t.Error("media id not assigned")
	}
	if meta.ContentIdentifier != "QmTest" {
		t.Errorf("contentIdentifier = %q, want QmTest", meta.ContentIdentifier)
	}
	if meta.StorageProvider != "IPFS" {
		t.Errorf("storageProvider = %q, want IPFS", meta.StorageProvider)
	}
	if meta.FileName != "lecture.mp4" || meta.ContentType != "video/mp4" || meta.Size != 2048 {
		t.Errorf("metadata = %+v, file attributes not carried over", meta)
	}
	if meta.CourseID != "" {
		t.Errorf("courseId = %q on fresh upload, want empty", meta.CourseID)
	}
}

func TestUploadFailsWhenProviderFails(t *testing.T) {
	repo := newFakeMediaRepo()
	svc := NewMediaService(repo, &fakeProvider{err: errors.New("pinata unreachable")})

	_, err := svc.Upload(context.Background(), "lecture.mp4", "video/mp4", 10, nil)
	if err == nil {
		t.Fatal("Upload succeeded despite provider failure")
	}
	if len(repo.byID) != 0 {
		t.Error("metadata persisted despite provider failure")
	}
}

func TestGetAccessURL(t *testing.T) {
	repo := newFakeMediaRepo()
	svc := NewMediaService(repo, &fakeProvider{cid: "QmTest"})

	meta, err := svc.Upload(context.Background(), "doc.pdf", "application/pdf", 1, nil)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	url, err := svc.GetAccessURL(context.Background(), meta.ID.Hex())
	if err != nil {
		t.Fatalf("GetAccessURL: %v", err)
	}
	if url != "https://gateway.example/ipfs/QmTest" {
		t.Errorf("url = %q", url)
	}

	_, err = svc.GetAccessURL(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("err = %v, want ErrMediaNotFound", err)
	}
}

func TestDeleteUnknownMedia(t *testing.T) {
	svc := NewMediaService(newFakeMediaRepo(), &fakeProvider{})

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("err = %v, want ErrMediaNotFound", err)
	}
}

func TestAssignCourse(t *testing.T) {
	repo := newFakeMediaRepo()
	svc := NewMediaService(repo, &fakeProvider{cid: "QmTest"})
	ctx := context.Background()

	meta, err := svc.Upload(ctx, "clip.mp4", "video/mp4", 1, nil)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if err := svc.AssignCourse(ctx, meta.ID.Hex(), "course-1"); err != nil {
		t.Fatalf("AssignCourse: %v", err)
	}
	stored, _ := repo.FindByID(ctx, meta.ID.Hex())
	if stored.CourseID != "course-1" {
		t.Errorf("courseId = %q, want course-1", stored.CourseID)
	}

	// Reassignment overwrites the previous back-reference
	if err := svc.AssignCourse(ctx, meta.ID.Hex(), "course-2"); err != nil {
		t.Fatalf("reassign: %v", err)
	}
	stored, _ = repo.FindByID(ctx, meta.ID.Hex())
	if stored.CourseID != "course-2" {
		t.Errorf("courseId = %q after reassign, want course-2", stored.CourseID)
	}
}

func TestAssignCourseUnknownMediaCreatesNothing(t *testing.T) {
	repo := newFakeMediaRepo()
	svc := NewMediaService(repo, &fakeProvider{})

	err := svc.AssignCourse(context.Background(), primitive.NewObjectID().Hex(), "course-1")
	if !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("err = %v, want ErrMediaNotFound", err)
	}
	if len(repo.byID) != 0 {
		t.Error("assigning to unknown media must not create a record")
	}
}
