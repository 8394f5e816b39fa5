package services

import (
	"context"
	"errors"

	"dlms/models"
	"dlms/repository"
	"dlms/services/storage"
)

// ErrMediaNotFound is returned when no media exists for the requested id
var ErrMediaNotFound = errors.New("media not found")

// MediaService owns media metadata and its link to an owning course
type MediaService struct {
	repo    repository.MediaRepository
	storage storage.Provider
}

// NewMediaService builds a MediaService
func NewMediaService(repo repository.MediaRepository, provider storage.Provider) *MediaService {
	return &MediaService{repo: repo, storage: provider}
}

// Upload pushes the file to the storage provider and persists its metadata
func (s *MediaService) Upload(ctx context.Context, fileName, contentType string, size int64, data []byte) (*models.MediaMetadata, error) {
	cid, err := s.storage.UploadFile(ctx, fileName, data)
	if err != nil {
		return nil, err
	}

	meta := &models.MediaMetadata{
		FileName:          fileName,
		ContentType:       contentType,
		ContentIdentifier: cid,
		StorageProvider:   "IPFS",
		Size:              size,
	}
	return s.repo.Save(ctx, meta)
}

// GetAccessURL resolves a media id to the public URL of its content
func (s *MediaService) GetAccessURL(ctx context.Context, mediaID string) (string, error) {
	meta, err := s.repo.FindByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrMediaNotFound
		}
		return "", err
	}
	return s.storage.AccessURL(meta.ContentIdentifier), nil
}

// Delete removes the media metadata. The pinned content itself is left on the
// storage provider; only the record is dropped.
func (s *MediaService) Delete(ctx context.Context, mediaID string) error {
	err := s.repo.DeleteByID(ctx, mediaID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMediaNotFound
	}
	return err
}

// AssignCourse sets the courseId back-reference on a media record. There is no
// inverse detach operation; reassignment simply overwrites the previous value.
func (s *MediaService) AssignCourse(ctx context.Context, mediaID, courseID string) error {
	if _, err := s.repo.FindByID(ctx, mediaID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMediaNotFound
		}
		return err
	}

	err := s.repo.UpdateCourseID(ctx, mediaID, courseID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMediaNotFound
	}
	return err
}
