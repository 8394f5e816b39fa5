package repository

import (
	"context"
	"errors"

	"dlms/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MediaRepository is the persistence capability the media service depends on
type MediaRepository interface {
	Save(ctx context.Context, media *models.MediaMetadata) (*models.MediaMetadata, error)
	FindByID(ctx context.Context, id string) (*models.MediaMetadata, error)
	DeleteByID(ctx context.Context, id string) error
	UpdateCourseID(ctx context.Context, id, courseID string) error
}

type mongoMediaRepository struct {
	media *mongo.Collection
}

// NewMongoMediaRepository builds a MediaRepository backed by MongoDB
func NewMongoMediaRepository(media *mongo.Collection) MediaRepository {
	return &mongoMediaRepository{media: media}
}

func (r *mongoMediaRepository) Save(ctx context.Context, media *models.MediaMetadata) (*models.MediaMetadata, error) {
	if media.ID.IsZero() {
		res, err := r.media.InsertOne(ctx, media)
		if err != nil {
			return nil, err
		}
		media.ID = res.InsertedID.(primitive.ObjectID)
		return media, nil
	}

	_, err := r.media.ReplaceOne(ctx, bson.M{"_id": media.ID}, media)
	if err != nil {
		return nil, err
	}
	return media, nil
}

func (r *mongoMediaRepository) FindByID(ctx context.Context, id string) (*models.MediaMetadata, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var media models.MediaMetadata
	err = r.media.FindOne(ctx, bson.M{"_id": objID}).Decode(&media)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &media, nil
}

func (r *mongoMediaRepository) DeleteByID(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.media.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateCourseID writes only the courseId back-reference on the media document
func (r *mongoMediaRepository) UpdateCourseID(ctx context.Context, id, courseID string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.media.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"courseId": courseID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
