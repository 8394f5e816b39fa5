package repository

import (
	"context"
	"errors"

	"dlms/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CourseRepository is the persistence capability the course service depends on
type CourseRepository interface {
	Save(ctx context.Context, course *models.Course) (*models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	FindAll(ctx context.Context) ([]models.Course, error)
	DeleteByID(ctx context.Context, id string) error
	NextCourseID(ctx context.Context) (int, error)
}

type mongoCourseRepository struct {
	courses  *mongo.Collection
	counters *mongo.Collection
}

// NewMongoCourseRepository builds a CourseRepository backed by MongoDB
func NewMongoCourseRepository(courses, counters *mongo.Collection) CourseRepository {
	return &mongoCourseRepository{courses: courses, counters: counters}
}

// Save inserts the course when it has no id yet, otherwise replaces the
// existing document wholesale.
func (r *mongoCourseRepository) Save(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course.ID.IsZero() {
		res, err := r.courses.InsertOne(ctx, course)
		if err != nil {
			return nil, err
		}
		course.ID = res.InsertedID.(primitive.ObjectID)
		return course, nil
	}

	_, err := r.courses.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	if err != nil {
		return nil, err
	}
	return course, nil
}

func (r *mongoCourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var course models.Course
	err = r.courses.FindOne(ctx, bson.M{"_id": objID}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *mongoCourseRepository) FindAll(ctx context.Context) ([]models.Course, error) {
	cursor, err := r.courses.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *mongoCourseRepository) DeleteByID(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.courses.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// NextCourseID atomically increments and returns the courseId sequence
func (r *mongoCourseRepository) NextCourseID(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": "courseId"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
