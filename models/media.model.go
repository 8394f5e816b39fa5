package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MediaMetadata describes one uploaded file. ContentIdentifier is the opaque
// handle (IPFS CID) returned by the storage provider; the backend stores it
// but never interprets it. CourseID is a best-effort back-reference written
// after the owning course, so it may transiently be stale or empty.
type MediaMetadata struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FileName          string             `json:"fileName" bson:"fileName"`
	ContentType       string             `json:"contentType" bson:"contentType"`
	ContentIdentifier string             `json:"contentIdentifier" bson:"contentIdentifier"`
	StorageProvider   string             `json:"storageProvider" bson:"storageProvider"`
	Size              int64              `json:"size" bson:"size"`
	CourseID          string             `json:"courseId" bson:"courseId,omitempty"`
}
