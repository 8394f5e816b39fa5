package database

import (
	"context"
	"log"
	"time"

	"dlms/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient is the global MongoDB client
var MongoClient *mongo.Client

// Collection handles for the document store
var (
	CourseCollection  *mongo.Collection
	MediaCollection   *mongo.Collection
	CounterCollection *mongo.Collection
)

// ConnectMongo establishes a connection to MongoDB and binds collection handles
func ConnectMongo() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOption := options.Client().ApplyURI(config.AppConfig.MongoURI)
	client, err := mongo.Connect(ctx, clientOption)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Verify the connection before serving traffic
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	MongoClient = client

	db := client.Database(config.AppConfig.MongoDB)
	CourseCollection = db.Collection("courses")
	MediaCollection = db.Collection("media")
	CounterCollection = db.Collection("counters")

	log.Println("Connected Successfully to MongoDB")
}
