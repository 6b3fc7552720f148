package config

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	db       *mongo.Database
	client   *mongo.Client
	once     sync.Once
	demoMode bool
)

// ConnectDB initializes and returns the MongoDB database connection. When
// MONGODB_URI is absent the service switches to demo mode instead of
// failing: reads serve the static dataset and mutations become no-ops.
// Returns nil in demo mode.
func ConnectDB() *mongo.Database {
	once.Do(func() {
		mongoURI := os.Getenv("MONGODB_URI")
		if mongoURI == "" {
			demoMode = true
			log.Println("MONGODB_URI not set; running in demo mode with static data")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		c, err := mongo.NewClient(options.Client().ApplyURI(mongoURI))
		if err != nil {
			log.Fatalf("Failed to create MongoDB client: %v", err)
		}

		if err := c.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}

		log.Println("Connected to MongoDB!")

		client = c
		db = client.Database("campusfix")
	})

	return db
}

// DemoMode reports whether the service is running without a live backend
func DemoMode() bool {
	ConnectDB()
	return demoMode
}

// GetCollection returns a MongoDB collection by name, or nil in demo mode
func GetCollection(name string) *mongo.Collection {
	if d := ConnectDB(); d != nil {
		return d.Collection(name)
	}
	return nil
}
