package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"campusfix-be/config"
	"campusfix-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// snapshotIssues loads the full ordered issue set. The live feed replaces
// the consumer's state wholesale on every change, it never sends diffs.
func snapshotIssues(ctx context.Context) ([]models.Issue, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := issueCollection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

func writeSnapshotEvent(c *gin.Context, issues []models.Issue) bool {
	payload, err := json.Marshal(issues)
	if err != nil {
		log.Printf("marshal feed snapshot: %v", err)
		return false
	}
	if _, err := c.Writer.WriteString("event: issues\ndata: " + string(payload) + "\n\n"); err != nil {
		return false
	}
	c.Writer.Flush()
	return true
}

// StreamIssues serves the live issue feed as Server-Sent Events: one full
// snapshot immediately, then a fresh snapshot whenever anything in the
// collection changes. The change stream is torn down when the client
// disconnects.
func StreamIssues(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	if config.DemoMode() {
		writeSnapshotEvent(c, models.SortIssuesByCreatedAt(models.DemoIssues, true))
		return
	}

	clientCtx := c.Request.Context()

	stream, err := issueCollection().Watch(clientCtx, mongo.Pipeline{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open issue feed"})
		return
	}
	defer stream.Close(clientCtx)

	send := func() bool {
		ctx, cancel := context.WithTimeout(clientCtx, 10*time.Second)
		defer cancel()

		issues, err := snapshotIssues(ctx)
		if err != nil {
			log.Printf("feed snapshot: %v", err)
			return false
		}
		return writeSnapshotEvent(c, issues)
	}

	if !send() {
		return
	}

	for stream.Next(clientCtx) {
		if !send() {
			return
		}
	}
}
