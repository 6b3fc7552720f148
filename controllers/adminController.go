package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"campusfix-be/config"
	"campusfix-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fetchIssue loads the issue targeted by an admin mutation, writing the
// error response itself when the lookup fails
func fetchIssue(ctx context.Context, c *gin.Context) (*models.Issue, bool) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return nil, false
	}

	var issue models.Issue
	err = issueCollection().FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return nil, false
	}

	return &issue, true
}

// proofFiles pulls the optional resolution-proof uploads out of a multipart
// request. Requests without a form body are treated as having no files.
func proofFiles(c *gin.Context) (images []*multipart.FileHeader, video *multipart.FileHeader, errs models.ValidationErrors) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil, nil
	}

	images = form.File["images"]
	if vids := form.File["video"]; len(vids) > 1 {
		return nil, nil, models.ValidationErrors{"video": "at most one video per submission"}
	} else if len(vids) == 1 {
		video = vids[0]
	}

	metas := fileMetas(images)
	var videoMeta *models.FileMeta
	if video != nil {
		m := fileMetas([]*multipart.FileHeader{video})[0]
		videoMeta = &m
	}

	if errs := models.ValidateFiles(metas, videoMeta, maxImagesPerReport()); errs != nil {
		return nil, nil, errs
	}

	return images, video, nil
}

// ChangeStatus sets an issue's status and appends the audit entry. Any
// status may follow any other; the only gate is that marking an issue
// Resolved requires proof media, either carried in this request or already
// attached.
func ChangeStatus(c *gin.Context) {
	target := models.IssueStatus(strings.TrimSpace(c.PostForm("status")))
	if !models.ValidStatuses[target] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	changedBy := strings.TrimSpace(c.PostForm("changedBy"))

	if config.DemoMode() {
		c.JSON(http.StatusOK, gin.H{"message": "Demo mode, status not persisted", "demo": true})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issue, ok := fetchIssue(ctx, c)
	if !ok {
		return
	}

	images, video, errs := proofFiles(c)
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	// Resolution gating: refuse before any store mutation.
	declared := len(images)
	if video != nil {
		declared++
	}
	if target == models.Resolved && !issue.CanMarkResolved(declared) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resolution proof required to mark an issue Resolved"})
		return
	}

	entries := uploadAttachments(ctx, issue.ID.Hex(), images, video)

	// Declared proof that failed to upload must not satisfy the gate either.
	if target == models.Resolved && !issue.CanMarkResolved(len(entries)) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload resolution proof"})
		return
	}

	change := issue.NextStatusChange(target, changedBy)

	push := bson.M{"statusHistory": change}
	if len(entries) > 0 {
		push["resolutionProof"] = bson.M{"$each": entries}
	}

	update := bson.M{
		"$set":  bson.M{"status": target, "updatedAt": time.Now()},
		"$push": push,
	}

	if _, err := issueCollection().UpdateOne(ctx, bson.M{"_id": issue.ID}, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully", "status": target})
}

// AssignResolver replaces the issue's resolver wholesale
func AssignResolver(c *gin.Context) {
	var input struct {
		Name       string `json:"name" binding:"required,max=100"`
		Department string `json:"department,omitempty"`
		Contact    string `json:"contact,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if config.DemoMode() {
		c.JSON(http.StatusOK, gin.H{"message": "Demo mode, resolver not persisted", "demo": true})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issue, ok := fetchIssue(ctx, c)
	if !ok {
		return
	}

	resolver := models.Resolver{
		Name:       input.Name,
		Department: input.Department,
		Contact:    input.Contact,
	}

	update := bson.M{"$set": bson.M{"resolver": resolver, "updatedAt": time.Now()}}
	if _, err := issueCollection().UpdateOne(ctx, bson.M{"_id": issue.ID}, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign resolver"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resolver assigned successfully"})
}

// AddResolutionProof uploads proof media and appends it to the issue in a
// single update. Zero files is a no-op.
func AddResolutionProof(c *gin.Context) {
	if config.DemoMode() {
		c.JSON(http.StatusOK, gin.H{"message": "Demo mode, proof not persisted", "demo": true})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issue, ok := fetchIssue(ctx, c)
	if !ok {
		return
	}

	images, video, errs := proofFiles(c)
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if len(images) == 0 && video == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No files supplied"})
		return
	}

	entries := uploadAttachments(ctx, issue.ID.Hex(), images, video)
	if len(entries) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload proof media"})
		return
	}

	update := bson.M{
		"$push": bson.M{"resolutionProof": bson.M{"$each": entries}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := issueCollection().UpdateOne(ctx, bson.M{"_id": issue.ID}, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach proof media"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resolution proof attached", "count": len(entries)})
}

// DeleteIssue removes an issue outright. Administrative only; nothing in the
// normal product flow calls this.
func DeleteIssue(c *gin.Context) {
	if config.DemoMode() {
		c.JSON(http.StatusOK, gin.H{"message": "Demo mode, nothing deleted", "demo": true})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issue, ok := fetchIssue(ctx, c)
	if !ok {
		return
	}

	if _, err := issueCollection().DeleteOne(ctx, bson.M{"_id": issue.ID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete issue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}
