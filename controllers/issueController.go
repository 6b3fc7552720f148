package controllers

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"campusfix-be/config"
	"campusfix-be/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func issueCollection() *mongo.Collection {
	return config.GetCollection("issues")
}

// maxImagesPerReport reads the per-submission image cap from the environment
func maxImagesPerReport() int {
	if v := strings.TrimSpace(os.Getenv("MAX_IMAGES_PER_REPORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return models.DefaultMaxImages
}

// fileMetas converts multipart headers into the storage-agnostic shape the
// validator works on
func fileMetas(headers []*multipart.FileHeader) []models.FileMeta {
	metas := make([]models.FileMeta, 0, len(headers))
	for _, h := range headers {
		metas = append(metas, models.FileMeta{
			Name:        h.Filename,
			Size:        h.Size,
			ContentType: h.Header.Get("Content-Type"),
		})
	}
	return metas
}

// uploadAttachments pushes each accepted file into blob storage and returns
// the resulting media entries. A failed upload is logged and skipped, never
// retried: the owning record simply ends up with fewer media entries than
// were submitted.
func uploadAttachments(ctx context.Context, issueID string, images []*multipart.FileHeader, video *multipart.FileHeader) []models.MediaEntry {
	if !config.StorageReady() {
		if len(images) > 0 || video != nil {
			log.Println("blob storage not configured; dropping submitted media")
		}
		return nil
	}

	entries := make([]models.MediaEntry, 0, len(images)+1)

	put := func(h *multipart.FileHeader, kind models.MediaType, index int) {
		f, err := h.Open()
		if err != nil {
			log.Printf("open upload %q: %v", h.Filename, err)
			return
		}
		defer f.Close()

		key := fmt.Sprintf("issues/%s/media/%d-%d-%s", issueID, time.Now().UnixMilli(), index, h.Filename)
		url, err := config.UploadMedia(ctx, key, h.Header.Get("Content-Type"), f, h.Size)
		if err != nil {
			log.Printf("upload %q: %v", h.Filename, err)
			return
		}

		entries = append(entries, models.MediaEntry{
			URL:        url,
			Type:       kind,
			UploadedAt: time.Now(),
		})
	}

	for i, h := range images {
		put(h, models.MediaImage, i)
	}
	if video != nil {
		put(video, models.MediaVideo, 0)
	}

	return entries
}

// CreateIssue handles an anonymous issue submission. The base record is
// written first so uploads can reference its id; media entries are attached
// afterwards in a single update.
func CreateIssue(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected multipart form data"})
		return
	}

	var location *models.Location
	lat, latErr := strconv.ParseFloat(c.PostForm("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.PostForm("lng"), 64)
	if latErr == nil && lngErr == nil {
		location = &models.Location{Lat: lat, Lng: lng, Address: c.PostForm("address")}
	}

	images := form.File["images"]
	var video *multipart.FileHeader
	if vids := form.File["video"]; len(vids) > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"video": "at most one video per submission"}})
		return
	} else if len(vids) == 1 {
		video = vids[0]
	}

	input := models.SubmissionInput{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Category:    c.PostForm("category"),
		Location:    location,
		Images:      fileMetas(images),
	}
	if video != nil {
		meta := fileMetas([]*multipart.FileHeader{video})[0]
		input.Video = &meta
	}

	// Reject before any store or blob call; report the violated fields.
	if errs := models.ValidateSubmission(input, maxImagesPerReport()); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	// Demo mode accepts the submission without persisting anything.
	if config.DemoMode() {
		c.JSON(http.StatusCreated, gin.H{"id": uuid.NewString(), "demo": true})
		return
	}

	issue := models.NewIssue(input.Title, input.Description, models.IssueCategory(input.Category), *location)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := issueCollection().InsertOne(ctx, issue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	// Base record exists; attach whatever uploads succeed in one update.
	entries := uploadAttachments(ctx, issue.ID.Hex(), images, video)
	if len(entries) > 0 {
		update := bson.M{
			"$push": bson.M{"media": bson.M{"$each": entries}},
			"$set":  bson.M{"updatedAt": time.Now()},
		}
		if _, err := issueCollection().UpdateOne(ctx, bson.M{"_id": issue.ID}, update); err != nil {
			log.Printf("attach media to issue %s: %v", issue.ID.Hex(), err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"id": issue.ID.Hex()})
}

// GetAllIssues handles the public feed with filtering, sorting, search, and
// pagination
func GetAllIssues(c *gin.Context) {
	category := c.Query("category")
	status := c.Query("status")
	search := c.Query("search")
	sortOrder := c.DefaultQuery("sort", "newest")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	if config.DemoMode() {
		listDemoIssues(c, status, category, search, sortOrder, page, limit)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}

	if category != "" && category != "all" {
		filter["category"] = category
	}

	if status != "" && status != "all" {
		filter["status"] = status
	}

	if search != "" {
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": search, "$options": "i"}},
			{"description": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	skip := (page - 1) * limit

	var sortOptions bson.D
	switch sortOrder {
	case "oldest":
		sortOptions = bson.D{{Key: "createdAt", Value: 1}}
	case "newest":
		fallthrough
	default:
		sortOptions = bson.D{{Key: "createdAt", Value: -1}}
	}

	totalCount, err := issueCollection().CountDocuments(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count issues"})
		return
	}

	findOptions := options.Find().
		SetSort(sortOptions).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := issueCollection().Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode issues"})
		return
	}

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": totalCount,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

// listDemoIssues serves the static dataset with the same query semantics as
// the live feed
func listDemoIssues(c *gin.Context, status, category, search, sortOrder string, page, limit int) {
	issues := models.FilterIssues(models.DemoIssues, status, category)

	if search != "" {
		needle := strings.ToLower(search)
		matched := make([]models.Issue, 0, len(issues))
		for _, issue := range issues {
			if strings.Contains(strings.ToLower(issue.Title), needle) ||
				strings.Contains(strings.ToLower(issue.Description), needle) {
				matched = append(matched, issue)
			}
		}
		issues = matched
	}

	issues = models.SortIssuesByCreatedAt(issues, sortOrder != "oldest")

	totalCount := len(issues)
	totalPages := (totalCount + limit - 1) / limit

	start := (page - 1) * limit
	if start > totalCount {
		start = totalCount
	}
	end := start + limit
	if end > totalCount {
		end = totalCount
	}

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues[start:end],
		"totalIssues": totalCount,
		"totalPages":  totalPages,
		"currentPage": page,
		"demo":        true,
	})
}

// GetIssue retrieves an issue by its ID
func GetIssue(c *gin.Context) {
	idParam := c.Param("id")

	if config.DemoMode() {
		for _, issue := range models.DemoIssues {
			if issue.ID.Hex() == idParam {
				c.JSON(http.StatusOK, issue)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	issueID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var issue models.Issue
	err = issueCollection().FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	c.JSON(http.StatusOK, issue)
}

// RecentIssues returns the most recent issues for the map view
func RecentIssues(c *gin.Context) {
	limit := 19

	if config.DemoMode() {
		issues := models.SortIssuesByCreatedAt(models.DemoIssues, true)
		if len(issues) > limit {
			issues = issues[:limit]
		}
		c.JSON(http.StatusOK, recentProjection(issues))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	projection := bson.M{
		"_id":       1,
		"title":     1,
		"location":  1,
		"category":  1,
		"status":    1,
		"createdAt": 1,
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(projection)

	cursor, err := issueCollection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recent issues"})
		return
	}
	defer cursor.Close(ctx)

	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode recent issues"})
		return
	}

	c.JSON(http.StatusOK, recentProjection(issues))
}

func recentProjection(issues []models.Issue) []gin.H {
	out := make([]gin.H, 0, len(issues))
	for _, issue := range issues {
		out = append(out, gin.H{
			"id":        issue.ID.Hex(),
			"title":     issue.Title,
			"lat":       issue.Location.Lat,
			"lng":       issue.Location.Lng,
			"address":   issue.Location.Address,
			"category":  issue.Category,
			"status":    issue.Status,
			"createdAt": issue.CreatedAt,
		})
	}
	return out
}
