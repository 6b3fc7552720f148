package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IssueCategory enum
type IssueCategory string

const (
	Infrastructure IssueCategory = "Infrastructure"
	Safety         IssueCategory = "Safety"
	Cleanliness    IssueCategory = "Cleanliness"
	Academics      IssueCategory = "Academics"
	Hostel         IssueCategory = "Hostel"
	Other          IssueCategory = "Other"
)

// IssueStatus enum
type IssueStatus string

const (
	Reported   IssueStatus = "Reported"
	Assigned   IssueStatus = "Assigned"
	InProgress IssueStatus = "In Progress"
	Resolved   IssueStatus = "Resolved"
)

// MediaType enum
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// ValidCategories is the closed set of accepted issue categories
var ValidCategories = map[IssueCategory]bool{
	Infrastructure: true,
	Safety:         true,
	Cleanliness:    true,
	Academics:      true,
	Hostel:         true,
	Other:          true,
}

// ValidStatuses is the closed set of accepted issue statuses
var ValidStatuses = map[IssueStatus]bool{
	Reported:   true,
	Assigned:   true,
	InProgress: true,
	Resolved:   true,
}

// Location is the geographic position of an issue
type Location struct {
	Lat     float64 `bson:"lat" json:"lat"`
	Lng     float64 `bson:"lng" json:"lng"`
	Address string  `bson:"address,omitempty" json:"address,omitempty"`
}

// MediaEntry is one uploaded attachment. Entries are append-only: once
// attached they are never edited, reordered, or removed.
type MediaEntry struct {
	URL        string    `bson:"url" json:"url"`
	Type       MediaType `bson:"type" json:"type"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// StatusChange is one entry of the append-only status audit log.
// From is nil only for the creation seed entry.
type StatusChange struct {
	From      *IssueStatus `bson:"from" json:"from"`
	To        IssueStatus  `bson:"to" json:"to"`
	ChangedAt time.Time    `bson:"changedAt" json:"changedAt"`
	ChangedBy string       `bson:"changedBy,omitempty" json:"changedBy,omitempty"`
}

// Resolver attributes responsibility for an issue. Reassignment replaces the
// whole object, it is never merged field by field.
type Resolver struct {
	Name       string `bson:"name" json:"name"`
	Department string `bson:"department,omitempty" json:"department,omitempty"`
	Contact    string `bson:"contact,omitempty" json:"contact,omitempty"`
}

// Issue represents a campus problem reported anonymously
type Issue struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Category        IssueCategory      `bson:"category" json:"category"`
	Location        Location           `bson:"location" json:"location"`
	Status          IssueStatus        `bson:"status" json:"status"`
	Media           []MediaEntry       `bson:"media" json:"media"`
	StatusHistory   []StatusChange     `bson:"statusHistory" json:"statusHistory"`
	Resolver        *Resolver          `bson:"resolver,omitempty" json:"resolver,omitempty"`
	ResolutionProof []MediaEntry       `bson:"resolutionProof,omitempty" json:"resolutionProof,omitempty"`
	AdminNotes      string             `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewIssue builds the document for an anonymous submission: status is forced
// to Reported, media starts empty, and the status history is seeded with the
// initial {from: nil, to: Reported} entry.
func NewIssue(title, description string, category IssueCategory, location Location) Issue {
	now := time.Now()
	return Issue{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Category:    category,
		Location:    location,
		Status:      Reported,
		Media:       []MediaEntry{},
		StatusHistory: []StatusChange{
			{From: nil, To: Reported, ChangedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NextStatusChange builds the audit entry for a status transition, capturing
// the issue's current status as the prior value.
func (i *Issue) NextStatusChange(target IssueStatus, changedBy string) StatusChange {
	from := i.Status
	return StatusChange{
		From:      &from,
		To:        target,
		ChangedAt: time.Now(),
		ChangedBy: changedBy,
	}
}

// HasResolutionProof reports whether any proof media is attached
func (i *Issue) HasResolutionProof() bool {
	return len(i.ResolutionProof) > 0
}

// CanMarkResolved reports whether the issue may enter the Resolved status
// given proofCount additional proof media items. Resolved always requires at
// least one proof item, either already attached or arriving with the change.
func (i *Issue) CanMarkResolved(proofCount int) bool {
	return i.HasResolutionProof() || proofCount > 0
}

// EnsureIssueIndexes creates the indexes the list queries rely on
func EnsureIssueIndexes(collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}}},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
