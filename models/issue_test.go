package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssue_Shape(t *testing.T) {
	loc := Location{Lat: 28.6, Lng: 77.2, Address: "Main Gate"}
	issue := NewIssue("Broken light near gate", "20+ char description here about the issue", Safety, loc)

	assert.False(t, issue.ID.IsZero())
	assert.Equal(t, Reported, issue.Status)
	assert.Empty(t, issue.Media)
	assert.Nil(t, issue.Resolver)
	assert.Empty(t, issue.ResolutionProof)
	assert.False(t, issue.UpdatedAt.Before(issue.CreatedAt))

	require.Len(t, issue.StatusHistory, 1)
	seed := issue.StatusHistory[0]
	assert.Nil(t, seed.From)
	assert.Equal(t, Reported, seed.To)
	assert.False(t, seed.ChangedAt.IsZero())
}

func TestNextStatusChange_CapturesPriorStatus(t *testing.T) {
	issue := NewIssue("Broken light near gate", "20+ char description here about the issue", Safety, Location{Lat: 28.6, Lng: 77.2})

	change := issue.NextStatusChange(Assigned, "Team A")
	require.NotNil(t, change.From)
	assert.Equal(t, Reported, *change.From)
	assert.Equal(t, Assigned, change.To)
	assert.Equal(t, "Team A", change.ChangedBy)
	assert.False(t, change.ChangedAt.IsZero())
}

func TestStatusHistory_AppendOnlyGrowth(t *testing.T) {
	issue := NewIssue("Broken light near gate", "20+ char description here about the issue", Safety, Location{Lat: 28.6, Lng: 77.2})

	// Any status may follow any other; apply a sequence that doubles back.
	sequence := []IssueStatus{Assigned, InProgress, Reported, InProgress, Resolved}
	for _, target := range sequence {
		change := issue.NextStatusChange(target, "Admin")
		issue.StatusHistory = append(issue.StatusHistory, change)
		issue.Status = target
	}

	require.Len(t, issue.StatusHistory, len(sequence)+1, "seed entry plus one per change")

	// Seed entry untouched
	assert.Nil(t, issue.StatusHistory[0].From)
	assert.Equal(t, Reported, issue.StatusHistory[0].To)

	// Each entry's from equals the previous entry's to
	for i := 1; i < len(issue.StatusHistory); i++ {
		require.NotNil(t, issue.StatusHistory[i].From)
		assert.Equal(t, issue.StatusHistory[i-1].To, *issue.StatusHistory[i].From)
	}

	// Last entry matches current status
	assert.Equal(t, issue.Status, issue.StatusHistory[len(issue.StatusHistory)-1].To)
}

func TestHasResolutionProof(t *testing.T) {
	issue := NewIssue("Broken light near gate", "20+ char description here about the issue", Safety, Location{Lat: 28.6, Lng: 77.2})
	assert.False(t, issue.HasResolutionProof())

	issue.ResolutionProof = append(issue.ResolutionProof, MediaEntry{URL: "https://example.com/p.jpg", Type: MediaImage})
	assert.True(t, issue.HasResolutionProof())
}

func TestCanMarkResolved(t *testing.T) {
	issue := NewIssue("Broken light near gate", "20+ char description here about the issue", Safety, Location{Lat: 28.6, Lng: 77.2})

	// Zero proof items and nothing attached: the transition is refused.
	// This is also the post-upload state when every declared file failed.
	assert.False(t, issue.CanMarkResolved(0))

	// Proof arriving with the change satisfies the gate.
	assert.True(t, issue.CanMarkResolved(1))

	// Already-attached proof satisfies the gate on its own.
	issue.ResolutionProof = append(issue.ResolutionProof, MediaEntry{URL: "https://example.com/p.jpg", Type: MediaImage})
	assert.True(t, issue.CanMarkResolved(0))
}

func TestValidSets(t *testing.T) {
	assert.Len(t, ValidCategories, 6)
	assert.Len(t, ValidStatuses, 4)
	assert.False(t, ValidCategories["Parking"])
	assert.False(t, ValidStatuses["Closed"])
}
