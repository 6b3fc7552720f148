package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DemoIssues is the static dataset served when no MongoDB backend is
// configured. The service becomes a read-only demonstration: reads come from
// this slice and mutating endpoints succeed as no-ops.
var DemoIssues = []Issue{
	{
		ID:          mustObjectID("65a000000000000000000001"),
		Title:       "Broken street light near Library Building",
		Description: "The street light near the main library entrance has been flickering for weeks and now completely stopped working. This poses a safety risk for students walking at night.",
		Category:    Infrastructure,
		Status:      InProgress,
		Location:    Location{Lat: 28.6139, Lng: 77.209, Address: "Main Library, North Campus"},
		CreatedAt:   demoTime("2024-01-15T10:30:00"),
		UpdatedAt:   demoTime("2024-01-18T14:20:00"),
		Media: []MediaEntry{
			{URL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800", Type: MediaImage, UploadedAt: demoTime("2024-01-15T10:30:00")},
		},
		StatusHistory: []StatusChange{
			{From: nil, To: Reported, ChangedAt: demoTime("2024-01-15T10:30:00")},
			{From: statusPtr(Reported), To: Assigned, ChangedAt: demoTime("2024-01-16T09:00:00"), ChangedBy: "Admin"},
			{From: statusPtr(Assigned), To: InProgress, ChangedAt: demoTime("2024-01-18T14:20:00"), ChangedBy: "Maintenance Team"},
		},
		Resolver: &Resolver{Name: "Electrical Maintenance Team", Department: "Campus Infrastructure", Contact: "maintenance@campus.edu"},
	},
	{
		ID:          mustObjectID("65a000000000000000000002"),
		Title:       "Overflowing garbage bins at Sports Complex",
		Description: "Garbage bins behind the sports complex have not been emptied for several days and waste is spilling onto the walkway, attracting stray animals.",
		Category:    Cleanliness,
		Status:      Reported,
		Location:    Location{Lat: 28.6129, Lng: 77.2105, Address: "Sports Complex, East Wing"},
		CreatedAt:   demoTime("2024-01-17T08:15:00"),
		UpdatedAt:   demoTime("2024-01-17T08:15:00"),
		Media:       []MediaEntry{},
		StatusHistory: []StatusChange{
			{From: nil, To: Reported, ChangedAt: demoTime("2024-01-17T08:15:00")},
		},
	},
	{
		ID:          mustObjectID("65a000000000000000000003"),
		Title:       "Leaking ceiling in Lecture Hall 3",
		Description: "Water drips from the ceiling near the projector during rain. Equipment is at risk and the front rows are unusable when it pours.",
		Category:    Infrastructure,
		Status:      Assigned,
		Location:    Location{Lat: 28.6151, Lng: 77.2082, Address: "Lecture Hall 3, Academic Block B"},
		CreatedAt:   demoTime("2024-01-16T13:45:00"),
		UpdatedAt:   demoTime("2024-01-17T11:00:00"),
		Media:       []MediaEntry{},
		StatusHistory: []StatusChange{
			{From: nil, To: Reported, ChangedAt: demoTime("2024-01-16T13:45:00")},
			{From: statusPtr(Reported), To: Assigned, ChangedAt: demoTime("2024-01-17T11:00:00"), ChangedBy: "Admin"},
		},
		Resolver: &Resolver{Name: "Civil Works Cell", Department: "Estate Office"},
	},
	{
		ID:          mustObjectID("65a000000000000000000004"),
		Title:       "Unsafe railing on hostel staircase",
		Description: "The railing on the second-floor staircase of Hostel D is loose and wobbles badly. Someone leaning on it could fall.",
		Category:    Hostel,
		Status:      Assigned,
		Location:    Location{Lat: 28.6172, Lng: 77.2066, Address: "Hostel D, Residential Zone"},
		CreatedAt:   demoTime("2024-01-14T19:20:00"),
		UpdatedAt:   demoTime("2024-01-15T09:30:00"),
		Media:       []MediaEntry{},
		StatusHistory: []StatusChange{
			{From: nil, To: Reported, ChangedAt: demoTime("2024-01-14T19:20:00")},
			{From: statusPtr(Reported), To: Assigned, ChangedAt: demoTime("2024-01-15T09:30:00"), ChangedBy: "Admin"},
		},
		Resolver: &Resolver{Name: "Hostel Maintenance", Department: "Student Welfare"},
	},
	{
		ID:          mustObjectID("65a000000000000000000005"),
		Title:       "Dark stretch between parking lot and main gate",
		Description: "The footpath between the visitor parking lot and the main gate has no working lights at all. It is pitch dark after 7 PM and feels unsafe.",
		Category:    Safety,
		Status:      Reported,
		Location:    Location{Lat: 28.6118, Lng: 77.2121, Address: "Main Gate Approach Road"},
		CreatedAt:   demoTime("2024-01-18T20:05:00"),
		UpdatedAt:   demoTime("2024-01-18T20:05:00"),
		Media:       []MediaEntry{},
		StatusHistory: []StatusChange{
			{From: nil, To: Reported, ChangedAt: demoTime("2024-01-18T20:05:00")},
		},
	},
	{
		ID:          mustObjectID("65a000000000000000000006"),
		Title:       "Projector not working in Seminar Room 2",
		Description: "The ceiling projector in Seminar Room 2 refuses to power on. Classes scheduled there have had to relocate twice this week already.",
		Category:    Academics,
		Status:      Resolved,
		Location:    Location{Lat: 28.6144, Lng: 77.2093, Address: "Seminar Room 2, Academic Block A"},
		CreatedAt:   demoTime("2024-01-10T09:00:00"),
		UpdatedAt:   demoTime("2024-01-13T16:40:00"),
		Media:       []MediaEntry{},
		StatusHistory: []StatusChange{
			{From: nil, To: Reported, ChangedAt: demoTime("2024-01-10T09:00:00")},
			{From: statusPtr(Reported), To: InProgress, ChangedAt: demoTime("2024-01-11T10:15:00"), ChangedBy: "AV Support"},
			{From: statusPtr(InProgress), To: Resolved, ChangedAt: demoTime("2024-01-13T16:40:00"), ChangedBy: "AV Support"},
		},
		Resolver: &Resolver{Name: "AV Support Desk", Department: "IT Services", Contact: "avsupport@campus.edu"},
		ResolutionProof: []MediaEntry{
			{URL: "https://images.unsplash.com/photo-1517520287167-4bbf64a00d66?w=800", Type: MediaImage, UploadedAt: demoTime("2024-01-13T16:40:00")},
		},
	},
}

func mustObjectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

func demoTime(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic(err)
	}
	return t
}

func statusPtr(s IssueStatus) *IssueStatus {
	return &s
}
