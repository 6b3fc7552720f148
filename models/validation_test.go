package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() SubmissionInput {
	return SubmissionInput{
		Title:       "Broken light near gate",
		Description: "20+ char description here about the issue",
		Category:    "Safety",
		Location:    &Location{Lat: 28.6, Lng: 77.2},
		Images: []FileMeta{
			{Name: "photo.jpg", Size: 5 << 20, ContentType: "image/jpeg"},
		},
	}
}

func TestValidateSubmission_Valid(t *testing.T) {
	errs := ValidateSubmission(validInput(), DefaultMaxImages)
	require.Nil(t, errs)
}

func TestValidateSubmission_FieldViolations(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SubmissionInput)
		wantField string
	}{
		{
			name:      "title too short",
			mutate:    func(in *SubmissionInput) { in.Title = "Hi" },
			wantField: "title",
		},
		{
			name:      "title too long",
			mutate:    func(in *SubmissionInput) { in.Title = strings.Repeat("a", 101) },
			wantField: "title",
		},
		{
			name:      "description too short",
			mutate:    func(in *SubmissionInput) { in.Description = "too short" },
			wantField: "description",
		},
		{
			name:      "description too long",
			mutate:    func(in *SubmissionInput) { in.Description = strings.Repeat("b", 2001) },
			wantField: "description",
		},
		{
			name:      "missing category",
			mutate:    func(in *SubmissionInput) { in.Category = "" },
			wantField: "category",
		},
		{
			name:      "unknown category",
			mutate:    func(in *SubmissionInput) { in.Category = "Parking" },
			wantField: "category",
		},
		{
			name:      "missing location",
			mutate:    func(in *SubmissionInput) { in.Location = nil },
			wantField: "location",
		},
		{
			name: "too many images",
			mutate: func(in *SubmissionInput) {
				in.Images = make([]FileMeta, DefaultMaxImages+1)
				for i := range in.Images {
					in.Images[i] = FileMeta{Name: "p.jpg", Size: 1024, ContentType: "image/jpeg"}
				}
			},
			wantField: "images",
		},
		{
			name: "disallowed image type",
			mutate: func(in *SubmissionInput) {
				in.Images = []FileMeta{{Name: "doc.pdf", Size: 1024, ContentType: "application/pdf"}}
			},
			wantField: "images",
		},
		{
			name: "oversized image",
			mutate: func(in *SubmissionInput) {
				in.Images = []FileMeta{{Name: "big.png", Size: MaxImageBytes + 1, ContentType: "image/png"}}
			},
			wantField: "images",
		},
		{
			name: "disallowed video type",
			mutate: func(in *SubmissionInput) {
				in.Video = &FileMeta{Name: "clip.avi", Size: 1024, ContentType: "video/x-msvideo"}
			},
			wantField: "video",
		},
		{
			name: "oversized video",
			mutate: func(in *SubmissionInput) {
				in.Video = &FileMeta{Name: "clip.mp4", Size: MaxVideoBytes + 1, ContentType: "video/mp4"}
			},
			wantField: "video",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := ValidateSubmission(in, DefaultMaxImages)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantField, "error should be keyed by the violated field")
			assert.Len(t, errs, 1, "only the violated field should be reported")
		})
	}
}

func TestValidateSubmission_BoundaryLengths(t *testing.T) {
	in := validInput()
	in.Title = strings.Repeat("t", TitleMinLen)
	in.Description = strings.Repeat("d", DescriptionMinLen)
	assert.Nil(t, ValidateSubmission(in, DefaultMaxImages))

	in.Title = strings.Repeat("t", TitleMaxLen)
	in.Description = strings.Repeat("d", DescriptionMaxLen)
	assert.Nil(t, ValidateSubmission(in, DefaultMaxImages))
}

func TestValidateFiles_NoFiles(t *testing.T) {
	assert.Nil(t, ValidateFiles(nil, nil, DefaultMaxImages))
}

func TestValidateFiles_CustomImageCap(t *testing.T) {
	images := []FileMeta{
		{Name: "a.jpg", Size: 1024, ContentType: "image/jpeg"},
		{Name: "b.jpg", Size: 1024, ContentType: "image/jpeg"},
		{Name: "c.jpg", Size: 1024, ContentType: "image/jpeg"},
	}

	assert.Nil(t, ValidateFiles(images, nil, 3))

	errs := ValidateFiles(images, nil, 2)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "images")
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{"title": "too short"}
	assert.Equal(t, "title: too short", errs.Error())
}
