package models

import "fmt"

// Upload limits for anonymous submissions and resolution proof
const (
	TitleMinLen       = 5
	TitleMaxLen       = 100
	DescriptionMinLen = 20
	DescriptionMaxLen = 2000
	MaxImageBytes     = 10 << 20 // 10 MiB
	MaxVideoBytes     = 50 << 20 // 50 MiB
	DefaultMaxImages  = 5
)

// allowed upload content types
var (
	AllowedImageTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	}
	AllowedVideoTypes = map[string]bool{
		"video/mp4":       true,
		"video/webm":      true,
		"video/quicktime": true,
	}
)

// ValidationErrors maps a field name to the reason it was rejected
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	for field, reason := range v {
		return fmt.Sprintf("%s: %s", field, reason)
	}
	return "validation failed"
}

// FileMeta describes an upload without holding its contents, so validation
// never touches the network or the filesystem.
type FileMeta struct {
	Name        string
	Size        int64
	ContentType string
}

// SubmissionInput is the validated shape of an anonymous issue report
type SubmissionInput struct {
	Title       string
	Description string
	Category    string
	Location    *Location
	Images      []FileMeta
	Video       *FileMeta
}

// ValidateSubmission checks every constraint on a new issue report and
// returns one error per violated field. A nil result means the submission
// may proceed to the store.
func ValidateSubmission(in SubmissionInput, maxImages int) ValidationErrors {
	errs := ValidationErrors{}

	if n := len([]rune(in.Title)); n < TitleMinLen {
		errs["title"] = fmt.Sprintf("title must be at least %d characters", TitleMinLen)
	} else if n > TitleMaxLen {
		errs["title"] = fmt.Sprintf("title must be at most %d characters", TitleMaxLen)
	}

	if n := len([]rune(in.Description)); n < DescriptionMinLen {
		errs["description"] = fmt.Sprintf("description must be at least %d characters", DescriptionMinLen)
	} else if n > DescriptionMaxLen {
		errs["description"] = fmt.Sprintf("description must be at most %d characters", DescriptionMaxLen)
	}

	if in.Category == "" {
		errs["category"] = "category is required"
	} else if !ValidCategories[IssueCategory(in.Category)] {
		errs["category"] = "invalid category"
	}

	if in.Location == nil {
		errs["location"] = "location is required"
	}

	for field, reason := range ValidateFiles(in.Images, in.Video, maxImages) {
		errs[field] = reason
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateFiles applies the count, content-type, and size constraints to a
// set of uploads. Shared between anonymous submissions and resolution proof.
func ValidateFiles(images []FileMeta, video *FileMeta, maxImages int) ValidationErrors {
	if maxImages <= 0 {
		maxImages = DefaultMaxImages
	}
	errs := ValidationErrors{}

	if len(images) > maxImages {
		errs["images"] = fmt.Sprintf("at most %d images per submission", maxImages)
	} else {
		for _, img := range images {
			if !AllowedImageTypes[img.ContentType] {
				errs["images"] = fmt.Sprintf("unsupported image type %q", img.ContentType)
				break
			}
			if img.Size > MaxImageBytes {
				errs["images"] = fmt.Sprintf("image %q exceeds 10 MiB", img.Name)
				break
			}
		}
	}

	if video != nil {
		if !AllowedVideoTypes[video.ContentType] {
			errs["video"] = fmt.Sprintf("unsupported video type %q", video.ContentType)
		} else if video.Size > MaxVideoBytes {
			errs["video"] = "video exceeds 50 MiB"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
