package models

import (
	"fmt"
	"strings"
	"time"
)

// Upload describes a stored image.
type Upload struct {
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Resized     bool      `json:"resized"`
	CreatedAt   time.Time `json:"created_at"`
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Validate checks the upload against the limits of the image store.
func (u *Upload) Validate(maxSize int64) error {
	var validationErrors []string

	if u.Path == "" {
		validationErrors = append(validationErrors, "storage path is required")
	}
	if u.Size <= 0 {
		validationErrors = append(validationErrors, "file size must be positive")
	}
	if maxSize > 0 && u.Size > maxSize {
		validationErrors = append(validationErrors, fmt.Sprintf("file size %d exceeds %d bytes", u.Size, maxSize))
	}
	if !allowedImageTypes[u.ContentType] {
		validationErrors = append(validationErrors, fmt.Sprintf("content type '%s' is not an accepted image type", u.ContentType))
	}
	if u.Width <= 0 || u.Height <= 0 {
		validationErrors = append(validationErrors, "width and height must be positive values")
	}

	if len(validationErrors) > 0 {
		return &UploadValidationError{
			Errors: validationErrors,
		}
	}

	return nil
}

type UploadValidationError struct {
	Errors []string
}

func (e *UploadValidationError) Error() string {
	return fmt.Sprintf("upload validation failed: %s", strings.Join(e.Errors, "; "))
}

func IsUploadValidationError(err error) bool {
	_, ok := err.(*UploadValidationError)
	return ok
}
