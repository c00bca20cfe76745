package storage

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds maximum allowed size")
	ErrInvalidFileType = errors.New("invalid file type, only images are allowed")
)

// Storage persists an uploaded image and returns the stable public URL
// it will be reachable at.
type Storage interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

func isValidImageType(contentType string) bool {
	validTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	return validTypes[contentType]
}
