package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// LocalStorage writes uploads to a directory on disk. It is the fallback
// when no object-storage credentials are configured; the API serves the
// files itself under /uploads.
type LocalStorage struct {
	basePath  string
	serverURL string
}

func NewLocalStorage(basePath, serverURL string) (*LocalStorage, error) {
	storage := &LocalStorage{
		basePath:  basePath,
		serverURL: serverURL,
	}

	if err := os.MkdirAll(storage.basePath, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create uploads directory")
	}

	return storage, nil
}

func (s *LocalStorage) Save(_ context.Context, file *multipart.FileHeader) (string, error) {
	if !isValidImageType(file.Header.Get("Content-Type")) {
		return "", ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	filename := uuid.NewString() + ext
	filePath := filepath.Join(s.basePath, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to create destination file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", errors.Wrap(err, "failed to save file")
	}

	return fmt.Sprintf("%s/uploads/%s", s.serverURL, filename), nil
}

func (s *LocalStorage) FileExists(relativePath string) bool {
	fullPath := filepath.Join(s.basePath, relativePath)
	_, err := os.Stat(fullPath)
	return err == nil
}

func (s *LocalStorage) GetFilePath(relativePath string) string {
	return filepath.Join(s.basePath, relativePath)
}
