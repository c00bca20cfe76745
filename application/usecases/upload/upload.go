package upload

import (
	"context"
	"mime/multipart"

	"github.com/catspotter/cat-tracker/infrastructure/logger"
	"github.com/catspotter/cat-tracker/infrastructure/storage"
	"go.uber.org/zap"
)

type UploadUseCase interface {
	UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}

type uploadUseCase struct {
	storage       storage.Storage
	maxUploadSize int64
	logger        *logger.Logger
}

func NewUploadUseCase(store storage.Storage, maxUploadSize int64, logger *logger.Logger) UploadUseCase {
	return &uploadUseCase{
		storage:       store,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// UploadImage gates the file on the configured size limit, then hands it
// to whichever storage backend the container wired, returning the stable
// public URL.
func (uc *uploadUseCase) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > uc.maxUploadSize {
		return "", storage.ErrFileTooLarge
	}

	url, err := uc.storage.Save(ctx, fileHeader)
	if err != nil {
		return "", err
	}

	uc.logger.Info("image uploaded",
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
		zap.String("url", url),
	)

	return url, nil
}
