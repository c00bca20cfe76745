package storage

import (
	"context"
	"mime/multipart"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/catspotter/cat-tracker/infrastructure/config"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// S3Storage uploads images to an S3-compatible bucket. Objects are
// written publicly readable so the returned URL is directly usable by
// the map UI.
type S3Storage struct {
	uploader *s3manager.Uploader
	bucket   string
}

func NewS3Storage(cfg *config.Config) (*S3Storage, error) {
	s3Cfg := cfg.Storage.S3

	awsCfg := &aws.Config{
		Region:      aws.String(s3Cfg.Region),
		Credentials: credentials.NewStaticCredentials(s3Cfg.AccessKeyID, s3Cfg.SecretAccessKey, ""),
	}
	if s3Cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(s3Cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(s3Cfg.ForcePathStyle)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create S3 session")
	}

	return &S3Storage{
		uploader: s3manager.NewUploader(sess),
		bucket:   s3Cfg.Bucket,
	}, nil
}

func (s *S3Storage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !isValidImageType(contentType) {
		return "", ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	key := uuid.NewString() + filepath.Ext(file.Filename)

	result, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload file to object storage")
	}

	return result.Location, nil
}
