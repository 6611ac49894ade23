package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gounamur/travel-backend/internal/media"
	"github.com/gounamur/travel-backend/internal/repository/ports"
)

type ImageUploaderConfig struct {
	Bucket       string
	MaxDimension int
}

// ImageUploader validates catalog images and stores them in object storage.
type ImageUploader struct {
	storage      ports.ObjectStorage
	processor    media.Processor
	bucket       string
	maxDimension int
	newName      func() string
}

func NewImageUploader(storage ports.ObjectStorage, processor media.Processor, cfg ImageUploaderConfig) *ImageUploader {
	maxDimension := cfg.MaxDimension
	if maxDimension <= 0 {
		maxDimension = media.DefaultMaxDimension
	}
	return &ImageUploader{
		storage:      storage,
		processor:    processor,
		bucket:       strings.TrimSpace(cfg.Bucket),
		maxDimension: maxDimension,
		newName:      uuid.NewString,
	}
}

// Store uploads the image under <kind>/<ownerID>/ and returns its public URL.
func (u *ImageUploader) Store(ctx context.Context, kind string, ownerID int64, upload media.Upload) (string, error) {
	if u == nil || u.storage == nil || u.processor == nil || u.bucket == "" {
		return "", ErrImageStorageUnavailable
	}

	result, err := u.processor.Process(ctx, upload, u.maxDimension)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	objectName := fmt.Sprintf("%s/%d/%s%s", kind, ownerID, u.newName(), result.Extension)
	return u.storage.Upload(ctx, u.bucket, objectName, result.ContentType, bytes.NewReader(result.Bytes), int64(len(result.Bytes)))
}
