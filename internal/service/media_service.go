package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"akramfit/coaching-app/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedImageType = errors.New("unsupported image content type")
	ErrUploadURLError       = errors.New("failed to generate upload URL")
)

// UploadURLResponse pairs the one-time upload URL with the object key the
// admin screen stores alongside the resulting image URL.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// --- Service Interface ---
type MediaService interface {
	// GenerateImageUploadURL hands the admin a presigned PUT URL for a
	// gallery or achievement image. The kind becomes the key prefix.
	GenerateImageUploadURL(ctx context.Context, kind, contentType string) (*UploadURLResponse, error)
	// DeleteImage removes a previously uploaded object.
	DeleteImage(ctx context.Context, objectKey string) error
}

// --- Service Implementation ---

type mediaService struct {
	fileStorage storage.FileStorage
}

// NewMediaService creates a new instance of mediaService.
func NewMediaService(fileStorage storage.FileStorage) MediaService {
	return &mediaService{fileStorage: fileStorage}
}

func (s *mediaService) GenerateImageUploadURL(ctx context.Context, kind, contentType string) (*UploadURLResponse, error) {
	if kind != "gallery" && kind != "achievements" {
		return nil, ErrValidationFailed
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedImageType
	}

	fileExtension := strings.TrimPrefix(contentType, "image/")
	objectKey := path.Join(kind, fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &UploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	}, nil
}

func (s *mediaService) DeleteImage(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return ErrValidationFailed
	}
	return s.fileStorage.DeleteObject(ctx, objectKey)
}
