package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/imagestore"
)

// imageService implements portssvc.ImageSvc on an image store.
type imageService struct {
	BaseService
	store *imagestore.Store
}

// NewImageService creates the image service.
func NewImageService(store *imagestore.Store) portssvc.ImageSvc {
	return &imageService{store: store}
}

// Upload stores the image. Rejected files surface as validation failures.
func (s *imageService) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	publicID, err := s.store.Save(filename, r)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return "", apperrors.NewAppError(http.StatusBadRequest, "image upload rejected: "+err.Error(), err)
		}
		s.LogError(ctx, err, "Failed to store image", slog.String("filename", filename))
		return "", fmt.Errorf("%w: image upload failed: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	s.LogInfo(ctx, "Image stored", slog.String("public_id", publicID))
	return s.store.URL(publicID), nil
}

// Delete removes an image by id or URL.
func (s *imageService) Delete(ctx context.Context, publicID string) (bool, error) {
	removed, err := s.store.Remove(publicID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return false, apperrors.NewAppError(http.StatusBadRequest, err.Error(), err)
		}
		s.LogError(ctx, err, "Failed to delete image", slog.String("public_id", publicID))
		return false, fmt.Errorf("failed to delete image: %w", err)
	}
	if removed {
		s.LogInfo(ctx, "Image deleted", slog.String("public_id", publicID))
	}
	return removed, nil
}
