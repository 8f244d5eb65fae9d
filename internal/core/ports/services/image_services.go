package services

import (
	"context"
	"io"
)

// ImageSvc stores article, category and tag images.
type ImageSvc interface {
	// Upload stores the image and returns its public URL.
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)

	// Delete removes a stored image by the public id embedded in its URL.
	// It reports false when nothing was stored under that id.
	Delete(ctx context.Context, publicID string) (bool, error)
}
