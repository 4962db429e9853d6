package port

import (
	"context"

	"degenlauncher/internal/domain"
)

// ImageUploader turns an image into a URL usable as token metadata.
type ImageUploader interface {
	Upload(ctx context.Context, image domain.ImageCandidate) (string, error)
}
