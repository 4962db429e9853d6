package pinning

import (
	"context"
	"fmt"
	"log/slog"

	"degenlauncher/internal/domain"
	"degenlauncher/internal/port"
)

// FallbackUploader tries uploaders in order and returns the first success.
// Failures of all but the last uploader are logged and absorbed.
type FallbackUploader struct {
	uploaders []port.ImageUploader
	names     []domain.UploadSource
}

// NewFallbackUploader creates a FallbackUploader from an ordered list of uploaders and their names.
func NewFallbackUploader(uploaders []port.ImageUploader, names []domain.UploadSource) *FallbackUploader {
	return &FallbackUploader{
		uploaders: uploaders,
		names:     names,
	}
}

// Names returns the strategy names in the order they are tried.
func (f *FallbackUploader) Names() []domain.UploadSource {
	out := make([]domain.UploadSource, len(f.names))
	copy(out, f.names)
	return out
}

func (f *FallbackUploader) Upload(ctx context.Context, image domain.ImageCandidate) (*domain.ResolvedImage, error) {
	var lastErr error

	for i, u := range f.uploaders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		url, err := u.Upload(ctx, image)
		if err == nil {
			slog.Info("pinning.FallbackUploader: upload succeeded", "source", f.names[i], "image", image.Name)
			return &domain.ResolvedImage{URL: url, Source: f.names[i]}, nil
		}

		lastErr = err
		if i < len(f.uploaders)-1 {
			slog.Warn("pinning.FallbackUploader: upload failed, trying next strategy",
				"source", f.names[i], "next", f.names[i+1], "image", image.Name, "error", err)
		}
	}

	if lastErr == nil {
		return nil, fmt.Errorf("no upload strategies configured")
	}
	return nil, fmt.Errorf("all upload strategies failed: %w", lastErr)
}
