package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"degenlauncher/internal/domain"
	"degenlauncher/internal/pinning"
	"degenlauncher/internal/port"
)

// ResolveInput is the DTO for image resolve requests.
type ResolveInput struct {
	Image        *domain.ImageCandidate
	PreferRemote bool
}

// ImageService defines the image resolve contract.
type ImageService interface {
	Resolve(ctx context.Context, input ResolveInput) (*domain.ResolvedImage, error)
	Strategies() []domain.UploadSource
}

type imageService struct {
	remote *pinning.FallbackUploader
	local  *pinning.FallbackUploader
}

// NewImageService creates an ImageService. remote uploaders are tried in the
// given order; inline is always appended as the last resort.
func NewImageService(remote []port.ImageUploader, names []domain.UploadSource, inline port.ImageUploader) ImageService {
	uploaders := make([]port.ImageUploader, 0, len(remote)+1)
	uploaders = append(uploaders, remote...)
	uploaders = append(uploaders, inline)

	chainNames := make([]domain.UploadSource, 0, len(names)+1)
	chainNames = append(chainNames, names...)
	chainNames = append(chainNames, domain.SourceInline)

	return &imageService{
		remote: pinning.NewFallbackUploader(uploaders, chainNames),
		local:  pinning.NewFallbackUploader([]port.ImageUploader{inline}, []domain.UploadSource{domain.SourceInline}),
	}
}

func (s *imageService) Resolve(ctx context.Context, input ResolveInput) (*domain.ResolvedImage, error) {
	image, err := ValidateImage(input.Image)
	if err != nil {
		return nil, err
	}

	slog.Debug("imageService.Resolve: resolving image",
		"image", image.Name, "media_type", image.MediaType, "size", humanize.IBytes(uint64(image.Size)),
		"prefer_remote", input.PreferRemote)

	chain := s.local
	if input.PreferRemote {
		chain = s.remote
	}

	result, err := chain.Upload(ctx, image)
	if err != nil {
		slog.Error("imageService.Resolve: failed to resolve image", "image", image.Name, "error", err)
		return nil, err
	}

	if result.Source == domain.SourceInline {
		slog.Warn("imageService.Resolve: using inline data URL; storing it on-chain is expensive",
			"image", image.Name, "url_length", len(result.URL))
	}
	return result, nil
}

func (s *imageService) Strategies() []domain.UploadSource {
	return s.remote.Names()
}

// ValidateImage checks the declared media type and size of an image. It
// returns a copy with a normalized media type.
func ValidateImage(image *domain.ImageCandidate) (domain.ImageCandidate, error) {
	if image == nil || image.Open == nil {
		return domain.ImageCandidate{}, domain.ErrNoImage
	}

	out := *image
	out.MediaType = domain.NormalizeMediaType(image.MediaType)

	if _, ok := domain.AllowedImageTypes[out.MediaType]; !ok {
		return domain.ImageCandidate{}, fmt.Errorf("%w (got %q)", domain.ErrUnsupportedImageType, image.MediaType)
	}

	if out.Size < 0 {
		return domain.ImageCandidate{}, fmt.Errorf("%w: negative file size", domain.ErrInvalidInput)
	}
	if out.Size > domain.MaxImageSize {
		return domain.ImageCandidate{}, fmt.Errorf("%w (got %s)", domain.ErrImageTooLarge, humanize.IBytes(uint64(out.Size)))
	}

	return out, nil
}
