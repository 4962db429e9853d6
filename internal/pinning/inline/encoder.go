package inline

import (
	"context"
	"encoding/base64"

	"degenlauncher/internal/domain"
)

// Encoder implements port.ImageUploader by embedding the image in a data URL.
// The result is self-contained but inflates gas cost when stored on-chain.
type Encoder struct{}

// NewEncoder creates an inline data-URL encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Upload(_ context.Context, image domain.ImageCandidate) (string, error) {
	data, err := image.ReadAll()
	if err != nil {
		return "", err
	}
	return EncodeDataURL(image.MediaType, data), nil
}

// EncodeDataURL builds a base64 data URL for data with the given media type.
func EncodeDataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
