package inline_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"degenlauncher/internal/domain"
	"degenlauncher/internal/pinning/inline"
)

func TestEncoder_Upload(t *testing.T) {
	content := []byte("GIF89a-test")
	image := *domain.NewImageCandidateFromBytes("anim.gif", "image/gif", content)

	url, err := inline.NewEncoder().Upload(context.Background(), image)

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/gif;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/gif;base64,"))
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestEncoder_Upload_ReadError(t *testing.T) {
	image := domain.ImageCandidate{
		Name:      "logo.png",
		MediaType: "image/png",
		Size:      4,
		Open:      func() (io.ReadCloser, error) { return nil, errors.New("disk error") },
	}

	_, err := inline.NewEncoder().Upload(context.Background(), image)

	assert.ErrorIs(t, err, domain.ErrReadFailed)
}

func TestEncodeDataURL_Empty(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,", inline.EncodeDataURL("image/png", nil))
}

func TestEncoder_Upload_ContentOverLimit(t *testing.T) {
	image := domain.NewImageCandidateFromBytes("logo.png", "image/png", make([]byte, domain.MaxImageSize+512))
	image.Size = 512

	url, err := inline.NewEncoder().Upload(context.Background(), *image)

	assert.ErrorIs(t, err, domain.ErrImageTooLarge)
	assert.Empty(t, url)
}
