package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
)

// ImageCandidate is an image selected for upload. It is passed by value and
// never mutated once built.
type ImageCandidate struct {
	Name      string
	MediaType string
	Size      int64
	// Open returns a fresh reader over the image content. Each upload
	// strategy opens the content independently.
	Open func() (io.ReadCloser, error)
}

// NewImageCandidateFromBytes builds a candidate backed by an in-memory buffer.
func NewImageCandidateFromBytes(name, mediaType string, data []byte) *ImageCandidate {
	return &ImageCandidate{
		Name:      name,
		MediaType: mediaType,
		Size:      int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// OpenLimited opens the content through a reader that fails with
// ErrImageTooLarge once more than MaxImageSize bytes have been read. Size is
// only a declaration; the content itself may be larger.
func (c ImageCandidate) OpenLimited() (io.ReadCloser, error) {
	if c.Open == nil {
		return nil, fmt.Errorf("%w: no content source", ErrReadFailed)
	}
	rc, err := c.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return &limitedReadCloser{r: io.LimitReader(rc, MaxImageSize+1), c: rc}, nil
}

type limitedReadCloser struct {
	r    io.Reader
	c    io.Closer
	read int64
}

func (l *limitedReadCloser) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > MaxImageSize {
		return n, ErrImageTooLarge
	}
	return n, err
}

func (l *limitedReadCloser) Close() error {
	return l.c.Close()
}

// ReadAll reads the full image content. Content over MaxImageSize fails with
// ErrImageTooLarge; any other failure is reported as ErrReadFailed.
func (c ImageCandidate) ReadAll() ([]byte, error) {
	rc, err := c.OpenLimited()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		if errors.Is(err, ErrImageTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return data, nil
}

// ResolvedImage is the outcome of a successful resolve: a URL usable as the
// imageUrl argument of a token-creation call.
type ResolvedImage struct {
	URL    string       `json:"url"`
	Source UploadSource `json:"source"`
}

// NormalizeMediaType lowercases a declared media type and strips parameters.
// Unparseable values are returned trimmed and lowercased.
func NormalizeMediaType(mediaType string) string {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		return parsed
	}
	return mediaType
}
