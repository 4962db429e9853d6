package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the parent of every validation failure raised before an
// upload is attempted.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrNoImage              = fmt.Errorf("%w: no file provided", ErrInvalidInput)
	ErrUnsupportedImageType = fmt.Errorf("%w: invalid file type, please upload PNG, JPEG, GIF, or WebP", ErrInvalidInput)
	ErrImageTooLarge        = fmt.Errorf("%w: file too large, maximum size is 5 MiB", ErrInvalidInput)
	ErrReadFailed           = errors.New("failed to read image content")
)
