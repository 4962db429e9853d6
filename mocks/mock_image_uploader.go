package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"degenlauncher/internal/domain"
)

// MockImageUploader is a mock implementation of port.ImageUploader.
type MockImageUploader struct {
	mock.Mock
}

func (m *MockImageUploader) Upload(ctx context.Context, image domain.ImageCandidate) (string, error) {
	args := m.Called(ctx, image)
	return args.String(0), args.Error(1)
}
