package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"degenlauncher/internal/domain"
	"degenlauncher/internal/service"
)

// MockImageService is a mock implementation of service.ImageService.
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Resolve(ctx context.Context, input service.ResolveInput) (*domain.ResolvedImage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedImage), args.Error(1)
}

func (m *MockImageService) Strategies() []domain.UploadSource {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.UploadSource)
}
