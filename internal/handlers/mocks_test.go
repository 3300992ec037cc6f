package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"intranet/internal/service"
	"intranet/models"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Create(ctx context.Context, in service.CreateUserInput) (*models.User, error) {
	args := m.Called(ctx, in)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if u, ok := args.Get(0).([]models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Get(ctx context.Context, id uint64) (*models.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, id uint64, in service.UpdateUserInput) (*models.User, error) {
	args := m.Called(ctx, id, in)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProfileService struct {
	mock.Mock
}

func (m *mockProfileService) Create(ctx context.Context, in service.CreateProfileInput) (*models.Profile, error) {
	args := m.Called(ctx, in)
	if p, ok := args.Get(0).(*models.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileService) List(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).([]models.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileService) Get(ctx context.Context, id uint64) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*models.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileService) Update(ctx context.Context, id uint64, in service.UpdateProfileInput) (*models.Profile, error) {
	args := m.Called(ctx, id, in)
	if p, ok := args.Get(0).(*models.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileService) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) Create(ctx context.Context, in service.CreateEventInput) (*models.Event, error) {
	args := m.Called(ctx, in)
	if e, ok := args.Get(0).(*models.Event); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventService) List(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if e, ok := args.Get(0).([]models.Event); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventService) Get(ctx context.Context, id uint64) (*models.Event, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*models.Event); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventService) Update(ctx context.Context, id uint64, in service.UpdateEventInput) (*models.Event, error) {
	args := m.Called(ctx, id, in)
	if e, ok := args.Get(0).(*models.Event); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventService) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
