package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ocene/backend/internal/models"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) ListRatings(ctx context.Context) ([]models.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockStorage) GetRating(ctx context.Context, id int) (*models.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockStorage) SaveRating(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockStorage) DeleteRating(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStorage) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) GetComplaint(ctx context.Context, id int) (*models.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) SaveComplaint(ctx context.Context, complaint *models.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockStorage) DeleteComplaint(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStorage) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) Lookup(ctx context.Context, id int) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
