package sighting

import (
	"context"
	"testing"
	"time"

	"github.com/catspotter/cat-tracker/domain/model"
	"github.com/catspotter/cat-tracker/domain/repository"
	"github.com/catspotter/cat-tracker/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockSightingRepo struct {
	mock.Mock
}

func (m *mockSightingRepo) Create(ctx context.Context, s *model.CatSighting) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSightingRepo) GetByID(ctx context.Context, id int64) (*model.CatSighting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatSighting), args.Error(1)
}

func (m *mockSightingRepo) List(ctx context.Context, filter repository.SightingFilter) ([]*model.CatSighting, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CatSighting), args.Error(1)
}

func (m *mockSightingRepo) RecentWithImages(ctx context.Context, limit int) ([]*model.CatSighting, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CatSighting), args.Error(1)
}

func (m *mockSightingRepo) Summarize(ctx context.Context, since time.Time) (*model.SightingSummary, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SightingSummary), args.Error(1)
}

func (m *mockSightingRepo) ListAll(ctx context.Context) ([]*model.CatSighting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CatSighting), args.Error(1)
}

func newUseCase(repo repository.SightingRepository) SightingUseCase {
	return NewSightingUseCase(repo, &logger.Logger{Log: zap.NewNop()})
}

func TestCreateDefaults(t *testing.T) {
	repo := new(mockSightingRepo)
	var captured *model.CatSighting
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*model.CatSighting)
		}).
		Return(nil)

	before := time.Now().UTC()
	_, err := newUseCase(repo).Create(context.Background(), CreateSightingInput{
		Lat:         40.7,
		Lng:         -73.9,
		Description: "gray cat on a fire escape",
	})
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, model.SourceMap, captured.Source)
	assert.False(t, captured.SpottedAt.Before(before))
	assert.False(t, captured.CatName.Valid)
	assert.False(t, captured.Address.Valid)
	assert.False(t, captured.ImageURL.Valid)
}

func TestCreateKeepsExplicitValues(t *testing.T) {
	repo := new(mockSightingRepo)
	var captured *model.CatSighting
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*model.CatSighting)
		}).
		Return(nil)

	spotted := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	_, err := newUseCase(repo).Create(context.Background(), CreateSightingInput{
		Lat:         40.7,
		Lng:         -73.9,
		Description: "calico near the bodega",
		CatName:     "Pickles",
		Address:     "123 Mott St",
		ImageURL:    "http://localhost:8000/uploads/p.png",
		Source:      model.SourceAddress,
		SpottedAt:   &spotted,
	})
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, model.SourceAddress, captured.Source)
	assert.Equal(t, spotted, captured.SpottedAt)
	assert.Equal(t, "Pickles", captured.CatName.String)
	assert.True(t, captured.CatName.Valid)
	assert.True(t, captured.ImageURL.Valid)
}

func TestRecentWithImagesUsesFixedLimit(t *testing.T) {
	repo := new(mockSightingRepo)
	repo.On("RecentWithImages", mock.Anything, recentWithImagesLimit).
		Return([]*model.CatSighting{}, nil)

	_, err := newUseCase(repo).RecentWithImages(context.Background())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
