package sighting

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/catspotter/cat-tracker/domain/model"
	"github.com/catspotter/cat-tracker/domain/repository"
	"github.com/catspotter/cat-tracker/infrastructure/logger"
	"go.uber.org/zap"
)

// recentWithImagesLimit bounds the map-widget feed.
const recentWithImagesLimit = 10

// CreateSightingInput carries an already-validated create request into
// the use case. Optional fields are empty strings / nil pointers.
type CreateSightingInput struct {
	Lat         float64
	Lng         float64
	Description string
	CatName     string
	Address     string
	ImageURL    string
	Source      string
	SpottedAt   *time.Time
}

type SightingUseCase interface {
	Create(ctx context.Context, input CreateSightingInput) (*model.CatSighting, error)
	GetByID(ctx context.Context, id int64) (*model.CatSighting, error)
	List(ctx context.Context, filter repository.SightingFilter) ([]*model.CatSighting, error)
	RecentWithImages(ctx context.Context) ([]*model.CatSighting, error)
}

type sightingUseCase struct {
	sightingRepo repository.SightingRepository
	logger       *logger.Logger
}

func NewSightingUseCase(sightingRepo repository.SightingRepository, logger *logger.Logger) SightingUseCase {
	return &sightingUseCase{
		sightingRepo: sightingRepo,
		logger:       logger,
	}
}

func (uc *sightingUseCase) Create(ctx context.Context, input CreateSightingInput) (*model.CatSighting, error) {
	spottedAt := time.Now().UTC()
	if input.SpottedAt != nil {
		spottedAt = input.SpottedAt.UTC()
	}

	source := input.Source
	if source == "" {
		source = model.SourceMap
	}

	sighting := &model.CatSighting{
		Lat:         input.Lat,
		Lng:         input.Lng,
		Description: input.Description,
		CatName:     nullString(input.CatName),
		Address:     nullString(input.Address),
		ImageURL:    nullString(input.ImageURL),
		Source:      source,
		SpottedAt:   spottedAt,
	}

	if err := uc.sightingRepo.Create(ctx, sighting); err != nil {
		return nil, fmt.Errorf("failed to create sighting: %w", err)
	}

	uc.logger.Info("sighting created",
		zap.Int64("id", sighting.ID),
		zap.Float64("lat", sighting.Lat),
		zap.Float64("lng", sighting.Lng),
		zap.String("source", sighting.Source),
	)

	return sighting, nil
}

func (uc *sightingUseCase) GetByID(ctx context.Context, id int64) (*model.CatSighting, error) {
	return uc.sightingRepo.GetByID(ctx, id)
}

func (uc *sightingUseCase) List(ctx context.Context, filter repository.SightingFilter) ([]*model.CatSighting, error) {
	return uc.sightingRepo.List(ctx, filter)
}

func (uc *sightingUseCase) RecentWithImages(ctx context.Context) ([]*model.CatSighting, error) {
	return uc.sightingRepo.RecentWithImages(ctx, recentWithImagesLimit)
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
