package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/catspotter/cat-tracker/domain/model"
	"github.com/catspotter/cat-tracker/domain/repository"
	"gorm.io/gorm"
)

type sightingRepository struct {
	database *gorm.DB
}

func NewSightingRepository(database *gorm.DB) repository.SightingRepository {
	return &sightingRepository{
		database: database,
	}
}

func (r *sightingRepository) Create(ctx context.Context, sighting *model.CatSighting) error {
	if err := r.database.WithContext(ctx).Create(sighting).Error; err != nil {
		return fmt.Errorf("failed to insert sighting: %w", err)
	}
	return nil
}

func (r *sightingRepository) GetByID(ctx context.Context, id int64) (*model.CatSighting, error) {
	var sighting model.CatSighting

	err := r.database.WithContext(ctx).First(&sighting, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSightingNotFound
		}
		return nil, fmt.Errorf("failed to fetch sighting %d: %w", id, err)
	}

	return &sighting, nil
}

func (r *sightingRepository) List(ctx context.Context, filter repository.SightingFilter) ([]*model.CatSighting, error) {
	query := r.database.WithContext(ctx).Order("created_at DESC")

	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}
	if !filter.Since.IsZero() {
		query = query.Where("created_at >= ?", filter.Since)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var sightings []*model.CatSighting
	if err := query.Find(&sightings).Error; err != nil {
		return nil, fmt.Errorf("failed to list sightings: %w", err)
	}

	return sightings, nil
}

func (r *sightingRepository) RecentWithImages(ctx context.Context, limit int) ([]*model.CatSighting, error) {
	var sightings []*model.CatSighting

	err := r.database.WithContext(ctx).
		Where("image_url IS NOT NULL AND image_url <> ''").
		Order("created_at DESC").
		Limit(limit).
		Find(&sightings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent sightings with images: %w", err)
	}

	return sightings, nil
}

func (r *sightingRepository) ListAll(ctx context.Context) ([]*model.CatSighting, error) {
	var sightings []*model.CatSighting

	if err := r.database.WithContext(ctx).Order("id").Find(&sightings).Error; err != nil {
		return nil, fmt.Errorf("failed to list all sightings: %w", err)
	}

	return sightings, nil
}

func (r *sightingRepository) Summarize(ctx context.Context, since time.Time) (*model.SightingSummary, error) {
	db := r.database.WithContext(ctx)

	summary := &model.SightingSummary{
		BySource: make(map[string]int64),
	}

	if err := db.Model(&model.CatSighting{}).Count(&summary.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count sightings: %w", err)
	}

	err := db.Model(&model.CatSighting{}).
		Where("image_url IS NOT NULL AND image_url <> ''").
		Count(&summary.WithImages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count sightings with images: %w", err)
	}

	var sourceRows []struct {
		Source string
		Count  int64
	}
	err = db.Model(&model.CatSighting{}).
		Select("source, COUNT(*) AS count").
		Group("source").
		Scan(&sourceRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count sightings by source: %w", err)
	}
	for _, row := range sourceRows {
		summary.BySource[row.Source] = row.Count
	}

	var dayRows []struct {
		Date  string
		Count int64
	}
	err = db.Model(&model.CatSighting{}).
		Select("to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS date, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("date").
		Order("date").
		Scan(&dayRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count sightings by day: %w", err)
	}
	for _, row := range dayRows {
		summary.ByDay = append(summary.ByDay, model.DayCount{Date: row.Date, Count: row.Count})
	}

	return summary, nil
}
