package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/catspotter/cat-tracker/domain/model"
	"github.com/catspotter/cat-tracker/domain/repository"
	"github.com/catspotter/cat-tracker/infrastructure/logger"
	"go.uber.org/zap"
)

// summaryWindowDays is how far back the per-day buckets reach.
const summaryWindowDays = 7

var csvHeader = []string{
	"id", "lat", "lng", "description", "cat_name", "address",
	"image_url", "source", "spotted_at", "created_at", "updated_at",
}

type ReportUseCase interface {
	Summary(ctx context.Context) (*model.SightingSummary, error)
	ExportCSV(ctx context.Context, w io.Writer) (int, error)
}

type reportUseCase struct {
	sightingRepo repository.SightingRepository
	logger       *logger.Logger
}

func NewReportUseCase(sightingRepo repository.SightingRepository, logger *logger.Logger) ReportUseCase {
	return &reportUseCase{
		sightingRepo: sightingRepo,
		logger:       logger,
	}
}

// Summary aggregates sighting counts, with one bucket per UTC calendar
// day over the trailing week. Days without sightings appear with a zero
// count so the chart on the client side stays contiguous.
func (uc *reportUseCase) Summary(ctx context.Context) (*model.SightingSummary, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(summaryWindowDays - 1))

	summary, err := uc.sightingRepo.Summarize(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize sightings: %w", err)
	}

	counts := make(map[string]int64, len(summary.ByDay))
	for _, day := range summary.ByDay {
		counts[day.Date] = day.Count
	}

	days := make([]model.DayCount, 0, summaryWindowDays)
	for d := since; !d.After(today); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		days = append(days, model.DayCount{Date: date, Count: counts[date]})
	}
	summary.ByDay = days

	return summary, nil
}

// ExportCSV streams every sighting as one CSV row after a header row and
// returns the number of data rows written.
func (uc *reportUseCase) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	sightings, err := uc.sightingRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load sightings for export: %w", err)
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, sighting := range sightings {
		record := []string{
			strconv.FormatInt(sighting.ID, 10),
			strconv.FormatFloat(sighting.Lat, 'f', -1, 64),
			strconv.FormatFloat(sighting.Lng, 'f', -1, 64),
			sighting.Description,
			sighting.CatName.String,
			sighting.Address.String,
			sighting.ImageURL.String,
			sighting.Source,
			sighting.SpottedAt.UTC().Format(time.RFC3339),
			sighting.CreatedAt.UTC().Format(time.RFC3339),
			sighting.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return i, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return len(sightings), fmt.Errorf("failed to flush CSV: %w", err)
	}

	uc.logger.Info("sightings exported", zap.Int("rows", len(sightings)))

	return len(sightings), nil
}
