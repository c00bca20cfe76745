package report_test

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	reportUseCase "github.com/catspotter/cat-tracker/application/usecases/report"
	"github.com/catspotter/cat-tracker/domain/model"
	"github.com/catspotter/cat-tracker/domain/repository"
	"github.com/catspotter/cat-tracker/infrastructure/logger"
	"github.com/catspotter/cat-tracker/presentation/controllers/report"
	"github.com/catspotter/cat-tracker/presentation/routes"
	"github.com/gin-gonic/gin"
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

func setupRouter(repo repository.SightingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	uc := reportUseCase.NewReportUseCase(repo, &logger.Logger{Log: zap.NewNop()})
	controller := report.NewReportController(uc)

	router := gin.New()
	api := router.Group("/api")
	routes.ReportRoutes(api, controller)
	return router
}

func TestSummary(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")

	repo := new(mockSightingRepo)
	repo.On("Summarize", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(&model.SightingSummary{
			Total:      5,
			WithImages: 2,
			BySource:   map[string]int64{model.SourceMap: 4, model.SourceAddress: 1},
			ByDay:      []model.DayCount{{Date: today, Count: 3}},
		}, nil)
	router := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/summary", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.SightingSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.Total)
	assert.Equal(t, int64(2), resp.WithImages)
	assert.Equal(t, int64(4), resp.BySource[model.SourceMap])

	// one bucket per calendar day over the trailing week, zeros included
	require.Len(t, resp.ByDay, 7)
	assert.Equal(t, today, resp.ByDay[6].Date)
	assert.Equal(t, int64(3), resp.ByDay[6].Count)
	for _, day := range resp.ByDay[:6] {
		assert.Zero(t, day.Count)
	}
}

func TestExportCSV(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	repo := new(mockSightingRepo)
	repo.On("ListAll", mock.Anything).Return([]*model.CatSighting{
		{
			ID: 1, Lat: 40.7, Lng: -73.9, Description: "tabby, very loud",
			CatName:   sql.NullString{String: "Meatball", Valid: true},
			Source:    model.SourceMap,
			SpottedAt: now, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: 2, Lat: 40.8, Lng: -73.95, Description: `black cat "Void"`,
			ImageURL:  sql.NullString{String: "http://x/2.png", Valid: true},
			Source:    model.SourceAddress,
			SpottedAt: now, CreatedAt: now, UpdatedAt: now,
		},
	}, nil)
	router := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/export", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "cat_sightings.csv")

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)

	// header row plus exactly one row per sighting
	require.Len(t, records, 3)
	assert.Equal(t, []string{
		"id", "lat", "lng", "description", "cat_name", "address",
		"image_url", "source", "spotted_at", "created_at", "updated_at",
	}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "Meatball", records[1][4])
	assert.Equal(t, `black cat "Void"`, records[2][3])
	assert.Equal(t, "http://x/2.png", records[2][6])
}

func TestExportCSV_Empty(t *testing.T) {
	repo := new(mockSightingRepo)
	repo.On("ListAll", mock.Anything).Return([]*model.CatSighting{}, nil)
	router := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/export", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
