package repository

import (
	"context"
	"errors"
	"time"

	"github.com/catspotter/cat-tracker/domain/model"
)

// ErrSightingNotFound is returned when a lookup by id matches no row.
var ErrSightingNotFound = errors.New("cat sighting not found")

// SightingFilter narrows List queries. Zero values mean "no constraint".
type SightingFilter struct {
	Limit  int
	Source string
	Since  time.Time
}

type SightingRepository interface {
	Create(ctx context.Context, sighting *model.CatSighting) error
	GetByID(ctx context.Context, id int64) (*model.CatSighting, error)
	List(ctx context.Context, filter SightingFilter) ([]*model.CatSighting, error)
	RecentWithImages(ctx context.Context, limit int) ([]*model.CatSighting, error)
	Summarize(ctx context.Context, since time.Time) (*model.SightingSummary, error)
	ListAll(ctx context.Context) ([]*model.CatSighting, error)
}
