package sighting

import (
	"time"

	"github.com/catspotter/cat-tracker/domain/model"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type CreateSightingRequest struct {
	Lat         *float64   `json:"lat" binding:"required,latitude"`
	Lng         *float64   `json:"lng" binding:"required,longitude"`
	Description string     `json:"description" binding:"required"`
	CatName     string     `json:"cat_name" binding:"omitempty,max=120"`
	Address     string     `json:"address"`
	ImageURL    string     `json:"image_url" binding:"omitempty,url"`
	Source      string     `json:"source" binding:"omitempty,oneof=map address"`
	SpottedAt   *time.Time `json:"spotted_at"`
}

type ListSightingsQuery struct {
	Limit  int       `form:"limit" binding:"omitempty,min=1,max=500"`
	Source string    `form:"source" binding:"omitempty,oneof=map address"`
	Since  time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
}

type SightingResponse struct {
	ID          int64     `json:"id"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Description string    `json:"description"`
	CatName     *string   `json:"cat_name"`
	Address     *string   `json:"address"`
	ImageURL    *string   `json:"image_url"`
	Source      string    `json:"source"`
	SpottedAt   time.Time `json:"spotted_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewSightingResponse(sighting *model.CatSighting) SightingResponse {
	return SightingResponse{
		ID:          sighting.ID,
		Lat:         sighting.Lat,
		Lng:         sighting.Lng,
		Description: sighting.Description,
		CatName:     nullableString(sighting.CatName.String, sighting.CatName.Valid),
		Address:     nullableString(sighting.Address.String, sighting.Address.Valid),
		ImageURL:    nullableString(sighting.ImageURL.String, sighting.ImageURL.Valid),
		Source:      sighting.Source,
		SpottedAt:   sighting.SpottedAt,
		CreatedAt:   sighting.CreatedAt,
		UpdatedAt:   sighting.UpdatedAt,
	}
}

func NewSightingListResponse(sightings []*model.CatSighting) []SightingResponse {
	response := make([]SightingResponse, len(sightings))
	for i, sighting := range sightings {
		response[i] = NewSightingResponse(sighting)
	}
	return response
}

func nullableString(value string, valid bool) *string {
	if !valid {
		return nil
	}
	return &value
}
