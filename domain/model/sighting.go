package model

import (
	"database/sql"
	"time"
)

const (
	SourceMap     = "map"
	SourceAddress = "address"
)

// CatSighting is a single reported observation of a stray cat at a
// location and point in time. Rows are append-only: the API never
// updates or deletes a sighting once created.
type CatSighting struct {
	ID int64 `gorm:"primaryKey"`

	Lat float64 `gorm:"not null"`
	Lng float64 `gorm:"not null"`

	Description string         `gorm:"type:TEXT;not null"`
	CatName     sql.NullString `gorm:"type:VARCHAR(120);null"`
	Address     sql.NullString `gorm:"type:TEXT;null"`
	ImageURL    sql.NullString `gorm:"type:TEXT;null"`

	Source string `gorm:"type:VARCHAR(16);not null;default:map;check:cat_sightings_source_check,source IN ('map','address')"`

	SpottedAt time.Time `gorm:"type:TIMESTAMP with time zone;not null"`
	CreatedAt time.Time `gorm:"type:TIMESTAMP with time zone;not null;index"`
	UpdatedAt time.Time `gorm:"type:TIMESTAMP with time zone;not null"`
}

func (CatSighting) TableName() string {
	return "cat_sightings"
}

func (s CatSighting) HasImage() bool {
	return s.ImageURL.Valid && s.ImageURL.String != ""
}
