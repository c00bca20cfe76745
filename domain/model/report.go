package model

// SightingSummary holds the aggregate counts served by the reports endpoint.
type SightingSummary struct {
	Total      int64            `json:"total"`
	WithImages int64            `json:"with_images"`
	BySource   map[string]int64 `json:"by_source"`
	ByDay      []DayCount       `json:"by_day"`
}

// DayCount is the number of sightings created on one UTC calendar day.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
