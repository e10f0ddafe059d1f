package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.activities (
//     id            UUID PRIMARY KEY,
//     title         TEXT NOT NULL,
//     category      TEXT NOT NULL,
//     tags          JSONB,
//     duration_min  INT NOT NULL,
//     duration_max  INT NOT NULL,
//     energy_level  TEXT NOT NULL,
//     mood_tags     JSONB,
//     location      TEXT NOT NULL,
//     cost          TEXT NOT NULL,
//     social        TEXT NOT NULL,
//     steps         JSONB,
//     safety_notes  TEXT,
//     created_at    TIMESTAMPTZ DEFAULT NOW()
// );

const (
	EnergyLow    = "low"
	EnergyMedium = "medium"
	EnergyHigh   = "high"

	LocationHome    = "home"
	LocationOutdoor = "outdoor"
	LocationAny     = "any"

	CostFree   = "free"
	CostLow    = "low"
	CostMedium = "medium"

	SocialSolo    = "solo"
	SocialFriends = "friends"
	SocialBoth    = "both"
)

// Activity is a read-only catalog row. The catalog is maintained outside this
// service.
type Activity struct {
	ID          string                      `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string                      `gorm:"column:title;type:text;not null" json:"title"`
	Category    string                      `gorm:"column:category;type:text;not null" json:"category"`
	Tags        datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	DurationMin int                         `gorm:"column:duration_min;not null" json:"durationMin"`
	DurationMax int                         `gorm:"column:duration_max;not null" json:"durationMax"`
	EnergyLevel string                      `gorm:"column:energy_level;not null" json:"energyLevel"`
	MoodTags    datatypes.JSONSlice[string] `gorm:"column:mood_tags" json:"moodTags"`
	Location    string                      `gorm:"column:location;not null" json:"location"`
	Cost        string                      `gorm:"column:cost;not null" json:"cost"`
	Social      string                      `gorm:"column:social;not null" json:"social"`
	Steps       datatypes.JSONSlice[string] `gorm:"column:steps" json:"steps"`
	SafetyNotes *string                     `gorm:"column:safety_notes;type:text" json:"safetyNotes"`
	CreatedAt   time.Time                   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Activity) TableName() string {
	return "activities"
}

// DurationMid is the midpoint of the activity's duration range in minutes.
func (a Activity) DurationMid() float64 {
	return float64(a.DurationMin+a.DurationMax) / 2
}

// HasMood reports whether mood is one of the activity's mood tags.
func (a Activity) HasMood(mood string) bool {
	for _, m := range a.MoodTags {
		if m == mood {
			return true
		}
	}
	return false
}

// CandidateQuery is the coarse, inclusive catalog query for one request.
// A nil Locations slice means location is unrestricted.
type CandidateQuery struct {
	Duration   int
	Locations  []string
	Costs      []string
	ExcludeIDs []string
	Limit      int
}

// ActivityFilter is used by the public catalog browse endpoint. Zero values
// mean "no restriction".
type ActivityFilter struct {
	Duration int
	Energy   string
	Location string
	Cost     string
	Social   string
	Mood     string
	Page     int
	Limit    int
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes total pages for a page/limit window.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

type ActivityPage struct {
	Activities []Activity `json:"activities"`
	Pagination Pagination `json:"pagination"`
}
