package domain

import (
	"encoding/json"
	"time"
)

// TagWeight is a single tag with the user's interest weight
type TagWeight struct {
	Tag    string  `json:"tag"`
	Weight float64 `json:"weight"`
}

// TagDetails describes one tag of a user's preference set
type TagDetails struct {
	Tag              string    `json:"tag"`
	Weight           float64   `json:"weight"`
	LastUpdated      time.Time `json:"last_updated"`
	DaysSinceUpdated int       `json:"days_since_updated"`
}

// PreferenceRecord is the persisted form of a user's preference set.
// Tags holds the raw JSON object tag -> weight record, decoded by the preference package.
type PreferenceRecord struct {
	UserID    string          `json:"user_id"`
	Tags      json.RawMessage `json:"tags"`
	UpdatedAt time.Time       `json:"updated_at"`
}
