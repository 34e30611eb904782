package domain

import "time"

// Field is a cultivated area within a location.
type Field struct {
	ID         int64
	LocationID int64
	Name       string
	Area       *float64 // hectares; nil when unknown
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
