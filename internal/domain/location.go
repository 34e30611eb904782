package domain

import "time"

// Location is a physical farm site (e.g. "Home farm", "River lease").
// Fields group beds underneath it.
type Location struct {
	ID        int64
	Name      string
	Area      *float64 // hectares; nil when unknown
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
