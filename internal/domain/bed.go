package domain

import "time"

// Bed is an individual planting bed within a field. Plantings attach here.
type Bed struct {
	ID        int64 // negative ids mark drafts that are not persisted yet
	FieldID   int64
	Name      string
	Area      *float64 // square meters; nil when unknown
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDraft reports whether the bed only exists locally (not yet saved).
func (b *Bed) IsDraft() bool {
	return b.ID < 0
}
