package domain

import "time"

// DateLayout is the storage and CLI format for calendar dates.
// Plantings carry dates only; times of day and timezones are out of scope,
// so all dates are parsed at midnight UTC as a neutral fixed location.
const DateLayout = "2006-01-02"

// Planting is a scheduled cultivation interval on a bed,
// typically sowing through harvest.
type Planting struct {
	ID        int64  // negative ids mark drafts that are not persisted yet
	ClientRef string // UUID assigned to drafts so the UI can track them before save
	BedID     int64
	Crop      string
	StartDate time.Time
	EndDate   time.Time
	Quantity  *float64 // optional numeric annotation (plants, rows, kg of seed)
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDraft reports whether the planting only exists locally (not yet saved).
func (p *Planting) IsDraft() bool {
	return p.ID < 0
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a calendar date in YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
