package testutil

import (
	"time"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

// Location options
type LocationOption func(*domain.Location)

func WithLocationArea(a float64) LocationOption {
	return func(l *domain.Location) {
		l.Area = &a
	}
}

func WithLocationNotes(n string) LocationOption {
	return func(l *domain.Location) {
		l.Notes = n
	}
}

func NewTestLocation(name string, opts ...LocationOption) *domain.Location {
	l := &domain.Location{Name: name}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Field options
type FieldOption func(*domain.Field)

func WithFieldArea(a float64) FieldOption {
	return func(f *domain.Field) {
		f.Area = &a
	}
}

func NewTestField(locationID int64, name string, opts ...FieldOption) *domain.Field {
	f := &domain.Field{LocationID: locationID, Name: name}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Bed options
type BedOption func(*domain.Bed)

func WithBedArea(a float64) BedOption {
	return func(b *domain.Bed) {
		b.Area = &a
	}
}

func NewTestBed(fieldID int64, name string, opts ...BedOption) *domain.Bed {
	b := &domain.Bed{FieldID: fieldID, Name: name}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Planting options
type PlantingOption func(*domain.Planting)

func WithQuantity(q float64) PlantingOption {
	return func(p *domain.Planting) {
		p.Quantity = &q
	}
}

func WithPlantingNotes(n string) PlantingOption {
	return func(p *domain.Planting) {
		p.Notes = n
	}
}

func WithClientRef(ref string) PlantingOption {
	return func(p *domain.Planting) {
		p.ClientRef = ref
	}
}

// NewTestPlanting builds a planting with YYYY-MM-DD date strings; bad dates
// become zero times, matching how unparseable stored dates surface.
func NewTestPlanting(bedID int64, crop, start, end string, opts ...PlantingOption) *domain.Planting {
	p := &domain.Planting{
		BedID:     bedID,
		Crop:      crop,
		StartDate: mustDate(start),
		EndDate:   mustDate(end),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func mustDate(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}
