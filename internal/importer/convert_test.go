package importer

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BuildsPlan(t *testing.T) {
	plan, err := Convert(validSchema())
	require.NoError(t, err)

	require.Len(t, plan.Locations, 1)
	assert.Equal(t, "loc1", plan.Locations[0].Ref)
	assert.Equal(t, "Home Farm", plan.Locations[0].Location.Name)
	require.NotNil(t, plan.Locations[0].Location.Area)
	assert.Equal(t, 2.5, *plan.Locations[0].Location.Area)

	require.Len(t, plan.Fields, 1)
	assert.Equal(t, "loc1", plan.Fields[0].LocationRef)

	require.Len(t, plan.Beds, 1)
	assert.Equal(t, "f1", plan.Beds[0].FieldRef)

	require.Len(t, plan.Plantings, 1)
	p := plan.Plantings[0]
	assert.Equal(t, "b1", p.BedRef)
	assert.Equal(t, "Carrots", p.Planting.Crop)
	assert.Equal(t, "2026-03-05", p.Planting.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2026-05-20", p.Planting.EndDate.Format("2006-01-02"))
}

func TestConvert_AssignsClientRefs(t *testing.T) {
	s := validSchema()
	s.Plantings = append(s.Plantings, PlantingImport{
		BedRef: "b1", Crop: "Kale", StartDate: "2026-06-01", EndDate: "2026-08-01",
	})

	plan, err := Convert(s)
	require.NoError(t, err)
	require.Len(t, plan.Plantings, 2)

	ref1 := plan.Plantings[0].Planting.ClientRef
	ref2 := plan.Plantings[1].Planting.ClientRef
	assert.NotEqual(t, ref1, ref2)
	_, err = uuid.Parse(ref1)
	assert.NoError(t, err)
}

func TestConvert_SanitizesNonFiniteArea(t *testing.T) {
	s := validSchema()
	nan := math.NaN()
	s.Beds[0].Area = &nan

	plan, err := Convert(s)
	require.NoError(t, err)
	assert.Nil(t, plan.Beds[0].Bed.Area)
}

func TestConvert_BadDateIsAnError(t *testing.T) {
	s := validSchema()
	s.Plantings[0].EndDate = "garbage"

	_, err := Convert(s)
	assert.Error(t, err)
}
