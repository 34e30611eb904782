package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveID_Numeric(t *testing.T) {
	id, err := resolveID("bed", "42", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestResolveID_ExactNameCaseInsensitive(t *testing.T) {
	id, err := resolveID("field", "north field", []int64{1, 2}, []string{"North Field", "South Field"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestResolveID_UniquePrefix(t *testing.T) {
	id, err := resolveID("field", "sou", []int64{1, 2}, []string{"North Field", "South Field"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestResolveID_AmbiguousPrefix(t *testing.T) {
	_, err := resolveID("field", "f", []int64{1, 2}, []string{"Front", "Far"})
	assert.ErrorContains(t, err, "ambiguous")
}

func TestResolveID_NotFound(t *testing.T) {
	_, err := resolveID("location", "nowhere", []int64{1}, []string{"Home"})
	assert.ErrorContains(t, err, "not found")
}

func TestResolveID_Empty(t *testing.T) {
	_, err := resolveID("bed", "", nil, nil)
	assert.ErrorContains(t, err, "required")
}
