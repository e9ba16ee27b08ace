package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/steelform/internal/category"
)

func TestParseFilter(t *testing.T) {
	_, r := newRegistry()

	f, err := r.ParseFilter("Angle/Equal, Channel")
	require.NoError(t, err)
	assert.Equal(t, 4, f.Len())
	assert.Equal(t, []category.Pair{
		{Category: 0, Classifier: 0},
		{Category: 1, Classifier: 0},
		{Category: 1, Classifier: 1},
		{Category: 1, Classifier: 2},
	}, f.Pairs())

	tests := []struct {
		text string
		want bool
	}{
		{"L50x5", true},
		{"L63x40x5", false},
		{"[10", true},
		{"2[20a", true},
		{"I20a", false},
		{"???", false},
		{"L50x50x60", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Matches(r, tt.text), tt.text)
	}
}

func TestParseFilterErrors(t *testing.T) {
	_, r := newRegistry()

	_, err := r.ParseFilter("Girder")
	assert.ErrorContains(t, err, "unknown category")

	_, err = r.ParseFilter("Angle/Pipe")
	assert.ErrorContains(t, err, "no classifier")
}

func TestEmptyFilterMatchesNothing(t *testing.T) {
	_, r := newRegistry()

	f, err := r.ParseFilter(" , ")
	require.NoError(t, err)
	assert.Zero(t, f.Len())
	assert.False(t, f.Matches(r, "L50x5"))

	f = category.NewFilter(category.Pair{Category: 0, Classifier: 1})
	assert.True(t, f.Contains(category.Pair{Category: 0, Classifier: 1}))
	assert.True(t, f.Matches(r, "L63x40x5"))
}
