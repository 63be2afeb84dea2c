package idiom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testIdioms() []Idiom {
	return []Idiom{
		{
			ID: "break-the-ice", Text: "break the ice",
			Meaning:    "to ease initial tension in a social situation",
			Categories: []Category{CategoryRelationships},
			Difficulty: DifficultyBeginner, Frequency: FrequencyCommon,
		},
		{
			ID: "raining-cats-and-dogs", Text: "raining cats and dogs",
			Meaning:    "raining very heavily",
			Categories: []Category{CategoryWeather, CategoryAnimals},
			Difficulty: DifficultyBeginner, Frequency: FrequencyModerate,
		},
		{
			ID: "burn-the-midnight-oil", Text: "burn the midnight oil",
			Meaning:    "to work late into the night",
			Categories: []Category{CategoryTime, CategoryBusiness},
			Difficulty: DifficultyIntermediate, Frequency: FrequencyCommon,
		},
	}
}

func TestNewCatalogRejectsBadIDs(t *testing.T) {
	_, err := NewCatalog([]Idiom{{ID: "", Text: "nameless"}})
	require.ErrorContains(t, err, "empty id")

	_, err = NewCatalog([]Idiom{
		{ID: "dup", Text: "one"},
		{ID: "dup", Text: "two"},
	})
	require.ErrorContains(t, err, `duplicate idiom id "dup"`)
}

func TestCatalogGet(t *testing.T) {
	c, err := NewCatalog(testIdioms())
	require.NoError(t, err)

	i, err := c.Get("break-the-ice")
	require.NoError(t, err)
	require.Equal(t, "break the ice", i.Text)

	_, err = c.Get("no-such-idiom")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestCatalogFilter(t *testing.T) {
	c, err := NewCatalog(testIdioms())
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name: "all", filter: Filter{},
			want: []string{"break-the-ice", "raining-cats-and-dogs", "burn-the-midnight-oil"},
		},
		{
			name:   "by category",
			filter: Filter{Categories: []Category{CategoryAnimals}},
			want:   []string{"raining-cats-and-dogs"},
		},
		{
			name:   "category union",
			filter: Filter{Categories: []Category{CategoryWeather, CategoryTime}},
			want:   []string{"raining-cats-and-dogs", "burn-the-midnight-oil"},
		},
		{
			name:   "by difficulty",
			filter: Filter{Difficulties: []Difficulty{DifficultyIntermediate}},
			want:   []string{"burn-the-midnight-oil"},
		},
		{
			name:   "by frequency",
			filter: Filter{Frequencies: []Frequency{FrequencyModerate}},
			want:   []string{"raining-cats-and-dogs"},
		},
		{
			name:   "search matches meaning",
			filter: Filter{Search: "WORK LATE"},
			want:   []string{"burn-the-midnight-oil"},
		},
		{
			name:   "search matches text",
			filter: Filter{Search: "ice"},
			want:   []string{"break-the-ice"},
		},
		{
			name:   "conjunction of filters",
			filter: Filter{Categories: []Category{CategoryWeather}, Difficulties: []Difficulty{DifficultyAdvanced}},
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, i := range c.Filter(tt.filter) {
				got = append(got, i.ID)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogAllIsACopy(t *testing.T) {
	c, err := NewCatalog(testIdioms())
	require.NoError(t, err)

	all := c.All()
	all[0].Text = "mutated"

	fresh, err := c.Get(all[0].ID)
	require.NoError(t, err)
	require.Equal(t, "break the ice", fresh.Text)
}

func TestBuiltinCatalog(t *testing.T) {
	c := BuiltinCatalog()
	all := c.All()
	require.NotEmpty(t, all)
	for _, i := range all {
		require.NotEmpty(t, i.ID)
		require.NotEmpty(t, i.Text)
		require.NotEmpty(t, i.Meaning)
		require.NotEmpty(t, i.Categories, "idiom %s has no categories", i.ID)
	}
}
