package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrilife/models"
)

func testShelters() []models.Shelter {
	return []models.Shelter{
		{
			ID: 1, Name: "Downtown Community Center", Address: "123 Main St, City Center",
			Capacity: 120, Current: 87,
			Services: []string{"meals", "beds", "showers", "medical"},
			Tags:     []string{"family-friendly", "pet-friendly", "accessible"},
		},
		{
			ID: 2, Name: "Riverside Nutrition Hub", Address: "456 River Rd, Riverside",
			Capacity: 80, Current: 34,
			Services: []string{"meals", "groceries", "counseling"},
			Tags:     []string{"nutrition-focused", "accessible"},
		},
		{
			ID: 3, Name: "Veterans Support Center", Address: "321 Honor Blvd, Midtown",
			Capacity: 50, Current: 22,
			Services: []string{"beds", "meals", "mental-health", "job-placement"},
			Tags:     []string{"veterans-only", "mental-health", "accessible"},
		},
	}
}

func TestRankEmptyQueryReturnsAllSorted(t *testing.T) {
	prefs := models.Preferences{NeedsMeals: true, NeedsShelter: true}

	matches, err := Rank(testShelters(), "", ServiceAll, prefs)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestRankQueryMatchesNameCaseInsensitive(t *testing.T) {
	matches, err := Rank(testShelters(), "RIVERSIDE", ServiceAll, models.Preferences{})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Shelter.ID)
}

func TestRankQueryMatchesAddress(t *testing.T) {
	matches, err := Rank(testShelters(), "honor blvd", ServiceAll, models.Preferences{})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].Shelter.ID)
}

func TestRankQueryNoMatches(t *testing.T) {
	matches, err := Rank(testShelters(), "nonexistent", ServiceAll, models.Preferences{})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRankServiceFilter(t *testing.T) {
	matches, err := Rank(testShelters(), "", "beds", models.Preferences{})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Contains(t, m.Shelter.Services, "beds")
	}
}

func TestRankServiceFilterAndQueryCombined(t *testing.T) {
	matches, err := Rank(testShelters(), "center", "beds", models.Preferences{})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.ElementsMatch(t, []int{1, 3}, []int{matches[0].Shelter.ID, matches[1].Shelter.ID})
}

func TestRankStableOrderOnTies(t *testing.T) {
	shelters := []models.Shelter{
		{ID: 1, Name: "A", Capacity: 100, Current: 60},
		{ID: 2, Name: "B", Capacity: 100, Current: 60},
		{ID: 3, Name: "C", Capacity: 100, Current: 60},
	}

	matches, err := Rank(shelters, "", ServiceAll, models.Preferences{})
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, 1, matches[0].Shelter.ID)
	assert.Equal(t, 2, matches[1].Shelter.ID)
	assert.Equal(t, 3, matches[2].Shelter.ID)
}

func TestRankPrefersBetterMatches(t *testing.T) {
	prefs := models.Preferences{NeedsEmployment: true, RequiresVeteran: true}

	matches, err := Rank(testShelters(), "", ServiceAll, prefs)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, 3, matches[0].Shelter.ID)
}

func TestRankPropagatesInvalidCapacity(t *testing.T) {
	shelters := testShelters()
	shelters[1].Capacity = 0

	_, err := Rank(shelters, "", ServiceAll, models.Preferences{})
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}
