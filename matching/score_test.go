package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrilife/models"
)

func testShelter() models.Shelter {
	return models.Shelter{
		ID:       1,
		Name:     "Downtown Community Center",
		Address:  "123 Main St, City Center",
		Capacity: 100,
		Current:  40,
		Services: []string{"meals", "beds"},
		Tags:     []string{"accessible"},
	}
}

func TestScoreExampleScenario(t *testing.T) {
	shelter := testShelter()
	prefs := models.Preferences{
		NeedsMeals:         true,
		NeedsShelter:       true,
		RequiresWheelchair: true,
	}

	// base 50 + 15 (meals) + 15 (beds) + 5 (wheelchair) + 10 (ratio 0.4 < 0.5)
	score, err := Score(&shelter, prefs)
	require.NoError(t, err)
	assert.Equal(t, 95, score)
}

func TestScoreOccupancyPenalty(t *testing.T) {
	shelter := testShelter()
	shelter.Current = 95 // ratio 0.95 > 0.9

	score, err := Score(&shelter, models.Preferences{})
	require.NoError(t, err)
	assert.Equal(t, 40, score)
}

func TestScoreBoundaryRatios(t *testing.T) {
	// Exactly at 0.5 and 0.9 gets neither bonus nor penalty.
	shelter := testShelter()

	shelter.Current = 50
	score, err := Score(&shelter, models.Preferences{})
	require.NoError(t, err)
	assert.Equal(t, 50, score)

	shelter.Current = 90
	score, err = Score(&shelter, models.Preferences{})
	require.NoError(t, err)
	assert.Equal(t, 50, score)

	shelter.Current = 49
	score, err = Score(&shelter, models.Preferences{})
	require.NoError(t, err)
	assert.Equal(t, 60, score)

	shelter.Current = 91
	score, err = Score(&shelter, models.Preferences{})
	require.NoError(t, err)
	assert.Equal(t, 40, score)
}

func TestScoreZeroCapacity(t *testing.T) {
	shelter := testShelter()
	shelter.Capacity = 0

	_, err := Score(&shelter, models.Preferences{})
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestScoreClampedToRange(t *testing.T) {
	shelter := models.Shelter{
		Capacity: 100,
		Current:  10,
		Services: []string{"meals", "beds", "medical", "counseling", "childcare", "job-placement"},
		Tags:     []string{"accessible", "pet-friendly", "family-friendly", "veterans-only"},
	}
	prefs := models.Preferences{
		NeedsMeals: true, NeedsShelter: true, NeedsMedical: true,
		NeedsCounseling: true, NeedsChildcare: true, NeedsEmployment: true,
		RequiresWheelchair: true, RequiresPetFriendly: true,
		RequiresFamily: true, RequiresVeteran: true,
	}

	// Raw total would be 145; must clamp to 100.
	score, err := Score(&shelter, prefs)
	require.NoError(t, err)
	assert.Equal(t, 100, score)

	// And never below 0 regardless of occupancy.
	shelter.Current = 100
	score, err = Score(&shelter, models.Preferences{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}

func TestScoreMonotonicInMatchedNeeds(t *testing.T) {
	shelter := testShelter()
	shelter.Services = []string{"meals", "beds", "medical"}

	prev := -1
	prefsSteps := []models.Preferences{
		{},
		{NeedsMeals: true},
		{NeedsMeals: true, NeedsShelter: true},
		{NeedsMeals: true, NeedsShelter: true, NeedsMedical: true},
	}
	for _, prefs := range prefsSteps {
		score, err := Score(&shelter, prefs)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestScoreIgnoresUnmatchedNeeds(t *testing.T) {
	shelter := testShelter()
	shelter.Services = []string{"showers"}
	shelter.Current = 60 // no occupancy adjustment

	score, err := Score(&shelter, models.Preferences{NeedsMeals: true, NeedsChildcare: true})
	require.NoError(t, err)
	assert.Equal(t, 50, score)
}
