// Package matching holds the shelter match-scoring, filtering, and
// availability display logic. Everything in here is pure: no store access,
// no caching, recomputed on every call.
package matching

import (
	"errors"

	"nutrilife/models"
)

// ErrInvalidCapacity is returned when a shelter record carries a capacity
// of zero or less. Write paths are expected to reject such records, so
// hitting this means bad data got past ingestion.
var ErrInvalidCapacity = errors.New("invalid shelter data: capacity must be positive")

// Score computes a 0-100 compatibility score between a shelter and a
// user's preferences.
//
// Starts from a baseline of 50, adds a bonus for each need the shelter's
// services cover and each requirement its tags satisfy, then adjusts for
// occupancy: under half full earns +10, over 90% full costs 10. The result
// is clamped to [0, 100].
func Score(shelter *models.Shelter, prefs models.Preferences) (int, error) {
	if shelter.Capacity <= 0 {
		return 0, ErrInvalidCapacity
	}

	score := 50

	if prefs.NeedsMeals && shelter.HasService(models.ServiceMeals) {
		score += 15
	}
	if prefs.NeedsShelter && shelter.HasService(models.ServiceBeds) {
		score += 15
	}
	if prefs.NeedsMedical && shelter.HasService(models.ServiceMedical) {
		score += 10
	}
	if prefs.NeedsCounseling && shelter.HasService(models.ServiceCounseling) {
		score += 10
	}
	if prefs.NeedsChildcare && shelter.HasService(models.ServiceChildcare) {
		score += 10
	}
	if prefs.NeedsEmployment && shelter.HasService(models.ServiceJobPlacement) {
		score += 10
	}

	if prefs.RequiresWheelchair && shelter.HasTag(models.TagAccessible) {
		score += 5
	}
	if prefs.RequiresPetFriendly && shelter.HasTag(models.TagPetFriendly) {
		score += 5
	}
	if prefs.RequiresFamily && shelter.HasTag(models.TagFamilyFriendly) {
		score += 5
	}
	if prefs.RequiresVeteran && shelter.HasTag(models.TagVeteransOnly) {
		score += 10
	}

	// Strict inequalities: a shelter exactly half full or exactly at 90%
	// gets neither the bonus nor the penalty.
	occupancy := float64(shelter.Current) / float64(shelter.Capacity)
	if occupancy < 0.5 {
		score += 10
	} else if occupancy > 0.9 {
		score -= 10
	}

	return clamp(score, 0, 100), nil
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
