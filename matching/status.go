package matching

import "fmt"

// Match badge variants keyed off the score.
const (
	VariantHigh   = "high"
	VariantMedium = "medium"
	VariantLow    = "low"
)

// StatusLabel returns a human-readable availability label for a shelter's
// occupancy. Callers must have validated capacity > 0.
func StatusLabel(current, capacity int) string {
	available := capacity - current
	ratio := float64(current) / float64(capacity)

	switch {
	case ratio >= 1:
		return "Full"
	case ratio >= 0.85:
		return fmt.Sprintf("Almost full (%d left)", available)
	case ratio >= 0.6:
		return fmt.Sprintf("Limited (%d spots)", available)
	default:
		return fmt.Sprintf("Available (%d spots)", available)
	}
}

// Variant maps a match score onto a badge variant.
func Variant(score int) string {
	switch {
	case score >= 75:
		return VariantHigh
	case score >= 50:
		return VariantMedium
	default:
		return VariantLow
	}
}

// MatchLabel formats a score as a short badge label.
func MatchLabel(score int) string {
	return fmt.Sprintf("%d%% Match", score)
}
