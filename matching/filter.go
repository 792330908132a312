package matching

import (
	"sort"
	"strings"

	"nutrilife/models"
)

// ServiceAll disables the service filter.
const ServiceAll = "all"

// Match pairs a shelter with its computed score for one ranking pass.
type Match struct {
	Shelter models.Shelter `json:"shelter"`
	Score   int            `json:"score"`
}

// Rank filters shelters by a free-text query and a service tag, then sorts
// the survivors by descending match score.
//
// The query matches case-insensitively against name or address; an empty
// query matches everything. The service filter is exact set membership, or
// ServiceAll to skip it. Ties keep their input order (stable sort). The
// whole collection is recomputed on every call; at tens to low hundreds of
// shelters that is cheap enough.
func Rank(shelters []models.Shelter, query, service string, prefs models.Preferences) ([]Match, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	matches := make([]Match, 0, len(shelters))
	for i := range shelters {
		s := &shelters[i]
		if q != "" &&
			!strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Address), q) {
			continue
		}
		if service != "" && service != ServiceAll && !s.HasService(service) {
			continue
		}

		score, err := Score(s, prefs)
		if err != nil {
			return nil, err
		}
		matches = append(matches, Match{Shelter: *s, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}
