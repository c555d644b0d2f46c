package recommend

import "sort"

// Fixed blend constants: trust the content signal slightly more than the
// collaborative one.
const (
	contentWeight       = 0.6
	collaborativeWeight = 0.4
)

// Combine merges a content-based and a collaborative ranking into one list.
// Each plant's final score is 0.6 times its content score plus 0.4 times its
// collaborative score; a plant present in only one list keeps its single
// weighted contribution unpenalized. The result is sorted descending by final
// score, stable on ties (first-seen order is preserved).
func Combine(content, collaborative []Candidate) []Candidate {
	type slot struct {
		candidate Candidate
		score     float64
	}
	index := make(map[string]int, len(content)+len(collaborative))
	merged := make([]slot, 0, len(content)+len(collaborative))

	for _, c := range content {
		key := identityOf(c)
		if i, ok := index[key]; ok {
			merged[i].score += c.Score * contentWeight
			continue
		}
		index[key] = len(merged)
		merged = append(merged, slot{candidate: c, score: c.Score * contentWeight})
	}
	for _, c := range collaborative {
		key := identityOf(c)
		if i, ok := index[key]; ok {
			merged[i].score += c.Score * collaborativeWeight
			continue
		}
		index[key] = len(merged)
		merged = append(merged, slot{candidate: c, score: c.Score * collaborativeWeight})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].score > merged[j].score
	})

	out := make([]Candidate, len(merged))
	for i, s := range merged {
		s.candidate.Score = s.score
		out[i] = s.candidate
	}
	return out
}

func identityOf(c Candidate) string {
	if c.Plant.ScientificName != "" {
		return c.Plant.ScientificName
	}
	return c.Plant.Name
}
