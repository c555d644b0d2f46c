package recommend

import (
	"math"

	"github.com/verdantly/gardenmate/internal/domain/plant"
)

// Scoring weights. Each group sums to 1.0 so a full match yields exactly 1.0.
const (
	careLevelWeight  = 0.3
	waterNeedsWeight = 0.2
	sunlightWeight   = 0.2
	featuresWeight   = 0.3

	temperatureWeight   = 0.5
	climateZoneWeight   = 0.3
	hardinessZoneWeight = 0.2
)

// ContentSimilarity scores how well a plant fits a preference profile, in
// [0,1]. Categorical fields contribute their full weight on exact match; the
// feature term contributes proportionally to how many preferred features the
// plant has. An empty preference list counts as fully matched rather than
// zeroing the term, so profiles that express no feature preference can still
// reach 1.0.
func ContentSimilarity(profile Profile, p plant.Record) float64 {
	var score float64
	if profile.CareLevel == p.CareLevel {
		score += careLevelWeight
	}
	if profile.WaterNeeds == p.WaterNeeds {
		score += waterNeedsWeight
	}
	if profile.Sunlight == p.Sunlight {
		score += sunlightWeight
	}
	if len(profile.PreferredFeatures) == 0 {
		return score + featuresWeight
	}
	matched := 0
	for _, feature := range profile.PreferredFeatures {
		if p.Features.Has(feature) {
			matched++
		}
	}
	return score + featuresWeight*float64(matched)/float64(len(profile.PreferredFeatures))
}

// ClimateScore scores how suitable a plant is for a climate, in [0,1]:
// temperature inside the plant's tolerated range is worth 0.5, a climate zone
// match 0.3 and a hardiness zone match 0.2.
func ClimateScore(p plant.Record, temperature float64, climateZone string, latitude float64) float64 {
	var score float64
	if p.Temperature.Contains(temperature) {
		score += temperatureWeight
	}
	if p.InClimateZone(climateZone) {
		score += climateZoneWeight
	}
	if p.InHardinessZone(HardinessZoneOf(latitude)) {
		score += hardinessZoneWeight
	}
	return score
}

// HardinessZoneOf buckets a latitude into a USDA-like hardiness ordinal.
// Higher latitudes map to colder (lower) zones. The values are internal
// ordinals for matching against PlantRecord.HardinessZones, not literal USDA
// zones.
func HardinessZoneOf(latitude float64) int {
	lat := math.Abs(latitude)
	switch {
	case lat > 60:
		return 1
	case lat > 50:
		return 3
	case lat > 40:
		return 5
	case lat > 30:
		return 7
	case lat > 20:
		return 9
	default:
		return 11
	}
}

// ExperienceToCareLevel maps a gardener's experience level to the care level
// they can handle. Unknown input falls back to Moderate, so the function is
// total over strings.
func ExperienceToCareLevel(experience string) plant.CareLevel {
	switch experience {
	case "beginner":
		return plant.CareLow
	case "intermediate":
		return plant.CareModerate
	case "advanced":
		return plant.CareHigh
	default:
		return plant.CareModerate
	}
}

// WeightedAverage is the arithmetic mean of the ratings. ok is false for an
// empty list, where the mean is undefined.
func WeightedAverage(ratings []Rating) (mean float64, ok bool) {
	if len(ratings) == 0 {
		return 0, false
	}
	var sum float64
	for _, r := range ratings {
		sum += r.Score
	}
	return sum / float64(len(ratings)), true
}
