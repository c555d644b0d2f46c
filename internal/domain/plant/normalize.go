package plant

import (
	"fmt"
	"math"
	"strings"
)

// Defaults applied by the normalizer when a source record leaves a field blank.
// Temperature is the canonical °C equivalent of the 65–85°F band most catalog
// sources assume for houseplants.
const (
	DefaultTempMinC = 18.0
	DefaultTempMaxC = 29.0
	DefaultRating   = 4.0
)

// TemperatureUnit identifies the unit a raw source reports temperatures in.
type TemperatureUnit string

const (
	UnitCelsius    TemperatureUnit = "C"
	UnitFahrenheit TemperatureUnit = "F"
)

// RawRecord is a loosely shaped plant row as returned by external catalogs
// (Trefle, Perenual, scraped datasets). Free-text fields are categorized and
// missing fields defaulted by Normalize, so downstream code never sees holes.
type RawRecord struct {
	Name            string
	ScientificName  string
	Family          string
	Genus           string
	Species         string
	Description     string
	Image           string
	Watering        string // free text, e.g. "Average", "Minimum", "frequent, keep moist"
	Sunlight        string // free text, e.g. "full sun", "part shade"
	GrowthRate      string
	Cycle           string // "Perennial", "Annual", "Biennial"
	Humidity        string
	TemperatureMin  *float64
	TemperatureMax  *float64
	TemperatureUnit TemperatureUnit
	BloomTime       []string
	HardinessZones  []int
	ClimateZones    []string
	Indoor          bool
	Outdoor         bool
	Flowering       bool
	Fruiting        bool
	Edible          bool
	Medicinal       bool
	AirPurifying    bool
	PetFriendly     bool
	DroughtTolerant bool
	FrostTolerant   bool
	Tags            []string
	Rating          *float64
	Reviews         *int
}

// CategorizeWaterNeeds maps free-text watering descriptions onto the WaterNeeds
// enum. Rules are checked in order, first match wins; anything unmatched is
// Moderate.
func CategorizeWaterNeeds(text string) WaterNeeds {
	water := strings.ToLower(text)
	switch {
	case water == "":
		return WaterModerate
	case strings.Contains(water, "low") || strings.Contains(water, "drought"):
		return WaterLow
	case strings.Contains(water, "high") || strings.Contains(water, "moist"):
		return WaterHigh
	default:
		return WaterModerate
	}
}

// CategorizeSunlight maps free-text light descriptions onto the Sunlight enum.
// First match wins; anything unmatched is Bright indirect.
func CategorizeSunlight(text string) Sunlight {
	sun := strings.ToLower(text)
	switch {
	case sun == "":
		return SunBrightIndirect
	case strings.Contains(sun, "full") || strings.Contains(sun, "direct"):
		return SunFullSun
	case strings.Contains(sun, "partial") || strings.Contains(sun, "indirect"):
		return SunBrightIndirect
	case strings.Contains(sun, "shade") || strings.Contains(sun, "low"):
		return SunLowLight
	default:
		return SunBrightIndirect
	}
}

// CategorizeGrowthRate maps free-text growth descriptions onto the GrowthRate
// enum, defaulting to Moderate.
func CategorizeGrowthRate(text string) GrowthRate {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "slow":
		return GrowthSlow
	case "fast", "rapid", "high":
		return GrowthFast
	default:
		return GrowthModerate
	}
}

// CategorizeLifecycle maps a raw cycle string onto the Lifecycle enum,
// defaulting to Perennial.
func CategorizeLifecycle(text string) Lifecycle {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "annual":
		return LifecycleAnnual
	case "biennial":
		return LifecycleBiennial
	default:
		return LifecyclePerennial
	}
}

// CategorizeHumidity maps a raw humidity string onto the Humidity enum,
// defaulting to Moderate.
func CategorizeHumidity(text string) Humidity {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "low", "dry":
		return HumidityLow
	case "high", "humid":
		return HumidityHigh
	default:
		return HumidityModerate
	}
}

// CareLevelFor derives the care level from three categorized factors: water
// demand, light demand and growth speed. Each factor contributes 1 or 2 and the
// average is bucketed: <1.5 Low, <2.5 Moderate, else High.
func CareLevelFor(water WaterNeeds, sun Sunlight, growth GrowthRate) CareLevel {
	factors := [3]float64{2, 1, 1}
	if water == WaterLow {
		factors[0] = 1
	}
	if sun == SunFullSun {
		factors[1] = 2
	}
	if growth == GrowthFast {
		factors[2] = 2
	}
	avg := (factors[0] + factors[1] + factors[2]) / 3
	switch {
	case avg < 1.5:
		return CareLow
	case avg < 2.5:
		return CareModerate
	default:
		return CareHigh
	}
}

// FahrenheitToCelsius converts and rounds to one decimal place.
func FahrenheitToCelsius(f float64) float64 {
	return math.Round((f-32)/1.8*10) / 10
}

// FromRaw converts a heterogeneous source record into a schema-complete Record.
// Every enum is one of its declared values, the temperature range is in °C with
// Min <= Max, and numeric fields carry explicit defaults instead of zeroes that
// would skew scoring.
func FromRaw(raw RawRecord) Record {
	water := CategorizeWaterNeeds(raw.Watering)
	sun := CategorizeSunlight(raw.Sunlight)
	growth := CategorizeGrowthRate(raw.GrowthRate)
	care := CareLevelFor(water, sun, growth)

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = strings.TrimSpace(raw.ScientificName)
	}
	description := strings.TrimSpace(raw.Description)
	if description == "" && raw.Family != "" {
		description = fmt.Sprintf("A %s plant from the %s family.", strings.ToLower(name), raw.Family)
	}

	rec := Record{
		Name:           name,
		ScientificName: strings.TrimSpace(raw.ScientificName),
		Family:         strings.TrimSpace(raw.Family),
		Genus:          strings.TrimSpace(raw.Genus),
		Species:        strings.TrimSpace(raw.Species),
		Description:    description,
		Image:          strings.TrimSpace(raw.Image),
		WaterNeeds:     water,
		Sunlight:       sun,
		CareLevel:      care,
		GrowthRate:     growth,
		Temperature:    temperatureFromRaw(raw),
		Humidity:       CategorizeHumidity(raw.Humidity),
		Lifecycle:      CategorizeLifecycle(raw.Cycle),
		BloomTime:      cleanList(raw.BloomTime),
		HardinessZones: append([]int(nil), raw.HardinessZones...),
		ClimateZones:   cleanList(raw.ClimateZones),
		Features: Features{
			Flowering:       raw.Flowering,
			Fruiting:        raw.Fruiting,
			Edible:          raw.Edible,
			Medicinal:       raw.Medicinal,
			AirPurifying:    raw.AirPurifying,
			PetFriendly:     raw.PetFriendly,
			DroughtTolerant: raw.DroughtTolerant,
			FrostTolerant:   raw.FrostTolerant,
		},
		Tags:     GenerateTags(raw, care),
		Rating:   DefaultRating,
		Reviews:  0,
		IsActive: true,
	}
	if raw.Rating != nil {
		rec.Rating = clampRating(*raw.Rating)
	}
	if raw.Reviews != nil && *raw.Reviews > 0 {
		rec.Reviews = *raw.Reviews
	}
	return Normalize(rec)
}

// Normalize fills defaults on an already-typed Record so every field holds a
// declared value. Applying Normalize to its own output changes nothing.
func Normalize(rec Record) Record {
	if !validWaterNeeds(rec.WaterNeeds) {
		rec.WaterNeeds = WaterModerate
	}
	if !validSunlight(rec.Sunlight) {
		rec.Sunlight = SunBrightIndirect
	}
	if !validGrowthRate(rec.GrowthRate) {
		rec.GrowthRate = GrowthModerate
	}
	if !validCareLevel(rec.CareLevel) {
		rec.CareLevel = CareLevelFor(rec.WaterNeeds, rec.Sunlight, rec.GrowthRate)
	}
	if !validHumidity(rec.Humidity) {
		rec.Humidity = HumidityModerate
	}
	if !validLifecycle(rec.Lifecycle) {
		rec.Lifecycle = LifecyclePerennial
	}
	if rec.Temperature.Min == 0 && rec.Temperature.Max == 0 {
		rec.Temperature = TemperatureRange{Min: DefaultTempMinC, Max: DefaultTempMaxC}
	}
	if rec.Temperature.Min > rec.Temperature.Max {
		rec.Temperature.Min, rec.Temperature.Max = rec.Temperature.Max, rec.Temperature.Min
	}
	rec.Rating = clampRating(rec.Rating)
	if rec.Reviews < 0 {
		rec.Reviews = 0
	}
	rec.Tags = cleanList(rec.Tags)
	rec.BloomTime = cleanList(rec.BloomTime)
	rec.ClimateZones = cleanList(rec.ClimateZones)
	return rec
}

// GenerateTags derives browse tags from the raw record: family, lifecycle,
// "{careLevel}Maintenance", indoor/outdoor placement and feature flags. Absent
// inputs are simply omitted; the result never contains empty strings.
func GenerateTags(raw RawRecord, care CareLevel) []string {
	tags := make([]string, 0, 8)
	if family := strings.TrimSpace(raw.Family); family != "" {
		tags = append(tags, strings.ToLower(family))
	}
	switch CategorizeLifecycle(raw.Cycle) {
	case LifecyclePerennial:
		if strings.EqualFold(strings.TrimSpace(raw.Cycle), "perennial") {
			tags = append(tags, "perennial")
		}
	case LifecycleAnnual:
		tags = append(tags, "annual")
	}
	tags = append(tags, strings.ToLower(string(care))+"Maintenance")
	if raw.Indoor {
		tags = append(tags, "indoor")
	}
	if raw.Outdoor {
		tags = append(tags, "outdoor")
	}
	if raw.Flowering {
		tags = append(tags, "flowering")
	}
	if raw.Fruiting {
		tags = append(tags, "fruiting")
	}
	if raw.Edible {
		tags = append(tags, "edible")
	}
	return append(tags, cleanList(raw.Tags)...)
}

func temperatureFromRaw(raw RawRecord) TemperatureRange {
	if raw.TemperatureMin == nil || raw.TemperatureMax == nil {
		return TemperatureRange{Min: DefaultTempMinC, Max: DefaultTempMaxC}
	}
	min, max := *raw.TemperatureMin, *raw.TemperatureMax
	if raw.TemperatureUnit == UnitFahrenheit {
		min = FahrenheitToCelsius(min)
		max = FahrenheitToCelsius(max)
	}
	if min > max {
		min, max = max, min
	}
	return TemperatureRange{Min: min, Max: max}
}

func clampRating(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 5:
		return 5
	default:
		return r
	}
}

func cleanList(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		clean := strings.TrimSpace(item)
		if clean == "" {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func validWaterNeeds(w WaterNeeds) bool {
	return w == WaterLow || w == WaterModerate || w == WaterHigh
}

func validSunlight(s Sunlight) bool {
	return s == SunLowLight || s == SunBrightIndirect || s == SunFullSun || s == SunPartialShade
}

func validCareLevel(c CareLevel) bool {
	return c == CareLow || c == CareModerate || c == CareHigh
}

func validGrowthRate(g GrowthRate) bool {
	return g == GrowthSlow || g == GrowthModerate || g == GrowthFast
}

func validHumidity(h Humidity) bool {
	return h == HumidityLow || h == HumidityModerate || h == HumidityHigh
}

func validLifecycle(l Lifecycle) bool {
	return l == LifecycleAnnual || l == LifecyclePerennial || l == LifecycleBiennial
}
