package catalog

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"

	"github.com/verdantly/gardenmate/internal/domain/plant"
)

// familySeed drives the generated part of the catalog.
type familySeed struct {
	name      string
	family    string
	careLevel plant.CareLevel
}

var familySeeds = []familySeed{
	{"Orchid", "Orchidaceae", plant.CareHigh},
	{"Fern", "Polypodiaceae", plant.CareModerate},
	{"Palm", "Arecaceae", plant.CareModerate},
	{"Bamboo", "Poaceae", plant.CareLow},
	{"Jasmine", "Oleaceae", plant.CareModerate},
	{"Mint", "Lamiaceae", plant.CareLow},
	{"Basil", "Lamiaceae", plant.CareLow},
	{"Thyme", "Lamiaceae", plant.CareLow},
	{"Sage", "Lamiaceae", plant.CareLow},
	{"Rosemary", "Lamiaceae", plant.CareLow},
	{"Lemon Tree", "Rutaceae", plant.CareModerate},
	{"Orange Tree", "Rutaceae", plant.CareModerate},
	{"Apple Tree", "Rosaceae", plant.CareModerate},
	{"Cherry Tree", "Rosaceae", plant.CareModerate},
	{"Maple Tree", "Sapindaceae", plant.CareLow},
	{"Oak Tree", "Fagaceae", plant.CareLow},
	{"Pine Tree", "Pinaceae", plant.CareLow},
	{"Tulip", "Liliaceae", plant.CareLow},
	{"Daffodil", "Amaryllidaceae", plant.CareLow},
	{"Daisy", "Asteraceae", plant.CareLow},
	{"Sunflower", "Asteraceae", plant.CareLow},
	{"Marigold", "Asteraceae", plant.CareLow},
	{"Zinnia", "Asteraceae", plant.CareLow},
	{"Petunia", "Solanaceae", plant.CareLow},
	{"Geranium", "Geraniaceae", plant.CareLow},
	{"Begonia", "Begoniaceae", plant.CareModerate},
	{"Impatiens", "Balsaminaceae", plant.CareLow},
	{"Coleus", "Lamiaceae", plant.CareLow},
	{"Caladium", "Araceae", plant.CareModerate},
	{"Philodendron", "Araceae", plant.CareModerate},
	{"Anthurium", "Araceae", plant.CareModerate},
	{"Dieffenbachia", "Araceae", plant.CareModerate},
	{"Aglaonema", "Araceae", plant.CareLow},
	{"Dracaena", "Asparagaceae", plant.CareLow},
	{"Yucca", "Asparagaceae", plant.CareLow},
	{"Asparagus Fern", "Asparagaceae", plant.CareLow},
	{"Spider Plant", "Asparagaceae", plant.CareLow},
	{"ZZ Plant", "Araceae", plant.CareLow},
	{"Chinese Evergreen", "Araceae", plant.CareLow},
	{"Parlor Palm", "Arecaceae", plant.CareLow},
	{"Areca Palm", "Arecaceae", plant.CareModerate},
	{"Lady Palm", "Arecaceae", plant.CareModerate},
	{"Bamboo Palm", "Arecaceae", plant.CareModerate},
	{"Ponytail Palm", "Asparagaceae", plant.CareLow},
	{"Sago Palm", "Cycadaceae", plant.CareModerate},
	{"Cyclamen", "Primulaceae", plant.CareModerate},
	{"African Violet", "Gesneriaceae", plant.CareModerate},
	{"Gloxinia", "Gesneriaceae", plant.CareModerate},
	{"Kalanchoe", "Crassulaceae", plant.CareLow},
	{"Jade Plant", "Crassulaceae", plant.CareLow},
	{"Echeveria", "Crassulaceae", plant.CareLow},
	{"Sedum", "Crassulaceae", plant.CareLow},
	{"Haworthia", "Asphodelaceae", plant.CareLow},
	{"Gasteria", "Asphodelaceae", plant.CareLow},
	{"Crassula", "Crassulaceae", plant.CareLow},
	{"Aeonium", "Crassulaceae", plant.CareLow},
	{"Hoya", "Apocynaceae", plant.CareModerate},
	{"Mandevilla", "Apocynaceae", plant.CareModerate},
	{"Plumeria", "Apocynaceae", plant.CareModerate},
	{"Vinca", "Apocynaceae", plant.CareLow},
	{"Asclepias", "Apocynaceae", plant.CareLow},
	{"Adenium", "Apocynaceae", plant.CareModerate},
}

const variantsPerFamily = 30

var climateZonePool = []string{"temperate", "tropical", "mediterranean", "arid"}

// Expanded returns the full development catalog: the curated base plus
// generated variants of each family. Output is a pure function of the seed
// tables, so repeated seeding produces identical records.
func Expanded() []plant.Record {
	out := make([]plant.Record, 0, len(Base)+len(familySeeds)*variantsPerFamily)
	out = append(out, Base...)
	for _, seed := range familySeeds {
		for i := 1; i <= variantsPerFamily; i++ {
			out = append(out, variant(seed, i))
		}
	}
	return out
}

func variant(seed familySeed, index int) plant.Record {
	name := fmt.Sprintf("%s %d", seed.name, index)
	scientificName := fmt.Sprintf("%s_%d",
		strings.ReplaceAll(strings.ToLower(seed.name), " ", "_"), index)
	rng := rand.New(rand.NewSource(seedFor(scientificName)))

	water := plant.WaterModerate
	switch seed.careLevel {
	case plant.CareLow:
		water = plant.WaterLow
	case plant.CareHigh:
		water = plant.WaterHigh
	}
	sunlight := plant.SunBrightIndirect
	if rng.Float64() > 0.5 {
		sunlight = plant.SunFullSun
	}
	humidity := plant.HumidityLow
	if rng.Float64() > 0.5 {
		humidity = plant.HumidityModerate
	}
	growth := plant.GrowthSlow
	if rng.Float64() > 0.5 {
		growth = plant.GrowthModerate
	}
	lifecycle := plant.LifecycleAnnual
	if rng.Float64() > 0.3 {
		lifecycle = plant.LifecyclePerennial
	}

	minTemp := float64(15 + rng.Intn(6))
	maxTemp := float64(24 + rng.Intn(8))

	baseZone := 3 + rng.Intn(7)
	tags := []string{"outdoor", strings.ToLower(string(seed.careLevel)) + "Maintenance"}
	if rng.Float64() > 0.5 {
		tags[0] = "indoor"
	}
	features := plant.Features{
		Flowering:       rng.Float64() > 0.3,
		Fruiting:        rng.Float64() > 0.7,
		Edible:          rng.Float64() > 0.8,
		Medicinal:       rng.Float64() > 0.6,
		AirPurifying:    rng.Float64() > 0.4,
		PetFriendly:     rng.Float64() > 0.5,
		DroughtTolerant: rng.Float64() > 0.6,
		FrostTolerant:   rng.Float64() > 0.7,
	}
	if features.Flowering {
		tags = append(tags, "flowering")
	}
	if features.AirPurifying {
		tags = append(tags, "airPurifying")
	}

	return plant.Record{
		Name:           name,
		ScientificName: scientificName,
		Family:         seed.family,
		Description: fmt.Sprintf("A beautiful %s plant, perfect for %s maintenance gardens.",
			strings.ToLower(seed.name), strings.ToLower(string(seed.careLevel))),
		WaterNeeds:     water,
		Sunlight:       sunlight,
		CareLevel:      seed.careLevel,
		GrowthRate:     growth,
		Temperature:    plant.TemperatureRange{Min: minTemp, Max: maxTemp},
		Humidity:       humidity,
		Lifecycle:      lifecycle,
		BloomTime:      []string{"Spring", "Summer"},
		HardinessZones: []int{baseZone, baseZone + 1, baseZone + 2},
		ClimateZones:   []string{climateZonePool[rng.Intn(len(climateZonePool))]},
		Features:       features,
		Tags:           tags,
		Rating:         math.Round((3.5+rng.Float64()*1.5)*10) / 10,
		Reviews:        rng.Intn(500),
		IsActive:       true,
	}
}

func seedFor(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(h.Sum64())
}
