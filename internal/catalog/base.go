// Package catalog holds the built-in plant catalog: a hand-curated set of
// common species plus a deterministic generator that expands it to a
// development-sized dataset. All temperatures are °C.
package catalog

import "github.com/verdantly/gardenmate/internal/domain/plant"

// Base is the curated core of the catalog. Every record is already in
// normalized form.
var Base = []plant.Record{
	{
		Name:           "Snake Plant",
		ScientificName: "Sansevieria trifasciata",
		Family:         "Asparagaceae",
		Description:    "A hardy indoor plant known for its air-purifying qualities and low maintenance requirements.",
		WaterNeeds:     plant.WaterLow,
		Sunlight:       plant.SunLowLight,
		CareLevel:      plant.CareLow,
		GrowthRate:     plant.GrowthSlow,
		Temperature:    plant.TemperatureRange{Min: 15.6, Max: 29.4},
		Humidity:       plant.HumidityLow,
		Lifecycle:      plant.LifecyclePerennial,
		BloomTime:      []string{"Spring"},
		HardinessZones: []int{9, 10, 11},
		ClimateZones:   []string{"tropical", "arid"},
		Features:       plant.Features{AirPurifying: true, DroughtTolerant: true},
		Tags:           []string{"indoor", "lowMaintenance", "airPurifying", "succulent"},
		Rating:         4.5,
		Reviews:        127,
		IsActive:       true,
	},
	{
		Name:           "Peace Lily",
		ScientificName: "Spathiphyllum wallisii",
		Family:         "Araceae",
		Description:    "Beautiful flowering plant that helps purify indoor air with elegant white flowers.",
		WaterNeeds:     plant.WaterModerate,
		Sunlight:       plant.SunBrightIndirect,
		CareLevel:      plant.CareModerate,
		GrowthRate:     plant.GrowthModerate,
		Temperature:    plant.TemperatureRange{Min: 18.3, Max: 26.7},
		Humidity:       plant.HumidityHigh,
		Lifecycle:      plant.LifecyclePerennial,
		BloomTime:      []string{"Spring", "Summer"},
		HardinessZones: []int{10, 11},
		ClimateZones:   []string{"tropical"},
		Features:       plant.Features{Flowering: true, AirPurifying: true},
		Tags:           []string{"indoor", "flowering", "airPurifying"},
		Rating:         4.3,
		Reviews:        89,
		IsActive:       true,
	},
	{
		Name:           "Monstera Deliciosa",
		ScientificName: "Monstera deliciosa",
		Family:         "Araceae",
		Description:    "Popular tropical plant with distinctive split leaves, perfect for statement pieces.",
		WaterNeeds:     plant.WaterModerate,
		Sunlight:       plant.SunBrightIndirect,
		CareLevel:      plant.CareModerate,
		GrowthRate:     plant.GrowthFast,
		Temperature:    plant.TemperatureRange{Min: 18.3, Max: 29.4},
		Humidity:       plant.HumidityHigh,
		Lifecycle:      plant.LifecyclePerennial,
		BloomTime:      []string{"Summer"},
		HardinessZones: []int{10, 11},
		ClimateZones:   []string{"tropical"},
		Features:       plant.Features{Flowering: true, Fruiting: true, Edible: true, AirPurifying: true},
		Tags:           []string{"indoor", "tropical", "statement", "climbing"},
		Rating:         4.7,
		Reviews:        156,
		IsActive:       true,
	},
	{
		Name:           "Pothos",
		ScientificName: "Epipremnum aureum",
		Family:         "Araceae",
		Description:    "Versatile trailing plant perfect for hanging baskets or climbing up moss poles.",
		WaterNeeds:     plant.WaterLow,
		Sunlight:       plant.SunLowLight,
		CareLevel:      plant.CareLow,
		GrowthRate:     plant.GrowthFast,
		Temperature:    plant.TemperatureRange{Min: 15.6, Max: 29.4},
		Humidity:       plant.HumidityModerate,
		Lifecycle:      plant.LifecyclePerennial,
		BloomTime:      []string{"Rarely"},
		HardinessZones: []int{10, 11},
		ClimateZones:   []string{"tropical"},
		Features:       plant.Features{AirPurifying: true, DroughtTolerant: true},
		Tags:           []string{"indoor", "lowMaintenance", "trailing", "climbing"},
		Rating:         4.4,
		Reviews:        203,
		IsActive:       true,
	},
	{
		Name:           "Fiddle Leaf Fig",
		ScientificName: "Ficus lyrata",
		Family:         "Moraceae",
		Description:    "Trendy indoor tree with large, violin-shaped leaves making a stunning focal point.",
		WaterNeeds:     plant.WaterModerate,
		Sunlight:       plant.SunBrightIndirect,
		CareLevel:      plant.CareHigh,
		GrowthRate:     plant.GrowthModerate,
		Temperature:    plant.TemperatureRange{Min: 15.6, Max: 23.9},
		Humidity:       plant.HumidityHigh,
		Lifecycle:      plant.LifecyclePerennial,
		BloomTime:      []string{"Rarely"},
		HardinessZones: []int{9, 10, 11},
		ClimateZones:   []string{"tropical"},
		Features:       plant.Features{AirPurifying: true},
		Tags:           []string{"indoor", "statement", "tree"},
		Rating:         4.2,
		Reviews:        78,
		IsActive:       true,
	},
	{
		Name:           "Aloe Vera",
		ScientificName: "Aloe barbadensis",
		Family:         "Asphodelaceae",
		Description:    "Succulent plant known for its medicinal properties and easy care requirements.",
		WaterNeeds:     plant.WaterLow,
		Sunlight:       plant.SunFullSun,
		CareLevel:      plant.CareLow,
		GrowthRate:     plant.GrowthSlow,
		Temperature:    plant.TemperatureRange{Min: 12.8, Max: 26.7},
		Humidity:       plant.HumidityLow,
		Lifecycle:      plant.LifecyclePerennial,
		BloomTime:      []string{"Summer"},
		HardinessZones: []int{9, 10, 11},
		ClimateZones:   []string{"arid", "mediterranean"},
		Features:       plant.Features{Flowering: true, Edible: true, Medicinal: true, AirPurifying: true, DroughtTolerant: true},
		Tags:           []string{"indoor", "outdoor", "lowMaintenance", "medicinal", "succulent"},
		Rating:         4.6,
		Reviews:        145,
		IsActive:       true,
	},
	{
		Name:           "Lavender",
		ScientificName: "Lavandula angustifolia",
		Family:         "Lamiaceae",
		Description:    "Fragrant flowering plant perfect for gardens with calming properties.",
		WaterNeeds:     plant.WaterLow,
		Sunlight:       plant.SunFullSun,
		CareLevel:      plant.CareLow,
		GrowthRate:     plant.GrowthModerate,
		Temperature:    plant.TemperatureRange{Min: 15.6, Max: 23.9},
		Humidity:       plant.HumidityLow,
		Lifecycle:      plant.LifecyclePerennial,
		BloomTime:      []string{"Summer"},
		HardinessZones: []int{5, 6, 7, 8, 9},
		ClimateZones:   []string{"mediterranean", "temperate"},
		Features:       plant.Features{Flowering: true, Edible: true, Medicinal: true, PetFriendly: true, DroughtTolerant: true, FrostTolerant: true},
		Tags:           []string{"outdoor", "flowering", "herb", "fragrant"},
		Rating:         4.8,
		Reviews:        234,
		IsActive:       true,
	},
	{
		Name:           "Tomato Plant",
		ScientificName: "Solanum lycopersicum",
		Family:         "Solanaceae",
		Description:    "Popular vegetable plant that produces delicious fruits, great for home gardens.",
		WaterNeeds:     plant.WaterHigh,
		Sunlight:       plant.SunFullSun,
		CareLevel:      plant.CareModerate,
		GrowthRate:     plant.GrowthFast,
		Temperature:    plant.TemperatureRange{Min: 18.3, Max: 29.4},
		Humidity:       plant.HumidityModerate,
		Lifecycle:      plant.LifecycleAnnual,
		BloomTime:      []string{"Summer"},
		HardinessZones: []int{5, 6, 7, 8, 9},
		ClimateZones:   []string{"temperate", "mediterranean"},
		Features:       plant.Features{Flowering: true, Fruiting: true, Edible: true},
		Tags:           []string{"outdoor", "vegetable", "edible", "annual"},
		Rating:         4.5,
		Reviews:        189,
		IsActive:       true,
	},
	{
		Name:           "Rose Bush",
		ScientificName: "Rosa",
		Family:         "Rosaceae",
		Description:    "Classic flowering shrub known for beautiful blooms and fragrance.",
		WaterNeeds:     plant.WaterModerate,
		Sunlight:       plant.SunFullSun,
		CareLevel:      plant.CareModerate,
		GrowthRate:     plant.GrowthModerate,
		Temperature:    plant.TemperatureRange{Min: 15.6, Max: 23.9},
		Humidity:       plant.HumidityModerate,
		Lifecycle:      plant.LifecyclePerennial,
		BloomTime:      []string{"Spring", "Summer", "Fall"},
		HardinessZones: []int{3, 4, 5, 6, 7, 8, 9},
		ClimateZones:   []string{"temperate"},
		Features:       plant.Features{Flowering: true, Edible: true, PetFriendly: true, FrostTolerant: true},
		Tags:           []string{"outdoor", "flowering", "fragrant", "shrub"},
		Rating:         4.4,
		Reviews:        167,
		IsActive:       true,
	},
	{
		Name:           "Cactus",
		ScientificName: "Cactaceae",
		Family:         "Cactaceae",
		Description:    "Drought-tolerant succulent plants perfect for low-maintenance gardens.",
		WaterNeeds:     plant.WaterLow,
		Sunlight:       plant.SunFullSun,
		CareLevel:      plant.CareLow,
		GrowthRate:     plant.GrowthSlow,
		Temperature:    plant.TemperatureRange{Min: 20, Max: 35},
		Humidity:       plant.HumidityLow,
		Lifecycle:      plant.LifecyclePerennial,
		BloomTime:      []string{"Spring", "Summer"},
		HardinessZones: []int{9, 10, 11},
		ClimateZones:   []string{"arid"},
		Features:       plant.Features{Flowering: true, Fruiting: true, AirPurifying: true, DroughtTolerant: true},
		Tags:           []string{"indoor", "outdoor", "lowMaintenance", "succulent"},
		Rating:         4.3,
		Reviews:        98,
		IsActive:       true,
	},
}
