package plant

import (
	"time"

	"github.com/google/uuid"
)

// WaterNeeds buckets how much watering a plant wants.
type WaterNeeds string

const (
	WaterLow      WaterNeeds = "Low"
	WaterModerate WaterNeeds = "Moderate"
	WaterHigh     WaterNeeds = "High"
)

// Sunlight buckets the light exposure a plant tolerates.
type Sunlight string

const (
	SunLowLight       Sunlight = "Low light"
	SunBrightIndirect Sunlight = "Bright indirect"
	SunFullSun        Sunlight = "Full sun"
	SunPartialShade   Sunlight = "Partial shade"
)

// CareLevel buckets the overall effort a plant demands.
type CareLevel string

const (
	CareLow      CareLevel = "Low"
	CareModerate CareLevel = "Moderate"
	CareHigh     CareLevel = "High"
)

// GrowthRate buckets how quickly a plant grows.
type GrowthRate string

const (
	GrowthSlow     GrowthRate = "Slow"
	GrowthModerate GrowthRate = "Moderate"
	GrowthFast     GrowthRate = "Fast"
)

// Humidity buckets ambient humidity preference.
type Humidity string

const (
	HumidityLow      Humidity = "Low"
	HumidityModerate Humidity = "Moderate"
	HumidityHigh     Humidity = "High"
)

// Lifecycle describes the plant's life span category.
type Lifecycle string

const (
	LifecycleAnnual    Lifecycle = "Annual"
	LifecyclePerennial Lifecycle = "Perennial"
	LifecycleBiennial  Lifecycle = "Biennial"
)

// TemperatureRange is the tolerated ambient temperature in °C.
// Min is always <= Max after normalization.
type TemperatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether temp falls inside the range, inclusive.
func (r TemperatureRange) Contains(temp float64) bool {
	return r.Min <= temp && temp <= r.Max
}

// Features is the set of boolean traits used for preference matching.
type Features struct {
	Flowering       bool `json:"flowering"`
	Fruiting        bool `json:"fruiting"`
	Edible          bool `json:"edible"`
	Medicinal       bool `json:"medicinal"`
	AirPurifying    bool `json:"airPurifying"`
	PetFriendly     bool `json:"petFriendly"`
	DroughtTolerant bool `json:"droughtTolerant"`
	FrostTolerant   bool `json:"frostTolerant"`
}

// Has reports whether the named feature flag is set. Unknown names are false.
func (f Features) Has(name string) bool {
	switch name {
	case "flowering":
		return f.Flowering
	case "fruiting":
		return f.Fruiting
	case "edible":
		return f.Edible
	case "medicinal":
		return f.Medicinal
	case "airPurifying":
		return f.AirPurifying
	case "petFriendly":
		return f.PetFriendly
	case "droughtTolerant":
		return f.DroughtTolerant
	case "frostTolerant":
		return f.FrostTolerant
	default:
		return false
	}
}

// Record is the normalized care profile for one species or cultivar.
// ScientificName is the unique identity across the catalog; every enum field
// holds one of its declared values once the record has passed the normalizer.
type Record struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	ScientificName string           `json:"scientificName"`
	Family         string           `json:"family,omitempty"`
	Genus          string           `json:"genus,omitempty"`
	Species        string           `json:"species,omitempty"`
	Description    string           `json:"description,omitempty"`
	Image          string           `json:"image,omitempty"`
	WaterNeeds     WaterNeeds       `json:"waterNeeds"`
	Sunlight       Sunlight         `json:"sunlight"`
	CareLevel      CareLevel        `json:"careLevel"`
	GrowthRate     GrowthRate       `json:"growthRate"`
	Temperature    TemperatureRange `json:"temperature"`
	Humidity       Humidity         `json:"humidity"`
	Lifecycle      Lifecycle        `json:"lifecycle"`
	BloomTime      []string         `json:"bloomTime,omitempty"`
	HardinessZones []int            `json:"hardinessZones,omitempty"`
	ClimateZones   []string         `json:"climateZones,omitempty"`
	Features       Features         `json:"features"`
	Tags           []string         `json:"tags,omitempty"`
	Rating         float64          `json:"rating"`
	Reviews        int              `json:"reviews"`
	IsActive       bool             `json:"isActive"`
	UpdatedAt      time.Time        `json:"updatedAt,omitempty"`
}

// BloomsIn reports whether the plant blooms during the given season.
func (r Record) BloomsIn(season string) bool {
	for _, s := range r.BloomTime {
		if s == season {
			return true
		}
	}
	return false
}

// InClimateZone reports whether zone appears in the plant's climate zones.
func (r Record) InClimateZone(zone string) bool {
	if zone == "" {
		return false
	}
	for _, z := range r.ClimateZones {
		if z == zone {
			return true
		}
	}
	return false
}

// InHardinessZone reports whether zone appears in the plant's hardiness zones.
func (r Record) InHardinessZone(zone int) bool {
	for _, z := range r.HardinessZones {
		if z == zone {
			return true
		}
	}
	return false
}
