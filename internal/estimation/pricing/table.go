package pricing

import "strings"

// BaseCostPerSqFt is the base construction cost per square foot in USD.
const BaseCostPerSqFt = 50

// defaultMultiplier applies whenever a lookup key is absent from the table.
const defaultMultiplier = 1.0

// Regional cost multipliers, keyed by lowercased region name.
var regionMultipliers = map[string]float64{
	"greater accra": 1.2,
	"ashanti":       1.0,
	"western":       0.9,
	"eastern":       0.85,
	"northern":      0.75,
}

var typeMultipliers = map[string]float64{
	"residential": 1.0,
	"commercial":  1.3,
	"industrial":  1.5,
}

var qualityMultipliers = map[string]float64{
	"basic":    0.8,
	"standard": 1.0,
	"premium":  1.3,
	"luxury":   1.8,
}

// categoryAllocations split the base cost into per-category fractions. The
// fractions sum to 96%, leaving 4% of the base cost unallocated.
var categoryAllocations = []struct {
	Category string
	Fraction float64
}{
	{"foundation", 0.12},
	{"structure", 0.36},
	{"roofing", 0.10},
	{"electrical", 0.08},
	{"plumbing", 0.10},
	{"finishes", 0.20},
}

// externalWorksFraction is additive on top of the base allocation when
// external works are requested.
const externalWorksFraction = 0.08

// RegionMultiplier matches the region case-insensitively against the table.
func RegionMultiplier(region string) float64 {
	if m, ok := regionMultipliers[strings.ToLower(region)]; ok {
		return m
	}
	return defaultMultiplier
}

func TypeMultiplier(projectType string) float64 {
	if m, ok := typeMultipliers[projectType]; ok {
		return m
	}
	return defaultMultiplier
}

func QualityMultiplier(quality string) float64 {
	if m, ok := qualityMultipliers[quality]; ok {
		return m
	}
	return defaultMultiplier
}
