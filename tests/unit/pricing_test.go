package unit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghanabuild/estimator-backend/internal/estimation/domain"
	"github.com/ghanabuild/estimator-backend/internal/estimation/pricing"
)

func baseSpec() domain.ProjectSpecification {
	return domain.ProjectSpecification{
		Region:                 "Greater Accra",
		ProjectType:            "residential",
		TotalFloorArea:         2500,
		NumberOfBathrooms:      3,
		NumberOfFloors:         2,
		PreferredFinishQuality: "standard",
	}
}

func TestEstimate_KnownBreakdown(t *testing.T) {
	// baseCost = 2500 * 50 * 1.2 * 1.0 * 1.0 = 150000
	est := pricing.Estimate(baseSpec())

	assert.Equal(t, map[string]int{
		"foundation": 18000,
		"structure":  54000,
		"roofing":    15000,
		"electrical": 12000,
		"plumbing":   15000,
		"finishes":   30000,
	}, est.Breakdown)
	assert.Equal(t, 144000, est.TotalCost)
	assert.Equal(t, "USD", est.Currency)
	assert.NotContains(t, est.Breakdown, "externalWorks")
}

func TestEstimate_ExternalWorksAdditive(t *testing.T) {
	spec := baseSpec()
	spec.IncludeExternalWorks = true

	est := pricing.Estimate(spec)
	assert.Equal(t, 12000, est.Breakdown["externalWorks"])
	assert.Equal(t, 156000, est.TotalCost)
}

func TestEstimate_TotalIsSumOfBreakdown(t *testing.T) {
	specs := []domain.ProjectSpecification{
		baseSpec(),
		{Region: "Northern", ProjectType: "industrial", TotalFloorArea: 777,
			NumberOfBathrooms: 1, NumberOfFloors: 1,
			PreferredFinishQuality: "luxury", IncludeExternalWorks: true},
		{Region: "Nowhere", ProjectType: "commercial", TotalFloorArea: 9999,
			NumberOfBathrooms: 10, NumberOfFloors: 5,
			PreferredFinishQuality: "basic"},
	}

	for _, spec := range specs {
		est := pricing.Estimate(spec)
		sum := 0
		for _, v := range est.Breakdown {
			sum += v
		}
		assert.Equal(t, sum, est.TotalCost)
	}
}

func TestEstimate_UnknownRegionFallback(t *testing.T) {
	known := baseSpec()
	known.Region = "Ashanti" // multiplier 1.0

	unknown := baseSpec()
	unknown.Region = "Atlantis" // absent from the table

	assert.Equal(t, pricing.Estimate(known).TotalCost, pricing.Estimate(unknown).TotalCost)
}

func TestEstimate_RegionCaseInsensitive(t *testing.T) {
	upper := baseSpec()
	upper.Region = "GREATER ACCRA"

	assert.Equal(t, pricing.Estimate(baseSpec()).TotalCost, pricing.Estimate(upper).TotalCost)
}

func TestEstimate_UnknownQualityFallback(t *testing.T) {
	spec := baseSpec()
	spec.PreferredFinishQuality = "ultra-deluxe"

	// unknown quality silently prices at multiplier 1.0
	assert.Equal(t, pricing.Estimate(baseSpec()).TotalCost, pricing.Estimate(spec).TotalCost)
}

func TestEstimate_Multipliers(t *testing.T) {
	assert.Equal(t, 1.2, pricing.RegionMultiplier("Greater Accra"))
	assert.Equal(t, 0.75, pricing.RegionMultiplier("northern"))
	assert.Equal(t, 1.0, pricing.RegionMultiplier("unknown"))
	assert.Equal(t, 1.5, pricing.TypeMultiplier("industrial"))
	assert.Equal(t, 1.0, pricing.TypeMultiplier(""))
	assert.Equal(t, 1.8, pricing.QualityMultiplier("luxury"))
	assert.Equal(t, 1.0, pricing.QualityMultiplier("ultra-deluxe"))
}

func TestEstimate_Metadata(t *testing.T) {
	est := pricing.Estimate(baseSpec())

	require.False(t, est.EstimatedAt.IsZero())
	assert.Equal(t, est.EstimatedAt.Add(30*24*time.Hour), est.ValidUntil)
	assert.Equal(t,
		"Estimate based on current market rates in Greater Accra region for standard quality residential construction.",
		est.Details)
}
