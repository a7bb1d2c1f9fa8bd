// Package pricing turns a validated project specification into a cost
// estimate using a fixed multiplier table. The computation is deterministic
// and never fails for a valid specification.
package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/ghanabuild/estimator-backend/internal/estimation/domain"
)

// validityWindow is how long an estimate remains quotable.
const validityWindow = 30 * 24 * time.Hour

// Estimate prices a validated specification. Each category share is rounded
// independently and the total is the sum of the rounded shares, so rounding
// drift is preserved in the total rather than corrected.
func Estimate(spec domain.ProjectSpecification) domain.CostEstimate {
	base := float64(spec.TotalFloorArea) * BaseCostPerSqFt *
		RegionMultiplier(spec.Region) *
		TypeMultiplier(spec.ProjectType) *
		QualityMultiplier(spec.PreferredFinishQuality)

	breakdown := make(map[string]int, len(categoryAllocations)+1)
	for _, a := range categoryAllocations {
		breakdown[a.Category] = int(math.Round(base * a.Fraction))
	}
	if spec.IncludeExternalWorks {
		breakdown["externalWorks"] = int(math.Round(base * externalWorksFraction))
	}

	total := 0
	for _, v := range breakdown {
		total += v
	}

	now := time.Now().UTC()
	return domain.CostEstimate{
		TotalCost: total,
		Breakdown: breakdown,
		Details: fmt.Sprintf(
			"Estimate based on current market rates in %s region for %s quality %s construction.",
			spec.Region, spec.PreferredFinishQuality, spec.ProjectType),
		Currency:    "USD",
		EstimatedAt: now,
		ValidUntil:  now.Add(validityWindow),
	}
}
