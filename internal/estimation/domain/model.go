package domain

import "time"

// RawInput is an untyped field→value mapping as received from a form or a
// JSON body. Values may be strings, numbers or booleans; no shape is assumed.
type RawInput map[string]any

// Project type values accepted by the pricing table.
const (
	TypeResidential = "residential"
	TypeCommercial  = "commercial"
	TypeIndustrial  = "industrial"
)

// Finish quality values accepted by the pricing table.
const (
	QualityBasic    = "basic"
	QualityStandard = "standard"
	QualityPremium  = "premium"
	QualityLuxury   = "luxury"
)

// ProjectSpecification is a validated, normalized project input. It is
// constructed only by the validator and never mutated afterwards.
type ProjectSpecification struct {
	Region                 string `json:"region"`
	ProjectType            string `json:"projectType"`
	TotalFloorArea         int    `json:"totalFloorArea"`
	NumberOfBathrooms      int    `json:"numberOfBathrooms"`
	NumberOfFloors         int    `json:"numberOfFloors"`
	PreferredFinishQuality string `json:"preferredFinishQuality"`
	IncludeExternalWorks   bool   `json:"includeExternalWorks"`
}

// CostEstimate is the itemized pricing result for one specification. TotalCost
// always equals the sum of the breakdown values.
type CostEstimate struct {
	TotalCost   int            `json:"totalCost"`
	Breakdown   map[string]int `json:"breakdown"`
	Details     string         `json:"details"`
	Currency    string         `json:"currency"`
	ValidUntil  time.Time      `json:"validUntil"`
	EstimatedAt time.Time      `json:"estimatedAt"`
}

// ValidationResult carries either a normalized specification or the ordered
// list of violation messages, never both.
type ValidationResult struct {
	Spec       *ProjectSpecification
	Violations []string
}

func (r ValidationResult) Valid() bool {
	return len(r.Violations) == 0
}
