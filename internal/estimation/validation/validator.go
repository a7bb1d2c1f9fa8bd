// Package validation holds the one shared specification validator, used both
// by the submitting client before a request goes out and by the server as the
// authoritative gate. Never trust the client-side pass alone.
package validation

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"

	"github.com/ghanabuild/estimator-backend/internal/estimation/domain"
)

var regionPattern = regexp.MustCompile(`^[A-Za-z\s-]{2,}$`)

// Violation messages, in the fixed order the checks run.
const (
	MsgRegion    = "Region must be at least 2 characters long and contain only letters, spaces, or hyphens."
	MsgFloorArea = "Total Floor Area must be an integer between 500 and 10,000 sq ft."
	MsgBathrooms = "Number of Bathrooms must be an integer between 1 and 10."
	MsgFloors    = "Number of Floors must be an integer between 1 and 5."
)

// Validate runs all four checks in order and accumulates every violation; it
// never stops at the first failure. A numeric value with a fractional part
// ("3.5") fails its range check rather than being truncated. Finish quality
// and the external-works flag are never validated: any value is accepted and
// defaulted.
func Validate(raw domain.RawInput) domain.ValidationResult {
	var violations []string

	region, _ := raw["region"].(string)
	if !regionPattern.MatchString(region) {
		violations = append(violations, MsgRegion)
	}

	area, ok := intField(raw, "totalFloorArea")
	if !ok || area < 500 || area > 10000 {
		violations = append(violations, MsgFloorArea)
	}

	bathrooms, ok := intField(raw, "numberOfBathrooms")
	if !ok || bathrooms < 1 || bathrooms > 10 {
		violations = append(violations, MsgBathrooms)
	}

	floors, ok := intField(raw, "numberOfFloors")
	if !ok || floors < 1 || floors > 5 {
		violations = append(violations, MsgFloors)
	}

	if len(violations) > 0 {
		return domain.ValidationResult{Violations: violations}
	}

	quality, _ := raw["preferredFinishQuality"].(string)
	if quality == "" {
		quality = domain.QualityStandard
	}
	external, _ := raw["includeExternalWorks"].(bool)
	projectType, _ := raw["projectType"].(string)

	return domain.ValidationResult{Spec: &domain.ProjectSpecification{
		Region:                 region,
		ProjectType:            projectType,
		TotalFloorArea:         area,
		NumberOfBathrooms:      bathrooms,
		NumberOfFloors:         floors,
		PreferredFinishQuality: quality,
		IncludeExternalWorks:   external,
	}}
}

// intField coerces a raw value to an integer. Strings and JSON numbers are
// accepted; anything with a nonzero fractional part is rejected.
func intField(raw domain.RawInput, key string) (int, bool) {
	v, present := raw[key]
	if !present {
		return 0, false
	}

	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		return t, true
	case json.Number:
		parsed, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
