// ABOUTME: Profile model: the single local user preference record.
// ABOUTME: One profile per install, always stored under a fixed row id.
package models

// WeightUnit is the user's preferred unit for displaying logged weights.
// Stored weights are unit-ambiguous; this preference interprets them.
type WeightUnit string

const (
	WeightUnitKg  WeightUnit = "kg"
	WeightUnitLbs WeightUnit = "lbs"
)

// IsValidWeightUnit checks if a string is a valid weight unit.
func IsValidWeightUnit(s string) bool {
	return s == string(WeightUnitKg) || s == string(WeightUnitLbs)
}

// Profile is the singleton local user record.
type Profile struct {
	FirstName  string     `json:"first_name" yaml:"first_name"`
	LastName   string     `json:"last_name" yaml:"last_name"`
	WeightUnit WeightUnit `json:"weight_unit" yaml:"weight_unit"`
}
