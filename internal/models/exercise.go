// ABOUTME: Exercise model and equipment/muscle-group enums.
// ABOUTME: Distinguishes seeded presets from user-created custom exercises.
package models

// EquipmentType classifies how an exercise is loaded.
type EquipmentType string

const (
	EquipmentFreeWeight EquipmentType = "free-weight"
	EquipmentMachine    EquipmentType = "machine"
	EquipmentBodyweight EquipmentType = "bodyweight"
)

// AllEquipmentTypes returns all valid equipment types.
var AllEquipmentTypes = []EquipmentType{
	EquipmentFreeWeight, EquipmentMachine, EquipmentBodyweight,
}

// IsValidEquipmentType checks if a string is a valid equipment type.
func IsValidEquipmentType(s string) bool {
	for _, et := range AllEquipmentTypes {
		if string(et) == s {
			return true
		}
	}
	return false
}

// Muscle groups used by the preset catalog. The column is free text, so
// custom exercises may use any tag; these are the ones the seed data uses.
const (
	MuscleChest     = "chest"
	MuscleBack      = "back"
	MuscleShoulders = "shoulders"
	MuscleArms      = "arms"
	MuscleLegs      = "legs"
	MuscleGlutes    = "glutes"
	MuscleAbs       = "abs"
	MuscleCalves    = "calves"
	MuscleForearms  = "forearms"
)

// AllMuscleGroups returns the muscle groups used by the preset catalog.
var AllMuscleGroups = []string{
	MuscleChest, MuscleBack, MuscleShoulders, MuscleArms,
	MuscleLegs, MuscleGlutes, MuscleAbs, MuscleCalves, MuscleForearms,
}

// IsValidMuscleGroup checks if a string is one of the preset groups.
func IsValidMuscleGroup(s string) bool {
	for _, mg := range AllMuscleGroups {
		if mg == s {
			return true
		}
	}
	return false
}

// Exercise is a movement the user can put into a plan. Presets come from
// the seed catalog and cannot be deleted; custom exercises are user-created.
// Isolation exercises track left/right reps independently.
type Exercise struct {
	ID            int64         `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	MuscleGroup   string        `json:"muscle_group,omitempty" yaml:"muscle_group,omitempty"`
	EquipmentType EquipmentType `json:"equipment_type" yaml:"equipment_type"`
	IsCustom      bool          `json:"is_custom" yaml:"is_custom"`
	IsIsolation   bool          `json:"is_isolation" yaml:"is_isolation"`
}

// NewCustomExercise creates a user-defined exercise.
func NewCustomExercise(name, muscleGroup string, equipment EquipmentType, isolation bool) *Exercise {
	return &Exercise{
		Name:          name,
		MuscleGroup:   muscleGroup,
		EquipmentType: equipment,
		IsCustom:      true,
		IsIsolation:   isolation,
	}
}
