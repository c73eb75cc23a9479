// ABOUTME: Plan model: a named, reusable workout template.
// ABOUTME: A plan lists exercises in a stable display/performance order.
package models

// PlanExercise is one ordered slot in a plan.
type PlanExercise struct {
	ExerciseID    int64         `json:"exercise_id" yaml:"exercise_id"`
	Name          string        `json:"name" yaml:"name"`
	EquipmentType EquipmentType `json:"equipment_type,omitempty" yaml:"equipment_type,omitempty"`
	IsIsolation   bool          `json:"is_isolation,omitempty" yaml:"is_isolation,omitempty"`
	Order         int           `json:"order" yaml:"order"`
}

// Plan is a named, reusable template ("Push Day"), not a log of a
// performed session. Exercises are kept in exercise_order.
type Plan struct {
	ID        int64          `json:"id" yaml:"id"`
	Name      string         `json:"name" yaml:"name"`
	Exercises []PlanExercise `json:"exercises" yaml:"exercises"`
}

// NewPlan creates an unsaved plan with the given ordered exercise IDs.
func NewPlan(name string, exerciseIDs []int64) *Plan {
	p := &Plan{Name: name}
	for i, id := range exerciseIDs {
		p.Exercises = append(p.Exercises, PlanExercise{ExerciseID: id, Order: i})
	}
	return p
}
