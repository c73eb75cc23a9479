// ABOUTME: Session-side models: logged sets and the view shapes built from them.
// ABOUTME: A session is the group of records sharing one (date, workout_id) pair.
package models

import (
	"fmt"
	"strconv"
	"time"
)

// Set is a single logged set. For isolation exercises LeftReps/RightReps are
// populated and supersede Reps; HalfReps counts partial reps shown additively.
type Set struct {
	SetNumber int     `json:"set_number" yaml:"set_number"`
	Weight    float64 `json:"weight" yaml:"weight"`
	Reps      int     `json:"reps" yaml:"reps"`
	HalfReps  int     `json:"half_reps,omitempty" yaml:"half_reps,omitempty"`
	LeftReps  *int    `json:"left_reps,omitempty" yaml:"left_reps,omitempty"`
	RightReps *int    `json:"right_reps,omitempty" yaml:"right_reps,omitempty"`
}

// IsIsolation reports whether this set was logged with per-limb counts.
func (s Set) IsIsolation() bool {
	return s.LeftReps != nil || s.RightReps != nil
}

// String renders a set the way it is entered: "100x8", "100x8+1" with
// half reps, "60xL8/R7" for per-limb counts.
func (s Set) String() string {
	w := strconv.FormatFloat(s.Weight, 'f', -1, 64)
	if s.IsIsolation() {
		var l, r int
		if s.LeftReps != nil {
			l = *s.LeftReps
		}
		if s.RightReps != nil {
			r = *s.RightReps
		}
		return fmt.Sprintf("%sxL%d/R%d", w, l, r)
	}
	if s.HalfReps > 0 {
		return fmt.Sprintf("%sx%d+%d", w, s.Reps, s.HalfReps)
	}
	return fmt.Sprintf("%sx%d", w, s.Reps)
}

// SessionEntry is the input for recording one exercise within a session.
type SessionEntry struct {
	ExerciseID int64 `json:"exercise_id" yaml:"exercise_id"`
	Sets       []Set `json:"sets" yaml:"sets"`
}

// SessionSummary identifies one performed session in listings.
type SessionSummary struct {
	Date      string `json:"date" yaml:"date"`
	WorkoutID int64  `json:"workout_id" yaml:"workout_id"`
	PlanName  string `json:"plan_name" yaml:"plan_name"`
}

// MonthBucket groups session summaries under one year-month.
type MonthBucket struct {
	Key      string           `json:"key" yaml:"key"` // YYYY-MM
	Label    string           `json:"label" yaml:"label"`
	Sessions []SessionSummary `json:"sessions" yaml:"sessions"`
}

// SessionExercise is one exercise group within a session detail view.
// ExerciseID is nil when the exercise was deleted after the session was
// logged; the sets remain.
type SessionExercise struct {
	ExerciseID    *int64        `json:"exercise_id,omitempty" yaml:"exercise_id,omitempty"`
	Name          string        `json:"name" yaml:"name"`
	EquipmentType EquipmentType `json:"equipment_type,omitempty" yaml:"equipment_type,omitempty"`
	IsIsolation   bool          `json:"is_isolation,omitempty" yaml:"is_isolation,omitempty"`
	Sets          []Set         `json:"sets" yaml:"sets"`
}

// Session is a fully loaded performed session.
type Session struct {
	Date      string            `json:"date" yaml:"date"`
	WorkoutID int64             `json:"workout_id" yaml:"workout_id"`
	PlanName  string            `json:"plan_name" yaml:"plan_name"`
	Exercises []SessionExercise `json:"exercises" yaml:"exercises"`
}

// PreviousPerformance is the "ghost" data for one exercise: all sets from
// the most recent session that touched it. Empty Sets means no history.
type PreviousPerformance struct {
	ExerciseID int64  `json:"exercise_id" yaml:"exercise_id"`
	Date       string `json:"date,omitempty" yaml:"date,omitempty"`
	WorkoutID  int64  `json:"workout_id,omitempty" yaml:"workout_id,omitempty"`
	Sets       []Set  `json:"sets" yaml:"sets"`
}

// DraftEntry is one exercise worth of unsaved input.
type DraftEntry struct {
	ExerciseID   int64  `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	Sets         []Set  `json:"sets"`
}

// SessionDraft is an in-progress, unsaved session persisted to the draft
// slot so a restart does not lose input.
type SessionDraft struct {
	PlanID    int64        `json:"plan_id"`
	PlanName  string       `json:"plan_name"`
	StartedAt time.Time    `json:"started_at"`
	Entries   []DraftEntry `json:"entries"`
}
