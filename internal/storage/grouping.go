// ABOUTME: Pure folds from flat joined rows into the nested view shapes.
// ABOUTME: No SQL here; everything takes ordered rows and groups them.
package storage

import (
	"time"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// Display names for references whose target row no longer exists.
const (
	deletedPlanName     = "(deleted plan)"
	deletedExerciseName = "(deleted exercise)"
)

// planRow is one flat row of the plan LEFT JOIN query. ExerciseID is nil
// for plans with no exercises attached.
type planRow struct {
	WorkoutID    int64
	WorkoutName  string
	ExerciseID   *int64
	ExerciseName string
	Equipment    string
	IsIsolation  bool
	Order        int
}

// groupPlans folds flat (workout, exercise) rows into plans. Rows must
// already be ordered workout id descending, exercise_order ascending; the
// fold preserves that order, keyed by workout id.
func groupPlans(rows []planRow) []models.Plan {
	var out []models.Plan
	index := make(map[int64]int)

	for _, r := range rows {
		i, seen := index[r.WorkoutID]
		if !seen {
			i = len(out)
			index[r.WorkoutID] = i
			out = append(out, models.Plan{ID: r.WorkoutID, Name: r.WorkoutName})
		}
		if r.ExerciseID == nil {
			continue // plan with zero exercises still appears
		}
		out[i].Exercises = append(out[i].Exercises, models.PlanExercise{
			ExerciseID:    *r.ExerciseID,
			Name:          r.ExerciseName,
			EquipmentType: models.EquipmentType(r.Equipment),
			IsIsolation:   r.IsIsolation,
			Order:         r.Order,
		})
	}
	return out
}

// sessionRow is one flat row of the session detail query. ExerciseID is
// nil when the exercise was deleted after the session was logged.
type sessionRow struct {
	ExerciseID   *int64
	ExerciseName string
	Equipment    string
	IsIsolation  bool
	Set          models.Set
}

// groupSessionExercises folds detail rows into per-exercise groups,
// preserving first-seen order. Sets arrive in insertion order, which the
// write path guarantees is set_number ascending. All records whose
// exercise was deleted share one "(deleted exercise)" group.
func groupSessionExercises(rows []sessionRow) []models.SessionExercise {
	var out []models.SessionExercise
	index := make(map[int64]int)
	deletedIdx := -1

	for _, r := range rows {
		var i int
		if r.ExerciseID == nil {
			if deletedIdx < 0 {
				deletedIdx = len(out)
				out = append(out, models.SessionExercise{Name: deletedExerciseName})
			}
			i = deletedIdx
		} else {
			var seen bool
			i, seen = index[*r.ExerciseID]
			if !seen {
				i = len(out)
				index[*r.ExerciseID] = i
				id := *r.ExerciseID
				out = append(out, models.SessionExercise{
					ExerciseID:    &id,
					Name:          r.ExerciseName,
					EquipmentType: models.EquipmentType(r.Equipment),
					IsIsolation:   r.IsIsolation,
				})
			}
		}
		out[i].Sets = append(out[i].Sets, r.Set)
	}
	return out
}

// bucketByMonth groups session summaries into year-month buckets. Input
// must be ordered date descending; buckets then come out most recent
// first with sessions in input order.
func bucketByMonth(sessions []models.SessionSummary) []models.MonthBucket {
	var out []models.MonthBucket
	index := make(map[string]int)

	for _, s := range sessions {
		key := monthKey(s.Date)
		i, seen := index[key]
		if !seen {
			i = len(out)
			index[key] = i
			out = append(out, models.MonthBucket{Key: key, Label: monthLabel(s.Date, key)})
		}
		out[i].Sessions = append(out[i].Sessions, s)
	}
	return out
}

// monthKey extracts the YYYY-MM prefix of a stored RFC3339 date.
func monthKey(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}

// monthLabel renders a human label like "September 2025", falling back to
// the raw key for dates that fail to parse.
func monthLabel(date, key string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}
