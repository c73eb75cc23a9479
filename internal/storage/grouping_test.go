// ABOUTME: Tests for the pure grouping folds: plans, session exercises,
// ABOUTME: month buckets.
package storage

import (
	"testing"

	"github.com/liftlog-dev/liftlog/internal/models"
)

func int64Ptr(v int64) *int64 { return &v }

func TestGroupPlans(t *testing.T) {
	rows := []planRow{
		{WorkoutID: 2, WorkoutName: "Pull", ExerciseID: int64Ptr(10), ExerciseName: "Deadlift", Order: 0},
		{WorkoutID: 2, WorkoutName: "Pull", ExerciseID: int64Ptr(11), ExerciseName: "Barbell Row", Order: 1},
		{WorkoutID: 1, WorkoutName: "Push", ExerciseID: nil},
	}

	plans := groupPlans(rows)
	if len(plans) != 2 {
		t.Fatalf("Expected 2 plans, got %d", len(plans))
	}
	if plans[0].ID != 2 || len(plans[0].Exercises) != 2 {
		t.Errorf("First plan wrong: %+v", plans[0])
	}
	if plans[0].Exercises[1].Name != "Barbell Row" {
		t.Errorf("Exercise order lost: %+v", plans[0].Exercises)
	}
	// The nil-exercise row still yields a plan, with zero exercises.
	if plans[1].ID != 1 || len(plans[1].Exercises) != 0 {
		t.Errorf("Empty plan wrong: %+v", plans[1])
	}
}

func TestGroupSessionExercises(t *testing.T) {
	rows := []sessionRow{
		{ExerciseID: int64Ptr(1), ExerciseName: "Bench Press", Set: models.Set{SetNumber: 1, Weight: 100, Reps: 8}},
		{ExerciseID: int64Ptr(1), ExerciseName: "Bench Press", Set: models.Set{SetNumber: 2, Weight: 100, Reps: 7}},
		{ExerciseID: nil, Set: models.Set{SetNumber: 1, Weight: 40, Reps: 12}},
		{ExerciseID: int64Ptr(2), ExerciseName: "Dips", Set: models.Set{SetNumber: 1, Reps: 12}},
		{ExerciseID: nil, Set: models.Set{SetNumber: 2, Weight: 40, Reps: 10}},
	}

	groups := groupSessionExercises(rows)
	if len(groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(groups))
	}
	if groups[0].Name != "Bench Press" || len(groups[0].Sets) != 2 {
		t.Errorf("Bench group wrong: %+v", groups[0])
	}
	if groups[1].Name != deletedExerciseName {
		t.Errorf("Expected deleted group second, got %q", groups[1].Name)
	}
	// Both orphan rows fold into the single deleted group.
	if len(groups[1].Sets) != 2 {
		t.Errorf("Deleted group should hold 2 sets, got %d", len(groups[1].Sets))
	}
	if groups[2].Name != "Dips" {
		t.Errorf("First-seen order broken: %+v", groups[2])
	}
}

func TestBucketByMonth(t *testing.T) {
	sessions := []models.SessionSummary{
		{Date: "2025-08-11T18:00:00Z", WorkoutID: 1, PlanName: "Push"},
		{Date: "2025-08-04T18:00:00Z", WorkoutID: 1, PlanName: "Push"},
		{Date: "2025-07-28T18:00:00Z", WorkoutID: 2, PlanName: "Pull"},
	}

	buckets := bucketByMonth(sessions)
	if len(buckets) != 2 {
		t.Fatalf("Expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Key != "2025-08" || buckets[0].Label != "August 2025" {
		t.Errorf("First bucket wrong: %+v", buckets[0])
	}
	if len(buckets[0].Sessions) != 2 {
		t.Errorf("August should hold 2 sessions, got %d", len(buckets[0].Sessions))
	}
	if buckets[1].Key != "2025-07" {
		t.Errorf("Second bucket wrong: %+v", buckets[1])
	}
}

func TestMonthLabelFallback(t *testing.T) {
	if got := monthLabel("not-a-date", "not-a"); got != "not-a" {
		t.Errorf("Expected raw key fallback, got %q", got)
	}
}
