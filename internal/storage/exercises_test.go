// ABOUTME: Tests for the exercise catalog: seed import, custom CRUD,
// ABOUTME: duplicate names, preset deletion immunity.
package storage

import (
	"errors"
	"testing"

	"github.com/liftlog-dev/liftlog/internal/models"
)

func TestSeedImportsPresets(t *testing.T) {
	db := setupTestDB(t)

	exercises, err := db.ListExercises("")
	if err != nil {
		t.Fatalf("ListExercises failed: %v", err)
	}
	if len(exercises) != len(presetCatalog) {
		t.Errorf("Expected %d preset exercises, got %d", len(presetCatalog), len(exercises))
	}

	bench := mustExercise(t, db, "Bench Press")
	if bench.IsCustom {
		t.Error("Bench Press should not be custom")
	}
	if bench.MuscleGroup != models.MuscleChest {
		t.Errorf("Bench Press muscle group: got %q, want %q", bench.MuscleGroup, models.MuscleChest)
	}
	if bench.EquipmentType != models.EquipmentFreeWeight {
		t.Errorf("Bench Press equipment: got %q", bench.EquipmentType)
	}

	lateral := mustExercise(t, db, "Dumbbell Lateral Raise")
	if !lateral.IsIsolation {
		t.Error("Dumbbell Lateral Raise should be isolation")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	// A custom exercise marks the table as user-touched.
	e := models.NewCustomExercise("Zercher Squat", models.MuscleLegs, models.EquipmentFreeWeight, false)
	if err := db.SaveCustomExercise(e); err != nil {
		t.Fatalf("SaveCustomExercise failed: %v", err)
	}

	// Re-running the seed pass must not duplicate or touch anything.
	if err := db.importPresets(); err != nil {
		t.Fatalf("importPresets failed: %v", err)
	}

	exercises, err := db.ListExercises("")
	if err != nil {
		t.Fatalf("ListExercises failed: %v", err)
	}
	if len(exercises) != len(presetCatalog)+1 {
		t.Errorf("Expected %d exercises after reseed, got %d", len(presetCatalog)+1, len(exercises))
	}
}

func TestListExercisesFilterAndOrder(t *testing.T) {
	db := setupTestDB(t)

	e := models.NewCustomExercise("Cable Pullover", models.MuscleBack, models.EquipmentMachine, false)
	if err := db.SaveCustomExercise(e); err != nil {
		t.Fatalf("SaveCustomExercise failed: %v", err)
	}

	all, err := db.ListExercises("")
	if err != nil {
		t.Fatalf("ListExercises failed: %v", err)
	}
	if !all[0].IsCustom {
		t.Error("Custom exercises should sort first")
	}

	chest, err := db.ListExercises(models.MuscleChest)
	if err != nil {
		t.Fatalf("ListExercises(chest) failed: %v", err)
	}
	if len(chest) == 0 {
		t.Fatal("Expected chest exercises")
	}
	for _, ex := range chest {
		if ex.MuscleGroup != models.MuscleChest {
			t.Errorf("Filter leaked %q (%s)", ex.Name, ex.MuscleGroup)
		}
	}
}

func TestSaveCustomExerciseDuplicateName(t *testing.T) {
	db := setupTestDB(t)

	// Collides with a preset.
	e := models.NewCustomExercise("Bench Press", models.MuscleChest, models.EquipmentFreeWeight, false)
	err := db.SaveCustomExercise(e)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}

	// Collides with another custom.
	first := models.NewCustomExercise("Zercher Squat", models.MuscleLegs, models.EquipmentFreeWeight, false)
	if err := db.SaveCustomExercise(first); err != nil {
		t.Fatalf("SaveCustomExercise failed: %v", err)
	}
	second := models.NewCustomExercise("Zercher Squat", models.MuscleLegs, models.EquipmentFreeWeight, false)
	if err := db.SaveCustomExercise(second); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
}

func TestDeleteCustomExercise(t *testing.T) {
	db := setupTestDB(t)

	e := models.NewCustomExercise("Zercher Squat", models.MuscleLegs, models.EquipmentFreeWeight, false)
	if err := db.SaveCustomExercise(e); err != nil {
		t.Fatalf("SaveCustomExercise failed: %v", err)
	}

	if err := db.DeleteCustomExercise(e.ID); err != nil {
		t.Fatalf("DeleteCustomExercise failed: %v", err)
	}
	if _, err := db.GetExercise(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeletePresetIsRefused(t *testing.T) {
	db := setupTestDB(t)

	bench := mustExercise(t, db, "Bench Press")
	err := db.DeleteCustomExercise(bench.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting a preset, got %v", err)
	}

	// Still there.
	if _, err := db.GetExercise(bench.ID); err != nil {
		t.Errorf("Preset disappeared: %v", err)
	}
}

func TestDeleteExerciseNullsSessionRecords(t *testing.T) {
	db := setupTestDB(t)

	e := models.NewCustomExercise("Zercher Squat", models.MuscleLegs, models.EquipmentFreeWeight, false)
	if err := db.SaveCustomExercise(e); err != nil {
		t.Fatalf("SaveCustomExercise failed: %v", err)
	}

	p := models.NewPlan("Legs", []int64{e.ID})
	if err := db.SavePlan(p); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}

	date, err := db.RecordSession(p.ID, []models.SessionEntry{
		{ExerciseID: e.ID, Sets: simpleSets(60, 5, 60, 5)},
	})
	if err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}

	if err := db.DeleteCustomExercise(e.ID); err != nil {
		t.Fatalf("DeleteCustomExercise failed: %v", err)
	}

	s, err := db.SessionDetail(date, p.ID)
	if err != nil {
		t.Fatalf("SessionDetail failed: %v", err)
	}
	if len(s.Exercises) != 1 {
		t.Fatalf("Expected 1 exercise group, got %d", len(s.Exercises))
	}
	if s.Exercises[0].Name != deletedExerciseName {
		t.Errorf("Expected %q group, got %q", deletedExerciseName, s.Exercises[0].Name)
	}
	if len(s.Exercises[0].Sets) != 2 {
		t.Errorf("Expected 2 surviving sets, got %d", len(s.Exercises[0].Sets))
	}
}
