// ABOUTME: Tests for the badger-backed session draft slot.
package draft

import (
	"testing"
	"time"

	"github.com/liftlog-dev/liftlog/internal/models"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleDraft() *models.SessionDraft {
	return &models.SessionDraft{
		PlanID:    1,
		PlanName:  "Push Day",
		StartedAt: time.Date(2025, 8, 11, 18, 0, 0, 0, time.UTC),
		Entries: []models.DraftEntry{
			{
				ExerciseID:   3,
				ExerciseName: "Bench Press",
				Sets:         []models.Set{{Weight: 100, Reps: 8}, {Weight: 100, Reps: 7}},
			},
		},
	}
}

func TestEmptySlotLoadsNil(t *testing.T) {
	store := setupStore(t)

	d, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d != nil {
		t.Errorf("Expected nil draft, got %+v", d)
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := setupStore(t)

	if err := store.Save(sampleDraft()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	d, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d == nil {
		t.Fatal("Expected a draft")
	}
	if d.PlanName != "Push Day" || len(d.Entries) != 1 {
		t.Errorf("Draft mismatch: %+v", d)
	}
	if len(d.Entries[0].Sets) != 2 || d.Entries[0].Sets[1].Reps != 7 {
		t.Errorf("Sets mismatch: %+v", d.Entries[0].Sets)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := setupStore(t)

	if err := store.Save(sampleDraft()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	second := sampleDraft()
	second.PlanID = 2
	second.PlanName = "Pull Day"
	second.Entries = nil
	if err := store.Save(second); err != nil {
		t.Fatalf("Save (overwrite) failed: %v", err)
	}

	d, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.PlanName != "Pull Day" || len(d.Entries) != 0 {
		t.Errorf("Overwrite failed: %+v", d)
	}
}

func TestClear(t *testing.T) {
	store := setupStore(t)

	if err := store.Save(sampleDraft()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	d, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d != nil {
		t.Errorf("Expected empty slot after clear, got %+v", d)
	}

	// Clearing again is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on empty slot failed: %v", err)
	}
}

func TestDraftSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Save(sampleDraft()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	d, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if d == nil || d.PlanName != "Push Day" {
		t.Errorf("Draft lost across reopen: %+v", d)
	}
}
