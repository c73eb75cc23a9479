// ABOUTME: Tests for the singleton profile row and weight unit updates.
package storage

import (
	"testing"

	"github.com/liftlog-dev/liftlog/internal/models"
)

func TestProfileDefaults(t *testing.T) {
	db := setupTestDB(t)

	p, err := db.Profile()
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if p.WeightUnit != models.WeightUnitKg {
		t.Errorf("Default unit: got %q, want kg", p.WeightUnit)
	}
	if p.FirstName != "" || p.LastName != "" {
		t.Errorf("Expected empty names, got %q %q", p.FirstName, p.LastName)
	}
}

func TestSaveProfileUpsert(t *testing.T) {
	db := setupTestDB(t)

	p := &models.Profile{FirstName: "Ada", LastName: "Lovelace", WeightUnit: models.WeightUnitLbs}
	if err := db.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err := db.Profile()
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if got.FirstName != "Ada" || got.WeightUnit != models.WeightUnitLbs {
		t.Errorf("Profile mismatch: %+v", got)
	}

	// Saving again updates the same row.
	p.FirstName = "Grace"
	if err := db.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile (update) failed: %v", err)
	}
	got, err = db.Profile()
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if got.FirstName != "Grace" {
		t.Errorf("Update lost: %+v", got)
	}
}

func TestSetWeightUnitPreservesNames(t *testing.T) {
	db := setupTestDB(t)

	if err := db.SaveProfile(&models.Profile{FirstName: "Ada", WeightUnit: models.WeightUnitKg}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if err := db.SetWeightUnit(models.WeightUnitLbs); err != nil {
		t.Fatalf("SetWeightUnit failed: %v", err)
	}

	got, err := db.Profile()
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if got.WeightUnit != models.WeightUnitLbs {
		t.Errorf("Unit not updated: %+v", got)
	}
	if got.FirstName != "Ada" {
		t.Errorf("Name lost on unit change: %+v", got)
	}
}

func TestSetWeightUnitRejectsUnknown(t *testing.T) {
	db := setupTestDB(t)

	if err := db.SetWeightUnit("stone"); err == nil {
		t.Error("Expected error for unknown unit")
	}
}
