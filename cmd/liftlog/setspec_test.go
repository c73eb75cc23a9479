// ABOUTME: Tests for the compact set syntax parser.
package main

import (
	"testing"

	"github.com/liftlog-dev/liftlog/internal/models"
)

func TestParseSetSpecStandard(t *testing.T) {
	set, err := parseSetSpec("100x8")
	if err != nil {
		t.Fatalf("parseSetSpec failed: %v", err)
	}
	if set.Weight != 100 || set.Reps != 8 || set.HalfReps != 0 {
		t.Errorf("Parsed wrong: %+v", set)
	}
	if set.IsIsolation() {
		t.Error("Standard set misread as isolation")
	}
}

func TestParseSetSpecDecimalWeight(t *testing.T) {
	set, err := parseSetSpec("102.5x8")
	if err != nil {
		t.Fatalf("parseSetSpec failed: %v", err)
	}
	if set.Weight != 102.5 {
		t.Errorf("Weight: got %v", set.Weight)
	}
}

func TestParseSetSpecHalfReps(t *testing.T) {
	set, err := parseSetSpec("100x8+1")
	if err != nil {
		t.Fatalf("parseSetSpec failed: %v", err)
	}
	if set.Reps != 8 || set.HalfReps != 1 {
		t.Errorf("Parsed wrong: %+v", set)
	}
}

func TestParseSetSpecIsolation(t *testing.T) {
	set, err := parseSetSpec("60xL8/R7")
	if err != nil {
		t.Fatalf("parseSetSpec failed: %v", err)
	}
	if !set.IsIsolation() {
		t.Fatal("Expected isolation set")
	}
	if *set.LeftReps != 8 || *set.RightReps != 7 || set.Weight != 60 {
		t.Errorf("Parsed wrong: %+v", set)
	}
}

func TestParseSetSpecRejectsGarbage(t *testing.T) {
	for _, spec := range []string{
		"", "100", "x8", "100x", "100x8+", "100xL8", "100xL8/7",
		"-5x8", "100x-1", "axb",
	} {
		if _, err := parseSetSpec(spec); err == nil {
			t.Errorf("parseSetSpec(%q) should fail", spec)
		}
	}
}

func TestParseSetSpecs(t *testing.T) {
	sets, err := parseSetSpecs("100x8, 100x7,95x10")
	if err != nil {
		t.Fatalf("parseSetSpecs failed: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("Expected 3 sets, got %d", len(sets))
	}
	if sets[2].Weight != 95 || sets[2].Reps != 10 {
		t.Errorf("Third set wrong: %+v", sets[2])
	}
}

func TestParseSetSpecsEmpty(t *testing.T) {
	if _, err := parseSetSpecs(" , "); err == nil {
		t.Error("Expected error for empty set list")
	}
}

func TestParseEntrySpec(t *testing.T) {
	ref, sets, err := parseEntrySpec("Bench Press=100x8,100x7")
	if err != nil {
		t.Fatalf("parseEntrySpec failed: %v", err)
	}
	if ref != "Bench Press" {
		t.Errorf("Exercise ref: got %q", ref)
	}
	if len(sets) != 2 {
		t.Errorf("Expected 2 sets, got %d", len(sets))
	}
}

func TestParseEntrySpecRejectsMissingParts(t *testing.T) {
	for _, spec := range []string{"Bench Press", "=100x8", "Bench Press="} {
		if _, _, err := parseEntrySpec(spec); err == nil {
			t.Errorf("parseEntrySpec(%q) should fail", spec)
		}
	}
}

func TestSetStringRoundTrip(t *testing.T) {
	for _, spec := range []string{"100x8", "102.5x8", "100x8+1", "60xL8/R7"} {
		set, err := parseSetSpec(spec)
		if err != nil {
			t.Fatalf("parseSetSpec(%q) failed: %v", spec, err)
		}
		if got := set.String(); got != spec {
			t.Errorf("Round trip: %q -> %q", spec, got)
		}
	}
}

func TestFormatSets(t *testing.T) {
	sets := []models.Set{{Weight: 100, Reps: 8}, {Weight: 95, Reps: 10}}
	if got := formatSets(sets); got != "100x8, 95x10" {
		t.Errorf("formatSets = %q", got)
	}
}
