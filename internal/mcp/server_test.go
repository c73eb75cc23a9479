// ABOUTME: Tests for MCP tool handlers against a real SQLite store.
package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/liftlog-dev/liftlog/internal/storage"
)

func setupServer(t *testing.T) *Server {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "liftlog.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	return server
}

func benchPressID(t *testing.T, s *Server) int64 {
	t.Helper()
	e, err := s.repo.FindExerciseByName("Bench Press")
	if err != nil {
		t.Fatalf("FindExerciseByName failed: %v", err)
	}
	return e.ID
}

func TestSavePlanTool(t *testing.T) {
	s := setupServer(t)
	ctx := context.Background()

	_, out, err := s.handleSavePlan(ctx, nil, savePlanInput{
		Name:        "Push Day",
		ExerciseIDs: []int64{benchPressID(t, s)},
	})
	if err != nil {
		t.Fatalf("save_plan failed: %v", err)
	}
	if out.ID == 0 || out.Name != "Push Day" {
		t.Errorf("Output wrong: %+v", out)
	}

	plans, err := s.repo.ListPlans()
	if err != nil || len(plans) != 1 {
		t.Fatalf("Plan not persisted: %v", err)
	}
}

func TestSavePlanToolUpdates(t *testing.T) {
	s := setupServer(t)
	ctx := context.Background()

	_, created, err := s.handleSavePlan(ctx, nil, savePlanInput{
		Name:        "Push Day",
		ExerciseIDs: []int64{benchPressID(t, s)},
	})
	if err != nil {
		t.Fatalf("save_plan failed: %v", err)
	}

	_, updated, err := s.handleSavePlan(ctx, nil, savePlanInput{
		ID:          created.ID,
		Name:        "Push Day v2",
		ExerciseIDs: []int64{benchPressID(t, s)},
	})
	if err != nil {
		t.Fatalf("save_plan (update) failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("Update changed plan id: %d -> %d", created.ID, updated.ID)
	}
}

func TestRecordAndGetSessionTools(t *testing.T) {
	s := setupServer(t)
	ctx := context.Background()

	benchID := benchPressID(t, s)
	_, plan, err := s.handleSavePlan(ctx, nil, savePlanInput{
		Name:        "Push Day",
		ExerciseIDs: []int64{benchID},
	})
	if err != nil {
		t.Fatalf("save_plan failed: %v", err)
	}

	_, rec, err := s.handleRecordSession(ctx, nil, recordSessionInput{
		PlanID: plan.ID,
		Entries: []sessionEntryInput{
			{ExerciseID: benchID, Sets: []setInput{{Weight: 100, Reps: 8}, {Weight: 100, Reps: 7}}},
		},
	})
	if err != nil {
		t.Fatalf("record_session failed: %v", err)
	}
	if rec.Date == "" {
		t.Fatal("Expected a date stamp")
	}

	_, got, err := s.handleGetSession(ctx, nil, sessionKeyInput{Date: rec.Date, WorkoutID: plan.ID})
	if err != nil {
		t.Fatalf("get_session failed: %v", err)
	}
	session, ok := got.(*models.Session)
	if !ok {
		t.Fatalf("Unexpected output type: %T", got)
	}
	if len(session.Exercises) != 1 || len(session.Exercises[0].Sets) != 2 {
		t.Errorf("Session wrong: %+v", session)
	}
}

func TestPreviousPerformanceToolNoHistory(t *testing.T) {
	s := setupServer(t)

	_, out, err := s.handlePreviousPerformance(context.Background(), nil, previousPerformanceInput{
		ExerciseID: benchPressID(t, s),
	})
	if err != nil {
		t.Fatalf("previous_performance failed: %v", err)
	}
	msg, ok := out.(map[string]interface{})
	if !ok || msg["message"] == "" {
		t.Errorf("Expected a no-history message, got %+v", out)
	}
}

func TestAddExerciseToolValidation(t *testing.T) {
	s := setupServer(t)
	ctx := context.Background()

	_, _, err := s.handleAddExercise(ctx, nil, addExerciseInput{
		Name:          "Sled Push",
		EquipmentType: "rocket",
	})
	if err == nil {
		t.Error("Expected error for unknown equipment type")
	}

	_, out, err := s.handleAddExercise(ctx, nil, addExerciseInput{
		Name:          "Sled Push",
		MuscleGroup:   models.MuscleLegs,
		EquipmentType: string(models.EquipmentFreeWeight),
	})
	if err != nil {
		t.Fatalf("add_exercise failed: %v", err)
	}
	if out.ID == 0 {
		t.Error("Expected an id for the new exercise")
	}

	// Duplicate is surfaced as an error.
	_, _, err = s.handleAddExercise(ctx, nil, addExerciseInput{
		Name:          "Sled Push",
		MuscleGroup:   models.MuscleLegs,
		EquipmentType: string(models.EquipmentFreeWeight),
	})
	if err == nil {
		t.Error("Expected error for duplicate exercise name")
	}
}

func TestSetProfileTool(t *testing.T) {
	s := setupServer(t)
	ctx := context.Background()

	_, _, err := s.handleSetProfile(ctx, nil, setProfileInput{FirstName: "Ada", WeightUnit: "lbs"})
	if err != nil {
		t.Fatalf("set_profile failed: %v", err)
	}

	p, err := s.repo.Profile()
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if p.FirstName != "Ada" || p.WeightUnit != models.WeightUnitLbs {
		t.Errorf("Profile wrong: %+v", p)
	}

	// Unknown unit rejected without clobbering the row.
	_, _, err = s.handleSetProfile(ctx, nil, setProfileInput{WeightUnit: "stone"})
	if err == nil {
		t.Error("Expected error for unknown unit")
	}
}

func TestPlansResource(t *testing.T) {
	s := setupServer(t)
	ctx := context.Background()

	if _, _, err := s.handleSavePlan(ctx, nil, savePlanInput{
		Name:        "Push Day",
		ExerciseIDs: []int64{benchPressID(t, s)},
	}); err != nil {
		t.Fatalf("save_plan failed: %v", err)
	}

	res, err := s.handlePlansResource(ctx, nil)
	if err != nil {
		t.Fatalf("plans resource failed: %v", err)
	}
	if len(res.Contents) != 1 || res.Contents[0].MIMEType != "application/json" {
		t.Fatalf("Resource shape wrong: %+v", res)
	}
	if res.Contents[0].Text == "" {
		t.Error("Expected JSON content")
	}
}
