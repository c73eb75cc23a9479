// ABOUTME: MCP tool implementations for the workout log.
// ABOUTME: Plans, exercises, sessions and profile exposed as typed tools.
package mcp

import (
	"context"
	"fmt"

	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_plans
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_plans",
		Description: "List all workout plans with their exercises, newest first",
	}, s.handleListPlans)

	// save_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_plan",
		Description: "Create a workout plan, or update one when id is given (record history is kept)",
	}, s.handleSavePlan)

	// delete_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_plan",
		Description: "Delete a workout plan; logged sessions survive",
	}, s.handleDeletePlan)

	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the exercise catalog, optionally filtered by muscle group",
	}, s.handleListExercises)

	// add_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add a custom exercise to the catalog",
	}, s.handleAddExercise)

	// delete_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_exercise",
		Description: "Delete a custom exercise (presets cannot be deleted)",
	}, s.handleDeleteExercise)

	// record_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_session",
		Description: "Record a performed workout session for a plan",
	}, s.handleRecordSession)

	// list_sessions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List performed sessions grouped by month, newest first",
	}, s.handleListSessions)

	// get_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_session",
		Description: "Get one session with all exercises and sets",
	}, s.handleGetSession)

	// edit_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "edit_session",
		Description: "Replace a session's sets, keeping its original date",
	}, s.handleEditSession)

	// delete_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a session and all its sets",
	}, s.handleDeleteSession)

	// previous_performance
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "previous_performance",
		Description: "Get the sets from the most recent session for an exercise",
	}, s.handlePreviousPerformance)

	// get_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user profile and weight unit",
	}, s.handleGetProfile)

	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Update the user profile; empty fields are left unchanged",
	}, s.handleSetProfile)
}

// Tool input/output types

type savePlanInput struct {
	ID          int64   `json:"id,omitempty" jsonschema:"Plan id to update; omit to create"`
	Name        string  `json:"name" jsonschema:"Plan name"`
	ExerciseIDs []int64 `json:"exercise_ids" jsonschema:"Ordered exercise ids"`
}

type planOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type deletePlanInput struct {
	ID int64 `json:"id" jsonschema:"Plan id"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type listExercisesInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (chest, back, shoulders, arms, legs, glutes, abs, calves, forearms)"`
}

type addExerciseInput struct {
	Name          string `json:"name" jsonschema:"Exercise name"`
	MuscleGroup   string `json:"muscle_group,omitempty" jsonschema:"Muscle group"`
	EquipmentType string `json:"equipment_type,omitempty" jsonschema:"free-weight, machine or bodyweight"`
	IsIsolation   bool   `json:"is_isolation,omitempty" jsonschema:"Log per-limb left/right reps"`
}

type exerciseOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type deleteExerciseInput struct {
	ID int64 `json:"id" jsonschema:"Custom exercise id"`
}

type setInput struct {
	Weight    float64 `json:"weight" jsonschema:"Weight used"`
	Reps      int     `json:"reps,omitempty" jsonschema:"Full reps"`
	HalfReps  int     `json:"half_reps,omitempty" jsonschema:"Partial reps"`
	LeftReps  *int    `json:"left_reps,omitempty" jsonschema:"Left-side reps (isolation)"`
	RightReps *int    `json:"right_reps,omitempty" jsonschema:"Right-side reps (isolation)"`
}

type sessionEntryInput struct {
	ExerciseID int64      `json:"exercise_id" jsonschema:"Exercise id"`
	Sets       []setInput `json:"sets" jsonschema:"Performed sets in order"`
}

type recordSessionInput struct {
	PlanID  int64               `json:"plan_id" jsonschema:"Plan id"`
	Entries []sessionEntryInput `json:"entries" jsonschema:"Exercises with sets"`
}

type sessionOutput struct {
	Date      string `json:"date"`
	WorkoutID int64  `json:"workout_id"`
	Message   string `json:"message"`
}

type sessionKeyInput struct {
	Date      string `json:"date" jsonschema:"Session date stamp"`
	WorkoutID int64  `json:"workout_id" jsonschema:"Plan id the session was logged against"`
}

type editSessionInput struct {
	Date      string              `json:"date" jsonschema:"Session date stamp"`
	WorkoutID int64               `json:"workout_id" jsonschema:"Plan id the session was logged against"`
	Entries   []sessionEntryInput `json:"entries" jsonschema:"Replacement exercises with sets"`
}

type previousPerformanceInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"Exercise id"`
}

type setProfileInput struct {
	FirstName  string `json:"first_name,omitempty" jsonschema:"First name"`
	LastName   string `json:"last_name,omitempty" jsonschema:"Last name"`
	WeightUnit string `json:"weight_unit,omitempty" jsonschema:"kg or lbs"`
}

// Tool handlers

func (s *Server) handleListPlans(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	plans, err := s.repo.ListPlans()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list plans: %w", err)
	}
	if len(plans) == 0 {
		return nil, map[string]interface{}{"message": "No plans found."}, nil
	}
	return nil, plans, nil
}

func (s *Server) handleSavePlan(ctx context.Context, req *mcp.CallToolRequest, input savePlanInput) (*mcp.CallToolResult, planOutput, error) {
	p := models.NewPlan(input.Name, input.ExerciseIDs)
	p.ID = input.ID

	if err := s.repo.SavePlan(p); err != nil {
		return nil, planOutput{}, fmt.Errorf("failed to save plan: %w", err)
	}

	verb := "Created"
	if input.ID != 0 {
		verb = "Updated"
	}
	return nil, planOutput{
		ID:      p.ID,
		Name:    p.Name,
		Message: fmt.Sprintf("%s plan %q with %d exercises (ID: %d)", verb, p.Name, len(p.Exercises), p.ID),
	}, nil
}

func (s *Server) handleDeletePlan(ctx context.Context, req *mcp.CallToolRequest, input deletePlanInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeletePlan(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted plan %d. Logged sessions are kept.", input.ID),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	exercises, err := s.repo.ListExercises(input.MuscleGroup)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	if len(exercises) == 0 {
		return nil, map[string]interface{}{"message": "No exercises found."}, nil
	}
	return nil, exercises, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	if input.EquipmentType != "" && !models.IsValidEquipmentType(input.EquipmentType) {
		return nil, exerciseOutput{}, fmt.Errorf("unknown equipment type: %s", input.EquipmentType)
	}

	e := models.NewCustomExercise(input.Name, input.MuscleGroup, models.EquipmentType(input.EquipmentType), input.IsIsolation)
	if err := s.repo.SaveCustomExercise(e); err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}

	return nil, exerciseOutput{
		ID:      e.ID,
		Name:    e.Name,
		Message: fmt.Sprintf("Added custom exercise %q (ID: %d)", e.Name, e.ID),
	}, nil
}

func (s *Server) handleDeleteExercise(ctx context.Context, req *mcp.CallToolRequest, input deleteExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteCustomExercise(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete exercise: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted custom exercise %d. Logged sets are kept.", input.ID),
	}, nil
}

func (s *Server) handleRecordSession(ctx context.Context, req *mcp.CallToolRequest, input recordSessionInput) (*mcp.CallToolResult, sessionOutput, error) {
	date, err := s.repo.RecordSession(input.PlanID, toEntries(input.Entries))
	if err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to record session: %w", err)
	}

	return nil, sessionOutput{
		Date:      date,
		WorkoutID: input.PlanID,
		Message:   fmt.Sprintf("Recorded session at %s", date),
	}, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	months, err := s.repo.ListSessionsByMonth()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(months) == 0 {
		return nil, map[string]interface{}{"message": "No sessions recorded yet."}, nil
	}
	return nil, months, nil
}

func (s *Server) handleGetSession(ctx context.Context, req *mcp.CallToolRequest, input sessionKeyInput) (*mcp.CallToolResult, any, error) {
	session, err := s.repo.SessionDetail(input.Date, input.WorkoutID)
	if err != nil {
		return nil, nil, fmt.Errorf("session not found: %w", err)
	}
	return nil, session, nil
}

func (s *Server) handleEditSession(ctx context.Context, req *mcp.CallToolRequest, input editSessionInput) (*mcp.CallToolResult, sessionOutput, error) {
	if err := s.repo.EditSession(input.Date, input.WorkoutID, toEntries(input.Entries)); err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to edit session: %w", err)
	}
	return nil, sessionOutput{
		Date:      input.Date,
		WorkoutID: input.WorkoutID,
		Message:   fmt.Sprintf("Updated session %s", input.Date),
	}, nil
}

func (s *Server) handleDeleteSession(ctx context.Context, req *mcp.CallToolRequest, input sessionKeyInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteSession(input.Date, input.WorkoutID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete session: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted session %s", input.Date),
	}, nil
}

func (s *Server) handlePreviousPerformance(ctx context.Context, req *mcp.CallToolRequest, input previousPerformanceInput) (*mcp.CallToolResult, any, error) {
	prev, err := s.repo.PreviousPerformance(input.ExerciseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load previous performance: %w", err)
	}
	if len(prev.Sets) == 0 {
		return nil, map[string]interface{}{"message": "No history for this exercise yet."}, nil
	}
	return nil, prev, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	profile, err := s.repo.Profile()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return nil, profile, nil
}

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, simpleOutput, error) {
	profile, err := s.repo.Profile()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to load profile: %w", err)
	}

	if input.FirstName != "" {
		profile.FirstName = input.FirstName
	}
	if input.LastName != "" {
		profile.LastName = input.LastName
	}
	if input.WeightUnit != "" {
		if !models.IsValidWeightUnit(input.WeightUnit) {
			return nil, simpleOutput{}, fmt.Errorf("unknown weight unit: %s", input.WeightUnit)
		}
		profile.WeightUnit = models.WeightUnit(input.WeightUnit)
	}

	if err := s.repo.SaveProfile(profile); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save profile: %w", err)
	}
	return nil, simpleOutput{Message: "Profile updated"}, nil
}

// toEntries converts tool inputs to model entries.
func toEntries(in []sessionEntryInput) []models.SessionEntry {
	entries := make([]models.SessionEntry, 0, len(in))
	for _, e := range in {
		entry := models.SessionEntry{ExerciseID: e.ExerciseID}
		for _, set := range e.Sets {
			entry.Sets = append(entry.Sets, models.Set{
				Weight:    set.Weight,
				Reps:      set.Reps,
				HalfReps:  set.HalfReps,
				LeftReps:  set.LeftReps,
				RightReps: set.RightReps,
			})
		}
		entries = append(entries, entry)
	}
	return entries
}
