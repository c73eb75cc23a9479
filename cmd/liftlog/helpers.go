// ABOUTME: Shared CLI helpers: exercise resolution and output formatting.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// resolveExercise looks an exercise up by numeric id or exact name.
func resolveExercise(ref string) (*models.Exercise, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return repo.GetExercise(id)
	}
	return repo.FindExerciseByName(ref)
}

// formatSessionDate renders a stored date stamp for display.
func formatSessionDate(date string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return date
	}
	return t.Local().Format("Mon 2 Jan 15:04")
}

// formatSets joins sets in entry syntax.
func formatSets(sets []models.Set) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// sessionKeyArgs parses the (date, plan-id) pair used by show/edit/delete.
func sessionKeyArgs(args []string) (string, int64, error) {
	workoutID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid plan id: %s", args[1])
	}
	return args[0], workoutID, nil
}
