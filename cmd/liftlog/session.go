// ABOUTME: CLI commands for performed sessions: record, list, show,
// ABOUTME: edit, delete and previous-performance lookup.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/spf13/cobra"
)

var sessionEntries []string

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"sessions", "s"},
	Short:   "Record and browse workout sessions",
}

var sessionRecordCmd = &cobra.Command{
	Use:     "record <plan-id>",
	Aliases: []string{"r"},
	Short:   "Record a performed session in one shot",
	Long: `Record a session against a plan. Each -x flag is one exercise with
its sets; exercises are given by name or id.

Before saving, the previous performance for each exercise is shown so
you can sanity-check the numbers.

Examples:
  liftlog session record 1 -x "Bench Press=100x8,100x8,95x10"
  liftlog session record 1 -x "Dips=0x12,0x10+1" -x "Dumbbell Curl=14xL10/R10"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}
		if len(sessionEntries) == 0 {
			return fmt.Errorf("at least one -x entry is required")
		}

		entries, err := buildEntries(sessionEntries)
		if err != nil {
			return err
		}

		showPrevious(entries)

		date, err := repo.RecordSession(planID, entries)
		if err != nil {
			return fmt.Errorf("failed to record session: %w", err)
		}

		clearDraftQuietly()

		color.Green("✓ Recorded session")
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(date))
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List sessions grouped by month",
	RunE: func(cmd *cobra.Command, args []string) error {
		months, err := repo.ListSessionsByMonth()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		if len(months) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range months {
			fmt.Println(color.New(color.Bold).Sprint(m.Label))
			for _, s := range m.Sessions {
				fmt.Printf("  %s  %s %s\n",
					formatSessionDate(s.Date),
					padRight(truncate(s.PlanName, 24), 24),
					faint.Sprintf("(%s %d)", s.Date, s.WorkoutID))
			}
		}
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <date> <plan-id>",
	Short: "Show one session's exercises and sets",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, workoutID, err := sessionKeyArgs(args)
		if err != nil {
			return err
		}

		s, err := repo.SessionDetail(date, workoutID)
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}

		fmt.Printf("%s — %s\n", color.New(color.Bold).Sprint(s.PlanName), formatSessionDate(s.Date))
		for _, ex := range s.Exercises {
			fmt.Printf("  %s: %s\n", ex.Name, formatSets(ex.Sets))
		}
		return nil
	},
}

var sessionEditCmd = &cobra.Command{
	Use:   "edit <date> <plan-id>",
	Short: "Replace a session's sets, keeping its date",
	Long: `Replace every set of a session. The -x entries fully replace the old
content; the session keeps its original date stamp.

Example:
  liftlog session edit 2025-08-30T18:04:11Z 1 -x "Bench Press=100x8,100x8"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, workoutID, err := sessionKeyArgs(args)
		if err != nil {
			return err
		}
		if len(sessionEntries) == 0 {
			return fmt.Errorf("at least one -x entry is required")
		}

		entries, err := buildEntries(sessionEntries)
		if err != nil {
			return err
		}

		if err := repo.EditSession(date, workoutID, entries); err != nil {
			return fmt.Errorf("failed to edit session: %w", err)
		}

		color.Green("✓ Updated session %s", date)
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:     "delete <date> <plan-id>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a session and all its sets",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, workoutID, err := sessionKeyArgs(args)
		if err != nil {
			return err
		}

		if err := repo.DeleteSession(date, workoutID); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		color.Green("✓ Deleted session %s", date)
		return nil
	},
}

var sessionPrevCmd = &cobra.Command{
	Use:     "prev <exercise>",
	Aliases: []string{"previous"},
	Short:   "Show the last logged sets for an exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := resolveExercise(args[0])
		if err != nil {
			return fmt.Errorf("exercise %q: %w", args[0], err)
		}

		prev, err := repo.PreviousPerformance(e.ID)
		if err != nil {
			return fmt.Errorf("failed to load previous performance: %w", err)
		}

		if len(prev.Sets) == 0 {
			fmt.Printf("No history for %q yet.\n", e.Name)
			return nil
		}

		fmt.Printf("%s — last done %s\n", color.New(color.Bold).Sprint(e.Name), formatSessionDate(prev.Date))
		fmt.Printf("  %s\n", formatSets(prev.Sets))
		return nil
	},
}

// buildEntries resolves -x entry specs against the exercise catalog.
func buildEntries(specs []string) ([]models.SessionEntry, error) {
	entries := make([]models.SessionEntry, 0, len(specs))
	for _, spec := range specs {
		ref, sets, err := parseEntrySpec(spec)
		if err != nil {
			return nil, err
		}
		e, err := resolveExercise(ref)
		if err != nil {
			return nil, fmt.Errorf("exercise %q: %w", ref, err)
		}
		entries = append(entries, models.SessionEntry{ExerciseID: e.ID, Sets: sets})
	}
	return entries, nil
}

// showPrevious prints the ghost data for each entry's exercise.
func showPrevious(entries []models.SessionEntry) {
	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.ExerciseID
	}

	previous, err := repo.PreviousForPlan(ids)
	if err != nil {
		return // ghost data is best-effort; never block a save
	}

	faint := color.New(color.Faint)
	for _, prev := range previous {
		if prev == nil || len(prev.Sets) == 0 {
			continue
		}
		faint.Printf("  last time (exercise %d): %s\n", prev.ExerciseID, formatSets(prev.Sets))
	}
}

func init() {
	sessionRecordCmd.Flags().StringArrayVarP(&sessionEntries, "entry", "x", nil, `exercise entry: "EXERCISE=100x8,95x10" (repeatable)`)
	sessionEditCmd.Flags().StringArrayVarP(&sessionEntries, "entry", "x", nil, `replacement entry: "EXERCISE=100x8,95x10" (repeatable)`)

	sessionCmd.AddCommand(sessionRecordCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionEditCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	sessionCmd.AddCommand(sessionPrevCmd)
	rootCmd.AddCommand(sessionCmd)
}
