// ABOUTME: CLI commands for the in-progress session draft.
// ABOUTME: start/log/status/finish/abort under the "session" group.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/liftlog-dev/liftlog/internal/draft"
	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/spf13/cobra"
)

// openDraft opens the draft store under the configured data dir.
func openDraft() (*draft.Store, error) {
	return draft.Open(cfg.GetDraftDir())
}

// clearDraftQuietly empties the draft slot, ignoring failures. Used after
// a successful one-shot record so a stale draft does not linger.
func clearDraftQuietly() {
	store, err := openDraft()
	if err != nil {
		return
	}
	defer store.Close()
	_ = store.Clear()
}

var sessionStartCmd = &cobra.Command{
	Use:   "start <plan-id>",
	Short: "Start a session draft for a plan",
	Long: `Open a draft session. Log sets exercise by exercise with
'session log'; the draft is persisted locally so a closed terminal or
reboot loses nothing. Finish with 'session finish'.

Starting a new draft overwrites an abandoned one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}

		p, err := repo.GetPlan(planID)
		if err != nil {
			return fmt.Errorf("failed to load plan: %w", err)
		}

		store, err := openDraft()
		if err != nil {
			return err
		}
		defer store.Close()

		d := &models.SessionDraft{
			PlanID:    p.ID,
			PlanName:  p.Name,
			StartedAt: time.Now().UTC(),
		}
		if err := store.Save(d); err != nil {
			return err
		}

		color.Green("✓ Started draft for %q", p.Name)
		for i, ex := range p.Exercises {
			prev, err := repo.PreviousPerformance(ex.ExerciseID)
			if err != nil || len(prev.Sets) == 0 {
				fmt.Printf("  %d. %s\n", i+1, ex.Name)
				continue
			}
			fmt.Printf("  %d. %s %s\n", i+1, ex.Name,
				color.New(color.Faint).Sprintf("last: %s", formatSets(prev.Sets)))
		}
		return nil
	},
}

var sessionLogCmd = &cobra.Command{
	Use:   "log <exercise> <set>...",
	Short: "Log one exercise's sets into the draft",
	Long: `Append one exercise to the current draft. Sets use the same syntax
as -x entries. Logging the same exercise again replaces its sets.

Examples:
  liftlog session log "Bench Press" 100x8 100x8 95x10
  liftlog session log "Dumbbell Curl" 14xL10/R10 14xL8/R8`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := resolveExercise(args[0])
		if err != nil {
			return fmt.Errorf("exercise %q: %w", args[0], err)
		}

		var sets []models.Set
		for _, spec := range args[1:] {
			set, err := parseSetSpec(spec)
			if err != nil {
				return err
			}
			sets = append(sets, set)
		}

		store, err := openDraft()
		if err != nil {
			return err
		}
		defer store.Close()

		d, err := store.Load()
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("no draft in progress; start one with: liftlog session start <plan-id>")
		}

		replaced := false
		for i := range d.Entries {
			if d.Entries[i].ExerciseID == e.ID {
				d.Entries[i].Sets = sets
				replaced = true
				break
			}
		}
		if !replaced {
			d.Entries = append(d.Entries, models.DraftEntry{
				ExerciseID:   e.ID,
				ExerciseName: e.Name,
				Sets:         sets,
			})
		}

		if err := store.Save(d); err != nil {
			return err
		}

		color.Green("✓ Logged %s", e.Name)
		fmt.Printf("  %s\n", formatSets(sets))
		return nil
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openDraft()
		if err != nil {
			return err
		}
		defer store.Close()

		d, err := store.Load()
		if err != nil {
			return err
		}
		if d == nil {
			fmt.Println("No draft in progress.")
			return nil
		}

		fmt.Printf("%s %s\n",
			color.New(color.Bold).Sprint(d.PlanName),
			color.New(color.Faint).Sprintf("(started %s)", d.StartedAt.Local().Format("Mon 2 Jan 15:04")))
		if len(d.Entries) == 0 {
			fmt.Println("  Nothing logged yet.")
			return nil
		}
		for _, entry := range d.Entries {
			fmt.Printf("  %s: %s\n", entry.ExerciseName, formatSets(entry.Sets))
		}
		return nil
	},
}

var sessionFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Save the draft as a recorded session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openDraft()
		if err != nil {
			return err
		}
		defer store.Close()

		d, err := store.Load()
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("no draft in progress")
		}
		if len(d.Entries) == 0 {
			return fmt.Errorf("draft is empty; log sets first or abort it")
		}

		entries := make([]models.SessionEntry, 0, len(d.Entries))
		for _, de := range d.Entries {
			entries = append(entries, models.SessionEntry{ExerciseID: de.ExerciseID, Sets: de.Sets})
		}

		date, err := repo.RecordSession(d.PlanID, entries)
		if err != nil {
			return fmt.Errorf("failed to record session: %w", err)
		}

		// The session is safely in SQLite; the draft slot only clears after.
		if err := store.Clear(); err != nil {
			return err
		}

		color.Green("✓ Recorded session for %q", d.PlanName)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(date))
		return nil
	},
}

var sessionAbortCmd = &cobra.Command{
	Use:   "abort",
	Short: "Discard the current draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openDraft()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(); err != nil {
			return err
		}
		color.Green("✓ Draft discarded")
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionLogCmd)
	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionFinishCmd)
	sessionCmd.AddCommand(sessionAbortCmd)
}
