// ABOUTME: CLI commands for workout plans.
// ABOUTME: List, show, add, edit, delete under the "plan" group.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	planExercises []string
	planRename    string
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"plans", "p"},
	Short:   "Manage workout plans",
}

var planListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List workout plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		plans, err := repo.ListPlans()
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}

		if len(plans) == 0 {
			fmt.Println("No plans yet. Create one with: liftlog plan add <name> -e <exercise>")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range plans {
			fmt.Printf("%s %s %s\n",
				faint.Sprintf("#%d", p.ID),
				color.New(color.Bold).Sprint(p.Name),
				faint.Sprintf("(%d exercises)", len(p.Exercises)))
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a plan's exercises in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}

		p, err := repo.GetPlan(id)
		if err != nil {
			return fmt.Errorf("failed to load plan: %w", err)
		}

		fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(p.Name), color.New(color.Faint).Sprintf("#%d", p.ID))
		for i, ex := range p.Exercises {
			marker := ""
			if ex.IsIsolation {
				marker = color.New(color.Faint).Sprint(" (L/R)")
			}
			fmt.Printf("  %d. %s%s\n", i+1, ex.Name, marker)
		}
		return nil
	},
}

var planAddCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a", "create"},
	Short:   "Create a workout plan",
	Long: `Create a workout plan from ordered exercises.

Exercises are given by name or id with repeated -e flags; the flag
order becomes the plan order.

Examples:
  liftlog plan add "Push Day" -e "Bench Press" -e "Overhead Press" -e Dips
  liftlog plan add "Legs" -e Squat -e "Leg Press" -e "Standing Calf Raise"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := resolveExerciseRefs(planExercises)
		if err != nil {
			return err
		}

		p := models.NewPlan(args[0], ids)
		if err := repo.SavePlan(p); err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}

		color.Green("✓ Created plan %q", p.Name)
		fmt.Printf("  %s %d exercises\n", color.New(color.Faint).Sprintf("#%d", p.ID), len(p.Exercises))
		return nil
	},
}

var planEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace a plan's name or exercises",
	Long: `Edit a plan in place. The plan keeps its id, so logged sessions
stay attached. Passing -e flags replaces the whole exercise list;
--name renames.

Examples:
  liftlog plan edit 3 --name "Push Day v2"
  liftlog plan edit 3 -e "Incline Bench Press" -e "Overhead Press"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}

		p, err := repo.GetPlan(id)
		if err != nil {
			return fmt.Errorf("failed to load plan: %w", err)
		}

		if planRename != "" {
			p.Name = planRename
		}
		if len(planExercises) > 0 {
			ids, err := resolveExerciseRefs(planExercises)
			if err != nil {
				return err
			}
			p.Exercises = models.NewPlan(p.Name, ids).Exercises
		}

		if err := repo.SavePlan(p); err != nil {
			return fmt.Errorf("failed to update plan: %w", err)
		}

		color.Green("✓ Updated plan %q", p.Name)
		return nil
	},
}

var planDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a plan (logged sessions are kept)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid plan id: %s", args[0])
		}

		if err := repo.DeletePlan(id); err != nil {
			return fmt.Errorf("failed to delete plan: %w", err)
		}

		color.Green("✓ Deleted plan %d", id)
		fmt.Println("  Logged sessions are kept and shown as (deleted plan).")
		return nil
	},
}

// resolveExerciseRefs maps name-or-id refs to exercise ids.
func resolveExerciseRefs(refs []string) ([]int64, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("at least one -e exercise is required")
	}
	ids := make([]int64, 0, len(refs))
	for _, ref := range refs {
		e, err := resolveExercise(ref)
		if err != nil {
			return nil, fmt.Errorf("exercise %q: %w", ref, err)
		}
		ids = append(ids, e.ID)
	}
	return ids, nil
}

func init() {
	planAddCmd.Flags().StringArrayVarP(&planExercises, "exercise", "e", nil, "exercise name or id (repeatable, ordered)")
	planEditCmd.Flags().StringArrayVarP(&planExercises, "exercise", "e", nil, "replacement exercise list (repeatable, ordered)")
	planEditCmd.Flags().StringVar(&planRename, "name", "", "new plan name")

	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planEditCmd)
	planCmd.AddCommand(planDeleteCmd)
	rootCmd.AddCommand(planCmd)
}
