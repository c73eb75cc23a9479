// ABOUTME: CLI commands for the exercise catalog.
// ABOUTME: List with muscle filter, add custom, delete custom.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseMuscle    string
	exerciseEquipment string
	exerciseIsolation bool
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"exercises", "ex"},
	Short:   "Manage the exercise catalog",
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List exercises",
	Long: `List the exercise catalog. Custom exercises come first, then presets
grouped by muscle.

Examples:
  liftlog exercise list
  liftlog exercise list -m chest
  liftlog exercise list --muscle legs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No muscle validation here: custom exercises may carry any tag.
		exercises, err := repo.ListExercises(exerciseMuscle)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			tags := string(e.EquipmentType)
			if e.IsIsolation {
				tags += ", L/R"
			}
			custom := ""
			if e.IsCustom {
				custom = color.New(color.FgCyan).Sprint(" [custom]")
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprintf("#%-3d", e.ID),
				padRight(e.Name, 32),
				faint.Sprintf("%-10s (%s)", e.MuscleGroup, tags),
				custom)
		}
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a"},
	Short:   "Add a custom exercise",
	Long: `Add a custom exercise to the catalog.

Examples:
  liftlog exercise add "Zercher Squat" -m legs --equipment free-weight
  liftlog exercise add "Band Pull-Apart" -m shoulders --equipment bodyweight
  liftlog exercise add "Kickback" -m arms --equipment machine --isolation`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exerciseMuscle != "" && !models.IsValidMuscleGroup(exerciseMuscle) {
			return fmt.Errorf("unknown muscle group: %s", exerciseMuscle)
		}
		if exerciseEquipment != "" && !models.IsValidEquipmentType(exerciseEquipment) {
			return fmt.Errorf("unknown equipment type: %s\nValid types: free-weight, machine, bodyweight", exerciseEquipment)
		}

		e := models.NewCustomExercise(args[0], exerciseMuscle, models.EquipmentType(exerciseEquipment), exerciseIsolation)
		if err := repo.SaveCustomExercise(e); err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %q", e.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("#%d", e.ID))
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a custom exercise (presets cannot be deleted)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exercise id: %s", args[0])
		}

		if err := repo.DeleteCustomExercise(id); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}

		color.Green("✓ Deleted exercise %d", id)
		fmt.Println("  Logged sets are kept and shown as (deleted exercise).")
		return nil
	},
}

func init() {
	exerciseListCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "filter by muscle group")
	exerciseAddCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "muscle group")
	exerciseAddCmd.Flags().StringVar(&exerciseEquipment, "equipment", "", "free-weight, machine or bodyweight")
	exerciseAddCmd.Flags().BoolVar(&exerciseIsolation, "isolation", false, "log per-limb left/right reps")

	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
