// ABOUTME: CLI commands for the user profile.
// ABOUTME: Show and update name and weight unit preference.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileFirst string
	profileLast  string
	profileUnit  string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.Profile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		name := fmt.Sprintf("%s %s", p.FirstName, p.LastName)
		if p.FirstName == "" && p.LastName == "" {
			name = color.New(color.Faint).Sprint("(not set)")
		}
		fmt.Printf("Name:        %s\n", name)
		fmt.Printf("Weight unit: %s\n", p.WeightUnit)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Update profile fields. Only the flags you pass change; stored
weights are never converted when the unit changes.

Examples:
  liftlog profile set --first Ada --last Lovelace
  liftlog profile set --unit lbs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileFirst == "" && profileLast == "" && profileUnit == "" {
			return fmt.Errorf("nothing to update: pass --first, --last or --unit")
		}

		p, err := repo.Profile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		if profileFirst != "" {
			p.FirstName = profileFirst
		}
		if profileLast != "" {
			p.LastName = profileLast
		}
		if profileUnit != "" {
			if !models.IsValidWeightUnit(profileUnit) {
				return fmt.Errorf("unknown weight unit: %s (use kg or lbs)", profileUnit)
			}
			p.WeightUnit = models.WeightUnit(profileUnit)
		}

		if err := repo.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileFirst, "first", "", "first name")
	profileSetCmd.Flags().StringVar(&profileLast, "last", "", "last name")
	profileSetCmd.Flags().StringVar(&profileUnit, "unit", "", "weight unit: kg or lbs")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
