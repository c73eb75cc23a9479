// ABOUTME: Preset exercise catalog and idempotent seed import.
// ABOUTME: Runs once on first open; existing databases are left untouched.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/liftlog-dev/liftlog/internal/models"
)

type presetExercise struct {
	name        string
	muscleGroup string
	equipment   models.EquipmentType
	isolation   bool
}

// The preset catalog. Isolation marks movements logged with independent
// left/right rep counts.
var presetCatalog = []presetExercise{
	// chest
	{"Bench Press", models.MuscleChest, models.EquipmentFreeWeight, false},
	{"Incline Bench Press", models.MuscleChest, models.EquipmentFreeWeight, false},
	{"Decline Bench Press", models.MuscleChest, models.EquipmentFreeWeight, false},
	{"Dumbbell Chest Press", models.MuscleChest, models.EquipmentFreeWeight, false},
	{"Incline Dumbbell Press", models.MuscleChest, models.EquipmentFreeWeight, false},
	{"Dumbbell Chest Fly", models.MuscleChest, models.EquipmentFreeWeight, false},
	{"Machine Chest Press", models.MuscleChest, models.EquipmentMachine, false},
	{"Machine Chest Fly", models.MuscleChest, models.EquipmentMachine, false},
	{"Pec Deck", models.MuscleChest, models.EquipmentMachine, false},
	{"Cable Chest Press", models.MuscleChest, models.EquipmentMachine, false},
	{"Push-Up", models.MuscleChest, models.EquipmentBodyweight, false},
	{"Dips", models.MuscleChest, models.EquipmentBodyweight, false},

	// back
	{"Deadlift", models.MuscleBack, models.EquipmentFreeWeight, false},
	{"Pull-Up", models.MuscleBack, models.EquipmentBodyweight, false},
	{"Chin-Up", models.MuscleBack, models.EquipmentBodyweight, false},
	{"Lat Pulldown", models.MuscleBack, models.EquipmentMachine, false},
	{"Close-Grip Lat Pulldown", models.MuscleBack, models.EquipmentMachine, false},
	{"Single-Arm Lat Pulldown", models.MuscleBack, models.EquipmentMachine, true},
	{"Straight Arm Pulldown", models.MuscleBack, models.EquipmentMachine, false},
	{"Barbell Row", models.MuscleBack, models.EquipmentFreeWeight, false},
	{"Dumbbell Row", models.MuscleBack, models.EquipmentFreeWeight, true},
	{"Seated Cable Row", models.MuscleBack, models.EquipmentMachine, false},
	{"T-Bar Row", models.MuscleBack, models.EquipmentFreeWeight, false},
	{"Bent Over Row", models.MuscleBack, models.EquipmentFreeWeight, false},
	{"Meadows Row", models.MuscleBack, models.EquipmentFreeWeight, false},
	{"Chest-Supported Row", models.MuscleBack, models.EquipmentMachine, false},
	{"Inverted Row", models.MuscleBack, models.EquipmentBodyweight, false},
	{"Back Extension", models.MuscleBack, models.EquipmentBodyweight, false},
	{"Dumbbell Shrugs", models.MuscleBack, models.EquipmentFreeWeight, false},
	{"Barbell Shrugs", models.MuscleBack, models.EquipmentFreeWeight, false},
	{"Rack Pulls", models.MuscleBack, models.EquipmentFreeWeight, false},

	// shoulders
	{"Overhead Press", models.MuscleShoulders, models.EquipmentFreeWeight, false},
	{"Dumbbell Shoulder Press", models.MuscleShoulders, models.EquipmentFreeWeight, false},
	{"Arnold Press", models.MuscleShoulders, models.EquipmentFreeWeight, false},
	{"Dumbbell Lateral Raise", models.MuscleShoulders, models.EquipmentFreeWeight, true},
	{"Dumbbell Front Raise", models.MuscleShoulders, models.EquipmentFreeWeight, true},
	{"Dumbbell Rear Delt Row", models.MuscleShoulders, models.EquipmentFreeWeight, true},
	{"Face Pull", models.MuscleShoulders, models.EquipmentMachine, false},
	{"Reverse Pec Deck", models.MuscleShoulders, models.EquipmentMachine, false},
	{"Cable Lateral Raise", models.MuscleShoulders, models.EquipmentMachine, false},
	{"Machine Shoulder Press", models.MuscleShoulders, models.EquipmentMachine, false},
	{"Push Press", models.MuscleShoulders, models.EquipmentFreeWeight, false},
	{"Upright Row", models.MuscleShoulders, models.EquipmentFreeWeight, false},

	// arms
	{"Barbell Curl", models.MuscleArms, models.EquipmentFreeWeight, false},
	{"Dumbbell Curl", models.MuscleArms, models.EquipmentFreeWeight, true},
	{"Hammer Curl", models.MuscleArms, models.EquipmentFreeWeight, true},
	{"Incline Dumbbell Curl", models.MuscleArms, models.EquipmentFreeWeight, true},
	{"Preacher Curl", models.MuscleArms, models.EquipmentFreeWeight, false},
	{"Spider Curl", models.MuscleArms, models.EquipmentFreeWeight, false},
	{"Concentration Curl", models.MuscleArms, models.EquipmentFreeWeight, true},
	{"Cable Curl", models.MuscleArms, models.EquipmentMachine, false},
	{"Machine Bicep Curl", models.MuscleArms, models.EquipmentMachine, false},
	{"Tricep Pushdown (Bar)", models.MuscleArms, models.EquipmentMachine, false},
	{"Tricep Pushdown (Rope)", models.MuscleArms, models.EquipmentMachine, false},
	{"Skull Crushers", models.MuscleArms, models.EquipmentFreeWeight, false},
	{"Overhead Cable Extension", models.MuscleArms, models.EquipmentMachine, false},
	{"Dumbbell Overhead Extension", models.MuscleArms, models.EquipmentFreeWeight, false},
	{"Close-Grip Bench Press", models.MuscleArms, models.EquipmentFreeWeight, false},
	{"JM Press", models.MuscleArms, models.EquipmentFreeWeight, false},
	{"Bench Dip", models.MuscleArms, models.EquipmentBodyweight, false},
	{"Diamond Push-Up", models.MuscleArms, models.EquipmentBodyweight, false},

	// legs
	{"Squat", models.MuscleLegs, models.EquipmentFreeWeight, false},
	{"Front Squat", models.MuscleLegs, models.EquipmentFreeWeight, false},
	{"Leg Press", models.MuscleLegs, models.EquipmentMachine, false},
	{"Leg Extension", models.MuscleLegs, models.EquipmentMachine, false},
	{"Lying Leg Curl", models.MuscleLegs, models.EquipmentMachine, false},
	{"Seated Leg Curl", models.MuscleLegs, models.EquipmentMachine, false},
	{"Romanian Deadlift", models.MuscleLegs, models.EquipmentFreeWeight, false},
	{"Bulgarian Split Squat", models.MuscleLegs, models.EquipmentFreeWeight, true},
	{"Goblet Squat", models.MuscleLegs, models.EquipmentFreeWeight, false},
	{"Lunges", models.MuscleLegs, models.EquipmentFreeWeight, true},
	{"Hack Squat", models.MuscleLegs, models.EquipmentMachine, false},
	{"Step-Ups", models.MuscleLegs, models.EquipmentFreeWeight, true},
	{"Sissy Squat", models.MuscleLegs, models.EquipmentBodyweight, false},
	{"Sumo Squat", models.MuscleLegs, models.EquipmentFreeWeight, false},

	// glutes
	{"Hip Thrust", models.MuscleGlutes, models.EquipmentFreeWeight, false},
	{"Glute Bridge", models.MuscleGlutes, models.EquipmentFreeWeight, false},
	{"Cable Glute Kickback", models.MuscleGlutes, models.EquipmentMachine, true},
	{"Hip Abduction Machine", models.MuscleGlutes, models.EquipmentMachine, false},

	// abs
	{"Plank", models.MuscleAbs, models.EquipmentBodyweight, false},
	{"Crunch", models.MuscleAbs, models.EquipmentBodyweight, false},
	{"Leg Raise", models.MuscleAbs, models.EquipmentBodyweight, false},
	{"Hanging Leg Raise", models.MuscleAbs, models.EquipmentBodyweight, false},
	{"Cable Crunch", models.MuscleAbs, models.EquipmentMachine, false},
	{"Russian Twist", models.MuscleAbs, models.EquipmentFreeWeight, false},
	{"Bicycle Crunch", models.MuscleAbs, models.EquipmentBodyweight, false},
	{"Dead Bug", models.MuscleAbs, models.EquipmentBodyweight, false},
	{"Ab Wheel Rollout", models.MuscleAbs, models.EquipmentFreeWeight, false},
	{"Pallof Press", models.MuscleAbs, models.EquipmentMachine, false},
	{"Woodchoppers", models.MuscleAbs, models.EquipmentMachine, false},

	// calves
	{"Standing Calf Raise", models.MuscleCalves, models.EquipmentMachine, false},
	{"Seated Calf Raise", models.MuscleCalves, models.EquipmentMachine, false},
	{"Calf Raise in Leg Press", models.MuscleCalves, models.EquipmentMachine, false},

	// forearms
	{"Barbell Wrist Curl", models.MuscleForearms, models.EquipmentFreeWeight, false},
	{"Farmers Walk", models.MuscleForearms, models.EquipmentFreeWeight, false},
}

// importPresets seeds the exercise catalog exactly once. A non-empty
// exercises table means a previous run already imported (or the user has
// data), so the whole pass is skipped. The per-row INSERT OR IGNORE keeps
// the import idempotent even without the cheap precondition.
func (d *DB) importPresets() error {
	var count int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM exercises`).Scan(&count); err != nil {
		return fmt.Errorf("count exercises: %w", err)
	}
	if count > 0 {
		return nil
	}

	return d.inTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT OR IGNORE INTO exercises (name, muscle_group, equipment_type, is_custom, is_isolation)
			VALUES (?, ?, ?, 0, ?)
		`)
		if err != nil {
			return fmt.Errorf("prepare seed insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range presetCatalog {
			if _, err := stmt.Exec(p.name, p.muscleGroup, string(p.equipment), boolToInt(p.isolation)); err != nil {
				return fmt.Errorf("seed %q: %w", p.name, err)
			}
		}
		return nil
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
