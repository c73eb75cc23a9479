// ABOUTME: Repository interface for data operations.
// ABOUTME: Allows swapping implementations (SQLite, mock for tests, etc.)
package storage

import (
	"io"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// Repository defines the interface for workout data operations.
type Repository interface {
	// Exercise catalog
	ListExercises(muscleGroup string) ([]*models.Exercise, error)
	GetExercise(id int64) (*models.Exercise, error)
	FindExerciseByName(name string) (*models.Exercise, error)
	SaveCustomExercise(e *models.Exercise) error
	DeleteCustomExercise(id int64) error

	// Plans
	ListPlans() ([]models.Plan, error)
	GetPlan(id int64) (*models.Plan, error)
	SavePlan(p *models.Plan) error
	DeletePlan(id int64) error

	// Sessions
	RecordSession(workoutID int64, entries []models.SessionEntry) (string, error)
	EditSession(date string, workoutID int64, entries []models.SessionEntry) error
	DeleteSession(date string, workoutID int64) error
	ListSessionsByMonth() ([]models.MonthBucket, error)
	SessionDetail(date string, workoutID int64) (*models.Session, error)
	PreviousPerformance(exerciseID int64) (*models.PreviousPerformance, error)
	PreviousForPlan(exerciseIDs []int64) ([]*models.PreviousPerformance, error)

	// Profile
	Profile() (*models.Profile, error)
	SaveProfile(p *models.Profile) error
	SetWeightUnit(unit models.WeightUnit) error

	// Export / import
	Snapshot() (*ExportData, error)
	ExportJSON(w io.Writer) error
	ExportYAML(w io.Writer) error
	ExportMarkdown(w io.Writer) error
	ImportJSON(r io.Reader) error
	Import(data *ExportData) error

	Close() error
}

// Ensure DB implements Repository.
var _ Repository = (*DB)(nil)
