// ABOUTME: User profile persistence. The users table holds exactly one
// ABOUTME: row (id = 1), enforced by a CHECK constraint and upserts.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// Profile returns the stored profile, or a default (kg, empty names)
// when none has been saved yet.
func (d *DB) Profile() (*models.Profile, error) {
	var p models.Profile
	var first, last, unit sql.NullString

	err := d.db.QueryRow(`
		SELECT first_name, last_name, weight_unit
		FROM users
		WHERE id = 1
	`).Scan(&first, &last, &unit)
	if errors.Is(err, sql.ErrNoRows) {
		p.WeightUnit = models.WeightUnitKg
		return &p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	p.FirstName = first.String
	p.LastName = last.String
	p.WeightUnit = models.WeightUnit(unit.String)
	if p.WeightUnit == "" {
		p.WeightUnit = models.WeightUnitKg
	}
	return &p, nil
}

// SaveProfile writes the whole profile in one upsert.
func (d *DB) SaveProfile(p *models.Profile) error {
	if p.WeightUnit != "" && !models.IsValidWeightUnit(string(p.WeightUnit)) {
		return fmt.Errorf("save profile: invalid weight unit %q", p.WeightUnit)
	}
	unit := p.WeightUnit
	if unit == "" {
		unit = models.WeightUnitKg
	}

	_, err := d.db.Exec(`
		INSERT INTO users (id, first_name, last_name, weight_unit)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			weight_unit = excluded.weight_unit
	`, p.FirstName, p.LastName, string(unit))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// SetWeightUnit updates only the display unit, preserving names. Stored
// weights are never converted; the unit is a display preference.
func (d *DB) SetWeightUnit(unit models.WeightUnit) error {
	if !models.IsValidWeightUnit(string(unit)) {
		return fmt.Errorf("set weight unit: invalid unit %q", unit)
	}

	_, err := d.db.Exec(`
		INSERT INTO users (id, weight_unit)
		VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET weight_unit = excluded.weight_unit
	`, string(unit))
	if err != nil {
		return fmt.Errorf("set weight unit: %w", err)
	}
	return nil
}
