// ABOUTME: Parser for the compact set syntax used on the command line.
// ABOUTME: "100x8", "100x8+1" with half reps, "60xL8/R7" for isolation.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// parseSetSpec parses one set in entry syntax.
func parseSetSpec(spec string) (models.Set, error) {
	var set models.Set

	weightStr, repsStr, ok := strings.Cut(spec, "x")
	if !ok {
		return set, fmt.Errorf("invalid set %q: expected WEIGHTxREPS", spec)
	}

	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil || weight < 0 {
		return set, fmt.Errorf("invalid weight in %q", spec)
	}
	set.Weight = weight

	// Isolation form: L<left>/R<right>
	if strings.HasPrefix(repsStr, "L") {
		left, right, ok := strings.Cut(repsStr[1:], "/R")
		if !ok {
			return set, fmt.Errorf("invalid set %q: expected WxL<n>/R<n>", spec)
		}
		l, err := strconv.Atoi(left)
		if err != nil || l < 0 {
			return set, fmt.Errorf("invalid left reps in %q", spec)
		}
		r, err := strconv.Atoi(right)
		if err != nil || r < 0 {
			return set, fmt.Errorf("invalid right reps in %q", spec)
		}
		set.LeftReps = &l
		set.RightReps = &r
		return set, nil
	}

	// Standard form: reps with optional +half
	full := repsStr
	if fullStr, halfStr, hasHalf := strings.Cut(repsStr, "+"); hasHalf {
		full = fullStr
		h, err := strconv.Atoi(halfStr)
		if err != nil || h < 0 {
			return set, fmt.Errorf("invalid half reps in %q", spec)
		}
		set.HalfReps = h
	}

	reps, err := strconv.Atoi(full)
	if err != nil || reps < 0 {
		return set, fmt.Errorf("invalid reps in %q", spec)
	}
	set.Reps = reps
	return set, nil
}

// parseSetSpecs parses a comma-separated list of sets.
func parseSetSpecs(specs string) ([]models.Set, error) {
	var sets []models.Set
	for _, spec := range strings.Split(specs, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		set, err := parseSetSpec(spec)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("no sets given")
	}
	return sets, nil
}

// parseEntrySpec parses one "-x" entry: "<exercise>=<sets>" where the
// exercise is a name or numeric id.
func parseEntrySpec(spec string) (string, []models.Set, error) {
	exercise, setsStr, ok := strings.Cut(spec, "=")
	if !ok {
		return "", nil, fmt.Errorf("invalid entry %q: expected EXERCISE=SETS", spec)
	}
	exercise = strings.TrimSpace(exercise)
	if exercise == "" {
		return "", nil, fmt.Errorf("invalid entry %q: missing exercise", spec)
	}

	sets, err := parseSetSpecs(setsStr)
	if err != nil {
		return "", nil, fmt.Errorf("entry %q: %w", exercise, err)
	}
	return exercise, sets, nil
}
