// Package history is the storage collaborator for the analysis pipeline: it
// persists workout sessions and personal records in SQLite and hands them out
// as analysis types.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	stderrors "errors"

	"github.com/okotila/liftsight/internal/analysis"
	"github.com/okotila/liftsight/internal/sqlite"
)

// Repository reads and writes the workout log.
type Repository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// NewRepository creates a Repository over the given database.
func NewRepository(db *sqlite.Database, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// List retrieves every workout session, newest first. In-progress sessions
// come along with a zero completion time; the analysis layer decides what to
// do with them.
func (r *Repository) List(ctx context.Context) (_ []analysis.WorkoutSession, err error) {
	query := `
		SELECT id, workout_type, started_at, completed_at, duration_seconds
		FROM sessions
		ORDER BY COALESCE(completed_at, started_at) DESC`

	rows, err := r.db.ReadOnly.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = stderrors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var sessions []analysis.WorkoutSession
	for rows.Next() {
		var (
			session         analysis.WorkoutSession
			completedAt     sql.NullTime
			durationSeconds int64
		)
		if err = rows.Scan(&session.ID, &session.Type, &session.StartedAt, &completedAt, &durationSeconds); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		if completedAt.Valid {
			session.CompletedAt = completedAt.Time
		}
		session.Duration = time.Duration(durationSeconds) * time.Second

		if session.Exercises, err = r.loadExercises(ctx, session.ID); err != nil {
			return nil, fmt.Errorf("load exercises for session %s: %w", session.ID, err)
		}
		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return sessions, nil
}

// loadExercises fetches the exercise logs and their sets for one session.
func (r *Repository) loadExercises(ctx context.Context, sessionID string) (_ []analysis.ExerciseLog, err error) {
	query := `
		SELECT id, name, primary_muscle_group, secondary_muscle_groups, equipment
		FROM exercise_logs
		WHERE session_id = ?
		ORDER BY position`

	rows, err := r.db.ReadOnly.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query exercise logs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = stderrors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	type exerciseRow struct {
		id       int64
		exercise analysis.ExerciseLog
	}
	var exerciseRows []exerciseRow
	for rows.Next() {
		var (
			row         exerciseRow
			secondaries string
		)
		if err = rows.Scan(&row.id, &row.exercise.Name, &row.exercise.PrimaryMuscleGroup,
			&secondaries, &row.exercise.Equipment); err != nil {
			return nil, fmt.Errorf("scan exercise row: %w", err)
		}
		row.exercise.SecondaryMuscleGroups = splitGroups(secondaries)
		exerciseRows = append(exerciseRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	exercises := make([]analysis.ExerciseLog, 0, len(exerciseRows))
	for _, row := range exerciseRows {
		if row.exercise.Sets, err = r.loadSets(ctx, row.id); err != nil {
			return nil, fmt.Errorf("load sets for exercise %s: %w", row.exercise.Name, err)
		}
		exercises = append(exercises, row.exercise)
	}
	return exercises, nil
}

// loadSets fetches the set records of one exercise log.
func (r *Repository) loadSets(ctx context.Context, exerciseLogID int64) (_ []analysis.SetRecord, err error) {
	query := `
		SELECT target_reps, target_weight_kg, target_duration_seconds,
		       actual_reps, actual_weight_kg, actual_duration_seconds,
		       completed, personal_record
		FROM set_records
		WHERE exercise_log_id = ?
		ORDER BY position`

	rows, err := r.db.ReadOnly.QueryContext(ctx, query, exerciseLogID)
	if err != nil {
		return nil, fmt.Errorf("query set records: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = stderrors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	sets := []analysis.SetRecord{}
	for rows.Next() {
		var (
			set                   analysis.SetRecord
			targetDurationSeconds int64
			actualReps            sql.NullInt64
			actualWeight          sql.NullFloat64
			actualDurationSeconds sql.NullInt64
		)
		if err = rows.Scan(&set.TargetReps, &set.TargetWeightKg, &targetDurationSeconds,
			&actualReps, &actualWeight, &actualDurationSeconds,
			&set.Completed, &set.PersonalRecord); err != nil {
			return nil, fmt.Errorf("scan set row: %w", err)
		}
		set.TargetDuration = time.Duration(targetDurationSeconds) * time.Second
		if actualReps.Valid {
			reps := int(actualReps.Int64)
			set.ActualReps = &reps
		}
		if actualWeight.Valid {
			weight := actualWeight.Float64
			set.ActualWeightKg = &weight
		}
		if actualDurationSeconds.Valid {
			duration := time.Duration(actualDurationSeconds.Int64) * time.Second
			set.ActualDuration = &duration
		}
		sets = append(sets, set)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return sets, nil
}

// ListRecords retrieves the personal-record log ordered oldest first.
func (r *Repository) ListRecords(ctx context.Context) (_ []analysis.PersonalRecord, err error) {
	query := `
		SELECT exercise, value, metric, achieved_at
		FROM personal_records
		ORDER BY achieved_at, id`

	rows, err := r.db.ReadOnly.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query personal records: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = stderrors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var records []analysis.PersonalRecord
	for rows.Next() {
		var (
			record analysis.PersonalRecord
			metric string
		)
		if err = rows.Scan(&record.Exercise, &record.Value, &metric, &record.AchievedAt); err != nil {
			return nil, fmt.Errorf("scan record row: %w", err)
		}
		record.Metric = analysis.MetricType(metric)
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return records, nil
}

func splitGroups(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	groups := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			groups = append(groups, p)
		}
	}
	return groups
}

func joinGroups(groups []string) string {
	return strings.Join(groups, ",")
}
