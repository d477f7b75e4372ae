package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	stderrors "errors"

	"github.com/google/uuid"
)

// Import file format. Timestamps are RFC 3339; durations are plain seconds.

type importFile struct {
	Sessions        []sessionDTO `json:"sessions"`
	PersonalRecords []recordDTO  `json:"personal_records"`
}

type sessionDTO struct {
	ID              string        `json:"id"`
	Type            string        `json:"type"`
	StartedAt       time.Time     `json:"started_at"`
	CompletedAt     *time.Time    `json:"completed_at"`
	DurationSeconds int64         `json:"duration_seconds"`
	Exercises       []exerciseDTO `json:"exercises"`
}

type exerciseDTO struct {
	Name                  string   `json:"name"`
	PrimaryMuscleGroup    string   `json:"primary_muscle_group"`
	SecondaryMuscleGroups []string `json:"secondary_muscle_groups"`
	Equipment             string   `json:"equipment"`
	Sets                  []setDTO `json:"sets"`
}

type setDTO struct {
	TargetReps            int      `json:"target_reps"`
	TargetWeightKg        float64  `json:"target_weight_kg"`
	TargetDurationSeconds int64    `json:"target_duration_seconds"`
	ActualReps            *int     `json:"actual_reps"`
	ActualWeightKg        *float64 `json:"actual_weight_kg"`
	ActualDurationSeconds *int64   `json:"actual_duration_seconds"`
	Completed             bool     `json:"completed"`
	PersonalRecord        bool     `json:"personal_record"`
}

type recordDTO struct {
	Exercise   string    `json:"exercise"`
	Value      float64   `json:"value"`
	Metric     string    `json:"metric"`
	AchievedAt time.Time `json:"achieved_at"`
}

// ImportSummary reports what an import run wrote.
type ImportSummary struct {
	Sessions int
	Records  int
}

// Import loads a JSON workout log into the database in one transaction.
// Sessions without an identifier get a generated one; sessions that already
// exist are replaced wholesale together with their exercises and sets.
func (r *Repository) Import(ctx context.Context, path string) (_ ImportSummary, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("read import file: %w", err)
	}
	var file importFile
	if err = json.Unmarshal(data, &file); err != nil {
		return ImportSummary{}, fmt.Errorf("parse import file: %w", err)
	}

	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !stderrors.Is(rollbackErr, sql.ErrTxDone) {
			err = stderrors.Join(err, fmt.Errorf("rollback transaction: %w", rollbackErr))
		}
	}()

	for i := range file.Sessions {
		if file.Sessions[i].ID == "" {
			file.Sessions[i].ID = uuid.NewString()
		}
		if err = importSession(ctx, tx, file.Sessions[i]); err != nil {
			return ImportSummary{}, fmt.Errorf("import session %s: %w", file.Sessions[i].ID, err)
		}
	}
	for _, record := range file.PersonalRecords {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO personal_records (exercise, value, metric, achieved_at)
			VALUES (?, ?, ?, ?)`,
			record.Exercise, record.Value, record.Metric, record.AchievedAt); err != nil {
			return ImportSummary{}, fmt.Errorf("import record for %s: %w", record.Exercise, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return ImportSummary{}, fmt.Errorf("commit transaction: %w", err)
	}

	summary := ImportSummary{Sessions: len(file.Sessions), Records: len(file.PersonalRecords)}
	r.logger.LogAttrs(ctx, slog.LevelInfo, "imported workout log",
		slog.String("path", path),
		slog.Int("sessions", summary.Sessions),
		slog.Int("records", summary.Records))
	return summary, nil
}

func importSession(ctx context.Context, tx *sql.Tx, session sessionDTO) error {
	// Replacing a session drops its old exercises and sets via the foreign
	// keys, so re-imports stay idempotent.
	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, session.ID); err != nil {
		return fmt.Errorf("delete existing session: %w", err)
	}

	var completedAt any
	if session.CompletedAt != nil {
		completedAt = *session.CompletedAt
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sessions (id, workout_type, started_at, completed_at, duration_seconds)
		VALUES (?, ?, ?, ?, ?)`,
		session.ID, session.Type, session.StartedAt, completedAt, session.DurationSeconds); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	for position, exercise := range session.Exercises {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO exercise_logs (session_id, position, name, primary_muscle_group, secondary_muscle_groups, equipment)
			VALUES (?, ?, ?, ?, ?, ?)`,
			session.ID, position, exercise.Name, exercise.PrimaryMuscleGroup,
			joinGroups(exercise.SecondaryMuscleGroups), exercise.Equipment)
		if err != nil {
			return fmt.Errorf("insert exercise %s: %w", exercise.Name, err)
		}
		exerciseLogID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("exercise log id: %w", err)
		}

		for setPosition, set := range exercise.Sets {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO set_records (exercise_log_id, position, target_reps, target_weight_kg, target_duration_seconds,
				                         actual_reps, actual_weight_kg, actual_duration_seconds, completed, personal_record)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				exerciseLogID, setPosition, set.TargetReps, set.TargetWeightKg, set.TargetDurationSeconds,
				set.ActualReps, set.ActualWeightKg, set.ActualDurationSeconds,
				set.Completed, set.PersonalRecord); err != nil {
				return fmt.Errorf("insert set %d of %s: %w", setPosition, exercise.Name, err)
			}
		}
	}
	return nil
}
