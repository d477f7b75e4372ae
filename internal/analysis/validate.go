package analysis

import (
	"log/slog"

	"github.com/okotila/liftsight/internal/errors"
)

// ErrInvalidSession is the root cause of every session validation failure.
var ErrInvalidSession = errors.NewSentinel("invalid workout session")

// ValidateSessions checks the structural contract of the input history.
// This is the only fatal condition in the package: a malformed session fails
// fast with a descriptive error instead of producing silently wrong scores.
// Degenerate but well-formed input (empty history, sessions without completed
// sets) is always accepted.
func ValidateSessions(sessions []WorkoutSession) error {
	for i, s := range sessions {
		if s.ID == "" {
			return errors.Wrap(ErrInvalidSession, "session has no identifier",
				slog.Int("index", i))
		}
		if s.StartedAt.IsZero() {
			return errors.Wrap(ErrInvalidSession, "session has no start timestamp",
				slog.String("session", s.ID))
		}
		if s.Exercises == nil {
			return errors.Wrap(ErrInvalidSession, "session is missing its exercise list",
				slog.String("session", s.ID))
		}
		for j, ex := range s.Exercises {
			if ex.Name == "" {
				return errors.Wrap(ErrInvalidSession, "exercise has no name",
					slog.String("session", s.ID), slog.Int("exercise", j))
			}
			if ex.Sets == nil {
				return errors.Wrap(ErrInvalidSession, "exercise is missing its set list",
					slog.String("session", s.ID), slog.String("exercise", ex.Name))
			}
		}
	}
	return nil
}
