package store

import (
	"context"
	"errors"

	"github.com/calibra-quiz/backend/internal/domain/quizrun"
)

var (
	ErrNotFound = errors.New("not found")
)

// QuestionTally is the cumulative record for one question across all
// committed runs. Correct never exceeds Attempts.
type QuestionTally struct {
	Attempts int
	Correct  int
}

// Stats is the durable cross-run aggregate, shared by all sessions.
type Stats struct {
	TotalRuns    int
	TotalCorrect int
	PerQuestion  map[string]QuestionTally
}

// Store is the persistence surface the handlers and services depend on.
type Store interface {
	// Runs.
	CreateRun(ctx context.Context, run *quizrun.Run) error
	GetRun(ctx context.Context, id string) (*quizrun.Run, error)
	ResetRun(ctx context.Context, id string) error
	SaveAnswer(ctx context.Context, runID, questionID string, iv quizrun.Interval, newIndex int) error
	SetUnitSystem(ctx context.Context, runID string, us quizrun.UnitSystem) error

	// Cumulative statistics.
	LoadStats(ctx context.Context) (Stats, error)
	CommitRun(ctx context.Context, runID string, correct map[string]bool) (bool, error)
}
