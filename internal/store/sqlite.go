// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/calibra-quiz/backend/internal/domain/quizrun"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    current_index INTEGER NOT NULL DEFAULT 0,
    committed INTEGER NOT NULL DEFAULT 0,
    unit_system TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_answers (
    run_id TEXT NOT NULL,
    question_id TEXT NOT NULL,
    lower_bound REAL NOT NULL,
    upper_bound REAL NOT NULL,
    PRIMARY KEY (run_id, question_id),
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS global_stats (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    total_runs INTEGER NOT NULL DEFAULT 0,
    total_correct INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS question_stats (
    question_id TEXT PRIMARY KEY,
    attempts INTEGER NOT NULL DEFAULT 0,
    correct INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteStore persists runs and the cross-run statistics. statsMu
// serializes stats read-modify-write cycles so concurrent commits
// cannot lose updates.
type SQLiteStore struct {
	db      *sql.DB
	statsMu sync.Mutex
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Runs
// ============================================================================

func (s *SQLiteStore) CreateRun(ctx context.Context, run *quizrun.Run) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, current_index, committed, unit_system, created_at) VALUES (?, ?, ?, ?, ?)",
		run.ID, run.CurrentIndex, run.Committed, string(run.UnitSystem), time.Now().Unix(),
	)
	return err
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*quizrun.Run, error) {
	var run quizrun.Run
	var unitSystem string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, current_index, committed, unit_system FROM runs WHERE id = ?", id,
	).Scan(&run.ID, &run.CurrentIndex, &run.Committed, &unitSystem)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	run.UnitSystem = quizrun.UnitSystem(unitSystem)
	run.Answers = make(map[string]quizrun.Interval)

	rows, err := s.db.QueryContext(ctx,
		"SELECT question_id, lower_bound, upper_bound FROM run_answers WHERE run_id = ?", id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var questionID string
		var iv quizrun.Interval
		if err := rows.Scan(&questionID, &iv.Lower, &iv.Upper); err != nil {
			return nil, err
		}
		run.Answers[questionID] = iv
	}
	return &run, rows.Err()
}

// ResetRun forces an existing run back to fresh: index zero, nothing
// committed, no unit preference, all answers discarded.
func (s *SQLiteStore) ResetRun(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE runs SET current_index = 0, committed = 0, unit_system = '' WHERE id = ?", id,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM run_answers WHERE run_id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

// SaveAnswer stores one captured interval and advances the run's index
// in the same transaction, so a reload never sees one without the other.
func (s *SQLiteStore) SaveAnswer(ctx context.Context, runID, questionID string, iv quizrun.Interval, newIndex int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO run_answers (run_id, question_id, lower_bound, upper_bound) VALUES (?, ?, ?, ?)
		 ON CONFLICT (run_id, question_id) DO UPDATE SET lower_bound = excluded.lower_bound, upper_bound = excluded.upper_bound`,
		runID, questionID, iv.Lower, iv.Upper,
	)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "UPDATE runs SET current_index = ? WHERE id = ?", newIndex, runID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func (s *SQLiteStore) SetUnitSystem(ctx context.Context, runID string, us quizrun.UnitSystem) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE runs SET unit_system = ? WHERE id = ?", string(us), runID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ============================================================================
// Cumulative statistics
// ============================================================================

// LoadStats reads the cross-run aggregate. A store with no committed
// runs yields zero counts rather than an error.
func (s *SQLiteStore) LoadStats(ctx context.Context) (Stats, error) {
	stats := Stats{PerQuestion: make(map[string]QuestionTally)}

	err := s.db.QueryRowContext(ctx,
		"SELECT total_runs, total_correct FROM global_stats WHERE id = 1",
	).Scan(&stats.TotalRuns, &stats.TotalCorrect)
	if err != nil && err != sql.ErrNoRows {
		return Stats{}, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT question_id, attempts, correct FROM question_stats")
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var questionID string
		var tally QuestionTally
		if err := rows.Scan(&questionID, &tally.Attempts, &tally.Correct); err != nil {
			return Stats{}, err
		}
		stats.PerQuestion[questionID] = tally
	}
	return stats, rows.Err()
}

// CommitRun folds one completed run into the cumulative statistics:
// total_runs gains 1, every answered question gains one attempt, and
// correct answers gain one correct mark. The run's committed flag is
// flipped in the same transaction and guards the whole delta, so a
// second call for the same run applies nothing and returns false.
func (s *SQLiteStore) CommitRun(ctx context.Context, runID string, correct map[string]bool) (bool, error) {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE runs SET committed = 1 WHERE id = ? AND committed = 0", runID,
	)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rowsAffected == 0 {
		// Already committed (or unknown run): nothing to fold in.
		return false, nil
	}

	correctCount := 0
	for _, ok := range correct {
		if ok {
			correctCount++
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO global_stats (id, total_runs, total_correct) VALUES (1, 1, ?)
		 ON CONFLICT (id) DO UPDATE SET total_runs = total_runs + 1, total_correct = total_correct + excluded.total_correct`,
		correctCount,
	)
	if err != nil {
		return false, err
	}

	for questionID, ok := range correct {
		gain := 0
		if ok {
			gain = 1
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO question_stats (question_id, attempts, correct) VALUES (?, 1, ?)
			 ON CONFLICT (question_id) DO UPDATE SET attempts = attempts + 1, correct = correct + excluded.correct`,
			questionID, gain,
		)
		if err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
