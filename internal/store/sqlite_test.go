package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/calibra-quiz/backend/internal/domain/quizrun"
	"github.com/calibra-quiz/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRunRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := quizrun.New()
	run.UnitSystem = quizrun.UnitMetric
	if err := s.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	if err := s.SaveAnswer(ctx, run.ID, "q1", quizrun.Interval{Lower: 1, Upper: 2}, 1); err != nil {
		t.Fatalf("SaveAnswer: %v", err)
	}
	if err := s.SaveAnswer(ctx, run.ID, "q2", quizrun.Interval{Lower: 3.5, Upper: 4.5}, 2); err != nil {
		t.Fatalf("SaveAnswer: %v", err)
	}

	got, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.CurrentIndex != 2 {
		t.Errorf("current index = %d, want 2", got.CurrentIndex)
	}
	if got.UnitSystem != quizrun.UnitMetric {
		t.Errorf("unit system = %q, want metric", got.UnitSystem)
	}
	if len(got.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(got.Answers))
	}
	if iv := got.Answers["q2"]; iv.Lower != 3.5 || iv.Upper != 4.5 {
		t.Errorf("q2 interval = %+v, want [3.5,4.5]", iv)
	}
}

func TestGetRun_Unknown(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetRun(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestResetRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := quizrun.New()
	if err := s.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if err := s.SaveAnswer(ctx, run.ID, "q1", quizrun.Interval{Lower: 1, Upper: 2}, 1); err != nil {
		t.Fatalf("SaveAnswer: %v", err)
	}
	if err := s.SetUnitSystem(ctx, run.ID, quizrun.UnitImperial); err != nil {
		t.Fatalf("SetUnitSystem: %v", err)
	}

	if err := s.ResetRun(ctx, run.ID); err != nil {
		t.Fatalf("ResetRun: %v", err)
	}

	got, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.CurrentIndex != 0 || got.Committed || got.UnitSystem != "" || len(got.Answers) != 0 {
		t.Errorf("run after reset = %+v, want fresh", got)
	}
}

func TestResetRun_Unknown(t *testing.T) {
	s := newTestStore(t)

	if err := s.ResetRun(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestLoadStats_EmptyStore(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.LoadStats(context.Background())
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.TotalRuns != 0 || stats.TotalCorrect != 0 {
		t.Errorf("stats = %+v, want zero counts", stats)
	}
	if len(stats.PerQuestion) != 0 {
		t.Errorf("per-question stats = %v, want empty map", stats.PerQuestion)
	}
}

func TestCommitRun_FoldsAndIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := quizrun.New()
	if err := s.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	correct := map[string]bool{"q1": true, "q2": false, "q3": true}

	applied, err := s.CommitRun(ctx, run.ID, correct)
	if err != nil {
		t.Fatalf("CommitRun: %v", err)
	}
	if !applied {
		t.Fatal("first commit should apply")
	}

	// Same run again: nothing may be folded in twice.
	applied, err = s.CommitRun(ctx, run.ID, correct)
	if err != nil {
		t.Fatalf("CommitRun (second): %v", err)
	}
	if applied {
		t.Error("second commit should be a no-op")
	}

	stats, err := s.LoadStats(ctx)
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.TotalRuns != 1 {
		t.Errorf("total runs = %d, want 1", stats.TotalRuns)
	}
	if stats.TotalCorrect != 2 {
		t.Errorf("total correct = %d, want 2", stats.TotalCorrect)
	}
	if tally := stats.PerQuestion["q1"]; tally.Attempts != 1 || tally.Correct != 1 {
		t.Errorf("q1 tally = %+v, want 1/1", tally)
	}
	if tally := stats.PerQuestion["q2"]; tally.Attempts != 1 || tally.Correct != 0 {
		t.Errorf("q2 tally = %+v, want 1/0", tally)
	}

	got, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if !got.Committed {
		t.Error("run should be marked committed")
	}
}

func TestCommitRun_AccumulatesAcrossRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		run := quizrun.New()
		if err := s.CreateRun(ctx, run); err != nil {
			t.Fatalf("CreateRun: %v", err)
		}
		if _, err := s.CommitRun(ctx, run.ID, map[string]bool{"q1": i%2 == 0}); err != nil {
			t.Fatalf("CommitRun: %v", err)
		}
	}

	stats, err := s.LoadStats(ctx)
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.TotalRuns != 3 {
		t.Errorf("total runs = %d, want 3", stats.TotalRuns)
	}
	if stats.TotalCorrect != 2 {
		t.Errorf("total correct = %d, want 2", stats.TotalCorrect)
	}
	if tally := stats.PerQuestion["q1"]; tally.Attempts != 3 || tally.Correct != 2 {
		t.Errorf("q1 tally = %+v, want 3/2", tally)
	}
}

func TestCommitRun_UnknownRun(t *testing.T) {
	s := newTestStore(t)

	applied, err := s.CommitRun(context.Background(), "missing", map[string]bool{"q1": true})
	if err != nil {
		t.Fatalf("CommitRun: %v", err)
	}
	if applied {
		t.Error("commit of unknown run should be a no-op")
	}
}
