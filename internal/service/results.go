// internal/service/results.go
package service

import (
	"context"
	"log/slog"

	"github.com/calibra-quiz/backend/internal/domain/catalog"
	"github.com/calibra-quiz/backend/internal/domain/quizrun"
	"github.com/calibra-quiz/backend/internal/scoring"
	"github.com/calibra-quiz/backend/internal/store"
)

// QuestionHistory is the all-time record for one question.
type QuestionHistory struct {
	ID         string
	Prompt     string
	Attempts   int
	CorrectPct float64
}

// RunSummary is everything the results view needs: the run's own score
// plus the cross-run aggregates as they stand after this run's commit.
type RunSummary struct {
	Report           scoring.Report
	StatsSaved       bool
	TotalRuns        int
	GlobalAveragePct float64
	PerQuestion      []QuestionHistory
}

// ResultsService scores completed runs and folds each one into the
// cumulative statistics exactly once.
type ResultsService struct {
	store   store.Store
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func NewResultsService(s store.Store, cat *catalog.Catalog, logger *slog.Logger) *ResultsService {
	return &ResultsService{
		store:   s,
		catalog: cat,
		logger:  logger,
	}
}

// Finalize scores a complete run, commits its counts into the
// statistics store (guarded by the run's committed flag, so re-viewing
// results never double-counts), and assembles the cross-run aggregates.
// A persistence failure is logged and reported through StatsSaved; it
// never withholds the user's own score.
func (rs *ResultsService) Finalize(ctx context.Context, run *quizrun.Run) (RunSummary, error) {
	report, err := scoring.Evaluate(rs.catalog, run.Answers)
	if err != nil {
		return RunSummary{}, err
	}

	summary := RunSummary{Report: report, StatsSaved: true}

	if !run.Committed {
		correct := make(map[string]bool, len(report.Results))
		for _, r := range report.Results {
			correct[r.ID] = r.Correct
		}
		applied, err := rs.store.CommitRun(ctx, run.ID, correct)
		if err != nil {
			rs.logger.Error("failed to commit run statistics", "run_id", run.ID, "error", err)
			summary.StatsSaved = false
		} else {
			run.Committed = true
			if !applied {
				rs.logger.Warn("run was already committed", "run_id", run.ID)
			}
		}
	}

	stats, err := rs.store.LoadStats(ctx)
	if err != nil {
		// Degrade to a zero-valued record; the user still gets a score.
		rs.logger.Error("failed to load statistics", "error", err)
		stats = store.Stats{PerQuestion: map[string]store.QuestionTally{}}
	}

	summary.TotalRuns = stats.TotalRuns
	summary.GlobalAveragePct = scoring.Percentage(stats.TotalCorrect, stats.TotalRuns*rs.catalog.Len())

	for _, q := range rs.catalog.Questions() {
		tally := stats.PerQuestion[q.ID]
		summary.PerQuestion = append(summary.PerQuestion, QuestionHistory{
			ID:         q.ID,
			Prompt:     q.Prompt,
			Attempts:   tally.Attempts,
			CorrectPct: scoring.Percentage(tally.Correct, tally.Attempts),
		})
	}
	return summary, nil
}
