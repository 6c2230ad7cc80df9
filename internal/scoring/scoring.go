// Package scoring judges a completed run against the catalog's true
// values and maps the score onto a calibration band.
package scoring

import (
	"errors"
	"fmt"

	"github.com/calibra-quiz/backend/internal/domain/catalog"
	"github.com/calibra-quiz/backend/internal/domain/quizrun"
	"github.com/calibra-quiz/backend/internal/numeric"
)

// Percentage returns 100*part/total rounded to one decimal, or 0.0
// when total is zero.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return numeric.Round1(100 * float64(part) / float64(total))
}

// ErrIncomplete means not every question has a captured answer.
var ErrIncomplete = errors.New("run has unanswered questions")

// Band names an interpretation of the score relative to the quiz's
// nominal 95%-confidence-interval design target.
type Band string

const (
	BandSevereOverconfidence Band = "severe_overconfidence"
	BandOverconfidence       Band = "overconfidence"
	BandMildOverconfidence   Band = "mild_overconfidence"
	BandUnderconfidence      Band = "underconfidence"
	BandNeutral              Band = "neutral"
)

// QuestionResult is the verdict for one question.
type QuestionResult struct {
	ID        string
	Prompt    string
	Unit      string
	Lower     float64
	Upper     float64
	TrueValue float64
	Correct   bool
}

// Report is the outcome of scoring one completed run.
type Report struct {
	Results        []QuestionResult
	CorrectCount   int
	Total          int
	ScorePct       float64
	Band           Band
	Interpretation string
}

// Evaluate scores a complete answer set against the catalog. An
// interval is correct when it contains the true value, bounds
// inclusive. It fails with ErrIncomplete if any question is missing.
func Evaluate(cat *catalog.Catalog, answers map[string]quizrun.Interval) (Report, error) {
	questions := cat.Questions()
	report := Report{
		Results: make([]QuestionResult, 0, len(questions)),
		Total:   len(questions),
	}

	for _, q := range questions {
		iv, ok := answers[q.ID]
		if !ok {
			return Report{}, fmt.Errorf("%w: %s", ErrIncomplete, q.ID)
		}
		correct := iv.Lower <= q.TrueValue && q.TrueValue <= iv.Upper
		if correct {
			report.CorrectCount++
		}
		report.Results = append(report.Results, QuestionResult{
			ID:        q.ID,
			Prompt:    q.Prompt,
			Unit:      q.Unit,
			Lower:     iv.Lower,
			Upper:     iv.Upper,
			TrueValue: q.TrueValue,
			Correct:   correct,
		})
	}

	report.ScorePct = Percentage(report.CorrectCount, report.Total)
	report.Band = BandFor(report.ScorePct)
	report.Interpretation = interpretations[report.Band]
	return report, nil
}

// BandFor maps a score percentage onto its calibration band. The
// thresholds are fixed against the quiz's 95%-confidence design target.
func BandFor(scorePct float64) Band {
	switch {
	case scorePct < 60:
		return BandSevereOverconfidence
	case scorePct < 80:
		return BandOverconfidence
	case scorePct < 95:
		return BandMildOverconfidence
	case scorePct == 100:
		return BandUnderconfidence
	default:
		return BandNeutral
	}
}

var interpretations = map[Band]string{
	BandSevereOverconfidence: "Your intervals were too narrow: they behaved more like a low confidence level than 95%. This suggests strong overconfidence.",
	BandOverconfidence:       "Your intervals were still too narrow. You captured the true value less often than you would at 95% confidence.",
	BandMildOverconfidence:   "You're getting closer to well-calibrated ranges, but still a bit overconfident compared with a true 95% confidence interval.",
	BandUnderconfidence:      "You included the true value for every question. That means your intervals were closer to 100% confidence, i.e., wider than necessary for 95%.",
	BandNeutral:              "Interesting result.",
}
