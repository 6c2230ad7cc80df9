package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/calibra-quiz/backend/internal/domain/catalog"
	"github.com/calibra-quiz/backend/internal/domain/quizrun"
	"github.com/calibra-quiz/backend/internal/numeric"
	"github.com/calibra-quiz/backend/internal/scoring"
	"github.com/calibra-quiz/backend/internal/service"
	"github.com/calibra-quiz/backend/internal/store"
	"github.com/calibra-quiz/backend/internal/units"
)

// runCookieName carries the run ID between requests. The cookie is the
// only transport detail the quiz engine knows about.
const runCookieName = "quiz_run"

const (
	msgBadNumber = "Please enter valid numeric values (commas, decimals, and shorthand like 10M or 3.2B are allowed)."
	msgBadBounds = "Lower bound must be less than or equal to upper bound."
)

// ── Request / Response types ────────────────────────────────────────────────

type IntroResponse struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	TotalQuestions int    `json:"total_questions"`
	Start          string `json:"start"`
}

type ResultEntry struct {
	ID               string  `json:"id"`
	Prompt           string  `json:"prompt"`
	Unit             string  `json:"unit"`
	Lower            float64 `json:"lower"`
	Upper            float64 `json:"upper"`
	TrueValue        float64 `json:"true_value"`
	LowerDisplay     string  `json:"lower_display"`
	UpperDisplay     string  `json:"upper_display"`
	TrueValueDisplay string  `json:"true_value_display"`
	Correct          bool    `json:"correct"`
}

type HistoryEntry struct {
	ID         string  `json:"id"`
	Prompt     string  `json:"prompt"`
	Attempts   int     `json:"attempts"`
	CorrectPct float64 `json:"correct_pct"`
}

type ResultsResponse struct {
	Total            int            `json:"total"`
	CorrectCount     int            `json:"correct_count"`
	ScorePct         float64        `json:"score_pct"`
	Band             string         `json:"band"`
	Interpretation   string         `json:"interpretation"`
	StatsSaved       bool           `json:"stats_saved"`
	TotalRuns        int            `json:"total_runs"`
	GlobalAveragePct float64        `json:"global_average_pct"`
	Results          []ResultEntry  `json:"results"`
	History          []HistoryEntry `json:"history"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/intro", http.StatusSeeOther)
}

// intro godoc
// @Summary  Quiz introduction
// @Produce  json
// @Success  200 {object} api.IntroResponse
// @Router   /intro [get]
func (h *Handler) intro(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, IntroResponse{
		Title:          "Calibration quiz",
		Description:    "For each question, give a range you are 95% confident contains the true value.",
		TotalQuestions: h.catalog.Len(),
		Start:          "/question/0",
	})
}

// showQuestion godoc
// @Summary  Show one question
// @Produce  json
// @Param    index path int true "question position, 0-based"
// @Success  200 {object} api.QuestionView
// @Failure  404 {object} map[string]string
// @Router   /question/{index} [get]
func (h *Handler) showQuestion(w http.ResponseWriter, r *http.Request) {
	index, ok := h.questionIndex(w, r)
	if !ok {
		return
	}

	run, ok := h.runForIndex(w, r, index)
	if !ok {
		return
	}

	q, _ := h.catalog.At(index)
	respondJSON(w, http.StatusOK, h.questionViewFor(r, run, q, index, "", "", ""))
}

// answerQuestion godoc
// @Summary  Submit an interval answer
// @Accept   x-www-form-urlencoded
// @Produce  json
// @Param    index path int true "question position, 0-based"
// @Param    lower formData string true "lower bound"
// @Param    upper formData string true "upper bound"
// @Param    unit_system formData string false "metric or imperial"
// @Success  303 "redirect to the next question or the results"
// @Failure  422 {object} api.QuestionView
// @Router   /question/{index} [post]
func (h *Handler) answerQuestion(w http.ResponseWriter, r *http.Request) {
	index, ok := h.questionIndex(w, r)
	if !ok {
		return
	}

	run, ok := h.runForIndex(w, r, index)
	if !ok {
		return
	}
	ctx := r.Context()

	if us, valid := quizrun.ParseUnitSystem(r.FormValue("unit_system")); valid && us != run.UnitSystem {
		run.UnitSystem = us
		if err := h.store.SetUnitSystem(ctx, run.ID, us); err != nil {
			h.logger.Error("failed to save unit preference", "run_id", run.ID, "error", err)
		}
	}

	rawLower := r.FormValue("lower")
	rawUpper := r.FormValue("upper")

	q, _ := h.catalog.At(index)
	err := run.Submit(q, index, rawLower, rawUpper)
	switch {
	case errors.Is(err, quizrun.ErrOutOfStep):
		// Out-of-order navigation is a silent redirect to wherever the
		// run actually is, never a user-facing error.
		h.redirectToCurrent(w, r, run)
		return
	case errors.Is(err, quizrun.ErrBadNumber):
		respondJSON(w, http.StatusUnprocessableEntity,
			h.questionViewFor(r, run, q, index, msgBadNumber, rawLower, rawUpper))
		return
	case errors.Is(err, quizrun.ErrBounds):
		respondJSON(w, http.StatusUnprocessableEntity,
			h.questionViewFor(r, run, q, index, msgBadBounds, rawLower, rawUpper))
		return
	case err != nil:
		h.logger.Error("submit failed", "run_id", run.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.store.SaveAnswer(ctx, run.ID, q.ID, run.Answers[q.ID], run.CurrentIndex); h.handleStoreError(w, err, "run") {
		return
	}

	h.redirectToCurrent(w, r, run)
}

// results godoc
// @Summary  Score the run and show cumulative statistics
// @Produce  json
// @Success  200 {object} api.ResultsResponse
// @Success  303 "redirect to /intro when the run is incomplete"
// @Router   /results [get]
func (h *Handler) showResults(w http.ResponseWriter, r *http.Request) {
	run, err := h.currentRun(r)
	if err != nil || !run.IsComplete(h.catalog.Len()) {
		// Partial or unknown runs never score.
		http.Redirect(w, r, "/intro", http.StatusSeeOther)
		return
	}

	summary, err := h.results.Finalize(r.Context(), run)
	if errors.Is(err, scoring.ErrIncomplete) {
		http.Redirect(w, r, "/intro", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.logger.Error("failed to finalize run", "run_id", run.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, buildResultsResponse(summary))
}

// ── Helpers ─────────────────────────────────────────────────────────────────

// questionIndex parses the path index. Non-numeric values are a 404;
// anything outside [0, N) is treated as "whatever comes after the
// sequence" and redirects to the results path.
func (h *Handler) questionIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		respondError(w, http.StatusNotFound, "no such question")
		return 0, false
	}
	if index < 0 || index >= h.catalog.Len() {
		http.Redirect(w, r, "/results", http.StatusSeeOther)
		return 0, false
	}
	return index, true
}

// runForIndex resolves the caller's run. Visiting index 0 always starts
// a completely fresh run; any other index reuses the cookie's run,
// falling back to a fresh one when the cookie is missing or stale.
func (h *Handler) runForIndex(w http.ResponseWriter, r *http.Request, index int) (*quizrun.Run, bool) {
	if index == 0 {
		run, err := h.startRun(w, r)
		if err != nil {
			h.logger.Error("failed to start run", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to start run")
			return nil, false
		}
		return run, true
	}

	run, err := h.currentRun(r)
	if errors.Is(err, store.ErrNotFound) {
		run, err = h.startRun(w, r)
	}
	if err != nil {
		h.logger.Error("failed to load run", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load run")
		return nil, false
	}
	return run, true
}

// currentRun loads the run named by the request cookie.
func (h *Handler) currentRun(r *http.Request) (*quizrun.Run, error) {
	c, err := r.Cookie(runCookieName)
	if err != nil {
		return nil, store.ErrNotFound
	}
	return h.store.GetRun(r.Context(), c.Value)
}

// startRun resets the cookie's existing run or creates a new one.
func (h *Handler) startRun(w http.ResponseWriter, r *http.Request) (*quizrun.Run, error) {
	if c, err := r.Cookie(runCookieName); err == nil {
		run, err := h.store.GetRun(r.Context(), c.Value)
		if err == nil {
			run.Reset()
			if err := h.store.ResetRun(r.Context(), run.ID); err != nil {
				return nil, err
			}
			return run, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	run := quizrun.New()
	if err := h.store.CreateRun(r.Context(), run); err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     runCookieName,
		Value:    run.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return run, nil
}

// redirectToCurrent sends the client to the run's current question, or
// to the results once the sequence is exhausted.
func (h *Handler) redirectToCurrent(w http.ResponseWriter, r *http.Request, run *quizrun.Run) {
	if run.CurrentIndex >= h.catalog.Len() {
		http.Redirect(w, r, "/results", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/question/%d", run.CurrentIndex), http.StatusSeeOther)
}

// QuestionView is the GET/re-prompt payload for one question. On a
// rejected submission the user's raw text comes back untouched.
type QuestionView struct {
	Index      int    `json:"index"`
	Total      int    `json:"total"`
	Progress   int    `json:"progress"`
	Prompt     string `json:"prompt"`
	Unit       string `json:"unit"`
	UnitKind   string `json:"unit_kind,omitempty"`
	UnitSystem string `json:"unit_system"`
	Error      string `json:"error,omitempty"`
	LowerValue string `json:"lower_value"`
	UpperValue string `json:"upper_value"`
}

func (h *Handler) questionViewFor(r *http.Request, run *quizrun.Run, q catalog.Question, index int, errMsg, rawLower, rawUpper string) QuestionView {
	unitSystem := run.UnitSystem
	if unitSystem == "" {
		unitSystem = units.Infer(r.Header)
	}
	return QuestionView{
		Index:      index,
		Total:      h.catalog.Len(),
		Progress:   index * 100 / h.catalog.Len(),
		Prompt:     q.Prompt,
		Unit:       q.Unit,
		UnitKind:   q.UnitKind,
		UnitSystem: string(unitSystem),
		Error:      errMsg,
		LowerValue: rawLower,
		UpperValue: rawUpper,
	}
}

func buildResultsResponse(summary service.RunSummary) ResultsResponse {
	report := summary.Report

	results := make([]ResultEntry, len(report.Results))
	for i, r := range report.Results {
		lower, upper, trueValue := r.Lower, r.Upper, r.TrueValue
		results[i] = ResultEntry{
			ID:               r.ID,
			Prompt:           r.Prompt,
			Unit:             r.Unit,
			Lower:            lower,
			Upper:            upper,
			TrueValue:        trueValue,
			LowerDisplay:     numeric.Format(&lower),
			UpperDisplay:     numeric.Format(&upper),
			TrueValueDisplay: numeric.Format(&trueValue),
			Correct:          r.Correct,
		}
	}

	history := make([]HistoryEntry, len(summary.PerQuestion))
	for i, q := range summary.PerQuestion {
		history[i] = HistoryEntry{
			ID:         q.ID,
			Prompt:     q.Prompt,
			Attempts:   q.Attempts,
			CorrectPct: q.CorrectPct,
		}
	}

	return ResultsResponse{
		Total:            report.Total,
		CorrectCount:     report.CorrectCount,
		ScorePct:         report.ScorePct,
		Band:             string(report.Band),
		Interpretation:   report.Interpretation,
		StatsSaved:       summary.StatsSaved,
		TotalRuns:        summary.TotalRuns,
		GlobalAveragePct: summary.GlobalAveragePct,
		Results:          results,
		History:          history,
	}
}
