package http

import (
	"encoding/json"
	"net/http"

	"github.com/complize/selfassess/internal/questionnaire"
	"github.com/complize/selfassess/internal/report"
	"github.com/complize/selfassess/internal/scoring"
)

type scoreReq struct {
	Sections []questionnaire.Section `json:"sections"`
	Answers  map[string]interface{}  `json:"answers"`
	Green    *float64                `json:"green,omitempty"`
	Amber    *float64                `json:"amber,omitempty"`
}

type scoreResp struct {
	Result scoring.Result     `json:"result"`
	Gaps   []scoring.GapEntry `json:"gaps"`
}

type fixedScoreReq struct {
	Rows  []scoring.Row `json:"rows"`
	Green *float64      `json:"green,omitempty"`
	Amber *float64      `json:"amber,omitempty"`
}

// thresholds applies per-request overrides on top of the service
// defaults.
func thresholds(def scoring.Thresholds, green, amber *float64) scoring.Thresholds {
	t := def
	if green != nil {
		t.Green = *green
	}
	if amber != nil {
		t.Amber = *amber
	}
	return t
}

// POST /score
func ScoreHandler(def scoring.Thresholds) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		sections := questionnaire.Normalize(req.Sections)
		answers := questionnaire.AnswersFromJSON(req.Answers)
		t := thresholds(def, req.Green, req.Amber)

		resp := scoreResp{
			Result: scoring.Score(sections, answers, t),
			Gaps:   scoring.BuildGapRegister(sections, answers),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// POST /score/fixed
func FixedScoreHandler(def scoring.Thresholds) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fixedScoreReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		res := scoring.ScoreFixedVocabulary(req.Rows, thresholds(def, req.Green, req.Amber))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	}
}

type gapExportReq struct {
	// Fixed-vocabulary rows take precedence when both shapes are sent.
	Rows     []scoring.Row           `json:"rows,omitempty"`
	Sections []questionnaire.Section `json:"sections,omitempty"`
	Answers  map[string]interface{}  `json:"answers,omitempty"`
}

// POST /gaps/export
func ExportGapsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gapExportReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		var gaps []scoring.GapEntry
		if len(req.Rows) > 0 {
			gaps = scoring.FixedGapRegister(req.Rows)
		} else {
			sections := questionnaire.Normalize(req.Sections)
			gaps = scoring.BuildGapRegister(sections, questionnaire.AnswersFromJSON(req.Answers))
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="gap_register.csv"`)
		if err := report.WriteGapCSV(w, gaps); err != nil {
			http.Error(w, "export: "+err.Error(), http.StatusInternalServerError)
		}
	}
}
