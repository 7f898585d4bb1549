package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/complize/selfassess/internal/questionnaire"
	"github.com/complize/selfassess/internal/scoring"
)

type putQuestionnaireReq struct {
	Title    string                  `json:"title,omitempty"`
	Sections []questionnaire.Section `json:"sections"`
}

// PUT /questionnaires/{surveyID}
// Registers the body as the next version of the survey's definition.
func PutQuestionnaireHandler(store questionnaire.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID := strings.TrimSpace(chi.URLParam(r, "surveyID"))
		if surveyID == "" {
			http.Error(w, "surveyID required", http.StatusBadRequest)
			return
		}
		var req putQuestionnaireReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		q, err := store.Put(questionnaire.Questionnaire{
			SurveyID: surveyID,
			Title:    req.Title,
			Sections: req.Sections,
		})
		if err != nil {
			http.Error(w, "store: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(q)
	}
}

// POST /questionnaires/{surveyID}/versions/{version}/activate
func ActivateQuestionnaireHandler(store questionnaire.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID := strings.TrimSpace(chi.URLParam(r, "surveyID"))
		version, err := strconv.Atoi(chi.URLParam(r, "version"))
		if surveyID == "" || err != nil {
			http.Error(w, "surveyID and numeric version required", http.StatusBadRequest)
			return
		}
		if err := store.Activate(surveyID, version); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /questionnaires
func ListQuestionnairesHandler(store questionnaire.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(store.List())
	}
}

// GET /questionnaires/{surveyID}
// Returns the active version.
func GetActiveQuestionnaireHandler(store questionnaire.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID := strings.TrimSpace(chi.URLParam(r, "surveyID"))
		q, err := store.Active(surveyID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(q)
	}
}

type scoreSubmissionReq struct {
	Answers map[string]interface{} `json:"answers"`
	Green   *float64               `json:"green,omitempty"`
	Amber   *float64               `json:"amber,omitempty"`
}

// POST /questionnaires/{surveyID}/score
// Scores an answers map against the survey's active version.
func ScoreSubmissionHandler(store questionnaire.Store, def scoring.Thresholds) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		surveyID := strings.TrimSpace(chi.URLParam(r, "surveyID"))
		q, err := store.Active(surveyID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		var req scoreSubmissionReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		answers := questionnaire.AnswersFromJSON(req.Answers)
		t := thresholds(def, req.Green, req.Amber)

		resp := scoreResp{
			Result: scoring.Score(q.Sections, answers, t),
			Gaps:   scoring.BuildGapRegister(q.Sections, answers),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
