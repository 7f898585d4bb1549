package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/complize/selfassess/internal/api/http"
	"github.com/complize/selfassess/internal/config"
	"github.com/complize/selfassess/internal/questionnaire"
	"github.com/complize/selfassess/internal/scoring"
)

func main() {
	cfg := config.FromEnv()

	defaults := scoring.Thresholds{
		Green: cfg.GreenThreshold,
		Amber: cfg.AmberThreshold,
	}
	store := questionnaire.NewInMemoryStore()

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Stateless scoring
	r.Post("/score", api.ScoreHandler(defaults))
	r.Post("/score/fixed", api.FixedScoreHandler(defaults))
	r.Post("/gaps/export", api.ExportGapsHandler())

	// Questionnaire administration + scoring against the active version
	r.Put("/questionnaires/{surveyID}", api.PutQuestionnaireHandler(store))
	r.Get("/questionnaires", api.ListQuestionnairesHandler(store))
	r.Get("/questionnaires/{surveyID}", api.GetActiveQuestionnaireHandler(store))
	r.Post("/questionnaires/{surveyID}/versions/{version}/activate", api.ActivateQuestionnaireHandler(store))
	r.Post("/questionnaires/{surveyID}/score", api.ScoreSubmissionHandler(store, defaults))

	log.Printf("selfassess listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("server: %v", err)
	}
}
