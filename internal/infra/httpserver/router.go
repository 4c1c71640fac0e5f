package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appanalysis "github.com/bryanwahyu/req2spec/internal/application/analysis"
	domain "github.com/bryanwahyu/req2spec/internal/domain/analysis"
	examplesdomain "github.com/bryanwahyu/req2spec/internal/domain/examples"
	"github.com/bryanwahyu/req2spec/internal/middleware"
)

type Router struct {
	analysisSvc *appanalysis.Service
	examples    examplesdomain.Repository
	log         *zap.Logger
}

func NewRouter(analysisSvc *appanalysis.Service, examples examplesdomain.Repository, checkers map[string]middleware.HealthChecker, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Router{analysisSvc: analysisSvc, examples: examples, log: log}
	mux := chi.NewRouter()

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/metrics", middleware.MetricsHandler)

	// web form front end
	mux.Get("/", r.wrap(r.handleIndex))
	mux.Post("/analyze", r.wrap(r.handleFormAnalyze))

	// JSON API
	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Post("/analyze/export", r.wrap(r.handleExport))
		rt.Get("/examples", r.wrap(r.handleExamples))
		rt.Get("/examples/{id}", r.wrap(r.handleExample))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			switch {
			case errors.Is(err, domain.ErrEmptyRequirement):
				middleware.IncrementAnalysesRejected()
				http.Error(w, "please enter a business requirement to analyze", http.StatusBadRequest)
			case errors.Is(err, sql.ErrNoRows):
				http.Error(w, "not found", http.StatusNotFound)
			default:
				r.log.Error("handler error", zap.String("path", req.URL.Path), zap.Error(err))
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

type analyzeRequest struct {
	Requirement string `json:"requirement"`
}

// POST /v1/analyze
// Body: {"requirement": "<free text>"}
// Returns the full analysis document.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body analyzeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return nil
	}
	if err := middleware.ValidateRequirement(body.Requirement); err != nil {
		middleware.IncrementAnalysesRejected()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	a, err := r.analysisSvc.Analyze(req.Context(), appanalysis.AnalyzeCommand{Requirement: body.Requirement})
	if err != nil {
		return err
	}
	middleware.IncrementAnalyses()

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(a)
}

// POST /v1/analyze/export
// Body: {"requirement": "<free text>"}
// With an artifact store configured: uploads the JSON document and
// returns its URL. Without one: serves the document as a direct
// attachment download.
func (r *Router) handleExport(w http.ResponseWriter, req *http.Request) error {
	var body analyzeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return nil
	}
	if err := middleware.ValidateRequirement(body.Requirement); err != nil {
		middleware.IncrementAnalysesRejected()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	a, err := r.analysisSvc.Analyze(req.Context(), appanalysis.AnalyzeCommand{Requirement: body.Requirement})
	if err != nil {
		return err
	}
	middleware.IncrementAnalyses()

	url, err := r.analysisSvc.Export(req.Context(), a)
	if errors.Is(err, domain.ErrNoArtifactStore) {
		return r.serveDownload(w, a)
	}
	if err != nil {
		return err
	}
	middleware.IncrementExports()

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]any{
		"id":           a.ID,
		"artifact_url": url,
		"filename":     a.ExportFilename(),
	})
}

// serveDownload streams the export document with an attachment header.
func (r *Router) serveDownload(w http.ResponseWriter, a *domain.Analysis) error {
	data, err := appanalysis.ExportJSON(a)
	if err != nil {
		return err
	}
	middleware.IncrementExports()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.ExportFilename()))
	_, err = w.Write(data)
	return err
}

// GET /v1/examples
func (r *Router) handleExamples(w http.ResponseWriter, req *http.Request) error {
	list, err := r.examples.List(req.Context())
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/examples/{id}
func (r *Router) handleExample(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateExampleID(id); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	e, err := r.examples.Get(req.Context(), examplesdomain.ExampleID(id))
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(e)
}
