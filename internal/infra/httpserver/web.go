package httpserver

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	appanalysis "github.com/bryanwahyu/req2spec/internal/application/analysis"
	domain "github.com/bryanwahyu/req2spec/internal/domain/analysis"
	examplesdomain "github.com/bryanwahyu/req2spec/internal/domain/examples"
	"github.com/bryanwahyu/req2spec/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// pageData feeds the web form template
type pageData struct {
	Examples    []*examplesdomain.Example
	Requirement string
	Error       string
	Result      *resultView
}

// resultView is the pre-rendered result: the template only prints
type resultView struct {
	Modules    []string
	Schemas    []schemaView
	Pseudocode string
	ExportJSON string
}

type schemaView struct {
	Entity string
	Title  string
	SQL    string
}

func buildResultView(a *domain.Analysis) (*resultView, error) {
	data, err := appanalysis.ExportJSON(a)
	if err != nil {
		return nil, err
	}

	view := &resultView{
		Modules:    a.Modules,
		Pseudocode: a.Pseudocode,
		ExportJSON: string(data),
	}
	for _, es := range a.Schemas {
		view.Schemas = append(view.Schemas, schemaView{
			Entity: es.Entity,
			Title:  titleCase(es.Entity),
			SQL:    es.Schema.CreateTable(es.Entity),
		})
	}
	return view, nil
}

// GET /
func (r *Router) handleIndex(w http.ResponseWriter, req *http.Request) error {
	list, err := r.examples.List(req.Context())
	if err != nil {
		return err
	}
	return r.renderPage(w, pageData{Examples: list})
}

// POST /analyze (web form submit)
func (r *Router) handleFormAnalyze(w http.ResponseWriter, req *http.Request) error {
	if err := req.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return nil
	}

	requirement := req.PostFormValue("requirement")
	// the example selector wins when the textarea is untouched
	if strings.TrimSpace(requirement) == "" {
		if id := req.PostFormValue("example"); id != "" {
			if e, err := r.examples.Get(req.Context(), examplesdomain.ExampleID(id)); err == nil {
				requirement = e.Text
			}
		}
	}

	list, err := r.examples.List(req.Context())
	if err != nil {
		return err
	}
	data := pageData{Examples: list, Requirement: requirement}

	if err := middleware.ValidateRequirement(requirement); err != nil {
		middleware.IncrementAnalysesRejected()
		data.Error = err.Error()
		return r.renderPage(w, data)
	}

	a, err := r.analysisSvc.Analyze(req.Context(), appanalysis.AnalyzeCommand{Requirement: requirement})
	if err != nil {
		return err
	}
	middleware.IncrementAnalyses()

	view, err := buildResultView(a)
	if err != nil {
		return err
	}
	data.Result = view
	return r.renderPage(w, data)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (r *Router) renderPage(w http.ResponseWriter, data pageData) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return pageTmpl.Execute(w, data)
}
