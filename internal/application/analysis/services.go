package analysis

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/bryanwahyu/req2spec/internal/domain/analysis"
)

// Service implements use-cases for requirement analysis.
// Stateless apart from its wired dependencies; safe for concurrent use.
type Service struct {
	Analyzer  domain.Analyzer
	Artifacts domain.ArtifactStore // optional; Export fails without it
	Clock     Clock
}

// Clock abstraction supaya gampang ditest
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

//
// ==== USE CASES ====
//

// Command untuk analyze requirement
type AnalyzeCommand struct {
	Requirement string
}

// Analyze rejects blank input, runs the analyzer, and stamps the result.
// The analyzer itself is total; the only failure here is empty input.
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (*domain.Analysis, error) {
	if strings.TrimSpace(cmd.Requirement) == "" {
		return nil, domain.ErrEmptyRequirement
	}

	res := s.Analyzer.Analyze(cmd.Requirement)

	return &domain.Analysis{
		ID:          domain.AnalysisID(uuid.New().String()),
		Requirement: cmd.Requirement,
		Entities:    res.Entities,
		Modules:     res.Modules,
		Schemas:     res.Schemas,
		Pseudocode:  res.Pseudocode,
		Timestamp:   s.Clock.Now(),
	}, nil
}

// Export serializes the analysis as indented JSON and uploads it through
// the artifact store under a timestamp-derived key. Returns the artifact
// URL.
func (s *Service) Export(ctx context.Context, a *domain.Analysis) (string, error) {
	if s.Artifacts == nil {
		return "", domain.ErrNoArtifactStore
	}

	data, err := ExportJSON(a)
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "req2spec-*.json")
	if err != nil {
		return "", err
	}
	local := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(local)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(local)
		return "", err
	}

	key := filepath.Base(a.ExportFilename())
	url, err := s.Artifacts.UploadAndCleanup(ctx, local, key)
	if err != nil {
		// UploadAndCleanup removes the local file on success only
		os.Remove(local)
		return "", err
	}
	return url, nil
}

// ExportJSON renders the downloadable document: indented JSON with
// exactly the keys entities, modules, schemas, pseudocode, timestamp.
func ExportJSON(a *domain.Analysis) ([]byte, error) {
	return json.MarshalIndent(a.Export(), "", "  ")
}
