package analysis

import "context"

// Analyzer port (interface untuk the heuristic requirement analyzer).
// Total over all string inputs: never fails, blank input yields a
// degenerate empty result.
type Analyzer interface {
	Analyze(requirement string) Result
}

// ArtifactStore port (interface untuk penyimpanan artefak)
type ArtifactStore interface {
	Upload(ctx context.Context, localPath, key string) (string, error)
	UploadAndCleanup(ctx context.Context, localPath, key string) (string, error)
}
