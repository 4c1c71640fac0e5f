package analysis

import (
	"context"
	"encoding/json"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/req2spec/internal/analyzer"
	domain "github.com/bryanwahyu/req2spec/internal/domain/analysis"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// fakeStore captures uploads instead of talking to object storage
type fakeStore struct {
	keys     []string
	contents [][]byte
	err      error
}

func (f *fakeStore) Upload(ctx context.Context, localPath, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", err
	}
	f.keys = append(f.keys, key)
	f.contents = append(f.contents, data)
	return "http://artifacts.local/" + key, nil
}

func (f *fakeStore) UploadAndCleanup(ctx context.Context, localPath, key string) (string, error) {
	url, err := f.Upload(ctx, localPath, key)
	if err != nil {
		return "", err
	}
	os.Remove(localPath)
	return url, nil
}

func newTestService(store domain.ArtifactStore) *Service {
	return &Service{
		Analyzer:  analyzer.New(),
		Artifacts: store,
		Clock:     fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func TestAnalyze_RejectsBlankInput(t *testing.T) {
	svc := newTestService(nil)

	for _, in := range []string{"", "   ", "\t\n  "} {
		_, err := svc.Analyze(context.Background(), AnalyzeCommand{Requirement: in})
		assert.ErrorIs(t, err, domain.ErrEmptyRequirement, "input: %q", in)
	}
}

func TestAnalyze_StampsIDAndTimestamp(t *testing.T) {
	svc := newTestService(nil)

	a, err := svc.Analyze(context.Background(), AnalyzeCommand{
		Requirement: "Create a user registration system with email verification",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), a.Timestamp)
	assert.Contains(t, a.Entities, "user")
	assert.Equal(t, a.Entities, a.Schemas.Entities())
}

func TestAnalyze_FreshIDPerInvocation(t *testing.T) {
	svc := newTestService(nil)
	cmd := AnalyzeCommand{Requirement: "build a blog platform"}

	first, err := svc.Analyze(context.Background(), cmd)
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), cmd)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	// everything except identity is deterministic
	assert.Equal(t, first.Entities, second.Entities)
	assert.Equal(t, first.Modules, second.Modules)
	assert.Equal(t, first.Schemas, second.Schemas)
	assert.Equal(t, first.Pseudocode, second.Pseudocode)
}

func TestExport_UploadsTimestampedArtifact(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	a, err := svc.Analyze(context.Background(), AnalyzeCommand{
		Requirement: "Develop a task management system with notifications and reporting",
	})
	require.NoError(t, err)

	url, err := svc.Export(context.Background(), a)
	require.NoError(t, err)

	require.Len(t, store.keys, 1)
	assert.Regexp(t, regexp.MustCompile(`^technical_spec_\d{8}_\d{6}\.json$`), store.keys[0])
	assert.Equal(t, "technical_spec_20250601_120000.json", store.keys[0])
	assert.Equal(t, "http://artifacts.local/"+store.keys[0], url)

	// uploaded document carries exactly the export keys
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(store.contents[0], &doc))
	assert.Len(t, doc, 5)
	for _, key := range []string{"entities", "modules", "schemas", "pseudocode", "timestamp"} {
		assert.Contains(t, doc, key)
	}
}

func TestExport_WithoutStore(t *testing.T) {
	svc := newTestService(nil)

	a, err := svc.Analyze(context.Background(), AnalyzeCommand{Requirement: "build a product catalog"})
	require.NoError(t, err)

	_, err = svc.Export(context.Background(), a)
	assert.ErrorIs(t, err, domain.ErrNoArtifactStore)
}

func TestExportJSON_IsIndented(t *testing.T) {
	svc := newTestService(nil)

	a, err := svc.Analyze(context.Background(), AnalyzeCommand{Requirement: "build a product catalog"})
	require.NoError(t, err)

	data, err := ExportJSON(a)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"entities\"")
}
