package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/docaudit/internal/model"
)

func TestDocsRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DocsFile)
	rep := &model.DocReport{
		Root:       "/src/geant4",
		TotalFiles: 2,
		FilesByCategory: map[model.Category][]model.FileDocResult{
			model.WellDocumented:      {{File: "/src/geant4/source/run/a.hh", QualityScore: 85, Category: model.WellDocumented}},
			model.PartiallyDocumented: {},
			model.PoorlyDocumented:    {{File: "/src/geant4/source/run/b.cc", Category: model.PoorlyDocumented}},
		},
		ModuleStats: map[string]*model.ModuleAggregate{"run": {Files: 2, WellDoc: 1, PoorDoc: 1}},
	}
	require.NoError(t, SaveDocs(path, rep))

	got, err := LoadDocs(path)
	require.NoError(t, err)
	assert.Equal(t, rep, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestDocsJSONNames(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DocsFile)
	rep := &model.DocReport{FilesByCategory: map[model.Category][]model.FileDocResult{
		model.PoorlyDocumented: {{File: "x.cc", DocBlocks: 1}},
	}}
	require.NoError(t, SaveDocs(path, rep))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"files_by_category"`)
	assert.Contains(t, string(data), `"poorly_documented"`)
	assert.Contains(t, string(data), `"doc_blocks": 1`)
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := LoadDocs(filepath.Join(dir, DocsFile))
	require.ErrorIs(t, err, ErrNoArtifact)

	_, err = LoadQuality(filepath.Join(dir, QualityFile))
	require.ErrorIs(t, err, ErrNoArtifact)
}

func TestLoadDocsRejectsBadInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	garbled := filepath.Join(dir, "garbled.json")
	require.NoError(t, os.WriteFile(garbled, []byte("{not json"), 0o644))
	_, err := LoadDocs(garbled)
	require.ErrorContains(t, err, "decoding")

	unknown := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`{"files_by_category": {"excellent": []}}`), 0o644))
	_, err = LoadDocs(unknown)
	require.ErrorContains(t, err, "unknown category")

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{}`), 0o644))
	rep, err := LoadDocs(empty)
	require.NoError(t, err)
	assert.NotNil(t, rep.FilesByCategory)
	assert.Empty(t, rep.Files(model.PoorlyDocumented))
}

func TestQualityRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), QualityFile)
	rep := &model.QualityReport{
		Root:         "/src",
		FilesScanned: 1,
		Complexity:   model.ComplexityStats{VeryComplex: 1},
		CodeSmells:   model.CodeSmellStats{DeepNesting: 1},
		Examples: map[string][]model.Example{
			model.FamilyDeepNesting: {{File: "a.cc", Depth: 9}},
		},
		Files: []model.FileQualityResult{{File: "/src/a.cc", Issues: []string{"Deep nesting detected (max depth: 9)"}, MaxNesting: 9}},
	}
	require.NoError(t, SaveQuality(path, rep))

	got, err := LoadQuality(path)
	require.NoError(t, err)
	assert.Equal(t, rep, got)
}

func TestSaveUnwritableDir(t *testing.T) {
	t.Parallel()

	err := SaveDocs(filepath.Join(t.TempDir(), "missing", DocsFile), &model.DocReport{})
	require.ErrorContains(t, err, "writing")
}
