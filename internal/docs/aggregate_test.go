package docs

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/docaudit/internal/model"
)

func TestModuleName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/home/user/geant4/source/processes/em/G4Foo.cc", "processes"},
		{"/home/user/geant4/source/G4Top.hh", "G4Top.hh"},
		{"/home/user/geant4/source", "other"},
		{"/home/user/geant4/include/G4Bar.hh", "other"},
		{"/a/source/run/source/x.cc", "run"},
		{"/a/resource/run/x.cc", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ModuleName(tt.path, "source"))
		})
	}
}

func TestAggregator(t *testing.T) {
	t.Parallel()

	agg := NewAggregator("/r", "source")
	agg.Add(model.FileDocResult{File: "/r/source/run/a.cc", Classes: 2, DocumentedClasses: 1, Functions: 4, DocumentedFunctions: 4, QualityScore: 70, Category: model.WellDocumented})
	agg.Add(model.FileDocResult{File: "/r/source/run/b.cc", Classes: 1, Functions: 1, QualityScore: 30, Category: model.PartiallyDocumented})
	agg.Add(model.FileDocResult{File: "/r/tools/c.cc", Functions: 3, Category: model.PoorlyDocumented})
	agg.Add(model.FileDocResult{File: "/r/source/geometry/d.cc", Category: model.PoorlyDocumented})
	rep := agg.Report()

	assert.Equal(t, "/r", rep.Root)
	assert.Equal(t, 4, rep.TotalFiles)
	assert.Equal(t, 3, rep.TotalClasses)
	assert.Equal(t, 8, rep.TotalFunctions)
	assert.Equal(t, 1, rep.DocumentedClasses)
	assert.Equal(t, 4, rep.DocumentedFunctions)

	assert.Len(t, rep.Files(model.WellDocumented), 1)
	assert.Len(t, rep.Files(model.PartiallyDocumented), 1)
	require.Len(t, rep.Files(model.PoorlyDocumented), 2)
	assert.Equal(t, "/r/tools/c.cc", rep.Files(model.PoorlyDocumented)[0].File, "fold order is kept")

	require.Contains(t, rep.ModuleStats, "run")
	assert.Equal(t, model.ModuleAggregate{
		Files: 2, Classes: 3, Functions: 5, DocClasses: 1, DocFunctions: 4, WellDoc: 1, PartialDoc: 1,
	}, *rep.ModuleStats["run"])
	assert.Equal(t, 1, rep.ModuleStats["other"].PoorDoc)
	assert.Equal(t, 1, rep.ModuleStats["geometry"].Files)

	files := 0
	for _, ms := range rep.ModuleStats {
		files += ms.Files
	}
	assert.Equal(t, rep.TotalFiles, files)

	assert.InDelta(t, 25.0, rep.Summary.WellDocumentedPct, 1e-9)
	assert.InDelta(t, 50.0, rep.Summary.PoorlyDocumentedPct, 1e-9)
	assert.InDelta(t, 100.0/3, rep.Summary.ClassDocumentationPct, 1e-9)
	assert.InDelta(t, 50.0, rep.Summary.FunctionDocumentationPct, 1e-9)
}

func TestAggregatorEmpty(t *testing.T) {
	t.Parallel()

	rep := NewAggregator("/r", "source").Report()
	assert.Zero(t, rep.TotalFiles)
	assert.Empty(t, rep.ModuleStats)
	for _, c := range model.Categories {
		assert.NotNil(t, rep.FilesByCategory[c], "every category is present")
	}
	assert.Zero(t, rep.Summary.WellDocumentedPct)
}

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func sampleTree(t *testing.T) (string, []string) {
	t.Helper()
	root := t.TempDir()
	paths := []string{
		writeFile(t, root, "source/run/include/G4Run.hh",
			"/**\n * \\brief A run.\n * @param id\n * @return nothing\n */\nclass G4Run\n{\n};\n"),
		writeFile(t, root, "source/run/src/G4Run.cc", "#include \"G4Run.hh\"\nint x = 1;\n"),
		writeFile(t, root, "source/track/include/G4Track.hh",
			"/// Track.\nclass G4Track\n{\n    G4double  Energy() const;\n};\n"),
	}
	return root, paths
}

func TestClassifierRun(t *testing.T) {
	t.Parallel()

	root, paths := sampleTree(t)
	paths = append(paths, filepath.Join(root, "source", "run", "src", "Gone.cc"))

	c := &Classifier{
		Root:         root,
		SourceMarker: "source",
		Options:      DefaultOptions,
		Workers:      2,
		Logger:       log.New(io.Discard),
	}
	rep, err := c.Run(context.Background(), paths)
	require.NoError(t, err)

	assert.Equal(t, 3, rep.TotalFiles, "unreadable file is excluded")
	counted := 0
	for _, cat := range model.Categories {
		counted += len(rep.Files(cat))
		for _, r := range rep.Files(cat) {
			assert.NotContains(t, r.File, "Gone.cc")
			assert.Equal(t, Categorize(r.QualityScore), r.Category)
		}
	}
	assert.Equal(t, rep.TotalFiles, counted)

	require.Len(t, rep.Files(model.WellDocumented), 1)
	assert.True(t, strings.HasSuffix(rep.Files(model.WellDocumented)[0].File, "G4Run.hh"))
	assert.Equal(t, 2, rep.ModuleStats["run"].Files)
	assert.Equal(t, 1, rep.ModuleStats["track"].Files)
}

func TestClassifierRunDeterministic(t *testing.T) {
	t.Parallel()

	root, paths := sampleTree(t)
	run := func(workers int) []byte {
		c := &Classifier{Root: root, SourceMarker: "source", Options: DefaultOptions, Workers: workers, Logger: log.New(io.Discard)}
		rep, err := c.Run(context.Background(), paths)
		require.NoError(t, err)
		data, err := json.Marshal(rep)
		require.NoError(t, err)
		return data
	}

	first := run(1)
	assert.Equal(t, first, run(1))
	assert.Equal(t, first, run(8))
}
