package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/docaudit/internal/model"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 10, cfg.Docs.LookaheadLines)
	assert.Equal(t, 2, cfg.Docs.LookbackLines)
	assert.Equal(t, model.PoorlyDocumented, cfg.Quality.GateCategory)
	assert.Equal(t, 5, cfg.Quality.MagicMin)
	assert.Equal(t, 100, cfg.Quality.LongFunctionLines)
	assert.Equal(t, 6, cfg.Quality.MaxNesting)
	assert.Equal(t, 5, cfg.Quality.ExampleCap)
	assert.Equal(t, "source", cfg.SourceMarker)
	assert.ElementsMatch(t, []string{"externals", "examples"}, cfg.ExcludeSegments)
	assert.ElementsMatch(t, []string{".hh", ".cc", ".h", ".hpp", ".cpp"}, cfg.Extensions)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "")
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := `source_marker: src
no_ignore: true
exclude_segments: [third_party]
docs:
  lookahead_lines: 4
quality:
  gate_category: partially_documented
  example_cap: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(data), 0o644))

	cfg, err := Load("", dir)
	require.NoError(t, err)
	assert.Equal(t, "src", cfg.SourceMarker)
	assert.Equal(t, []string{"third_party"}, cfg.ExcludeSegments)
	assert.True(t, cfg.NoIgnore)
	assert.Equal(t, 4, cfg.Docs.LookaheadLines)
	assert.Equal(t, 2, cfg.Docs.LookbackLines, "unset keys keep defaults")
	assert.Equal(t, model.PartiallyDocumented, cfg.Quality.GateCategory)
	assert.Equal(t, 3, cfg.Quality.ExampleCap)
	assert.Equal(t, 5, cfg.Quality.MagicMin)
}

func TestParseKeepsExplicitZero(t *testing.T) {
	t.Parallel()

	data := `docs:
  lookback_lines: 0
quality:
  example_cap: 0
  max_nesting: 0
`
	cfg, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Zero(t, cfg.Docs.LookbackLines)
	assert.Zero(t, cfg.Quality.ExampleCap)
	assert.Zero(t, cfg.Quality.MaxNesting)
	assert.Equal(t, 10, cfg.Docs.LookaheadLines)
	assert.Equal(t, 5, cfg.Quality.MagicMin)
}

func TestParseEmptyListsKeepDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("extensions: []\nsource_marker: \"\"\nexclude_segments: []\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Extensions, cfg.Extensions)
	assert.Equal(t, "source", cfg.SourceMarker)
	assert.Empty(t, cfg.ExcludeSegments, "an empty exclude list turns exclusion off")
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "docs: [\n"},
		{"unknown category", "quality:\n  gate_category: excellent\n"},
		{"negative workers", "workers: -2\n"},
		{"negative lookback", "docs:\n  lookback_lines: -1\n"},
		{"zero lookahead", "docs:\n  lookahead_lines: 0\n"},
		{"zero magic floor", "quality:\n  magic_min: 0\n"},
		{"empty gate", "quality:\n  gate_category: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := Default().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "lookahead_lines: 10")

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
