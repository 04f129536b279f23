package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phobologic/docaudit/internal/config"
)

// TestGenerateConfigParses verifies that the starter file decodes back to the
// defaults.
func TestGenerateConfigParses(t *testing.T) {
	t.Parallel()
	content, err := generateConfig()
	if err != nil {
		t.Fatalf("generateConfig: %v", err)
	}
	if !strings.HasPrefix(content, "# docaudit configuration") {
		t.Errorf("missing header:\n%s", content)
	}

	cfg, err := config.Parse([]byte(content))
	if err != nil {
		t.Fatalf("parsing generated config: %v", err)
	}
	want := config.Default()
	if cfg.SourceMarker != want.SourceMarker || cfg.Quality != want.Quality || cfg.Docs != want.Docs {
		t.Errorf("generated config differs from defaults: %+v", cfg)
	}
	for _, key := range []string{"extensions:", "exclude_segments:", "lookahead_lines: 10", "gate_category: poorly_documented", "example_cap: 5"} {
		if !strings.Contains(content, key) {
			t.Errorf("generated config missing %q", key)
		}
	}
}

// TestInitCreatesFile verifies that init writes the file into a directory
// argument.
func TestInitCreatesFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	if _, stderr, err := runCmd(t, "init", dir); err != nil {
		t.Fatalf("init: %v\nstderr: %s", err, stderr)
	}

	path := filepath.Join(dir, config.DefaultFileName)
	if _, err := config.Load("", dir); err != nil {
		t.Fatalf("loading written config: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not created: %v", err)
	}
}

// TestInitDryRun verifies that --dry-run prints the file and touches nothing.
func TestInitDryRun(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	stdout, _, err := runCmd(t, "init", "--dry-run", path)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("--dry-run should not create the file")
	}
	if !strings.Contains(stdout, "source_marker: source") {
		t.Errorf("dry-run output missing config:\n%s", stdout)
	}
}

// TestInitRefusesOverwrite verifies that an existing file is kept unless
// --force is given.
func TestInitRefusesOverwrite(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	existing := "workers: 2\n"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCmd(t, "init", path)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected refusal, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != existing {
		t.Error("existing file must not be modified")
	}

	if _, _, err := runCmd(t, "init", "--force", path); err != nil {
		t.Fatalf("init --force: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) == existing {
		t.Error("--force should overwrite the file")
	}
}

// TestInitIdempotent verifies that forced reruns produce identical output.
func TestInitIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "custom.yaml")

	if _, _, err := runCmd(t, "init", path); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, _ := os.ReadFile(path)

	if _, _, err := runCmd(t, "init", "--force", path); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, _ := os.ReadFile(path)

	if string(first) != string(second) {
		t.Errorf("init is not idempotent:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}
