// Package artifact persists analyzer results as JSON. The documentation
// artifact is the handoff from the classifier to the quality scanner.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/phobologic/docaudit/internal/model"
)

// Default file names, relative to the working directory.
const (
	DocsFile    = "doc_analysis_results.json"
	QualityFile = "code_quality_results.json"
)

// ErrNoArtifact is returned when the file to load does not exist.
var ErrNoArtifact = errors.New("artifact not found")

// SaveDocs writes rep to path.
func SaveDocs(path string, rep *model.DocReport) error {
	return save(path, rep)
}

// LoadDocs reads a documentation report from path.
func LoadDocs(path string) (*model.DocReport, error) {
	var rep model.DocReport
	if err := load(path, &rep); err != nil {
		return nil, err
	}
	if rep.FilesByCategory == nil {
		rep.FilesByCategory = make(map[model.Category][]model.FileDocResult)
	}
	for c := range rep.FilesByCategory {
		if !c.Valid() {
			return nil, fmt.Errorf("loading %s: unknown category %q", path, c)
		}
	}
	return &rep, nil
}

// SaveQuality writes rep to path.
func SaveQuality(path string, rep *model.QualityReport) error {
	return save(path, rep)
}

// LoadQuality reads a quality report from path.
func LoadQuality(path string) (*model.QualityReport, error) {
	var rep model.QualityReport
	if err := load(path, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

func save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	data = append(data, '\n')

	// Replace atomically.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func load(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, ErrNoArtifact)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
