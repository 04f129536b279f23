package quality

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/phobologic/docaudit/internal/model"
	"github.com/phobologic/docaudit/internal/scan"
)

const progressEvery = 1000

// Scanner runs the Quality Indicator Scanner over one category of a
// documentation report.
type Scanner struct {
	Category   model.Category
	Options    Options
	ExampleCap int
	Workers    int
	Logger     *log.Logger
}

// Run scans the files of s.Category in docs. Files that no longer exist or
// cannot be read are skipped.
func (s *Scanner) Run(ctx context.Context, docs *model.DocReport) (*model.QualityReport, error) {
	if docs == nil {
		return nil, errors.New("no documentation report to scan")
	}
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	category := s.Category
	if category == "" {
		category = model.PoorlyDocumented
	}
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	flagged := docs.Files(category)
	paths := make([]string, 0, len(flagged))
	for i := range flagged {
		path := flagged[i].File
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			logger.Debug("skipping missing file", "path", path)
			continue
		}
		paths = append(paths, path)
	}

	logger.Info("analyzing code quality", "category", category, "files", len(paths))
	results, err := scan.Files(ctx, paths, s.Workers, func(path, content string) model.FileQualityResult {
		return Analyze(path, content, s.Options)
	})
	if err != nil {
		return nil, err
	}

	stats := NewStats(docs.Root, s.Options, s.ExampleCap)
	for i, r := range results {
		if i%progressEvery == 0 {
			logger.Info("progress", "done", i, "total", len(results))
		}
		if r.Err != nil {
			logger.Warn("skipping unreadable file", "path", r.Path, "err", r.Err)
			continue
		}
		stats.Add(r.Value)
	}
	return stats.Report(), nil
}
