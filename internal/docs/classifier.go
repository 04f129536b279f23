package docs

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/phobologic/docaudit/internal/model"
	"github.com/phobologic/docaudit/internal/scan"
)

const progressEvery = 1000

// Classifier runs the Documentation Classifier over a list of files.
type Classifier struct {
	Root         string
	SourceMarker string
	Options      Options
	Workers      int
	Logger       *log.Logger
}

// Run analyzes paths and returns the aggregated report. Unreadable files are
// logged and left out of every count.
func (c *Classifier) Run(ctx context.Context, paths []string) (*model.DocReport, error) {
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}

	logger.Info("analyzing documentation", "files", len(paths))
	results, err := scan.Files(ctx, paths, c.Workers, func(path, content string) model.FileDocResult {
		return Analyze(path, content, c.Options)
	})
	if err != nil {
		return nil, err
	}

	agg := NewAggregator(c.Root, c.SourceMarker)
	for i, r := range results {
		if i%progressEvery == 0 {
			logger.Info("progress", "done", i, "total", len(results))
		}
		if r.Err != nil {
			logger.Warn("skipping unreadable file", "path", r.Path, "err", r.Err)
			continue
		}
		agg.Add(r.Value)
	}
	return agg.Report(), nil
}
