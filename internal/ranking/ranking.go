// Package ranking picks representative files from a documentation report.
package ranking

import (
	"sort"

	"github.com/phobologic/docaudit/internal/model"
)

// Thresholds for the poorly documented showcases.
const (
	LargeFileItems  = 20
	MinimalDocLimit = 3
	minimalShown    = 3
)

// Selection is a set of example files for each documentation tier.
type Selection struct {
	Well    []model.FileDocResult
	Partial []model.FileDocResult
	// Undocumented is the first poorly documented file with more than
	// LargeFileItems declarations and no doc blocks, if any.
	Undocumented *model.FileDocResult
	// Minimal holds poorly documented files with one or two doc blocks.
	Minimal []model.FileDocResult
}

// Select returns up to top well and partially documented files by quality
// score, and showcases of the poorly documented partition.
func Select(rep *model.DocReport, top int) Selection {
	sel := Selection{
		Well:    TopByScore(rep.Files(model.WellDocumented), top),
		Partial: TopByScore(rep.Files(model.PartiallyDocumented), top),
	}

	poor := rep.Files(model.PoorlyDocumented)
	for i := range poor {
		if poor[i].Items() > LargeFileItems && poor[i].DocBlocks == 0 {
			f := poor[i]
			sel.Undocumented = &f
			break
		}
	}
	for i := range poor {
		if len(sel.Minimal) == minimalShown {
			break
		}
		if poor[i].DocBlocks > 0 && poor[i].DocBlocks < MinimalDocLimit {
			sel.Minimal = append(sel.Minimal, poor[i])
		}
	}
	return sel
}

// TopByScore returns the n highest scoring files. Equal scores keep their
// input order. n <= 0 returns all files, sorted.
func TopByScore(files []model.FileDocResult, n int) []model.FileDocResult {
	sorted := make([]model.FileDocResult, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].QualityScore > sorted[j].QualityScore
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
