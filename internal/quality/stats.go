package quality

import (
	"path/filepath"

	"github.com/phobologic/docaudit/internal/model"
)

// Stats folds FileQualityResults into a QualityReport. Example lists keep the
// first cap qualifying files in fold order. Not safe for concurrent use.
type Stats struct {
	opts   Options
	cap    int
	report *model.QualityReport
}

// NewStats returns empty statistics for the tree at root.
func NewStats(root string, opts Options, exampleCap int) *Stats {
	return &Stats{
		opts: opts,
		cap:  exampleCap,
		report: &model.QualityReport{
			Root:     root,
			Examples: make(map[string][]model.Example),
			Files:    []model.FileQualityResult{},
		},
	}
}

// Add folds one file's result into the counters.
func (s *Stats) Add(r model.FileQualityResult) {
	rep := s.report
	rep.FilesScanned++
	rep.Files = append(rep.Files, r)
	rel := s.rel(r.File)

	if HasMagicNumbers(&r, s.opts) {
		rep.MagicNumbers.FilesWithMagicNumbers++
		rep.MagicNumbers.TotalMagicNumbers += r.MagicNumbers
		s.example(model.FamilyMagicNumbers, model.Example{File: rel, Count: r.MagicNumbers, Samples: r.MagicSamples})
	}

	switch r.ComplexityTier {
	case VeryComplex:
		rep.Complexity.VeryComplex++
	case Complex:
		rep.Complexity.Complex++
	case Moderate:
		rep.Complexity.Moderate++
	default:
		rep.Complexity.Simple++
	}
	if r.ComplexityTier == VeryComplex || r.ComplexityTier == Complex {
		s.example(model.FamilyComplexity, model.Example{File: rel, Complexity: r.Complexity})
	}

	switch r.AgeTier {
	case VeryOld:
		rep.AgeIndicators.VeryOld++
	case Old:
		rep.AgeIndicators.Old++
	case Recent:
		rep.AgeIndicators.Recent++
	case Modern:
		rep.AgeIndicators.Modern++
	}
	if r.AgeTier == VeryOld || r.AgeTier == Old {
		s.example(model.FamilyAge, model.Example{File: rel, Year: r.OldestYear})
	}

	rep.CodeSmells.TodoComments += r.Todos
	rep.CodeSmells.FixmeComments += r.Fixmes
	rep.CodeSmells.HackComments += r.Hacks
	if n := r.Todos + r.Fixmes + r.Hacks; n > 0 {
		s.example(model.FamilyCodeSmells, model.Example{File: rel, Count: n})
	}
	if r.Deprecated {
		rep.CodeSmells.Deprecated++
		s.example(model.FamilyDeprecated, model.Example{File: rel})
	}

	if r.LongFunctions > 0 {
		rep.CodeSmells.LongFunctions += r.LongFunctions
		s.example(model.FamilyLongFunctions, model.Example{File: rel, Count: r.LongFunctions})
	}

	if DeepNesting(&r, s.opts) {
		rep.CodeSmells.DeepNesting++
		s.example(model.FamilyDeepNesting, model.Example{File: rel, Depth: r.MaxNesting})
	}
}

func (s *Stats) example(family string, ex model.Example) {
	if len(s.report.Examples[family]) >= s.cap {
		return
	}
	s.report.Examples[family] = append(s.report.Examples[family], ex)
}

func (s *Stats) rel(path string) string {
	if s.report.Root == "" {
		return path
	}
	rel, err := filepath.Rel(s.report.Root, path)
	if err != nil {
		return path
	}
	return rel
}

// Report returns the accumulated report.
func (s *Stats) Report() *model.QualityReport {
	return s.report
}
