// Package docs implements the Documentation Classifier: it scores how well
// each file is documented and rolls the scores up per module.
package docs

import (
	"github.com/phobologic/docaudit/internal/model"
	"github.com/phobologic/docaudit/internal/parse"
)

// Score thresholds.
const (
	WellThreshold    = 60
	PartialThreshold = 25
)

// Options tunes per-file analysis.
type Options struct {
	LookaheadLines int
	LookbackLines  int
}

// DefaultOptions matches the defaults in config.
var DefaultOptions = Options{LookaheadLines: 10, LookbackLines: 2}

// Signals are the inputs of the quality score.
type Signals struct {
	DocRatio     float64
	HasParam     bool
	HasReturn    bool
	HasBrief     bool
	DocCharRatio float64
}

// Analyze classifies the documentation of one file. It is pure: the same
// content always yields the same result.
func Analyze(path, content string, opts Options) model.FileDocResult {
	sites := parse.Declarations(content)
	spans := parse.DocSpans(content)
	covered := parse.CoveredLines(parse.Lines(content), opts.LookaheadLines)

	r := model.FileDocResult{File: path}
	for _, site := range sites {
		documented := parse.IsCovered(covered, site.Line, opts.LookbackLines)
		switch site.Kind {
		case model.Type:
			r.Classes++
			if documented {
				r.DocumentedClasses++
			}
		case model.Callable:
			r.Functions++
			if documented {
				r.DocumentedFunctions++
			}
		}
	}

	for _, s := range spans {
		if s.Style == model.BlockStyle {
			r.DocBlocks++
		} else {
			r.DocLines++
		}
	}

	docText := parse.DocText(spans)
	tags := parse.CountTags(docText)
	r.BriefCount = tags.Brief
	r.ParamCount = tags.Param
	r.ReturnCount = tags.Return
	r.FileSize = parse.CharCount(content)

	if items := r.Items(); items > 0 {
		r.DocRatio = float64(r.DocumentedClasses+r.DocumentedFunctions) / float64(items)
	}

	sig := Signals{
		DocRatio:  r.DocRatio,
		HasParam:  r.ParamCount > 0,
		HasReturn: r.ReturnCount > 0,
		HasBrief:  r.BriefCount > 0,
	}
	if r.FileSize > 0 {
		sig.DocCharRatio = float64(parse.CharCount(docText)) / float64(r.FileSize)
	}

	r.QualityScore = Score(sig)
	r.Category = Categorize(r.QualityScore)
	return r
}

// Score sums the documentation bonuses. Each bonus applies at most once and
// the total is not clamped.
func Score(s Signals) int {
	score := 0
	switch {
	case s.DocRatio > 0.7:
		score += 30
	case s.DocRatio > 0.4:
		score += 15
	case s.DocRatio > 0.1:
		score += 5
	}
	if s.HasParam {
		score += 20
	}
	if s.HasReturn {
		score += 20
	}
	if s.HasBrief {
		score += 15
	}
	if s.DocCharRatio > 0.1 {
		score += 15
	}
	return score
}

// Categorize maps a quality score to its tier.
func Categorize(score int) model.Category {
	switch {
	case score >= WellThreshold:
		return model.WellDocumented
	case score >= PartialThreshold:
		return model.PartiallyDocumented
	default:
		return model.PoorlyDocumented
	}
}
