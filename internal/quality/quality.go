// Package quality implements the Quality Indicator Scanner: magic numbers,
// complexity, age, code smells and structural shape of files the
// Documentation Classifier flagged.
package quality

import (
	"fmt"
	"strings"

	"github.com/phobologic/docaudit/internal/model"
	"github.com/phobologic/docaudit/internal/parse"
)

// Complexity tiers.
const (
	VeryComplex = "very_complex"
	Complex     = "complex"
	Moderate    = "moderate"
	Simple      = "simple"
)

// Age tiers.
const (
	VeryOld = "very_old"
	Old     = "old"
	Recent  = "recent"
	Modern  = "modern"
)

// Options tunes per-file analysis.
type Options struct {
	MagicMin          int
	LongFunctionLines int
	MaxNesting        int
}

// DefaultOptions matches the defaults in config.
var DefaultOptions = Options{MagicMin: 5, LongFunctionLines: 100, MaxNesting: 6}

const magicSampleSize = 5

// Analyze computes all five indicator families for one file. Each family is
// evaluated independently of the others.
func Analyze(path, content string, opts Options) model.FileQualityResult {
	r := model.FileQualityResult{File: path, Issues: []string{}}
	lines := parse.Lines(content)

	magic := parse.MagicNumbers(parse.StripComments(lines))
	r.MagicNumbers = len(magic)
	if len(magic) >= opts.MagicMin {
		r.MagicSamples = magic[:min(len(magic), magicSampleSize)]
		r.Issues = append(r.Issues, fmt.Sprintf("Contains %d magic numbers", len(magic)))
	}

	r.ControlKeywords = parse.ControlKeywords(content)
	r.CodeLines = parse.CodeLines(lines)
	r.Complexity = ComplexityScore(r.ControlKeywords, r.CodeLines)
	r.ComplexityTier = ComplexityTier(r.Complexity)
	switch r.ComplexityTier {
	case VeryComplex:
		r.Issues = append(r.Issues, "Very complex (high cyclomatic complexity)")
	case Complex:
		r.Issues = append(r.Issues, "Complex code")
	}

	if year, ok := OldestYear(content); ok {
		r.OldestYear = year
		r.AgeTier = AgeTier(year)
		switch r.AgeTier {
		case VeryOld:
			r.Issues = append(r.Issues, fmt.Sprintf("Contains references to %d (likely old code)", year))
		case Old:
			r.Issues = append(r.Issues, fmt.Sprintf("References year %d", year))
		}
	}

	smells := parse.Smells(content)
	r.Todos, r.Fixmes, r.Hacks, r.Deprecated = smells.Todo, smells.Fixme, smells.Hack, smells.Deprecated
	if r.Todos > 0 {
		r.Issues = append(r.Issues, fmt.Sprintf("Contains %d TODO comment(s)", r.Todos))
	}
	if r.Fixmes > 0 {
		r.Issues = append(r.Issues, fmt.Sprintf("Contains %d FIXME comment(s)", r.Fixmes))
	}
	if r.Hacks > 0 {
		r.Issues = append(r.Issues, fmt.Sprintf("Contains %d HACK comment(s)", r.Hacks))
	}
	if r.Deprecated {
		r.Issues = append(r.Issues, "Contains deprecated/obsolete markers")
	}

	r.LongFunctions = LongBlocks(content, opts.LongFunctionLines)
	if r.LongFunctions > 0 {
		r.Issues = append(r.Issues, fmt.Sprintf("Contains %d very long function(s) (>%d lines)", r.LongFunctions, opts.LongFunctionLines))
	}

	r.MaxNesting = parse.MaxBraceDepth(content)
	if r.MaxNesting > opts.MaxNesting {
		r.Issues = append(r.Issues, fmt.Sprintf("Deep nesting detected (max depth: %d)", r.MaxNesting))
	}

	return r
}

// DeepNesting reports whether r crossed the nesting limit.
func DeepNesting(r *model.FileQualityResult, opts Options) bool {
	return r.MaxNesting > opts.MaxNesting
}

// HasMagicNumbers reports whether r met the magic-number floor.
func HasMagicNumbers(r *model.FileQualityResult, opts Options) bool {
	return r.MagicNumbers >= opts.MagicMin
}

// ComplexityScore is control keywords per hundred code lines, with files
// under a hundred lines treated as a hundred.
func ComplexityScore(keywords, codeLines int) float64 {
	return float64(keywords) / max(float64(codeLines)/100, 1)
}

// ComplexityTier maps a complexity score to its tier.
func ComplexityTier(score float64) string {
	switch {
	case score > 15:
		return VeryComplex
	case score > 10:
		return Complex
	case score > 5:
		return Moderate
	default:
		return Simple
	}
}

// OldestYear returns the smallest year-shaped token in content.
func OldestYear(content string) (int, bool) {
	years := parse.Years(content)
	if len(years) == 0 {
		return 0, false
	}
	oldest := 0
	for i, y := range years {
		if i == 0 || y < oldest {
			oldest = y
		}
	}
	return oldest, true
}

// AgeTier maps the oldest referenced year to its tier.
func AgeTier(year int) string {
	switch {
	case year < 2010:
		return VeryOld
	case year < 2016:
		return Old
	case year < 2021:
		return Recent
	default:
		return Modern
	}
}

// LongBlocks counts brace blocks spanning more than limit newlines.
func LongBlocks(content string, limit int) int {
	n := 0
	for _, block := range parse.Blocks(content) {
		if strings.Count(block, "\n") > limit {
			n++
		}
	}
	return n
}
