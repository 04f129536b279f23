// Package report renders analyzer results as console text.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/phobologic/docaudit/internal/model"
	"github.com/phobologic/docaudit/internal/ranking"
)

const width = 80

var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	section = color.New(color.Bold).SprintFunc()
	good    = color.New(color.FgGreen).SprintFunc()
	fair    = color.New(color.FgYellow).SprintFunc()
	bad     = color.New(color.FgRed).SprintFunc()
	gray    = color.New(color.FgHiBlack).SprintFunc()
)

// examplesShown is how many examples per family the quality report prints.
const examplesShown = 3

func rule(w io.Writer, ch string) {
	fmt.Fprintln(w, strings.Repeat(ch, width))
}

func title(w io.Writer, text string) {
	rule(w, "=")
	fmt.Fprintln(w, heading(text))
	rule(w, "=")
	fmt.Fprintln(w)
}

func sectionHeader(w io.Writer, text string) {
	fmt.Fprintln(w, section(text))
	rule(w, "-")
}

func pct(part, whole int) float64 {
	return 100 * float64(part) / float64(max(whole, 1))
}

func count(n int) string {
	return humanize.Comma(int64(n))
}

func line(w io.Writer, label string, value string) {
	fmt.Fprintf(w, "%-29s%s\n", label+":", value)
}

func countPct(n, whole int) string {
	return fmt.Sprintf("%s (%.1f%%)", count(n), pct(n, whole))
}

// Docs writes the documentation coverage report.
func Docs(w io.Writer, rep *model.DocReport) {
	total := rep.TotalFiles
	well := len(rep.Files(model.WellDocumented))
	partial := len(rep.Files(model.PartiallyDocumented))
	poor := len(rep.Files(model.PoorlyDocumented))

	title(w, "DOCUMENTATION COVERAGE ANALYSIS")

	sectionHeader(w, "OVERALL STATISTICS")
	line(w, "Total files analyzed", count(total))
	line(w, "Total classes found", count(rep.TotalClasses))
	line(w, "Total functions found", count(rep.TotalFunctions))
	line(w, "Documented classes", countPct(rep.DocumentedClasses, rep.TotalClasses))
	line(w, "Documented functions", countPct(rep.DocumentedFunctions, rep.TotalFunctions))
	fmt.Fprintln(w)

	sectionHeader(w, "DOCUMENTATION QUALITY BREAKDOWN")
	line(w, "Well-documented files", good(countPct(well, total)))
	fmt.Fprintln(w, gray("  - Comprehensive documentation with details"))
	fmt.Fprintln(w)
	line(w, "Partially documented files", fair(countPct(partial, total)))
	fmt.Fprintln(w, gray("  - Some documentation but incomplete or vague"))
	fmt.Fprintln(w)
	line(w, "Poorly documented files", bad(countPct(poor, total)))
	fmt.Fprintln(w, gray("  - Minimal or no documentation"))
	fmt.Fprintln(w)

	sectionHeader(w, "MODULE-LEVEL BREAKDOWN")
	fmt.Fprintf(w, "%-25s %-8s %-8s %-8s %-8s %-8s\n", "Module", "Files", "Well", "Partial", "Poor", "Doc %")
	rule(w, "-")
	for _, name := range rep.Modules() {
		ms := rep.ModuleStats[name]
		fmt.Fprintf(w, "%-25s %-8d %-8d %-8d %-8d %-7.1f%%\n",
			name, ms.Files, ms.WellDoc, ms.PartialDoc, ms.PoorDoc, ms.DocPercent())
	}
	fmt.Fprintln(w)
	rule(w, "=")
}

// Quality writes the code quality report.
func Quality(w io.Writer, rep *model.QualityReport) {
	title(w, "CODE QUALITY DEEP DIVE")

	sectionHeader(w, "MAGIC NUMBERS")
	line(w, "Files with magic numbers", count(rep.MagicNumbers.FilesWithMagicNumbers))
	line(w, "Total magic numbers found", count(rep.MagicNumbers.TotalMagicNumbers))
	if ex := rep.Examples[model.FamilyMagicNumbers]; len(ex) > 0 {
		fmt.Fprintln(w, "\nExamples:")
		for _, e := range ex[:min(len(ex), examplesShown)] {
			fmt.Fprintf(w, "  %s: %d magic numbers\n", e.File, e.Count)
			fmt.Fprintf(w, "    Samples: %s\n", strings.Join(e.Samples, ", "))
		}
	}
	fmt.Fprintln(w)

	cx := rep.Complexity
	total := cx.Total()
	sectionHeader(w, "CODE COMPLEXITY")
	line(w, "Very complex files", bad(countPct(cx.VeryComplex, total)))
	line(w, "Complex files", fair(countPct(cx.Complex, total)))
	line(w, "Moderate complexity", countPct(cx.Moderate, total))
	line(w, "Simple files", good(countPct(cx.Simple, total)))
	if ex := rep.Examples[model.FamilyComplexity]; len(ex) > 0 {
		fmt.Fprintln(w, "\nExamples:")
		for _, e := range ex[:min(len(ex), examplesShown)] {
			fmt.Fprintf(w, "  %s: complexity %.1f\n", e.File, e.Complexity)
		}
	}
	fmt.Fprintln(w)

	age := rep.AgeIndicators
	total = age.Total()
	sectionHeader(w, "CODE AGE INDICATORS")
	line(w, "Very old (pre-2010)", countPct(age.VeryOld, total))
	line(w, "Old (2010-2015)", countPct(age.Old, total))
	line(w, "Recent (2016-2020)", countPct(age.Recent, total))
	line(w, "Modern (2021+)", countPct(age.Modern, total))
	if ex := rep.Examples[model.FamilyAge]; len(ex) > 0 {
		fmt.Fprintln(w, "\nExamples:")
		for _, e := range ex[:min(len(ex), examplesShown)] {
			fmt.Fprintf(w, "  %s: year %d\n", e.File, e.Year)
		}
	}
	fmt.Fprintln(w)

	sm := rep.CodeSmells
	sectionHeader(w, "CODE SMELLS")
	line(w, "TODO comments", count(sm.TodoComments))
	line(w, "FIXME comments", count(sm.FixmeComments))
	line(w, "HACK comments", count(sm.HackComments))
	line(w, "Deprecated/obsolete", count(sm.Deprecated))
	line(w, "Very long functions", count(sm.LongFunctions))
	line(w, "Deep nesting issues", count(sm.DeepNesting))
	if ex := rep.Examples[model.FamilyDeepNesting]; len(ex) > 0 {
		fmt.Fprintln(w, "\nDeep nesting examples:")
		for _, e := range ex[:min(len(ex), examplesShown)] {
			fmt.Fprintf(w, "  %s: depth %d\n", e.File, e.Depth)
		}
	}
	fmt.Fprintln(w)
	rule(w, "=")
}

func relTo(root, path string) string {
	if root == "" {
		return path
	}
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}

// Examples writes the per-tier example view of a documentation report.
func Examples(w io.Writer, rep *model.DocReport, sel ranking.Selection) {
	title(w, "CONCRETE EXAMPLES FROM EACH CATEGORY")

	sectionHeader(w, fmt.Sprintf("1. WELL-DOCUMENTED FILES (Top %d by quality score)", len(sel.Well)))
	for i, f := range sel.Well {
		fmt.Fprintf(w, "%d. %s\n", i+1, relTo(rep.Root, f.File))
		fmt.Fprintf(w, "   Quality Score: %s\n", good(f.QualityScore))
		fmt.Fprintf(w, "   Classes: %d (documented: %d)\n", f.Classes, f.DocumentedClasses)
		fmt.Fprintf(w, "   Functions: %d (documented: %d)\n", f.Functions, f.DocumentedFunctions)
		fmt.Fprintf(w, "   Doc blocks: %d, Params: %d, Returns: %d\n", f.DocBlocks, f.ParamCount, f.ReturnCount)
		fmt.Fprintln(w)
	}

	sectionHeader(w, fmt.Sprintf("2. PARTIALLY DOCUMENTED FILES (Top %d)", len(sel.Partial)))
	for i, f := range sel.Partial {
		fmt.Fprintf(w, "%d. %s\n", i+1, relTo(rep.Root, f.File))
		fmt.Fprintf(w, "   Quality Score: %s\n", fair(f.QualityScore))
		fmt.Fprintf(w, "   Classes: %d (documented: %d)\n", f.Classes, f.DocumentedClasses)
		fmt.Fprintf(w, "   Functions: %d (documented: %d)\n", f.Functions, f.DocumentedFunctions)
		fmt.Fprintf(w, "   Doc blocks: %d\n", f.DocBlocks)
		fmt.Fprintln(w)
	}

	sectionHeader(w, "3. POORLY DOCUMENTED FILES (Examples by issue type)")
	if f := sel.Undocumented; f != nil {
		fmt.Fprintln(w, "Large file with zero documentation:")
		fmt.Fprintf(w, "  %s\n", relTo(rep.Root, f.File))
		fmt.Fprintf(w, "  Classes: %d, Functions: %d, Doc blocks: 0\n", f.Classes, f.Functions)
		fmt.Fprintln(w)
	}
	if len(sel.Minimal) > 0 {
		fmt.Fprintln(w, "Files with minimal documentation:")
		for _, f := range sel.Minimal {
			fmt.Fprintf(w, "  %s\n", relTo(rep.Root, f.File))
			fmt.Fprintf(w, "    Doc blocks: %d, Classes: %d, Functions: %d\n", f.DocBlocks, f.Classes, f.Functions)
		}
		fmt.Fprintln(w)
	}
	rule(w, "=")

	fmt.Fprintln(w)
	sectionHeader(w, "SUMMARY STATISTICS")
	line(w, "Total files analyzed", count(rep.TotalFiles))
	line(w, "Total classes", count(rep.TotalClasses))
	line(w, "Total functions", count(rep.TotalFunctions))
	fmt.Fprintln(w)
	line(w, "Well-documented files", countPct(len(rep.Files(model.WellDocumented)), rep.TotalFiles))
	line(w, "Partially documented", countPct(len(rep.Files(model.PartiallyDocumented)), rep.TotalFiles))
	line(w, "Poorly documented", countPct(len(rep.Files(model.PoorlyDocumented)), rep.TotalFiles))
}
