package docs

import (
	"path/filepath"
	"strings"

	"github.com/phobologic/docaudit/internal/model"
)

// OtherModule collects files outside the source marker.
const OtherModule = "other"

// ModuleName returns the path segment following the first marker segment,
// or OtherModule if there is none.
func ModuleName(path, marker string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	for i, part := range parts {
		if part != marker {
			continue
		}
		if i+1 < len(parts) {
			return parts[i+1]
		}
		return OtherModule
	}
	return OtherModule
}

// Aggregator folds FileDocResults into a DocReport. It is not safe for
// concurrent use; fold from a single goroutine.
type Aggregator struct {
	marker string
	report *model.DocReport
}

// NewAggregator returns an empty aggregator for the tree at root.
func NewAggregator(root, marker string) *Aggregator {
	byCat := make(map[model.Category][]model.FileDocResult, len(model.Categories))
	for _, c := range model.Categories {
		byCat[c] = []model.FileDocResult{}
	}
	return &Aggregator{
		marker: marker,
		report: &model.DocReport{
			Root:            root,
			FilesByCategory: byCat,
			ModuleStats:     make(map[string]*model.ModuleAggregate),
		},
	}
}

// Add folds one result into the totals, its category and its module.
func (a *Aggregator) Add(r model.FileDocResult) {
	rep := a.report
	rep.TotalFiles++
	rep.TotalClasses += r.Classes
	rep.TotalFunctions += r.Functions
	rep.DocumentedClasses += r.DocumentedClasses
	rep.DocumentedFunctions += r.DocumentedFunctions
	rep.FilesByCategory[r.Category] = append(rep.FilesByCategory[r.Category], r)

	name := ModuleName(r.File, a.marker)
	ms := rep.ModuleStats[name]
	if ms == nil {
		ms = &model.ModuleAggregate{}
		rep.ModuleStats[name] = ms
	}
	ms.Files++
	ms.Classes += r.Classes
	ms.Functions += r.Functions
	ms.DocClasses += r.DocumentedClasses
	ms.DocFunctions += r.DocumentedFunctions
	switch r.Category {
	case model.WellDocumented:
		ms.WellDoc++
	case model.PartiallyDocumented:
		ms.PartialDoc++
	default:
		ms.PoorDoc++
	}
}

// Report finalizes the summary and returns the report. The aggregator must
// not be used afterwards.
func (a *Aggregator) Report() *model.DocReport {
	rep := a.report
	total := float64(max(rep.TotalFiles, 1))
	rep.Summary = model.DocSummary{
		WellDocumentedPct:        100 * float64(len(rep.FilesByCategory[model.WellDocumented])) / total,
		PartiallyDocumentedPct:   100 * float64(len(rep.FilesByCategory[model.PartiallyDocumented])) / total,
		PoorlyDocumentedPct:      100 * float64(len(rep.FilesByCategory[model.PoorlyDocumented])) / total,
		ClassDocumentationPct:    100 * float64(rep.DocumentedClasses) / float64(max(rep.TotalClasses, 1)),
		FunctionDocumentationPct: 100 * float64(rep.DocumentedFunctions) / float64(max(rep.TotalFunctions, 1)),
	}
	return rep
}
