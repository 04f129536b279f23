// Package model defines core data structures for docaudit.
package model

import "sort"

// DeclKind indicates the kind of a declaration site.
type DeclKind string

const (
	Type     DeclKind = "type"
	Callable DeclKind = "callable"
)

// SpanStyle indicates how a documentation span is delimited.
type SpanStyle string

const (
	BlockStyle SpanStyle = "block"
	LineStyle  SpanStyle = "line"
)

// Category is the documentation tier of a file.
type Category string

const (
	WellDocumented      Category = "well_documented"
	PartiallyDocumented Category = "partially_documented"
	PoorlyDocumented    Category = "poorly_documented"
)

// Categories lists every category in report order.
var Categories = []Category{WellDocumented, PartiallyDocumented, PoorlyDocumented}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case WellDocumented, PartiallyDocumented, PoorlyDocumented:
		return true
	}
	return false
}

// DeclarationSite is a type declaration or callable signature found in a file.
type DeclarationSite struct {
	Kind DeclKind
	Name string
	Line int // zero-based
}

// DocumentationSpan is a documentation block or a single doc-comment line.
type DocumentationSpan struct {
	Style SpanStyle
	Start int // zero-based
	End   int
	Text  string
}

// FileDocResult is the Documentation Classifier's record for one file.
type FileDocResult struct {
	File                string   `json:"file"`
	Classes             int      `json:"classes"`
	Functions           int      `json:"functions"`
	DocumentedClasses   int      `json:"documented_classes"`
	DocumentedFunctions int      `json:"documented_functions"`
	DocBlocks           int      `json:"doc_blocks"`
	DocLines            int      `json:"doc_lines"`
	BriefCount          int      `json:"brief_count"`
	ParamCount          int      `json:"param_count"`
	ReturnCount         int      `json:"return_count"`
	DocRatio            float64  `json:"doc_ratio"`
	QualityScore        int      `json:"quality_score"`
	Category            Category `json:"category"`
	FileSize            int      `json:"file_size"`
}

// Items returns the number of declaration sites in the file.
func (r *FileDocResult) Items() int {
	return r.Classes + r.Functions
}

// ModuleAggregate rolls up FileDocResults for one module.
type ModuleAggregate struct {
	Files        int `json:"files"`
	Classes      int `json:"classes"`
	Functions    int `json:"functions"`
	DocClasses   int `json:"doc_classes"`
	DocFunctions int `json:"doc_functions"`
	WellDoc      int `json:"well_doc"`
	PartialDoc   int `json:"partial_doc"`
	PoorDoc      int `json:"poor_doc"`
}

// DocPercent is the share of documented declaration sites in the module.
func (m *ModuleAggregate) DocPercent() float64 {
	items := m.Classes + m.Functions
	return 100 * float64(m.DocClasses+m.DocFunctions) / float64(max(items, 1))
}

// DocSummary holds the headline percentages of a documentation run.
type DocSummary struct {
	WellDocumentedPct        float64 `json:"well_documented_pct"`
	PartiallyDocumentedPct   float64 `json:"partially_documented_pct"`
	PoorlyDocumentedPct      float64 `json:"poorly_documented_pct"`
	ClassDocumentationPct    float64 `json:"class_documentation_pct"`
	FunctionDocumentationPct float64 `json:"function_documentation_pct"`
}

// DocReport is the complete output of the Documentation Classifier and the
// handoff artifact read by the Quality Indicator Scanner.
type DocReport struct {
	Root                string                       `json:"root"`
	TotalFiles          int                          `json:"total_files"`
	TotalClasses        int                          `json:"total_classes"`
	TotalFunctions      int                          `json:"total_functions"`
	DocumentedClasses   int                          `json:"documented_classes"`
	DocumentedFunctions int                          `json:"documented_functions"`
	FilesByCategory     map[Category][]FileDocResult `json:"files_by_category"`
	ModuleStats         map[string]*ModuleAggregate  `json:"module_stats"`
	Summary             DocSummary                   `json:"summary"`
}

// Files returns the results in the given category.
func (r *DocReport) Files(c Category) []FileDocResult {
	return r.FilesByCategory[c]
}

// Modules returns the names of modules with at least one file, largest
// first. Ties sort by name.
func (r *DocReport) Modules() []string {
	names := make([]string, 0, len(r.ModuleStats))
	for name, ms := range r.ModuleStats {
		if ms != nil && ms.Files > 0 {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := r.ModuleStats[names[i]], r.ModuleStats[names[j]]
		if a.Files != b.Files {
			return a.Files > b.Files
		}
		return names[i] < names[j]
	})
	return names
}

// FileQualityResult is the Quality Indicator Scanner's record for one file.
type FileQualityResult struct {
	File            string   `json:"file"`
	Issues          []string `json:"issues"`
	MagicNumbers    int      `json:"magic_numbers"`
	MagicSamples    []string `json:"magic_samples,omitempty"`
	ControlKeywords int      `json:"control_keywords"`
	CodeLines       int      `json:"code_lines"`
	Complexity      float64  `json:"complexity"`
	ComplexityTier  string   `json:"complexity_tier"`
	OldestYear      int      `json:"oldest_year,omitempty"`
	AgeTier         string   `json:"age_tier,omitempty"`
	Todos           int      `json:"todos"`
	Fixmes          int      `json:"fixmes"`
	Hacks           int      `json:"hacks"`
	Deprecated      bool     `json:"deprecated"`
	LongFunctions   int      `json:"long_functions"`
	MaxNesting      int      `json:"max_nesting"`
}

// Example is a sample file recorded for human review of one indicator family.
type Example struct {
	File       string   `json:"file"`
	Count      int      `json:"count,omitempty"`
	Samples    []string `json:"samples,omitempty"`
	Depth      int      `json:"depth,omitempty"`
	Year       int      `json:"year,omitempty"`
	Complexity float64  `json:"complexity,omitempty"`
}

// Example families.
const (
	FamilyMagicNumbers  = "magic_numbers"
	FamilyComplexity    = "complexity"
	FamilyAge           = "age"
	FamilyCodeSmells    = "code_smells"
	FamilyDeprecated    = "deprecated"
	FamilyLongFunctions = "long_functions"
	FamilyDeepNesting   = "deep_nesting"
)

// MagicNumberStats counts magic-number findings.
type MagicNumberStats struct {
	FilesWithMagicNumbers int `json:"files_with_magic_numbers"`
	TotalMagicNumbers     int `json:"total_magic_numbers"`
}

// ComplexityStats counts files per complexity tier.
type ComplexityStats struct {
	VeryComplex int `json:"very_complex"`
	Complex     int `json:"complex"`
	Moderate    int `json:"moderate"`
	Simple      int `json:"simple"`
}

// Total is the number of files placed in any tier.
func (s ComplexityStats) Total() int {
	return s.VeryComplex + s.Complex + s.Moderate + s.Simple
}

// AgeStats counts files per age tier.
type AgeStats struct {
	VeryOld int `json:"very_old"`
	Old     int `json:"old"`
	Recent  int `json:"recent"`
	Modern  int `json:"modern"`
}

// Total is the number of files placed in any tier.
func (s AgeStats) Total() int {
	return s.VeryOld + s.Old + s.Recent + s.Modern
}

// CodeSmellStats counts code-smell markers and structural flags.
type CodeSmellStats struct {
	TodoComments  int `json:"todo_comments"`
	FixmeComments int `json:"fixme_comments"`
	HackComments  int `json:"hack_comments"`
	Deprecated    int `json:"deprecated"`
	LongFunctions int `json:"long_functions"`
	DeepNesting   int `json:"deep_nesting"`
}

// QualityReport is the complete output of the Quality Indicator Scanner.
type QualityReport struct {
	Root          string               `json:"root"`
	FilesScanned  int                  `json:"files_scanned"`
	MagicNumbers  MagicNumberStats     `json:"magic_numbers"`
	Complexity    ComplexityStats      `json:"complexity"`
	AgeIndicators AgeStats             `json:"age_indicators"`
	CodeSmells    CodeSmellStats       `json:"code_smells"`
	Examples      map[string][]Example `json:"examples"`
	Files         []FileQualityResult  `json:"files"`
}
