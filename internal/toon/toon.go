// Package toon implements TOON (Token-Oriented Object Notation) encoding.
package toon

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/phobologic/docaudit/internal/model"
)

var (
	needsQuoting = regexp.MustCompile(`[,:"\\{}\[\]]`)
	looksNumeric = regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d+)?$`)
	keywords     = map[string]struct{}{
		"true":  {},
		"false": {},
		"null":  {},
	}
)

// EncodeDocs converts a documentation report into TOON format.
func EncodeDocs(rep *model.DocReport) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("root: %s", encodeValue(rep.Root)))
	parts = append(parts, fmt.Sprintf("total_files: %d", rep.TotalFiles))
	parts = append(parts, fmt.Sprintf("total_classes: %d", rep.TotalClasses))
	parts = append(parts, fmt.Sprintf("total_functions: %d", rep.TotalFunctions))
	parts = append(parts, fmt.Sprintf("documented_classes: %d", rep.DocumentedClasses))
	parts = append(parts, fmt.Sprintf("documented_functions: %d", rep.DocumentedFunctions))

	var moduleRows [][]string
	for _, name := range rep.Modules() {
		ms := rep.ModuleStats[name]
		moduleRows = append(moduleRows, []string{
			name,
			strconv.Itoa(ms.Files),
			strconv.Itoa(ms.WellDoc),
			strconv.Itoa(ms.PartialDoc),
			strconv.Itoa(ms.PoorDoc),
			fmt.Sprintf("%.1f", ms.DocPercent()),
		})
	}
	parts = append(parts, formatTabular("modules", []string{"module", "files", "well", "partial", "poor", "doc_pct"}, moduleRows))

	var fileRows [][]string
	for _, c := range model.Categories {
		files := rep.Files(c)
		for i := range files {
			f := &files[i]
			fileRows = append(fileRows, []string{
				relTo(rep.Root, f.File),
				string(f.Category),
				strconv.Itoa(f.QualityScore),
				strconv.Itoa(f.Classes),
				strconv.Itoa(f.DocumentedClasses),
				strconv.Itoa(f.Functions),
				strconv.Itoa(f.DocumentedFunctions),
				strconv.Itoa(f.DocBlocks),
			})
		}
	}
	parts = append(parts, formatTabular("files", []string{"path", "category", "score", "classes", "doc_classes", "functions", "doc_functions", "doc_blocks"}, fileRows))

	return strings.Join(parts, "\n")
}

// EncodeQuality converts a quality report into TOON format. Only files with
// at least one issue are listed.
func EncodeQuality(rep *model.QualityReport) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("root: %s", encodeValue(rep.Root)))
	parts = append(parts, fmt.Sprintf("files_scanned: %d", rep.FilesScanned))

	indicatorRows := [][]string{
		{"magic_numbers", strconv.Itoa(rep.MagicNumbers.FilesWithMagicNumbers)},
		{"very_complex", strconv.Itoa(rep.Complexity.VeryComplex)},
		{"complex", strconv.Itoa(rep.Complexity.Complex)},
		{"very_old", strconv.Itoa(rep.AgeIndicators.VeryOld)},
		{"old", strconv.Itoa(rep.AgeIndicators.Old)},
		{"todo_comments", strconv.Itoa(rep.CodeSmells.TodoComments)},
		{"fixme_comments", strconv.Itoa(rep.CodeSmells.FixmeComments)},
		{"hack_comments", strconv.Itoa(rep.CodeSmells.HackComments)},
		{"deprecated", strconv.Itoa(rep.CodeSmells.Deprecated)},
		{"long_functions", strconv.Itoa(rep.CodeSmells.LongFunctions)},
		{"deep_nesting", strconv.Itoa(rep.CodeSmells.DeepNesting)},
	}
	parts = append(parts, formatTabular("indicators", []string{"name", "count"}, indicatorRows))

	var issueRows [][]string
	for i := range rep.Files {
		f := &rep.Files[i]
		for _, issue := range f.Issues {
			issueRows = append(issueRows, []string{relTo(rep.Root, f.File), issue})
		}
	}
	parts = append(parts, formatTabular("issues", []string{"path", "issue"}, issueRows))

	return strings.Join(parts, "\n")
}

func relTo(root, path string) string {
	if root == "" {
		return filepath.ToSlash(path)
	}
	if rel, err := filepath.Rel(root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

func formatTabular(name string, columns []string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%d]{%s}:", name, len(rows), strings.Join(columns, ","))
	for _, row := range rows {
		encoded := make([]string, len(row))
		for i, cell := range row {
			encoded[i] = encodeValue(cell)
		}
		fmt.Fprintf(&b, "\n  %s", strings.Join(encoded, ","))
	}
	return b.String()
}

func encodeValue(value string) string {
	if value == "" {
		return `""`
	}

	if value != strings.TrimSpace(value) {
		return quote(value)
	}

	if strings.ContainsAny(value, "\n\r\t") {
		return quote(value)
	}

	if _, ok := keywords[strings.ToLower(value)]; ok {
		return quote(value)
	}

	if looksNumeric.MatchString(value) {
		return value
	}

	if needsQuoting.MatchString(value) {
		return quote(value)
	}

	if strings.HasPrefix(value, "-") {
		return quote(value)
	}

	return value
}

func quote(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	escaped = strings.ReplaceAll(escaped, "\r", `\r`)
	escaped = strings.ReplaceAll(escaped, "\t", `\t`)
	return `"` + escaped + `"`
}
