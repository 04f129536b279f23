// Package parse holds the pattern-matching heuristics docaudit uses in place
// of a real parser: declaration and documentation extraction for the
// classifier, and comment stripping, literal scanning and brace tracking for
// the quality scanner.
//
// None of this understands the language. Known blind spots are kept on
// purpose so results stay comparable across runs:
//   - the callable pattern needs two whitespace characters (or a pointer
//     star) between return type and name, so "void f()" is not a callable;
//   - StripComments works line by line, so a block comment spanning several
//     lines is only partly removed;
//   - Blocks tolerates one level of nested braces; deeper nesting yields the
//     innermost two-level blocks instead of the outer one.
package parse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phobologic/docaudit/internal/model"
)

// Whitespace and word classes follow Unicode rather than RE2's ASCII-only
// \s and \w, so identifiers and indentation outside ASCII match the same way
// as ASCII ones.
const (
	spaceClass = `[\s\v\x{85}\x{1c}-\x{1f}\p{Z}]`
	wordClass  = `[\p{L}\p{N}_]`
)

var unicodeClasses = strings.NewReplacer(`\s`, spaceClass, `\w`, wordClass)

// compileUnicode compiles expr with \s and \w widened to Unicode.
func compileUnicode(expr string) *regexp.Regexp {
	return regexp.MustCompile(unicodeClasses.Replace(expr))
}

var (
	typePattern     = compileUnicode(`(?m)^\s*class\s+(\w+)`)
	callablePattern = compileUnicode(
		`(?m)^\s*(?:virtual\s+)?(?:static\s+)?(?:inline\s+)?` +
			`(?:const\s+)?(?:\w+(?:\s*\*|\s+&|\s+))\s+` +
			`(\w+)\s*\([^)]*\)\s*(?:const)?(?:\s*override)?(?:\s*final)?;?`)

	docBlockPattern = regexp.MustCompile(`(?s)/\*\*.*?\*/`)
	docLinePattern  = compileUnicode(`(?m)^\s*///.*$`)

	briefPattern  = regexp.MustCompile(`\\brief|@brief|///<`)
	paramPattern  = regexp.MustCompile(`\\param|@param`)
	returnPattern = regexp.MustCompile(`\\return|@return`)

	lineCommentPattern  = regexp.MustCompile(`//.*$`)
	blockCommentPattern = regexp.MustCompile(`/\*.*?\*/`)

	controlPattern = regexp.MustCompile(`if|for|while|switch|case`)
	yearPattern    = regexp.MustCompile(`(?:19|20)\p{Nd}{2}`)

	todoPattern       = regexp.MustCompile(`(?i)//.*?TODO|/\*.*?TODO.*?\*/`)
	fixmePattern      = regexp.MustCompile(`(?i)//.*?FIXME|/\*.*?FIXME.*?\*/`)
	hackPattern       = regexp.MustCompile(`(?i)//.*?HACK|/\*.*?HACK.*?\*/`)
	deprecatedPattern = regexp.MustCompile(`(?i)deprecated|obsolete`)

	blockPattern = regexp.MustCompile(`(?s)\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)
)

// controlFlowNames are callable-pattern matches that are really statements.
var controlFlowNames = map[string]struct{}{
	"if":     {},
	"while":  {},
	"for":    {},
	"switch": {},
	"return": {},
}

// docMarkers open a documentation coverage window when found on a line.
var docMarkers = []string{"/**", "///"}

// Declarations returns the type and callable declaration sites in content,
// types first, each in source order.
func Declarations(content string) []model.DeclarationSite {
	var sites []model.DeclarationSite
	for _, m := range typePattern.FindAllStringSubmatchIndex(content, -1) {
		sites = append(sites, model.DeclarationSite{
			Kind: model.Type,
			Name: content[m[2]:m[3]],
			Line: lineOf(content, m[0]),
		})
	}
	for _, m := range callablePattern.FindAllStringSubmatchIndex(content, -1) {
		name := content[m[2]:m[3]]
		if _, skip := controlFlowNames[name]; skip {
			continue
		}
		sites = append(sites, model.DeclarationSite{
			Kind: model.Callable,
			Name: name,
			Line: lineOf(content, m[0]),
		})
	}
	return sites
}

// DocSpans returns every documentation block followed by every
// documentation line in content.
func DocSpans(content string) []model.DocumentationSpan {
	var spans []model.DocumentationSpan
	for _, m := range docBlockPattern.FindAllStringIndex(content, -1) {
		spans = append(spans, span(content, model.BlockStyle, m))
	}
	for _, m := range docLinePattern.FindAllStringIndex(content, -1) {
		spans = append(spans, span(content, model.LineStyle, m))
	}
	return spans
}

func span(content string, style model.SpanStyle, m []int) model.DocumentationSpan {
	return model.DocumentationSpan{
		Style: style,
		Start: lineOf(content, m[0]),
		End:   lineOf(content, m[1]),
		Text:  content[m[0]:m[1]],
	}
}

// DocText joins span texts the way the quality markers and the
// documentation size are measured.
func DocText(spans []model.DocumentationSpan) string {
	texts := make([]string, len(spans))
	for i := range spans {
		texts[i] = spans[i].Text
	}
	return strings.Join(texts, "\n")
}

// TagCounts holds the structured-documentation markers found in doc text.
type TagCounts struct {
	Brief  int
	Param  int
	Return int
}

// CountTags counts brief, param and return markers in doc text.
func CountTags(docText string) TagCounts {
	return TagCounts{
		Brief:  len(briefPattern.FindAllStringIndex(docText, -1)),
		Param:  len(paramPattern.FindAllStringIndex(docText, -1)),
		Return: len(returnPattern.FindAllStringIndex(docText, -1)),
	}
}

// CoveredLines marks each line holding a documentation marker and the
// following window-1 lines.
func CoveredLines(lines []string, window int) map[int]struct{} {
	covered := make(map[int]struct{})
	for i, line := range lines {
		if !hasDocMarker(line) {
			continue
		}
		for j := i; j < min(i+window, len(lines)); j++ {
			covered[j] = struct{}{}
		}
	}
	return covered
}

func hasDocMarker(line string) bool {
	for _, marker := range docMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// IsCovered reports whether line or any of the lookback lines above it is
// in covered.
func IsCovered(covered map[int]struct{}, line, lookback int) bool {
	for l := line; l >= line-lookback; l-- {
		if _, ok := covered[l]; ok {
			return true
		}
	}
	return false
}

// Lines splits content on newlines.
func Lines(content string) []string {
	return strings.Split(content, "\n")
}

// CharCount returns the number of characters (not bytes) in s.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

func lineOf(content string, offset int) int {
	return strings.Count(content[:offset], "\n")
}

// StripComments removes line comments, then single-line block comments,
// from each line independently.
func StripComments(lines []string) string {
	code := make([]string, len(lines))
	for i, line := range lines {
		line = lineCommentPattern.ReplaceAllString(line, "")
		code[i] = blockCommentPattern.ReplaceAllString(line, "")
	}
	return strings.Join(code, "\n")
}

// ControlKeywords counts if/for/while/switch/case keywords that stand as
// whole words.
func ControlKeywords(content string) int {
	n := 0
	for _, m := range controlPattern.FindAllStringIndex(content, -1) {
		before, _ := utf8.DecodeLastRuneInString(content[:m[0]])
		after, _ := utf8.DecodeRuneInString(content[m[1]:])
		if !isWordRune(before) && !isWordRune(after) {
			n++
		}
	}
	return n
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isSpaceRune(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// CodeLines counts lines that are neither blank nor line comments.
func CodeLines(lines []string) int {
	n := 0
	for _, line := range lines {
		trimmed := strings.TrimFunc(line, isSpaceRune)
		if trimmed != "" && !strings.HasPrefix(trimmed, "//") {
			n++
		}
	}
	return n
}

// Years returns the value of every year-shaped token (1900-2099) in
// content, in order. Tokens are not word-bounded, so digits inside longer
// numbers count too. The last two digits may come from any decimal script.
func Years(content string) []int {
	tokens := yearPattern.FindAllString(content, -1)
	years := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		y := 0
		for _, r := range tok {
			y = y*10 + digitValue(r)
		}
		years = append(years, y)
	}
	return years
}

// digitValue returns the value of a decimal digit rune in any script. Every
// decimal digit set is a contiguous run from zero to nine.
func digitValue(r rune) int {
	n := 0
	for unicode.IsDigit(r - rune(n) - 1) {
		n++
	}
	return n % 10
}

// SmellCounts holds comment-marker occurrence counts.
type SmellCounts struct {
	Todo       int
	Fixme      int
	Hack       int
	Deprecated bool
}

// Smells counts TODO, FIXME and HACK comments and detects
// deprecated/obsolete markers anywhere in content.
func Smells(content string) SmellCounts {
	return SmellCounts{
		Todo:       len(todoPattern.FindAllStringIndex(content, -1)),
		Fixme:      len(fixmePattern.FindAllStringIndex(content, -1)),
		Hack:       len(hackPattern.FindAllStringIndex(content, -1)),
		Deprecated: deprecatedPattern.MatchString(content),
	}
}

// Blocks returns the brace-delimited blocks found by balanced-pair matching
// with one explicit level of nesting.
func Blocks(content string) []string {
	return blockPattern.FindAllString(content, -1)
}

// MaxBraceDepth returns the deepest running brace depth in content. Stray
// closing braces may drive the running depth below zero.
func MaxBraceDepth(content string) int {
	depth, deepest := 0, 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
			deepest = max(deepest, depth)
		case '}':
			depth--
		}
	}
	return deepest
}
