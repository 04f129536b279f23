// Package lang provides a language registry mapping file extensions to the
// source languages docaudit knows how to scan.
package lang

import (
	"strings"
	"sync"
)

// Language describes a supported source language.
type Language struct {
	Name       string
	Extensions []string
}

// Languages maps language names to their configuration.
// Populated by init() functions in per-language files.
var Languages = map[string]*Language{}

// extensionMap is built lazily after all init() functions have run.
var extensionMap map[string]string
var extensionOnce sync.Once

func getExtensionMap() map[string]string {
	extensionOnce.Do(func() {
		extensionMap = make(map[string]string)
		for _, l := range Languages {
			for _, ext := range l.Extensions {
				extensionMap[ext] = l.Name
			}
		}
	})
	return extensionMap
}

// ForExtension returns the language name for a file extension, or "" if unsupported.
func ForExtension(ext string) string {
	return getExtensionMap()[ext]
}

// Matcher resolves file extensions against an explicit allow-list,
// falling back to the registry when the list is empty.
type Matcher struct {
	allowed map[string]struct{}
}

// NewMatcher returns a Matcher for the given extensions. Extensions may be
// given with or without the leading dot.
func NewMatcher(exts []string) *Matcher {
	m := &Matcher{}
	if len(exts) == 0 {
		return m
	}
	m.allowed = make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		m.allowed[ext] = struct{}{}
	}
	return m
}

// Language returns the language name for ext, or "" if ext is not allowed.
// Allowed extensions that the registry does not know report as "cpp", the
// only comment syntax the heuristics understand.
func (m *Matcher) Language(ext string) string {
	if m.allowed == nil {
		return ForExtension(ext)
	}
	if _, ok := m.allowed[ext]; !ok {
		return ""
	}
	if name := ForExtension(ext); name != "" {
		return name
	}
	return "cpp"
}
