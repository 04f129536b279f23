// Package discover finds source files to audit in a tree.
package discover

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/phobologic/docaudit/internal/lang"
)

// Options filters what Files returns.
type Options struct {
	// Extensions is the allow-list of file extensions. Empty means every
	// registered language.
	Extensions []string
	// Exclude names path segments whose subtrees are never entered.
	Exclude []string
	// NoIgnore turns off the hidden-entry, VCS/build directory and
	// .gitignore filters so every file under root is considered.
	NoIgnore bool
}

var skipDirs = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	"node_modules": {},
	"build":        {},
	"_build":       {},
	"cmake-build":  {},
	"CMakeFiles":   {},
}

// Files walks root and returns the absolute paths of matching source files,
// sorted. Symlinks are never followed.
func Files(root string, opts Options) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("source root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source root %s is not a directory", abs)
	}

	matcher := lang.NewMatcher(opts.Extensions)
	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, seg := range opts.Exclude {
		exclude[seg] = struct{}{}
	}
	var (
		gitFiles map[string]struct{}
		gi       *ignore.GitIgnore
	)
	if !opts.NoIgnore {
		gitFiles = gitLsFiles(abs)
		if gitFiles == nil {
			gi = loadGitignore(abs)
		}
	}

	var results []string

	err = filepath.WalkDir(abs, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors
		}

		name := d.Name()

		if d.IsDir() {
			if path == abs {
				return nil
			}
			if _, skip := exclude[name]; skip {
				return filepath.SkipDir
			}
			if opts.NoIgnore {
				return nil
			}
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !opts.NoIgnore && strings.HasPrefix(name, ".") {
			return nil
		}

		// Skip symlinks
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return nil
		}

		if gitFiles != nil {
			if _, ok := gitFiles[filepath.ToSlash(rel)]; !ok {
				return nil
			}
		} else if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		if matcher.Language(filepath.Ext(name)) == "" {
			return nil
		}

		results = append(results, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(results)
	return results, nil
}

func gitLsFiles(root string) map[string]struct{} {
	gitDir := filepath.Join(root, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil
	}

	files := make(map[string]struct{})
	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		if line != "" {
			files[line] = struct{}{}
		}
	}
	return files
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
