// Package scan reads and analyzes files concurrently while keeping results
// in input order.
package scan

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ReadSource reads path as text. Invalid UTF-8 sequences are dropped rather
// than treated as a read failure, and "\r\n" and lone "\r" line endings are
// converted to "\n" so line-based heuristics see the same lines on every
// platform.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return normalizeNewlines(strings.ToValidUTF8(string(data), "")), nil
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Result is the outcome of analyzing one file.
type Result[T any] struct {
	Path  string
	Value T
	Err   error // read failure; Value is zero
}

// Func analyzes the content of one file.
type Func[T any] func(path, content string) T

// Files reads and analyzes every path using up to workers goroutines
// (GOMAXPROCS when workers <= 0). Results come back in the order of paths so
// that folding them is deterministic. Per-file read errors are reported in
// the Result; only context cancellation aborts the run.
func Files[T any](ctx context.Context, paths []string, workers int, fn Func[T]) ([]Result[T], error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result[T], len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i].Path = path
			content, err := ReadSource(path)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Value = fn(path, content)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scanning files: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scanning files: %w", err)
	}
	return results, nil
}
