// Package scan runs rules over C# and Go source files found on disk.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/sirkon/divzero/internal/dispatch"
	"github.com/sirkon/divzero/internal/report"
	"github.com/sirkon/divzero/internal/tsitter"
)

// Files returns supported source files under root matching any include pattern and no exclude
// pattern. Patterns are doublestar globs relative to root. The result is sorted.
func Files(root string, include, exclude []string) ([]string, error) {
	for _, pattern := range slices.Concat(include, exclude) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}
	}

	fsys := os.DirFS(root)
	seen := map[string]struct{}{}
	var res []string
	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}

			if _, ok := tsitter.ForPath(match); !ok {
				continue
			}
			if excluded(match, exclude) {
				continue
			}

			res = append(res, filepath.Join(root, filepath.FromSlash(match)))
		}
	}

	slices.Sort(res)
	return res, nil
}

func excluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		// Patterns were validated already.
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}

	return false
}

// Run checks files with at most workers files in flight, workers < 1 means no limit.
// rep must be safe for concurrent use.
func Run(ctx context.Context, table *dispatch.Table, files []string, workers int, rep report.Func) error {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for _, file := range files {
		g.Go(func() error {
			return checkFile(ctx, table, file, rep)
		})
	}

	return g.Wait()
}

func checkFile(ctx context.Context, table *dispatch.Table, file string, rep report.Func) error {
	lang, ok := tsitter.ForPath(file)
	if !ok {
		return fmt.Errorf("unsupported source file %s", file)
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	if tsitter.IsGenerated(lang, file, src) {
		return nil
	}

	root, err := tsitter.Parse(ctx, lang, file, src)
	if err != nil {
		return err
	}

	if err := table.Visit(ctx, root, rep); err != nil {
		return fmt.Errorf("check %s: %w", file, err)
	}

	return nil
}
