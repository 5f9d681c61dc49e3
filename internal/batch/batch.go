// Package batch matches every line of candidate files against a pattern.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// maxLineSize bounds a single candidate line.
const maxLineSize = 1 << 20

// Matcher decides full matches. pattern.Spec implements it.
type Matcher interface {
	Mismatch(input string) (pos int, ok bool)
}

// Result is the outcome for one candidate line.
type Result struct {
	File  string `json:"file"`
	Line  int    `json:"line"`
	Input string `json:"input"`
	OK    bool   `json:"ok"`
	// Pos is the first rejected position, -1 on length mismatch. Zero when OK.
	Pos int `json:"pos"`
}

// Options tunes ProcessPaths. The zero value uses one worker per CPU, no
// progress bar and every regular file found under a directory.
type Options struct {
	Workers int
	// Extensions restricts files found while walking directories, e.g.
	// ".txt". Paths named explicitly are always read.
	Extensions []string
	// Progress, when non-nil, receives a progress bar.
	Progress io.Writer
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) wants(path string) bool {
	if len(o.Extensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, e := range o.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// MatchLines matches each line read from r. source is recorded as the
// File of every result.
func MatchLines(ctx context.Context, m Matcher, source string, r io.Reader) ([]Result, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var results []Result
	line := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line++
		text := sc.Text()
		pos, ok := m.Mismatch(text)
		if ok {
			pos = 0
		}
		results = append(results, Result{File: source, Line: line, Input: text, OK: ok, Pos: pos})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return results, nil
}

// MatchFile opens path and runs MatchLines over it.
func MatchFile(ctx context.Context, m Matcher, path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return MatchLines(ctx, m, path, f)
}

// ProcessPaths matches every line of every file named by paths, walking
// directories. Files are processed concurrently; results are sorted by file
// and line. A file that fails is logged and reported in the joined error,
// results of the other files are still returned.
func ProcessPaths(
	ctx context.Context,
	logger *zap.Logger,
	m Matcher,
	paths []string,
	opts Options,
) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	files, err := collectFiles(paths, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("Collected candidate files", zap.Int("count", len(files)))

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("matching"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	type fileResult struct {
		results []Result
		err     error
	}
	resultChan := make(chan fileResult, len(files))
	sem := make(chan struct{}, opts.workers())

	dispatched := 0
DISPATCH:
	for _, path := range files {
		select {
		case <-ctx.Done():
			break DISPATCH
		case sem <- struct{}{}:
		}
		dispatched++
		go func(fp string) {
			defer func() { <-sem }()
			res, err := MatchFile(ctx, m, fp)
			if err != nil {
				logger.Error("Error matching file", zap.String("file", fp), zap.Error(err))
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			resultChan <- fileResult{results: res, err: err}
		}(path)
	}

	var (
		all  []Result
		errs []error
	)
	for i := 0; i < dispatched; i++ {
		fr := <-resultChan
		if fr.err != nil {
			errs = append(errs, fr.err)
			continue
		}
		all = append(all, fr.results...)
	}
	if bar != nil {
		_ = bar.Finish()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].File != all[j].File {
			return all[i].File < all[j].File
		}
		return all[i].Line < all[j].Line
	})
	return all, errors.Join(errs...)
}

func collectFiles(paths []string, opts Options) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() && opts.wants(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking directory %s: %w", path, err)
		}
	}
	return files, nil
}

// Failed counts the results that did not match.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK {
			n++
		}
	}
	return n
}
