package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/fakeyudi/culling-graph/internal/locate"
	"github.com/fakeyudi/culling-graph/internal/parser"
	"github.com/fakeyudi/culling-graph/internal/stats"
)

// resolvePaths applies the --log flag over the configured paths.
func resolvePaths(outDir string) (locate.Paths, error) {
	l := locate.Locator{LogPath: cfg.LogPath, OutputDir: cfg.OutputDir}
	if logPathFlag != "" {
		l.LogPath = logPathFlag
	}
	if outDir != "" {
		l.OutputDir = outDir
	}
	paths, err := l.Resolve()
	if err != nil {
		return locate.Paths{}, fmt.Errorf("Sorry, %w", err)
	}
	return paths, nil
}

// loadStats parses the log at path and fails when it holds no matches.
func loadStats(path string) (*stats.Stats, parser.Result, error) {
	s, res, err := parser.New(slog.Default()).ParseFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, res, fmt.Errorf("Sorry, %w", &locate.NotFoundError{Path: path})
		}
		return nil, res, err
	}
	if s.Len() == 0 {
		return nil, res, fmt.Errorf("Sorry, %w in The Culling logfile.", parser.ErrNoMatches)
	}
	return s, res, nil
}
