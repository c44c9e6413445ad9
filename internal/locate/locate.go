// Package locate finds the Culling log file and the directory reports are
// written to.
package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// ErrLogNotFound matches any error reporting a missing log file.
var ErrLogNotFound = errors.New("log file not found")

// LogRelPath is the log's location under %LOCALAPPDATA%.
const LogRelPath = "Victory/Saved/Logs/Victory.log"

// NotFoundError reports the path that was checked for the log.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("The Culling logfile not found at: %q", e.Path)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrLogNotFound }

// Paths are the resolved input and output locations.
type Paths struct {
	Log       string
	OutputDir string
}

// Locator resolves Paths. Non-empty overrides take precedence over the
// environment.
type Locator struct {
	LogPath   string
	OutputDir string
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// Resolve returns the log and output locations. It fails with a
// *NotFoundError when the log is not a regular file.
func (l Locator) Resolve() (Paths, error) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	logPath := l.LogPath
	if logPath == "" {
		appData := getenv("LOCALAPPDATA")
		if appData == "" {
			return Paths{}, fmt.Errorf("%w: LOCALAPPDATA is not set", ErrLogNotFound)
		}
		logPath = filepath.Join(appData, LogRelPath)
	}
	logPath = slashes(logPath)

	info, err := os.Stat(logPath)
	if err != nil || !info.Mode().IsRegular() {
		return Paths{}, &NotFoundError{Path: logPath}
	}

	return Paths{Log: logPath, OutputDir: slashes(l.outputDir(getenv))}, nil
}

func (l Locator) outputDir(getenv func(string) string) string {
	if l.OutputDir != "" {
		return l.OutputDir
	}
	for _, key := range []string{"TEMP", "TMP"} {
		if dir := getenv(key); dir != "" {
			return dir
		}
	}
	return os.TempDir()
}

func slashes(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// LoadEnv loads KEY=value pairs from an optional dotenv file without
// overriding variables already set. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
