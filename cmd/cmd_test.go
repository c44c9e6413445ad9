package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakeyudi/culling-graph/internal/launch"
	"github.com/fakeyudi/culling-graph/internal/locate"
	"github.com/fakeyudi/culling-graph/internal/parser"
)

const sampleLog = `Log file open, 03/14/16 20:00:00
[2016.03.14-20.01.00:500][ 11]LogLevel: ActivateLevel /Game/Maps/Jungle
[2016.03.14-20.01.10:250][ 12]VictoryDamage:Display: You Hit Bob for 12.50 damage (3.00 m)
[2016.03.14-20.01.11:001][ 13]VictoryDamage:Display: Struck by Alice for 7.25 damage (1.10 m) Critical!
[2016.03.14-20.05.00:000][ 14]LogLoad: LoadMap: CharacterSelect
[2016.03.14-20.06.00:000][ 15]LogLevel: ActivateLevel /Game/Maps/Prison
[2016.03.14-20.06.30:000][ 16]VictoryDamage:Display: You Hit Carol for 40.00 damage (0.80 m)
`

// executeCommand runs a cobra command with the given args and captures combined output.
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	_, err = root.ExecuteC()
	return buf.String(), err
}

type testEnv struct {
	home     string
	appData  string
	temp     string
	launched []string
}

// setupEnv isolates config, log and output locations in temp dirs and
// records launches instead of opening a browser.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{home: t.TempDir(), appData: t.TempDir(), temp: t.TempDir()}
	t.Setenv("HOME", env.home)
	t.Setenv("USERPROFILE", env.home)
	t.Setenv("LOCALAPPDATA", env.appData)
	t.Setenv("TEMP", env.temp)
	t.Setenv("TMP", env.temp)

	logPathFlag, verbose = "", false
	outDirFlag, noOpen, formatFlag = "", false, ""
	summaryRows = false

	prev := launcher
	launcher = launch.Func(func(path string) error {
		env.launched = append(env.launched, path)
		return nil
	})
	t.Cleanup(func() { launcher = prev })
	return env
}

func (e *testEnv) writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(e.appData, filepath.FromSlash(locate.LogRelPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGraphWritesAndOpensReport(t *testing.T) {
	env := setupEnv(t)
	env.writeLog(t, sampleLog)

	out, err := executeCommand(rootCmd, "graph")
	require.NoError(t, err)

	want := filepath.ToSlash(filepath.Join(env.temp, "culling-damage-2016-03-14-20-06-30.html"))
	assert.Contains(t, out, "DAMAGE STATS PARSER / GRAPHER v1.0")
	assert.Contains(t, out, "Parsing log data...")
	assert.Contains(t, out, `Rendering stats to HTML... [ "`+want+`" ]`)
	assert.Contains(t, out, "Sending HTML file to web browser...")
	assert.Contains(t, out, "Exiting...")
	assert.Equal(t, []string{want}, env.launched)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "Match 1 @ Monday 2016-03-14 20:01:00")
	assert.Contains(t, html, "Match 2 @ Monday 2016-03-14 20:06:00")
	assert.Contains(t, html, "Critical!")
}

func TestRootDefaultsToGraph(t *testing.T) {
	env := setupEnv(t)
	env.writeLog(t, sampleLog)

	_, err := executeCommand(rootCmd, "--no-open")
	require.NoError(t, err)
	assert.Empty(t, env.launched)
	assert.FileExists(t, filepath.Join(env.temp, "culling-damage-2016-03-14-20-06-30.html"))
}

func TestGraphJSONFormat(t *testing.T) {
	env := setupEnv(t)
	env.writeLog(t, sampleLog)
	outDir := t.TempDir()

	_, err := executeCommand(rootCmd, "graph", "--format", "json", "--out", outDir)
	require.NoError(t, err)
	assert.Empty(t, env.launched, "JSON reports are not opened")

	data, err := os.ReadFile(filepath.Join(outDir, "culling-damage-2016-03-14-20-06-30.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Carol"`)
}

func TestGraphUnknownFormat(t *testing.T) {
	env := setupEnv(t)
	env.writeLog(t, sampleLog)

	_, err := executeCommand(rootCmd, "graph", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown report format "pdf"`)
}

func TestGraphLogNotFound(t *testing.T) {
	env := setupEnv(t)

	_, err := executeCommand(rootCmd, "graph")
	require.Error(t, err)
	assert.True(t, errors.Is(err, locate.ErrLogNotFound))
	assert.True(t, strings.HasPrefix(err.Error(), "Sorry, The Culling logfile not found at: "), err.Error())
	assert.Contains(t, err.Error(), filepath.ToSlash(env.appData))
	assert.Empty(t, env.launched)
}

func TestGraphNoMatches(t *testing.T) {
	env := setupEnv(t)
	env.writeLog(t, "[2016.03.14-20.00.00:000][  0]LogInit: Display: Starting Game.\n")

	_, err := executeCommand(rootCmd, "graph")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrNoMatches))
	assert.Equal(t, "Sorry, no match data found in The Culling logfile.", err.Error())

	entries, err := os.ReadDir(env.temp)
	require.NoError(t, err)
	assert.Empty(t, entries, "no report should be written")
}

func TestGraphLaunchFailure(t *testing.T) {
	env := setupEnv(t)
	env.writeLog(t, sampleLog)
	launcher = launch.Func(func(string) error { return launch.ErrLaunch })

	_, err := executeCommand(rootCmd, "graph")
	require.ErrorIs(t, err, launch.ErrLaunch)
	assert.Equal(t, "failed to send stats HTML to web browser", err.Error())
}

func TestGraphLogFlag(t *testing.T) {
	env := setupEnv(t)
	logPath := filepath.Join(t.TempDir(), "elsewhere.log")
	require.NoError(t, os.WriteFile(logPath, []byte(sampleLog), 0o644))

	_, err := executeCommand(rootCmd, "graph", "--log", logPath, "--no-open")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(env.temp, "culling-damage-2016-03-14-20-06-30.html"))
}

func TestQuietConfigSuppressesBanner(t *testing.T) {
	env := setupEnv(t)
	env.writeLog(t, sampleLog)
	dir := filepath.Join(env.home, ".config", "culling-graph")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("quiet: true\nopen_browser: false\n"), 0o644))

	out, err := executeCommand(rootCmd, "graph")
	require.NoError(t, err)
	assert.NotContains(t, out, "DAMAGE STATS PARSER")
	assert.Empty(t, env.launched)
}

func TestSummary(t *testing.T) {
	env := setupEnv(t)
	env.writeLog(t, sampleLog)

	out, err := executeCommand(rootCmd, "summary", "--rows")
	require.NoError(t, err)
	for _, want := range []string{
		"## Match 1 @ Monday 2016-03-14 20:01:00",
		"Duration:  4m0s",
		"00:00:10.000",
		"Critical!",
		"## Match 2 @ Monday 2016-03-14 20:06:00",
		"(no end)",
		"Carol",
		"7 lines read, 1 skipped",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "DAMAGE STATS PARSER")
}

func TestVersion(t *testing.T) {
	setupEnv(t)
	out, err := executeCommand(rootCmd, "version")
	require.NoError(t, err)
	assert.Equal(t, "culling-graph 1.0\n", out)
}
