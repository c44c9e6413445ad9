package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/culling-graph/internal/launch"
	"github.com/fakeyudi/culling-graph/internal/report"
)

var (
	outDirFlag string
	noOpen     bool
	formatFlag string
)

// launcher opens the rendered report. Tests replace it.
var launcher launch.Launcher = launch.Browser{}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render per-match damage to an HTML report and open it",
	Args:  cobra.NoArgs,
	RunE:  runGraph,
}

func addGraphFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outDirFlag, "out", "", "directory for the report (default: %TEMP%)")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "write the report without opening it")
	cmd.Flags().StringVar(&formatFlag, "format", "", "report format: html or json (default from config)")
}

func runGraph(cmd *cobra.Command, args []string) error {
	if !cfg.Quiet {
		con.Banner(Version)
	}

	paths, err := resolvePaths(outDirFlag)
	if err != nil {
		return err
	}

	con.Status("Parsing log data...")
	s, res, err := loadStats(paths.Log)
	if err != nil {
		return err
	}

	format := cfg.DefaultFormat
	if formatFlag != "" {
		format = formatFlag
	}
	r, err := report.ForFormat(format)
	if err != nil {
		return err
	}

	out := filepath.ToSlash(filepath.Join(paths.OutputDir, report.FileName(res.LastTimestamp, r.Ext())))
	con.Status("Rendering stats to %s... [ %q ]", strings.ToUpper(strings.TrimPrefix(r.Ext(), ".")), out)
	if err := report.WriteFile(r, out, s); err != nil {
		return err
	}

	// Only HTML has a sensible default viewer.
	if cfg.ShouldOpen() && !noOpen && r.Ext() == ".html" {
		con.Status("Sending HTML file to web browser...")
		if err := launcher.Launch(out); err != nil {
			return err
		}
	}

	con.Status("Exiting...")
	return nil
}

func init() {
	addGraphFlags(graphCmd)
	rootCmd.AddCommand(graphCmd)
}
