package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/culling-graph/internal/config"
	"github.com/fakeyudi/culling-graph/internal/console"
	"github.com/fakeyudi/culling-graph/internal/locate"
)

// Version is the program version shown in the banner.
const Version = "1.0"

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

// con is the user-facing console, bound to the command's streams in
// PersistentPreRunE.
var con *console.Console

var (
	logPathFlag string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "culling-graph",
	Short: "Graph per-match damage from The Culling's Victory.log",
	Long: `culling-graph reads The Culling's log file, splits it into matches and
renders every hit you dealt or took as an HTML bar chart, then opens it in
your browser. Run without a subcommand it behaves like "culling-graph graph".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		con = console.NewWithIO(cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin())
		con.Interactive = cmd.InOrStdin() == os.Stdin && term.IsTerminal(os.Stdin.Fd())

		slog.SetDefault(console.NewLogger(cmd.ErrOrStderr(), verbose))

		// Lets LOCALAPPDATA/TEMP be supplied outside Windows.
		if err := locate.LoadEnv(".env"); err != nil {
			return err
		}

		global, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("loading global config: %w", err)
		}
		project, err := config.LoadProject()
		if err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		cfg = config.Merge(global, project)
		return nil
	},
	RunE: runGraph,
}

// Execute runs the root command. On error the message is shown and, when
// run from a console window, held until the user presses enter.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if con == nil {
			con = console.New()
		}
		con.Error(err)
		con.WaitForEnter()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPathFlag, "log", "", "path to Victory.log (default: %LOCALAPPDATA%/"+locate.LogRelPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print parser diagnostics to stderr")
	addGraphFlags(rootCmd)
}
