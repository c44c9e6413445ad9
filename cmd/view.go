package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fakeyudi/culling-graph/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse matches in an interactive terminal view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths("")
		if err != nil {
			return err
		}
		s, _, err := loadStats(paths.Log)
		if err != nil {
			return err
		}
		return tui.Run(s, paths.Log)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
