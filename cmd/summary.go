package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/culling-graph/internal/report"
	"github.com/fakeyudi/culling-graph/internal/stats"
)

var summaryRows bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print per-match damage totals to the console",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths("")
		if err != nil {
			return err
		}
		s, res, err := loadStats(paths.Log)
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), s, summaryRows)
		fmt.Fprintf(cmd.OutOrStdout(), "%d lines read, %d skipped\n", res.TotalLines, res.SkippedLines)
		return nil
	},
}

// printSummary writes a plain-text digest of every match in s.
func printSummary(w io.Writer, s *stats.Stats, withRows bool) {
	maxDamage := s.MaxDamage()
	for i, m := range s.Matches() {
		fmt.Fprintf(w, "## Match %d @ %s\n", i+1, m.Start.Format("Monday 2006-01-02 15:04:05"))
		if m.Ended() {
			fmt.Fprintf(w, "  Duration:  %s\n", m.Duration())
		} else {
			fmt.Fprintln(w, "  Duration:  (no end)")
		}
		fmt.Fprintf(w, "  Hits:      %d\n", m.Len())

		if withRows {
			for _, r := range report.Rows(m, maxDamage) {
				fmt.Fprintf(w, "  %s  %-16s -> %-16s %7.2f (%7.2f) %s\n",
					r.Clock, r.Event.Inflictor, r.Event.Receiver, r.Event.Damage, r.Total, r.Event.Annotation)
			}
		}

		totals := report.SortedTotals(m)
		if len(totals) == 0 {
			fmt.Fprintln(w, "  Totals:    (none)")
		} else {
			fmt.Fprintln(w, "  Totals:")
			for _, t := range totals {
				fmt.Fprintf(w, "    %-16s %8.2f\n", t.Combatant, t.Damage)
			}
		}
		fmt.Fprintln(w)
	}
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryRows, "rows", false, "list every hit, not just totals")
	rootCmd.AddCommand(summaryCmd)
}
