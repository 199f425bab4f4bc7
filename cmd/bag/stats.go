package main

import (
	"github.com/spf13/cobra"

	"github.com/jacksmith/bag/internal/stats"
	"github.com/jacksmith/bag/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show comparison counters after a standard workload",
	Long: `Start a session, search every stored item once with each algorithm
(sorting the array before binary search), and print the comparison counters.

With --metrics the counters are printed in the Prometheus text exposition
format instead of a table.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var statsMetrics bool

func init() {
	statsCmd.Flags().BoolVar(&statsMetrics, "metrics", false, "print counters in Prometheus text format")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	items, err := s.Items(store.KindArray)
	if err != nil {
		return err
	}
	for _, it := range items {
		s.SearchArrayLinear(it.Name)
		s.SearchList(it.Name)
	}
	s.SortArray()
	for _, it := range items {
		s.SearchArrayBinary(it.Name)
	}

	out := cmd.OutOrStdout()
	if statsMetrics {
		return stats.WriteText(out, s.Counters)
	}
	renderCounters(out, s.Counters.Snapshot())
	return nil
}
