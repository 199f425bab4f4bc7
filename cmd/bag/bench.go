package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksmith/bag/internal/cli"
	"github.com/jacksmith/bag/internal/ops"
	"github.com/jacksmith/bag/internal/store"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare search algorithms on a generated inventory",
	Long: `Fill both bags with generated items and search for every one of them
with sequential search (array and list) and binary search (array, after
selection sort). Prints total and average comparisons, the comparisons for a
missing name, and the elapsed time of each pass.

Examples:
  bag bench
  bag bench --n=10`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

var benchN int

func init() {
	benchCmd.Flags().IntVar(&benchN, "n", store.ArrayCapacity, "number of items (1-100)")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	r, err := ops.Bench(benchN)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Searched each of %d items once per algorithm.\n\n", r.N)

	t := cli.NewTable("ALGORITHM", "STORE", "TOTAL", "AVG", "MISS", "TIME")
	t.AlignRight(2, 3, 4)
	t.AddRow("sequential", "array", fmt.Sprint(r.ArrayLinear), fmt.Sprintf("%.2f", r.Average(r.ArrayLinear)),
		fmt.Sprint(r.ArrayLinearMiss), r.ArrayLinearTime.String())
	t.AddRow("sequential", "list", fmt.Sprint(r.ListLinear), fmt.Sprintf("%.2f", r.Average(r.ListLinear)),
		fmt.Sprint(r.ListLinearMiss), r.ListLinearTime.String())
	t.AddRow("binary", "array", fmt.Sprint(r.ArrayBinary), fmt.Sprintf("%.2f", r.Average(r.ArrayBinary)),
		fmt.Sprint(r.ArrayBinaryMiss), r.ArrayBinaryTime.String())
	t.Render(out)

	if currentConfig().Timings {
		fmt.Fprintf(out, "\nSelection sort: %s\n", r.SortTime)
	}
	return nil
}
