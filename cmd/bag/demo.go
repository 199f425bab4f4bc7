package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jacksmith/bag/internal/cli"
	"github.com/jacksmith/bag/internal/model"
	"github.com/jacksmith/bag/internal/ops"
	"github.com/jacksmith/bag/internal/store"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through every operation on the sample inventory",
	Long: `Load the sample inventory into both bags and run every operation once:
list both bags, search each item sequentially, sort the array, search each
item again with binary search, and print the comparison counters.

The sample inventory contains one repeated name, so its quantities are
merged on insert.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	s := ops.NewSession(currentLogger())
	defer s.Close()

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, cli.Bold("# Loading sample inventory"))
	for _, it := range model.SampleItems() {
		if err := demoInsert(out, s, it); err != nil {
			return err
		}
	}
	fmt.Fprintln(out)

	for _, kind := range []store.Kind{store.KindArray, store.KindList} {
		items, err := s.Items(kind)
		if err != nil {
			return err
		}
		renderItems(out, kind, items)
		fmt.Fprintln(out)
	}

	items, err := s.Items(store.KindArray)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, cli.Bold("# Sequential search"))
	for _, it := range items {
		arr := s.SearchArrayLinear(it.Name)
		lst := s.SearchList(it.Name)
		fmt.Fprintf(out, "%-12s array: %d comparisons, list: %d comparisons\n",
			it.Name, arr.Comparisons, lst.Comparisons)
	}
	fmt.Fprintln(out)

	s.SortArray()
	sorted, err := s.Items(store.KindArray)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, cli.Bold("# After selection sort"))
	renderItems(out, store.KindArray, sorted)
	fmt.Fprintln(out)

	fmt.Fprintln(out, cli.Bold("# Binary search"))
	for _, it := range sorted {
		res := s.SearchArrayBinary(it.Name)
		if !res.Found {
			return fmt.Errorf("binary search missed %q after sort", it.Name)
		}
		fmt.Fprintf(out, "%-12s index %d, %d comparisons\n", it.Name, res.Index, res.Comparisons)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, cli.Bold("# Counters"))
	renderCounters(out, s.Counters.Snapshot())
	return nil
}

func demoInsert(out io.Writer, s *ops.Session, it model.Item) error {
	for _, kind := range []store.Kind{store.KindArray, store.KindList} {
		res, err := s.Insert(kind, it)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-6s %-8s %s\n", kind, res, cli.FormatItem(it))
	}
	return nil
}
