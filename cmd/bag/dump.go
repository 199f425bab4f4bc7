package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jacksmith/bag/internal/model"
	"github.com/jacksmith/bag/internal/ops"
	"github.com/jacksmith/bag/internal/stats"
	"github.com/jacksmith/bag/internal/store"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Export the starting inventory as YAML",
	Long: `Export the inventory a new session starts with as YAML.

This is a one-way export for viewing - bag never reads it back.

Use --store to limit the output to one bag.

Examples:
  bag dump
  bag dump --store=list`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

const dumpAll = "all"

var dumpStore string

func init() {
	dumpCmd.Flags().StringVar(&dumpStore, "store", dumpAll, "bag to export (array, list, all)")
	dumpCmd.RegisterFlagCompletionFunc("store", completeStoreKinds)
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	return writeDump(cmd.OutOrStdout(), s, dumpStore)
}

// inventoryDump is the YAML document written by dump.
type inventoryDump struct {
	Array    []model.Item   `yaml:"array,omitempty"`
	List     []model.Item   `yaml:"list,omitempty"`
	Counters stats.Snapshot `yaml:"counters"`
}

// writeDump encodes the selected stores of s and its counters as YAML.
func writeDump(w io.Writer, s *ops.Session, which string) error {
	var doc inventoryDump
	var err error

	switch which {
	case dumpAll:
		if doc.Array, err = s.Items(store.KindArray); err != nil {
			return err
		}
		if doc.List, err = s.Items(store.KindList); err != nil {
			return err
		}
	case string(store.KindArray), string(store.KindList):
		items, err := s.Items(store.Kind(which))
		if err != nil {
			return err
		}
		if which == string(store.KindArray) {
			doc.Array = items
		} else {
			doc.List = items
		}
	default:
		return fmt.Errorf("unknown store %q (expected array, list or all)", which)
	}
	doc.Counters = s.Counters.Snapshot()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	return enc.Close()
}
